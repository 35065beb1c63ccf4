package handlers

import (
	goerrors "errors"
	"net/http"

	"budget-planner/internal/errors"
	"budget-planner/internal/export"
	"budget-planner/internal/ledger"
	"budget-planner/internal/repositories"
	"budget-planner/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// Handlers report failures through the helpers below, never through echo.NewHTTPError
// or a direct c.JSON:
//
// 1. SendError - client and business errors (4xx) with a known error code,
//    e.g. SendError(c, errors.LedgerInvalidIndex)
//
// 2. SendServiceError - errors returned by the ledger and export services; known
//    sentinel errors become their error code, anything else goes to SendSystemError
//
// 3. SendSystemError - unexpected internal errors (500); the cause is not exposed

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError maps a service error onto its error code
func SendServiceError(c echo.Context, err error) error {
	if code, ok := serviceErrorCode(err); ok {
		return SendError(c, code)
	}
	return SendSystemError(c, err)
}

func serviceErrorCode(err error) (errors.ErrorCode, bool) {
	switch {
	case goerrors.Is(err, ledger.ErrInvalidAmount):
		return errors.LedgerInvalidAmount, true
	case goerrors.Is(err, ledger.ErrIndexOutOfRange):
		return errors.LedgerIndexOutOfRange, true
	case goerrors.Is(err, ledger.ErrEmptyLedger), goerrors.Is(err, export.ErrNothingToChart):
		return errors.LedgerEmpty, true
	case goerrors.Is(err, ledger.ErrTransactionNotFound):
		return errors.LedgerTransactionNotFound, true
	case goerrors.Is(err, export.ErrExportIO):
		return errors.ExportIOError, true
	case goerrors.Is(err, services.ErrExportPathNotAllowed):
		return errors.ExportPathNotAllowed, true
	case goerrors.Is(err, repositories.ErrExportBatchNotFound):
		return errors.ExportBatchNotFound, true
	case goerrors.Is(err, services.ErrExportUnavailable):
		return errors.ExportUnavailable, true
	default:
		return "", false
	}
}
