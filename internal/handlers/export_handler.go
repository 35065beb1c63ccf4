package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"budget-planner/internal/dto"
	"budget-planner/internal/errors"
	"budget-planner/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit   = 20
	defaultCSVFilename = "budget.csv"
	csvContentType     = "text/csv; charset=utf-8"
)

// ExportHandler handles file and database exports
type ExportHandler struct {
	exports services.ExportServiceInterface
}

func NewExportHandler(exports services.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// ExportFile writes the ledger to a named file in the export directory
// @Router /api/v1/exports/file [post]
func (h *ExportHandler) ExportFile(c echo.Context) error {
	var req dto.ExportFileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	result, err := h.exports.ExportToFile(requestContext(c), req.Filename)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.ExportFileResponse{
			Path:             result.Path,
			TransactionCount: result.TransactionCount,
		},
		Message: fmt.Sprintf("Data exported to %s", result.Path),
	})
}

// DownloadCSV streams the delimited export as an attachment
// @Router /api/v1/exports/csv [get]
func (h *ExportHandler) DownloadCSV(c echo.Context) error {
	var buf bytes.Buffer
	if _, err := h.exports.WriteCSV(requestContext(c), &buf); err != nil {
		return SendServiceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", defaultCSVFilename))
	return c.Blob(http.StatusOK, csvContentType, buf.Bytes())
}

// ExportDatabase stores a snapshot of the ledger in the database
// @Router /api/v1/exports/database [post]
func (h *ExportHandler) ExportDatabase(c echo.Context) error {
	batch, err := h.exports.ExportToDatabase(requestContext(c))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewExportBatchResponse(batch),
		Message: "Ledger snapshot stored",
	})
}

// ListExportBatches lists stored snapshots, newest first
// @Router /api/v1/exports/database [get]
func (h *ExportHandler) ListExportBatches(c echo.Context) error {
	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", defaultPageLimit)

	batches, total, err := h.exports.ListExportBatches(requestContext(c), offset, limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	responses := make([]dto.ExportBatchResponse, 0, len(batches))
	for i := range batches {
		responses = append(responses, dto.NewExportBatchResponse(&batches[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ListExportBatchesResponse{
			Batches: responses,
			Pagination: dto.PaginationInfo{
				Offset: offset,
				Limit:  limit,
				Total:  total,
			},
		},
	})
}

// GetExportBatch returns one stored snapshot with its rows
// @Router /api/v1/exports/database/{id} [get]
func (h *ExportHandler) GetExportBatch(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid export batch ID"))
	}

	batch, err := h.exports.GetExportBatch(requestContext(c), id)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewExportBatchResponse(batch)})
}
