package handlers

import (
	goerrors "errors"
	"net/http"
	"strings"

	"budget-planner/internal/dto"
	"budget-planner/internal/errors"
	"budget-planner/internal/export"
	"budget-planner/internal/models"
	"budget-planner/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	formatText = "text"
)

// TransactionHandler handles ledger transaction requests
type TransactionHandler struct {
	ledger services.LedgerServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledger services.LedgerServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		ledger: ledger,
	}
}

// CreateTransaction appends a transaction to the ledger
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	req, ok, err := bindTransactionRequest(c, true)
	if !ok {
		return err
	}

	txn, err := h.ledger.AddTransaction(requestContext(c), req.Date, req.Category, string(req.Amount))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewTransactionResponse(txn),
		Message: "Transaction added",
	})
}

// ListTransactions returns the ledger, optionally filtered by a category substring.
// format=text returns the plain text table instead of JSON.
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	ctx := requestContext(c)
	filter := c.QueryParam("category")

	var transactions []models.Transaction
	if strings.TrimSpace(filter) == "" {
		transactions = h.ledger.ListTransactions(ctx)
	} else {
		transactions = h.ledger.FilterTransactions(ctx, filter)
	}

	if strings.EqualFold(c.QueryParam("format"), formatText) {
		return c.String(http.StatusOK, export.RenderText(transactions))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ListTransactionsResponse{
			Transactions: dto.NewTransactionResponses(transactions),
			Count:        len(transactions),
			Filter:       strings.TrimSpace(filter),
		},
	})
}

// GetTransaction returns the transaction at a position
// @Router /api/v1/transactions/{position} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	position, err := parsePosition(c)
	if err != nil {
		return SendError(c, errors.LedgerInvalidIndex)
	}

	txn, err := h.ledger.GetTransaction(requestContext(c), position)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewTransactionResponse(txn)})
}

// UpdateTransaction replaces the transaction at a position.
// An unknown position is reported before an invalid amount.
// @Router /api/v1/transactions/{position} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	position, err := parsePosition(c)
	if err != nil {
		return SendError(c, errors.LedgerInvalidIndex)
	}

	req, ok, err := bindTransactionRequest(c, false)
	if !ok {
		return err
	}

	txn, err := h.ledger.UpdateTransaction(requestContext(c), position, req.Date, req.Category, string(req.Amount))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewTransactionResponse(txn),
		Message: "Transaction updated",
	})
}

// DeleteTransaction removes the transaction at a position; later positions shift down
// @Router /api/v1/transactions/{position} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	position, err := parsePosition(c)
	if err != nil {
		return SendError(c, errors.LedgerInvalidIndex)
	}

	txn, err := h.ledger.DeleteTransaction(requestContext(c), position)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewTransactionResponse(txn),
		Message: "Transaction deleted",
	})
}

// GetTransactionByID returns a transaction by its identifier
// @Router /api/v1/transactions/id/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c echo.Context) error {
	id, ok, err := transactionID(c)
	if !ok {
		return err
	}

	txn, err := h.ledger.GetTransactionByID(requestContext(c), id)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewTransactionResponse(txn)})
}

// UpdateTransactionByID replaces a transaction by its identifier
// @Router /api/v1/transactions/id/{id} [put]
func (h *TransactionHandler) UpdateTransactionByID(c echo.Context) error {
	id, ok, err := transactionID(c)
	if !ok {
		return err
	}

	req, ok, err := bindTransactionRequest(c, false)
	if !ok {
		return err
	}

	txn, err := h.ledger.UpdateTransactionByID(requestContext(c), id, req.Date, req.Category, string(req.Amount))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewTransactionResponse(txn),
		Message: "Transaction updated",
	})
}

// DeleteTransactionByID removes a transaction by its identifier
// @Router /api/v1/transactions/id/{id} [delete]
func (h *TransactionHandler) DeleteTransactionByID(c echo.Context) error {
	id, ok, err := transactionID(c)
	if !ok {
		return err
	}

	txn, err := h.ledger.DeleteTransactionByID(requestContext(c), id)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.NewTransactionResponse(txn),
		Message: "Transaction deleted",
	})
}

// transactionID parses the :id parameter. When ok is false the error response
// has already been written and err is its result.
func transactionID(c echo.Context) (uuid.UUID, bool, error) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return uuid.Nil, false, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}
	return id, true, nil
}

// bindTransactionRequest binds and validates the request body. With checkAmount false
// an unparseable amount is left for the ledger, which checks the target first.
// When ok is false the error response has already been written and err is its result.
func bindTransactionRequest(c echo.Context, checkAmount bool) (*dto.TransactionRequest, bool, error) {
	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return nil, false, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		var validationErrs validator.ValidationErrors
		if !goerrors.As(err, &validationErrs) {
			return nil, false, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
		}

		amountOnly := true
		for _, fieldErr := range validationErrs {
			if fieldErr.Tag() != "decimal_amount" {
				amountOnly = false
			}
		}
		if !amountOnly {
			return nil, false, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
		}
		if checkAmount {
			return nil, false, SendError(c, errors.LedgerInvalidAmount)
		}
	}

	return &req, true, nil
}
