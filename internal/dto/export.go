package dto

import (
	"time"

	"budget-planner/internal/models"

	"github.com/google/uuid"
)

// ExportFileRequest names the file to write inside the export directory
type ExportFileRequest struct {
	Filename string `json:"filename" validate:"required,max=255,export_filename"`
}

type ExportFileResponse struct {
	Path             string `json:"path"`
	TransactionCount int    `json:"transaction_count"`
}

type ExportedTransactionResponse struct {
	Position      int       `json:"position"`
	TransactionID uuid.UUID `json:"transaction_id"`
	Date          string    `json:"date"`
	Category      string    `json:"category"`
	Amount        string    `json:"amount"`
}

// ExportBatchResponse is a stored ledger snapshot; rows are omitted in listings
type ExportBatchResponse struct {
	ID               uuid.UUID                     `json:"id"`
	TransactionCount int                           `json:"transaction_count"`
	TotalAmount      string                        `json:"total_amount"`
	CreatedAt        time.Time                     `json:"created_at"`
	Transactions     []ExportedTransactionResponse `json:"transactions,omitempty"`
}

// PaginationInfo contains offset pagination metadata
type PaginationInfo struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

type ListExportBatchesResponse struct {
	Batches    []ExportBatchResponse `json:"batches"`
	Pagination PaginationInfo        `json:"pagination"`
}

func NewExportBatchResponse(batch *models.ExportBatch) ExportBatchResponse {
	response := ExportBatchResponse{
		ID:               batch.ID,
		TransactionCount: batch.TransactionCount,
		TotalAmount:      models.FormatAmount(batch.TotalAmount),
		CreatedAt:        batch.CreatedAt,
	}

	if len(batch.Transactions) > 0 {
		response.Transactions = make([]ExportedTransactionResponse, 0, len(batch.Transactions))
		for _, row := range batch.Transactions {
			response.Transactions = append(response.Transactions, ExportedTransactionResponse{
				Position:      row.Position,
				TransactionID: row.TransactionID,
				Date:          row.Date,
				Category:      row.Category,
				Amount:        models.FormatAmount(row.Amount),
			})
		}
	}

	return response
}
