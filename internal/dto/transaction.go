package dto

import (
	"bytes"
	"encoding/json"

	"budget-planner/internal/models"

	"github.com/google/uuid"
)

// RawAmount is amount text exactly as entered. JSON strings and JSON numbers are both
// accepted; numbers keep their literal spelling.
type RawAmount string

// UnmarshalJSON implements json.Unmarshaler
func (a *RawAmount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*a = RawAmount(s)
		return nil
	}
	if string(trimmed) == "null" {
		*a = ""
		return nil
	}
	*a = RawAmount(trimmed)
	return nil
}

// TransactionRequest is the body of add and update requests.
// Date and category are free text; only the amount is validated.
type TransactionRequest struct {
	Date     string    `json:"date"`
	Category string    `json:"category"`
	Amount   RawAmount `json:"amount" validate:"decimal_amount"`
}

// TransactionResponse is one ledger record as returned by the API
type TransactionResponse struct {
	ID       uuid.UUID `json:"id"`
	Position int       `json:"position"`
	Date     string    `json:"date"`
	Category string    `json:"category"`
	Amount   string    `json:"amount"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
	Filter       string                `json:"filter,omitempty"`
}

func NewTransactionResponse(txn models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:       txn.ID,
		Position: txn.Position,
		Date:     txn.Date,
		Category: txn.Category,
		Amount:   models.FormatAmount(txn.Amount),
	}
}

func NewTransactionResponses(transactions []models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		responses = append(responses, NewTransactionResponse(txn))
	}
	return responses
}
