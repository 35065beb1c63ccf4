package dto

import (
	"encoding/json"
	"testing"

	"budget-planner/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want RawAmount
	}{
		{"string", `{"amount":"12.50"}`, "12.50"},
		{"number keeps spelling", `{"amount":12.50}`, "12.50"},
		{"negative number", `{"amount":-5}`, "-5"},
		{"null", `{"amount":null}`, ""},
		{"text", `{"amount":"ten"}`, "ten"},
		{"missing", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req TransactionRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.Amount)
		})
	}
}

func TestNewTransactionResponse_FormatsAmount(t *testing.T) {
	txn := models.Transaction{
		ID:       uuid.New(),
		Position: 2,
		Date:     "2024-01-03",
		Category: "food",
		Amount:   decimal.NewFromInt(10),
	}

	response := NewTransactionResponse(txn)

	assert.Equal(t, "10.0", response.Amount)
	assert.Equal(t, 2, response.Position)
	assert.Equal(t, txn.ID, response.ID)
}

func TestNewCategoryTotalsResponse_GrandTotal(t *testing.T) {
	response := NewCategoryTotalsResponse([]models.CategoryTotal{
		{Category: "Food", TransactionCount: 1, Total: decimal.NewFromInt(10)},
		{Category: "Rent", TransactionCount: 1, Total: decimal.NewFromInt(500)},
		{Category: "food", TransactionCount: 1, Total: decimal.RequireFromString("5.5")},
	})

	assert.Len(t, response.Categories, 3)
	assert.Equal(t, "515.5", response.GrandTotal)
	assert.Equal(t, "500.0", response.Categories[1].Total)
}

func TestNewExportBatchResponse_OmitsEmptyRows(t *testing.T) {
	response := NewExportBatchResponse(&models.ExportBatch{
		ID:               uuid.New(),
		TransactionCount: 2,
		TotalAmount:      decimal.NewFromInt(3),
	})

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "transactions\":")
	assert.Equal(t, "3.0", response.TotalAmount)
}
