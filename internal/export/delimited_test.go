package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"budget-planner/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: uuid.New(), Position: 0, Date: "2024-01-01", Category: "Food", Amount: decimal.RequireFromString("10.0")},
		{ID: uuid.New(), Position: 1, Date: "2024-01-02", Category: "Rent", Amount: decimal.RequireFromString("500.0")},
		{ID: uuid.New(), Position: 2, Date: "2024-01-03", Category: "food", Amount: decimal.RequireFromString("5.0")},
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestExportDelimited_Scenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.csv")

	err := ExportDelimited(path, scenarioTransactions())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := "Date,Category,Amount\n" +
		"2024-01-01,Food,10.0\n" +
		"2024-01-02,Rent,500.0\n" +
		"2024-01-03,food,5.0\n"
	assert.Equal(t, expected, string(content))
}

func TestExportDelimited_EmptyLedgerWritesHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, ExportDelimited(path, nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,Category,Amount\n", string(content))
}

func TestExportDelimited_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the export\n"), 0o644))

	require.NoError(t, ExportDelimited(path, scenarioTransactions()[:1]))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,Category,Amount\n2024-01-01,Food,10.0\n", string(content))
}

func TestExportDelimited_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "budget.csv")

	err := ExportDelimited(path, scenarioTransactions())

	assert.ErrorIs(t, err, ErrExportIO)
}

func TestWriteDelimited_NoEscaping(t *testing.T) {
	var sb strings.Builder
	transactions := []models.Transaction{
		{Date: "2024-03-01", Category: "Food, Drinks", Amount: decimal.RequireFromString("-12.75")},
	}

	require.NoError(t, WriteDelimited(&sb, transactions))

	assert.Equal(t, "Date,Category,Amount\n2024-03-01,Food, Drinks,-12.75\n", sb.String())
}

func TestWriteDelimited_WriterFailure(t *testing.T) {
	err := WriteDelimited(failingWriter{}, scenarioTransactions())

	assert.ErrorIs(t, err, ErrExportIO)
}
