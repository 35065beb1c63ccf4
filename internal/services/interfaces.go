package services

import (
	"context"
	"io"
	"time"

	"budget-planner/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerServiceInterface exposes the ledger operations, one at a time
type LedgerServiceInterface interface {
	AddTransaction(ctx context.Context, date, category, amount string) (models.Transaction, error)
	GetTransaction(ctx context.Context, position int) (models.Transaction, error)
	GetTransactionByID(ctx context.Context, id uuid.UUID) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, position int, date, category, amount string) (models.Transaction, error)
	UpdateTransactionByID(ctx context.Context, id uuid.UUID, date, category, amount string) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, position int) (models.Transaction, error)
	DeleteTransactionByID(ctx context.Context, id uuid.UUID) (models.Transaction, error)
	ListTransactions(ctx context.Context) []models.Transaction
	FilterTransactions(ctx context.Context, category string) []models.Transaction
	AggregateByCategory(ctx context.Context) (map[string]decimal.Decimal, error)
	CategoryTotals(ctx context.Context) ([]models.CategoryTotal, error)
	ChartSummary(ctx context.Context) (*models.ChartSummary, error)
	Count() int
}

// ExportServiceInterface defines file and database export operations
type ExportServiceInterface interface {
	ExportToFile(ctx context.Context, filename string) (*models.FileExport, error)
	WriteCSV(ctx context.Context, w io.Writer) (int, error)
	ExportToDatabase(ctx context.Context) (*models.ExportBatch, error)
	GetExportBatch(ctx context.Context, id uuid.UUID) (*models.ExportBatch, error)
	ListExportBatches(ctx context.Context, offset, limit int) ([]models.ExportBatch, int64, error)
	DatabaseEnabled() bool
}

// SampleGeneratorInterface generates realistic ledger entries for development
type SampleGeneratorInterface interface {
	GenerateTransactions(count int) []SampleTransaction
	Seed(ctx context.Context, ledger LedgerServiceInterface, count int) (int, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
