package services

import (
	"context"
	"log/slog"
	"sync"

	"budget-planner/internal/export"
	"budget-planner/internal/ledger"
	"budget-planner/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService owns the process ledger and runs exactly one operation at a time
type LedgerService struct {
	mu      sync.Mutex
	ledger  *ledger.Ledger
	logger  *slog.Logger
	metrics MetricsRecorderInterface
}

// NewLedgerService creates a ledger service around l
func NewLedgerService(l *ledger.Ledger, logger *slog.Logger, metrics MetricsRecorderInterface) LedgerServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerService{
		ledger:  l,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *LedgerService) AddTransaction(ctx context.Context, date, category, amount string) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, err := s.ledger.Add(date, category, amount)
	s.record(ctx, "add", err, slog.String("transaction_id", txn.ID.String()))
	return txn, err
}

func (s *LedgerService) GetTransaction(ctx context.Context, position int) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Get(position)
}

func (s *LedgerService) GetTransactionByID(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.GetByID(id)
}

func (s *LedgerService) UpdateTransaction(ctx context.Context, position int, date, category, amount string) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, err := s.ledger.Update(position, date, category, amount)
	s.record(ctx, "update", err, slog.Int("position", position))
	return txn, err
}

func (s *LedgerService) UpdateTransactionByID(ctx context.Context, id uuid.UUID, date, category, amount string) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, err := s.ledger.UpdateByID(id, date, category, amount)
	s.record(ctx, "update", err, slog.String("transaction_id", id.String()))
	return txn, err
}

func (s *LedgerService) DeleteTransaction(ctx context.Context, position int) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, err := s.ledger.Delete(position)
	s.record(ctx, "delete", err, slog.Int("position", position))
	return txn, err
}

func (s *LedgerService) DeleteTransactionByID(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, err := s.ledger.DeleteByID(id)
	s.record(ctx, "delete", err, slog.String("transaction_id", id.String()))
	return txn, err
}

func (s *LedgerService) ListTransactions(ctx context.Context) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.List()
}

func (s *LedgerService) FilterTransactions(ctx context.Context, category string) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := s.ledger.Filter(category)
	s.record(ctx, "filter", nil, slog.Int("matches", len(transactions)))
	return transactions
}

func (s *LedgerService) AggregateByCategory(ctx context.Context) (map[string]decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals, err := s.ledger.AggregateByCategory()
	s.record(ctx, "aggregate", err)
	return totals, err
}

func (s *LedgerService) CategoryTotals(ctx context.Context) ([]models.CategoryTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals, err := s.ledger.CategoryTotals()
	s.record(ctx, "aggregate", err)
	return totals, err
}

// ChartSummary aggregates the ledger and turns the totals into pie chart slices
func (s *LedgerService) ChartSummary(ctx context.Context) (*models.ChartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals, err := s.ledger.AggregateByCategory()
	if err != nil {
		s.record(ctx, "chart", err)
		return nil, err
	}

	summary, err := export.ChartSummary(totals)
	s.record(ctx, "chart", err)
	return summary, err
}

func (s *LedgerService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Len()
}

// record logs and counts one operation; the caller holds s.mu
func (s *LedgerService) record(ctx context.Context, operation string, err error, attrs ...slog.Attr) {
	status := "success"
	level := slog.LevelInfo
	if err != nil {
		status = "failed"
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	attrs = append(attrs,
		slog.String("operation", operation),
		slog.String("status", status),
		slog.Int("ledger_size", s.ledger.Len()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
	s.logger.LogAttrs(ctx, level, "ledger operation", attrs...)

	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricLedgerOperation, map[string]string{
			"operation": operation,
			"status":    status,
		})
		s.metrics.RecordGauge(MetricLedgerTransactions, float64(s.ledger.Len()), nil)
	}
}
