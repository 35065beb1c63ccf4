package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"budget-planner/internal/export"
	"budget-planner/internal/ledger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerServiceTestSuite is the test suite for LedgerService
type LedgerServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	registry *prometheus.Registry
	service  LedgerServiceInterface
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctx = WithTraceID(context.Background(), "trace-test")
	s.registry = prometheus.NewRegistry()
	s.service = NewLedgerService(
		ledger.New(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		NewPrometheusMetrics(s.registry),
	)
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

// metricValue returns the value of the first series of name matching labels
func (s *LedgerServiceTestSuite) metricValue(name string, labels map[string]string) float64 {
	families, err := s.registry.Gather()
	s.Require().NoError(err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			matched := true
			for _, pair := range metric.GetLabel() {
				if want, ok := labels[pair.GetName()]; ok && want != pair.GetValue() {
					matched = false
				}
			}
			if !matched {
				continue
			}
			if metric.GetCounter() != nil {
				return metric.GetCounter().GetValue()
			}
			return metric.GetGauge().GetValue()
		}
	}
	return 0
}

func (s *LedgerServiceTestSuite) TestAddTransaction_RecordsMetrics() {
	_, err := s.service.AddTransaction(s.ctx, "2024-01-01", "Food", "10")
	s.Require().NoError(err)

	_, err = s.service.AddTransaction(s.ctx, "2024-01-02", "Food", "ten")
	s.ErrorIs(err, ledger.ErrInvalidAmount)

	s.Equal(1, s.service.Count())
	s.Equal(1.0, s.metricValue("ledger_operations_total", map[string]string{"operation": "add", "status": "success"}))
	s.Equal(1.0, s.metricValue("ledger_operations_total", map[string]string{"operation": "add", "status": "failed"}))
	s.Equal(1.0, s.metricValue("ledger_transactions", nil))
}

func (s *LedgerServiceTestSuite) TestScenario_FoodRentFood() {
	_, err := s.service.AddTransaction(s.ctx, "2024-01-01", "Food", "10")
	s.Require().NoError(err)
	_, err = s.service.AddTransaction(s.ctx, "2024-01-02", "Rent", "500")
	s.Require().NoError(err)
	_, err = s.service.AddTransaction(s.ctx, "2024-01-03", "food", "5.5")
	s.Require().NoError(err)

	filtered := s.service.FilterTransactions(s.ctx, "FOO")
	s.Require().Len(filtered, 2)
	s.Equal(0, filtered[0].Position)
	s.Equal(2, filtered[1].Position)

	totals, err := s.service.AggregateByCategory(s.ctx)
	s.Require().NoError(err)
	s.Len(totals, 3)
	s.True(totals["Food"].Equal(decimal.NewFromInt(10)))
	s.True(totals["food"].Equal(decimal.RequireFromString("5.5")))

	removed, err := s.service.DeleteTransaction(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal("Food", removed.Category)

	first, err := s.service.GetTransaction(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal("Rent", first.Category)
	s.Equal(2, s.service.Count())
}

func (s *LedgerServiceTestSuite) TestUpdateAndDeleteByID() {
	txn, err := s.service.AddTransaction(s.ctx, "2024-01-01", "Food", "10")
	s.Require().NoError(err)
	_, err = s.service.AddTransaction(s.ctx, "2024-01-02", "Rent", "500")
	s.Require().NoError(err)

	updated, err := s.service.UpdateTransactionByID(s.ctx, txn.ID, "2024-02-01", "Dining", "12.5")
	s.Require().NoError(err)
	s.Equal(txn.ID, updated.ID)
	s.Equal("Dining", updated.Category)

	found, err := s.service.GetTransactionByID(s.ctx, txn.ID)
	s.Require().NoError(err)
	s.Equal("2024-02-01", found.Date)

	_, err = s.service.DeleteTransactionByID(s.ctx, txn.ID)
	s.Require().NoError(err)

	_, err = s.service.GetTransactionByID(s.ctx, txn.ID)
	s.ErrorIs(err, ledger.ErrTransactionNotFound)
}

func (s *LedgerServiceTestSuite) TestUpdateTransaction_OutOfRange() {
	_, err := s.service.UpdateTransaction(s.ctx, 3, "d", "c", "1")
	s.ErrorIs(err, ledger.ErrIndexOutOfRange)
	s.Equal(1.0, s.metricValue("ledger_operations_total", map[string]string{"operation": "update", "status": "failed"}))
}

func (s *LedgerServiceTestSuite) TestChartSummary() {
	_, err := s.service.ChartSummary(s.ctx)
	s.ErrorIs(err, ledger.ErrEmptyLedger)

	_, err = s.service.AddTransaction(s.ctx, "2024-01-01", "Food", "25")
	s.Require().NoError(err)
	_, err = s.service.AddTransaction(s.ctx, "2024-01-02", "Rent", "75")
	s.Require().NoError(err)

	summary, err := s.service.ChartSummary(s.ctx)
	s.Require().NoError(err)
	s.Equal(export.ChartTitle, summary.Title)
	s.Require().Len(summary.Slices, 2)
	s.Equal("25.0%", summary.Slices[0].Label)
	s.Equal("75.0%", summary.Slices[1].Label)
}

func (s *LedgerServiceTestSuite) TestCategoryTotals() {
	_, err := s.service.CategoryTotals(s.ctx)
	s.ErrorIs(err, ledger.ErrEmptyLedger)

	_, _ = s.service.AddTransaction(s.ctx, "d", "Rent", "500")
	_, _ = s.service.AddTransaction(s.ctx, "d", "Food", "10")
	_, _ = s.service.AddTransaction(s.ctx, "d", "Food", "5")

	totals, err := s.service.CategoryTotals(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(totals, 2)
	s.Equal("Food", totals[0].Category)
	s.Equal(int64(2), totals[0].TransactionCount)
	s.True(totals[0].Total.Equal(decimal.NewFromInt(15)))
}

func (s *LedgerServiceTestSuite) TestConcurrentAddsAreSerialized() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.service.AddTransaction(s.ctx, "2024-01-01", "Food", "1")
		}()
	}
	wg.Wait()

	s.Equal(50, s.service.Count())
	transactions := s.service.ListTransactions(s.ctx)
	for i, txn := range transactions {
		s.Equal(i, txn.Position)
	}
}

func TestTraceIDFromContext(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc")
	if got := TraceIDFromContext(ctx); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
	if got := TraceIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty trace id, got %q", got)
	}
}
