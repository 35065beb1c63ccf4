package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// SampleTransaction is raw ledger input, as a user would type it
type SampleTransaction struct {
	Date     string
	Category string
	Amount   string
}

type categoryProfile struct {
	name     string
	min, max float64
}

var sampleCategories = []categoryProfile{
	{"Food", 5, 60},
	{"Groceries", 20, 180},
	{"Rent", 800, 1600},
	{"Utilities", 40, 150},
	{"Transport", 2, 45},
	{"Entertainment", 10, 90},
	{"Health", 15, 200},
	{"Travel", 100, 900},
}

type sampleGenerator struct {
	faker   *gofakeit.Faker
	now     func() time.Time
	logger  *slog.Logger
	metrics MetricsRecorderInterface
}

// NewSampleGenerator creates a generator; seed 0 picks a random seed
func NewSampleGenerator(seed uint64, logger *slog.Logger, metrics MetricsRecorderInterface) SampleGeneratorInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &sampleGenerator{
		faker:   gofakeit.New(seed),
		now:     time.Now,
		logger:  logger,
		metrics: metrics,
	}
}

// GenerateTransactions returns count transactions dated within the last 90 days
func (g *sampleGenerator) GenerateTransactions(count int) []SampleTransaction {
	if count <= 0 {
		return []SampleTransaction{}
	}

	end := g.now()
	start := end.AddDate(0, 0, -90)

	transactions := make([]SampleTransaction, 0, count)
	for i := 0; i < count; i++ {
		profile := sampleCategories[g.faker.Number(0, len(sampleCategories)-1)]
		amount := g.faker.Price(profile.min, profile.max)

		transactions = append(transactions, SampleTransaction{
			Date:     g.faker.DateRange(start, end).Format("2006-01-02"),
			Category: profile.name,
			Amount:   formatSampleAmount(amount),
		})
	}
	return transactions
}

// Seed adds count generated transactions to the ledger and returns how many were added
func (g *sampleGenerator) Seed(ctx context.Context, ledgerService LedgerServiceInterface, count int) (int, error) {
	added := 0
	for _, sample := range g.GenerateTransactions(count) {
		if _, err := ledgerService.AddTransaction(ctx, sample.Date, sample.Category, sample.Amount); err != nil {
			return added, err
		}
		added++
		if g.metrics != nil {
			g.metrics.IncrementCounter(MetricSampleSeeded, nil)
		}
	}

	g.logger.InfoContext(ctx, "sample transactions seeded",
		slog.Int("count", added),
	)
	return added, nil
}

func formatSampleAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
