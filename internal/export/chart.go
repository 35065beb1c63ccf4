package export

import (
	"errors"
	"sort"

	"budget-planner/internal/models"

	"github.com/shopspring/decimal"
)

// ChartTitle is the title of the expense distribution chart
const ChartTitle = "Expense Distribution"

var (
	ErrNothingToChart = errors.New("no expenses recorded yet")
	hundred           = decimal.NewFromInt(100)
)

// ChartSummary turns category totals into pie slices sorted by category.
// Pie wedges cannot be negative, so shares are taken over absolute totals;
// Total keeps the signed sum.
func ChartSummary(totals map[string]decimal.Decimal) (*models.ChartSummary, error) {
	if len(totals) == 0 {
		return nil, ErrNothingToChart
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	grandTotal := decimal.Zero
	absoluteTotal := decimal.Zero
	for _, category := range categories {
		grandTotal = grandTotal.Add(totals[category])
		absoluteTotal = absoluteTotal.Add(totals[category].Abs())
	}

	slices := make([]models.ChartSlice, 0, len(categories))
	for _, category := range categories {
		share := decimal.Zero
		if !absoluteTotal.IsZero() {
			share = totals[category].Abs().Div(absoluteTotal).Mul(hundred).Round(1)
		}
		slices = append(slices, models.ChartSlice{
			Category: category,
			Total:    totals[category],
			Share:    share,
			Label:    share.StringFixed(1) + "%",
		})
	}

	return &models.ChartSummary{
		Title:      ChartTitle,
		Slices:     slices,
		GrandTotal: grandTotal,
	}, nil
}
