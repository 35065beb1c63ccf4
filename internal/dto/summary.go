package dto

import (
	"budget-planner/internal/models"

	"github.com/shopspring/decimal"
)

type CategoryTotalResponse struct {
	Category         string `json:"category"`
	TransactionCount int64  `json:"transaction_count"`
	Total            string `json:"total"`
}

// CategoryTotalsResponse lists per-category totals sorted by category
type CategoryTotalsResponse struct {
	Categories []CategoryTotalResponse `json:"categories"`
	GrandTotal string                  `json:"grand_total"`
}

type ChartSliceResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Share    string `json:"share"`
	Label    string `json:"label"`
}

// ChartResponse carries the data for the expense distribution pie chart
type ChartResponse struct {
	Title      string               `json:"title"`
	Slices     []ChartSliceResponse `json:"slices"`
	GrandTotal string               `json:"grand_total"`
}

func NewCategoryTotalsResponse(totals []models.CategoryTotal) CategoryTotalsResponse {
	grandTotal := decimal.Zero
	categories := make([]CategoryTotalResponse, 0, len(totals))
	for _, total := range totals {
		grandTotal = grandTotal.Add(total.Total)
		categories = append(categories, CategoryTotalResponse{
			Category:         total.Category,
			TransactionCount: total.TransactionCount,
			Total:            models.FormatAmount(total.Total),
		})
	}

	return CategoryTotalsResponse{
		Categories: categories,
		GrandTotal: models.FormatAmount(grandTotal),
	}
}

func NewChartResponse(summary *models.ChartSummary) ChartResponse {
	slices := make([]ChartSliceResponse, 0, len(summary.Slices))
	for _, slice := range summary.Slices {
		slices = append(slices, ChartSliceResponse{
			Category: slice.Category,
			Total:    models.FormatAmount(slice.Total),
			Share:    slice.Share.StringFixed(1),
			Label:    slice.Label,
		})
	}

	return ChartResponse{
		Title:      summary.Title,
		Slices:     slices,
		GrandTotal: models.FormatAmount(summary.GrandTotal),
	}
}
