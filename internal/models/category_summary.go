package models

import "github.com/shopspring/decimal"

// CategoryTotal contains aggregated transaction data for one exact category string
type CategoryTotal struct {
	Category         string          `json:"category"`
	TransactionCount int64           `json:"transaction_count"`
	Total            decimal.Decimal `json:"total"`
}

// ChartSlice is one wedge of the expense distribution chart
type ChartSlice struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Share    decimal.Decimal `json:"share"`
	Label    string          `json:"label"`
}

// ChartSummary is the category breakdown handed to a chart renderer
type ChartSummary struct {
	Title      string          `json:"title"`
	Slices     []ChartSlice    `json:"slices"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}
