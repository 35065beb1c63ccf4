package handlers

import (
	"net/http"

	"budget-planner/internal/dto"
	"budget-planner/internal/services"

	"github.com/labstack/echo/v4"
)

// SummaryHandler serves category aggregates
type SummaryHandler struct {
	ledger services.LedgerServiceInterface
}

func NewSummaryHandler(ledger services.LedgerServiceInterface) *SummaryHandler {
	return &SummaryHandler{ledger: ledger}
}

// GetCategoryTotals returns the total and count per exact category string
// @Router /api/v1/summary/categories [get]
func (h *SummaryHandler) GetCategoryTotals(c echo.Context) error {
	totals, err := h.ledger.CategoryTotals(requestContext(c))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewCategoryTotalsResponse(totals)})
}

// GetChart returns the slices of the expense distribution pie chart
// @Router /api/v1/summary/chart [get]
func (h *SummaryHandler) GetChart(c echo.Context) error {
	summary, err := h.ledger.ChartSummary(requestContext(c))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewChartResponse(summary)})
}
