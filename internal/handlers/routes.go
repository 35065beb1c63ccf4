package handlers

import "github.com/labstack/echo/v4"

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Transactions *TransactionHandler
	Summary      *SummaryHandler
	Exports      *ExportHandler
	Health       *HealthCheckHandler
}

// RegisterRoutes mounts every API route on e
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	e.GET("/health", h.Health.HealthCheck)

	api := e.Group("/api/v1")

	transactions := api.Group("/transactions")
	transactions.POST("", h.Transactions.CreateTransaction)
	transactions.GET("", h.Transactions.ListTransactions)
	transactions.GET("/id/:id", h.Transactions.GetTransactionByID)
	transactions.PUT("/id/:id", h.Transactions.UpdateTransactionByID)
	transactions.DELETE("/id/:id", h.Transactions.DeleteTransactionByID)
	transactions.GET("/:position", h.Transactions.GetTransaction)
	transactions.PUT("/:position", h.Transactions.UpdateTransaction)
	transactions.DELETE("/:position", h.Transactions.DeleteTransaction)

	summary := api.Group("/summary")
	summary.GET("/categories", h.Summary.GetCategoryTotals)
	summary.GET("/chart", h.Summary.GetChart)

	exports := api.Group("/exports")
	exports.POST("/file", h.Exports.ExportFile)
	exports.GET("/csv", h.Exports.DownloadCSV)
	exports.POST("/database", h.Exports.ExportDatabase)
	exports.GET("/database", h.Exports.ListExportBatches)
	exports.GET("/database/:id", h.Exports.GetExportBatch)
}
