package models

// FileExport describes a delimited export written to disk
type FileExport struct {
	Path             string `json:"path"`
	TransactionCount int    `json:"transaction_count"`
}
