package repositories

import (
	"budget-planner/internal/models"

	"github.com/google/uuid"
)

// ExportRepositoryInterface defines the contract for ledger snapshot persistence
type ExportRepositoryInterface interface {
	CreateBatch(batch *models.ExportBatch) error
	GetBatch(id uuid.UUID) (*models.ExportBatch, error)
	ListBatches(offset, limit int) ([]models.ExportBatch, int64, error)
}
