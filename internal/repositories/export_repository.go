package repositories

import (
	"errors"
	"fmt"

	"budget-planner/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExportBatchNotFound = errors.New("export batch not found")
)

// exportRepository implements ExportRepositoryInterface
type exportRepository struct {
	db *gorm.DB
}

// NewExportRepository creates a new export repository
func NewExportRepository(db *gorm.DB) ExportRepositoryInterface {
	return &exportRepository{
		db: db,
	}
}

// CreateBatch stores the batch header and all of its rows in one database transaction
func (r *exportRepository) CreateBatch(batch *models.ExportBatch) error {
	if batch == nil {
		return errors.New("export batch cannot be nil")
	}
	if len(batch.Transactions) == 0 {
		return models.ErrEmptyExportBatch
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Transactions").Create(batch).Error; err != nil {
			return fmt.Errorf("failed to create export batch: %w", err)
		}

		for i := range batch.Transactions {
			batch.Transactions[i].BatchID = batch.ID
		}

		if err := tx.CreateInBatches(batch.Transactions, 100).Error; err != nil {
			return fmt.Errorf("failed to create exported transactions: %w", err)
		}

		return nil
	})
}

// GetBatch retrieves a batch with its rows in ledger order
func (r *exportRepository) GetBatch(id uuid.UUID) (*models.ExportBatch, error) {
	var batch models.ExportBatch

	err := r.db.
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&batch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExportBatchNotFound
		}
		return nil, fmt.Errorf("failed to get export batch: %w", err)
	}

	return &batch, nil
}

// ListBatches returns batch headers, newest first, without their rows
func (r *exportRepository) ListBatches(offset, limit int) ([]models.ExportBatch, int64, error) {
	var batches []models.ExportBatch
	var total int64

	if err := r.db.Model(&models.ExportBatch{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count export batches: %w", err)
	}

	if err := r.db.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&batches).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list export batches: %w", err)
	}

	return batches, total, nil
}
