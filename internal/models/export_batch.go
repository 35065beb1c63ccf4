package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmptyExportBatch = errors.New("export batch must contain at least one transaction")
)

// ExportBatch is the header row of a ledger snapshot written to the database
type ExportBatch struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TransactionCount int             `gorm:"not null" json:"transaction_count"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric;not null" json:"total_amount"`
	CreatedAt        time.Time       `gorm:"not null;index" json:"created_at"`

	Transactions []ExportedTransaction `gorm:"foreignKey:BatchID" json:"transactions,omitempty"`
}

// BeforeCreate hook for ExportBatch
func (b *ExportBatch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	return nil
}

// TableName returns the table name for ExportBatch
func (b *ExportBatch) TableName() string {
	return "ledger_export_batches"
}

// ExportedTransaction is one ledger record inside a snapshot, in ledger order
type ExportedTransaction struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BatchID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"batch_id"`
	Position      int             `gorm:"not null" json:"position"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null" json:"transaction_id"`
	Date          string          `gorm:"type:varchar(64)" json:"date"`
	Category      string          `gorm:"type:varchar(255)" json:"category"`
	Amount        decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
}

// BeforeCreate hook for ExportedTransaction
func (e *ExportedTransaction) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for ExportedTransaction
func (e *ExportedTransaction) TableName() string {
	return "ledger_exported_transactions"
}

// NewExportBatch builds a snapshot batch from ledger records, preserving their order
func NewExportBatch(transactions []Transaction) (*ExportBatch, error) {
	if len(transactions) == 0 {
		return nil, ErrEmptyExportBatch
	}

	batch := &ExportBatch{
		ID:               uuid.New(),
		TransactionCount: len(transactions),
		TotalAmount:      decimal.Zero,
		Transactions:     make([]ExportedTransaction, 0, len(transactions)),
	}

	for i := range transactions {
		txn := &transactions[i]
		batch.TotalAmount = batch.TotalAmount.Add(txn.Amount)
		batch.Transactions = append(batch.Transactions, ExportedTransaction{
			BatchID:       batch.ID,
			Position:      txn.Position,
			TransactionID: txn.ID,
			Date:          txn.Date,
			Category:      txn.Category,
			Amount:        txn.Amount,
		})
	}

	return batch, nil
}
