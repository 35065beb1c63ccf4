package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"budget-planner/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount       = errors.New("amount must be a number")
	ErrIndexOutOfRange     = errors.New("no entry at this index")
	ErrEmptyLedger         = errors.New("no transactions recorded yet")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type entry struct {
	id       uuid.UUID
	date     string
	category string
	amount   decimal.Decimal
}

// Ledger is an ordered, in-memory sequence of transactions.
//
// Transactions are addressed either by position, which shifts down after every
// deletion, or by the identifier assigned when the transaction was added. The
// identifier is the safer mode since it stays valid across mutations.
//
// A Ledger is not safe for concurrent use; its owner serializes access.
type Ledger struct {
	entries []entry
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{}
}

// ParseAmount parses raw amount input as a signed decimal number
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return amount, nil
}

// Len returns the number of transactions in the ledger
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Add appends a new transaction at the end of the ledger
func (l *Ledger) Add(date, category, rawAmount string) (models.Transaction, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return models.Transaction{}, err
	}

	l.entries = append(l.entries, entry{
		id:       uuid.New(),
		date:     date,
		category: category,
		amount:   amount,
	})

	return l.transactionAt(len(l.entries) - 1), nil
}

// Get returns the transaction at position
func (l *Ledger) Get(position int) (models.Transaction, error) {
	if !l.validPosition(position) {
		return models.Transaction{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, position)
	}
	return l.transactionAt(position), nil
}

// GetByID returns the transaction with the given identifier
func (l *Ledger) GetByID(id uuid.UUID) (models.Transaction, error) {
	position, err := l.positionOf(id)
	if err != nil {
		return models.Transaction{}, err
	}
	return l.transactionAt(position), nil
}

// Update replaces the fields of the transaction at position.
// The position is checked before the amount, and nothing changes on failure.
func (l *Ledger) Update(position int, date, category, rawAmount string) (models.Transaction, error) {
	if !l.validPosition(position) {
		return models.Transaction{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, position)
	}

	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return models.Transaction{}, err
	}

	e := &l.entries[position]
	e.date = date
	e.category = category
	e.amount = amount

	return l.transactionAt(position), nil
}

// UpdateByID replaces the fields of the transaction with the given identifier
func (l *Ledger) UpdateByID(id uuid.UUID, date, category, rawAmount string) (models.Transaction, error) {
	position, err := l.positionOf(id)
	if err != nil {
		return models.Transaction{}, err
	}
	return l.Update(position, date, category, rawAmount)
}

// Delete removes the transaction at position; later transactions move down by one
func (l *Ledger) Delete(position int) (models.Transaction, error) {
	if !l.validPosition(position) {
		return models.Transaction{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, position)
	}

	removed := l.transactionAt(position)
	l.entries = append(l.entries[:position], l.entries[position+1:]...)

	return removed, nil
}

// DeleteByID removes the transaction with the given identifier
func (l *Ledger) DeleteByID(id uuid.UUID) (models.Transaction, error) {
	position, err := l.positionOf(id)
	if err != nil {
		return models.Transaction{}, err
	}
	return l.Delete(position)
}

// List returns a snapshot of every transaction in ledger order
func (l *Ledger) List() []models.Transaction {
	transactions := make([]models.Transaction, 0, len(l.entries))
	for i := range l.entries {
		transactions = append(transactions, l.transactionAt(i))
	}
	return transactions
}

// Filter returns the transactions whose category contains substr, ignoring case.
// Each result keeps its position in the full ledger. An empty filter returns everything.
func (l *Ledger) Filter(substr string) []models.Transaction {
	needle := strings.TrimSpace(substr)
	if needle == "" {
		return l.List()
	}

	transactions := make([]models.Transaction, 0)
	for i := range l.entries {
		txn := l.transactionAt(i)
		if txn.CategoryMatches(needle) {
			transactions = append(transactions, txn)
		}
	}
	return transactions
}

// AggregateByCategory sums amounts per exact category string.
// Grouping is case-sensitive even though Filter is not.
func (l *Ledger) AggregateByCategory() (map[string]decimal.Decimal, error) {
	if len(l.entries) == 0 {
		return nil, ErrEmptyLedger
	}

	totals := make(map[string]decimal.Decimal)
	for i := range l.entries {
		e := &l.entries[i]
		totals[e.category] = totals[e.category].Add(e.amount)
	}
	return totals, nil
}

// CategoryTotals is AggregateByCategory with per-category counts, sorted by category
func (l *Ledger) CategoryTotals() ([]models.CategoryTotal, error) {
	if len(l.entries) == 0 {
		return nil, ErrEmptyLedger
	}

	index := make(map[string]int)
	totals := make([]models.CategoryTotal, 0)
	for i := range l.entries {
		e := &l.entries[i]
		idx, ok := index[e.category]
		if !ok {
			idx = len(totals)
			index[e.category] = idx
			totals = append(totals, models.CategoryTotal{Category: e.category, Total: decimal.Zero})
		}
		totals[idx].TransactionCount++
		totals[idx].Total = totals[idx].Total.Add(e.amount)
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Category < totals[j].Category
	})

	return totals, nil
}

func (l *Ledger) validPosition(position int) bool {
	return position >= 0 && position < len(l.entries)
}

func (l *Ledger) positionOf(id uuid.UUID) (int, error) {
	for i := range l.entries {
		if l.entries[i].id == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
}

func (l *Ledger) transactionAt(position int) models.Transaction {
	e := &l.entries[position]
	return models.Transaction{
		ID:       e.id,
		Position: position,
		Date:     e.date,
		Category: e.category,
		Amount:   e.amount,
	}
}
