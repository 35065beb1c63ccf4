package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is one budget record held by the ledger.
// Position is the record's current zero-based index and is only valid until the
// next mutation of the ledger; ID never changes.
type Transaction struct {
	ID       uuid.UUID       `json:"id"`
	Position int             `json:"position"`
	Date     string          `json:"date"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryMatches reports whether the category contains substr, ignoring case.
func (t *Transaction) CategoryMatches(substr string) bool {
	return strings.Contains(strings.ToLower(t.Category), strings.ToLower(substr))
}

// FormatAmount renders an amount the way the delimited export writes it:
// a plain decimal number that always carries a fractional part.
func FormatAmount(amount decimal.Decimal) string {
	s := amount.String()
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
