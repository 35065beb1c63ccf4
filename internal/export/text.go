package export

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"budget-planner/internal/models"
)

const emptyFrame = "Empty DataFrame\nColumns: [Date, Category, Amount]\nIndex: []"

// RenderText renders transactions as a right-aligned table with a position column,
// the layout the budget planner shows in its display pane.
func RenderText(transactions []models.Transaction) string {
	if len(transactions) == 0 {
		return emptyFrame
	}

	rows := make([][4]string, 0, len(transactions)+1)
	rows = append(rows, [4]string{"", "Date", "Category", "Amount"})
	for i := range transactions {
		txn := &transactions[i]
		rows = append(rows, [4]string{
			strconv.Itoa(txn.Position),
			txn.Date,
			txn.Category,
			models.FormatAmount(txn.Amount),
		})
	}

	var widths [4]int
	for _, row := range rows {
		for col, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[col] {
				widths[col] = n
			}
		}
	}

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		line := fmt.Sprintf("%*s  %*s  %*s  %*s", widths[0], row[0], widths[1], row[1], widths[2], row[2], widths[3], row[3])
		sb.WriteString(strings.TrimRight(line, " "))
	}
	return sb.String()
}
