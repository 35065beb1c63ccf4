package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"budget-planner/internal/models"
)

// DelimitedHeader is the first line of every delimited export
const DelimitedHeader = "Date,Category,Amount"

var (
	ErrExportIO = errors.New("export destination is not writable")
)

// WriteDelimited writes one comma-separated line per transaction, in the given order,
// after the header line. Fields are not escaped: a comma inside a category or date
// produces an extra column, which is a known limitation of the format.
func WriteDelimited(w io.Writer, transactions []models.Transaction) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, DelimitedHeader); err != nil {
		return fmt.Errorf("%w: %v", ErrExportIO, err)
	}

	for i := range transactions {
		txn := &transactions[i]
		if _, err := fmt.Fprintf(bw, "%s,%s,%s\n", txn.Date, txn.Category, models.FormatAmount(txn.Amount)); err != nil {
			return fmt.Errorf("%w: %v", ErrExportIO, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	return nil
}

// ExportDelimited writes the transactions to path, replacing any existing file
func ExportDelimited(path string, transactions []models.Transaction) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrExportIO, closeErr)
		}
	}()

	return WriteDelimited(f, transactions)
}
