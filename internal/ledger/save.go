package ledger

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/blackwell-systems/lendctl/internal/util"
)

// Marshal encodes the loan log as CSV, header row first. Open loans carry an
// empty return column.
func Marshal(loans []Loan) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("encoding loan log: %w", err)
	}
	for _, l := range loans {
		returned := ""
		if !l.Return.IsZero() {
			returned = util.FormatDate(l.Return)
		}
		rec := []string{
			strconv.Itoa(l.BookID),
			util.FormatDate(l.Checkout),
			returned,
			l.Member,
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("encoding loan log: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encoding loan log: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the loan log to a file on disk.
func Save(path string, loans []Loan) error {
	data, err := Marshal(loans)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
