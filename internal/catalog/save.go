package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/blackwell-systems/lendctl/internal/util"
)

// Marshal encodes the book list as CSV, header row first.
func Marshal(books []Book) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("encoding book table: %w", err)
	}
	for _, b := range books {
		rec := []string{
			strconv.Itoa(b.ID),
			b.Genre,
			b.Title,
			b.Author,
			util.FormatDate(b.PurchaseDate),
			b.Member,
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("encoding book table: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encoding book table: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the book table to a file on disk.
func Save(path string, books []Book) error {
	data, err := Marshal(books)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
