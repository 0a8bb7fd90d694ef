package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/blackwell-systems/lendctl/internal/util"
)

// Header is the fixed column order of the book table.
var Header = []string{"id", "genre", "title", "author", "purchase_date", "member"}

// Load reads the book table from disk. A missing file yields an empty
// catalog — the init command creates it.
func Load(path string) ([]Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Book{}, nil
		}
		return nil, fmt.Errorf("reading book table: %w", err)
	}
	return Parse(data)
}

// Parse decodes CSV bytes into a book list. The first row is the header.
func Parse(data []byte) ([]Book, error) {
	if len(data) == 0 {
		return []Book{}, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(Header)

	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return []Book{}, nil
		}
		return nil, fmt.Errorf("reading book table header: %w", err)
	}

	var books []Book
	for row := 2; ; row++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("book table row %d: %w", row, err)
		}

		b, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("book table row %d: %w", row, err)
		}
		books = append(books, b)
	}

	if books == nil {
		return []Book{}, nil
	}
	return books, nil
}

func parseRecord(rec []string) (Book, error) {
	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return Book{}, fmt.Errorf("bad book id %q", rec[0])
	}
	purchased, err := util.ParseDate(rec[4])
	if err != nil {
		return Book{}, err
	}
	return Book{
		ID:           id,
		Genre:        rec[1],
		Title:        rec[2],
		Author:       rec[3],
		PurchaseDate: purchased,
		Member:       rec[5],
	}, nil
}
