package ledger

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/blackwell-systems/lendctl/internal/util"
)

// Header is the fixed column order of the loan log.
var Header = []string{"book_id", "checkout", "return", "member"}

// Load reads the loan log from disk. A missing file yields an empty log.
func Load(path string) ([]Loan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Loan{}, nil
		}
		return nil, fmt.Errorf("reading loan log: %w", err)
	}
	return Parse(data)
}

// Parse decodes CSV bytes into a loan list. The first row is the header; an
// empty return column means the loan is open.
func Parse(data []byte) ([]Loan, error) {
	if len(data) == 0 {
		return []Loan{}, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(Header)

	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return []Loan{}, nil
		}
		return nil, fmt.Errorf("reading loan log header: %w", err)
	}

	var loans []Loan
	for row := 2; ; row++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loan log row %d: %w", row, err)
		}

		l, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("loan log row %d: %w", row, err)
		}
		loans = append(loans, l)
	}

	if loans == nil {
		return []Loan{}, nil
	}
	return loans, nil
}

func parseRecord(rec []string) (Loan, error) {
	bookID, err := strconv.Atoi(rec[0])
	if err != nil {
		return Loan{}, fmt.Errorf("bad book id %q", rec[0])
	}
	checkout, err := util.ParseDate(rec[1])
	if err != nil {
		return Loan{}, err
	}

	var returned time.Time
	if rec[2] != "" {
		returned, err = util.ParseDate(rec[2])
		if err != nil {
			return Loan{}, err
		}
	}

	return Loan{
		BookID:   bookID,
		Checkout: checkout,
		Return:   returned,
		Member:   rec[3],
	}, nil
}
