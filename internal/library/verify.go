package library

import (
	"fmt"

	"github.com/blackwell-systems/lendctl/internal/catalog"
)

// Violation is one breach of the catalog/ledger invariant: a book marked out
// must have exactly one open loan, a book on the shelf must have none, and
// every loan must reference a catalog book.
type Violation struct {
	BookID    int
	Holder    string // book's member field, "0" when on shelf
	OpenLoans int
	Unknown   bool // loan references a book id not in the catalog
}

func (v Violation) String() string {
	if v.Unknown {
		return fmt.Sprintf("loan log references unknown book %d", v.BookID)
	}
	if v.Holder == catalog.AvailableMember {
		return fmt.Sprintf("book %d is on the shelf but has %d open loans", v.BookID, v.OpenLoans)
	}
	return fmt.Sprintf("book %d is out to %s but has %d open loans", v.BookID, v.Holder, v.OpenLoans)
}

// Verify checks every book against the loan log and returns all violations.
// A clean library returns nil.
func (l *Library) Verify() []Violation {
	var out []Violation

	for _, b := range l.books.All() {
		open := 0
		for _, loan := range l.loans.ByBook(b.ID) {
			if loan.Open() {
				open++
			}
		}
		if b.OnShelf() {
			if open != 0 {
				out = append(out, Violation{BookID: b.ID, Holder: b.Member, OpenLoans: open})
			}
		} else if open != 1 {
			out = append(out, Violation{BookID: b.ID, Holder: b.Member, OpenLoans: open})
		}
	}

	seen := map[int]bool{}
	for _, loan := range l.loans.All() {
		if seen[loan.BookID] {
			continue
		}
		seen[loan.BookID] = true
		if _, ok := l.books.ByID(loan.BookID); !ok {
			out = append(out, Violation{BookID: loan.BookID, Unknown: true})
		}
	}

	return out
}
