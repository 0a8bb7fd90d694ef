package library

import (
	"github.com/blackwell-systems/lendctl/internal/catalog"
	"github.com/blackwell-systems/lendctl/internal/ledger"
)

// Store loads and saves the two library tables. The flat-file implementation
// below is the only one used in production; tests substitute their own.
type Store interface {
	LoadBooks() ([]catalog.Book, error)
	SaveBooks([]catalog.Book) error
	LoadLoans() ([]ledger.Loan, error)
	SaveLoans([]ledger.Loan) error
}

// Files is the CSV file pair backing the library.
type Files struct {
	BooksPath string
	LoansPath string
}

func (f Files) LoadBooks() ([]catalog.Book, error) {
	return catalog.Load(f.BooksPath)
}

func (f Files) SaveBooks(books []catalog.Book) error {
	return catalog.Save(f.BooksPath, books)
}

func (f Files) LoadLoans() ([]ledger.Loan, error) {
	return ledger.Load(f.LoansPath)
}

func (f Files) SaveLoans(loans []ledger.Loan) error {
	return ledger.Save(f.LoansPath, loans)
}
