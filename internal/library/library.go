package library

import (
	"fmt"
	"sync"

	"github.com/blackwell-systems/lendctl/internal/catalog"
	"github.com/blackwell-systems/lendctl/internal/ledger"
)

// Library is the composition root: it owns the one in-memory catalog store
// and loan ledger every service shares, and the store they are flushed to.
type Library struct {
	mu    sync.Mutex
	books *catalog.Store
	loans *ledger.Ledger
	store Store
}

// Open loads both tables through the store.
func Open(store Store) (*Library, error) {
	books, err := store.LoadBooks()
	if err != nil {
		return nil, err
	}
	loans, err := store.LoadLoans()
	if err != nil {
		return nil, err
	}
	return &Library{
		books: catalog.NewStore(books),
		loans: ledger.New(loans),
		store: store,
	}, nil
}

// Catalog returns the shared book store.
func (l *Library) Catalog() *catalog.Store {
	return l.books
}

// Ledger returns the shared loan log.
func (l *Library) Ledger() *ledger.Ledger {
	return l.loans
}

// Lock takes the library-wide mutex. Each compound validate-then-mutate
// operation (checkout, return) must run under it end to end; the sequence is
// not atomic and must not interleave with another call touching the same
// book.
func (l *Library) Lock() {
	l.mu.Lock()
}

// Unlock releases the library-wide mutex.
func (l *Library) Unlock() {
	l.mu.Unlock()
}

// Flush writes both tables back through the store.
func (l *Library) Flush() error {
	if err := l.store.SaveBooks(l.books.Snapshot()); err != nil {
		return fmt.Errorf("saving book table: %w", err)
	}
	if err := l.store.SaveLoans(l.loans.Snapshot()); err != nil {
		return fmt.Errorf("saving loan log: %w", err)
	}
	return nil
}
