package search

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blackwell-systems/lendctl/internal/catalog"
	"github.com/blackwell-systems/lendctl/internal/ledger"
	"github.com/blackwell-systems/lendctl/internal/util"
)

// Query describes one catalog search. Attribute selects the book field the
// term is compared against; purchase_date compares against the DD/MM/YYYY
// string form. An empty SortBy keeps catalog order.
type Query struct {
	Attribute  string
	Term       string
	IgnoreCase bool
	Contains   bool
	SortBy     string
	Descending bool
}

// Result is one matching book plus a presentation hint: Highlight is set
// when the book's most recent loan is open and past the loan period.
type Result struct {
	Book      *catalog.Book
	Highlight bool
}

// Service runs queries over the shared catalog and ledger.
type Service struct {
	books      *catalog.Store
	loans      *ledger.Ledger
	now        func() time.Time
	loanPeriod int
}

// Option adjusts a Service.
type Option func(*Service)

// WithClock substitutes the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLoanPeriod sets the overdue threshold in days.
func WithLoanPeriod(days int) Option {
	return func(s *Service) { s.loanPeriod = days }
}

// NewService builds a search service over the shared stores.
func NewService(books *catalog.Store, loans *ledger.Ledger, opts ...Option) *Service {
	s := &Service{books: books, loans: loans, now: time.Now, loanPeriod: 60}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns the books whose attribute matches the query, in catalog
// order unless a sort is requested. Unknown attribute names are an error.
func (s *Service) Search(q Query) ([]Result, error) {
	if _, ok := (&catalog.Book{}).Attribute(q.Attribute); !ok {
		return nil, fmt.Errorf("unknown attribute %q", q.Attribute)
	}

	term := q.Term
	if q.IgnoreCase {
		term = strings.ToLower(term)
	}

	now := s.now()
	var out []Result
	for _, b := range s.books.All() {
		value, _ := b.Attribute(q.Attribute)
		if q.IgnoreCase {
			value = strings.ToLower(value)
		}

		matched := value == term
		if q.Contains {
			matched = strings.Contains(value, term)
		}
		if !matched {
			continue
		}
		out = append(out, Result{Book: b, Highlight: s.highlight(b, now)})
	}

	if q.SortBy != "" {
		if err := sortResults(out, q.SortBy, q.Descending); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// highlight reports whether the book's most recent loan record is open with
// a checkout more than the loan period ago.
func (s *Service) highlight(b *catalog.Book, now time.Time) bool {
	loans := s.loans.ByBook(b.ID)
	if len(loans) == 0 {
		return false
	}
	last := loans[len(loans)-1]
	return last.Open() && util.OlderThanDays(last.Checkout, now, s.loanPeriod)
}

// sortResults orders matches by attribute: numeric for id, chronological for
// purchase_date, lexicographic otherwise.
func sortResults(results []Result, attr string, desc bool) error {
	var less func(a, b *catalog.Book) bool
	switch attr {
	case "id":
		less = func(a, b *catalog.Book) bool { return a.ID < b.ID }
	case "purchase_date":
		less = func(a, b *catalog.Book) bool { return a.PurchaseDate.Before(b.PurchaseDate) }
	case "genre", "title", "author", "member":
		less = func(a, b *catalog.Book) bool {
			av, _ := a.Attribute(attr)
			bv, _ := b.Attribute(attr)
			return av < bv
		}
	default:
		return fmt.Errorf("unknown sort attribute %q", attr)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if desc {
			return less(results[j].Book, results[i].Book)
		}
		return less(results[i].Book, results[j].Book)
	})
	return nil
}
