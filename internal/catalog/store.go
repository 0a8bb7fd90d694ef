package catalog

// Store is the in-memory book table, keyed by id. Iteration order is load
// order. Callers mutate availability by assigning to the shared records the
// store hands out; there is no separate update method.
type Store struct {
	books []*Book
	byID  map[int]*Book
}

// NewStore builds a store from loaded records. Ids are expected to be
// unique; a duplicate replaces the earlier record in the id index.
func NewStore(books []Book) *Store {
	s := &Store{
		books: make([]*Book, 0, len(books)),
		byID:  make(map[int]*Book, len(books)),
	}
	for i := range books {
		b := books[i]
		s.books = append(s.books, &b)
		s.byID[b.ID] = &b
	}
	return s
}

// ByID returns the book with the given id.
func (s *Store) ByID(id int) (*Book, bool) {
	b, ok := s.byID[id]
	return b, ok
}

// All returns every book in load order. The records are shared, not copies.
func (s *Store) All() []*Book {
	return s.books
}

// Filter returns the books matching the predicate, in load order.
func (s *Store) Filter(keep func(*Book) bool) []*Book {
	var out []*Book
	for _, b := range s.books {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// Len returns the number of books in the catalog.
func (s *Store) Len() int {
	return len(s.books)
}

// Snapshot returns a copy of every record, in load order, for persistence.
func (s *Store) Snapshot() []Book {
	out := make([]Book, len(s.books))
	for i, b := range s.books {
		out[i] = *b
	}
	return out
}
