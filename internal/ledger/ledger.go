package ledger

// Ledger is the in-memory loan log. Logically append-only: records are added
// on checkout and their Return field is set on return, but entries are never
// removed. Iteration order is load/append order.
type Ledger struct {
	loans []*Loan
}

// New builds a ledger from loaded records.
func New(loans []Loan) *Ledger {
	lg := &Ledger{loans: make([]*Loan, 0, len(loans))}
	for i := range loans {
		l := loans[i]
		lg.loans = append(lg.loans, &l)
	}
	return lg
}

// Append adds a new loan record to the end of the log.
func (lg *Ledger) Append(l *Loan) {
	lg.loans = append(lg.loans, l)
}

// All returns every record in load/append order. Records are shared.
func (lg *Ledger) All() []*Loan {
	return lg.loans
}

// ByMember returns the records for a member, in load/append order.
func (lg *Ledger) ByMember(memberID string) []*Loan {
	var out []*Loan
	for _, l := range lg.loans {
		if l.Member == memberID {
			out = append(out, l)
		}
	}
	return out
}

// ByBook returns the records for a book, in load/append order.
func (lg *Ledger) ByBook(bookID int) []*Loan {
	var out []*Loan
	for _, l := range lg.loans {
		if l.BookID == bookID {
			out = append(out, l)
		}
	}
	return out
}

// MostRecentOpenForBook returns the newest open record for a book. Scanning
// runs from the end so that later entries win if the log ever holds more
// than one open record for the same book.
func (lg *Ledger) MostRecentOpenForBook(bookID int) (*Loan, bool) {
	for i := len(lg.loans) - 1; i >= 0; i-- {
		l := lg.loans[i]
		if l.BookID == bookID && l.Open() {
			return l, true
		}
	}
	return nil, false
}

// Len returns the number of records in the log.
func (lg *Ledger) Len() int {
	return len(lg.loans)
}

// Snapshot returns a copy of every record, in order, for persistence.
func (lg *Ledger) Snapshot() []Loan {
	out := make([]Loan, len(lg.loans))
	for i, l := range lg.loans {
		out[i] = *l
	}
	return out
}
