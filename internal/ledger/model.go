package ledger

import "time"

// Loan is one transaction in the log: a checkout, and later its return. A
// zero Return means the loan is still open and the book is out.
type Loan struct {
	BookID   int
	Checkout time.Time
	Return   time.Time
	Member   string
}

// Open reports whether the book is still out according to this record alone.
func (l *Loan) Open() bool {
	return l.Return.IsZero()
}
