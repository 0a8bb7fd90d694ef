package circulation

import "fmt"

// ValidationError reports malformed input: duplicate ids, a wrong-length
// member id, an empty id list, or an unknown book id. Nothing is mutated for
// the failing item.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ConflictError reports a book whose recorded state blocks the operation:
// already on loan at checkout, or already on the shelf at return. It aborts
// the remaining batch.
type ConflictError struct {
	BookID int
	Holder string // current holder at checkout, empty on a double return
}

func (e *ConflictError) Error() string {
	if e.Holder == "" {
		return fmt.Sprintf("book %d already returned", e.BookID)
	}
	return fmt.Sprintf("book %d is already on loan, to: %s", e.BookID, e.Holder)
}
