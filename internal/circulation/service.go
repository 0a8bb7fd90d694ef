package circulation

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/blackwell-systems/lendctl/internal/catalog"
	"github.com/blackwell-systems/lendctl/internal/ledger"
	"github.com/blackwell-systems/lendctl/internal/library"
	"github.com/blackwell-systems/lendctl/internal/util"
)

// Outcome is the error/warning/success triple every circulation operation
// reports. Errors and warnings are values, never panics; the presentation
// layer decides how each field is shown. A batch can carry both an error and
// a success: books processed before the failing one stay committed.
type Outcome struct {
	Err     error
	Warning string
	Success string
}

// Service executes checkouts and returns against the shared library state.
type Service struct {
	lib         *library.Library
	now         func() time.Time
	loanPeriod  int // days a book may be held before it counts as overdue
	memberIDLen int
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

// WithMemberIDLength sets the required member id length.
func WithMemberIDLength(n int) Option {
	return func(s *Service) { s.memberIDLen = n }
}

// NewService builds a circulation service over the library. Defaults: wall
// clock, 60-day loan period, 4-character member ids.
func NewService(lib *library.Library, opts ...Option) *Service {
	s := &Service{
		lib:         lib,
		now:         time.Now,
		loanPeriod:  60,
		memberIDLen: 4,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Checkout withdraws the given books to a member. Validation runs in order
// (duplicates, member id length, empty list, then each book in turn) and the
// first failure stops the batch — but books validated before that point are
// already withdrawn, reported in Success, and persisted. The warning lists
// any books the member has now been holding longer than the loan period.
func (s *Service) Checkout(memberID string, bookIDs []int) Outcome {
	s.lib.Lock()
	defer s.lib.Unlock()

	books := s.lib.Catalog()
	loans := s.lib.Ledger()
	now := s.now()

	var out Outcome
	var withdrawn []int

	switch {
	case hasDuplicates(bookIDs):
		out.Err = &ValidationError{Reason: "duplicate book IDs entered"}
	case len(memberID) != s.memberIDLen:
		out.Err = &ValidationError{Reason: fmt.Sprintf("invalid member ID: %q", memberID)}
	case len(bookIDs) == 0:
		out.Err = &ValidationError{Reason: "no books to checkout"}
	default:
		for _, id := range bookIDs {
			b, ok := books.ByID(id)
			if !ok {
				out.Err = &ValidationError{Reason: fmt.Sprintf("no book with ID: %d", id)}
				break
			}
			if !b.OnShelf() {
				out.Err = &ConflictError{BookID: id, Holder: b.Member}
				break
			}
			b.Member = memberID
			loans.Append(&ledger.Loan{BookID: id, Checkout: now, Member: memberID})
			withdrawn = append(withdrawn, id)
		}
	}

	out.Warning = s.heldTooLongWarning(memberID, now)

	if len(withdrawn) > 0 {
		out.Success = listMessage("Book %s withdrawn", "Books %s withdrawn", withdrawn)
		s.flush(&out)
	}
	return out
}

// Return takes the given books back in. Each book must exist and be out; the
// first failure stops the batch with the same partial-commit rule as
// Checkout. Books returned after the loan period are listed in the warning,
// in processing order.
func (s *Service) Return(bookIDs []int) Outcome {
	s.lib.Lock()
	defer s.lib.Unlock()

	books := s.lib.Catalog()
	loans := s.lib.Ledger()
	now := s.now()

	var out Outcome
	var returned, overdue []int

	for _, id := range bookIDs {
		b, ok := books.ByID(id)
		if !ok {
			out.Err = &ValidationError{Reason: fmt.Sprintf("no book with ID: %d", id)}
			break
		}
		if b.OnShelf() {
			out.Err = &ConflictError{BookID: id}
			break
		}
		b.Member = catalog.AvailableMember

		// The open checkout of this book is its most recent log entry. A
		// missing one means the files were inconsistent; the book is still
		// marked returned.
		if loan, ok := loans.MostRecentOpenForBook(id); ok {
			loan.Return = now
			if util.OlderThanDays(loan.Checkout, now, s.loanPeriod) {
				overdue = append(overdue, id)
			}
		}
		returned = append(returned, id)
	}

	if len(overdue) == 1 {
		out.Warning = fmt.Sprintf("Book %d was returned after %d days", overdue[0], s.loanPeriod)
	} else if len(overdue) > 1 {
		out.Warning = fmt.Sprintf("Books %s were returned after %d days", idList(overdue), s.loanPeriod)
	}
	if len(returned) > 0 {
		out.Success = listMessage("Book %s returned", "Books %s returned", returned)
		s.flush(&out)
	}
	return out
}

// heldTooLongWarning lists the member's open loans older than the loan
// period, ids ascending.
func (s *Service) heldTooLongWarning(memberID string, now time.Time) string {
	var held []int
	for _, loan := range s.lib.Ledger().ByMember(memberID) {
		if loan.Open() && util.OlderThanDays(loan.Checkout, now, s.loanPeriod) {
			held = append(held, loan.BookID)
		}
	}
	if len(held) == 0 {
		return ""
	}
	sort.Ints(held)
	if len(held) == 1 {
		return fmt.Sprintf("Book %d is being held for more than %d days", held[0], s.loanPeriod)
	}
	return fmt.Sprintf("Books %s are being held for more than %d days", idList(held), s.loanPeriod)
}

// flush persists both tables. A failed flush is fatal to the operation's
// success even though the in-memory state already changed: the success
// message is withdrawn and the error surfaces alongside any earlier one.
func (s *Service) flush(out *Outcome) {
	if err := s.lib.Flush(); err != nil {
		out.Err = errors.Join(out.Err, fmt.Errorf("saving library state: %w", err))
		out.Success = ""
	}
}

func hasDuplicates(ids []int) bool {
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return true
		}
		seen[id] = true
	}
	return false
}

func listMessage(singular, plural string, ids []int) string {
	if len(ids) == 1 {
		return fmt.Sprintf(singular, strconv.Itoa(ids[0]))
	}
	return fmt.Sprintf(plural, idList(ids))
}

func idList(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
