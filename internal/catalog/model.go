package catalog

import (
	"strconv"
	"time"

	"github.com/blackwell-systems/lendctl/internal/util"
)

// AvailableMember is the sentinel stored in Book.Member while a copy sits on
// the shelf. It is never a real member id.
const AvailableMember = "0"

// Book is one copy in the catalog. Several copies may share a title; the id
// identifies the physical copy.
type Book struct {
	ID           int
	Genre        string
	Title        string
	Author       string
	PurchaseDate time.Time
	Member       string
}

// OnShelf reports whether the copy is currently available.
func (b *Book) OnShelf() bool {
	return b.Member == AvailableMember
}

// Attribute returns the named field in its string form, the way search and
// sorting compare it. purchase_date is rendered DD/MM/YYYY, not as the raw
// time value. The second return is false for unknown names.
func (b *Book) Attribute(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.Itoa(b.ID), true
	case "genre":
		return b.Genre, true
	case "title":
		return b.Title, true
	case "author":
		return b.Author, true
	case "purchase_date":
		return util.FormatDate(b.PurchaseDate), true
	case "member":
		return b.Member, true
	}
	return "", false
}
