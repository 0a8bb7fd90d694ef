package recommend_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/blackwell-systems/lendctl/internal/catalog"
	"github.com/blackwell-systems/lendctl/internal/ledger"
	"github.com/blackwell-systems/lendctl/internal/recommend"
)

func date(d, m, y int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func book(id int, genre, title string) catalog.Book {
	return catalog.Book{
		ID: id, Genre: genre, Title: title, Author: "A",
		PurchaseDate: date(1, 1, 2020), Member: catalog.AvailableMember,
	}
}

func closedLoan(bookID int, member string) ledger.Loan {
	return ledger.Loan{
		BookID: bookID, Member: member,
		Checkout: date(1, 1, 2021), Return: date(10, 1, 2021),
	}
}

// repeat builds n closed loans for the same book by different members.
func repeat(bookID int, n int) []ledger.Loan {
	out := make([]ledger.Loan, n)
	for i := range out {
		out[i] = closedLoan(bookID, "m"+string(rune('a'+i))+"00")
	}
	return out
}

func newEngine(books []catalog.Book, loans []ledger.Loan, opts ...recommend.Option) *recommend.Engine {
	opts = append([]recommend.Option{recommend.WithRand(rand.New(rand.NewSource(1)))}, opts...)
	return recommend.NewEngine(catalog.NewStore(books), ledger.New(loans), opts...)
}

func TestRecommend_WeightedScores(t *testing.T) {
	// Member suii borrowed two Crime books and one Sci-Fi book, so Crime
	// ranks first (weight 12) and Sci-Fi second (weight 6). An unread Crime
	// title with raw popularity 3 scores 36; an unread Sci-Fi title with raw
	// popularity 10 scores 60 and ranks first despite the genre preference.
	books := []catalog.Book{
		book(1, "Crime", "Read Crime One"),
		book(2, "Crime", "Read Crime Two"),
		book(3, "Sci-Fi", "Read Sci-Fi"),
		book(4, "Crime", "Fresh Crime"),
		book(5, "Sci-Fi", "Fresh Sci-Fi"),
		book(6, "Crime", "Another Crime"),
	}
	loans := []ledger.Loan{
		closedLoan(1, "suii"),
		closedLoan(2, "suii"),
		closedLoan(3, "suii"),
	}
	loans = append(loans, repeat(4, 3)...)  // Fresh Crime popularity 3
	loans = append(loans, repeat(5, 10)...) // Fresh Sci-Fi popularity 10
	loans = append(loans, repeat(6, 1)...)  // Another Crime popularity 1

	e := newEngine(books, loans)
	got, err := e.Recommend("suii")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	want := []recommend.Scored{
		{Title: "Fresh Sci-Fi", Score: 60},
		{Title: "Fresh Crime", Score: 36},
		{Title: "Another Crime", Score: 12},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d titles, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRecommend_ExcludesReadTitlesAcrossCopies(t *testing.T) {
	// Copies 1 and 2 share a title; the member read copy 1, so the title is
	// excluded even though copy 2 was never touched by them.
	books := []catalog.Book{
		book(1, "Crime", "Shared Title"),
		book(2, "Crime", "Shared Title"),
		book(3, "Crime", "Other One"),
		book(4, "Crime", "Other Two"),
		book(5, "Crime", "Other Three"),
	}
	loans := []ledger.Loan{closedLoan(1, "suii")}
	loans = append(loans, repeat(3, 2)...)
	loans = append(loans, repeat(4, 2)...)
	loans = append(loans, repeat(5, 2)...)

	e := newEngine(books, loans)
	got, err := e.Recommend("suii")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, s := range got {
		if s.Title == "Shared Title" {
			t.Error("recommended a title the member has already read")
		}
	}
}

func TestRecommend_TitlePopularitySumsCopies(t *testing.T) {
	// Two copies of the same unread title: popularity is the sum of both
	// copies' loan counts.
	books := []catalog.Book{
		book(1, "Crime", "Read One"),
		book(2, "Crime", "Popular"),
		book(3, "Crime", "Popular"),
		book(4, "Crime", "Quiet One"),
		book(5, "Crime", "Quiet Two"),
	}
	loans := []ledger.Loan{closedLoan(1, "suii")}
	loans = append(loans, repeat(2, 2)...)
	loans = append(loans, repeat(3, 3)...)
	loans = append(loans, repeat(4, 1)...)
	loans = append(loans, repeat(5, 1)...)

	e := newEngine(books, loans)
	got, err := e.Recommend("suii")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if got[0].Title != "Popular" || got[0].Score != 5*6 {
		t.Errorf("top result = %+v, want Popular with score 30", got[0])
	}
}

func TestRecommend_FewerThanThreeTitles(t *testing.T) {
	books := []catalog.Book{
		book(1, "Crime", "Read One"),
		book(2, "Crime", "Only Unread"),
	}
	loans := []ledger.Loan{closedLoan(1, "suii")}

	e := newEngine(books, loans)
	if _, err := e.Recommend("suii"); !errors.Is(err, recommend.ErrCannotRecommend) {
		t.Errorf("want ErrCannotRecommend, got %v", err)
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	e := newEngine(nil, nil)
	if _, err := e.Recommend("suii"); !errors.Is(err, recommend.ErrCannotRecommend) {
		t.Errorf("want ErrCannotRecommend, got %v", err)
	}
}

func TestRecommend_NoHistoryUsesFallbackGenres(t *testing.T) {
	// With one fallback genre the sample is forced, so the result is
	// deterministic: three unread Crime titles at weight 1.
	books := []catalog.Book{
		book(1, "Crime", "One"),
		book(2, "Crime", "Two"),
		book(3, "Crime", "Three"),
		book(4, "Sci-Fi", "Elsewhere"),
	}
	loans := append(repeat(1, 4), repeat(2, 2)...)
	loans = append(loans, repeat(3, 1)...)
	loans = append(loans, repeat(4, 9)...)

	e := newEngine(books, loans, recommend.WithFallbackGenres([]string{"Crime"}))
	got, err := e.Recommend("zzzz")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	want := []recommend.Scored{
		{Title: "One", Score: 4},
		{Title: "Two", Score: 2},
		{Title: "Three", Score: 1},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRecommend_NoHistorySeededSampleIsStable(t *testing.T) {
	books := []catalog.Book{
		book(1, "Crime", "One"), book(2, "Crime", "Two"), book(3, "Crime", "Three"),
		book(4, "Sci-Fi", "Four"), book(5, "Fantasy", "Five"), book(6, "Horror", "Six"),
	}
	var loans []ledger.Loan
	for id := 1; id <= 6; id++ {
		loans = append(loans, repeat(id, 2)...)
	}

	run := func() []recommend.Scored {
		e := recommend.NewEngine(catalog.NewStore(books), ledger.New(loans),
			recommend.WithRand(rand.New(rand.NewSource(42))))
		got, err := e.Recommend("zzzz")
		if err != nil && !errors.Is(err, recommend.ErrCannotRecommend) {
			t.Fatalf("Recommend: %v", err)
		}
		return got
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("seeded runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("seeded runs differ at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRecommend_CapsAtTen(t *testing.T) {
	books := []catalog.Book{book(1, "Crime", "Read One")}
	loans := []ledger.Loan{closedLoan(1, "suii")}
	for i := 0; i < 15; i++ {
		id := 10 + i
		books = append(books, book(id, "Crime", "Title "+string(rune('A'+i))))
		loans = append(loans, repeat(id, i+1)...)
	}

	e := newEngine(books, loans)
	got, err := e.Recommend("suii")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("got %d titles, want 10", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Fatal("results not sorted by score descending")
		}
	}
}

func TestRecommend_GenreTieKeepsEncounterOrder(t *testing.T) {
	// One loan each in Crime then Sci-Fi: tie, so Crime (seen first) gets
	// the higher weight.
	books := []catalog.Book{
		book(1, "Crime", "Read Crime"),
		book(2, "Sci-Fi", "Read Sci-Fi"),
		book(3, "Crime", "Fresh Crime"),
		book(4, "Sci-Fi", "Fresh Sci-Fi"),
		book(5, "Crime", "More Crime"),
	}
	loans := []ledger.Loan{
		closedLoan(1, "suii"),
		closedLoan(2, "suii"),
	}
	loans = append(loans, repeat(3, 2)...)
	loans = append(loans, repeat(4, 2)...)
	loans = append(loans, repeat(5, 1)...)

	e := newEngine(books, loans)
	got, err := e.Recommend("suii")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	// Fresh Crime: 2*12=24; Fresh Sci-Fi: 2*6=12; More Crime: 1*12=12.
	if got[0].Title != "Fresh Crime" || got[0].Score != 24 {
		t.Errorf("top = %+v, want Fresh Crime / 24", got[0])
	}
	// Equal scores: first-seen title ranks first, and the top genre's titles
	// are seen before the second genre's.
	if got[1].Title != "More Crime" || got[2].Title != "Fresh Sci-Fi" {
		t.Errorf("tie order = %q, %q", got[1].Title, got[2].Title)
	}
}
