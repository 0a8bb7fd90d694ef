package ledger_test

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/lendctl/internal/ledger"
)

var sampleCSV = []byte(strings.Join([]string{
	"book_id,checkout,return,member",
	"5,01/02/2021,15/02/2021,coaa",
	"5,20/03/2021,,suii",
	"7,10/01/2021,,coaa",
	"5,01/04/2021,,util",
	"",
}, "\n"))

func TestParse_OpenAndClosed(t *testing.T) {
	loans, err := ledger.Parse(sampleCSV)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(loans) != 4 {
		t.Fatalf("expected 4 loans, got %d", len(loans))
	}
	if loans[0].Open() {
		t.Error("loans[0] has a return date but reports open")
	}
	if !loans[1].Open() {
		t.Error("loans[1] has no return date but reports closed")
	}
	if loans[1].Member != "suii" {
		t.Errorf("loans[1].Member = %q, want %q", loans[1].Member, "suii")
	}
}

func TestParse_Empty(t *testing.T) {
	loans, err := ledger.Parse(nil)
	if err != nil {
		t.Fatalf("Parse empty: %v", err)
	}
	if len(loans) != 0 {
		t.Errorf("expected 0 loans, got %d", len(loans))
	}
}

func TestParse_BadCheckout(t *testing.T) {
	data := []byte("book_id,checkout,return,member\n1,notadate,,suii\n")
	if _, err := ledger.Parse(data); err == nil {
		t.Error("expected error for bad checkout date, got nil")
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	loans, err := ledger.Parse(sampleCSV)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := ledger.Marshal(loans)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	loans2, err := ledger.Parse(data)
	if err != nil {
		t.Fatalf("re-Parse: %v", err)
	}
	if len(loans2) != len(loans) {
		t.Fatalf("round-trip length: got %d, want %d", len(loans2), len(loans))
	}
	for i := range loans {
		if loans[i] != loans2[i] {
			t.Errorf("[%d] round-trip mismatch: %+v vs %+v", i, loans[i], loans2[i])
		}
	}
}

func TestMarshal_OpenLoanEmptyReturnColumn(t *testing.T) {
	loans := []ledger.Loan{
		{BookID: 9, Checkout: time.Date(2021, 3, 20, 0, 0, 0, 0, time.UTC), Member: "suii"},
	}
	data, err := ledger.Marshal(loans)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := "book_id,checkout,return,member\n9,20/03/2021,,suii\n"
	if string(data) != want {
		t.Errorf("Marshal = %q, want %q", data, want)
	}
}

func TestSaveLoad_MissingFile(t *testing.T) {
	loans, err := ledger.Load(t.TempDir() + "/nope.csv")
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if len(loans) != 0 {
		t.Errorf("expected empty log, got %d loans", len(loans))
	}
}

func TestByMember_Order(t *testing.T) {
	loans, _ := ledger.Parse(sampleCSV)
	lg := ledger.New(loans)

	got := lg.ByMember("coaa")
	if len(got) != 2 {
		t.Fatalf("expected 2 loans for coaa, got %d", len(got))
	}
	if got[0].BookID != 5 || got[1].BookID != 7 {
		t.Errorf("order = [%d %d], want [5 7]", got[0].BookID, got[1].BookID)
	}
}

func TestByBook_Order(t *testing.T) {
	loans, _ := ledger.Parse(sampleCSV)
	lg := ledger.New(loans)

	got := lg.ByBook(5)
	if len(got) != 3 {
		t.Fatalf("expected 3 loans for book 5, got %d", len(got))
	}
	if got[0].Member != "coaa" || got[2].Member != "util" {
		t.Error("ByBook does not preserve load order")
	}
}

func TestMostRecentOpenForBook_PrefersLaterEntries(t *testing.T) {
	// Book 5 has two open records (inconsistent data); the later one wins.
	loans, _ := ledger.Parse(sampleCSV)
	lg := ledger.New(loans)

	l, ok := lg.MostRecentOpenForBook(5)
	if !ok {
		t.Fatal("no open loan found for book 5")
	}
	if l.Member != "util" {
		t.Errorf("open loan member = %q, want %q (latest entry)", l.Member, "util")
	}
}

func TestMostRecentOpenForBook_NoneOpen(t *testing.T) {
	loans := []ledger.Loan{
		{BookID: 3, Checkout: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), Return: time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), Member: "suii"},
	}
	lg := ledger.New(loans)

	if _, ok := lg.MostRecentOpenForBook(3); ok {
		t.Error("found an open loan for a fully returned book")
	}
	if _, ok := lg.MostRecentOpenForBook(99); ok {
		t.Error("found an open loan for an unknown book")
	}
}

func TestAppend_VisibleInLookups(t *testing.T) {
	lg := ledger.New(nil)
	l := &ledger.Loan{BookID: 2, Checkout: time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC), Member: "suii"}
	lg.Append(l)

	if lg.Len() != 1 {
		t.Fatalf("Len = %d, want 1", lg.Len())
	}
	got, ok := lg.MostRecentOpenForBook(2)
	if !ok || got != l {
		t.Error("appended record not returned by MostRecentOpenForBook")
	}
	if len(lg.ByMember("suii")) != 1 {
		t.Error("appended record not returned by ByMember")
	}
}
