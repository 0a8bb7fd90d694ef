package recommend

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/blackwell-systems/lendctl/internal/catalog"
	"github.com/blackwell-systems/lendctl/internal/ledger"
)

// ErrCannotRecommend is returned when fewer than three distinct titles
// qualify for the member.
var ErrCannotRecommend = errors.New("cannot recommend")

// DefaultFallbackGenres is sampled when a member has no loan history.
var DefaultFallbackGenres = []string{
	"Action", "Crime", "Fantasy", "Mystery", "Romance",
	"Sci-Fi", "Tragedy", "Drama", "Adventure", "Horror",
}

// genreWeight is the multiplier applied per preference rank: the member's
// favourite genre scores rank*6, their least-borrowed genre scores 6.
const genreWeight = 6

// Scored is one recommended title with its popularity score.
type Scored struct {
	Title string
	Score int
}

// Engine ranks unread titles for a member by a weighted popularity score:
// how much the member borrows the genre, times how often the title's copies
// have been borrowed by anyone.
type Engine struct {
	books          *catalog.Store
	loans          *ledger.Ledger
	rng            *rand.Rand
	fallbackGenres []string
}

// Option adjusts an Engine.
type Option func(*Engine)

// WithRand substitutes the randomness source used for the no-history genre
// fallback, so results are reproducible under test.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithFallbackGenres overrides the genres sampled for members with no
// history.
func WithFallbackGenres(genres []string) Option {
	return func(e *Engine) { e.fallbackGenres = genres }
}

// NewEngine builds a recommendation engine over the shared stores.
func NewEngine(books *catalog.Store, loans *ledger.Ledger, opts ...Option) *Engine {
	e := &Engine{
		books:          books,
		loans:          loans,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		fallbackGenres: DefaultFallbackGenres,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend returns up to ten titles for the member, best score first. It
// returns ErrCannotRecommend when fewer than three distinct titles qualify.
func (e *Engine) Recommend(memberID string) ([]Scored, error) {
	genres := e.genresByPreference(memberID)

	weights := make(map[string]int, len(genres))
	if len(genres) > 0 {
		// Most-borrowed genre gets the highest multiple of the weight.
		for i, g := range genres {
			weights[g] = (len(genres) - i) * genreWeight
		}
	} else {
		// No history: sample two genres and weigh them equally.
		genres = e.sampleFallback(2)
		for _, g := range genres {
			weights[g] = 1
		}
	}

	read := e.titlesRead(memberID)

	scores := make(map[string]int)
	var order []string // first-seen order, for a stable final sort
	for _, genre := range genres {
		weight := weights[genre]
		for _, tp := range e.titlePopularity(genre, read) {
			score := tp.pop * weight
			prev, seen := scores[tp.title]
			if !seen {
				order = append(order, tp.title)
			}
			// A title has one genre, but inconsistent data could surface it
			// twice; the larger contribution wins.
			if !seen || score > prev {
				scores[tp.title] = score
			}
		}
	}

	if len(scores) < 3 {
		return nil, ErrCannotRecommend
	}

	out := make([]Scored, 0, len(scores))
	for _, title := range order {
		out = append(out, Scored{Title: title, Score: scores[title]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	if len(out) > 10 {
		out = out[:10]
	}
	return out, nil
}

// genresByPreference tallies the member's loans per genre and returns the
// genres most-borrowed first. Ties keep first-encounter order.
func (e *Engine) genresByPreference(memberID string) []string {
	counts := make(map[string]int)
	var order []string
	for _, loan := range e.loans.ByMember(memberID) {
		b, ok := e.books.ByID(loan.BookID)
		if !ok {
			continue
		}
		if _, seen := counts[b.Genre]; !seen {
			order = append(order, b.Genre)
		}
		counts[b.Genre]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}

type titlePop struct {
	title string
	pop   int
}

// titlePopularity sums, per unread title of the genre, the historical loan
// count of every copy carrying that title. Titles come back in catalog
// first-encounter order so equal scores rank deterministically.
func (e *Engine) titlePopularity(genre string, read map[string]bool) []titlePop {
	index := make(map[string]int)
	var out []titlePop
	for _, b := range e.books.All() {
		if b.Genre != genre || read[b.Title] {
			continue
		}
		i, seen := index[b.Title]
		if !seen {
			i = len(out)
			index[b.Title] = i
			out = append(out, titlePop{title: b.Title})
		}
		out[i].pop += len(e.loans.ByBook(b.ID))
	}
	return out
}

// titlesRead collects the titles the member has borrowed, across all copies.
func (e *Engine) titlesRead(memberID string) map[string]bool {
	read := make(map[string]bool)
	for _, loan := range e.loans.ByMember(memberID) {
		if b, ok := e.books.ByID(loan.BookID); ok {
			read[b.Title] = true
		}
	}
	return read
}

// sampleFallback picks n distinct genres from the fallback list.
func (e *Engine) sampleFallback(n int) []string {
	if n > len(e.fallbackGenres) {
		n = len(e.fallbackGenres)
	}
	picks := e.rng.Perm(len(e.fallbackGenres))[:n]
	out := make([]string, n)
	for i, p := range picks {
		out[i] = e.fallbackGenres[p]
	}
	return out
}
