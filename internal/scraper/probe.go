package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/pfrederiksen/downtown-busy/internal/datematch"
	"github.com/pfrederiksen/downtown-busy/internal/venue"
)

// Candidate is one element matched by a venue's selector.
// *goquery.Selection satisfies it.
type Candidate interface {
	Attr(name string) (string, bool)
	Text() string
}

// DocumentFetcher loads a venue page
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// Prober checks a single venue page for an event today
type Prober struct {
	fetcher DocumentFetcher
	timeout time.Duration
}

// NewProber creates a Prober that fetches pages with f
func NewProber(f DocumentFetcher) *Prober {
	return &Prober{
		fetcher: f,
		timeout: Timeout,
	}
}

// Probe fetches the venue page and reports whether any selected element denotes today.
// Fetch, status, selector and HTML errors are returned; callers treat them as "no event".
func (p *Prober) Probe(ctx context.Context, v venue.Venue, today time.Time) (bool, error) {
	matcher, err := cascadia.Compile(v.Selector)
	if err != nil {
		return false, fmt.Errorf("compiling selector %q: %w", v.Selector, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	doc, err := p.fetcher.Fetch(ctx, v.URL)
	if err != nil {
		return false, err
	}

	attr := ""
	if v.HasDateAttribute() {
		attr = v.DateAttribute
	}
	return MatchCandidates(Candidates(doc.FindMatcher(matcher)), attr, today), nil
}

// Candidates splits a selection into its elements, in document order
func Candidates(sel *goquery.Selection) []Candidate {
	candidates := make([]Candidate, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		candidates = append(candidates, s)
	})
	return candidates
}

// MatchCandidates reports whether any candidate denotes today. When dateAttribute is
// set, each candidate's attribute is checked before its text. The first match wins.
func MatchCandidates(candidates []Candidate, dateAttribute string, today time.Time) bool {
	dateAttribute = strings.TrimSpace(dateAttribute)
	currentYear := today.Year()

	for _, c := range candidates {
		if dateAttribute != "" {
			if value, ok := c.Attr(dateAttribute); ok && datematch.MatchesToday(value, today, currentYear) {
				return true
			}
		}

		if datematch.MatchesToday(c.Text(), today, currentYear) {
			return true
		}
	}

	return false
}
