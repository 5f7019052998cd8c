package datematch

import (
	"strings"
	"time"
	_ "time/tzdata" // the Eastern zone must resolve on hosts without a zoneinfo database
)

// EasternZone is the civil time zone that defines "today".
const EasternZone = "America/New_York"

// RangeSeparator splits "start - end" date ranges.
const RangeSeparator = " - "

// FullLayouts are tried in order against the whole text. Each carries a 4-digit year.
var FullLayouts = []string{
	"2006-1-2",        // 2025-12-26
	"1/2/2006",        // 12/26/2025
	"January 2, 2006", // December 26, 2025
	"Jan 2, 2006",     // Dec 26, 2025
	"January 2 2006",  // December 26 2025
	"Jan 2 2006",      // Dec 26 2025
	"Mon Jan 2, 2006", // Fri Jan 16, 2026
	"Mon Jan 2 2006",  // Fri Jan 16 2026
}

// PartialLayouts lack a year; the caller's current year is substituted.
var PartialLayouts = []string{
	"Jan 2",     // Jan 2
	"January 2", // January 2
	"1/2",       // 1/2
}

// substringLayouts render today for the fallback search. Days and months are
// zero-padded, so "Jan 02" is searched for and "Jan 2" is not.
var substringLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"January 02, 2006",
	"Jan 02, 2006",
	"January 02 2006",
	"Jan 02 2006",
	"Jan 02",
	"January 02",
	"01/02",
}

// MatchesToday reports whether text denotes today, or a date range containing today.
// Only the calendar date of today is used; currentYear fills in year-less dates.
func MatchesToday(text string, today time.Time, currentYear int) bool {
	normalized := Normalize(text)
	if normalized == "" {
		return false
	}
	today = Civil(today)

	if d, ok := ParseFull(normalized); ok {
		if d.Equal(today) {
			return true
		}
	}

	if d, ok := ParsePartial(normalized, currentYear); ok {
		if d.Equal(today) {
			return true
		}
	}

	if start, end, ok := ParseRange(normalized); ok {
		if !today.Before(start) && !today.After(end) {
			return true
		}
	}

	return containsToday(normalized, today)
}

// Normalize trims text and collapses every run of whitespace, including
// non-breaking spaces, into a single space.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// ParseFull parses s with the first matching layout in FullLayouts.
// The whole string must be consumed.
func ParseFull(s string) (time.Time, bool) {
	for _, layout := range FullLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Civil(t), true
		}
	}
	return time.Time{}, false
}

// ParsePartial parses s with the first matching layout in PartialLayouts and
// places the result in year. Month/day pairs that don't exist in that year
// (Feb 29 in a common year) are rejected.
func ParsePartial(s string, year int) (time.Time, bool) {
	for _, layout := range PartialLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		d := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		if d.Month() != t.Month() || d.Day() != t.Day() {
			return time.Time{}, false
		}
		return d, true
	}
	return time.Time{}, false
}

// ParseRange splits s on the first RangeSeparator and parses both ends with
// ParseFull. Range ends always carry an explicit year.
func ParseRange(s string) (start, end time.Time, ok bool) {
	before, after, found := strings.Cut(s, RangeSeparator)
	if !found {
		return time.Time{}, time.Time{}, false
	}
	start, ok = ParseFull(strings.TrimSpace(before))
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok = ParseFull(strings.TrimSpace(after))
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func containsToday(text string, today time.Time) bool {
	for _, layout := range substringLayouts {
		if strings.Contains(text, today.Format(layout)) {
			return true
		}
	}
	return false
}

// Civil drops the time of day and zone from t, keeping its calendar date.
func Civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar date of now as observed in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	return Civil(now.In(loc))
}

// LoadEastern loads the US Eastern zone.
func LoadEastern() (*time.Location, error) {
	return time.LoadLocation(EasternZone)
}
