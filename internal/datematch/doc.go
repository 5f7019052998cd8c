// Package datematch decides whether a fragment of scraped text denotes today's date.
//
// Venue sites format dates in many ways: ISO dates in attributes, "Fri Jan 16, 2026"
// in headings, "Jan 9, 2026 - Jan 18, 2026" for runs of shows, or "Dec 26" with the
// year left off. MatchesToday tries a fixed sequence of strict, whole-string parses
// first and only then falls back to searching for today's date inside the text.
//
// Numeric dates are always read as month/day (US convention), so "01/02/2026" is
// January 2nd and never February 1st.
package datematch
