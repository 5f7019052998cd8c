// Package scraper fetches venue event pages and looks for today's date in them.
//
// A Fetcher downloads a page with browser-like headers, decodes it to UTF-8 and
// parses it with goquery. A Prober selects the venue's candidate elements with its
// CSS selector and hands each element's date attribute and text to the datematch
// package. Every failure is returned as an error so the caller can log it and
// carry on with the other venues.
package scraper
