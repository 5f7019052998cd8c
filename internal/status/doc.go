// Package status aggregates venue probes into the downtown status snapshot.
//
// A Checker probes every configured venue concurrently and counts the venues with
// an event today. Two or more is "busy", exactly one is "probably", none is "not
// busy". Only Busy and EventCount are stored; the three-way level is derived.
package status
