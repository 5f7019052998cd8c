package status

import (
	"fmt"
	"time"
)

// BusyThreshold is the number of venues with events that makes downtown busy
const BusyThreshold = 2

// DateLayout formats Snapshot.Date
const DateLayout = "2006-01-02"

// Level is the three-way status shown to readers
type Level string

const (
	LevelNotBusy  Level = "not_busy"
	LevelProbably Level = "probably"
	LevelBusy     Level = "busy"
)

// VenueRef identifies a venue with an event today
type VenueRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Snapshot is the persisted result of one run
type Snapshot struct {
	Busy       bool       `json:"busy"`
	EventCount int        `json:"eventCount"`
	Venues     []VenueRef `json:"venues"`
	Date       string     `json:"date"`
	CheckedAt  time.Time  `json:"checkedAt"`
}

// NewSnapshot builds a snapshot from the venues with events, keeping their order
func NewSnapshot(matched []VenueRef, today, checkedAt time.Time) *Snapshot {
	venues := make([]VenueRef, len(matched))
	copy(venues, matched)

	return &Snapshot{
		Busy:       len(venues) >= BusyThreshold,
		EventCount: len(venues),
		Venues:     venues,
		Date:       today.Format(DateLayout),
		CheckedAt:  checkedAt.UTC().Truncate(time.Second),
	}
}

// Level derives the three-way status from the event count
func (s *Snapshot) Level() Level {
	switch {
	case s.EventCount >= BusyThreshold:
		return LevelBusy
	case s.EventCount == 1:
		return LevelProbably
	default:
		return LevelNotBusy
	}
}

// Summary is the one-line status printed after a run
func (s *Snapshot) Summary() string {
	switch s.Level() {
	case LevelBusy:
		return fmt.Sprintf("BUSY (%d events)", s.EventCount)
	case LevelProbably:
		name := "unknown venue"
		if len(s.Venues) > 0 {
			name = s.Venues[0].Name
		}
		return fmt.Sprintf("PROBABLY (1 event at %s)", name)
	default:
		return "NOT BUSY"
	}
}

// Answer is the site's reply to "is downtown busy?"
func (s *Snapshot) Answer() string {
	switch s.Level() {
	case LevelBusy:
		return "Yes"
	case LevelProbably:
		return "Probably"
	default:
		return "No"
	}
}
