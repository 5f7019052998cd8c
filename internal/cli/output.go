package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pfrederiksen/downtown-busy/internal/status"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output after a check
type OutputResult struct {
	Status   status.Level     `json:"status"`
	Summary  string           `json:"summary"`
	Path     string           `json:"path"`
	Snapshot *status.Snapshot `json:"snapshot"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	for _, v := range result.Snapshot.Venues {
		fmt.Fprintf(w, "Event found at %s\n", v.Name)
	}
	fmt.Fprintf(w, "Status: %s\n", result.Summary)
	_, err := fmt.Fprintf(w, "Written to %s\n", result.Path)
	return err
}

// writeShow prints a snapshot the way the status page words it
func writeShow(w io.Writer, snapshot *status.Snapshot, loc *time.Location) error {
	day := "today"
	if d, err := time.Parse(status.DateLayout, snapshot.Date); err == nil {
		day = d.Format("Monday, Jan 2")
	}

	fmt.Fprintf(w, "Is downtown busy today, %s?\n", day)
	fmt.Fprintf(w, "%s.\n", snapshot.Answer())

	if n := len(snapshot.Venues); n > 0 {
		verb, noun := "are", "events"
		if n == 1 {
			verb, noun = "is", "event"
		}
		names := make([]string, n)
		for i, v := range snapshot.Venues {
			names[i] = v.Name
		}
		fmt.Fprintf(w, "There %s %d %s at %s.\n", verb, n, noun, joinNames(names))
	}

	if !snapshot.CheckedAt.IsZero() {
		fmt.Fprintf(w, "Last checked: %s\n", snapshot.CheckedAt.In(loc).Format("01/02/2006, 3:04 PM"))
	}
	return nil
}

// joinNames joins names as "A", "A and B" or "A, B and C"
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
