package status

import (
	"testing"
	"time"
)

func snap(date string, names ...string) *Snapshot {
	refs := make([]VenueRef, len(names))
	for i, name := range names {
		refs[i] = VenueRef{Name: name, URL: "https://" + name + ".example.com"}
	}
	s := NewSnapshot(refs, testToday, time.Now())
	s.Date = date
	return s
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name        string
		previous    *Snapshot
		current     *Snapshot
		wantFrom    Level
		wantTo      Level
		wantAdded   []string
		wantRemoved []string
		wantNewDay  bool
		wantChanged bool
	}{
		{
			name:        "first run",
			previous:    nil,
			current:     snap("2025-12-26", "arena"),
			wantFrom:    LevelNotBusy,
			wantTo:      LevelProbably,
			wantAdded:   []string{"arena"},
			wantNewDay:  true,
			wantChanged: true,
		},
		{
			name:        "unchanged",
			previous:    snap("2025-12-26", "arena", "theater"),
			current:     snap("2025-12-26", "arena", "theater"),
			wantFrom:    LevelBusy,
			wantTo:      LevelBusy,
			wantChanged: false,
		},
		{
			name:        "venue swapped keeps level",
			previous:    snap("2025-12-26", "arena", "theater"),
			current:     snap("2025-12-26", "arena", "convention"),
			wantFrom:    LevelBusy,
			wantTo:      LevelBusy,
			wantAdded:   []string{"convention"},
			wantRemoved: []string{"theater"},
			wantChanged: true,
		},
		{
			name:        "quiet next day",
			previous:    snap("2025-12-26", "arena", "theater"),
			current:     snap("2025-12-27"),
			wantFrom:    LevelBusy,
			wantTo:      LevelNotBusy,
			wantRemoved: []string{"arena", "theater"},
			wantNewDay:  true,
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Diff(tt.previous, tt.current)

			if d.From != tt.wantFrom || d.To != tt.wantTo {
				t.Errorf("level %s -> %s, want %s -> %s", d.From, d.To, tt.wantFrom, tt.wantTo)
			}
			if d.NewDay != tt.wantNewDay {
				t.Errorf("NewDay = %v, want %v", d.NewDay, tt.wantNewDay)
			}
			if d.Changed() != tt.wantChanged {
				t.Errorf("Changed() = %v, want %v", d.Changed(), tt.wantChanged)
			}
			assertNames(t, "Added", d.Added, tt.wantAdded)
			assertNames(t, "Removed", d.Removed, tt.wantRemoved)
		})
	}
}

func assertNames(t *testing.T, field string, got []VenueRef, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", field, got, want)
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("%s[%d] = %q, want %q", field, i, got[i].Name, want[i])
		}
	}
}
