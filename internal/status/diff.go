package status

// DiffResult describes how a snapshot differs from the previous run's
type DiffResult struct {
	From    Level
	To      Level
	Added   []VenueRef // venues with an event now that had none before
	Removed []VenueRef // venues that no longer show an event
	NewDay  bool       // previous snapshot was for another date
}

// Changed reports whether the level or the set of venues changed
func (d *DiffResult) Changed() bool {
	return d.From != d.To || len(d.Added) > 0 || len(d.Removed) > 0
}

// Diff compares current against the previous snapshot. A nil previous snapshot
// is treated as an empty one from another day.
func Diff(previous, current *Snapshot) *DiffResult {
	if previous == nil {
		previous = &Snapshot{Venues: []VenueRef{}}
	}

	result := &DiffResult{
		From:    previous.Level(),
		To:      current.Level(),
		Added:   make([]VenueRef, 0),
		Removed: make([]VenueRef, 0),
		NewDay:  previous.Date != current.Date,
	}

	before := make(map[string]bool, len(previous.Venues))
	for _, v := range previous.Venues {
		before[v.Name] = true
	}
	now := make(map[string]bool, len(current.Venues))
	for _, v := range current.Venues {
		now[v.Name] = true
		if !before[v.Name] {
			result.Added = append(result.Added, v)
		}
	}
	for _, v := range previous.Venues {
		if !now[v.Name] {
			result.Removed = append(result.Removed, v)
		}
	}

	return result
}
