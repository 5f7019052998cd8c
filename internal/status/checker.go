package status

import (
	"context"
	"sync"
	"time"

	"github.com/pfrederiksen/downtown-busy/internal/logger"
	"github.com/pfrederiksen/downtown-busy/internal/metrics"
	"github.com/pfrederiksen/downtown-busy/internal/venue"
)

// DefaultConcurrency is the number of venues probed at once
const DefaultConcurrency = 4

// Prober reports whether a venue has an event today
type Prober interface {
	Probe(ctx context.Context, v venue.Venue, today time.Time) (bool, error)
}

// Result is the outcome of probing one venue
type Result struct {
	Venue    venue.Venue
	Matched  bool
	Err      error
	Duration time.Duration
}

// Checker runs a Prober over every venue
type Checker struct {
	prober      Prober
	concurrency int
	metrics     *metrics.Recorder
	now         func() time.Time
}

// NewChecker creates a Checker. Concurrency below 1 means DefaultConcurrency.
// rec may be nil.
func NewChecker(p Prober, concurrency int, rec *metrics.Recorder) *Checker {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Checker{
		prober:      p,
		concurrency: concurrency,
		metrics:     rec,
		now:         time.Now,
	}
}

// Check probes all venues and builds the snapshot. Venues appear in config order.
// A venue whose probe fails is logged and counted as having no event.
func (c *Checker) Check(ctx context.Context, venues []venue.Venue, today time.Time) *Snapshot {
	results := c.ProbeAll(ctx, venues, today)

	matched := make([]VenueRef, 0, len(results))
	for _, r := range results {
		if r.Matched {
			matched = append(matched, VenueRef{Name: r.Venue.Name, URL: r.Venue.URL})
		}
	}

	snapshot := NewSnapshot(matched, today, c.now())
	if c.metrics != nil {
		c.metrics.ObserveRun(snapshot.EventCount, snapshot.Busy, snapshot.CheckedAt)
	}
	return snapshot
}

// ProbeAll probes venues on a bounded pool of workers. results[i] belongs to venues[i].
func (c *Checker) ProbeAll(ctx context.Context, venues []venue.Venue, today time.Time) []Result {
	results := make([]Result, len(venues))
	jobs := make(chan int)

	workers := c.concurrency
	if workers > len(venues) {
		workers = len(venues)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = c.probe(ctx, venues[i], today)
			}
		}()
	}

	for i := range venues {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func (c *Checker) probe(ctx context.Context, v venue.Venue, today time.Time) Result {
	start := time.Now()
	matched, err := c.prober.Probe(ctx, v, today)
	r := Result{
		Venue:    v,
		Matched:  matched && err == nil,
		Err:      err,
		Duration: time.Since(start),
	}

	fields := logger.Fields{
		"venue":       v.Name,
		"url":         v.URL,
		"duration_ms": r.Duration.Milliseconds(),
	}

	result := metrics.ResultNoEvent
	switch {
	case err != nil:
		result = metrics.ResultError
		logger.Warn("Error checking venue", fields, err)
	case r.Matched:
		result = metrics.ResultMatched
		logger.Info("Event found", fields)
	default:
		logger.Debug("No event today", fields)
	}

	if c.metrics != nil {
		c.metrics.ObserveProbe(v.Name, result, r.Duration)
	}
	return r
}
