// Package metrics records per-run probe outcomes in a private Prometheus registry.
//
// downtown-busy runs from cron and exits, so nothing is served over HTTP. Instead
// WriteTextfile dumps the registry in the text exposition format for the
// node_exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "downtown_busy"

// Probe results used as the "result" label.
const (
	ResultMatched = "matched"
	ResultNoEvent = "no_event"
	ResultError   = "error"
)

// Recorder holds the metrics for one run
type Recorder struct {
	registry      *prometheus.Registry
	probes        *prometheus.CounterVec
	probeDuration *prometheus.GaugeVec
	eventCount    prometheus.Gauge
	busy          prometheus.Gauge
	lastRun       prometheus.Gauge
}

// New creates a Recorder with its own registry
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		probes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "probes_total",
			Help:      "Venue probes by outcome.",
		}, []string{"venue", "result"}),
		probeDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "probe_duration_seconds",
			Help:      "Time spent fetching and scanning a venue page.",
		}, []string{"venue"}),
		eventCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "event_count",
			Help:      "Venues with an event today.",
		}),
		busy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "busy",
			Help:      "1 when two or more venues have an event today.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last check finished.",
		}),
	}
	r.registry.MustRegister(r.probes, r.probeDuration, r.eventCount, r.busy, r.lastRun)
	return r
}

// ObserveProbe records one venue probe
func (r *Recorder) ObserveProbe(venue, result string, duration time.Duration) {
	r.probes.WithLabelValues(venue, result).Inc()
	r.probeDuration.WithLabelValues(venue).Set(duration.Seconds())
}

// ObserveRun records the aggregate outcome of a run
func (r *Recorder) ObserveRun(eventCount int, busy bool, finished time.Time) {
	r.eventCount.Set(float64(eventCount))
	if busy {
		r.busy.Set(1)
	} else {
		r.busy.Set(0)
	}
	r.lastRun.Set(float64(finished.Unix()))
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is written to a temporary name and renamed into place.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
