package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values of hexpath_search_total.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Metrics holds the collectors shared by every instrumented searcher built
// with it.
type Metrics struct {
	Total          *prometheus.CounterVec
	Duration       *prometheus.HistogramVec
	CellsTraversed *prometheus.HistogramVec
	PathLength     *prometheus.HistogramVec
}

// NewMetrics creates the search collectors and registers them with reg.
// A nil reg leaves them unregistered. Registering twice with the same reg
// panics, as with any promauto collector.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Total: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hexpath_search_total",
			Help: "Total number of searches by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hexpath_search_duration_seconds",
			Help:    "Wall time of a single search",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
		}, []string{"algorithm"}),
		CellsTraversed: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hexpath_search_cells_traversed",
			Help:    "Number of cells settled by a search",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}, []string{"algorithm"}),
		PathLength: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hexpath_search_path_length",
			Help:    "Number of cells on a found path, start and target included",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
	}
}
