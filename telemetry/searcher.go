package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/search"
)

// TracerName is the instrumentation name used when no tracer is supplied.
const TracerName = "github.com/katalvlaran/hexpath/telemetry"

// Option configures Instrument.
type Option func(*Searcher)

// WithRegisterer creates fresh Metrics registered with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Searcher) {
		s.metrics = NewMetrics(reg)
	}
}

// WithMetrics shares already created collectors, e.g. between one
// instrumented searcher per algorithm.
func WithMetrics(m *Metrics) Option {
	return func(s *Searcher) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithLogger sets the logger for search events. Default discards them.
func WithLogger(l *slog.Logger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracer sets the tracer. Default is the global provider's tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Searcher) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithSlowThreshold logs a warning for searches that take at least d.
// Zero or negative disables the warning.
func WithSlowThreshold(d time.Duration) Option {
	return func(s *Searcher) {
		s.slow = d
	}
}

// Searcher wraps a search.Searcher with metrics, tracing and logging.
// It is itself a search.Searcher.
type Searcher struct {
	alg     search.Algorithm
	next    search.Searcher
	metrics *Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
	slow    time.Duration
}

var _ search.Searcher = (*Searcher)(nil)

// Instrument wraps next, which must run alg; alg only labels the telemetry.
func Instrument(alg search.Algorithm, next search.Searcher, opts ...Option) *Searcher {
	s := &Searcher{alg: alg, next: next}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(TracerName)
	}
	return s
}

// Algorithm returns the algorithm label.
func (s *Searcher) Algorithm() search.Algorithm { return s.alg }

// Metrics returns the collectors the searcher records into.
func (s *Searcher) Metrics() *Metrics { return s.metrics }

// Search implements search.Searcher with a background context.
func (s *Searcher) Search(g *hexgrid.Grid, start, target hexgrid.Position) (*search.Result, error) {
	return s.SearchContext(context.Background(), g, start, target)
}

// SearchContext runs the wrapped search inside a "search.Search" span. ctx
// only carries the trace; the search itself does not stop on cancellation.
func (s *Searcher) SearchContext(ctx context.Context, g *hexgrid.Grid, start, target hexgrid.Position) (*search.Result, error) {
	name := s.alg.String()
	ctx, span := s.tracer.Start(ctx, "search.Search",
		trace.WithAttributes(
			attribute.String("algorithm", name),
			attribute.String("start", start.String()),
			attribute.String("target", target.String()),
		),
	)
	defer span.End()

	s.logger.LogAttrs(ctx, slog.LevelDebug, "search started",
		slog.String("algorithm", name),
		slog.String("start", start.String()),
		slog.String("target", target.String()),
	)

	began := time.Now()
	res, err := s.next.Search(g, start, target)
	elapsed := time.Since(began)
	s.metrics.Duration.WithLabelValues(name).Observe(elapsed.Seconds())

	if err != nil {
		s.metrics.Total.WithLabelValues(name, OutcomeError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		s.logger.LogAttrs(ctx, slog.LevelError, "search failed",
			slog.String("algorithm", name),
			slog.String("start", start.String()),
			slog.String("target", target.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	outcome := OutcomeUnreachable
	if res.Found() {
		outcome = OutcomeFound
		s.metrics.PathLength.WithLabelValues(name).Observe(float64(len(res.CellsOnPath)))
	}
	s.metrics.Total.WithLabelValues(name, outcome).Inc()
	s.metrics.CellsTraversed.WithLabelValues(name).Observe(float64(len(res.CellsTraversed)))

	span.SetAttributes(
		attribute.Int("traversed", len(res.CellsTraversed)),
		attribute.Int("path_length", len(res.CellsOnPath)),
		attribute.Int("cost", res.Cost),
		attribute.Bool("found", res.Found()),
	)
	span.SetStatus(codes.Ok, outcome)

	s.logger.LogAttrs(ctx, slog.LevelInfo, "search complete",
		slog.String("algorithm", name),
		slog.String("outcome", outcome),
		slog.Int("traversed", len(res.CellsTraversed)),
		slog.Int("path_length", len(res.CellsOnPath)),
		slog.Int("cost", res.Cost),
		slog.Duration("duration", elapsed),
	)
	if s.slow > 0 && elapsed >= s.slow {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "slow search",
			slog.String("algorithm", name),
			slog.Duration("duration", elapsed),
			slog.Duration("threshold", s.slow),
			slog.Int("cells", g.Layout().Size()),
		)
	}

	return res, nil
}
