// Package telemetry instruments a search.Searcher with Prometheus metrics,
// OpenTelemetry spans and structured slog events.
//
// The wrapped searcher is still a search.Searcher, so instrumentation can be
// added or removed without touching callers:
//
//	s, _ := search.New(search.Heuristic)
//	ts := telemetry.Instrument(search.Heuristic, s,
//		telemetry.WithRegisterer(prometheus.DefaultRegisterer),
//		telemetry.WithLogger(logger),
//		telemetry.WithSlowThreshold(50*time.Millisecond))
//	res, err := ts.SearchContext(ctx, g, start, target)
//
// Metrics (see Metrics):
//
//   - hexpath_search_total{algorithm,outcome}: outcome is found, unreachable
//     or error.
//   - hexpath_search_duration_seconds{algorithm}
//   - hexpath_search_cells_traversed{algorithm}
//   - hexpath_search_path_length{algorithm}: only observed when a path exists.
//
// Without WithRegisterer or WithMetrics the collectors are created but not
// registered anywhere.
package telemetry
