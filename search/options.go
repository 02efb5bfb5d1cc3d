package search

// Option configures a Searcher built by New.
type Option func(*Options)

// Options holds the tunables shared by every algorithm. Fields that do not
// apply to the chosen algorithm are ignored.
type Options struct {
	// UnitHeuristic makes Heuristic use the raw hop distance instead of hop
	// distance times the lightest passable weight. Faster on heavy terrain,
	// but the path may no longer be the cheapest.
	UnitHeuristic bool
}

// DefaultOptions returns Options with the min-weight heuristic scaling on.
func DefaultOptions() Options {
	return Options{UnitHeuristic: false}
}

// WithUnitHeuristic disables the min-weight scaling of the heuristic.
func WithUnitHeuristic() Option {
	return func(o *Options) {
		o.UnitHeuristic = true
	}
}
