package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hexpath/hexgrid"
)

// ErrUnknownAlgorithm is returned for an Algorithm value or name that does
// not select any search.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Algorithm selects one of the search variants.
type Algorithm int

const (
	// BreadthFirst is unweighted breadth-first search.
	BreadthFirst Algorithm = iota
	// UniformCost is weighted uniform-cost search (Dijkstra).
	UniformCost
	// Heuristic is heuristic-guided search (A*).
	Heuristic
)

var algorithmNames = [...]string{"breadthFirstSearch", "dijkstrasAlgorithm", "aStar"}

// String returns the canonical selector name of a.
func (a Algorithm) String() string {
	if a < BreadthFirst || a > Heuristic {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Algorithms lists every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BreadthFirst, UniformCost, Heuristic}
}

// ParseAlgorithm maps a selector name to an Algorithm. Besides the canonical
// names it accepts the short forms bfs, dijkstra, ucs, astar and a*.
// Matching ignores case and surrounding spaces.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "breadthfirstsearch", "bfs":
		return BreadthFirst, nil
	case "dijkstrasalgorithm", "dijkstra", "ucs":
		return UniformCost, nil
	case "astar", "a*":
		return Heuristic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Searcher runs one search algorithm over a grid.
type Searcher interface {
	// Search explores g from start until target is settled or every
	// reachable cell has been explored. g is only read.
	Search(g *hexgrid.Grid, start, target hexgrid.Position) (*Result, error)
}

// Result is the outcome of one Search call.
type Result struct {
	// Algorithm that produced the result.
	Algorithm Algorithm

	// CellsTraversed lists cells in the order they were settled (dequeued).
	// Never empty; always starts with the start position.
	CellsTraversed []hexgrid.Position

	// CellsOnPath runs from start to target inclusive, or is nil when the
	// target cannot be reached.
	CellsOnPath []hexgrid.Position

	// Cost is the summed weight of every path cell after the start.
	// Zero when there is no path.
	Cost int
}

// Found reports whether a path to the target exists.
func (r *Result) Found() bool {
	return r != nil && r.CellsOnPath != nil
}

// Apply writes r onto g as presentation markers: Visited for every traversed
// cell, OnPath for every path cell. Existing markers are cleared first.
// Returns hexgrid.ErrOutOfBounds if g no longer contains a recorded position,
// which happens when g was resized after the search.
func (r *Result) Apply(g *hexgrid.Grid) error {
	if g == nil {
		return hexgrid.ErrNilGrid
	}
	g.ClearMarks()
	for _, p := range r.CellsTraversed {
		if err := g.SetVisited(p, true); err != nil {
			return err
		}
	}
	for _, p := range r.CellsOnPath {
		if err := g.SetOnPath(p, true); err != nil {
			return err
		}
	}
	return nil
}
