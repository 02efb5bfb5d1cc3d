package search

import (
	"fmt"

	"github.com/katalvlaran/hexpath/hexgrid"
)

// New returns the Searcher for alg configured by opts.
// Returns ErrUnknownAlgorithm for an undeclared alg.
func New(alg Algorithm, opts ...Option) (Searcher, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch alg {
	case BreadthFirst:
		return breadthFirst{}, nil
	case UniformCost:
		return uniformCost{}, nil
	case Heuristic:
		return heuristic{unit: o.UnitHeuristic}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}

// Run builds the Searcher for alg and runs it once.
func Run(alg Algorithm, g *hexgrid.Grid, start, target hexgrid.Position, opts ...Option) (*Result, error) {
	s, err := New(alg, opts...)
	if err != nil {
		return nil, err
	}
	return s.Search(g, start, target)
}
