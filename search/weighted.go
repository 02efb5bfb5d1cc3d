package search

import (
	"fmt"

	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/pqueue"
)

// runner holds the mutable state of one weighted run. UniformCost and
// Heuristic differ only in estimate.
type runner struct {
	a         *arena
	pq        *pqueue.Queue[int, int]
	estimate  func(id int) int
	step      float64
	ticks     int
	traversed []int
}

// newRunner snapshots g and prepares an empty queue keyed by arena index.
func newRunner(g *hexgrid.Grid, start, target hexgrid.Position) (*runner, error) {
	a, err := newArena(g, start, target, true)
	if err != nil {
		return nil, err
	}
	return &runner{
		a:        a,
		pq:       pqueue.New(func(id int) int { return id }),
		estimate: func(int) int { return 0 },
		// At most 1+6n priorities are computed per run, so the accumulated
		// offset stays below 1 and never reorders distinct integer priorities.
		step:      1 / float64(6*len(a.nodes)+2),
		traversed: make([]int, 0, len(a.nodes)),
	}, nil
}

// priority returns cost plus estimate plus the next tie-break offset. Later
// computations get larger offsets, so equal costs pull in insertion order.
func (r *runner) priority(id, cost int) float64 {
	p := float64(cost+r.estimate(id)) + float64(r.ticks)*r.step
	r.ticks++
	return p
}

// run settles nodes in priority order until the target is pulled or the
// queue drains. Blocked neighbors are never queued and settled nodes are
// never relaxed again.
func (r *runner) run() (bool, error) {
	start := &r.a.nodes[r.a.start]
	start.g = 0
	if err := r.pq.Add(r.a.start, r.priority(r.a.start, 0)); err != nil {
		return false, fmt.Errorf("search: seed: %w", err)
	}

	for r.pq.Len() > 0 {
		it, _ := r.pq.Pull()
		id := it.Value
		cur := &r.a.nodes[id]
		cur.done = true
		r.traversed = append(r.traversed, id)
		if id == r.a.target {
			return true, nil
		}

		for _, nb := range r.a.neighbors(id) {
			if nb == none {
				continue
			}
			n := &r.a.nodes[nb]
			if n.blocked || n.done {
				continue
			}
			tentative := cur.g + n.weight
			if tentative >= n.g {
				continue
			}
			n.g = tentative
			n.parent = id

			p := r.priority(nb, tentative)
			var err error
			if r.pq.Has(nb) {
				err = r.pq.SetPriority(nb, p)
			} else {
				err = r.pq.Add(nb, p)
			}
			if err != nil {
				return false, fmt.Errorf("search: relax %s: %w", n.pos, err)
			}
		}
	}

	return false, nil
}

// uniformCost implements Searcher as Dijkstra over cell weights.
type uniformCost struct{}

// Search implements Searcher.
// Complexity: O(n log n) time, O(n) space.
func (uniformCost) Search(g *hexgrid.Grid, start, target hexgrid.Position) (*Result, error) {
	r, err := newRunner(g, start, target)
	if err != nil {
		return nil, err
	}
	found, err := r.run()
	if err != nil {
		return nil, err
	}
	return r.a.result(UniformCost, r.traversed, found), nil
}

// heuristic implements Searcher as A* with the hex hop distance.
type heuristic struct {
	unit bool
}

// Search implements Searcher. The estimate is scale·Distance(cell, target),
// where scale is the lightest passable weight unless unit is set.
// Complexity: O(n log n) time, O(n) space.
func (h heuristic) Search(g *hexgrid.Grid, start, target hexgrid.Position) (*Result, error) {
	r, err := newRunner(g, start, target)
	if err != nil {
		return nil, err
	}
	scale := 1
	if !h.unit {
		scale = r.a.minWeight()
	}
	goal := r.a.nodes[r.a.target].pos
	r.estimate = func(id int) int {
		return scale * r.a.layout.Distance(r.a.nodes[id].pos, goal)
	}

	found, err := r.run()
	if err != nil {
		return nil, err
	}
	return r.a.result(Heuristic, r.traversed, found), nil
}
