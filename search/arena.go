package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hexpath/hexgrid"
)

// none marks a node without parent.
const none = -1

// node is the per-call copy of one cell plus the search bookkeeping.
type node struct {
	pos     hexgrid.Position
	weight  int
	blocked bool

	done   bool // BFS: visited on enqueue; weighted: settled on pull
	parent int  // arena index, none for the start and unreached nodes
	g      int  // best known cost from start
}

// arena snapshots a grid into a flat node slice indexed by Layout.Index.
type arena struct {
	layout hexgrid.Layout
	nodes  []node
	start  int
	target int
}

// newArena validates the call and copies g. With weighted set, passable
// cells of weight below 1 are rejected.
func newArena(g *hexgrid.Grid, start, target hexgrid.Position, weighted bool) (*arena, error) {
	if g == nil {
		return nil, hexgrid.ErrNilGrid
	}
	l := g.Layout()
	if !l.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s", hexgrid.ErrOutOfBounds, start)
	}
	if !l.InBounds(target) {
		return nil, fmt.Errorf("%w: target %s", hexgrid.ErrOutOfBounds, target)
	}

	a := &arena{
		layout: l,
		nodes:  make([]node, l.Size()),
		start:  l.Index(start),
		target: l.Index(target),
	}
	var bad error
	g.Each(func(c hexgrid.Cell) {
		if weighted && bad == nil && !c.Blocked && c.Weight < 1 {
			bad = fmt.Errorf("%w: %s weight=%d", hexgrid.ErrInvalidWeight, c.Position(), c.Weight)
		}
		p := c.Position()
		a.nodes[l.Index(p)] = node{
			pos:     p,
			weight:  c.Weight,
			blocked: c.Blocked,
			parent:  none,
			g:       math.MaxInt,
		}
	})
	if bad != nil {
		return nil, bad
	}

	return a, nil
}

// neighbors returns the arena indices of the six neighbor slots of id in
// Neighbors order; missing slots are none.
func (a *arena) neighbors(id int) [6]int {
	var out [6]int
	for i, s := range a.layout.Neighbors(a.nodes[id].pos) {
		if s.Valid {
			out[i] = a.layout.Index(s.Pos)
		} else {
			out[i] = none
		}
	}
	return out
}

// minWeight returns the lightest weight among passable nodes, or 1 when
// every node is blocked.
func (a *arena) minWeight() int {
	m := math.MaxInt
	for i := range a.nodes {
		if !a.nodes[i].blocked && a.nodes[i].weight < m {
			m = a.nodes[i].weight
		}
	}
	if m == math.MaxInt {
		return 1
	}
	return m
}

// result assembles a Result from the settle order. When found is set the
// path is rebuilt by walking parents back from the target.
func (a *arena) result(alg Algorithm, traversed []int, found bool) *Result {
	res := &Result{
		Algorithm:      alg,
		CellsTraversed: make([]hexgrid.Position, len(traversed)),
	}
	for i, id := range traversed {
		res.CellsTraversed[i] = a.nodes[id].pos
	}
	if !found {
		return res
	}

	var rev []int
	for id := a.target; id != none; id = a.nodes[id].parent {
		rev = append(rev, id)
	}
	res.CellsOnPath = make([]hexgrid.Position, len(rev))
	for i, id := range rev {
		res.CellsOnPath[len(rev)-1-i] = a.nodes[id].pos
		if id != a.start {
			res.Cost += a.nodes[id].weight
		}
	}

	return res
}
