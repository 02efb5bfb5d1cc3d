package search

import "github.com/katalvlaran/hexpath/hexgrid"

// breadthFirst implements Searcher with a FIFO queue.
type breadthFirst struct{}

// walker holds the mutable state of one breadth-first run.
type walker struct {
	a         *arena
	queue     []int
	traversed []int
}

// Search implements Searcher. Cells are marked visited when enqueued, so
// each is enqueued at most once and the first discovery fixes its parent.
// Complexity: O(n) time and space.
func (breadthFirst) Search(g *hexgrid.Grid, start, target hexgrid.Position) (*Result, error) {
	a, err := newArena(g, start, target, false)
	if err != nil {
		return nil, err
	}
	w := &walker{
		a:         a,
		queue:     make([]int, 0, len(a.nodes)),
		traversed: make([]int, 0, len(a.nodes)),
	}
	w.enqueue(a.start, none)
	found := w.loop()

	return a.result(BreadthFirst, w.traversed, found), nil
}

func (w *walker) enqueue(id, parent int) {
	w.a.nodes[id].done = true
	w.a.nodes[id].parent = parent
	w.queue = append(w.queue, id)
}

// loop drains the queue and reports whether the target was reached.
func (w *walker) loop() bool {
	for head := 0; head < len(w.queue); head++ {
		id := w.queue[head]
		w.traversed = append(w.traversed, id)
		if id == w.a.target {
			return true
		}
		for _, nb := range w.a.neighbors(id) {
			if nb == none {
				continue
			}
			n := &w.a.nodes[nb]
			if n.blocked || n.done {
				continue
			}
			w.enqueue(nb, id)
		}
	}
	return false
}
