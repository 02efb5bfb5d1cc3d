package search_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexpath/hexgrid"
)

// randomGrid builds a grid with roughly blockedRatio of its cells blocked and
// weights drawn from [1, maxWeight]. start and target are left passable.
func randomGrid(t *testing.T, rng *rand.Rand, blockedRatio float64, maxWeight int) (g *hexgrid.Grid, start, target hexgrid.Position) {
	t.Helper()
	rows, cols := 2+rng.Intn(8), 2+rng.Intn(8)
	wide := hexgrid.WideRows(rng.Intn(2))
	g, err := hexgrid.New(rows, cols, wide)
	require.NoError(t, err)

	var cells []hexgrid.Position
	g.Each(func(c hexgrid.Cell) { cells = append(cells, c.Position()) })
	start = cells[rng.Intn(len(cells))]
	target = cells[rng.Intn(len(cells))]

	for _, p := range cells {
		require.NoError(t, g.SetWeight(p, 1+rng.Intn(maxWeight)))
		if p != start && p != target && rng.Float64() < blockedRatio {
			require.NoError(t, g.SetBlocked(p, true))
		}
	}
	return g, start, target
}

// hopDepths returns the BFS depth of every passable cell reachable from
// start, following Layout.Neighbors directly.
func hopDepths(g *hexgrid.Grid, start hexgrid.Position) map[hexgrid.Position]int {
	l := g.Layout()
	depth := map[hexgrid.Position]int{start: 0}
	queue := []hexgrid.Position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, s := range l.Neighbors(p) {
			if !s.Valid {
				continue
			}
			if c, _ := g.Cell(s.Pos); c.Blocked {
				continue
			}
			if _, seen := depth[s.Pos]; !seen {
				depth[s.Pos] = depth[p] + 1
				queue = append(queue, s.Pos)
			}
		}
	}
	return depth
}

// cheapest runs Bellman-Ford over the grid and returns the minimum summed
// entry weight from start to target, or math.MaxInt when unreachable.
func cheapest(g *hexgrid.Grid, start, target hexgrid.Position) int {
	l := g.Layout()
	var cells []hexgrid.Cell
	g.Each(func(c hexgrid.Cell) { cells = append(cells, c) })

	dist := make(map[hexgrid.Position]int, len(cells))
	for _, c := range cells {
		dist[c.Position()] = math.MaxInt
	}
	dist[start] = 0
	for changed := true; changed; {
		changed = false
		for _, c := range cells {
			from := c.Position()
			if dist[from] == math.MaxInt {
				continue
			}
			for _, s := range l.Neighbors(from) {
				if !s.Valid {
					continue
				}
				to, _ := g.Cell(s.Pos)
				if to.Blocked {
					continue
				}
				if d := dist[from] + to.Weight; d < dist[s.Pos] {
					dist[s.Pos] = d
					changed = true
				}
			}
		}
	}
	return dist[target]
}

// adjacent reports whether q is one of p's six neighbors.
func adjacent(l hexgrid.Layout, p, q hexgrid.Position) bool {
	for _, s := range l.Neighbors(p) {
		if s.Valid && s.Pos == q {
			return true
		}
	}
	return false
}

// pathWeight sums the weights of path cells after the first.
func pathWeight(g *hexgrid.Grid, path []hexgrid.Position) int {
	sum := 0
	for _, p := range path[1:] {
		c, _ := g.Cell(p)
		sum += c.Weight
	}
	return sum
}

// grid3x3 returns the three-row even grid with rows of length 1, 2, 1.
func grid3x3(t *testing.T) *hexgrid.Grid {
	t.Helper()
	g, err := hexgrid.New(3, 3, hexgrid.WideRowsEven)
	require.NoError(t, err)
	return g
}

func pos(x, y int) hexgrid.Position { return hexgrid.Position{X: x, Y: y} }
