package search_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/search"
)

func TestScenario_DirectBottomHop(t *testing.T) {
	cases := []struct {
		alg       search.Algorithm
		traversed []hexgrid.Position
	}{
		{search.BreadthFirst, []hexgrid.Position{pos(0, 0), pos(1, 1), pos(0, 2)}},
		{search.UniformCost, []hexgrid.Position{pos(0, 0), pos(1, 1), pos(0, 2)}},
		{search.Heuristic, []hexgrid.Position{pos(0, 0), pos(0, 2)}},
	}
	for _, tc := range cases {
		t.Run(tc.alg.String(), func(t *testing.T) {
			res, err := search.Run(tc.alg, grid3x3(t), pos(0, 0), pos(0, 2))
			require.NoError(t, err)
			assert.Equal(t, tc.alg, res.Algorithm)
			assert.Equal(t, tc.traversed, res.CellsTraversed)
			assert.Equal(t, []hexgrid.Position{pos(0, 0), pos(0, 2)}, res.CellsOnPath)
			assert.Equal(t, 1, res.Cost)
			assert.True(t, res.Found())
		})
	}
}

func TestScenario_BlockedTarget(t *testing.T) {
	g := grid3x3(t)
	for _, p := range []hexgrid.Position{pos(1, 1), pos(0, 1), pos(0, 2)} {
		require.NoError(t, g.SetBlocked(p, true))
	}
	for _, alg := range search.Algorithms() {
		res, err := search.Run(alg, g, pos(0, 0), pos(0, 2))
		require.NoError(t, err, alg.String())
		assert.False(t, res.Found(), alg.String())
		assert.Nil(t, res.CellsOnPath, alg.String())
		assert.Zero(t, res.Cost, alg.String())
		assert.Equal(t, []hexgrid.Position{pos(0, 0)}, res.CellsTraversed, alg.String())
	}
}

func TestScenario_IsolatedComponent(t *testing.T) {
	g, err := hexgrid.New(5, 3, hexgrid.WideRowsEven)
	require.NoError(t, err)
	for _, p := range []hexgrid.Position{pos(0, 1), pos(1, 1), pos(0, 2)} {
		require.NoError(t, g.SetBlocked(p, true))
	}
	for _, alg := range search.Algorithms() {
		res, err := search.Run(alg, g, pos(0, 3), pos(0, 0))
		require.NoError(t, err)
		assert.False(t, res.Found(), alg.String())
		assert.ElementsMatch(t, []hexgrid.Position{pos(0, 3), pos(0, 4), pos(1, 3)}, res.CellsTraversed, alg.String())
		assert.Equal(t, pos(0, 3), res.CellsTraversed[0])
	}
}

func TestStartEqualsTarget(t *testing.T) {
	g := grid3x3(t)
	require.NoError(t, g.SetWeight(pos(1, 1), 9))
	for _, alg := range search.Algorithms() {
		res, err := search.Run(alg, g, pos(1, 1), pos(1, 1))
		require.NoError(t, err)
		assert.Equal(t, []hexgrid.Position{pos(1, 1)}, res.CellsTraversed, alg.String())
		assert.Equal(t, []hexgrid.Position{pos(1, 1)}, res.CellsOnPath, alg.String())
		assert.Zero(t, res.Cost, alg.String())
	}
}

func TestBlockedStartIsStillSeeded(t *testing.T) {
	g := grid3x3(t)
	require.NoError(t, g.SetBlocked(pos(0, 0), true))
	for _, alg := range search.Algorithms() {
		res, err := search.Run(alg, g, pos(0, 0), pos(0, 2))
		require.NoError(t, err)
		assert.Equal(t, []hexgrid.Position{pos(0, 0), pos(0, 2)}, res.CellsOnPath, alg.String())
	}
}

func TestErrors(t *testing.T) {
	g := grid3x3(t)
	for _, alg := range search.Algorithms() {
		_, err := search.Run(alg, nil, pos(0, 0), pos(0, 2))
		assert.ErrorIs(t, err, hexgrid.ErrNilGrid)

		_, err = search.Run(alg, g, pos(1, 0), pos(0, 2))
		assert.ErrorIs(t, err, hexgrid.ErrOutOfBounds)
		assert.ErrorContains(t, err, "start (1,0)")

		_, err = search.Run(alg, g, pos(0, 0), pos(0, 3))
		assert.ErrorIs(t, err, hexgrid.ErrOutOfBounds)
		assert.ErrorContains(t, err, "target (0,3)")
	}

	_, err := search.New(search.Algorithm(42))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"breadthFirstSearch": search.BreadthFirst,
		"bfs":                search.BreadthFirst,
		"dijkstrasAlgorithm": search.UniformCost,
		" Dijkstra ":         search.UniformCost,
		"ucs":                search.UniformCost,
		"aStar":              search.Heuristic,
		"ASTAR":              search.Heuristic,
		"a*":                 search.Heuristic,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, alg := range search.Algorithms() {
		got, err := search.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}

	_, err := search.ParseAlgorithm("greedy")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(9)", search.Algorithm(9).String())
}

func TestSearchDoesNotMutateGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g, start, target := randomGrid(t, rng, 0.2, 4)
	require.NoError(t, g.SetVisited(start, true))
	before := g.Clone()

	for _, alg := range search.Algorithms() {
		_, err := search.Run(alg, g, start, target)
		require.NoError(t, err)
	}

	var want, got []hexgrid.Cell
	before.Each(func(c hexgrid.Cell) { want = append(want, c) })
	g.Each(func(c hexgrid.Cell) { got = append(got, c) })
	assert.Equal(t, want, got)
}

func TestResultApply(t *testing.T) {
	g := grid3x3(t)
	require.NoError(t, g.SetOnPath(pos(0, 1), true))
	res, err := search.Run(search.BreadthFirst, g, pos(0, 0), pos(0, 2))
	require.NoError(t, err)

	require.NoError(t, res.Apply(g))
	visited := map[hexgrid.Position]bool{}
	onPath := map[hexgrid.Position]bool{}
	g.Each(func(c hexgrid.Cell) {
		if c.Visited {
			visited[c.Position()] = true
		}
		if c.OnPath {
			onPath[c.Position()] = true
		}
	})
	assert.Equal(t, map[hexgrid.Position]bool{pos(0, 0): true, pos(1, 1): true, pos(0, 2): true}, visited)
	assert.Equal(t, map[hexgrid.Position]bool{pos(0, 0): true, pos(0, 2): true}, onPath)

	small, err := hexgrid.New(1, 1, hexgrid.WideRowsOdd)
	require.NoError(t, err)
	assert.ErrorIs(t, res.Apply(small), hexgrid.ErrOutOfBounds)
	assert.ErrorIs(t, res.Apply(nil), hexgrid.ErrNilGrid)
}

// TestTraversal_StartToTarget checks that every search reports the cells it
// settled: the start first and, when a path was found, the target last.
func TestTraversal_StartToTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 100; i++ {
		g, start, target := randomGrid(t, rng, 0.25, 5)
		for _, alg := range search.Algorithms() {
			res, err := search.Run(alg, g, start, target)
			require.NoError(t, err)
			require.NotEmpty(t, res.CellsTraversed, "%s grid %d", alg, i)
			assert.Equal(t, start, res.CellsTraversed[0], "%s grid %d", alg, i)
			if res.Found() {
				assert.Equal(t, target, res.CellsTraversed[len(res.CellsTraversed)-1], "%s grid %d", alg, i)
			}
		}
	}
}

// TestBreadthFirst_Properties checks on random grids that a BFS path exists
// exactly when the target is connected, that consecutive path cells are
// neighbors, and that settle order never decreases in hop distance.
func TestBreadthFirst_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		g, start, target := randomGrid(t, rng, 0.3, 1)
		depth := hopDepths(g, start)
		res, err := search.Run(search.BreadthFirst, g, start, target)
		require.NoError(t, err)

		require.NotEmpty(t, res.CellsTraversed)
		assert.Equal(t, start, res.CellsTraversed[0])

		want, reachable := depth[target]
		require.Equal(t, reachable, res.Found(), "grid %d %s→%s", i, start, target)
		for j := 1; j < len(res.CellsTraversed); j++ {
			assert.LessOrEqual(t, depth[res.CellsTraversed[j-1]], depth[res.CellsTraversed[j]])
		}
		if !reachable {
			assert.Len(t, res.CellsTraversed, len(depth))
			continue
		}

		path := res.CellsOnPath
		assert.Equal(t, start, path[0])
		assert.Equal(t, target, path[len(path)-1])
		assert.Len(t, path, want+1, "BFS path is not hop-shortest")
		for j := 1; j < len(path); j++ {
			assert.True(t, adjacent(g.Layout(), path[j-1], path[j]), "%s and %s are not neighbors", path[j-1], path[j])
		}
	}
}

// TestWeighted_Optimal compares both weighted searches against Bellman-Ford
// on random weighted grids.
func TestWeighted_Optimal(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	for i := 0; i < 300; i++ {
		g, start, target := randomGrid(t, rng, 0.25, 6)
		best := cheapest(g, start, target)

		for _, alg := range []search.Algorithm{search.UniformCost, search.Heuristic} {
			res, err := search.Run(alg, g, start, target)
			require.NoError(t, err)
			if best == math.MaxInt {
				assert.False(t, res.Found(), "%s grid %d", alg, i)
				continue
			}
			require.True(t, res.Found(), "%s grid %d", alg, i)
			assert.Equal(t, best, res.Cost, "%s grid %d %s→%s", alg, i, start, target)
			assert.Equal(t, res.Cost, pathWeight(g, res.CellsOnPath))
			for j := 1; j < len(res.CellsOnPath); j++ {
				c, _ := g.Cell(res.CellsOnPath[j])
				assert.False(t, c.Blocked)
				assert.True(t, adjacent(g.Layout(), res.CellsOnPath[j-1], res.CellsOnPath[j]))
			}
		}
	}
}

func TestUniformWeights_HeuristicMatchesUniformCost(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		g, start, target := randomGrid(t, rng, 0.2, 1)
		ucs, err := search.Run(search.UniformCost, g, start, target)
		require.NoError(t, err)
		astar, err := search.Run(search.Heuristic, g, start, target, search.WithUnitHeuristic())
		require.NoError(t, err)

		require.Equal(t, ucs.Found(), astar.Found())
		assert.Equal(t, ucs.Cost, astar.Cost)
		assert.LessOrEqual(t, len(astar.CellsTraversed), len(ucs.CellsTraversed))
	}
}

func TestUnitHeuristic_ValidPath(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 200; i++ {
		g, start, target := randomGrid(t, rng, 0.2, 9)
		best := cheapest(g, start, target)
		res, err := search.Run(search.Heuristic, g, start, target, search.WithUnitHeuristic())
		require.NoError(t, err)
		if best == math.MaxInt {
			assert.False(t, res.Found())
			continue
		}
		require.True(t, res.Found())
		assert.GreaterOrEqual(t, res.Cost, best)
		assert.Equal(t, res.Cost, pathWeight(g, res.CellsOnPath))
	}
}

func TestDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	g, start, target := randomGrid(t, rng, 0.2, 5)
	for _, alg := range search.Algorithms() {
		s, err := search.New(alg)
		require.NoError(t, err)
		first, err := s.Search(g, start, target)
		require.NoError(t, err)
		for k := 0; k < 5; k++ {
			again, err := s.Search(g, start, target)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}
