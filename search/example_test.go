package search_test

import (
	"fmt"

	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/search"
)

// ExampleRun finds the direct bottom hop on the smallest three-row grid.
func ExampleRun() {
	g, _ := hexgrid.New(3, 3, hexgrid.WideRowsEven)
	start, target := hexgrid.Position{X: 0, Y: 0}, hexgrid.Position{X: 0, Y: 2}

	res, err := search.Run(search.BreadthFirst, g, start, target)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("traversed:", res.CellsTraversed)
	fmt.Println("path:", res.CellsOnPath)
	// Output:
	// traversed: [(0,0) (1,1) (0,2)]
	// path: [(0,0) (0,2)]
}

// ExampleNew routes around a costly cell with uniform-cost search.
func ExampleNew() {
	g, _ := hexgrid.New(5, 3, hexgrid.WideRowsOdd)
	_ = g.SetWeight(hexgrid.Position{X: 0, Y: 2}, 9)

	s, _ := search.New(search.UniformCost)
	res, _ := s.Search(g, hexgrid.Position{X: 0, Y: 0}, hexgrid.Position{X: 0, Y: 4})
	fmt.Println(res.CellsOnPath, "cost", res.Cost)
	// Output:
	// [(0,0) (0,1) (0,3) (0,4)] cost 3
}

// ExampleParseAlgorithm accepts canonical names and short forms.
func ExampleParseAlgorithm() {
	for _, name := range []string{"bfs", "dijkstra", "a*"} {
		alg, _ := search.ParseAlgorithm(name)
		fmt.Println(alg)
	}
	// Output:
	// breadthFirstSearch
	// dijkstrasAlgorithm
	// aStar
}
