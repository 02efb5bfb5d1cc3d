// Package search finds paths across a hexgrid.Grid with three interchangeable
// algorithms behind one Searcher interface.
//
// Algorithms:
//
//   - BreadthFirst: FIFO expansion, shortest path by hop count. Weights are
//     ignored for ordering but still summed into Result.Cost.
//   - UniformCost: Dijkstra over cell weights; the path has minimum total
//     weight. Uses an indexed priority queue with in-place decrease-key.
//   - Heuristic: A* guided by the hex hop distance to the target, scaled by
//     the lightest passable weight so it stays consistent on weighted terrain.
//     WithUnitHeuristic drops the scaling.
//
// Every call snapshots the grid into an arena of nodes indexed densely by
// hexgrid.Layout.Index; parents are arena indices, -1 for the start. The
// caller's grid is never written during a search. Result.Apply copies the
// outcome back as Visited/OnPath markers when the caller wants it drawn.
//
// Contract:
//
//   - The start cell is always seeded, even when blocked; blocked only stops
//     a search from entering a cell.
//   - An unreachable target is not an error: CellsOnPath is nil and
//     CellsTraversed lists the reachable component that was explored.
//   - Neighbors are expanded in the fixed order Top, TopRight, BottomRight,
//     Bottom, BottomLeft, TopLeft. Equal priorities in the weighted variants
//     are broken by insertion order, so every result is deterministic.
//
// Errors:
//
//   - hexgrid.ErrNilGrid for a nil grid.
//   - hexgrid.ErrOutOfBounds when start or target is not a cell of the grid.
//   - hexgrid.ErrInvalidWeight when a weighted search meets a passable cell
//     with weight below 1.
//   - ErrUnknownAlgorithm from New and ParseAlgorithm.
//
// Complexity (n cells):
//
//   - BreadthFirst: O(n) time and space.
//   - UniformCost, Heuristic: O(n log n) time, O(n) space.
package search
