// Package hexpath is a pathfinding toolkit for hexagonal grids stored in
// offset coordinates: grid geometry, an indexed priority queue and three
// interchangeable searches, plus the instrumentation, file format and
// terminal renderer around them.
//
// 🚀 What is in the box?
//
//   - Grid model: alternating-width rows, walls, weights, resize with overlap
//   - Geometry: fixed six-slot adjacency and exact hex hop distance
//   - Priority queue: generic indexed min-heap with decrease/increase-key
//   - Searches: breadth-first, uniform-cost (Dijkstra), heuristic (A*)
//   - Telemetry: Prometheus metrics, OpenTelemetry spans, slog events
//   - Scenarios: YAML grid setups, load and save
//   - Terminal: tcell renderer with staged replay of a search
//
// ✨ Guarantees
//
//   - Searches never write to the caller's grid; every call works on its own
//     snapshot and is safe to run concurrently with other searches.
//   - Results are deterministic: fixed neighbor order, insertion-order tie
//     breaks.
//   - Uniform-cost and default heuristic searches return minimum-weight paths.
//
// Packages:
//
//	hexgrid/     Grid, Cell, Position, Layout (Neighbors, Distance, Index), Resize
//	pqueue/      Queue[K, T]: Add, Peek, Pull, SetPriority, Has
//	search/      Algorithm, Searcher, Result; BFS, uniform-cost, heuristic
//	telemetry/   instrumented Searcher wrapper
//	scenario/    YAML scenarios
//	render/      tcell renderer, text output, replay Player
//	cmd/hexpath  command-line front end
//
// Quick ASCII example (3 rows, 3 cols, even rows wide):
//
//	  S          row 0: 1 cell
//	.   .        row 1: 2 cells
//	  T          row 2: 1 cell
//
// S reaches T in one hop: cells two rows apart in the same column are
// neighbors.
//
//	go install github.com/katalvlaran/hexpath/cmd/hexpath@latest
package hexpath
