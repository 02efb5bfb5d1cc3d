// Package scenario reads and writes search setups as YAML: grid dimensions,
// wide-row parity, algorithm, start, target, walls and weighted cells.
//
//	rows: 9
//	cols: 9
//	wide_rows: even
//	algorithm: aStar
//	start: {x: 0, y: 0}
//	target: {x: 3, y: 8}
//	walls:
//	  - {x: 1, y: 1}
//	weights:
//	  - {x: 2, y: 3, weight: 5}
//
// Load validates everything it reads: dimensions, parity, algorithm name,
// that every coordinate is a cell of the grid, that no cell is listed twice
// among walls or among weights, and that weights are at least 1.
package scenario
