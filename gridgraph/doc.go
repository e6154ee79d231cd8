// Package gridgraph adapts a 2D cost grid into a core.Graph and supplies
// admissible heuristics for astar over it.
//
// Every cell (x, y) maps to the dense vertex index y*Width + x. A cell's
// value is the cost of stepping INTO it; values must be non-negative.
// Cells whose cost reaches the impassable threshold are walls: no arc
// enters or leaves them. Neighborhood is 4-directional by default
// (N, E, S, W) or 8-directional with WithConnectivity(Conn8).
//
// The grid is immutable once built; the derived core.Graph is constructed
// a single time in New and shared by reference, so the usual read-only
// discipline applies when running engines concurrently.
//
// HeuristicTo returns the distance estimate matching the grid's
// connectivity (Manhattan for Conn4, Chebyshev for Conn8) scaled by the
// cheapest passable cell cost. Any k-step path costs at least k times
// that minimum, so the estimate never overestimates and astar's
// admissibility contract holds.
//
// Errors:
//
//	ErrEmptyGrid      - no rows or no columns.
//	ErrNonRectangular - rows of differing lengths.
//	ErrNegativeCell   - a negative cell cost.
//	ErrOutsideGrid    - coordinates outside the grid.
package gridgraph
