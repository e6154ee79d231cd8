// This file declares the Edge and Arc value types, the numeric sentinels
// shared by all engines, and the sentinel errors for core operations.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count passed to NewGraph.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrInvalidVertex indicates a vertex index outside [0, V).
	ErrInvalidVertex = errors.New("core: vertex index out of range")
)

// Inf is the sentinel "no path / no edge" distance.
//
// It is half of math.MaxInt64 so that Inf + w cannot overflow int64 for any
// edge weight w an engine will ever add to it. Code comparing distances must
// treat any value >= Inf as unreachable; code adding to a distance must
// short-circuit when the operand is >= Inf (see path.Relax).
const Inf int64 = math.MaxInt64 / 2

// NoVertex is the "no predecessor / no next hop" sentinel for vertex slots.
// It is never a valid vertex index.
const NoVertex = -1

// Edge is an ordered (From, To, Weight) triple as stored in the graph's
// flat edge list. Bellman-Ford sweeps this representation.
type Edge struct {
	From   int   // source vertex index
	To     int   // destination vertex index
	Weight int64 // may be negative; engines state their own preconditions
}

// Arc is the adjacency-list view of an edge out of a known vertex:
// only the destination and the weight. Dijkstra and A* walk Arcs.
type Arc struct {
	To     int   // destination vertex index
	Weight int64 // edge weight
}
