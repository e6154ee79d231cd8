// Package core provides the weighted directed multigraph shared by every
// shortest-path engine in shortpath.
//
// The Graph G = (V,E) is deliberately minimal:
//
//   - Vertices are dense integer indices in [0, V); they carry no payload
//     and exist implicitly by falling inside the index range.
//   - Edges are ordered (from, to, weight) triples with int64 weights.
//     Parallel edges and self-loops are always permitted; negative weights
//     are permitted by the model (individual engines state their own
//     weight preconditions).
//   - Undirectedness is a caller-level convenience, not a graph property:
//     AddUndirectedEdge appends two symmetric directed edges.
//
// Two derived views serve the two complexity profiles of the engines:
//
//   - EdgesFrom(u) / Edges() — sparse adjacency in insertion order,
//     O(V+E) space, consumed by Dijkstra, Bellman-Ford and A*.
//   - DistanceMatrix() — dense V×V grid with the Inf sentinel for
//     "no edge", O(V²) space, consumed by Floyd-Warshall.
//
// Infinity is a sentinel, not an unbounded value: Inf = math.MaxInt64/2,
// chosen so that Inf plus any realistic edge weight cannot overflow int64.
// Engines must still short-circuit additions against Inf rather than
// compute them; see path.Relax.
//
// # Concurrency
//
// A Graph is mutable only through AddEdge/AddUndirectedEdge. Once
// construction is finished it is read-only from the engines' point of
// view: every accessor returns a fresh copy and no engine ever mutates
// the caller's graph. A fully built Graph may therefore be shared across
// any number of concurrent engine invocations without locking, provided
// no goroutine keeps adding edges.
//
// Errors:
//
//	ErrBadVertexCount - negative vertex count passed to NewGraph.
//	ErrInvalidVertex  - vertex index outside [0, V).
package core
