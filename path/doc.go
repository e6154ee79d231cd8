// Package path holds the machinery every single-source engine shares:
// the relaxation primitive, the Result type (distances + predecessors +
// negative-cycle flag), and predecessor-walk path reconstruction.
//
// # Relaxation
//
// Relax is the single source of truth for "is this a better path". All of
// Dijkstra, Bellman-Ford and A* call it; they differ only in how they pick
// the next candidate (priority-by-distance, exhaustive edge sweep,
// priority-by-heuristic-sum). The rule is strict improvement:
//
//	dist[u] + w < dist[v]
//
// Strict "<" (never "<=") fixes tie-breaking globally: the first-found
// path of minimal length keeps its predecessor chain, and later
// equal-length paths do not overwrite it.
//
// All arithmetic against the core.Inf sentinel short-circuits: Relax
// refuses to add anything to an unreachable distance, so sentinel values
// can never wrap or leak into real distances.
//
// # Results
//
// A Result is created fresh per engine invocation and is not mutated
// after the engine returns. When NegativeCycle is true every distance and
// predecessor in the Result is undefined; PathTo refuses to walk such a
// result and returns ErrNegativeCycle instead of looping over a cyclic
// predecessor chain.
//
// Errors:
//
//	ErrNoPath        - reconstruction requested for an unreachable target.
//	ErrNegativeCycle - reconstruction requested on a flagged result.
package path
