// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm over a core.Graph, the engine of choice when
// edge weights may be negative.
//
// Overview:
//
//   - Runs up to V-1 rounds, each attempting the shared path.Relax step on
//     every edge of the graph in insertion order. Convergence is
//     order-independent: any fixed edge order reaches the same fixpoint.
//   - Exits early when a full round relaxes nothing: the distances have
//     converged and no further round can change them.
//   - After convergence (or V-1 rounds) one more sweep runs: if any edge
//     still relaxes, a negative cycle reachable from the source exists and
//     the result is flagged rather than errored, because adversarial inputs are
//     an expected outcome here, not a fault.
//
// A flagged result carries undefined distances and predecessors; callers
// must check Result.NegativeCycle before trusting either, and PathTo on a
// flagged result fails with path.ErrNegativeCycle.
//
// Complexity:
//
//   - Time:  O(V·E) worst case.
//   - Space: O(V) beyond the input.
//
// Errors (sentinel):
//
//   - ErrNilGraph           if the graph pointer is nil.
//   - core.ErrInvalidVertex if the source index is outside [0, V).
package bellmanford
