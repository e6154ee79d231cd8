// Package astar implements A* heuristic search over a core.Graph: a
// goal-directed variant of Dijkstra that orders its frontier by
// f(v) = g(v) + h(v), where g is the cost from the source accumulated via
// the shared path.Relax rule and h is a caller-supplied cost-to-go
// estimate.
//
// The distinguishing behavior versus Dijkstra is early exit: the search
// terminates successfully the moment the destination is popped from the
// frontier, instead of exploring to convergence.
//
// Heuristic contract:
//
//   - h must never overestimate the true remaining cost (admissible) for
//     the returned cost to be optimal. Admissibility is NOT validated;
//     checking it would require solving the problem first. A
//     non-admissible heuristic yields a suboptimal but terminating
//     result, not an error; this deviation from strict A* guarantees is
//     deliberate.
//   - h(v) must be non-negative and finite for every vertex.
//   - The Zero heuristic degrades A* to Dijkstra with
//     early exit.
//
// Like Dijkstra, A* assumes non-negative edge weights and does not check
// them; negative weights yield silently incorrect results.
//
// An unreachable destination is a soft failure: the returned Result has
// Reachable == false and Cost == core.Inf, with no error.
//
// The frontier is a gods priority queue with the same lazy
// stale-entry-tolerant discipline as the Dijkstra heap.
package astar
