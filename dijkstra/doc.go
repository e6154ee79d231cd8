// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over a core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Processes vertices in order of increasing tentative distance using a
//     min-heap, relaxing outgoing arcs through the shared path.Relax rule.
//   - Uses the “lazy decrease-key” strategy: improvements push duplicate
//     heap entries, and a stale entry is discarded on extraction when its
//     vertex is already finalized. No decrease-key operation is needed.
//   - Terminates when the frontier drains (or, with WithMaxDistance, as
//     soon as the nearest frontier entry exceeds the cap).
//
// Precondition (non-negative weights):
//
// Dijkstra assumes every edge weight is ≥ 0 and does NOT verify it: a
// verification scan would cost a full O(E) pass on every invocation and
// defeat the algorithm's advantage over Bellman-Ford. Feeding it negative
// weights yields silently incorrect distances, not an error. Use
// bellmanford when weights may be negative. Consequently the returned
// Result always has NegativeCycle == false, since the algorithm cannot detect
// one.
//
// Complexity:
//
//   - Time:  O((V + E) log V): each vertex extracted at most once, each
//     relaxation pushes at most one entry, heap ops cost O(log V).
//   - Space: O(V + E): O(V) for distances/predecessors, O(E) worst-case
//     heap entries under lazy decrease-key.
//
// Errors (sentinel):
//
//   - ErrNilGraph          if the graph pointer is nil.
//   - core.ErrInvalidVertex if the source index is outside [0, V).
package dijkstra
