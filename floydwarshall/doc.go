// Package floydwarshall implements the Floyd-Warshall all-pairs
// shortest-path dynamic program over a core.Graph.
//
// Overview:
//
//   - Works on the graph's dense distance matrix (core.DistanceMatrix),
//     so its cost is independent of edge count.
//   - The intermediate-vertex loop k is the outermost loop and its order
//     is fixed: after iteration k, dist[i][j] is the shortest i→j path
//     using only intermediates from {0..k}. Reordering the loops breaks
//     that invariant; it is the defining property of the algorithm, not
//     an implementation detail.
//   - Improvements require both dist[i][k] and dist[k][j] finite; the
//     core.Inf sentinel short-circuits before any addition, and strict
//     "<" keeps the first-found path on ties, matching path.Relax.
//   - Next-hop bookkeeping: next[i][j] is the first step on the shortest
//     i→j path; an improvement through k copies next[i][k].
//   - After the triple loop, any dist[i][i] < 0 proves a negative cycle
//     through i; the result is flagged, not errored.
//
// Complexity:
//
//   - Time:  O(V³).
//   - Space: O(V²) for the distance and next-hop matrices.
//
// Errors (sentinel):
//
//   - ErrNilGraph on a nil graph; path.ErrNoPath / path.ErrNegativeCycle /
//     core.ErrInvalidVertex from Result.Path.
package floydwarshall
