// Package shortpath is a library of shortest-path algorithms over
// weighted directed graphs with dense integer vertices.
//
// Everything is organized under small, focused subpackages:
//
//	core/          — the Graph model: adjacency and distance-matrix views
//	path/          — the shared relaxation rule, result type, reconstruction
//	dijkstra/      — single-source, non-negative weights, lazy min-heap
//	bellmanford/   — single-source, negative weights, cycle detection
//	floydwarshall/ — all-pairs dynamic program with next-hop paths
//	astar/         — heuristic search with early exit at the destination
//	gridgraph/     — 2D cost grids as graphs, plus admissible heuristics
//
// Typical flow: build a core.Graph, run an engine, check the
// negative-cycle flag where the engine can raise one, then reconstruct
// paths from the result.
//
//	g, _ := core.NewGraph(5)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, 1)
//
//	res, err := dijkstra.Dijkstra(g, 0)
//	if err != nil {
//	    // structural problem: nil graph or bad source index
//	}
//	route, err := res.PathTo(2) // [0 1 2]
//
// All engines are synchronous and CPU-bound. A fully built Graph is safe
// to share across concurrent invocations; each run keeps its own scratch
// state.
package shortpath
