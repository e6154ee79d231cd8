package bellmanford

import (
	"errors"
	"fmt"

	"github.com/MrtitaniumJ/shortpath/core"
	"github.com/MrtitaniumJ/shortpath/path"
)

// ErrNilGraph indicates a nil *core.Graph was passed to BellmanFord.
var ErrNilGraph = errors.New("bellmanford: graph is nil")

// BellmanFord computes shortest distances from source to every reachable
// vertex of g. Negative edge weights are fully supported; a negative
// cycle reachable from source sets Result.NegativeCycle instead of
// returning an error, and invalidates every distance and predecessor in
// the result. The graph is never mutated.
//
// Errors:
//
//   - ErrNilGraph           if g is nil.
//   - core.ErrInvalidVertex if source is outside [0, V).
//
// Complexity: O(V·E) time, O(V) space.
func BellmanFord(g *core.Graph, source int) (*path.Result, error) {
	// 1) Validate structural inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("bellmanford: source %d: %w", source, core.ErrInvalidVertex)
	}

	// 2) Fresh scratch state; one snapshot of the edge list for all rounds.
	res := path.NewResult(source, g.VertexCount())
	edges := g.Edges()

	// 3) Up to V-1 relaxation rounds over every edge. A shortest path has
	//    at most V-1 edges, so V-1 rounds always suffice; a round with no
	//    improvement means the fixpoint is already reached.
	var (
		e       core.Edge
		changed bool
	)
	for round := 1; round < g.VertexCount(); round++ {
		changed = false
		for _, e = range edges {
			if path.Relax(res.Dist, res.Prev, e.From, e.To, e.Weight) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// 4) Detection sweep: an edge that still admits improvement after
	//    convergence proves a reachable negative cycle. The same guard as
	//    path.Relax, applied read-only so the converged values stay put.
	for _, e = range edges {
		if res.Dist[e.From] < core.Inf && res.Dist[e.From]+e.Weight < res.Dist[e.To] {
			res.NegativeCycle = true
			break
		}
	}

	return res, nil
}
