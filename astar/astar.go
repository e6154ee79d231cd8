package astar

import (
	"fmt"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"

	"github.com/MrtitaniumJ/shortpath/core"
	"github.com/MrtitaniumJ/shortpath/path"
)

// frontierEntry is one priority-queue item: a vertex and its f-score
// (g-score plus heuristic) at enqueue time. Stale duplicates are filtered
// on dequeue, mirroring the Dijkstra heap discipline.
type frontierEntry struct {
	vertex int
	fScore int64
}

// byFScore orders frontier entries by ascending f-score.
func byFScore(a, b interface{}) int {
	return utils.Int64Comparator(a.(frontierEntry).fScore, b.(frontierEntry).fScore)
}

// AStar searches for a shortest source→destination path in g, guided by
// the heuristic h. Edge weights must be non-negative and h should be
// admissible; neither is checked (see the package comment). The graph is
// never mutated.
//
// An unreachable destination is not an error: the result comes back with
// Reachable == false and Cost == core.Inf.
//
// Errors:
//
//   - ErrNilGraph           if g is nil.
//   - ErrNilHeuristic       if h is nil.
//   - core.ErrInvalidVertex if source or destination is outside [0, V).
//
// Complexity: O((V + E) log V) time worst case, O(V + E) space; typically
// far less when the heuristic prunes well.
func AStar(g *core.Graph, source, destination int, h Heuristic) (*Result, error) {
	// 1) Validate structural inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("astar: source %d: %w", source, core.ErrInvalidVertex)
	}
	if !g.HasVertex(destination) {
		return nil, fmt.Errorf("astar: destination %d: %w", destination, core.ErrInvalidVertex)
	}

	// 2) Scratch state: g-scores via the shared result layout, closed
	//    set, and the f-score-ordered frontier seeded with the source.
	n := g.VertexCount()
	res := &Result{
		Source:      source,
		Destination: destination,
		Cost:        core.Inf,
		Dist:        make([]int64, n),
		Prev:        make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Dist[v] = core.Inf
		res.Prev[v] = core.NoVertex
	}
	res.Dist[source] = 0

	closed := make([]bool, n)
	frontier := priorityqueue.NewWith(byFScore)
	frontier.Enqueue(frontierEntry{vertex: source, fScore: h(source)})

	// 3) Main loop: pop the minimum-f vertex, exit early on the
	//    destination, otherwise relax its outgoing arcs.
	for !frontier.Empty() {
		raw, _ := frontier.Dequeue()
		u := raw.(frontierEntry).vertex

		if closed[u] {
			continue // stale frontier entry
		}
		closed[u] = true

		if u == destination {
			// Early exit: with an admissible heuristic the g-score of
			// the popped destination is optimal.
			res.Reachable = true
			res.Cost = res.Dist[destination]

			return res, nil
		}

		arcs, err := g.EdgesFrom(u)
		if err != nil {
			return nil, fmt.Errorf("astar: neighbors of %d: %w", u, err)
		}
		for _, a := range arcs {
			if path.Relax(res.Dist, res.Prev, u, a.To, a.Weight) {
				frontier.Enqueue(frontierEntry{vertex: a.To, fScore: res.Dist[a.To] + h(a.To)})
			}
		}
	}

	// 4) Frontier drained without popping the destination: soft failure.
	return res, nil
}
