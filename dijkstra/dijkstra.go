package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/MrtitaniumJ/shortpath/core"
	"github.com/MrtitaniumJ/shortpath/path"
)

// Dijkstra computes shortest distances from source to every reachable
// vertex of g. All edge weights must be non-negative; this precondition is
// documented, not checked (see the package comment).
//
// Returns a fresh *path.Result: Dist[v] = core.Inf and
// Prev[v] = core.NoVertex for unreachable vertices, NegativeCycle always
// false. The graph is never mutated.
//
// Errors:
//
//   - ErrNilGraph           if g is nil.
//   - core.ErrInvalidVertex if source is outside [0, V).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*path.Result, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate structural inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("dijkstra: source %d: %w", source, core.ErrInvalidVertex)
	}

	// 3) Prepare scratch state: result arrays, visited flags, frontier.
	r := &runner{
		g:       g,
		options: cfg,
		res:     path.NewResult(source, g.VertexCount()),
		visited: make([]bool, g.VertexCount()),
		pq:      make(nodePQ, 0, g.VertexCount()),
	}

	// 4) Seed the frontier with (source, 0) and run the main loop.
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{vertex: source, dist: 0})
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	g       *core.Graph  // input graph; read-only here
	options Options      // run configuration
	res     *path.Result // distances + predecessors under construction
	visited []bool       // true once a vertex's distance is finalized
	pq      nodePQ       // lazy min-heap of (vertex, dist) entries
}

// process repeatedly extracts the unvisited vertex with minimum tentative
// distance, finalizes it, and relaxes its outgoing arcs.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the nearest frontier entry.
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.vertex

		// 2) Skip stale entries for already-finalized vertices
		//    (lazy decrease-key).
		if r.visited[u] {
			continue
		}

		// 3) Entries are popped in nondecreasing order, so once one
		//    exceeds the cap nothing nearer remains.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize u; item.dist is now the true shortest distance.
		r.visited[u] = true

		// 5) Relax all arcs out of u.
		if err := r.relaxNeighbors(u); err != nil {
			return err
		}
	}

	return nil
}

// relaxNeighbors attempts the shared relaxation step on every arc out of u
// and pushes a new frontier entry for each improvement.
func (r *runner) relaxNeighbors(u int) error {
	arcs, err := r.g.EdgesFrom(u)
	if err != nil {
		// Unreachable in practice: u came off the frontier and is valid.
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	var a core.Arc
	for _, a = range arcs {
		// Respect the exploration cap before committing the improvement.
		if r.res.Dist[u]+a.Weight > r.options.MaxDistance {
			continue
		}
		if path.Relax(r.res.Dist, r.res.Prev, u, a.To, a.Weight) {
			heap.Push(&r.pq, nodeItem{vertex: a.To, dist: r.res.Dist[a.To]})
		}
	}

	return nil
}

// nodeItem is one frontier entry: a vertex and its tentative distance at
// push time. Stale duplicates are filtered on extraction, not removal.
type nodeItem struct {
	vertex int
	dist   int64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
