package floydwarshall

import (
	"github.com/MrtitaniumJ/shortpath/core"
)

// FloydWarshall computes shortest distances between every ordered pair of
// vertices of g, with next-hop bookkeeping for path reconstruction and
// negative-cycle detection via the diagonal. The graph is never mutated;
// the DP runs on a fresh copy of its distance matrix.
//
// Errors:
//
//   - ErrNilGraph if g is nil.
//
// Complexity: O(V³) time, O(V²) space, independent of edge count.
func FloydWarshall(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1) Seed the DP with the direct-distance matrix (fresh copy) and the
	//    trivial next hops: next[i][j] = j wherever a direct edge or the
	//    diagonal provides a finite entry.
	n := g.VertexCount()
	dist := g.DistanceMatrix()
	next := make([][]int, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		row := make([]int, n)
		for j = 0; j < n; j++ {
			if dist[i][j] < core.Inf {
				row[j] = j
			} else {
				row[j] = core.NoVertex
			}
		}
		next[i] = row
	}

	// 2) The triple loop. k MUST stay outermost: after iteration k every
	//    dist[i][j] is optimal over intermediates {0..k}. Both legs must
	//    be finite before adding, so the Inf sentinel never enters
	//    arithmetic; strict "<" keeps first-found paths on ties.
	var dik, cand int64
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			dik = dist[i][k]
			if dik >= core.Inf {
				continue // i cannot reach k; k helps no i→j pair
			}
			for j = 0; j < n; j++ {
				if dist[k][j] >= core.Inf {
					continue
				}
				cand = dik + dist[k][j]
				if cand < dist[i][j] {
					dist[i][j] = cand
					next[i][j] = next[i][k]
				}
			}
		}
	}

	// 3) A negative diagonal entry proves a negative cycle through that
	//    vertex; flag the result instead of erroring.
	res := &Result{Dist: dist, Next: next}
	for i = 0; i < n; i++ {
		if dist[i][i] < 0 {
			res.NegativeCycle = true
			break
		}
	}

	return res, nil
}
