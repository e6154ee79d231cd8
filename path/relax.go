package path

import "github.com/MrtitaniumJ/shortpath/core"

// Relax attempts the shared improvement step dist[u] + weight < dist[v].
//
// On improvement it writes the new distance, records u as v's predecessor
// (when prev is non-nil) and reports true; otherwise it is a no-op and
// reports false. The comparison is strictly "<": an equal-length path
// never displaces the predecessor recorded first.
//
// Additions against the core.Inf sentinel short-circuit: when dist[u] is
// unreachable the step is refused outright, so a negative weight can never
// pull an unreachable vertex below Inf and sentinel arithmetic can never
// overflow.
//
// Both u and v must be valid indices into dist (and prev when non-nil);
// the calling engine owns that validation.
func Relax(dist []int64, prev []int, u, v int, weight int64) bool {
	if dist[u] >= core.Inf {
		return false
	}
	candidate := dist[u] + weight
	if candidate >= dist[v] {
		return false
	}

	dist[v] = candidate
	if prev != nil {
		prev[v] = u
	}

	return true
}
