// This file declares the shared single-source Result type and the
// sentinel errors for path reconstruction.
package path

import (
	"errors"
	"fmt"

	"github.com/MrtitaniumJ/shortpath/core"
)

// Sentinel errors for path reconstruction.
var (
	// ErrNoPath indicates no path exists from the result's source to the
	// requested target. Recoverable; the caller decides the fallback.
	ErrNoPath = errors.New("path: no path to target")

	// ErrNegativeCycle indicates reconstruction was requested on a result
	// whose NegativeCycle flag is set; its distances and predecessors are
	// undefined and must not be walked.
	ErrNegativeCycle = errors.New("path: result invalidated by negative cycle")
)

// Result is the outcome of one single-source engine invocation.
//
// Dist[v] is the best-known distance from Source to v, or core.Inf when v
// is unreachable. Prev[v] is the predecessor of v on one shortest path, or
// core.NoVertex for the source itself and for unreachable vertices.
//
// When NegativeCycle is true (Bellman-Ford only), every Dist and Prev
// value is undefined; callers must check the flag before trusting either.
type Result struct {
	Source        int     // the source vertex this result was computed from
	Dist          []int64 // per-vertex distance, core.Inf if unreachable
	Prev          []int   // per-vertex predecessor, core.NoVertex if none
	NegativeCycle bool    // true iff a negative cycle reachable from Source exists
}

// NewResult allocates a Result for vertexCount vertices with every
// distance at core.Inf, every predecessor at core.NoVertex, and
// Dist[source] = 0. The source index must already be validated by the
// calling engine.
func NewResult(source, vertexCount int) *Result {
	r := &Result{
		Source: source,
		Dist:   make([]int64, vertexCount),
		Prev:   make([]int, vertexCount),
	}
	for v := 0; v < vertexCount; v++ {
		r.Dist[v] = core.Inf
		r.Prev[v] = core.NoVertex
	}
	r.Dist[source] = 0

	return r
}

// Reachable reports whether target received a finite distance.
// It does not validate target; out-of-range indices panic as any slice
// access would.
func (r *Result) Reachable(target int) bool { return r.Dist[target] < core.Inf }

// PathTo reconstructs the shortest path Source→target by walking the
// predecessor chain backwards and reversing it. The returned path always
// starts with Source and ends with target; for target == Source it is
// exactly [Source].
//
// Errors:
//
//   - core.ErrInvalidVertex if target is outside [0, V).
//   - ErrNegativeCycle if the result is flagged; see Result.
//   - ErrNoPath if target is unreachable from Source.
//
// Complexity: O(path length).
func (r *Result) PathTo(target int) ([]int, error) {
	if target < 0 || target >= len(r.Dist) {
		return nil, fmt.Errorf("path: PathTo(%d): %w", target, core.ErrInvalidVertex)
	}
	if r.NegativeCycle {
		return nil, fmt.Errorf("path: PathTo(%d): %w", target, ErrNegativeCycle)
	}
	if target == r.Source {
		return []int{r.Source}, nil
	}
	if r.Prev[target] == core.NoVertex {
		// Unreachable: Prev is None and target is not the source.
		return nil, fmt.Errorf("path: PathTo(%d): %w", target, ErrNoPath)
	}

	// Walk backwards; the chain is acyclic because the result is not
	// flagged, so it terminates at Source in at most V steps.
	rev := make([]int, 0, 8)
	cur := target
	for cur != core.NoVertex {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
		cur = r.Prev[cur]
	}
	if rev[len(rev)-1] != r.Source {
		// Chain ended at None before reaching Source.
		return nil, fmt.Errorf("path: PathTo(%d): %w", target, ErrNoPath)
	}

	// Reverse in place: collected target→…→Source, return Source→…→target.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}
