// This file declares the all-pairs Result type, its path reconstruction,
// and the package's sentinel error.
package floydwarshall

import (
	"errors"
	"fmt"

	"github.com/MrtitaniumJ/shortpath/core"
	"github.com/MrtitaniumJ/shortpath/path"
)

// ErrNilGraph indicates a nil *core.Graph was passed to FloydWarshall.
var ErrNilGraph = errors.New("floydwarshall: graph is nil")

// Result is the outcome of one Floyd-Warshall invocation.
//
// Dist[i][j] is the shortest i→j distance, core.Inf when j is unreachable
// from i. Next[i][j] is the first hop on one shortest i→j path, or
// core.NoVertex when no path exists; Next[i][i] == i.
//
// When NegativeCycle is true every entry of both matrices is undefined;
// callers must check the flag first, and Path refuses to walk a flagged
// result.
type Result struct {
	Dist          [][]int64 // V×V shortest distances
	Next          [][]int   // V×V first hops, core.NoVertex if none
	NegativeCycle bool      // true iff any Dist[i][i] < 0 after the DP
}

// Path reconstructs one shortest path start→end by walking the next-hop
// matrix forward. The returned path begins with start and ends with end;
// for start == end it is exactly [start].
//
// Errors:
//
//   - core.ErrInvalidVertex if start or end is outside [0, V).
//   - path.ErrNegativeCycle if the result is flagged.
//   - path.ErrNoPath if end is unreachable from start.
//
// Complexity: O(path length).
func (r *Result) Path(start, end int) ([]int, error) {
	n := len(r.Dist)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("floydwarshall: Path(%d,%d): start: %w", start, end, core.ErrInvalidVertex)
	}
	if end < 0 || end >= n {
		return nil, fmt.Errorf("floydwarshall: Path(%d,%d): end: %w", start, end, core.ErrInvalidVertex)
	}
	if r.NegativeCycle {
		return nil, fmt.Errorf("floydwarshall: Path(%d,%d): %w", start, end, path.ErrNegativeCycle)
	}
	if r.Next[start][end] == core.NoVertex {
		return nil, fmt.Errorf("floydwarshall: Path(%d,%d): %w", start, end, path.ErrNoPath)
	}

	// Forward walk; terminates because the unflagged next-hop chain
	// strictly approaches end.
	out := make([]int, 0, 8)
	cur := start
	out = append(out, cur)
	for cur != end {
		cur = r.Next[cur][end]
		out = append(out, cur)
	}

	return out, nil
}
