// This file declares the Heuristic contract, the A* Result type, and the
// package's sentinel errors.
package astar

import (
	"errors"

	"github.com/MrtitaniumJ/shortpath/path"
)

// Sentinel errors returned by AStar.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to AStar.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates a nil Heuristic was passed to AStar.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")
)

// Heuristic estimates the remaining cost from a vertex to the search
// destination. It must be non-negative and finite; it should be
// admissible (never overestimate) for the result to be optimal; see the
// package comment for the contract.
type Heuristic func(v int) int64

// Zero is the all-zeroes heuristic. It is trivially admissible and turns
// AStar into Dijkstra with early exit at the destination.
func Zero(int) int64 { return 0 }

// Result is the outcome of one A* invocation.
//
// Reachable reports whether the destination was reached; when false, Cost
// is core.Inf and no error was raised. Dist holds the g-scores accrued
// during the search: exact for every vertex popped before the
// destination, tentative for frontier vertices, core.Inf for untouched
// ones.
type Result struct {
	Source      int     // search source
	Destination int     // search destination
	Reachable   bool    // true iff a source→destination path was found
	Cost        int64   // cost of the found path, core.Inf if unreachable
	Dist        []int64 // per-vertex g-score at termination
	Prev        []int   // per-vertex predecessor, core.NoVertex if none
}

// PathTo reconstructs the found source→destination path via the shared
// predecessor walk. Fails with path.ErrNoPath when the destination was
// unreachable.
func (r *Result) PathTo() ([]int, error) {
	sp := path.Result{Source: r.Source, Dist: r.Dist, Prev: r.Prev}

	return sp.PathTo(r.Destination)
}
