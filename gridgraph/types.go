// This file declares sentinel errors, connectivity constants, and the
// functional options for grid construction.
package gridgraph

import (
	"errors"

	"github.com/MrtitaniumJ/shortpath/core"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")

	// ErrNegativeCell indicates a negative cell cost; step costs must be
	// non-negative for the downstream engines' weight preconditions.
	ErrNegativeCell = errors.New("gridgraph: cell cost must be non-negative")

	// ErrOutsideGrid indicates coordinates outside [0,Width)×[0,Height).
	ErrOutsideGrid = errors.New("gridgraph: coordinates outside grid")

	// ErrBadImpassable indicates WithImpassable received a non-positive
	// threshold, which would wall off every cell.
	ErrBadImpassable = errors.New("gridgraph: impassable threshold must be positive")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Impassable is the cost threshold at or above which a cell is a
	// wall. Default core.Inf (no walls).
	Impassable int64
}

// Option is a functional option for configuring New.
type Option func(*Options)

// WithConnectivity selects the neighbor connectivity.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithImpassable treats cells with cost >= threshold as walls. Panics
// with ErrBadImpassable on a non-positive threshold, signaling the
// misconfiguration at the call site.
func WithImpassable(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadImpassable.Error())
	}
	return func(o *Options) {
		o.Impassable = threshold
	}
}

// DefaultOptions returns the defaults: Conn4, no walls.
func DefaultOptions() Options {
	return Options{Conn: Conn4, Impassable: core.Inf}
}
