// This file declares sentinel errors and the functional options for the
// Dijkstra engine.
package dijkstra

import (
	"errors"

	"github.com/MrtitaniumJ/shortpath/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates WithMaxDistance received a negative cap.
	ErrBadMaxDistance = errors.New("dijkstra: max distance must be non-negative")
)

// Options configures a Dijkstra run.
//
// MaxDistance caps exploration: vertices whose tentative distance would
// exceed it are never relaxed, and extraction stops once the nearest
// frontier entry lies beyond it. Default core.Inf (no cap).
type Options struct {
	MaxDistance int64
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance stops exploration beyond the given distance. Vertices
// farther than max keep Dist == core.Inf and Prev == core.NoVertex as if
// unreachable. Panics with ErrBadMaxDistance on a negative cap, signaling
// the misconfiguration at the call site.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the defaults: no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: core.Inf}
}
