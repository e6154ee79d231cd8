package gridgraph

import (
	"fmt"

	"github.com/MrtitaniumJ/shortpath/astar"
	"github.com/MrtitaniumJ/shortpath/core"
)

// Neighbor offsets for each connectivity, in fixed clockwise order so
// adjacency lists (and therefore tie-breaking) are deterministic.
var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// GridGraph wraps a rectangular cost grid and its derived core.Graph.
// Immutable once built.
type GridGraph struct {
	Width, Height int

	costs      [][]int64    // costs[y][x]: cost of stepping into (x,y)
	conn       Connectivity // neighbor connectivity
	impassable int64        // wall threshold
	minCost    int64        // cheapest passable step, scales heuristics
	graph      *core.Graph  // derived graph, built once in New
}

// New validates cells and builds the grid and its graph in one pass.
// cells[y][x] is the cost of stepping into (x, y).
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrNegativeCell.
//
// Complexity: O(Width·Height) time and space (arc count is bounded by
// 8·V).
func New(cells [][]int64, opts ...Option) (*GridGraph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Shape validation.
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	height, width := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("gridgraph: row %d has %d cells, want %d: %w", y, len(row), width, ErrNonRectangular)
		}
		for x, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("gridgraph: cell (%d,%d) cost %d: %w", x, y, c, ErrNegativeCell)
			}
		}
	}

	// 2) Copy the cells so later caller mutation cannot skew the grid.
	costs := make([][]int64, height)
	for y := range cells {
		costs[y] = make([]int64, width)
		copy(costs[y], cells[y])
	}

	gg := &GridGraph{
		Width:      width,
		Height:     height,
		costs:      costs,
		conn:       cfg.Conn,
		impassable: cfg.Impassable,
	}

	// 3) Cheapest passable step cost, used to scale heuristics. Stays 0
	//    when no cell is passable; the zero heuristic is still admissible.
	gg.minCost = 0
	seen := false
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if c := costs[y][x]; c < cfg.Impassable && (!seen || c < gg.minCost) {
				gg.minCost = c
				seen = true
			}
		}
	}

	// 4) Derive the graph: one arc per passable cell pair, weighted by
	//    the cost of the cell being entered.
	g, err := core.NewGraph(width * height)
	if err != nil {
		return nil, err
	}
	offsets := offsets4
	if cfg.Conn == Conn8 {
		offsets = offsets8
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if costs[y][x] >= cfg.Impassable {
				continue // walls have no outgoing arcs
			}
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				if costs[ny][nx] >= cfg.Impassable {
					continue // and no arcs into walls
				}
				if aerr := g.AddEdge(y*width+x, ny*width+nx, costs[ny][nx]); aerr != nil {
					return nil, aerr
				}
			}
		}
	}
	gg.graph = g

	return gg, nil
}

// Graph returns the derived core.Graph. It is shared, not copied: treat
// it as read-only and do not add edges to it.
func (g *GridGraph) Graph() *core.Graph { return g.graph }

// VertexAt maps grid coordinates to the dense vertex index y*Width + x.
// Returns ErrOutsideGrid for coordinates off the grid.
func (g *GridGraph) VertexAt(x, y int) (int, error) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return core.NoVertex, fmt.Errorf("gridgraph: VertexAt(%d,%d): %w", x, y, ErrOutsideGrid)
	}

	return y*g.Width + x, nil
}

// CellAt is the inverse of VertexAt. Returns core.ErrInvalidVertex for an
// index outside [0, Width·Height).
func (g *GridGraph) CellAt(v int) (x, y int, err error) {
	if v < 0 || v >= g.Width*g.Height {
		return 0, 0, fmt.Errorf("gridgraph: CellAt(%d): %w", v, core.ErrInvalidVertex)
	}

	return v % g.Width, v / g.Width, nil
}

// Passable reports whether (x, y) is on the grid and below the wall
// threshold.
func (g *GridGraph) Passable(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return false
	}

	return g.costs[y][x] < g.impassable
}

// HeuristicTo returns an admissible astar.Heuristic towards (goalX,
// goalY): Manhattan distance under Conn4, Chebyshev under Conn8, scaled
// by the cheapest passable step cost. Returns ErrOutsideGrid when the
// goal is off the grid.
func (g *GridGraph) HeuristicTo(goalX, goalY int) (astar.Heuristic, error) {
	if goalX < 0 || goalX >= g.Width || goalY < 0 || goalY >= g.Height {
		return nil, fmt.Errorf("gridgraph: HeuristicTo(%d,%d): %w", goalX, goalY, ErrOutsideGrid)
	}

	conn := g.conn
	width := g.Width
	scale := g.minCost

	return func(v int) int64 {
		dx := abs64(int64(v%width) - int64(goalX))
		dy := abs64(int64(v/width) - int64(goalY))
		if conn == Conn8 {
			// Chebyshev: diagonal steps close both axes at once.
			if dx > dy {
				return dx * scale
			}

			return dy * scale
		}

		return (dx + dy) * scale
	}, nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
