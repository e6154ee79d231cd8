package core

import "fmt"

// Graph is a weighted directed multigraph over dense vertex indices [0, V).
//
// Vertices exist implicitly by index; edges are appended in insertion order
// and never removed. Parallel edges and self-loops are permitted. The zero
// Graph is unusable; construct with NewGraph.
type Graph struct {
	n     int     // vertex count V
	adj   [][]Arc // adjacency: adj[u] lists arcs out of u in insertion order
	edges []Edge  // flat edge list in insertion order
}

// NewGraph allocates a graph with vertexCount vertices and no edges.
// Returns ErrBadVertexCount if vertexCount is negative. A zero-vertex
// graph is valid and accepts no edges.
//
// Complexity: O(V) time and space for the adjacency spine.
func NewGraph(vertexCount int) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("core: NewGraph(%d): %w", vertexCount, ErrBadVertexCount)
	}

	return &Graph{
		n:   vertexCount,
		adj: make([][]Arc, vertexCount),
	}, nil
}

// VertexCount returns V, the number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of directed edges added so far.
// An undirected edge counts as two.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether v is a valid vertex index for this graph.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// AddEdge appends the directed edge u→v with the given weight to u's
// adjacency list and to the flat edge list. Duplicate (u,v) pairs are kept
// as parallel edges; u==v adds a self-loop. Weight may be negative; the
// model does not enforce per-engine weight preconditions.
//
// Returns ErrInvalidVertex if u or v lies outside [0, V).
//
// Complexity: amortized O(1).
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("core: AddEdge(%d,%d): from-vertex: %w", u, v, ErrInvalidVertex)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("core: AddEdge(%d,%d): to-vertex: %w", u, v, ErrInvalidVertex)
	}

	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: weight})
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: weight})

	return nil
}

// AddUndirectedEdge appends the two symmetric directed edges u→v and v→u.
// This is a construction convenience; the graph itself stays directed and
// both arcs show up independently in Edges and EdgeCount.
func (g *Graph) AddUndirectedEdge(u, v int, weight int64) error {
	if err := g.AddEdge(u, v, weight); err != nil {
		return err
	}

	return g.AddEdge(v, u, weight)
}

// EdgesFrom returns the arcs out of u in insertion order. The returned
// slice is a fresh copy on every call, so it is restartable and safe to
// retain or mutate without affecting the graph.
//
// Returns ErrInvalidVertex if u lies outside [0, V).
//
// Complexity: O(deg(u)) time and space.
func (g *Graph) EdgesFrom(u int) ([]Arc, error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("core: EdgesFrom(%d): %w", u, ErrInvalidVertex)
	}

	out := make([]Arc, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Edges returns all directed edges in insertion order as a fresh copy.
//
// Complexity: O(E) time and space.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
