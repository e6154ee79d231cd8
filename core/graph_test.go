// Package core_test validates the Graph model: constructor validation,
// edge insertion, adjacency ordering, copy semantics of the accessors,
// and the derived distance matrix.
package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrtitaniumJ/shortpath/core"
)

func TestNewGraph_NegativeVertexCount(t *testing.T) {
	// A negative vertex count is a structural error, not a usable graph.
	_, err := core.NewGraph(-1)
	require.ErrorIs(t, err, core.ErrBadVertexCount)
}

func TestNewGraph_ZeroVertices(t *testing.T) {
	// V=0 is valid; the graph simply accepts no edges.
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())

	// Any endpoint is out of range on an empty graph.
	err = g.AddEdge(0, 0, 1)
	require.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestAddEdge_InvalidVertices(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	// From-vertex out of range.
	require.ErrorIs(t, g.AddEdge(-1, 0, 1), core.ErrInvalidVertex)
	require.ErrorIs(t, g.AddEdge(3, 0, 1), core.ErrInvalidVertex)
	// To-vertex out of range.
	require.ErrorIs(t, g.AddEdge(0, 3, 1), core.ErrInvalidVertex)

	// Failed adds must not leave partial state behind.
	assert.Equal(t, 0, g.EdgeCount())
}

func TestEdgesFrom_InsertionOrderAndParallelEdges(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	// Two parallel 0→1 edges plus a self-loop; all must be kept in order.
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 2, 2))
	require.NoError(t, g.AddEdge(0, 1, 7))
	require.NoError(t, g.AddEdge(0, 0, 3))

	arcs, err := g.EdgesFrom(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Arc{{To: 1, Weight: 4}, {To: 2, Weight: 2}, {To: 1, Weight: 7}, {To: 0, Weight: 3}}, arcs)

	// Restartable: a second call yields the same sequence.
	again, err := g.EdgesFrom(0)
	require.NoError(t, err)
	assert.Equal(t, arcs, again)

	// Out-of-range query is a structural error.
	_, err = g.EdgesFrom(5)
	require.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestEdgesFrom_ReturnsCopy(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	arcs, err := g.EdgesFrom(0)
	require.NoError(t, err)
	arcs[0].Weight = 999 // mutate the returned slice

	fresh, err := g.EdgesFrom(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fresh[0].Weight, "graph must be unaffected by caller mutation")
}

func TestEdges_FlatListAndCopy(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, -5))

	edges := g.Edges()
	require.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: -5}}, edges)

	edges[0].Weight = 42
	assert.Equal(t, int64(1), g.Edges()[0].Weight)
}

func TestAddUndirectedEdge_SymmetricAppend(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddUndirectedEdge(0, 1, 6))

	// Both directions exist independently.
	assert.Equal(t, 2, g.EdgeCount())
	fwd, err := g.EdgesFrom(0)
	require.NoError(t, err)
	back, err := g.EdgesFrom(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Arc{{To: 1, Weight: 6}}, fwd)
	assert.Equal(t, []core.Arc{{To: 0, Weight: 6}}, back)

	// Invalid endpoints propagate from the underlying AddEdge.
	require.ErrorIs(t, g.AddUndirectedEdge(0, 9, 1), core.ErrInvalidVertex)
}

func TestDistanceMatrix_Basics(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 1, 3)) // parallel edge, lower weight wins
	require.NoError(t, g.AddEdge(1, 2, -2))

	m := g.DistanceMatrix()
	require.Len(t, m, 3)

	// Diagonal is zero without self-loops.
	for i := 0; i < 3; i++ {
		assert.Equal(t, int64(0), m[i][i])
	}
	// Minimum over parallel edges.
	assert.Equal(t, int64(3), m[0][1])
	// Negative direct weight is preserved.
	assert.Equal(t, int64(-2), m[1][2])
	// Absent edges carry the Inf sentinel.
	assert.Equal(t, core.Inf, m[1][0])
	assert.Equal(t, core.Inf, m[2][0])
}

func TestDistanceMatrix_NegativeSelfLoopOnDiagonal(t *testing.T) {
	// A negative self-loop is a one-edge negative cycle; it must land on
	// the diagonal instead of being masked by the implicit zero.
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0, -4))
	require.NoError(t, g.AddEdge(1, 1, 9)) // positive self-loop never beats 0

	m := g.DistanceMatrix()
	assert.Equal(t, int64(-4), m[0][0])
	assert.Equal(t, int64(0), m[1][1])
}

func TestDistanceMatrix_ReturnsCopy(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	m := g.DistanceMatrix()
	m[0][1] = -100
	assert.Equal(t, int64(1), g.DistanceMatrix()[0][1])
}

func TestSentinels(t *testing.T) {
	// Inf must survive one maximal edge-weight addition without wrapping.
	assert.Positive(t, core.Inf)
	assert.Positive(t, core.Inf+core.Inf-1, "Inf+Inf-1 must not overflow int64")
	assert.Less(t, core.NoVertex, 0)
	// Sentinel errors are distinct.
	assert.False(t, errors.Is(core.ErrInvalidVertex, core.ErrBadVertexCount))
}
