// Package floydwarshall_test validates the all-pairs engine: distance
// matrices on fixed graphs, next-hop path reconstruction, negative-cycle
// detection via the diagonal, and agreement with the single-source
// engines.
package floydwarshall_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrtitaniumJ/shortpath/core"
	"github.com/MrtitaniumJ/shortpath/dijkstra"
	"github.com/MrtitaniumJ/shortpath/floydwarshall"
	"github.com/MrtitaniumJ/shortpath/path"
)

func TestFloydWarshall_NilGraph(t *testing.T) {
	_, err := floydwarshall.FloydWarshall(nil)
	require.ErrorIs(t, err, floydwarshall.ErrNilGraph)
}

func TestFloydWarshall_SingleVertex(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0}}, res.Dist)
	assert.False(t, res.NegativeCycle)

	p, err := res.Path(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, p)
}

func TestFloydWarshall_SmallDirected(t *testing.T) {
	// 0→1(3), 1→2(2), 0→2(10): going through 1 beats the direct edge.
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 10))

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)

	want := [][]int64{
		{0, 3, 5},
		{core.Inf, 0, 2},
		{core.Inf, core.Inf, 0},
	}
	if diff := deep.Equal(res.Dist, want); diff != nil {
		t.Fatalf("distance matrix mismatch: %v", diff)
	}

	// The improvement through 1 must redirect the first hop of 0→2.
	p, err := res.Path(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, p)
}

func TestFloydWarshall_DiamondAgreesWithDijkstra(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	for _, e := range []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 2},
		{From: 1, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 5},
		{From: 2, To: 3, Weight: 8},
		{From: 2, To: 4, Weight: 10},
		{From: 3, To: 4, Weight: 2},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	require.False(t, res.NegativeCycle)
	assert.Equal(t, int64(11), res.Dist[0][4])

	// Every row of the all-pairs matrix must match the corresponding
	// single-source Dijkstra run.
	for src := 0; src < g.VertexCount(); src++ {
		dj, derr := dijkstra.Dijkstra(g, src)
		require.NoError(t, derr)
		if diff := deep.Equal(res.Dist[src], dj.Dist); diff != nil {
			t.Fatalf("row %d disagrees with Dijkstra: %v", src, diff)
		}
	}
}

func TestFloydWarshall_NegativeCycleDetected(t *testing.T) {
	// Cycle 0→1→2→0 sums to 1 - 3 + 1 = -1.
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, -3))
	require.NoError(t, g.AddEdge(2, 0, 1))

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	assert.True(t, res.NegativeCycle)

	_, err = res.Path(0, 2)
	require.ErrorIs(t, err, path.ErrNegativeCycle)
}

func TestFloydWarshall_NegativeSelfLoop(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0, -1))

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	assert.True(t, res.NegativeCycle)
}

func TestFloydWarshall_NegativeEdgesNoCycle(t *testing.T) {
	// Negative weights without a negative cycle stay exact.
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, -3))
	require.NoError(t, g.AddEdge(2, 3, 2))

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	assert.False(t, res.NegativeCycle)
	assert.Equal(t, int64(-2), res.Dist[0][2])
	assert.Equal(t, int64(0), res.Dist[0][3])
}

func TestFloydWarshall_PathErrors(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)

	_, err = res.Path(0, 2)
	require.ErrorIs(t, err, path.ErrNoPath)
	_, err = res.Path(-1, 0)
	require.ErrorIs(t, err, core.ErrInvalidVertex)
	_, err = res.Path(0, 3)
	require.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestFloydWarshall_PathSumMatchesDistance(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddUndirectedEdge(0, 1, 2))
	require.NoError(t, g.AddUndirectedEdge(1, 2, 3))
	require.NoError(t, g.AddUndirectedEdge(2, 3, 1))
	require.NoError(t, g.AddUndirectedEdge(0, 3, 9))

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)

	direct := g.DistanceMatrix()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			p, perr := res.Path(i, j)
			require.NoError(t, perr)
			var sum int64
			for s := 1; s < len(p); s++ {
				sum += direct[p[s-1]][p[s]]
			}
			assert.Equal(t, res.Dist[i][j], sum, "pair (%d,%d)", i, j)
		}
	}
}

func TestFloydWarshall_DoesNotMutateGraph(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))

	before := g.DistanceMatrix()
	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	res.Dist[0][1] = -77 // scribble on the result

	if diff := deep.Equal(g.DistanceMatrix(), before); diff != nil {
		t.Fatalf("graph state changed: %v", diff)
	}
}
