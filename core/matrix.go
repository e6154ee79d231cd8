package core

// DistanceMatrix derives the dense V×V direct-distance grid consumed by
// Floyd-Warshall:
//
//   - m[i][j] = minimum weight over all direct edges i→j, or Inf if none;
//   - m[i][i] starts at 0 and, like every other cell, takes the minimum
//     against direct self-loops, so a negative self-loop lands on the
//     diagonal as a negative value (it is a one-edge negative cycle and
//     must stay visible to cycle detection).
//
// The matrix is freshly allocated on every call; mutating it does not
// affect the graph. Built once per Floyd-Warshall invocation.
//
// Complexity: O(V² + E) time, O(V²) space.
func (g *Graph) DistanceMatrix() [][]int64 {
	m := make([][]int64, g.n)
	var i, j int
	for i = 0; i < g.n; i++ {
		row := make([]int64, g.n)
		for j = 0; j < g.n; j++ {
			row[j] = Inf
		}
		row[i] = 0
		m[i] = row
	}

	// Parallel edges collapse to their minimum weight.
	var e Edge
	for _, e = range g.edges {
		if e.Weight < m[e.From][e.To] {
			m[e.From][e.To] = e.Weight
		}
	}

	return m
}
