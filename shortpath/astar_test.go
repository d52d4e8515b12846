package shortpath_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/shortpath"
	"github.com/stretchr/testify/require"
)

// TestAStar_ZeroHeuristicMatchesDijkstra checks that a trivially admissible
// heuristic (always zero) reduces A* to plain Dijkstra.
func TestAStar_ZeroHeuristicMatchesDijkstra(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	ab, _ := g.AddArc(a, b, core.Directed)
	bc, _ := g.AddArc(b, c, core.Directed)
	cost := weighted(map[int64]float64{ab.ID(): 2, bc.ID(): 3})

	zero := func(core.Node) float64 { return 0 }
	star, err := shortpath.NewAStar(g, cost, a, zero)
	require.NoError(t, err)
	require.NoError(t, star.Run())

	require.Equal(t, 5.0, star.Dist(c))
	require.Equal(t, bc, star.ParentArc(c))
}

// TestAStar_ConsistentHeuristicFindsSameDistance checks a non-trivial but
// consistent/admissible heuristic still recovers the true shortest distance.
func TestAStar_ConsistentHeuristicFindsSameDistance(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	ab, _ := g.AddArc(a, b, core.Directed)
	bc, _ := g.AddArc(b, c, core.Directed)
	cost := weighted(map[int64]float64{ab.ID(): 2, bc.ID(): 3})

	remaining := map[int64]float64{a.ID(): 5, b.ID(): 3, c.ID(): 0}
	h := func(n core.Node) float64 { return remaining[n.ID()] }

	star, err := shortpath.NewAStar(g, cost, a, h)
	require.NoError(t, err)
	require.NoError(t, star.RunUntilFixed(c))
	require.Equal(t, 5.0, star.Dist(c))
}
