package shortpath_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/shortpath"
	"github.com/stretchr/testify/require"
)

func TestBellmanFord_HandlesNegativeEdges(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	ab, _ := g.AddArc(a, b, core.Directed)
	bc, _ := g.AddArc(b, c, core.Directed)
	cost := weighted(map[int64]float64{ab.ID(): 4, bc.ID(): -2})

	bf, err := shortpath.NewBellmanFord(g, cost, []core.Node{a})
	require.NoError(t, err)
	require.False(t, bf.HasNegativeCycle())

	dc, err := bf.Dist(c)
	require.NoError(t, err)
	require.Equal(t, 2.0, dc)
}

func TestBellmanFord_DetectsNegativeCycle(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	ab, _ := g.AddArc(a, b, core.Directed)
	bc, _ := g.AddArc(b, c, core.Directed)
	ca, _ := g.AddArc(c, a, core.Directed)
	cost := weighted(map[int64]float64{ab.ID(): 1, bc.ID(): 1, ca.ID(): -5})

	bf, err := shortpath.NewBellmanFord(g, cost, []core.Node{a})
	require.NoError(t, err)
	require.True(t, bf.HasNegativeCycle())
	require.NotEmpty(t, bf.NegativeCycle())

	_, err = bf.Dist(a)
	require.ErrorIs(t, err, shortpath.ErrNegativeCycle)
}

func TestBellmanFord_NegativeEdgeIsA2Cycle(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	edge, _ := g.AddArc(a, b, core.Undirected)
	cost := weighted(map[int64]float64{edge.ID(): -1})

	bf, err := shortpath.NewBellmanFord(g, cost, []core.Node{a})
	require.NoError(t, err)
	require.True(t, bf.HasNegativeCycle(), "a negative undirected edge is its own 2-cycle")
}
