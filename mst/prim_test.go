package mst_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/mst"
	"github.com/stretchr/testify/require"
)

func TestPrim_PicksCheapestSpanningTree(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	ab, _ := g.AddArc(a, b, core.Undirected)
	bc, _ := g.AddArc(b, c, core.Undirected)
	ca, _ := g.AddArc(c, a, core.Undirected)
	cost := weighted(map[int64]float64{ab.ID(): 1, bc.ID(): 2, ca.ID(): 10})

	res, err := mst.Prim(g, cost)
	require.NoError(t, err)
	require.ElementsMatch(t, []core.Arc{ab, bc}, res.Arcs)
	require.Equal(t, 3.0, res.TotalCost)
}

func TestPrim_DisconnectedGraphYieldsForest(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	d := g.AddNode()
	ab, _ := g.AddArc(a, b, core.Undirected)
	cd, _ := g.AddArc(c, d, core.Undirected)
	cost := weighted(map[int64]float64{ab.ID(): 1, cd.ID(): 1})

	res, err := mst.Prim(g, cost)
	require.NoError(t, err)
	require.ElementsMatch(t, []core.Arc{ab, cd}, res.Arcs)
}

func TestPrim_NilGraphErrors(t *testing.T) {
	_, err := mst.Prim(nil, weighted(nil))
	require.ErrorIs(t, err, mst.ErrGraphNil)
}
