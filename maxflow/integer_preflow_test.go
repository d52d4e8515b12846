package maxflow_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/maxflow"
	"github.com/stretchr/testify/require"
)

func capacities(caps map[int64]int64) maxflow.CapacityFunc {
	return func(a core.Arc) int64 { return caps[a.ID()] }
}

func TestIntegerPreflow_DiamondBottleneck(t *testing.T) {
	// s -> a -> t, s -> b -> t, with a->t the bottleneck.
	g := core.NewCustomGraph()
	s := g.AddNode()
	a := g.AddNode()
	b := g.AddNode()
	tgt := g.AddNode()
	sa, _ := g.AddArc(s, a, core.Directed)
	at, _ := g.AddArc(a, tgt, core.Directed)
	sb, _ := g.AddArc(s, b, core.Directed)
	bt, _ := g.AddArc(b, tgt, core.Directed)
	cap := capacities(map[int64]int64{sa.ID(): 10, at.ID(): 3, sb.ID(): 10, bt.ID(): 10})

	p, err := maxflow.NewIntegerPreflow(g, s, tgt, cap)
	require.NoError(t, err)
	require.Equal(t, int64(13), p.FlowSize)
}

func TestIntegerPreflow_NoPathIsZeroFlow(t *testing.T) {
	g := core.NewCustomGraph()
	s := g.AddNode()
	tgt := g.AddNode()
	g.AddNode() // isolated node, no path s->t

	p, err := maxflow.NewIntegerPreflow(g, s, tgt, capacities(nil))
	require.NoError(t, err)
	require.Equal(t, int64(0), p.FlowSize)
}

func TestIntegerPreflow_SourceNotFound(t *testing.T) {
	g := core.NewCustomGraph()
	tgt := g.AddNode()

	_, err := maxflow.NewIntegerPreflow(g, core.NodeFromID(999), tgt, capacities(nil))
	require.ErrorIs(t, err, maxflow.ErrSourceNotFound)
}
