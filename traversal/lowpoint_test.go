package traversal_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/traversal"
	"github.com/stretchr/testify/require"
)

// TestRunLowpoint_BridgeInAPendant checks a textbook shape: a triangle
// a-b-c (no bridges) plus a pendant arc c-d, which must be the sole bridge.
func TestRunLowpoint_BridgeInAPendant(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	d := g.AddNode()
	g.AddArc(a, b, core.Undirected)
	g.AddArc(b, c, core.Undirected)
	g.AddArc(c, a, core.Undirected)
	pendant, _ := g.AddArc(c, d, core.Undirected)

	res, err := traversal.RunLowpoint(g, traversal.WithFilter(core.EdgeFilter), traversal.WithRoots(a))
	require.NoError(t, err)
	require.Equal(t, []core.Arc{pendant}, res.Bridges)
}

func TestRunLowpoint_NoBridgesInACycle(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	g.AddArc(a, b, core.Undirected)
	g.AddArc(b, c, core.Undirected)
	g.AddArc(c, a, core.Undirected)

	res, err := traversal.RunLowpoint(g, traversal.WithFilter(core.EdgeFilter), traversal.WithRoots(a))
	require.NoError(t, err)
	require.Empty(t, res.Bridges)
}
