package views_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/views"
	"github.com/stretchr/testify/require"
)

func TestSubgraph_DefaultEnabledWithExceptions(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	arc, _ := g.AddArc(a, b, core.Directed)

	sub := views.NewSubgraph(g, true)
	require.True(t, sub.HasNode(a))
	require.True(t, sub.HasArc(arc))

	sub.SetNodeEnabled(b, false)
	require.False(t, sub.HasNode(b))
	require.False(t, sub.HasArc(arc), "disabled endpoint hides the arc")
	require.True(t, sub.IsArcEnabled(arc), "the arc's own flag is untouched")
}

func TestSubgraph_DefaultDisabledWithExceptions(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	arc, _ := g.AddArc(a, b, core.Undirected)

	sub := views.NewSubgraph(g, false)
	require.False(t, sub.HasNode(a))
	require.Equal(t, 0, sub.NodeCount())

	sub.SetNodeEnabled(a, true)
	sub.SetNodeEnabled(b, true)
	sub.SetArcEnabled(arc, true)
	require.Equal(t, 2, sub.NodeCount())
	require.True(t, sub.HasArc(arc))
	require.Equal(t, []core.Arc{arc}, core.ArcsOf(sub.Arcs(core.All)))
}
