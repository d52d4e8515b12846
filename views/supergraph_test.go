package views_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/views"
	"github.com/stretchr/testify/require"
)

func TestSupergraph_AddsAtopBase(t *testing.T) {
	base := core.NewCustomGraph()
	a := base.AddNode()
	b := base.AddNode()
	baseArc, _ := base.AddArc(a, b, core.Directed)

	sg := views.NewSupergraph(base)
	c := sg.AddNode()
	require.True(t, sg.HasNode(a), "base nodes are visible")
	require.True(t, sg.HasNode(c))
	require.Equal(t, 3, sg.NodeCount())

	newArc, err := sg.AddArc(b, c, core.Directed)
	require.NoError(t, err)
	require.ElementsMatch(t, []core.Arc{baseArc, newArc}, core.ArcsOf(sg.Arcs(core.All)))
}

func TestSupergraph_ArcsAtMergesBaseAndOwned(t *testing.T) {
	base := core.NewCustomGraph()
	a := base.AddNode()
	b := base.AddNode()
	baseArc, _ := base.AddArc(a, b, core.Directed)

	sg := views.NewSupergraph(base)
	c := sg.AddNode()
	newArc, _ := sg.AddArc(a, c, core.Directed)

	atA := core.ArcsOf(sg.ArcsAt(a, core.All))
	require.ElementsMatch(t, []core.Arc{baseArc, newArc}, atA)
}

func TestSupergraph_DeleteOnlyTouchesOwned(t *testing.T) {
	base := core.NewCustomGraph()
	a := base.AddNode()
	b := base.AddNode()
	baseArc, _ := base.AddArc(a, b, core.Directed)

	sg := views.NewSupergraph(base)
	require.Error(t, sg.DeleteArc(baseArc), "can't delete an arc it doesn't own")

	c := sg.AddNode()
	newArc, _ := sg.AddArc(a, c, core.Directed)
	require.NoError(t, sg.DeleteArc(newArc))
	require.False(t, sg.HasArc(newArc))
	require.True(t, sg.HasArc(baseArc))
}

func TestSupergraph_StandaloneWithNilBase(t *testing.T) {
	sg := views.NewSupergraph(nil)
	a := sg.AddNode()
	b := sg.AddNode()
	arc, err := sg.AddArc(a, b, core.Undirected)
	require.NoError(t, err)
	require.True(t, sg.IsEdge(arc))
	require.Equal(t, 2, sg.NodeCount())
}
