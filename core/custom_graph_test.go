package core_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/stretchr/testify/require"
)

func TestCustomGraph_AddNodeAndArc(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	require.True(t, g.HasNode(a))
	require.True(t, g.HasNode(b))
	require.Equal(t, 2, g.NodeCount())

	arc, err := g.AddArc(a, b, core.Directed)
	require.NoError(t, err)
	require.True(t, g.HasArc(arc))
	require.Equal(t, a, g.U(arc))
	require.Equal(t, b, g.V(arc))
	require.False(t, g.IsEdge(arc))
}

func TestCustomGraph_AddNodeWithID(t *testing.T) {
	g := core.NewCustomGraph()
	n, err := g.AddNodeWithID(42)
	require.NoError(t, err)
	require.Equal(t, int64(42), n.ID())

	_, err = g.AddNodeWithID(42)
	require.ErrorIs(t, err, core.ErrDuplicateNodeID)

	_, err = g.AddNodeWithID(0)
	require.ErrorIs(t, err, core.ErrInvalidHandle)

	// AddNode must not collide with the explicitly-claimed id 42.
	other := g.AddNode()
	require.NotEqual(t, int64(42), other.ID())
}

func TestCustomGraph_AddArcMissingEndpoint(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	ghost := core.NodeFromID(999)
	_, err := g.AddArc(a, ghost, core.Directed)
	require.ErrorIs(t, err, core.ErrEndpointNotInGraph)
}

func TestCustomGraph_ArcFilters(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()

	out, err := g.AddArc(a, b, core.Directed) // a -> b
	require.NoError(t, err)
	in, err := g.AddArc(c, a, core.Directed) // c -> a
	require.NoError(t, err)
	edge, err := g.AddArc(a, c, core.Undirected) // a -- c
	require.NoError(t, err)

	forward := core.ArcsOf(g.ArcsAt(a, core.Forward))
	require.ElementsMatch(t, []core.Arc{out, edge}, forward)

	backward := core.ArcsOf(g.ArcsAt(a, core.Backward))
	require.ElementsMatch(t, []core.Arc{in, edge}, backward)

	all := core.ArcsOf(g.ArcsAt(a, core.All))
	require.ElementsMatch(t, []core.Arc{out, in, edge}, all)

	edgesOnly := core.ArcsOf(g.ArcsAt(a, core.EdgeFilter))
	require.ElementsMatch(t, []core.Arc{edge}, edgesOnly)

	require.Equal(t, len(forward), g.ArcCountAt(a, core.Forward))
	require.Equal(t, len(backward), g.ArcCountAt(a, core.Backward))
	require.Equal(t, len(all), g.ArcCountAt(a, core.All))
}

func TestCustomGraph_SelfLoopDedup(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	loop, err := g.AddArc(a, a, core.Directed)
	require.NoError(t, err)

	all := core.ArcsOf(g.ArcsAt(a, core.All))
	require.Equal(t, []core.Arc{loop}, all, "a directed self-loop is reported once under All")
}

func TestCustomGraph_DeleteArcAndNode(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	arc, _ := g.AddArc(a, b, core.Directed)

	require.NoError(t, g.DeleteArc(arc))
	require.False(t, g.HasArc(arc))
	require.Equal(t, 0, g.ArcCountAt(a, core.All))

	arc2, _ := g.AddArc(a, b, core.Directed)
	require.NoError(t, g.DeleteNode(b))
	require.False(t, g.HasNode(b))
	require.False(t, g.HasArc(arc2))
	require.Equal(t, 0, g.ArcCountAt(a, core.All))
}

func TestCustomGraph_UndirectedEdgeVisibleFromBothEndpoints(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	edge, err := g.AddArc(a, b, core.Undirected)
	require.NoError(t, err)
	require.True(t, g.IsEdge(edge))

	require.Equal(t, []core.Arc{edge}, core.ArcsOf(g.ArcsAt(a, core.EdgeFilter)))
	require.Equal(t, []core.Arc{edge}, core.ArcsOf(g.ArcsAt(b, core.EdgeFilter)))
	require.Equal(t, []core.Arc{edge}, core.ArcsOf(g.ArcsBetween(a, b, core.All)))
	require.Equal(t, []core.Arc{edge}, core.ArcsOf(g.ArcsBetween(b, a, core.All)))
}

// TestCustomGraph_OtherInvariant checks the universal invariant:
// G.U(a) == G.Other(a, G.V(a)) for every arc a.
func TestCustomGraph_OtherInvariant(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	arc, _ := g.AddArc(a, b, core.Directed)
	require.Equal(t, g.U(arc), core.Other(g, arc, g.V(arc)))
	require.Equal(t, g.V(arc), core.Other(g, arc, g.U(arc)))
}

// TestCustomGraph_ArcCountMatchesEnumeration checks the universal
// property: ArcCount(n, filter) == |Arcs(n, filter)| for every filter.
func TestCustomGraph_ArcCountMatchesEnumeration(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	_, _ = g.AddArc(a, b, core.Directed)
	_, _ = g.AddArc(c, a, core.Directed)
	_, _ = g.AddArc(a, c, core.Undirected)

	for _, filter := range []core.ArcFilter{core.All, core.EdgeFilter, core.Forward, core.Backward} {
		require.Equal(t, len(core.ArcsOf(g.ArcsAt(a, filter))), g.ArcCountAt(a, filter), "filter=%v", filter)
	}
}
