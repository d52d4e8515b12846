package core_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/stretchr/testify/require"
)

func TestCompleteGraph_UndirectedCounts(t *testing.T) {
	g := core.NewCompleteGraph(4, core.Undirected)
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 6, g.ArcCount(core.All)) // 4*3/2

	n1 := core.NodeFromID(1)
	require.Equal(t, 3, g.ArcCountAt(n1, core.Forward))
	require.Equal(t, 3, g.ArcCountAt(n1, core.Backward))
	require.Equal(t, 3, g.ArcCountAt(n1, core.All))

	arcs := core.ArcsOf(g.Arcs(core.All))
	require.Len(t, arcs, 6)
	for _, a := range arcs {
		require.True(t, g.IsEdge(a))
		require.True(t, g.HasArc(a))
	}
}

func TestCompleteGraph_DirectedCounts(t *testing.T) {
	g := core.NewCompleteGraph(4, core.Directed)
	require.Equal(t, 12, g.ArcCount(core.All)) // 4*3

	n1 := core.NodeFromID(1)
	require.Equal(t, 3, g.ArcCountAt(n1, core.Forward))
	require.Equal(t, 3, g.ArcCountAt(n1, core.Backward))
	require.Equal(t, 6, g.ArcCountAt(n1, core.All))
}

func TestCompleteGraph_OtherInvariant(t *testing.T) {
	g := core.NewCompleteGraph(5, core.Directed)
	arcs := core.ArcsOf(g.Arcs(core.All))
	for _, a := range arcs {
		require.Equal(t, g.U(a), core.Other(g, a, g.V(a)))
	}
}

func TestCompleteGraph_ArcsBetween(t *testing.T) {
	g := core.NewCompleteGraph(3, core.Directed)
	n1, n2 := core.NodeFromID(1), core.NodeFromID(2)
	both := core.ArcsOf(g.ArcsBetween(n1, n2, core.All))
	require.Len(t, both, 2)
	forward := core.ArcsOf(g.ArcsBetween(n1, n2, core.Forward))
	require.Len(t, forward, 1)
	require.Equal(t, n1, g.U(forward[0]))
	require.Equal(t, n2, g.V(forward[0]))
}
