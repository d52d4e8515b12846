package core_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/stretchr/testify/require"
)

func TestPathGraph_Linear(t *testing.T) {
	g := core.NewPathGraph(5, core.Undirected)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 4, g.ArcCount(core.All))

	mid := core.NodeFromID(3)
	require.Equal(t, 2, g.ArcCountAt(mid, core.All)) // neighbors 2 and 4

	first := core.NodeFromID(1)
	require.Equal(t, 1, g.ArcCountAt(first, core.All)) // endpoint
}

func TestPathGraph_DirectedEndsAtLastNode(t *testing.T) {
	g := core.NewPathGraph(5, core.Directed)
	last := core.NodeFromID(5)
	require.Equal(t, 0, g.ArcCountAt(last, core.Forward))
	require.Equal(t, 1, g.ArcCountAt(last, core.Backward))
}

func TestPathGraph_SingleNodeHasNoArcs(t *testing.T) {
	g := core.NewPathGraph(1, core.Undirected)
	require.Equal(t, 0, g.ArcCount(core.All))
}
