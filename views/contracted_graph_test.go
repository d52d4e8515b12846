package views_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/views"
	"github.com/stretchr/testify/require"
)

func TestContractedGraph_MergeReducesNodeCount(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	g.AddArc(a, b, core.Directed)
	g.AddArc(b, c, core.Directed)

	cg := views.NewContractedGraph(g)
	require.Equal(t, 3, cg.NodeCount())
	require.True(t, cg.Merge(a, b))
	require.Equal(t, 2, cg.NodeCount())
	require.Equal(t, 1, cg.UnionCount())
	require.False(t, cg.Merge(a, b), "already unified")
}

func TestContractedGraph_LoopDedupOnlyAtOriginalU(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	arc, _ := g.AddArc(a, b, core.Directed)

	cg := views.NewContractedGraph(g)
	cg.Merge(a, b)

	rep := cg.GetRepresentative(a)
	all := core.ArcsOf(cg.ArcsAt(rep, core.All))
	require.Equal(t, []core.Arc{arc}, all, "contraction-induced loop reported exactly once")
}

func TestContractedGraph_ResetRestoresSingletons(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	g.AddArc(a, b, core.Directed)

	cg := views.NewContractedGraph(g)
	cg.Merge(a, b)
	cg.Reset()
	require.Equal(t, 2, cg.NodeCount())
	require.Equal(t, 0, cg.UnionCount())
}

func TestContractedGraph_ArcsUnchangedByFilter(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	arc, _ := g.AddArc(a, b, core.Directed)

	cg := views.NewContractedGraph(g)
	require.Equal(t, []core.Arc{arc}, core.ArcsOf(cg.Arcs(core.All)))
}
