package views_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/views"
	"github.com/stretchr/testify/require"
)

func TestRedirectedGraph_PerArcClassification(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	keep, _ := g.AddArc(a, b, core.Directed)
	flip, _ := g.AddArc(a, c, core.Directed)

	roles := map[int64]views.RedirectionRole{
		keep.ID(): views.RoleForward,
		flip.ID(): views.RoleBackward,
	}
	r := views.NewRedirectedGraph(g, func(arc core.Arc) views.RedirectionRole { return roles[arc.ID()] })

	require.Equal(t, a, r.U(keep))
	require.Equal(t, b, r.V(keep))
	require.Equal(t, c, r.U(flip))
	require.Equal(t, a, r.V(flip))
}

func TestRedirectedGraph_RoleEdgeAlwaysCountsAsEdge(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	arc, _ := g.AddArc(a, b, core.Directed)

	r := views.NewRedirectedGraph(g, func(core.Arc) views.RedirectionRole { return views.RoleEdge })
	require.True(t, r.IsEdge(arc))
	require.Equal(t, []core.Arc{arc}, core.ArcsOf(r.ArcsAt(a, core.EdgeFilter)))
	require.Equal(t, []core.Arc{arc}, core.ArcsOf(r.ArcsAt(b, core.EdgeFilter)))
}
