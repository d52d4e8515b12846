package views_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/views"
	"github.com/stretchr/testify/require"
)

func buildChain(t *testing.T) (*core.CustomGraph, core.Node, core.Node, core.Node, core.Arc, core.Arc) {
	t.Helper()
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	ab, err := g.AddArc(a, b, core.Directed)
	require.NoError(t, err)
	bc, err := g.AddArc(b, c, core.Directed)
	require.NoError(t, err)
	return g, a, b, c, ab, bc
}

func TestPath_AddLastExtends(t *testing.T) {
	g, a, b, c, ab, bc := buildChain(t)
	p := views.NewPath(g)
	p.Begin(a)
	require.NoError(t, p.AddLast(ab))
	require.NoError(t, p.AddLast(bc))

	require.Equal(t, []core.Node{a, b, c}, core.NodesOf(p.Nodes()))
	require.Equal(t, c, p.Tail())
	require.Equal(t, a, p.Head())
}

func TestPath_AddLastRejectsRevisit(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	ab, _ := g.AddArc(a, b, core.Directed)
	ba, _ := g.AddArc(b, a, core.Directed)

	p := views.NewPath(g)
	p.Begin(a)
	require.NoError(t, p.AddLast(ab))
	require.ErrorIs(t, p.AddLast(ba), views.ErrPathNodeRevisited)
}

func TestPath_AddLastRejectsWrongDirection(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	ba, _ := g.AddArc(b, a, core.Directed) // points into a, not out of it

	p := views.NewPath(g)
	p.Begin(a)
	require.ErrorIs(t, p.AddLast(ba), views.ErrPathDirectionMismatch)
}

func TestPath_ReverseSwapsHeadAndTail(t *testing.T) {
	g, a, b, c, ab, bc := buildChain(t)
	p := views.NewPath(g)
	p.Begin(a)
	require.NoError(t, p.AddLast(ab))
	require.NoError(t, p.AddLast(bc))

	p.Reverse()
	require.Equal(t, c, p.Head())
	require.Equal(t, a, p.Tail())
	require.Equal(t, []core.Node{c, b, a}, core.NodesOf(p.Nodes()))
}
