package isomorphism_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/isomorphism"
	"github.com/stretchr/testify/require"
)

// buildSpider makes a rigid "spider" graph: a hub with three legs of
// distinct lengths (1, 2, 3), so it has no nontrivial automorphism and
// color refinement can fully discretize it. legOrder controls the order
// legs are added in, letting two calls build isomorphic graphs whose
// node ids don't line up 1:1.
func buildSpider(legOrder []int) (*core.CustomGraph, core.Node) {
	g := core.NewCustomGraph()
	hub := g.AddNode()
	for _, legLen := range legOrder {
		prev := hub
		for i := 0; i < legLen; i++ {
			n := g.AddNode()
			_, _ = g.AddArc(prev, n, core.Undirected)
			prev = n
		}
	}
	return g, hub
}

func TestIsomorphism_IsomorphicSpidersFindBijection(t *testing.T) {
	g1, _ := buildSpider([]int{1, 2, 3})
	g2, _ := buildSpider([]int{3, 1, 2})

	result, mapping, err := isomorphism.Test(g1, g2)
	require.NoError(t, err)
	require.Equal(t, isomorphism.Isomorphic, result)
	require.Len(t, mapping, g1.NodeCount())

	for it := g1.Arcs(core.All); it.Next(); {
		a := it.Arc()
		u, v := g1.U(a), g1.V(a)
		mu, mv := mapping[u], mapping[v]
		require.Greater(t, g2.ArcCountBetween(mu, mv, core.EdgeFilter), 0,
			"mapped endpoints %v,%v must be adjacent in g2", mu, mv)
	}
}

func TestIsomorphism_DegreeSequenceMismatchIsNotIsomorphic(t *testing.T) {
	// Path of 4 nodes vs a star of 4 nodes: same node/arc counts, same
	// single component, but different degree multisets.
	path := core.NewCustomGraph()
	p := make([]core.Node, 4)
	for i := range p {
		p[i] = path.AddNode()
	}
	for i := 0; i < 3; i++ {
		_, _ = path.AddArc(p[i], p[i+1], core.Undirected)
	}

	star := core.NewCustomGraph()
	center := star.AddNode()
	for i := 0; i < 3; i++ {
		leaf := star.AddNode()
		_, _ = star.AddArc(center, leaf, core.Undirected)
	}

	result, mapping, err := isomorphism.Test(path, star)
	require.NoError(t, err)
	require.Equal(t, isomorphism.NotIsomorphic, result)
	require.Nil(t, mapping)
}

func TestIsomorphism_NodeCountMismatchIsNotIsomorphic(t *testing.T) {
	g1 := core.NewCustomGraph()
	g1.AddNode()
	g1.AddNode()

	g2 := core.NewCustomGraph()
	g2.AddNode()

	result, _, err := isomorphism.Test(g1, g2)
	require.NoError(t, err)
	require.Equal(t, isomorphism.NotIsomorphic, result)
}

func TestIsomorphism_RegularGraphsAreIndeterminate(t *testing.T) {
	// Two triangles: every node has the same degree and the same
	// neighbor-color multiset forever, so refinement can never assign
	// unique colors even though the graphs are in fact isomorphic.
	tri := func() *core.CustomGraph {
		g := core.NewCustomGraph()
		a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
		_, _ = g.AddArc(a, b, core.Undirected)
		_, _ = g.AddArc(b, c, core.Undirected)
		_, _ = g.AddArc(c, a, core.Undirected)
		return g
	}
	g1, g2 := tri(), tri()

	result, mapping, err := isomorphism.Test(g1, g2)
	require.NoError(t, err)
	require.Equal(t, isomorphism.Indeterminate, result)
	require.Nil(t, mapping)
}

func TestIsomorphism_NilGraphErrors(t *testing.T) {
	_, _, err := isomorphism.Test(nil, core.NewCustomGraph())
	require.ErrorIs(t, err, isomorphism.ErrGraphNil)
}
