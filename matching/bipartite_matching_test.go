package matching_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/matching"
	"github.com/stretchr/testify/require"
)

// redUpTo builds a ColorFunc that treats the first n node ids created on g
// (in creation order starting at 1) as red.
func redUpTo(n int) matching.ColorFunc {
	return func(node core.Node) bool { return node.ID() <= int64(n) }
}

func TestBipartiteMaximumMatching_PerfectMatching(t *testing.T) {
	g := core.NewCustomGraph()
	r1 := g.AddNode()
	r2 := g.AddNode()
	b1 := g.AddNode()
	b2 := g.AddNode()
	_, _ = g.AddArc(r1, b1, core.Directed)
	_, _ = g.AddArc(r1, b2, core.Directed)
	_, _ = g.AddArc(r2, b1, core.Directed)

	m, err := matching.NewBipartiteMaximumMatching(g, redUpTo(2))
	require.NoError(t, err)
	require.Equal(t, 2, m.Size())

	_, ok1 := m.MatchOf(r1)
	_, ok2 := m.MatchOf(r2)
	require.True(t, ok1)
	require.True(t, ok2)
}

func TestBipartiteMaximumMatching_NeedsAlternatingPath(t *testing.T) {
	// r1 only connects to b1, r2 connects to both b1 and b2. If the greedy
	// pass matches r2-b1 first, r1 has no free neighbor left, and only the
	// augmenting path r1->b1->r2->b2 (r2 moves over to b2) reaches size 2.
	g := core.NewCustomGraph()
	r1 := g.AddNode()
	r2 := g.AddNode()
	b1 := g.AddNode()
	b2 := g.AddNode()
	_, _ = g.AddArc(r1, b1, core.Directed)
	_, _ = g.AddArc(r2, b1, core.Directed)
	_, _ = g.AddArc(r2, b2, core.Directed)

	m, err := matching.NewBipartiteMaximumMatching(g, redUpTo(2))
	require.NoError(t, err)
	require.Equal(t, 2, m.Size())
}

func TestBipartiteMaximumMatching_AddRejectsNonBipartiteArc(t *testing.T) {
	g := core.NewCustomGraph()
	r1 := g.AddNode()
	r2 := g.AddNode()
	arc, _ := g.AddArc(r1, r2, core.Directed)

	m, err := matching.NewBipartiteMaximumMatching(g, redUpTo(2))
	require.NoError(t, err)
	require.ErrorIs(t, m.Add(arc), matching.ErrNotBipartiteArc)
}

func TestBipartiteMaximumMatching_NilGraphErrors(t *testing.T) {
	_, err := matching.NewBipartiteMaximumMatching(nil, redUpTo(0))
	require.ErrorIs(t, err, matching.ErrGraphNil)
}
