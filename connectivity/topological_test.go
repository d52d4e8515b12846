package connectivity_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/connectivity"
	"github.com/katalvlaran/graphkit/core"
	"github.com/stretchr/testify/require"
)

func indexOf(order []core.Node, n core.Node) int {
	for i, o := range order {
		if o == n {
			return i
		}
	}
	return -1
}

func TestTopologicalOrder_RespectsArcDirection(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	g.AddArc(a, b, core.Directed)
	g.AddArc(a, c, core.Directed)
	g.AddArc(b, c, core.Directed)

	order, err := connectivity.TopologicalOrder(g)
	require.NoError(t, err)
	require.Less(t, indexOf(order, a), indexOf(order, b))
	require.Less(t, indexOf(order, b), indexOf(order, c))
}

func TestTopologicalOrder_DetectsCycle(t *testing.T) {
	g := core.NewCustomGraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	g.AddArc(a, b, core.Directed)
	g.AddArc(b, c, core.Directed)
	g.AddArc(c, a, core.Directed)

	_, err := connectivity.TopologicalOrder(g)
	require.ErrorIs(t, err, connectivity.ErrCycleDetected)
}
