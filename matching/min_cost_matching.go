// SPDX-License-Identifier: MIT

package matching

import (
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/simplex"
	"github.com/katalvlaran/graphkit/views"
)

// BipartiteMinimumCostMatching finds a minimum-cost matching of size in
// [minSize, maxSize] by reducing to a min-cost circulation: an artificial
// source feeds every red node, every blue node drains to an artificial
// target, the original red-blue arcs carry their given cost, and a
// target-to-source reflow arc bounded by [minSize, maxSize] closes the
// circuit. The reduction is solved with simplex.NetworkSimplex; the
// matching is read back as the original arcs left at flow 1.
func BipartiteMinimumCostMatching(g core.Graph, isRed ColorFunc, cost simplex.CostFunc, minSize, maxSize int) ([]core.Arc, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	sg := views.NewSupergraph(g)
	source := sg.AddNode()
	target := sg.AddNode()

	for it := g.Nodes(); it.Next(); {
		n := it.Node()
		var err error
		if isRed(n) {
			_, err = sg.AddArc(source, n, core.Directed)
		} else {
			_, err = sg.AddArc(n, target, core.Directed)
		}
		if err != nil {
			return nil, err
		}
	}
	reflow, err := sg.AddArc(target, source, core.Directed)
	if err != nil {
		return nil, err
	}

	bounds := func(a core.Arc) (float64, float64) {
		if a == reflow {
			return float64(minSize), float64(maxSize)
		}
		return 0, 1 // source->red, blue->target, and original red-blue arcs: one unit each
	}
	simplexCost := func(a core.Arc) float64 {
		if g.HasArc(a) {
			return cost(a)
		}
		return 0
	}
	supply := func(core.Node) float64 { return 0 } // pure circulation: the reflow arc closes the loop

	ns, err := simplex.NewNetworkSimplex(sg, simplexCost, bounds, supply)
	if err != nil {
		return nil, err
	}
	if ns.Status() != simplex.Optimal {
		return nil, ErrNoFeasibleMatching
	}

	var matched []core.Arc
	for it := g.Arcs(core.All); it.Next(); {
		a := it.Arc()
		if ns.Flow(a) > 0.5 {
			matched = append(matched, a)
		}
	}
	return matched, nil
}
