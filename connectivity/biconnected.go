// SPDX-License-Identifier: MIT

package connectivity

import (
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/traversal"
)

// BiconnectedResult holds the outcome of BiNodeConnectedComponents: the
// graph's edges partitioned into biconnected components (each a maximal set
// of edges pairwise lying on a common cycle), and the set of cutvertices
// whose removal would disconnect the graph.
type BiconnectedResult struct {
	Components  [][]core.Arc
	Cutvertices []core.Node
}

// BiNodeConnectedComponents runs a lowpoint-style DFS that additionally
// keeps an explicit stack of arcs traversed since the current node's
// subtree was entered. A DFS child c closes a biconnected component at its
// parent p whenever Lowpoint[c] >= Level[p]: every arc pushed since the
// p->c tree arc (inclusive) forms one component, and p is a cutvertex
// unless it is the traversal root. A root is instead a cutvertex iff it has
// more than one DFS child. The default traversal filter is
// core.EdgeFilter.
//
// Complexity: O(N + M).
func BiNodeConnectedComponents(g core.Graph, opts ...traversal.Option) (*BiconnectedResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	level := make(map[int64]int)
	lowpoint := make(map[int64]int)
	children := make(map[int64]int)
	cutSet := make(map[int64]bool)
	var arcStack []core.Arc
	var components [][]core.Arc

	popComponent := func(through core.Arc) {
		var comp []core.Arc
		for {
			top := arcStack[len(arcStack)-1]
			arcStack = arcStack[:len(arcStack)-1]
			comp = append(comp, top)
			if top == through {
				break
			}
		}
		components = append(components, comp)
	}

	hooks := traversal.Hooks{
		NodeEnter: func(n core.Node, parentArc core.Arc) bool {
			if parentArc == core.InvalidArc {
				level[n.ID()] = 0
			} else {
				parent := core.Other(g, parentArc, n)
				level[n.ID()] = level[parent.ID()] + 1
				children[parent.ID()]++
				arcStack = append(arcStack, parentArc)
			}
			lowpoint[n.ID()] = level[n.ID()]
			return true
		},
		BackArc: func(n core.Node, a core.Arc) bool {
			target := core.Other(g, a, n)
			if level[target.ID()] < level[n.ID()] {
				arcStack = append(arcStack, a)
				if level[target.ID()] < lowpoint[n.ID()] {
					lowpoint[n.ID()] = level[target.ID()]
				}
			}
			return true
		},
		NodeExit: func(n core.Node, parentArc core.Arc) bool {
			if parentArc == core.InvalidArc {
				if children[n.ID()] > 1 {
					cutSet[n.ID()] = true
				}
				return true
			}
			parent := core.Other(g, parentArc, n)
			if lowpoint[n.ID()] < lowpoint[parent.ID()] {
				lowpoint[parent.ID()] = lowpoint[n.ID()]
			}
			if lowpoint[n.ID()] >= level[parent.ID()] {
				if level[parent.ID()] != 0 {
					cutSet[parent.ID()] = true
				}
				popComponent(parentArc)
			}
			return true
		},
	}

	cfg := append([]traversal.Option{traversal.WithFilter(core.EdgeFilter)}, opts...)
	cfg = append(cfg, traversal.WithHooks(hooks))
	if _, err := traversal.Run(g, cfg...); err != nil {
		return nil, err
	}

	cutvertices := make([]core.Node, 0, len(cutSet))
	for id := range cutSet {
		cutvertices = append(cutvertices, core.NodeFromID(id))
	}
	return &BiconnectedResult{Components: components, Cutvertices: cutvertices}, nil
}
