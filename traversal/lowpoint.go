// SPDX-License-Identifier: MIT

package traversal

import "github.com/katalvlaran/graphkit/core"

// LowpointResult extends a plain DFS with the bookkeeping connectivity
// decompositions need: each node's entry Level, its Lowpoint (the minimum
// level reachable from its DFS subtree via at most one back arc), the
// number of DFS tree Children it has, and the set of tree arcs that are
// Bridges.
type LowpointResult struct {
	*Result

	Level     map[int64]int
	Lowpoint  map[int64]int
	Children  map[int64]int
	Bridges   []core.Arc
}

// RunLowpoint runs a lowpoint DFS over g. The arc from a node n to its
// parent is a bridge iff Lowpoint[n] == Level[n]; a non-root node p is a
// cutvertex iff some DFS child c has Lowpoint[c] >= Level[p], and the root
// is a cutvertex iff it has more than one DFS child — both checks are left
// to the connectivity package, which already has Level/Lowpoint/Children
// and the tree-parent relation via Result.Parent.
//
// Complexity: O(N + M).
func RunLowpoint(g core.Graph, opts ...Option) (*LowpointResult, error) {
	level := make(map[int64]int)
	lowpoint := make(map[int64]int)
	children := make(map[int64]int)
	var bridges []core.Arc

	hooks := Hooks{
		NodeEnter: func(n core.Node, parentArc core.Arc) bool {
			if parentArc == core.InvalidArc {
				level[n.ID()] = 0
			} else {
				parent := core.Other(g, parentArc, n)
				level[n.ID()] = level[parent.ID()] + 1
				children[parent.ID()]++
			}
			lowpoint[n.ID()] = level[n.ID()]
			return true
		},
		BackArc: func(n core.Node, a core.Arc) bool {
			target := core.Other(g, a, n)
			if level[target.ID()] < lowpoint[n.ID()] {
				lowpoint[n.ID()] = level[target.ID()]
			}
			return true
		},
		NodeExit: func(n core.Node, parentArc core.Arc) bool {
			if parentArc == core.InvalidArc {
				return true
			}
			parent := core.Other(g, parentArc, n)
			if lowpoint[n.ID()] < lowpoint[parent.ID()] {
				lowpoint[parent.ID()] = lowpoint[n.ID()]
			}
			if lowpoint[n.ID()] == level[n.ID()] {
				bridges = append(bridges, parentArc)
			}
			return true
		},
	}

	cfg := append(append([]Option{}, opts...), WithHooks(hooks))
	result, err := Run(g, cfg...)
	if err != nil {
		return nil, err
	}

	return &LowpointResult{
		Result:   result,
		Level:    level,
		Lowpoint: lowpoint,
		Children: children,
		Bridges:  bridges,
	}, nil
}
