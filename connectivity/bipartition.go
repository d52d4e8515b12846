// SPDX-License-Identifier: MIT

package connectivity

import (
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/traversal"
)

// Coloring is a 2-coloring of a bipartite graph's nodes, produced by
// Bipartition. Colors are 0 and 1; adjacent nodes always differ.
type Coloring struct {
	color map[int64]int
}

// Color returns n's side, 0 or 1.
func (c *Coloring) Color(n core.Node) int { return c.color[n.ID()] }

// Bipartition 2-colors g by DFS, assigning the opposite color to each node
// from its tree parent. Returns ErrNotBipartite if a back arc connects two
// nodes of the same color, meaning g contains an odd cycle. The default
// traversal filter is core.All.
//
// Complexity: O(N + M).
func Bipartition(g core.Graph, opts ...traversal.Option) (*Coloring, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	color := make(map[int64]int)
	hooks := traversal.Hooks{
		NodeEnter: func(n core.Node, parentArc core.Arc) bool {
			if parentArc == core.InvalidArc {
				color[n.ID()] = 0
			} else {
				parent := core.Other(g, parentArc, n)
				color[n.ID()] = 1 - color[parent.ID()]
			}
			return true
		},
		BackArc: func(n core.Node, a core.Arc) bool {
			target := core.Other(g, a, n)
			return color[target.ID()] != color[n.ID()]
		},
	}

	cfg := append([]traversal.Option{traversal.WithFilter(core.All)}, opts...)
	cfg = append(cfg, traversal.WithHooks(hooks))
	result, err := traversal.Run(g, cfg...)
	if err != nil {
		return nil, err
	}
	if result.Aborted {
		return nil, ErrNotBipartite
	}
	return &Coloring{color: color}, nil
}
