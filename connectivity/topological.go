// SPDX-License-Identifier: MIT

package connectivity

import (
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/traversal"
)

// TopologicalOrder returns g's nodes ordered so that every directed arc
// u->v has u before v, derived as the reverse of a DFS post-order. Returns
// ErrCycleDetected if a back arc closes a cycle on the current DFS path
// (a cross or forward arc to an already-finished node is not an error: it
// is normal in a DAG and does not affect the ordering). The default
// traversal filter is core.Forward.
//
// Complexity: O(N + M).
func TopologicalOrder(g core.Graph, opts ...traversal.Option) ([]core.Node, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	onStack := make(map[int64]bool)
	hooks := traversal.Hooks{
		NodeEnter: func(n core.Node, parentArc core.Arc) bool {
			onStack[n.ID()] = true
			return true
		},
		NodeExit: func(n core.Node, parentArc core.Arc) bool {
			onStack[n.ID()] = false
			return true
		},
		BackArc: func(n core.Node, a core.Arc) bool {
			target := core.Other(g, a, n)
			return !onStack[target.ID()]
		},
	}

	cfg := append(append([]traversal.Option{}, opts...), traversal.WithHooks(hooks))
	result, err := traversal.Run(g, cfg...)
	if err != nil {
		return nil, err
	}
	if result.Aborted {
		return nil, ErrCycleDetected
	}

	order := result.Order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}
