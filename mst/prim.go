// SPDX-License-Identifier: MIT

package mst

import (
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/structures"
)

// PrimResult is the spanning forest Prim built: the chosen arcs and their
// summed cost.
type PrimResult struct {
	Arcs      []core.Arc
	TotalCost float64
}

// Prim grows a minimum spanning forest with an indexed-priority-queue
// frontier. It visits the graph's nodes in their own enumeration order,
// starting a fresh tree at every node not yet reached by an earlier one —
// so a disconnected graph still yields one tree per connected component
// rather than stopping at the first.
//
// Complexity: O(M log N).
func Prim(g core.Graph, cost CostFunc) (*PrimResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	visited := make(map[int64]bool)
	parentArc := make(map[int64]core.Arc)
	pq := structures.NewIndexedPriorityQueue()
	result := &PrimResult{}

	relax := func(n core.Node) {
		for it := g.ArcsAt(n, core.EdgeFilter); it.Next(); {
			a := it.Arc()
			other := core.Other(g, a, n)
			if visited[other.ID()] {
				continue
			}
			c := cost(a)
			if cur, reached := pq.Priority(other.ID()); reached {
				if c < cur {
					pq.DecreaseKey(other.ID(), c)
					parentArc[other.ID()] = a
				}
			} else {
				pq.Push(other.ID(), c)
				parentArc[other.ID()] = a
			}
		}
	}

	for _, root := range core.NodesOf(g.Nodes()) {
		if visited[root.ID()] {
			continue
		}
		visited[root.ID()] = true
		relax(root)

		for pq.Len() > 0 {
			id, _ := pq.Pop()
			n := core.NodeFromID(id)
			visited[id] = true
			if a, ok := parentArc[id]; ok {
				result.Arcs = append(result.Arcs, a)
				result.TotalCost += cost(a)
			}
			relax(n)
		}
	}
	return result, nil
}
