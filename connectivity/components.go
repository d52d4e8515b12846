// SPDX-License-Identifier: MIT

package connectivity

import (
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/structures"
	"github.com/katalvlaran/graphkit/traversal"
)

// Partition assigns every node of a graph to one of a set of numbered
// classes. Class numbers start at 1; 0 means "never assigned" and is never
// returned for a node the partition was built over.
type Partition struct {
	class map[int64]int
	count int
}

// Class returns n's class number.
func (p *Partition) Class(n core.Node) int { return p.class[n.ID()] }

// Same reports whether u and v are in the same class.
func (p *Partition) Same(u, v core.Node) bool { return p.class[u.ID()] == p.class[v.ID()] }

// Count returns the number of distinct classes.
func (p *Partition) Count() int { return p.count }

// ConnectedComponents partitions g's nodes by weak connectivity: two nodes
// are in the same component iff a path connects them ignoring arc
// direction. The default traversal filter is core.All; pass
// traversal.WithFilter to restrict it.
//
// Complexity: O(N + M).
func ConnectedComponents(g core.Graph, opts ...traversal.Option) (*Partition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	class := make(map[int64]int)
	id := 0
	hooks := traversal.Hooks{
		NodeEnter: func(n core.Node, parentArc core.Arc) bool {
			if parentArc == core.InvalidArc {
				id++
			}
			class[n.ID()] = id
			return true
		},
	}
	cfg := append([]traversal.Option{traversal.WithFilter(core.All)}, opts...)
	cfg = append(cfg, traversal.WithHooks(hooks))
	if _, err := traversal.Run(g, cfg...); err != nil {
		return nil, err
	}
	return &Partition{class: class, count: id}, nil
}

// StrongComponents partitions g's nodes into strongly connected components
// via Tarjan's algorithm: a forward DFS that tracks each node's discovery
// index and lowlink (the minimum index reachable via tree arcs followed by
// at most one arc to a node still on the active-path stack), closing a
// component whenever a node's lowlink equals its own index.
//
// Complexity: O(N + M).
func StrongComponents(g core.Graph, opts ...traversal.Option) (*Partition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	index := make(map[int64]int)
	lowlink := make(map[int64]int)
	onStack := make(map[int64]bool)
	class := make(map[int64]int)
	var stack []core.Node
	counter := 0
	compCount := 0

	hooks := traversal.Hooks{
		NodeEnter: func(n core.Node, parentArc core.Arc) bool {
			index[n.ID()] = counter
			lowlink[n.ID()] = counter
			counter++
			stack = append(stack, n)
			onStack[n.ID()] = true
			return true
		},
		BackArc: func(n core.Node, a core.Arc) bool {
			target := core.Other(g, a, n)
			if onStack[target.ID()] && index[target.ID()] < lowlink[n.ID()] {
				lowlink[n.ID()] = index[target.ID()]
			}
			return true
		},
		NodeExit: func(n core.Node, parentArc core.Arc) bool {
			if parentArc != core.InvalidArc {
				parent := core.Other(g, parentArc, n)
				if lowlink[n.ID()] < lowlink[parent.ID()] {
					lowlink[parent.ID()] = lowlink[n.ID()]
				}
			}
			if lowlink[n.ID()] == index[n.ID()] {
				compCount++
				for {
					top := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[top.ID()] = false
					class[top.ID()] = compCount
					if top == n {
						break
					}
				}
			}
			return true
		},
	}

	cfg := append(append([]traversal.Option{}, opts...), traversal.WithHooks(hooks))
	if _, err := traversal.Run(g, cfg...); err != nil {
		return nil, err
	}
	return &Partition{class: class, count: compCount}, nil
}

// BiEdgeConnectedComponents partitions g's nodes by 2-edge-connectivity: two
// nodes are in the same component iff every edge on some path between them
// also lies on a cycle, i.e. no bridge separates them. It runs a lowpoint
// DFS to find bridges, then unions the endpoints of every non-bridge edge.
// The default traversal filter is core.EdgeFilter.
//
// Complexity: O(N + M).
func BiEdgeConnectedComponents(g core.Graph, opts ...traversal.Option) (*Partition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := append([]traversal.Option{traversal.WithFilter(core.EdgeFilter)}, opts...)
	lp, err := traversal.RunLowpoint(g, cfg...)
	if err != nil {
		return nil, err
	}
	bridge := make(map[int64]bool, len(lp.Bridges))
	for _, a := range lp.Bridges {
		bridge[a.ID()] = true
	}

	nodes := core.NodesOf(g.Nodes())
	index := make(map[int64]int, len(nodes))
	for i, n := range nodes {
		index[n.ID()] = i
	}
	ds := structures.NewDisjointSet(len(nodes))
	for it := g.Arcs(core.EdgeFilter); it.Next(); {
		a := it.Arc()
		if bridge[a.ID()] {
			continue
		}
		ds.Union(index[g.U(a).ID()], index[g.V(a).ID()])
	}

	class := make(map[int64]int, len(nodes))
	label := make(map[int]int)
	next := 0
	for _, n := range nodes {
		root := ds.Find(index[n.ID()])
		id, ok := label[root]
		if !ok {
			next++
			id = next
			label[root] = id
		}
		class[n.ID()] = id
	}
	return &Partition{class: class, count: next}, nil
}
