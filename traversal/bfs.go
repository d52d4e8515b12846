// SPDX-License-Identifier: MIT

package traversal

import "github.com/katalvlaran/graphkit/core"

// RunBFS traverses g breadth-first from cfg.Roots (or every node, in
// enumeration order, if none given). Node levels are the number of arcs on
// the shortest tree path from the node's root, matching Dijkstra with unit
// arc costs. NodeEnter/NodeExit fire back to back for each node (there is
// no "descendants pending" interval in a level-order walk); BackArc fires
// for every non-tree arc reaching an already-visited node.
//
// Complexity: O(N + M).
func RunBFS(g core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	roots := cfg.Roots
	if roots == nil {
		roots = core.NodesOf(g.Nodes())
	} else {
		for _, r := range roots {
			if !g.HasNode(r) {
				return nil, ErrRootNotFound
			}
		}
	}

	if cfg.Hooks.Start != nil {
		cfg.Hooks.Start(cfg.Filter)
	}

	result := &Result{
		Depth:  make(map[int64]int),
		Parent: make(map[int64]core.Arc),
	}
	visited := make(map[int64]bool)
	aborted := false

rootLoop:
	for _, root := range roots {
		if visited[root.ID()] {
			continue
		}
		visited[root.ID()] = true
		result.Depth[root.ID()] = 0
		if cfg.Hooks.NodeEnter != nil && !cfg.Hooks.NodeEnter(root, core.InvalidArc) {
			aborted = true
			break rootLoop
		}
		if cfg.Hooks.NodeExit != nil && !cfg.Hooks.NodeExit(root, core.InvalidArc) {
			aborted = true
			break rootLoop
		}
		result.Order = append(result.Order, root)

		queue := []core.Node{root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			it := g.ArcsAt(n, cfg.Filter)
			for it.Next() {
				a := it.Arc()
				next := core.Other(g, a, n)
				if visited[next.ID()] {
					if a == result.Parent[n.ID()] {
						continue
					}
					if cfg.Hooks.BackArc != nil && !cfg.Hooks.BackArc(n, a) {
						aborted = true
						break rootLoop
					}
					continue
				}
				visited[next.ID()] = true
				result.Depth[next.ID()] = result.Depth[n.ID()] + 1
				result.Parent[next.ID()] = a
				if cfg.Hooks.NodeEnter != nil && !cfg.Hooks.NodeEnter(next, a) {
					aborted = true
					break rootLoop
				}
				if cfg.Hooks.NodeExit != nil && !cfg.Hooks.NodeExit(next, a) {
					aborted = true
					break rootLoop
				}
				result.Order = append(result.Order, next)
				queue = append(queue, next)
			}
		}
	}

	if cfg.Hooks.StopSearch != nil {
		cfg.Hooks.StopSearch()
	}
	result.Aborted = aborted
	return result, nil
}
