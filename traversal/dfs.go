// SPDX-License-Identifier: MIT

package traversal

import "github.com/katalvlaran/graphkit/core"

// Result captures the outcome of a Run: finish order (post-order),
// discovery depth and parent arc per visited node, and whether a hook
// aborted the traversal before it covered every reachable node.
type Result struct {
	// Order records nodes in the order they finished (post-order).
	Order []core.Node

	// Depth maps a visited node to its distance, in arcs, from its root.
	Depth map[int64]int

	// Parent maps a visited node to the arc it was first discovered
	// through. Roots are absent from this map.
	Parent map[int64]core.Arc

	// Aborted is true iff a hook returned false and stopped the run early.
	Aborted bool
}

type dfsFrame struct {
	node      core.Node
	parentArc core.Arc
	level     int
	it        core.ArcIterator
}

// Run traverses g starting from cfg.Roots (or every node, in the graph's
// own enumeration order, if no roots are given), skipping any root already
// reached from an earlier one. Returns ErrGraphNil for a nil graph and
// ErrRootNotFound if an explicit root is absent from g.
//
// Complexity: O(N + M) where N, M are the node and arc counts reachable
// from the roots, plus the cost of any hooks.
func Run(g core.Graph, opts ...Option) (*Result, error) {
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

	for _, root := range roots {
		if visited[root.ID()] {
			continue
		}
		if !runTree(g, root, cfg, visited, result) {
			result.Aborted = true
			break
		}
	}

	if cfg.Hooks.StopSearch != nil {
		cfg.Hooks.StopSearch()
	}
	return result, nil
}

// runTree walks one DFS tree rooted at root using an explicit stack of
// frames, so recursion depth never grows with the graph's diameter.
func runTree(g core.Graph, root core.Node, cfg Config, visited map[int64]bool, result *Result) bool {
	visited[root.ID()] = true
	result.Depth[root.ID()] = 0
	if cfg.Hooks.NodeEnter != nil && !cfg.Hooks.NodeEnter(root, core.InvalidArc) {
		return false
	}

	stack := []*dfsFrame{{node: root, parentArc: core.InvalidArc, level: 0, it: g.ArcsAt(root, cfg.Filter)}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.it.Next() {
			a := top.it.Arc()
			next := core.Other(g, a, top.node)
			if !visited[next.ID()] {
				visited[next.ID()] = true
				result.Depth[next.ID()] = top.level + 1
				result.Parent[next.ID()] = a
				if cfg.Hooks.NodeEnter != nil && !cfg.Hooks.NodeEnter(next, a) {
					return false
				}
				stack = append(stack, &dfsFrame{node: next, parentArc: a, level: top.level + 1, it: g.ArcsAt(next, cfg.Filter)})
				continue
			}
			if a == top.parentArc {
				continue // the arc we descended through, re-seen from the child side
			}
			if cfg.Hooks.BackArc != nil && !cfg.Hooks.BackArc(top.node, a) {
				return false
			}
			continue
		}
		if cfg.Hooks.NodeExit != nil && !cfg.Hooks.NodeExit(top.node, top.parentArc) {
			return false
		}
		result.Order = append(result.Order, top.node)
		stack = stack[:len(stack)-1]
	}
	return true
}
