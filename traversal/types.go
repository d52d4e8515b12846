// SPDX-License-Identifier: MIT

// Package traversal provides a configurable depth-first search with hook
// points (Start, NodeEnter, NodeExit, BackArc, StopSearch), a breadth-first
// search recording per-node levels, and a lowpoint DFS specialization used
// by the connectivity package to find bridges and cutvertices.
//
// The DFS walks an explicit stack of (node, parent arc, arc cursor) frames
// rather than recursing natively, so traversal depth is bounded only by
// available memory, not by the Go call stack.
package traversal

import (
	"errors"

	"github.com/katalvlaran/graphkit/core"
)

// ErrGraphNil is returned when a nil core.Graph is passed to Run.
var ErrGraphNil = errors.New("traversal: graph is nil")

// ErrRootNotFound is returned when an explicitly supplied root is absent
// from the graph.
var ErrRootNotFound = errors.New("traversal: root node not found in graph")

// Hooks are the five traversal callbacks. A nil hook is treated as an
// always-continue no-op. NodeEnter, NodeExit and BackArc returning false
// aborts the whole run; StopSearch always runs once, even after an abort.
type Hooks struct {
	// Start is called once, before the first node is visited.
	Start func(filter core.ArcFilter)

	// NodeEnter is called when n is first discovered; parentArc is
	// core.InvalidArc at roots. Returning false aborts the run.
	NodeEnter func(n core.Node, parentArc core.Arc) bool

	// NodeExit is called after every descendant of n has been fully
	// explored, before n is popped. Returning false aborts the run.
	NodeExit func(n core.Node, parentArc core.Arc) bool

	// BackArc is called when an outgoing arc from n reaches an
	// already-visited node. Returning false aborts the run.
	BackArc func(n core.Node, a core.Arc) bool

	// StopSearch is called once, after the run completes (whether it ran
	// to completion or was aborted by a hook).
	StopSearch func()
}

// Option configures a Config.
type Option func(*Config)

// Config holds the traversal parameters set by Options.
type Config struct {
	Filter core.ArcFilter
	Roots  []core.Node // nil means "every node, in the graph's own enumeration order"
	Hooks  Hooks
}

// defaultConfig returns a Config that visits every node via Forward arcs
// and installs no hooks.
func defaultConfig() Config {
	return Config{Filter: core.Forward}
}

// WithFilter selects which arcs the traversal follows out of each node.
// core.EdgeFilter or core.All give undirected-style traversal; core.Forward
// (the default) follows arcs in their own direction; core.Backward follows
// them in reverse.
func WithFilter(filter core.ArcFilter) Option {
	return func(c *Config) { c.Filter = filter }
}

// WithRoots restricts traversal to start from the given nodes, in the given
// order, instead of every node in the graph's enumeration order.
func WithRoots(roots ...core.Node) Option {
	return func(c *Config) { c.Roots = roots }
}

// WithHooks installs h, replacing any previously configured hooks.
func WithHooks(h Hooks) Option {
	return func(c *Config) { c.Hooks = h }
}
