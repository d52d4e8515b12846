// SPDX-License-Identifier: MIT

// Package shortpath implements single-source shortest paths: Dijkstra (Sum
// and Maximum cost combination), Bellman-Ford with negative-cycle
// detection, A* via reduced costs, and a BFS wrapper for unit-cost graphs.
//
// All three label-correcting/label-setting algorithms share the same
// Reached/Fixed vocabulary: a node is Reached once its distance estimate is
// first set, Fixed once that estimate is known final. Fixed implies
// Reached. Unreached nodes report +Inf / core.InvalidArc.
package shortpath

import (
	"errors"
	"math"

	"github.com/katalvlaran/graphkit/core"
)

// ErrNegativeCost is returned by Dijkstra in Sum mode when an arc with a
// negative cost is relaxed; Sum mode requires nonnegative costs.
var ErrNegativeCost = errors.New("shortpath: dijkstra sum mode requires nonnegative arc costs")

// ErrNegativeCycle is returned by distance/parent/path queries on a
// Bellman-Ford run once a negative cycle has been observed.
var ErrNegativeCycle = errors.New("shortpath: negative cycle detected")

// ErrSourceNotFound is returned when an explicit source node is absent from
// the graph.
var ErrSourceNotFound = errors.New("shortpath: source node not found in graph")

// CostMode selects how Dijkstra combines arc costs along a path.
type CostMode int

const (
	// Sum combines costs by addition; requires nonnegative arc costs.
	Sum CostMode = iota
	// Maximum combines costs by taking the maximum arc cost on the path;
	// allows negative arc costs.
	Maximum
)

// CostFunc returns the cost of traversing arc a. math.Inf(1) marks a an
// impassable arc.
type CostFunc func(a core.Arc) float64

// Option configures a Dijkstra or Bellman-Ford run.
type Option func(*config)

type config struct {
	filter core.ArcFilter
	mode   CostMode
}

func defaultConfig() config {
	return config{filter: core.Forward, mode: Sum}
}

// WithFilter selects which arcs relaxation follows out of each node.
// Defaults to core.Forward.
func WithFilter(filter core.ArcFilter) Option {
	return func(c *config) { c.filter = filter }
}

// WithMode selects Dijkstra's cost-combination mode. Defaults to Sum.
func WithMode(mode CostMode) Option {
	return func(c *config) { c.mode = mode }
}

// identity returns the combination identity for mode: 0 for Sum, -Inf for
// Maximum (so the first relax out of a source yields exactly the arc cost).
func identity(mode CostMode) float64 {
	if mode == Maximum {
		return math.Inf(-1)
	}
	return 0
}

// combine folds an existing path cost with one more arc's cost, per mode.
func combine(mode CostMode, pathCost, arcCost float64) float64 {
	if mode == Maximum {
		return math.Max(pathCost, arcCost)
	}
	return pathCost + arcCost
}
