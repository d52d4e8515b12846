// SPDX-License-Identifier: MIT

// Package mst computes minimum-cost spanning forests: Kruskal's algorithm
// (sort arcs, union-find, optional per-node degree bounds, with support for
// pre-pinning arcs before the sort-driven pass runs) and Prim's algorithm
// (an indexed-priority-queue frontier, seeded from every connected
// component so disconnected graphs still yield a full forest).
package mst

import (
	"errors"

	"github.com/katalvlaran/graphkit/core"
)

// ErrGraphNil is returned when a nil core.Graph is passed to Kruskal or Prim.
var ErrGraphNil = errors.New("mst: graph is nil")

// ErrArcWouldCycle is returned by Forest.AddArc when the arc's endpoints
// are already in the same spanning-forest component.
var ErrArcWouldCycle = errors.New("mst: arc would close a cycle")

// ErrDegreeBoundExceeded is returned by Forest.AddArc when adding the arc
// would push one of its endpoints past its configured maximum degree.
var ErrDegreeBoundExceeded = errors.New("mst: arc exceeds a node's degree bound")

// CostFunc assigns a real-valued cost to an arc.
type CostFunc func(a core.Arc) float64

// Option configures a config.
type Option func(*config)

type config struct {
	maxDegree map[int64]int // node id -> bound; absent key means unbounded
}

func defaultConfig() config {
	return config{maxDegree: make(map[int64]int)}
}

// WithMaxDegree bounds how many forest arcs may touch n. Unbounded unless
// set.
func WithMaxDegree(n core.Node, max int) Option {
	return func(c *config) { c.maxDegree[n.ID()] = max }
}
