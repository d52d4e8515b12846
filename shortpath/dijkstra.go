// SPDX-License-Identifier: MIT

package shortpath

import (
	"math"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/structures"
)

// Dijkstra runs single-source shortest paths with a configurable cost
// combination mode over an indexed priority queue, supporting incremental
// stepping and early cancellation via RunUntilFixed.
type Dijkstra struct {
	g      core.Graph
	cost   CostFunc
	cfg    config
	pq     *structures.IndexedPriorityQueue
	dist   map[int64]float64
	parent map[int64]core.Arc
	fixed  map[int64]bool
}

// NewDijkstra builds a Dijkstra run over g using cost, seeded from sources
// (each at the mode's identity cost). Returns ErrSourceNotFound if any
// source is absent from g.
func NewDijkstra(g core.Graph, cost CostFunc, sources []core.Node, opts ...Option) (*Dijkstra, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, s := range sources {
		if !g.HasNode(s) {
			return nil, ErrSourceNotFound
		}
	}

	d := &Dijkstra{
		g:      g,
		cost:   cost,
		cfg:    cfg,
		pq:     structures.NewIndexedPriorityQueue(),
		dist:   make(map[int64]float64),
		parent: make(map[int64]core.Arc),
		fixed:  make(map[int64]bool),
	}
	seed := identity(cfg.mode)
	for _, s := range sources {
		d.dist[s.ID()] = seed
		d.parent[s.ID()] = core.InvalidArc
		d.pq.Push(s.ID(), seed)
	}
	return d, nil
}

// IsReached reports whether n's distance estimate has been set.
func (d *Dijkstra) IsReached(n core.Node) bool {
	_, ok := d.dist[n.ID()]
	return ok
}

// IsFixed reports whether n's distance is final.
func (d *Dijkstra) IsFixed(n core.Node) bool { return d.fixed[n.ID()] }

// Dist returns n's distance estimate (final if Fixed, current best guess if
// only Reached), or +Inf if n has not been reached.
func (d *Dijkstra) Dist(n core.Node) float64 {
	if v, ok := d.dist[n.ID()]; ok {
		return v
	}
	return math.Inf(1)
}

// ParentArc returns the arc on the shortest-path tree leading to n, or
// core.InvalidArc if n is a source or unreached.
func (d *Dijkstra) ParentArc(n core.Node) core.Arc {
	if a, ok := d.parent[n.ID()]; ok {
		return a
	}
	return core.InvalidArc
}

// Step extracts the cheapest reached-but-unfixed node, fixes it, and
// relaxes its outgoing arcs. Returns ok=false once the queue is empty.
// Returns ErrNegativeCost in Sum mode if a negative arc cost is relaxed.
func (d *Dijkstra) Step() (node core.Node, ok bool, err error) {
	if d.pq.Len() == 0 {
		return core.InvalidNode, false, nil
	}
	id, dist := d.pq.Pop()
	n := core.NodeFromID(id)
	d.fixed[id] = true
	d.dist[id] = dist

	it := d.g.ArcsAt(n, d.cfg.filter)
	for it.Next() {
		a := it.Arc()
		c := d.cost(a)
		if math.IsInf(c, 1) {
			continue
		}
		if d.cfg.mode == Sum && c < 0 {
			return n, true, ErrNegativeCost
		}
		next := core.Other(d.g, a, n)
		if d.fixed[next.ID()] {
			continue
		}
		candidate := combine(d.cfg.mode, dist, c)
		cur, reached := d.dist[next.ID()]
		if !reached {
			d.dist[next.ID()] = candidate
			d.parent[next.ID()] = a
			d.pq.Push(next.ID(), candidate)
		} else if candidate < cur {
			d.dist[next.ID()] = candidate
			d.parent[next.ID()] = a
			if d.pq.Contains(next.ID()) {
				d.pq.DecreaseKey(next.ID(), candidate)
			} else {
				d.pq.Push(next.ID(), candidate)
			}
		}
	}
	return n, true, nil
}

// Run drives Step to completion, fixing every reachable node.
func (d *Dijkstra) Run() error {
	for {
		_, ok, err := d.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// RunUntilFixed steps until target is fixed or the queue empties.
func (d *Dijkstra) RunUntilFixed(target core.Node) error {
	return d.RunUntilFixedFunc(func(n core.Node) bool { return n == target })
}

// RunUntilFixedFunc steps until a fixed node satisfies pred, or the queue
// empties.
func (d *Dijkstra) RunUntilFixedFunc(pred func(core.Node) bool) error {
	for {
		n, ok, err := d.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if pred(n) {
			return nil
		}
	}
}
