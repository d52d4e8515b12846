// SPDX-License-Identifier: MIT

package shortpath

import (
	"math"

	"github.com/katalvlaran/graphkit/core"
)

// BellmanFord runs single-source shortest paths by relaxing every arc up to
// NodeCount times, tolerating negative arc costs and detecting negative
// cycles. An undirected edge counts as a 2-cycle: a negative-cost edge
// incident to a reached node is itself a negative cycle.
type BellmanFord struct {
	g      core.Graph
	cost   CostFunc
	filter core.ArcFilter
	dist   map[int64]float64
	parent map[int64]core.Arc
	cycle  []core.Arc // non-nil once a negative cycle has been observed
}

// NewBellmanFord runs Bellman-Ford over g from sources, using cost and
// arcs selected by filter (defaults to core.Forward). Returns
// ErrSourceNotFound if any source is absent from g.
func NewBellmanFord(g core.Graph, cost CostFunc, sources []core.Node, opts ...Option) (*BellmanFord, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, s := range sources {
		if !g.HasNode(s) {
			return nil, ErrSourceNotFound
		}
	}

	b := &BellmanFord{
		g:      g,
		cost:   cost,
		filter: cfg.filter,
		dist:   make(map[int64]float64),
		parent: make(map[int64]core.Arc),
	}
	for _, s := range sources {
		b.dist[s.ID()] = 0
		b.parent[s.ID()] = core.InvalidArc
	}
	b.run()
	return b, nil
}

func (b *BellmanFord) run() {
	n := core.NodesOf(b.g.Nodes())
	arcs := core.ArcsOf(b.g.Arcs(b.filter))

	var lastRelaxed core.Arc
	for i := 0; i < len(n); i++ {
		relaxedAny := false
		for _, a := range arcs {
			u := b.g.U(a)
			v := b.g.V(a)
			c := b.cost(a)
			if math.IsInf(c, 1) {
				continue
			}
			if b.relaxDirected(u, v, a, c) {
				relaxedAny = true
				lastRelaxed = a
			}
			if b.g.IsEdge(a) {
				if b.relaxDirected(v, u, a, c) {
					relaxedAny = true
					lastRelaxed = a
				}
			}
		}
		if !relaxedAny {
			return
		}
		if i == len(n)-1 {
			// A relaxation still improved on the Nth pass: a negative cycle
			// is reachable. Reconstruct it by walking N parent-arc steps
			// back from the last relaxed arc's target, which is guaranteed
			// to lie on or past the cycle, then extracting the cycle.
			b.cycle = b.extractCycle(lastRelaxed, len(n))
		}
	}
}

func (b *BellmanFord) relaxDirected(u, v core.Node, a core.Arc, c float64) bool {
	du, ok := b.dist[u.ID()]
	if !ok {
		return false
	}
	candidate := du + c
	if cur, reached := b.dist[v.ID()]; !reached || candidate < cur {
		b.dist[v.ID()] = candidate
		b.parent[v.ID()] = a
		return true
	}
	return false
}

// extractCycle walks back N parent-arc steps from the target of the last
// relaxed arc to land inside the negative cycle, then follows parent arcs
// until a repeated node closes the loop.
func (b *BellmanFord) extractCycle(last core.Arc, n int) []core.Arc {
	cur := b.g.V(last)
	for i := 0; i < n; i++ {
		a, ok := b.parent[cur.ID()]
		if !ok || a == core.InvalidArc {
			break
		}
		cur = core.Other(b.g, a, cur)
	}

	start := cur
	var cycle []core.Arc
	for {
		a, ok := b.parent[cur.ID()]
		if !ok || a == core.InvalidArc {
			break
		}
		cycle = append([]core.Arc{a}, cycle...)
		cur = core.Other(b.g, a, cur)
		if cur == start {
			break
		}
	}
	return cycle
}

// HasNegativeCycle reports whether a negative cycle was observed.
func (b *BellmanFord) HasNegativeCycle() bool { return b.cycle != nil }

// NegativeCycle returns the arcs of the observed negative cycle, or nil if
// none was found.
func (b *BellmanFord) NegativeCycle() []core.Arc { return b.cycle }

// Dist returns n's distance, or an error if a negative cycle has been
// observed (distances are no longer meaningful).
func (b *BellmanFord) Dist(n core.Node) (float64, error) {
	if b.cycle != nil {
		return 0, ErrNegativeCycle
	}
	if v, ok := b.dist[n.ID()]; ok {
		return v, nil
	}
	return math.Inf(1), nil
}

// ParentArc returns the arc leading to n on the shortest-path tree, or an
// error if a negative cycle has been observed.
func (b *BellmanFord) ParentArc(n core.Node) (core.Arc, error) {
	if b.cycle != nil {
		return core.InvalidArc, ErrNegativeCycle
	}
	if a, ok := b.parent[n.ID()]; ok {
		return a, nil
	}
	return core.InvalidArc, nil
}
