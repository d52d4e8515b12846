// SPDX-License-Identifier: MIT

package mst

import (
	"sort"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/structures"
)

// Forest accumulates a spanning forest under Kruskal's rule: an arc is kept
// iff its endpoints are not already connected by previously kept arcs, and
// (when configured) keeping it would not push either endpoint past its
// degree bound. Arcs can be pinned directly via AddArc before Run sorts and
// considers the rest of the graph's arcs.
type Forest struct {
	g      core.Graph
	cost   CostFunc
	cfg    config
	ds     *structures.DisjointSet
	index  map[int64]int
	degree map[int64]int

	Arcs      []core.Arc
	TotalCost float64
}

// NewKruskal prepares a Forest over g's undirected edges (core.EdgeFilter),
// ready for AddArc pre-pinning and then Run.
func NewKruskal(g core.Graph, cost CostFunc, opts ...Option) (*Forest, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	nodes := core.NodesOf(g.Nodes())
	index := make(map[int64]int, len(nodes))
	for i, n := range nodes {
		index[n.ID()] = i
	}
	return &Forest{
		g:      g,
		cost:   cost,
		cfg:    cfg,
		ds:     structures.NewDisjointSet(len(nodes)),
		index:  index,
		degree: make(map[int64]int),
	}, nil
}

// AddArc pins a into the forest ahead of Run's sorted pass. Returns
// ErrArcWouldCycle if a's endpoints are already connected, or
// ErrDegreeBoundExceeded if a configured degree bound would be violated.
func (f *Forest) AddArc(a core.Arc) error {
	u, v := f.g.U(a), f.g.V(a)
	if f.ds.Same(f.index[u.ID()], f.index[v.ID()]) {
		return ErrArcWouldCycle
	}
	if !f.withinDegreeBound(u) || !f.withinDegreeBound(v) {
		return ErrDegreeBoundExceeded
	}
	f.commit(a, u, v)
	return nil
}

func (f *Forest) withinDegreeBound(n core.Node) bool {
	bound, ok := f.cfg.maxDegree[n.ID()]
	return !ok || f.degree[n.ID()] < bound
}

func (f *Forest) commit(a core.Arc, u, v core.Node) {
	f.ds.Union(f.index[u.ID()], f.index[v.ID()])
	f.degree[u.ID()]++
	f.degree[v.ID()]++
	f.Arcs = append(f.Arcs, a)
	f.TotalCost += f.cost(a)
}

// Run sorts every remaining edge by ascending cost and greedily extends the
// forest, stopping as soon as a single component spans every node (or the
// arc list is exhausted, leaving a genuine forest over a disconnected
// graph). Pinned arcs are naturally skipped when re-encountered, since
// their endpoints are already unioned.
//
// Complexity: O(M log M) for the sort, O(M α(N)) for the union-find pass.
func (f *Forest) Run() {
	arcs := core.ArcsOf(f.g.Arcs(core.EdgeFilter))
	sort.SliceStable(arcs, func(i, j int) bool { return f.cost(arcs[i]) < f.cost(arcs[j]) })

	for _, a := range arcs {
		if f.ds.ClassCount() == 1 {
			return
		}
		u, v := f.g.U(a), f.g.V(a)
		if f.ds.Same(f.index[u.ID()], f.index[v.ID()]) {
			continue
		}
		if !f.withinDegreeBound(u) || !f.withinDegreeBound(v) {
			continue
		}
		f.commit(a, u, v)
	}
}
