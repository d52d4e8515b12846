// SPDX-License-Identifier: MIT

package shortpath

import (
	"math"

	"github.com/katalvlaran/graphkit/core"
)

// Heuristic estimates the cost remaining from n to the (implicit) target.
// It must be admissible (never overestimates) and consistent, or A*'s
// result is undefined.
type Heuristic func(n core.Node) float64

// AStar runs Dijkstra over the reduced-cost graph c'(u->v) = c(u->v) +
// h(v) - h(u), recovering true distances by adding h(source) - h(n) back.
type AStar struct {
	inner  *Dijkstra
	h      Heuristic
	source core.Node
}

// NewAStar builds an A* run over g from source, using cost for true arc
// costs and h as the heuristic.
func NewAStar(g core.Graph, cost CostFunc, source core.Node, h Heuristic, opts ...Option) (*AStar, error) {
	reduced := func(a core.Arc) float64 {
		c := cost(a)
		if math.IsInf(c, 1) {
			return c
		}
		return c + h(g.V(a)) - h(g.U(a))
	}
	inner, err := NewDijkstra(g, reduced, []core.Node{source}, opts...)
	if err != nil {
		return nil, err
	}
	return &AStar{inner: inner, h: h, source: source}, nil
}

// Dist returns n's true-cost distance estimate, or +Inf if unreached.
func (a *AStar) Dist(n core.Node) float64 {
	if !a.inner.IsReached(n) {
		return math.Inf(1)
	}
	return a.inner.Dist(n) + a.h(a.source) - a.h(n)
}

// ParentArc returns the arc leading to n on the shortest-path tree.
func (a *AStar) ParentArc(n core.Node) core.Arc { return a.inner.ParentArc(n) }

// IsFixed reports whether n's distance is final.
func (a *AStar) IsFixed(n core.Node) bool { return a.inner.IsFixed(n) }

// Run drives the search to completion.
func (a *AStar) Run() error { return a.inner.Run() }

// RunUntilFixed steps until target is fixed or the search is exhausted.
func (a *AStar) RunUntilFixed(target core.Node) error { return a.inner.RunUntilFixed(target) }
