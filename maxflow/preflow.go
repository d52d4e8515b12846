// SPDX-License-Identifier: MIT

package maxflow

import (
	"math"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/shortpath"
	"github.com/katalvlaran/graphkit/views"
)

// PreflowResult is the outcome of Preflow: the real-valued flow value
// recovered from a scaled IntegerPreflow run, and an upper bound on how far
// it can be from the true maximum flow due to fixed-point rounding.
type PreflowResult struct {
	FlowSize   float64
	ErrorBound float64
}

// Preflow computes max flow over real-valued capacities by bounding the
// flow value U (via a Dijkstra-Max bottleneck on negated capacities times
// the arc count, the sum of the source's outgoing capacities, and the sum
// of the sink's incoming capacities, taking the smallest), scaling capacities by the
// largest power of two that keeps the source's total scaled capacity
// within int64, capping total injected flow with an artificial
// superSource->source arc of capacity ceil(U), and running IntegerPreflow
// on the result.
func Preflow(g core.Graph, source, sink core.Node, capacity RealCapacityFunc) (*PreflowResult, error) {
	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasNode(sink) {
		return nil, ErrSinkNotFound
	}

	u1, err := bottleneckBound(g, source, sink, capacity)
	if err != nil {
		return nil, err
	}
	u2 := sumCapacity(g.ArcsAt(source, core.Forward), capacity)
	u3 := sumCapacity(g.ArcsAt(sink, core.Backward), capacity)
	u := math.Min(u1, math.Min(u2, u3))
	if u <= 0 {
		return &PreflowResult{}, nil
	}

	multiplier := 1.0
	maxMultiplier := math.Floor(math.Pow(2, 63) / u)
	for multiplier*2 <= maxMultiplier {
		multiplier *= 2
	}

	sg := views.NewSupergraph(g)
	superSource := sg.AddNode()
	artificial, err := sg.AddArc(superSource, source, core.Directed)
	if err != nil {
		return nil, err
	}
	artificialCap := int64(math.Ceil(u) * multiplier)

	ip, err := NewIntegerPreflow(sg, superSource, sink, func(a core.Arc) int64 {
		if a == artificial {
			return artificialCap
		}
		return int64(math.Round(capacity(a) * multiplier))
	})
	if err != nil {
		return nil, err
	}

	return &PreflowResult{
		FlowSize:   float64(ip.FlowSize) / multiplier,
		ErrorBound: float64(g.ArcCount(core.All)) / multiplier,
	}, nil
}

// bottleneckBound runs Dijkstra in Maximum mode over negated capacities,
// which minimizes -min(capacity along path) and so recovers the widest
// (max-bottleneck) path's bottleneck as -Dist(sink). A flow decomposes into
// at most ArcCount paths, each carrying no more than that bottleneck, so the
// bound returned is the bottleneck times the arc count. An unreachable sink
// contributes no bound (+Inf), leaving u2/u3 to constrain U.
func bottleneckBound(g core.Graph, source, sink core.Node, capacity RealCapacityFunc) (float64, error) {
	negated := func(a core.Arc) float64 { return -capacity(a) }
	d, err := shortpath.NewDijkstra(g, negated, []core.Node{source}, shortpath.WithMode(shortpath.Maximum))
	if err != nil {
		return 0, err
	}
	if err := d.RunUntilFixed(sink); err != nil {
		return 0, err
	}
	dist := d.Dist(sink)
	if math.IsInf(dist, 1) {
		return math.Inf(1), nil
	}
	return -dist * float64(g.ArcCount(core.All)), nil
}

func sumCapacity(it core.ArcIterator, capacity RealCapacityFunc) float64 {
	var sum float64
	for it.Next() {
		sum += capacity(it.Arc())
	}
	return sum
}
