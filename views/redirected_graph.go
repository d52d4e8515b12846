package views

import "github.com/katalvlaran/graphkit/core"

// RedirectionRole is the per-arc decision a RedirectedGraph's classifier
// function makes: keep the arc's direction, flip it, or present it as an
// undirected edge regardless of its underlying directedness.
type RedirectionRole int

const (
	// RoleForward keeps the arc's underlying U/V order.
	RoleForward RedirectionRole = iota
	// RoleBackward swaps the arc's underlying U/V order.
	RoleBackward
	// RoleEdge presents the arc as an edge, endpoint order preserved.
	RoleEdge
)

// RedirectedGraph reinterprets each arc of base according to a per-arc
// classifier. This generalizes ReverseGraph (which is RedirectedGraph with a
// classifier that always returns RoleBackward) and UndirectedGraph (always
// RoleEdge).
type RedirectedGraph struct {
	base    core.Graph
	classOf func(core.Arc) RedirectionRole
}

// NewRedirectedGraph wraps base, applying classOf to every arc.
func NewRedirectedGraph(base core.Graph, classOf func(core.Arc) RedirectionRole) *RedirectedGraph {
	return &RedirectedGraph{base: base, classOf: classOf}
}

var _ core.Graph = (*RedirectedGraph)(nil)

func (r *RedirectedGraph) U(a core.Arc) core.Node {
	if r.classOf(a) == RoleBackward {
		return r.base.V(a)
	}
	return r.base.U(a)
}

func (r *RedirectedGraph) V(a core.Arc) core.Node {
	if r.classOf(a) == RoleBackward {
		return r.base.U(a)
	}
	return r.base.V(a)
}

func (r *RedirectedGraph) IsEdge(a core.Arc) bool {
	return r.classOf(a) == RoleEdge || r.base.IsEdge(a)
}

func (r *RedirectedGraph) HasNode(n core.Node) bool { return r.base.HasNode(n) }
func (r *RedirectedGraph) HasArc(a core.Arc) bool   { return r.base.HasArc(a) }
func (r *RedirectedGraph) NodeCount() int           { return r.base.NodeCount() }
func (r *RedirectedGraph) Nodes() core.NodeIterator { return r.base.Nodes() }

func (r *RedirectedGraph) Arcs(filter core.ArcFilter) core.ArcIterator {
	if filter != core.EdgeFilter {
		return r.base.Arcs(core.All)
	}
	var out []core.Arc
	it := r.base.Arcs(core.All)
	for it.Next() {
		if a := it.Arc(); r.IsEdge(a) {
			out = append(out, a)
		}
	}
	return core.NewArcSlice(out)
}

func (r *RedirectedGraph) ArcsAt(u core.Node, filter core.ArcFilter) core.ArcIterator {
	var out []core.Arc
	it := r.base.ArcsAt(u, core.All)
	for it.Next() {
		a := it.Arc()
		edge := r.IsEdge(a)
		switch filter {
		case core.EdgeFilter:
			if edge {
				out = append(out, a)
			}
		case core.Forward:
			if edge || r.U(a) == u {
				out = append(out, a)
			}
		case core.Backward:
			if edge || r.V(a) == u {
				out = append(out, a)
			}
		default:
			out = append(out, a)
		}
	}
	return core.NewArcSlice(out)
}

func (r *RedirectedGraph) ArcsBetween(u, v core.Node, filter core.ArcFilter) core.ArcIterator {
	return filterByOther(r, r.ArcsAt(u, filter), u, v)
}

func (r *RedirectedGraph) ArcCount(filter core.ArcFilter) int { return countArcs(r.Arcs(filter)) }
func (r *RedirectedGraph) ArcCountAt(u core.Node, filter core.ArcFilter) int {
	return countArcs(r.ArcsAt(u, filter))
}
func (r *RedirectedGraph) ArcCountBetween(u, v core.Node, filter core.ArcFilter) int {
	return countArcs(r.ArcsBetween(u, v, filter))
}
