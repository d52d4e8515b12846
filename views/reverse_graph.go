package views

import "github.com/katalvlaran/graphkit/core"

// ReverseGraph presents every arc of base with its endpoints swapped: what
// was U becomes V and vice versa. Edges are swapped too (a no-op in
// substance, since edge endpoint order is immaterial), so ReverseGraph is
// its own inverse.
type ReverseGraph struct {
	base core.Graph
}

// NewReverseGraph wraps base.
func NewReverseGraph(base core.Graph) *ReverseGraph { return &ReverseGraph{base: base} }

var _ core.Graph = (*ReverseGraph)(nil)

func (r *ReverseGraph) U(a core.Arc) core.Node { return r.base.V(a) }
func (r *ReverseGraph) V(a core.Arc) core.Node { return r.base.U(a) }
func (r *ReverseGraph) IsEdge(a core.Arc) bool { return r.base.IsEdge(a) }

func (r *ReverseGraph) HasNode(n core.Node) bool { return r.base.HasNode(n) }
func (r *ReverseGraph) HasArc(a core.Arc) bool   { return r.base.HasArc(a) }
func (r *ReverseGraph) NodeCount() int           { return r.base.NodeCount() }
func (r *ReverseGraph) Nodes() core.NodeIterator { return r.base.Nodes() }

func (r *ReverseGraph) Arcs(filter core.ArcFilter) core.ArcIterator {
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

func (r *ReverseGraph) ArcsAt(u core.Node, filter core.ArcFilter) core.ArcIterator {
	var out []core.Arc
	it := r.base.ArcsAt(u, core.All)
	for it.Next() {
		a := it.Arc()
		switch filter {
		case core.EdgeFilter:
			if r.IsEdge(a) {
				out = append(out, a)
			}
		case core.Forward:
			if r.IsEdge(a) || r.U(a) == u {
				out = append(out, a)
			}
		case core.Backward:
			if r.IsEdge(a) || r.V(a) == u {
				out = append(out, a)
			}
		default:
			out = append(out, a)
		}
	}
	return core.NewArcSlice(out)
}

func (r *ReverseGraph) ArcsBetween(u, v core.Node, filter core.ArcFilter) core.ArcIterator {
	return filterByOther(r, r.ArcsAt(u, filter), u, v)
}

func (r *ReverseGraph) ArcCount(filter core.ArcFilter) int { return countArcs(r.Arcs(filter)) }
func (r *ReverseGraph) ArcCountAt(u core.Node, filter core.ArcFilter) int {
	return countArcs(r.ArcsAt(u, filter))
}
func (r *ReverseGraph) ArcCountBetween(u, v core.Node, filter core.ArcFilter) int {
	return countArcs(r.ArcsBetween(u, v, filter))
}
