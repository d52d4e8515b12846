package views

import "github.com/katalvlaran/graphkit/core"

// UndirectedGraph presents every arc of base as an edge, endpoints
// unchanged. It is RedirectedGraph with a classifier fixed to RoleEdge,
// kept as its own named type because "drop directedness" is common enough
// to deserve a direct constructor.
type UndirectedGraph struct {
	base core.Graph
}

// NewUndirectedGraph wraps base.
func NewUndirectedGraph(base core.Graph) *UndirectedGraph { return &UndirectedGraph{base: base} }

var _ core.Graph = (*UndirectedGraph)(nil)

func (u *UndirectedGraph) U(a core.Arc) core.Node { return u.base.U(a) }
func (u *UndirectedGraph) V(a core.Arc) core.Node { return u.base.V(a) }
func (u *UndirectedGraph) IsEdge(core.Arc) bool    { return true }

func (u *UndirectedGraph) HasNode(n core.Node) bool { return u.base.HasNode(n) }
func (u *UndirectedGraph) HasArc(a core.Arc) bool   { return u.base.HasArc(a) }
func (u *UndirectedGraph) NodeCount() int           { return u.base.NodeCount() }
func (u *UndirectedGraph) Nodes() core.NodeIterator { return u.base.Nodes() }

func (u *UndirectedGraph) Arcs(core.ArcFilter) core.ArcIterator { return u.base.Arcs(core.All) }

func (u *UndirectedGraph) ArcsAt(n core.Node, filter core.ArcFilter) core.ArcIterator {
	return u.base.ArcsAt(n, core.All)
}

func (u *UndirectedGraph) ArcsBetween(a, b core.Node, filter core.ArcFilter) core.ArcIterator {
	return filterByOther(u, u.ArcsAt(a, filter), a, b)
}

func (u *UndirectedGraph) ArcCount(filter core.ArcFilter) int { return countArcs(u.Arcs(filter)) }
func (u *UndirectedGraph) ArcCountAt(n core.Node, filter core.ArcFilter) int {
	return countArcs(u.ArcsAt(n, filter))
}
func (u *UndirectedGraph) ArcCountBetween(a, b core.Node, filter core.ArcFilter) int {
	return countArcs(u.ArcsBetween(a, b, filter))
}
