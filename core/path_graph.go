package core

// PathGraph is an implicit concrete graph on n nodes (ids 1..n) connected in
// a line: arc k (1-indexed, k in [1, n-1]) joins node k to node k+1. Like
// CompleteGraph, nothing is stored; every method computes directly from n,
// the directedness, and the arc id (which equals k).
type PathGraph struct {
	n int
	d Directedness
}

// NewPathGraph returns the path graph on n nodes with the given
// directedness. n must be >= 0; a PathGraph with n <= 1 has no arcs.
func NewPathGraph(n int, d Directedness) *PathGraph {
	return &PathGraph{n: n, d: d}
}

var _ Graph = (*PathGraph)(nil)

func (g *PathGraph) validArc(id int64) bool {
	return id >= 1 && id <= int64(g.n-1)
}

func (g *PathGraph) U(a Arc) Node {
	if !g.validArc(a.id) {
		return InvalidNode
	}
	return Node{id: a.id}
}

func (g *PathGraph) V(a Arc) Node {
	if !g.validArc(a.id) {
		return InvalidNode
	}
	return Node{id: a.id + 1}
}

func (g *PathGraph) IsEdge(a Arc) bool { return g.d == Undirected }

func (g *PathGraph) HasNode(n Node) bool { return n.id >= 1 && n.id <= int64(g.n) }

func (g *PathGraph) HasArc(a Arc) bool { return g.validArc(a.id) }

func (g *PathGraph) NodeCount() int { return g.n }

func (g *PathGraph) Nodes() NodeIterator {
	out := make([]Node, g.n)
	for i := 0; i < g.n; i++ {
		out[i] = Node{id: int64(i + 1)}
	}
	return NewNodeSlice(out)
}

func (g *PathGraph) Arcs(filter ArcFilter) ArcIterator {
	if filter == EdgeFilter && g.d != Undirected {
		return NewArcSlice(nil)
	}
	var out []Arc
	for k := int64(1); k <= int64(g.n-1); k++ {
		out = append(out, Arc{id: k})
	}
	return NewArcSlice(out)
}

func (g *PathGraph) ArcsAt(u Node, filter ArcFilter) ArcIterator {
	if !g.HasNode(u) {
		return NewArcSlice(nil)
	}
	if filter == EdgeFilter && g.d != Undirected {
		return NewArcSlice(nil)
	}
	var out []Arc
	left := u.id - 1  // arc (left, u)
	right := u.id     // arc (u, u+1)
	hasLeft := left >= 1
	hasRight := right <= int64(g.n-1)
	if g.d == Undirected {
		if hasLeft {
			out = append(out, Arc{id: left})
		}
		if hasRight {
			out = append(out, Arc{id: right})
		}
		return NewArcSlice(out)
	}
	switch filter {
	case Forward:
		if hasRight {
			out = append(out, Arc{id: right})
		}
	case Backward:
		if hasLeft {
			out = append(out, Arc{id: left})
		}
	case All:
		if hasLeft {
			out = append(out, Arc{id: left})
		}
		if hasRight {
			out = append(out, Arc{id: right})
		}
	}
	return NewArcSlice(out)
}

func (g *PathGraph) ArcsBetween(u, v Node, filter ArcFilter) ArcIterator {
	if !g.HasNode(u) || !g.HasNode(v) {
		return NewArcSlice(nil)
	}
	var id int64
	switch {
	case v.id == u.id+1:
		id = u.id
	case u.id == v.id+1:
		id = v.id
	default:
		return NewArcSlice(nil)
	}
	if g.d == Undirected {
		return NewArcSlice([]Arc{{id: id}})
	}
	// Directed: only the arc actually pointing u->v (or v->u for Backward).
	fromID, toID := g.decodeEndpoints(id)
	switch filter {
	case Forward:
		if fromID == u.id {
			return NewArcSlice([]Arc{{id: id}})
		}
	case Backward:
		if toID == u.id {
			return NewArcSlice([]Arc{{id: id}})
		}
	case EdgeFilter:
		return NewArcSlice(nil)
	default:
		return NewArcSlice([]Arc{{id: id}})
	}
	return NewArcSlice(nil)
}

func (g *PathGraph) decodeEndpoints(id int64) (from, to int64) { return id, id + 1 }

func (g *PathGraph) ArcCount(filter ArcFilter) int {
	if filter == EdgeFilter && g.d != Undirected {
		return 0
	}
	if g.n <= 1 {
		return 0
	}
	return g.n - 1
}

func (g *PathGraph) ArcCountAt(u Node, filter ArcFilter) int {
	n := 0
	it := g.ArcsAt(u, filter)
	for it.Next() {
		n++
	}
	return n
}

func (g *PathGraph) ArcCountBetween(u, v Node, filter ArcFilter) int {
	n := 0
	it := g.ArcsBetween(u, v, filter)
	for it.Next() {
		n++
	}
	return n
}
