package core

// CompleteGraph is an implicit concrete graph on n nodes (ids 1..n) with
// every possible arc present: all n*(n-1)/2 edges when Undirected, all
// n*(n-1) ordered arcs when Directed. No node or arc is ever stored; U, V,
// IsEdge and every enumeration are computed directly from the arc id, which
// is a bijection with the ordered pair of endpoints it denotes. This gives
// CompleteGraph O(1) memory regardless of n, at the cost of being read-only
// (it implements Graph, not Buildable).
type CompleteGraph struct {
	n int
	d Directedness
}

// NewCompleteGraph returns the complete graph on n nodes with the given
// directedness. n must be >= 0.
func NewCompleteGraph(n int, d Directedness) *CompleteGraph {
	return &CompleteGraph{n: n, d: d}
}

var _ Graph = (*CompleteGraph)(nil)

// encode packs the ordered pair (i, j), 1-indexed and i != j, into an arc id.
func (g *CompleteGraph) encode(i, j int64) int64 {
	return (i-1)*int64(g.n) + j
}

// decode recovers the ordered pair (i, j) an arc id denotes.
func (g *CompleteGraph) decode(id int64) (i, j int64) {
	id--
	i = id/int64(g.n) + 1
	j = id%int64(g.n) + 1
	return
}

func (g *CompleteGraph) inRange(i, j int64) bool {
	return i >= 1 && i <= int64(g.n) && j >= 1 && j <= int64(g.n) && i != j
}

func (g *CompleteGraph) U(a Arc) Node {
	if !a.Valid() {
		return InvalidNode
	}
	i, _ := g.decode(a.id)
	return Node{id: i}
}

func (g *CompleteGraph) V(a Arc) Node {
	if !a.Valid() {
		return InvalidNode
	}
	_, j := g.decode(a.id)
	return Node{id: j}
}

func (g *CompleteGraph) IsEdge(a Arc) bool { return g.d == Undirected }

func (g *CompleteGraph) HasNode(n Node) bool { return n.id >= 1 && n.id <= int64(g.n) }

func (g *CompleteGraph) HasArc(a Arc) bool {
	if !a.Valid() {
		return false
	}
	i, j := g.decode(a.id)
	if !g.inRange(i, j) {
		return false
	}
	if g.d == Undirected && i > j {
		return false // canonical form stores only i<j for edges
	}
	return true
}

func (g *CompleteGraph) NodeCount() int { return g.n }

func (g *CompleteGraph) Nodes() NodeIterator {
	out := make([]Node, g.n)
	for i := 0; i < g.n; i++ {
		out[i] = Node{id: int64(i + 1)}
	}
	return NewNodeSlice(out)
}

func (g *CompleteGraph) Arcs(filter ArcFilter) ArcIterator {
	if filter == EdgeFilter && g.d != Undirected {
		return NewArcSlice(nil)
	}
	var out []Arc
	for i := int64(1); i <= int64(g.n); i++ {
		for j := int64(1); j <= int64(g.n); j++ {
			if i == j {
				continue
			}
			if g.d == Undirected && i > j {
				continue // each edge once, canonical i<j
			}
			out = append(out, Arc{id: g.encode(i, j)})
		}
	}
	return NewArcSlice(out)
}

func (g *CompleteGraph) ArcsAt(u Node, filter ArcFilter) ArcIterator {
	if !g.HasNode(u) {
		return NewArcSlice(nil)
	}
	if filter == EdgeFilter && g.d != Undirected {
		return NewArcSlice(nil)
	}
	var out []Arc
	i := u.id
	for j := int64(1); j <= int64(g.n); j++ {
		if j == i {
			continue
		}
		switch {
		case g.d == Undirected:
			if filter == Backward || filter == Forward || filter == All || filter == EdgeFilter {
				lo, hi := i, j
				if lo > hi {
					lo, hi = hi, lo
				}
				out = append(out, Arc{id: g.encode(lo, hi)})
			}
		default: // Directed
			switch filter {
			case Forward:
				out = append(out, Arc{id: g.encode(i, j)})
			case Backward:
				out = append(out, Arc{id: g.encode(j, i)})
			case All:
				out = append(out, Arc{id: g.encode(i, j)}, Arc{id: g.encode(j, i)})
			}
		}
	}
	return NewArcSlice(out)
}

func (g *CompleteGraph) ArcsBetween(u, v Node, filter ArcFilter) ArcIterator {
	if !g.HasNode(u) || !g.HasNode(v) || u.id == v.id {
		return NewArcSlice(nil)
	}
	i, j := u.id, v.id
	if g.d == Undirected {
		lo, hi := i, j
		if lo > hi {
			lo, hi = hi, lo
		}
		return NewArcSlice([]Arc{{id: g.encode(lo, hi)}})
	}
	switch filter {
	case Forward:
		return NewArcSlice([]Arc{{id: g.encode(i, j)}})
	case Backward:
		return NewArcSlice([]Arc{{id: g.encode(j, i)}})
	case EdgeFilter:
		return NewArcSlice(nil)
	default:
		return NewArcSlice([]Arc{{id: g.encode(i, j)}, {id: g.encode(j, i)}})
	}
}

func (g *CompleteGraph) ArcCount(filter ArcFilter) int {
	if filter == EdgeFilter && g.d != Undirected {
		return 0
	}
	n := int64(g.n)
	if g.d == Undirected {
		return int(n * (n - 1) / 2)
	}
	return int(n * (n - 1))
}

func (g *CompleteGraph) ArcCountAt(u Node, filter ArcFilter) int {
	if !g.HasNode(u) {
		return 0
	}
	if filter == EdgeFilter && g.d != Undirected {
		return 0
	}
	if g.d == Undirected {
		return g.n - 1
	}
	if filter == All {
		return 2 * (g.n - 1)
	}
	return g.n - 1
}

func (g *CompleteGraph) ArcCountBetween(u, v Node, filter ArcFilter) int {
	n := 0
	it := g.ArcsBetween(u, v, filter)
	for it.Next() {
		n++
	}
	return n
}
