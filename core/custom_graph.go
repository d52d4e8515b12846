package core

import "github.com/katalvlaran/graphkit/structures"

// nodeRecord tracks, per live node, the three disjoint adjacency roles a
// CustomGraph needs to answer a filtered enumeration in O(degree) instead of
// O(ArcCount): outArcs (directed, this node is U), inArcs (directed, this
// node is V), edgeArcs (undirected, this node is either endpoint).
//
// A directed self-loop (U == V) is recorded in both outArcs and inArcs; an
// undirected self-loop is recorded once in edgeArcs. arcIDsAt de-duplicates
// when filter == All so a self-loop is reported once, not twice.
type nodeRecord struct {
	id       int64
	outArcs  []int64
	inArcs   []int64
	edgeArcs []int64
}

type arcRecord struct {
	id     int64
	u, v   int64
	isEdge bool
}

// CustomGraph is the library's mutable, owning, adjacency-list graph: the
// Buildable/Destructible concrete graph every other view adapter ultimately
// wraps. Node and arc ids are allocated by an IdAllocator consulting the
// graph's own liveness, so AddNode never collides with an explicit
// AddNodeWithID call made earlier or later.
type CustomGraph struct {
	nodes   map[int64]*nodeRecord
	arcs    map[int64]*arcRecord
	nodeIDs *structures.IdAllocator
	arcIDs  *structures.IdAllocator
}

// NewCustomGraph returns an empty, mutable graph.
func NewCustomGraph() *CustomGraph {
	g := &CustomGraph{
		nodes: make(map[int64]*nodeRecord),
		arcs:  make(map[int64]*arcRecord),
	}
	g.nodeIDs = structures.NewIdAllocator(func(id int64) bool { _, ok := g.nodes[id]; return ok })
	g.arcIDs = structures.NewIdAllocator(func(id int64) bool { _, ok := g.arcs[id]; return ok })
	return g
}

var _ Destructible = (*CustomGraph)(nil)

// AddNode allocates a fresh id and inserts a node.
//
// Complexity: O(1) amortized.
func (g *CustomGraph) AddNode() Node {
	id, err := g.nodeIDs.Allocate()
	if err != nil {
		panic(err) // id space exhaustion is a 64-bit-scale event; see ErrIDSpaceExhausted
	}
	g.nodes[id] = &nodeRecord{id: id}
	return Node{id: id}
}

// AddNodeWithID inserts a node with a caller-chosen id.
//
// Complexity: O(1).
func (g *CustomGraph) AddNodeWithID(id int64) (Node, error) {
	if id == 0 {
		return InvalidNode, ErrInvalidHandle
	}
	if _, exists := g.nodes[id]; exists {
		return InvalidNode, ErrDuplicateNodeID
	}
	g.nodes[id] = &nodeRecord{id: id}
	g.nodeIDs.Notify(id)
	return Node{id: id}, nil
}

// AddArc inserts an arc between u and v already present in the graph.
//
// Complexity: O(1) amortized.
func (g *CustomGraph) AddArc(u, v Node, d Directedness) (Arc, error) {
	ur, uok := g.nodes[u.id]
	vr, vok := g.nodes[v.id]
	if !uok || !vok {
		return InvalidArc, ErrEndpointNotInGraph
	}
	id, err := g.arcIDs.Allocate()
	if err != nil {
		return InvalidArc, err
	}
	isEdge := d == Undirected
	g.arcs[id] = &arcRecord{id: id, u: u.id, v: v.id, isEdge: isEdge}
	if isEdge {
		ur.edgeArcs = append(ur.edgeArcs, id)
		if u.id != v.id {
			vr.edgeArcs = append(vr.edgeArcs, id)
		}
	} else {
		ur.outArcs = append(ur.outArcs, id)
		vr.inArcs = append(vr.inArcs, id)
	}
	return Arc{id: id}, nil
}

// DeleteArc removes a and its adjacency-list entries.
//
// Complexity: O(degree) to splice the endpoint adjacency lists.
func (g *CustomGraph) DeleteArc(a Arc) error {
	rec, ok := g.arcs[a.id]
	if !ok {
		return ErrArcNotFound
	}
	delete(g.arcs, a.id)
	ur, vr := g.nodes[rec.u], g.nodes[rec.v]
	if rec.isEdge {
		removeID(&ur.edgeArcs, a.id)
		if rec.u != rec.v {
			removeID(&vr.edgeArcs, a.id)
		}
	} else {
		removeID(&ur.outArcs, a.id)
		removeID(&vr.inArcs, a.id)
	}
	return nil
}

// DeleteNode removes n and every arc incident to it.
//
// Complexity: O(degree) for the incident arcs, each deleted in O(degree).
func (g *CustomGraph) DeleteNode(n Node) error {
	rec, ok := g.nodes[n.id]
	if !ok {
		return ErrNodeNotFound
	}
	for _, id := range g.arcIDsAt(rec, All) {
		_ = g.DeleteArc(Arc{id: id})
	}
	delete(g.nodes, n.id)
	return nil
}

func removeID(list *[]int64, id int64) {
	s := *list
	for i, v := range s {
		if v == id {
			s[i] = s[len(s)-1]
			*list = s[:len(s)-1]
			return
		}
	}
}

// --- Graph interface (read-only) --------------------------------------

func (g *CustomGraph) U(a Arc) Node {
	if rec, ok := g.arcs[a.id]; ok {
		return Node{id: rec.u}
	}
	return InvalidNode
}

func (g *CustomGraph) V(a Arc) Node {
	if rec, ok := g.arcs[a.id]; ok {
		return Node{id: rec.v}
	}
	return InvalidNode
}

func (g *CustomGraph) IsEdge(a Arc) bool {
	rec, ok := g.arcs[a.id]
	return ok && rec.isEdge
}

func (g *CustomGraph) HasNode(n Node) bool {
	_, ok := g.nodes[n.id]
	return ok
}

func (g *CustomGraph) HasArc(a Arc) bool {
	_, ok := g.arcs[a.id]
	return ok
}

func (g *CustomGraph) NodeCount() int { return len(g.nodes) }

func (g *CustomGraph) Nodes() NodeIterator {
	out := make([]Node, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, Node{id: id})
	}
	return NewNodeSlice(out)
}

// arcIDsAt returns the de-duplicated arc ids incident to rec under filter.
//
// Complexity: O(degree).
func (g *CustomGraph) arcIDsAt(rec *nodeRecord, filter ArcFilter) []int64 {
	switch filter {
	case EdgeFilter:
		return append([]int64(nil), rec.edgeArcs...)
	case Forward:
		return append(append([]int64(nil), rec.outArcs...), rec.edgeArcs...)
	case Backward:
		return append(append([]int64(nil), rec.inArcs...), rec.edgeArcs...)
	default: // All
		seen := make(map[int64]bool, len(rec.outArcs)+len(rec.inArcs)+len(rec.edgeArcs))
		out := make([]int64, 0, len(rec.outArcs)+len(rec.inArcs)+len(rec.edgeArcs))
		for _, lists := range [][]int64{rec.outArcs, rec.inArcs, rec.edgeArcs} {
			for _, id := range lists {
				if !seen[id] {
					seen[id] = true
					out = append(out, id)
				}
			}
		}
		return out
	}
}

func (g *CustomGraph) Arcs(filter ArcFilter) ArcIterator {
	var out []Arc
	if filter == EdgeFilter {
		for id, rec := range g.arcs {
			if rec.isEdge {
				out = append(out, Arc{id: id})
			}
		}
		return NewArcSlice(out)
	}
	// All, Forward, Backward are equivalent at graph scope: every directed
	// arc is "forward" from its own U and "backward" from its own V, so a
	// global enumeration (no anchor node) reports every arc regardless.
	out = make([]Arc, 0, len(g.arcs))
	for id := range g.arcs {
		out = append(out, Arc{id: id})
	}
	return NewArcSlice(out)
}

func (g *CustomGraph) ArcsAt(u Node, filter ArcFilter) ArcIterator {
	rec, ok := g.nodes[u.id]
	if !ok {
		return NewArcSlice(nil)
	}
	ids := g.arcIDsAt(rec, filter)
	out := make([]Arc, len(ids))
	for i, id := range ids {
		out[i] = Arc{id: id}
	}
	return NewArcSlice(out)
}

func (g *CustomGraph) ArcsBetween(u, v Node, filter ArcFilter) ArcIterator {
	rec, ok := g.nodes[u.id]
	if !ok {
		return NewArcSlice(nil)
	}
	var out []Arc
	for _, id := range g.arcIDsAt(rec, filter) {
		ar := g.arcs[id]
		if (ar.u == v.id && ar.v == u.id) || (ar.u == u.id && ar.v == v.id) {
			out = append(out, Arc{id: id})
		}
	}
	return NewArcSlice(out)
}

func (g *CustomGraph) ArcCount(filter ArcFilter) int {
	n := 0
	it := g.Arcs(filter)
	for it.Next() {
		n++
	}
	return n
}

func (g *CustomGraph) ArcCountAt(u Node, filter ArcFilter) int {
	rec, ok := g.nodes[u.id]
	if !ok {
		return 0
	}
	return len(g.arcIDsAt(rec, filter))
}

func (g *CustomGraph) ArcCountBetween(u, v Node, filter ArcFilter) int {
	n := 0
	it := g.ArcsBetween(u, v, filter)
	for it.Next() {
		n++
	}
	return n
}
