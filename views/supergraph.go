package views

import (
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/structures"
)

type sgArc struct {
	u, v   int64
	isEdge bool
}

type sgAdjacency struct {
	out, in, edge []int64
}

// Supergraph layers its own owned node/arc set atop an optional underlying
// graph (base may be nil, yielding a plain buildable graph with no
// underlying layer). New arcs may connect two owned nodes, two underlying
// nodes, or one of each. Deletion only ever removes entities Supergraph
// itself allocated: DeleteNode/DeleteArc on an id that belongs to base is
// rejected, since Supergraph does not own base's storage.
//
// The underlying graph must not be mutated while a Supergraph view over it
// is live; doing so yields undefined results (id collisions the allocator
// cannot see, adjacency the view never learns about).
type Supergraph struct {
	base    core.Graph
	nodeIDs *structures.IdAllocator
	arcIDs  *structures.IdAllocator

	ownedNodes map[int64]bool
	ownedArcs  map[int64]sgArc
	adjacency  map[int64]*sgAdjacency // keyed by any node (owned or base) touched by an owned arc
}

// NewSupergraph layers a fresh owned node/arc set atop base. Pass nil for a
// standalone buildable graph with no underlying layer.
func NewSupergraph(base core.Graph) *Supergraph {
	s := &Supergraph{
		base:       base,
		ownedNodes: make(map[int64]bool),
		ownedArcs:  make(map[int64]sgArc),
		adjacency:  make(map[int64]*sgAdjacency),
	}
	s.nodeIDs = structures.NewIdAllocator(func(id int64) bool {
		return s.ownedNodes[id] || (s.base != nil && s.base.HasNode(core.NodeFromID(id)))
	})
	s.arcIDs = structures.NewIdAllocator(func(id int64) bool {
		_, owned := s.ownedArcs[id]
		return owned || (s.base != nil && s.base.HasArc(core.ArcFromID(id)))
	})
	return s
}

var _ core.Destructible = (*Supergraph)(nil)

func (s *Supergraph) AddNode() core.Node {
	id, err := s.nodeIDs.Allocate()
	if err != nil {
		panic(err)
	}
	s.ownedNodes[id] = true
	return core.NodeFromID(id)
}

func (s *Supergraph) AddNodeWithID(id int64) (core.Node, error) {
	if id == 0 {
		return core.InvalidNode, core.ErrInvalidHandle
	}
	if s.HasNode(core.NodeFromID(id)) {
		return core.InvalidNode, core.ErrDuplicateNodeID
	}
	s.ownedNodes[id] = true
	s.nodeIDs.Notify(id)
	return core.NodeFromID(id), nil
}

func (s *Supergraph) adj(id int64) *sgAdjacency {
	rec, ok := s.adjacency[id]
	if !ok {
		rec = &sgAdjacency{}
		s.adjacency[id] = rec
	}
	return rec
}

func (s *Supergraph) AddArc(u, v core.Node, d core.Directedness) (core.Arc, error) {
	if !s.HasNode(u) || !s.HasNode(v) {
		return core.InvalidArc, core.ErrEndpointNotInGraph
	}
	id, err := s.arcIDs.Allocate()
	if err != nil {
		return core.InvalidArc, err
	}
	isEdge := d == core.Undirected
	s.ownedArcs[id] = sgArc{u: u.ID(), v: v.ID(), isEdge: isEdge}
	if isEdge {
		s.adj(u.ID()).edge = append(s.adj(u.ID()).edge, id)
		if u.ID() != v.ID() {
			s.adj(v.ID()).edge = append(s.adj(v.ID()).edge, id)
		}
	} else {
		s.adj(u.ID()).out = append(s.adj(u.ID()).out, id)
		s.adj(v.ID()).in = append(s.adj(v.ID()).in, id)
	}
	return core.ArcFromID(id), nil
}

func (s *Supergraph) DeleteArc(a core.Arc) error {
	rec, ok := s.ownedArcs[a.ID()]
	if !ok {
		return core.ErrArcNotFound
	}
	delete(s.ownedArcs, a.ID())
	if rec.isEdge {
		removeID(s.adj(rec.u), &s.adj(rec.u).edge, a.ID())
		if rec.u != rec.v {
			removeID(s.adj(rec.v), &s.adj(rec.v).edge, a.ID())
		}
	} else {
		removeID(s.adj(rec.u), &s.adj(rec.u).out, a.ID())
		removeID(s.adj(rec.v), &s.adj(rec.v).in, a.ID())
	}
	return nil
}

func removeID(_ *sgAdjacency, list *[]int64, id int64) {
	s := *list
	for i, v := range s {
		if v == id {
			s[i] = s[len(s)-1]
			*list = s[:len(s)-1]
			return
		}
	}
}

func (s *Supergraph) DeleteNode(n core.Node) error {
	if !s.ownedNodes[n.ID()] {
		return core.ErrNodeNotFound
	}
	for _, id := range s.arcIDsAt(n.ID(), core.All) {
		_ = s.DeleteArc(core.ArcFromID(id))
	}
	delete(s.ownedNodes, n.ID())
	delete(s.adjacency, n.ID())
	return nil
}

func (s *Supergraph) arcIDsAt(id int64, filter core.ArcFilter) []int64 {
	rec, ok := s.adjacency[id]
	if !ok {
		return nil
	}
	switch filter {
	case core.EdgeFilter:
		return append([]int64(nil), rec.edge...)
	case core.Forward:
		return append(append([]int64(nil), rec.out...), rec.edge...)
	case core.Backward:
		return append(append([]int64(nil), rec.in...), rec.edge...)
	default:
		seen := make(map[int64]bool)
		var out []int64
		for _, lst := range [][]int64{rec.out, rec.in, rec.edge} {
			for _, id := range lst {
				if !seen[id] {
					seen[id] = true
					out = append(out, id)
				}
			}
		}
		return out
	}
}

func (s *Supergraph) U(a core.Arc) core.Node {
	if rec, ok := s.ownedArcs[a.ID()]; ok {
		return core.NodeFromID(rec.u)
	}
	if s.base != nil {
		return s.base.U(a)
	}
	return core.InvalidNode
}

func (s *Supergraph) V(a core.Arc) core.Node {
	if rec, ok := s.ownedArcs[a.ID()]; ok {
		return core.NodeFromID(rec.v)
	}
	if s.base != nil {
		return s.base.V(a)
	}
	return core.InvalidNode
}

func (s *Supergraph) IsEdge(a core.Arc) bool {
	if rec, ok := s.ownedArcs[a.ID()]; ok {
		return rec.isEdge
	}
	if s.base != nil {
		return s.base.IsEdge(a)
	}
	return false
}

func (s *Supergraph) HasNode(n core.Node) bool {
	return s.ownedNodes[n.ID()] || (s.base != nil && s.base.HasNode(n))
}

func (s *Supergraph) HasArc(a core.Arc) bool {
	_, owned := s.ownedArcs[a.ID()]
	return owned || (s.base != nil && s.base.HasArc(a))
}

func (s *Supergraph) NodeCount() int {
	n := len(s.ownedNodes)
	if s.base != nil {
		n += s.base.NodeCount()
	}
	return n
}

func (s *Supergraph) Nodes() core.NodeIterator {
	var out []core.Node
	if s.base != nil {
		out = core.NodesOf(s.base.Nodes())
	}
	for id := range s.ownedNodes {
		out = append(out, core.NodeFromID(id))
	}
	return core.NewNodeSlice(out)
}

func (s *Supergraph) Arcs(filter core.ArcFilter) core.ArcIterator {
	var out []core.Arc
	if s.base != nil {
		out = core.ArcsOf(s.base.Arcs(filter))
	}
	for id, rec := range s.ownedArcs {
		if filter == core.EdgeFilter && !rec.isEdge {
			continue
		}
		out = append(out, core.ArcFromID(id))
	}
	return core.NewArcSlice(out)
}

func (s *Supergraph) ArcsAt(u core.Node, filter core.ArcFilter) core.ArcIterator {
	if !s.HasNode(u) {
		return core.NewArcSlice(nil)
	}
	var out []core.Arc
	for _, id := range s.arcIDsAt(u.ID(), filter) {
		out = append(out, core.ArcFromID(id))
	}
	if s.base != nil && s.base.HasNode(u) {
		out = append(out, core.ArcsOf(s.base.ArcsAt(u, filter))...)
	}
	return core.NewArcSlice(out)
}

func (s *Supergraph) ArcsBetween(u, v core.Node, filter core.ArcFilter) core.ArcIterator {
	return filterByOther(s, s.ArcsAt(u, filter), u, v)
}

func (s *Supergraph) ArcCount(filter core.ArcFilter) int { return countArcs(s.Arcs(filter)) }
func (s *Supergraph) ArcCountAt(u core.Node, filter core.ArcFilter) int {
	return countArcs(s.ArcsAt(u, filter))
}
func (s *Supergraph) ArcCountBetween(u, v core.Node, filter core.ArcFilter) int {
	return countArcs(s.ArcsBetween(u, v, filter))
}
