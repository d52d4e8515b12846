package views

import (
	"errors"

	"github.com/katalvlaran/graphkit/core"
)

// ErrPathEmpty is returned by AddFirst/AddLast before Begin has been called.
var ErrPathEmpty = errors.New("views: path has no nodes yet, call Begin first")

// ErrPathDirectionMismatch is returned when a directed arc passed to
// AddFirst/AddLast does not point the way the path needs to grow.
var ErrPathDirectionMismatch = errors.New("views: arc does not extend the path in the required direction")

// ErrPathNodeRevisited is returned when the arc's far endpoint is already a
// member of the path.
var ErrPathNodeRevisited = errors.New("views: node is already interior to the path")

// Path is a simple (non-repeating) walk over base, represented as a pair of
// per-node next/prev arc maps plus head/tail node ids. AddFirst and AddLast
// extend the walk by one arc at a time; Reverse swaps the roles of the two
// maps and the head/tail pointers, an O(1) operation that never touches an
// individual node or arc record.
//
// Path implements core.Graph over its own nodes and arcs only — it is a view
// of the walk itself, not a filtered view of base's full node/arc set.
type Path struct {
	base core.Graph

	head, tail int64 // 0 when the path is empty
	nextArc    map[int64]int64
	prevArc    map[int64]int64
	member     map[int64]bool
	arcSet     map[int64]bool
}

// NewPath creates an empty path over base. Call Begin before AddFirst/AddLast.
func NewPath(base core.Graph) *Path {
	return &Path{
		base:    base,
		nextArc: make(map[int64]int64),
		prevArc: make(map[int64]int64),
		member:  make(map[int64]bool),
		arcSet:  make(map[int64]bool),
	}
}

var _ core.Graph = (*Path)(nil)

// Begin resets the path to the single node n.
func (p *Path) Begin(n core.Node) {
	p.head, p.tail = n.ID(), n.ID()
	p.nextArc = make(map[int64]int64)
	p.prevArc = make(map[int64]int64)
	p.member = map[int64]bool{n.ID(): true}
	p.arcSet = make(map[int64]bool)
}

// AddLast extends the path past its current tail via a, which must connect
// the tail to a node not already in the path.
func (p *Path) AddLast(a core.Arc) error {
	if p.tail == 0 {
		return ErrPathEmpty
	}
	if !p.base.HasArc(a) {
		return core.ErrArcNotFound
	}
	tailNode := core.NodeFromID(p.tail)
	var w core.Node
	if p.base.IsEdge(a) {
		if p.base.U(a) != tailNode && p.base.V(a) != tailNode {
			return ErrPathDirectionMismatch
		}
		w = core.Other(p.base, a, tailNode)
	} else {
		if p.base.U(a) != tailNode {
			return ErrPathDirectionMismatch
		}
		w = p.base.V(a)
	}
	if p.member[w.ID()] {
		return ErrPathNodeRevisited
	}
	p.nextArc[p.tail] = a.ID()
	p.prevArc[w.ID()] = a.ID()
	p.member[w.ID()] = true
	p.arcSet[a.ID()] = true
	p.tail = w.ID()
	return nil
}

// AddFirst extends the path before its current head via a, which must
// connect the head to a node not already in the path.
func (p *Path) AddFirst(a core.Arc) error {
	if p.head == 0 {
		return ErrPathEmpty
	}
	if !p.base.HasArc(a) {
		return core.ErrArcNotFound
	}
	headNode := core.NodeFromID(p.head)
	var w core.Node
	if p.base.IsEdge(a) {
		if p.base.U(a) != headNode && p.base.V(a) != headNode {
			return ErrPathDirectionMismatch
		}
		w = core.Other(p.base, a, headNode)
	} else {
		if p.base.V(a) != headNode {
			return ErrPathDirectionMismatch
		}
		w = p.base.U(a)
	}
	if p.member[w.ID()] {
		return ErrPathNodeRevisited
	}
	p.prevArc[p.head] = a.ID()
	p.nextArc[w.ID()] = a.ID()
	p.member[w.ID()] = true
	p.arcSet[a.ID()] = true
	p.head = w.ID()
	return nil
}

// Reverse swaps the direction of traversal in place.
//
// Complexity: O(1).
func (p *Path) Reverse() {
	p.head, p.tail = p.tail, p.head
	p.nextArc, p.prevArc = p.prevArc, p.nextArc
}

// NextArc returns the arc leading from n to its successor, if any.
func (p *Path) NextArc(n core.Node) (core.Arc, bool) {
	id, ok := p.nextArc[n.ID()]
	return core.ArcFromID(id), ok
}

// PrevArc returns the arc leading from n to its predecessor, if any.
func (p *Path) PrevArc(n core.Node) (core.Arc, bool) {
	id, ok := p.prevArc[n.ID()]
	return core.ArcFromID(id), ok
}

// Head returns the path's first node. Invalid if the path is empty.
func (p *Path) Head() core.Node { return core.NodeFromID(p.head) }

// Tail returns the path's last node. Invalid if the path is empty.
func (p *Path) Tail() core.Node { return core.NodeFromID(p.tail) }

func (p *Path) U(a core.Arc) core.Node { return p.base.U(a) }
func (p *Path) V(a core.Arc) core.Node { return p.base.V(a) }
func (p *Path) IsEdge(a core.Arc) bool { return p.base.IsEdge(a) }

func (p *Path) HasNode(n core.Node) bool { return p.member[n.ID()] }
func (p *Path) HasArc(a core.Arc) bool   { return p.arcSet[a.ID()] }
func (p *Path) NodeCount() int           { return len(p.member) }

func (p *Path) Nodes() core.NodeIterator {
	var out []core.Node
	if p.head == 0 {
		return core.NewNodeSlice(nil)
	}
	for cur := p.head; ; {
		out = append(out, core.NodeFromID(cur))
		id, ok := p.nextArc[cur]
		if !ok {
			break
		}
		cur = core.Other(p.base, core.ArcFromID(id), core.NodeFromID(cur)).ID()
	}
	return core.NewNodeSlice(out)
}

func (p *Path) Arcs(filter core.ArcFilter) core.ArcIterator {
	var out []core.Arc
	for id := range p.arcSet {
		a := core.ArcFromID(id)
		if filter == core.EdgeFilter && !p.base.IsEdge(a) {
			continue
		}
		out = append(out, a)
	}
	return core.NewArcSlice(out)
}

func (p *Path) ArcsAt(n core.Node, filter core.ArcFilter) core.ArcIterator {
	if !p.member[n.ID()] {
		return core.NewArcSlice(nil)
	}
	var out []core.Arc
	if id, ok := p.nextArc[n.ID()]; ok && filter != core.Backward {
		out = append(out, core.ArcFromID(id))
	}
	if id, ok := p.prevArc[n.ID()]; ok && filter != core.Forward {
		out = append(out, core.ArcFromID(id))
	}
	if filter == core.EdgeFilter {
		filtered := out[:0]
		for _, a := range out {
			if p.base.IsEdge(a) {
				filtered = append(filtered, a)
			}
		}
		out = filtered
	}
	return core.NewArcSlice(out)
}

func (p *Path) ArcsBetween(u, v core.Node, filter core.ArcFilter) core.ArcIterator {
	return filterByOther(p, p.ArcsAt(u, filter), u, v)
}

func (p *Path) ArcCount(filter core.ArcFilter) int { return countArcs(p.Arcs(filter)) }
func (p *Path) ArcCountAt(n core.Node, filter core.ArcFilter) int {
	return countArcs(p.ArcsAt(n, filter))
}
func (p *Path) ArcCountBetween(u, v core.Node, filter core.ArcFilter) int {
	return countArcs(p.ArcsBetween(u, v, filter))
}
