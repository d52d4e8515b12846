package views

import (
	"errors"

	"github.com/katalvlaran/graphkit/core"
)

// ErrMatchingLoopArc is returned by Enable when the arc is a self-loop.
var ErrMatchingLoopArc = errors.New("views: matching cannot enable a self-loop arc")

// ErrNodeAlreadyMatched is returned by Enable when either endpoint already
// carries an enabled arc.
var ErrNodeAlreadyMatched = errors.New("views: node is already matched")

// Matching is a Subgraph specialization: every node is enabled, and at most
// one arc per node may be enabled at a time. Enable(a, true) checks both
// preconditions (no loop, neither endpoint already matched) before mutating
// any state, so a rejected call leaves the matching untouched.
type Matching struct {
	base      core.Graph
	matchedAt map[int64]int64 // node id -> the one enabled arc incident to it
	enabled   map[int64]bool  // arc id -> enabled
}

// NewMatching wraps base with an empty matching.
func NewMatching(base core.Graph) *Matching {
	return &Matching{
		base:      base,
		matchedAt: make(map[int64]int64),
		enabled:   make(map[int64]bool),
	}
}

var _ core.Graph = (*Matching)(nil)

// Enable toggles a's membership in the matching. Enabling an already-enabled
// arc, or disabling an already-disabled one, is a no-op. Enabling validates
// both preconditions before touching any state: an invalid request leaves
// the matching exactly as it was.
func (m *Matching) Enable(a core.Arc, enabled bool) error {
	if !enabled {
		if !m.enabled[a.ID()] {
			return nil
		}
		u, v := m.base.U(a), m.base.V(a)
		delete(m.enabled, a.ID())
		delete(m.matchedAt, u.ID())
		delete(m.matchedAt, v.ID())
		return nil
	}
	if m.enabled[a.ID()] {
		return nil
	}
	u, v := m.base.U(a), m.base.V(a)
	if u == v {
		return ErrMatchingLoopArc
	}
	if _, ok := m.matchedAt[u.ID()]; ok {
		return ErrNodeAlreadyMatched
	}
	if _, ok := m.matchedAt[v.ID()]; ok {
		return ErrNodeAlreadyMatched
	}
	m.enabled[a.ID()] = true
	m.matchedAt[u.ID()] = a.ID()
	m.matchedAt[v.ID()] = a.ID()
	return nil
}

// IsMatched reports whether n currently carries an enabled arc.
func (m *Matching) IsMatched(n core.Node) bool {
	_, ok := m.matchedAt[n.ID()]
	return ok
}

// MatchedArc returns the arc currently matching n, if any.
func (m *Matching) MatchedArc(n core.Node) (core.Arc, bool) {
	id, ok := m.matchedAt[n.ID()]
	return core.ArcFromID(id), ok
}

// Size returns the number of arcs currently enabled.
func (m *Matching) Size() int { return len(m.enabled) }

func (m *Matching) U(a core.Arc) core.Node { return m.base.U(a) }
func (m *Matching) V(a core.Arc) core.Node { return m.base.V(a) }
func (m *Matching) IsEdge(a core.Arc) bool { return m.base.IsEdge(a) }

func (m *Matching) HasNode(n core.Node) bool { return m.base.HasNode(n) }
func (m *Matching) HasArc(a core.Arc) bool   { return m.enabled[a.ID()] }
func (m *Matching) NodeCount() int           { return m.base.NodeCount() }
func (m *Matching) Nodes() core.NodeIterator { return m.base.Nodes() }

func (m *Matching) Arcs(filter core.ArcFilter) core.ArcIterator {
	var out []core.Arc
	for id := range m.enabled {
		out = append(out, core.ArcFromID(id))
	}
	return core.NewArcSlice(out)
}

func (m *Matching) ArcsAt(n core.Node, filter core.ArcFilter) core.ArcIterator {
	id, ok := m.matchedAt[n.ID()]
	if !ok {
		return core.NewArcSlice(nil)
	}
	return core.NewArcSlice([]core.Arc{core.ArcFromID(id)})
}

func (m *Matching) ArcsBetween(u, v core.Node, filter core.ArcFilter) core.ArcIterator {
	return filterByOther(m, m.ArcsAt(u, filter), u, v)
}

func (m *Matching) ArcCount(filter core.ArcFilter) int { return len(m.enabled) }
func (m *Matching) ArcCountAt(n core.Node, filter core.ArcFilter) int {
	if _, ok := m.matchedAt[n.ID()]; ok {
		return 1
	}
	return 0
}
func (m *Matching) ArcCountBetween(u, v core.Node, filter core.ArcFilter) int {
	return countArcs(m.ArcsBetween(u, v, filter))
}
