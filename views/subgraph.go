package views

import "github.com/katalvlaran/graphkit/core"

// Subgraph maintains a default-enabled flag and an exception set for nodes
// and arcs: IsEnabled(x) == defaultEnabled XOR (x in exceptions). Toggling a
// single node or arc is O(1); enumerations filter the base graph by
// enabledness. An arc with a disabled endpoint is reported as absent from
// every enumeration even if the arc's own flag is enabled.
type Subgraph struct {
	base           core.Graph
	defaultEnabled bool
	nodeExceptions map[int64]bool
	arcExceptions  map[int64]bool
}

// NewSubgraph wraps base with every node/arc enabled iff defaultEnabled.
func NewSubgraph(base core.Graph, defaultEnabled bool) *Subgraph {
	return &Subgraph{
		base:           base,
		defaultEnabled: defaultEnabled,
		nodeExceptions: make(map[int64]bool),
		arcExceptions:  make(map[int64]bool),
	}
}

var _ core.Graph = (*Subgraph)(nil)

// IsNodeEnabled reports n's enabledness, independent of its arcs.
func (s *Subgraph) IsNodeEnabled(n core.Node) bool {
	return s.defaultEnabled != s.nodeExceptions[n.ID()]
}

// IsArcEnabled reports a's own flag, independent of its endpoints'.
func (s *Subgraph) IsArcEnabled(a core.Arc) bool {
	return s.defaultEnabled != s.arcExceptions[a.ID()]
}

// effectiveArcEnabled is what enumeration actually honors: the arc's own
// flag AND both endpoints enabled.
func (s *Subgraph) effectiveArcEnabled(a core.Arc) bool {
	return s.IsArcEnabled(a) && s.IsNodeEnabled(s.base.U(a)) && s.IsNodeEnabled(s.base.V(a))
}

// SetNodeEnabled toggles n's membership in the exception set.
//
// Complexity: O(1).
func (s *Subgraph) SetNodeEnabled(n core.Node, enabled bool) {
	if enabled == s.defaultEnabled {
		delete(s.nodeExceptions, n.ID())
	} else {
		s.nodeExceptions[n.ID()] = true
	}
}

// SetArcEnabled toggles a's membership in the exception set.
//
// Complexity: O(1).
func (s *Subgraph) SetArcEnabled(a core.Arc, enabled bool) {
	if enabled == s.defaultEnabled {
		delete(s.arcExceptions, a.ID())
	} else {
		s.arcExceptions[a.ID()] = true
	}
}

func (s *Subgraph) U(a core.Arc) core.Node { return s.base.U(a) }
func (s *Subgraph) V(a core.Arc) core.Node { return s.base.V(a) }
func (s *Subgraph) IsEdge(a core.Arc) bool { return s.base.IsEdge(a) }

func (s *Subgraph) HasNode(n core.Node) bool {
	return s.base.HasNode(n) && s.IsNodeEnabled(n)
}

func (s *Subgraph) HasArc(a core.Arc) bool {
	return s.base.HasArc(a) && s.effectiveArcEnabled(a)
}

func (s *Subgraph) NodeCount() int { return countNodes(s.Nodes()) }

func (s *Subgraph) Nodes() core.NodeIterator {
	var out []core.Node
	it := s.base.Nodes()
	for it.Next() {
		if n := it.Node(); s.IsNodeEnabled(n) {
			out = append(out, n)
		}
	}
	return core.NewNodeSlice(out)
}

func (s *Subgraph) Arcs(filter core.ArcFilter) core.ArcIterator {
	var out []core.Arc
	it := s.base.Arcs(filter)
	for it.Next() {
		if a := it.Arc(); s.effectiveArcEnabled(a) {
			out = append(out, a)
		}
	}
	return core.NewArcSlice(out)
}

func (s *Subgraph) ArcsAt(u core.Node, filter core.ArcFilter) core.ArcIterator {
	if !s.IsNodeEnabled(u) || !s.base.HasNode(u) {
		return core.NewArcSlice(nil)
	}
	var out []core.Arc
	it := s.base.ArcsAt(u, filter)
	for it.Next() {
		if a := it.Arc(); s.effectiveArcEnabled(a) {
			out = append(out, a)
		}
	}
	return core.NewArcSlice(out)
}

func (s *Subgraph) ArcsBetween(u, v core.Node, filter core.ArcFilter) core.ArcIterator {
	return filterByOther(s, s.ArcsAt(u, filter), u, v)
}

func (s *Subgraph) ArcCount(filter core.ArcFilter) int { return countArcs(s.Arcs(filter)) }
func (s *Subgraph) ArcCountAt(u core.Node, filter core.ArcFilter) int {
	return countArcs(s.ArcsAt(u, filter))
}
func (s *Subgraph) ArcCountBetween(u, v core.Node, filter core.ArcFilter) int {
	return countArcs(s.ArcsBetween(u, v, filter))
}

func countNodes(it core.NodeIterator) int {
	n := 0
	for it.Next() {
		n++
	}
	return n
}
