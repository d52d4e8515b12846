// SPDX-License-Identifier: MIT

package matching

import "github.com/katalvlaran/graphkit/core"

// Option configures a Matching at construction time.
type Option func(*config)

type config struct {
	initial []core.Arc
}

// WithInitialMatch seeds the matching with arcs known to be matched before
// GreedyGrow and the alternating-path search run. Each arc must connect a
// red node to a blue node, and neither endpoint may already be seeded.
func WithInitialMatch(arcs ...core.Arc) Option {
	return func(c *config) { c.initial = append(c.initial, arcs...) }
}

// Matching is a maximum-cardinality matching over a bipartite graph,
// built by Kuhn's alternating-path algorithm: GreedyGrow fills in
// zero-length augmenting paths cheaply, then Run augments every
// remaining unmatched red node by alternating-path DFS.
type Matching struct {
	g     core.Graph
	isRed ColorFunc

	// matchArc holds, for every matched node (red or blue), the single
	// arc currently matching it. A red node and its blue partner share
	// the same arc value under their respective ids.
	matchArc map[int64]core.Arc

	unmatchedRed map[int64]bool
}

// NewBipartiteMaximumMatching partitions g's nodes via isRed, applies any
// WithInitialMatch seed arcs, then runs GreedyGrow followed by the full
// alternating-path search to produce a maximum matching.
func NewBipartiteMaximumMatching(g core.Graph, isRed ColorFunc, opts ...Option) (*Matching, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Matching{
		g:            g,
		isRed:        isRed,
		matchArc:     make(map[int64]core.Arc),
		unmatchedRed: make(map[int64]bool),
	}
	for it := g.Nodes(); it.Next(); {
		n := it.Node()
		if isRed(n) {
			m.unmatchedRed[n.ID()] = true
		}
	}

	for _, a := range cfg.initial {
		if err := m.Add(a); err != nil {
			return nil, err
		}
	}

	m.GreedyGrow()
	m.Run()

	return m, nil
}

// Add records arc a as an existing match between its (red, blue)
// endpoints, outside of GreedyGrow/Run. Returns ErrNotBipartiteArc if a
// doesn't connect a red node to a blue one, ErrAlreadyMatched if either
// endpoint is already matched.
func (m *Matching) Add(a core.Arc) error {
	u, v := m.g.U(a), m.g.V(a)
	var red, blue core.Node
	switch {
	case m.isRed(u) && !m.isRed(v):
		red, blue = u, v
	case m.isRed(v) && !m.isRed(u):
		red, blue = v, u
	default:
		return ErrNotBipartiteArc
	}
	if _, ok := m.matchArc[red.ID()]; ok {
		return ErrAlreadyMatched
	}
	if _, ok := m.matchArc[blue.ID()]; ok {
		return ErrAlreadyMatched
	}

	m.matchArc[red.ID()] = a
	m.matchArc[blue.ID()] = a
	delete(m.unmatchedRed, red.ID())

	return nil
}

// GreedyGrow matches every unmatched red node directly to any unmatched
// blue neighbor, without searching for an augmenting path. Cheap
// preprocessing before Run's alternating-path search.
func (m *Matching) GreedyGrow() {
	for id := range m.unmatchedRed {
		x := core.NodeFromID(id)
		for it := m.g.ArcsAt(x, core.All); it.Next(); {
			a := it.Arc()
			y := core.Other(m.g, a, x)
			if _, matched := m.matchArc[y.ID()]; matched {
				continue
			}
			m.matchArc[x.ID()] = a
			m.matchArc[y.ID()] = a
			delete(m.unmatchedRed, id)
			break
		}
	}
}

// Run augments every remaining unmatched red node by alternating-path
// DFS: cross a non-matching arc to a blue node; if that blue node is
// unmatched, augment along the parent chain built so far; otherwise
// follow its matching arc to its red partner and recurse from there.
func (m *Matching) Run() {
	pending := make([]core.Node, 0, len(m.unmatchedRed))
	for id := range m.unmatchedRed {
		pending = append(pending, core.NodeFromID(id))
	}
	for _, x := range pending {
		if _, matched := m.matchArc[x.ID()]; matched {
			continue
		}
		visited := make(map[int64]bool)
		if m.tryAugment(x, visited) {
			delete(m.unmatchedRed, x.ID())
		}
	}
}

func (m *Matching) tryAugment(x core.Node, visited map[int64]bool) bool {
	for it := m.g.ArcsAt(x, core.All); it.Next(); {
		a := it.Arc()
		y := core.Other(m.g, a, x)
		if visited[y.ID()] {
			continue
		}
		visited[y.ID()] = true

		cur, matched := m.matchArc[y.ID()]
		if !matched {
			m.matchArc[x.ID()] = a
			m.matchArc[y.ID()] = a
			return true
		}

		r := core.Other(m.g, cur, y)
		if m.tryAugment(r, visited) {
			m.matchArc[x.ID()] = a
			m.matchArc[y.ID()] = a
			return true
		}
	}
	return false
}

// MatchOf returns the arc currently matching n, if any.
func (m *Matching) MatchOf(n core.Node) (core.Arc, bool) {
	a, ok := m.matchArc[n.ID()]
	return a, ok
}

// Size returns the number of matched pairs.
func (m *Matching) Size() int { return len(m.matchArc) / 2 }

// Arcs returns the distinct arcs making up the matching.
func (m *Matching) Arcs() []core.Arc {
	seen := make(map[int64]bool, len(m.matchArc)/2)
	arcs := make([]core.Arc, 0, len(m.matchArc)/2)
	for _, a := range m.matchArc {
		if seen[a.ID()] {
			continue
		}
		seen[a.ID()] = true
		arcs = append(arcs, a)
	}
	return arcs
}
