// SPDX-License-Identifier: MIT

package isomorphism

import (
	"sort"

	"github.com/katalvlaran/graphkit/connectivity"
	"github.com/katalvlaran/graphkit/core"
)

// Test runs iterated color refinement over g1 and g2 and reports whether
// they are isomorphic. When the result is Isomorphic, the returned map is
// the induced bijection from g1's nodes to g2's: for every arc (u,v) in
// g1, (mapping[u], mapping[v]) is an arc of the same directedness in g2.
func Test(g1, g2 core.Graph, opts ...Option) (Result, map[core.Node]core.Node, error) {
	if g1 == nil || g2 == nil {
		return NotIsomorphic, nil, ErrGraphNil
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g1.NodeCount() != g2.NodeCount() {
		return NotIsomorphic, nil, nil
	}
	if g1.ArcCount(core.All) != g2.ArcCount(core.All) {
		return NotIsomorphic, nil, nil
	}
	ok, err := sameComponentSizeMultiset(g1, g2)
	if err != nil {
		return NotIsomorphic, nil, err
	}
	if !ok {
		return NotIsomorphic, nil, nil
	}

	nodes1 := core.NodesOf(g1.Nodes())
	nodes2 := core.NodesOf(g2.Nodes())

	c1 := initialColoring(g1, nodes1)
	c2 := initialColoring(g2, nodes2)

	if hashColoring(c1, nodes1) != hashColoring(c2, nodes2) {
		return NotIsomorphic, nil, nil
	}

	for iter := 0; iter < cfg.maxIterations; iter++ {
		next1 := refineOnce(g1, nodes1, c1)
		next2 := refineOnce(g2, nodes2, c2)

		if hashColoring(next1, nodes1) != hashColoring(next2, nodes2) {
			return NotIsomorphic, nil, nil
		}

		if coloringsEqual(c1, next1, nodes1) && coloringsEqual(c2, next2, nodes2) {
			c1, c2 = next1, next2
			break // fixed point: further rounds would be no-ops
		}
		c1, c2 = next1, next2
	}

	return classify(g1, g2, nodes1, nodes2, c1, c2)
}

func initialColoring(g core.Graph, nodes []core.Node) map[int64]uint64 {
	c := make(map[int64]uint64, len(nodes))
	for _, n := range nodes {
		c[n.ID()] = uint64(g.ArcCountAt(n, core.All))
	}
	return c
}

// refineOnce computes c_{k+1}(u) from c_k by mixing u's own prior color
// together with the edge/forward/backward neighbor-color sums, each run
// through its own mixer before summing so the three roles can never be
// confused with one another.
func refineOnce(g core.Graph, nodes []core.Node, c map[int64]uint64) map[int64]uint64 {
	next := make(map[int64]uint64, len(nodes))
	for _, u := range nodes {
		acc := mixSelf(c[u.ID()])

		for it := g.ArcsAt(u, core.EdgeFilter); it.Next(); {
			v := core.Other(g, it.Arc(), u)
			acc += mixEdge(c[v.ID()])
		}
		for it := g.ArcsAt(u, core.Forward); it.Next(); {
			a := it.Arc()
			if g.IsEdge(a) {
				continue
			}
			v := core.Other(g, a, u)
			acc += mixForward(c[v.ID()])
		}
		for it := g.ArcsAt(u, core.Backward); it.Next(); {
			a := it.Arc()
			if g.IsEdge(a) {
				continue
			}
			v := core.Other(g, a, u)
			acc += mixBackward(c[v.ID()])
		}

		next[u.ID()] = acc
	}
	return next
}

func coloringsEqual(a, b map[int64]uint64, nodes []core.Node) bool {
	for _, n := range nodes {
		if a[n.ID()] != b[n.ID()] {
			return false
		}
	}
	return true
}

// hashColoring folds the coloring's sorted color values (a multiset, not
// tied to either graph's node-id ordering) into an FNV-1a hash, so two
// graphs with the same colors distributed differently across ids still
// compare equal.
func hashColoring(c map[int64]uint64, nodes []core.Node) uint64 {
	vals := make([]uint64, 0, len(nodes))
	for _, n := range nodes {
		vals = append(vals, c[n.ID()])
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })

	h := uint64(fnvOffsetBasis64)
	for _, v := range vals {
		h = fnv1aUint64(h, v)
	}
	return h
}

func sameComponentSizeMultiset(g1, g2 core.Graph) (bool, error) {
	sizes1, err := componentSizes(g1)
	if err != nil {
		return false, err
	}
	sizes2, err := componentSizes(g2)
	if err != nil {
		return false, err
	}
	if len(sizes1) != len(sizes2) {
		return false, nil
	}
	for i := range sizes1 {
		if sizes1[i] != sizes2[i] {
			return false, nil
		}
	}
	return true, nil
}

func componentSizes(g core.Graph) ([]int, error) {
	p, err := connectivity.ConnectedComponents(g)
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int, p.Count())
	for it := g.Nodes(); it.Next(); {
		counts[p.Class(it.Node())]++
	}
	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	sort.Ints(sizes)
	return sizes, nil
}

// classify performs the final step once refinement has run to the
// iteration cap without the two colorings' hashes ever diverging: if both
// colorings are pointwise equal once sorted and every color is unique,
// the sort order induces a candidate bijection; otherwise the graphs are
// indistinguishable by this pass but not provably isomorphic.
func classify(g1, g2 core.Graph, nodes1, nodes2 []core.Node, c1, c2 map[int64]uint64) (Result, map[core.Node]core.Node, error) {
	order1 := sortByColor(nodes1, c1)
	order2 := sortByColor(nodes2, c2)

	for i := range order1 {
		if c1[order1[i].ID()] != c2[order2[i].ID()] {
			return Indeterminate, nil, nil
		}
	}
	for i := 1; i < len(order1); i++ {
		if c1[order1[i].ID()] == c1[order1[i-1].ID()] {
			return Indeterminate, nil, nil
		}
	}

	mapping := make(map[core.Node]core.Node, len(order1))
	for i := range order1 {
		mapping[order1[i]] = order2[i]
	}
	return Isomorphic, mapping, nil
}

func sortByColor(nodes []core.Node, c map[int64]uint64) []core.Node {
	out := make([]core.Node, len(nodes))
	copy(out, nodes)
	sort.Slice(out, func(i, j int) bool { return c[out[i].ID()] < c[out[j].ID()] })
	return out
}
