// SPDX-License-Identifier: MIT

// Package views provides non-owning adapters over a core.Graph: Subgraph,
// ContractedGraph, ReverseGraph, RedirectedGraph, UndirectedGraph,
// Supergraph, Path and Matching. Every adapter implements core.Graph itself,
// so views compose — Subgraph(ContractedGraph(Supergraph(g))) is a valid
// core.Graph an algorithm can consume without knowing it is layered.
//
// None of these types mutate the graph they wrap. Supergraph, Path and
// Matching own additional state layered on top (an owned node/arc set, a
// walk, an alternating-arc set) but never write through to the underlying
// graph's own storage.
package views

import "github.com/katalvlaran/graphkit/core"

// filterByOther drains it and keeps only arcs whose far endpoint (from u's
// perspective, via core.Other against g) equals v. Used to implement
// ArcsBetween in terms of a view's own ArcsAt, so the endpoint-reinterpreting
// logic of each view (Reverse, Redirected, Contracted, ...) only has to live
// in one place (U/V/ArcsAt), not be duplicated for the two-endpoint query.
func filterByOther(g core.Graph, it core.ArcIterator, u, v core.Node) core.ArcIterator {
	var out []core.Arc
	for it.Next() {
		a := it.Arc()
		if core.Other(g, a, u) == v {
			out = append(out, a)
		}
	}
	return core.NewArcSlice(out)
}

// countArcs drains it, counting its elements.
func countArcs(it core.ArcIterator) int {
	n := 0
	for it.Next() {
		n++
	}
	return n
}
