// SPDX-License-Identifier: MIT

package shortpath

import (
	"math"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/traversal"
)

// BFSResult reports unit-cost shortest distances, as produced by a
// breadth-first search: semantically Dijkstra with every arc cost fixed at 1.
type BFSResult struct {
	*traversal.Result
}

// Dist returns n's distance in arc-hops from the nearest root, or +Inf if
// unreached.
func (r *BFSResult) Dist(n core.Node) float64 {
	if d, ok := r.Depth[n.ID()]; ok {
		return float64(d)
	}
	return math.Inf(1)
}

// RunBFS computes unit-cost shortest paths from roots (or every node, in
// enumeration order, if none given).
func RunBFS(g core.Graph, roots ...core.Node) (*BFSResult, error) {
	opts := []traversal.Option{traversal.WithFilter(core.Forward)}
	if len(roots) > 0 {
		opts = append(opts, traversal.WithRoots(roots...))
	}
	res, err := traversal.RunBFS(g, opts...)
	if err != nil {
		return nil, err
	}
	return &BFSResult{Result: res}, nil
}
