// SPDX-License-Identifier: MIT

// Package matching computes bipartite matchings: BipartiteMaximumMatching
// by alternating-path augmentation (Kuhn's algorithm), and
// BipartiteMinimumCostMatching by reducing to a min-cost circulation
// solved with simplex.NetworkSimplex.
package matching

import (
	"errors"

	"github.com/katalvlaran/graphkit/core"
)

// ErrGraphNil is returned when the input graph is nil.
var ErrGraphNil = errors.New("matching: graph is nil")

// ErrNotBipartiteArc is returned by Add when the given arc does not
// connect one red node and one blue node.
var ErrNotBipartiteArc = errors.New("matching: arc does not connect a red node to a blue node")

// ErrAlreadyMatched is returned by Add when either endpoint of the given
// arc is already matched.
var ErrAlreadyMatched = errors.New("matching: endpoint already matched")

// ErrNoFeasibleMatching is returned by BipartiteMinimumCostMatching when
// no matching of size in [minSize, maxSize] exists.
var ErrNoFeasibleMatching = errors.New("matching: no matching satisfies the requested size bounds")

// ColorFunc partitions nodes into red (true) and blue (false) for a
// bipartite matching.
type ColorFunc func(n core.Node) bool
