// SPDX-License-Identifier: MIT

// Package connectivity computes the structural decompositions of a graph
// that fall out of a single DFS pass: connected components, strongly
// connected components, bridge- and cutvertex-based decompositions,
// bipartitions, and topological order. Every algorithm here is a thin
// consumer of the traversal package's Run and RunLowpoint.
package connectivity

import "errors"

// ErrGraphNil is returned when a nil core.Graph is passed to an algorithm
// in this package.
var ErrGraphNil = errors.New("connectivity: graph is nil")

// ErrCycleDetected is returned by TopologicalOrder when the graph contains
// a directed cycle.
var ErrCycleDetected = errors.New("connectivity: cycle detected")

// ErrNotBipartite is returned by Bipartition when the graph contains an
// odd cycle.
var ErrNotBipartite = errors.New("connectivity: graph is not bipartite")
