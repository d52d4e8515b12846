// SPDX-License-Identifier: MIT

// Package maxflow computes maximum flow via Goldberg-Tarjan push-relabel:
// IntegerPreflow operates directly on integer arc capacities, and Preflow
// wraps it for real-valued capacities via a bottleneck bound and
// power-of-two fixed-point scaling.
package maxflow

import (
	"errors"

	"github.com/katalvlaran/graphkit/core"
)

// ErrSourceNotFound and ErrSinkNotFound are returned when source or sink is
// absent from the graph.
var (
	ErrSourceNotFound = errors.New("maxflow: source not found")
	ErrSinkNotFound   = errors.New("maxflow: sink not found")
)

// ErrCapacityOverflow is returned when the sum of the source's outgoing
// capacities does not fit in a signed 64-bit integer, which IntegerPreflow
// requires for exactness.
var ErrCapacityOverflow = errors.New("maxflow: source capacity sum overflows int64")

// CapacityFunc assigns an integer capacity to an arc, for IntegerPreflow.
type CapacityFunc func(a core.Arc) int64

// RealCapacityFunc assigns a real-valued capacity to an arc, for Preflow.
type RealCapacityFunc func(a core.Arc) float64
