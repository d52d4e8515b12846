// SPDX-License-Identifier: MIT

// Package simplex computes a minimum-cost circulation by the network
// simplex method: a two-phase primal pivot over a spanning tree of an
// auxiliary graph, entering and leaving arcs chosen by round-robin
// scan and tree-path search, node potentials kept consistent with the
// current basis.
package simplex

import (
	"errors"

	"github.com/katalvlaran/graphkit/core"
)

// ErrGraphNil is returned when the input graph is nil.
var ErrGraphNil = errors.New("simplex: graph is nil")

// ErrBoundsInverted is returned when an arc's lower bound exceeds its
// upper bound.
var ErrBoundsInverted = errors.New("simplex: arc lower bound exceeds upper bound")

// CostFunc returns the per-unit cost of arc a.
type CostFunc func(a core.Arc) float64

// BoundsFunc returns the flow bounds [lower, upper] for arc a. lower may be
// math.Inf(-1) for an unbounded-below (free) arc; upper may be
// math.Inf(1) for an uncapacitated arc.
type BoundsFunc func(a core.Arc) (lower, upper float64)

// SupplyFunc returns node n's supply: positive if n produces flow,
// negative if it consumes flow, zero for a pure transshipment node. Over
// a feasible instance, supplies sum to zero.
type SupplyFunc func(n core.Node) float64

// Status is the terminal state of a NetworkSimplex run.
type Status int

const (
	// FirstPhase and SecondPhase are the states of a run in progress;
	// NewNetworkSimplex returns with one of them only when the
	// WithMaxIterations cap stopped that phase, and otherwise with one of
	// the remaining three states.
	FirstPhase Status = iota
	SecondPhase
	// Optimal: a minimum-cost circulation was found.
	Optimal
	// Infeasible: no circulation satisfies the supplies and bounds.
	Infeasible
	// Unbounded: the objective can be decreased without limit.
	Unbounded
)

func (s Status) String() string {
	switch s {
	case FirstPhase:
		return "FirstPhase"
	case SecondPhase:
		return "SecondPhase"
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	default:
		return "Unknown"
	}
}

// Option configures a NetworkSimplex run.
type Option func(*config)

type config struct {
	maxIterations int
}

func defaultConfig() config {
	return config{maxIterations: 0} // 0 means "derive from graph size"
}

// WithMaxIterations caps the number of pivots per phase. Exceeding the cap
// without reaching an Optimal/Infeasible/Unbounded state stops the run at
// its current (suboptimal) basis. Defaults to 1000 times (the auxiliary
// graph's arc count + 1).
func WithMaxIterations(n int) Option {
	return func(c *config) { c.maxIterations = n }
}
