// SPDX-License-Identifier: MIT

package simplex

import (
	"math"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/views"
)

// NetworkSimplex holds the basis (spanning tree, potentials, arc flows) of
// a min-cost circulation run over an auxiliary graph: the caller's graph
// plus one artificial node connected to every real node by a single
// artificial arc, oriented by the sign of that node's supply.
type NetworkSimplex struct {
	g      *views.Supergraph
	cost   CostFunc
	bounds BoundsFunc
	supply SupplyFunc
	cfg    config

	root core.Node

	realLower, realUpper map[int64]float64
	realCost             map[int64]float64
	isArtificial         map[int64]bool

	lower, upper map[int64]float64 // active-phase bounds (artificial arcs change between phases)
	arcCost      map[int64]float64 // active-phase cost
	flow         map[int64]float64
	atUpper      map[int64]bool

	parent    map[int64]core.Node
	parentArc map[int64]core.Arc
	children  map[int64][]core.Node
	depth     map[int64]int
	potential map[int64]float64
	inTree    map[int64]bool

	allArcs    []core.Arc
	scanCursor int
	eps        float64
	maxIter    int

	status     Status
	iterations int
}

// NewNetworkSimplex builds the auxiliary graph, constructs an initial
// feasible tree (the artificial star), and runs both simplex phases to
// completion (or until the iteration cap is hit). Returns ErrGraphNil if g
// is nil, ErrBoundsInverted if any real arc's lower bound exceeds its
// upper bound.
func NewNetworkSimplex(g core.Graph, cost CostFunc, bounds BoundsFunc, supply SupplyFunc, opts ...Option) (*NetworkSimplex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sg := views.NewSupergraph(g)
	root := sg.AddNode()

	ns := &NetworkSimplex{
		g:            sg,
		cost:         cost,
		bounds:       bounds,
		supply:       supply,
		cfg:          cfg,
		root:         root,
		realLower:    make(map[int64]float64),
		realUpper:    make(map[int64]float64),
		realCost:     make(map[int64]float64),
		isArtificial: make(map[int64]bool),
		lower:        make(map[int64]float64),
		upper:        make(map[int64]float64),
		arcCost:      make(map[int64]float64),
		flow:         make(map[int64]float64),
		atUpper:      make(map[int64]bool),
		parent:       make(map[int64]core.Node),
		parentArc:    make(map[int64]core.Arc),
		children:     make(map[int64][]core.Node),
		depth:        make(map[int64]int),
		potential:    make(map[int64]float64),
		inTree:       make(map[int64]bool),
		status:       FirstPhase,
	}

	var realCosts []float64
	for it := g.Arcs(core.All); it.Next(); {
		a := it.Arc()
		lo, hi := bounds(a)
		if lo > hi {
			return nil, ErrBoundsInverted
		}
		ns.realLower[a.ID()] = lo
		ns.realUpper[a.ID()] = hi
		c := cost(a)
		ns.realCost[a.ID()] = c
		realCosts = append(realCosts, c)
		ns.isArtificial[a.ID()] = false

		if lo > math.Inf(-1) {
			ns.flow[a.ID()] = lo
		} else {
			ns.flow[a.ID()] = 0
		}
		ns.atUpper[a.ID()] = false
	}
	ns.eps = computeEpsilon(realCosts)

	ns.depth[root.ID()] = 0
	ns.potential[root.ID()] = 0
	ns.parent[root.ID()] = core.InvalidNode

	nodes := core.NodesOf(g.Nodes())
	for _, n := range nodes {
		fixedOut := ns.fixedNetOutflow(g, n)
		target := supply(n) - fixedOut

		var art core.Arc
		var err error
		var artFlow float64
		if target >= 0 {
			art, err = sg.AddArc(n, root, core.Directed)
			artFlow = target
		} else {
			art, err = sg.AddArc(root, n, core.Directed)
			artFlow = -target
		}
		if err != nil {
			return nil, err
		}

		ns.isArtificial[art.ID()] = true
		ns.realCost[art.ID()] = 0
		ns.flow[art.ID()] = artFlow
		ns.lower[art.ID()] = 0
		ns.upper[art.ID()] = math.Inf(1)
		ns.arcCost[art.ID()] = 1 // phase one: penalize artificial flow
		ns.atUpper[art.ID()] = false

		ns.parent[n.ID()] = root
		ns.parentArc[n.ID()] = art
		ns.depth[n.ID()] = 1
		ns.inTree[art.ID()] = true
		ns.children[root.ID()] = append(ns.children[root.ID()], n)
	}

	for id, lo := range ns.realLower {
		ns.lower[id] = lo
		ns.upper[id] = ns.realUpper[id]
		ns.arcCost[id] = 0 // phase one: real arcs carry zero surrogate cost
	}

	ns.allArcs = core.ArcsOf(sg.Arcs(core.All))
	if ns.cfg.maxIterations > 0 {
		ns.maxIter = ns.cfg.maxIterations
	} else {
		ns.maxIter = 1000 * (len(ns.allArcs) + 1)
	}

	ns.computeTree()
	ns.runPhase(FirstPhase)
	if _, _, more := ns.selectEntering(); more {
		// The iteration cap stopped phase one before it finished.
		return ns, nil
	}

	if ns.phaseOneObjective() > ns.eps {
		ns.status = Infeasible
		return ns, nil
	}

	for id, real := range ns.isArtificial {
		if real {
			ns.arcCost[id] = 0
			ns.lower[id] = 0
			ns.upper[id] = 0
			if ns.flow[id] > ns.eps || ns.flow[id] < -ns.eps {
				ns.flow[id] = 0
			}
		} else {
			ns.arcCost[id] = ns.realCost[id]
		}
	}
	ns.computeTree()
	ns.status = SecondPhase
	ns.runPhase(SecondPhase)
	if ns.status == SecondPhase {
		if _, _, more := ns.selectEntering(); !more {
			ns.status = Optimal
		}
	}

	return ns, nil
}

// fixedNetOutflow sums, over every real arc incident to n, the outflow
// contribution of that arc's initial (lower-bound-resting) flow: positive
// if n is the arc's tail, negative if n is its head. Arcs are assumed
// directed, the normal case for a min-cost circulation network.
func (ns *NetworkSimplex) fixedNetOutflow(g core.Graph, n core.Node) float64 {
	var sum float64
	for it := g.ArcsAt(n, core.All); it.Next(); {
		a := it.Arc()
		lo, _ := ns.bounds(a)
		f := lo
		if math.IsInf(lo, -1) {
			f = 0
		}
		if g.U(a) == n {
			sum += f
		} else {
			sum -= f
		}
	}
	return sum
}

func computeEpsilon(costs []float64) float64 {
	min := math.Inf(1)
	for _, c := range costs {
		a := math.Abs(c)
		if a > 0 && a < min {
			min = a
		}
	}
	if math.IsInf(min, 1) {
		return 1e-12
	}
	return 1e-12 * min
}

// Status reports the run's terminal state.
func (ns *NetworkSimplex) Status() Status { return ns.status }

// Flow returns the flow currently assigned to arc a (0 if a is unknown to
// this run, e.g. an artificial arc id from a different run).
func (ns *NetworkSimplex) Flow(a core.Arc) float64 { return ns.flow[a.ID()] }

// Potential returns node n's potential in the current basis.
func (ns *NetworkSimplex) Potential(n core.Node) float64 { return ns.potential[n.ID()] }

// ObjectiveValue is the total real cost of the current flow (meaningful
// once Status is Optimal).
func (ns *NetworkSimplex) ObjectiveValue() float64 {
	var total float64
	for id, f := range ns.flow {
		if ns.isArtificial[id] {
			continue
		}
		total += ns.realCost[id] * f
	}
	return total
}

// Iterations returns the number of pivots performed across both phases.
func (ns *NetworkSimplex) Iterations() int { return ns.iterations }

func (ns *NetworkSimplex) phaseOneObjective() float64 {
	var total float64
	for id, f := range ns.flow {
		if ns.isArtificial[id] {
			total += f
		}
	}
	return total
}
