// SPDX-License-Identifier: MIT

package simplex

import (
	"math"

	"github.com/katalvlaran/graphkit/core"
)

// runPhase pivots until no eligible entering arc remains or the iteration
// cap for this phase is reached. phase only affects how many iterations
// are attributed to FirstPhase vs SecondPhase bookkeeping.
func (ns *NetworkSimplex) runPhase(phase Status) {
	budget := ns.maxIter
	for i := 0; i < budget; i++ {
		enter, rc, ok := ns.selectEntering()
		if !ok {
			return
		}
		if !ns.pivot(enter, rc) {
			ns.status = Unbounded
			return
		}
		ns.iterations++
	}
}

// reducedCost computes c(a) - (pi(V(a)) - pi(U(a))).
func (ns *NetworkSimplex) reducedCost(a core.Arc) float64 {
	u, v := ns.g.U(a), ns.g.V(a)
	return ns.arcCost[a.ID()] - (ns.potential[v.ID()] - ns.potential[u.ID()])
}

// eligible reports whether non-tree arc a may enter the basis, and its
// reduced cost.
func (ns *NetworkSimplex) eligible(a core.Arc) (bool, float64) {
	rc := ns.reducedCost(a)
	if math.IsInf(ns.lower[a.ID()], -1) {
		return rc < -ns.eps, rc
	}
	if ns.atUpper[a.ID()] {
		return rc > ns.eps, rc
	}
	return rc < -ns.eps, rc
}

// selectEntering scans allArcs round-robin from scanCursor, skipping tree
// arcs, and returns the first eligible non-tree arc found.
func (ns *NetworkSimplex) selectEntering() (core.Arc, float64, bool) {
	n := len(ns.allArcs)
	for i := 0; i < n; i++ {
		idx := (ns.scanCursor + i) % n
		a := ns.allArcs[idx]
		if ns.inTree[a.ID()] {
			continue
		}
		if ok, rc := ns.eligible(a); ok {
			ns.scanCursor = (idx + 1) % n
			return a, rc, true
		}
	}
	return core.Arc{}, 0, false
}

// cycleArc is one tree arc on the fundamental cycle formed by the
// entering arc, tagged with its effective sign: +1 if its flow increases
// together with the entering arc's improving direction, -1 if it
// decreases.
type cycleArc struct {
	arc  core.Arc
	sign int
}

// fundamentalCycle walks from u and v up to their lowest common tree
// ancestor, returning the cycle's tree arcs in sign-tagged form and the
// ancestor itself.
func (ns *NetworkSimplex) fundamentalCycle(u, v core.Node) ([]cycleArc, core.Node) {
	var fromU, fromV []core.Node
	cu, cv := u, v
	for ns.depth[cu.ID()] > ns.depth[cv.ID()] {
		fromU = append(fromU, cu)
		cu = ns.parent[cu.ID()]
	}
	for ns.depth[cv.ID()] > ns.depth[cu.ID()] {
		fromV = append(fromV, cv)
		cv = ns.parent[cv.ID()]
	}
	for cu.ID() != cv.ID() {
		fromU = append(fromU, cu)
		fromV = append(fromV, cv)
		cu = ns.parent[cu.ID()]
		cv = ns.parent[cv.ID()]
	}
	lca := cu

	var cycle []cycleArc
	// v-branch: traversal direction is child -> parent (up to lca).
	for _, x := range fromV {
		a := ns.parentArc[x.ID()]
		sign := -1
		if ns.g.U(a) == x {
			sign = +1
		}
		cycle = append(cycle, cycleArc{arc: a, sign: sign})
	}
	// u-branch: traversal direction is parent -> child (down from lca).
	for i := len(fromU) - 1; i >= 0; i-- {
		x := fromU[i]
		a := ns.parentArc[x.ID()]
		sign := -1
		if ns.g.V(a) == x {
			sign = +1
		}
		cycle = append(cycle, cycleArc{arc: a, sign: sign})
	}
	return cycle, lca
}

// pivot performs one simplex step: enter brings arc enter into the basis,
// moving flow around its fundamental cycle until some arc (possibly enter
// itself) reaches a bound. Returns false if the pivot is unbounded.
func (ns *NetworkSimplex) pivot(enter core.Arc, enterRC float64) bool {
	u, v := ns.g.U(enter), ns.g.V(enter)
	dir := +1.0 // entering arc increases from its lower bound
	if ns.atUpper[enter.ID()] {
		dir = -1.0 // entering arc decreases from its upper bound
	}

	cycle, _ := ns.fundamentalCycle(u, v)

	type limiter struct {
		arc       core.Arc
		effective int
		limit     float64
	}
	limits := make([]limiter, 0, len(cycle)+1)

	enterLimit := math.Inf(1)
	if dir > 0 {
		enterLimit = ns.upper[enter.ID()] - ns.flow[enter.ID()]
	} else {
		enterLimit = ns.flow[enter.ID()] - ns.lower[enter.ID()]
	}
	limits = append(limits, limiter{arc: enter, effective: +1, limit: enterLimit})

	for _, ca := range cycle {
		effective := ca.sign
		if dir < 0 {
			effective = -effective
		}
		var lim float64
		if effective > 0 {
			lim = ns.upper[ca.arc.ID()] - ns.flow[ca.arc.ID()]
		} else {
			lim = ns.flow[ca.arc.ID()] - ns.lower[ca.arc.ID()]
		}
		limits = append(limits, limiter{arc: ca.arc, effective: effective, limit: lim})
	}

	delta := math.Inf(1)
	leavingIdx := -1
	for i, l := range limits {
		if l.limit < delta {
			delta = l.limit
			leavingIdx = i
		}
	}
	if math.IsInf(delta, 1) {
		return false
	}
	if delta < 0 {
		delta = 0
	}

	ns.flow[enter.ID()] += dir * delta
	for _, ca := range cycle {
		effective := ca.sign
		if dir < 0 {
			effective = -effective
		}
		ns.flow[ca.arc.ID()] += float64(effective) * delta
	}

	leaving := limits[leavingIdx].arc
	leavingEffective := limits[leavingIdx].effective

	if leaving == enter {
		// Degenerate: entering arc immediately hits its opposite bound
		// without ever becoming basic. Flip its resting side and stop.
		ns.atUpper[enter.ID()] = !ns.atUpper[enter.ID()]
		return true
	}

	ns.atUpper[leaving.ID()] = leavingEffective > 0
	ns.replaceTreeArc(leaving, enter, u, v)
	ns.inTree[leaving.ID()] = false
	ns.inTree[enter.ID()] = true
	ns.computeTree()
	return true
}

// replaceTreeArc removes leaving from the spanning tree and re-attaches
// the subtree it was supporting using enter (between u and v) instead,
// reversing parent pointers along the path between enter's T2-side
// endpoint and leaving's child-side endpoint.
func (ns *NetworkSimplex) replaceTreeArc(leaving, enter core.Arc, u, v core.Node) {
	lu, lv := ns.g.U(leaving), ns.g.V(leaving)
	var child core.Node
	if ns.parent[lu.ID()] == lv {
		child = lu
	} else {
		child = lv
	}

	inSubtree := func(n core.Node) bool {
		cur := n
		for cur.ID() != ns.root.ID() {
			if cur.ID() == child.ID() {
				return true
			}
			cur = ns.parent[cur.ID()]
		}
		return cur.ID() == child.ID()
	}

	var newChild, newParentSide core.Node
	if inSubtree(u) {
		newChild, newParentSide = u, v
	} else {
		newChild, newParentSide = v, u
	}

	path := []core.Node{newChild}
	cur := newChild
	for cur.ID() != child.ID() {
		cur = ns.parent[cur.ID()]
		path = append(path, cur)
	}

	arcsAlongPath := make([]core.Arc, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		arcsAlongPath[i] = ns.parentArc[path[i].ID()]
	}

	for i := len(path) - 2; i >= 0; i-- {
		ns.setParent(path[i+1], path[i], arcsAlongPath[i])
	}
	ns.setParent(path[0], newParentSide, enter)
}

func (ns *NetworkSimplex) setParent(n, newParent core.Node, arc core.Arc) {
	if old, ok := ns.parent[n.ID()]; ok && old.Valid() {
		ns.children[old.ID()] = removeNode(ns.children[old.ID()], n)
	}
	ns.parent[n.ID()] = newParent
	ns.parentArc[n.ID()] = arc
	ns.children[newParent.ID()] = append(ns.children[newParent.ID()], n)
}

func removeNode(list []core.Node, n core.Node) []core.Node {
	for i, x := range list {
		if x.ID() == n.ID() {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// computeTree recomputes depth and potential for every node via BFS from
// root over the current children adjacency. Simplifies the textbook
// subtree-delta potential update to a full recompute each pivot, which is
// the same O(n) cost and avoids tracking which side of a pivot's split
// fell away from the root.
func (ns *NetworkSimplex) computeTree() {
	ns.depth[ns.root.ID()] = 0
	ns.potential[ns.root.ID()] = 0

	queue := []core.Node{ns.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, c := range ns.children[n.ID()] {
			a := ns.parentArc[c.ID()]
			ns.depth[c.ID()] = ns.depth[n.ID()] + 1
			if ns.g.U(a) == c {
				// arc points child -> parent: pi(parent) = pi(child) + cost(a)
				ns.potential[c.ID()] = ns.potential[n.ID()] - ns.arcCost[a.ID()]
			} else {
				// arc points parent -> child: pi(child) = pi(parent) + cost(a)
				ns.potential[c.ID()] = ns.potential[n.ID()] + ns.arcCost[a.ID()]
			}
			queue = append(queue, c)
		}
	}
}
