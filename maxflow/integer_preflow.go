// SPDX-License-Identifier: MIT

package maxflow

import (
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/structures"
)

// IntegerPreflow is a Goldberg-Tarjan push-relabel max-flow run. An
// undirected edge of capacity c is modeled as two opposing residual arcs
// each of capacity c (flow may cross it in either direction up to c); a
// directed arc of capacity c starts with residual c forward and 0
// backward, the backward residual growing as flow is pushed and pulled
// back.
//
// Labels follow the textbook "distance to sink" convention: the source
// starts at NodeCount, every other node at 0, and an arc (u,v) is
// admissible when residual(u,v) > 0 and height[u] == height[v]+1 — flow
// is pushed downhill by exactly one level at a time. A stalled node
// relabels to one more than the smallest label any residual neighbor
// holds, which is the unique minimal increase that restores an
// admissible arc.
type IntegerPreflow struct {
	source, sink int64
	residual     map[int64]map[int64]int64
	neighbors    map[int64][]int64
	height       map[int64]int
	excess       map[int64]int64
	active       *structures.IndexedPriorityQueue
	cur          map[int64]int

	FlowSize int64
}

// NewIntegerPreflow builds the residual network from g and capacity, and
// runs push-relabel to completion. Returns ErrSourceNotFound/
// ErrSinkNotFound if either endpoint is absent, or ErrCapacityOverflow if
// the source's outgoing capacities cannot be summed in an int64.
func NewIntegerPreflow(g core.Graph, source, sink core.Node, capacity CapacityFunc) (*IntegerPreflow, error) {
	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasNode(sink) {
		return nil, ErrSinkNotFound
	}

	p := &IntegerPreflow{
		source:    source.ID(),
		sink:      sink.ID(),
		residual:  make(map[int64]map[int64]int64),
		neighbors: make(map[int64][]int64),
		height:    make(map[int64]int),
		excess:    make(map[int64]int64),
		active:    structures.NewIndexedPriorityQueue(),
		cur:       make(map[int64]int),
	}
	for it := g.Nodes(); it.Next(); {
		n := it.Node()
		p.residual[n.ID()] = make(map[int64]int64)
	}

	var sourceOutSum int64
	for it := g.Arcs(core.All); it.Next(); {
		a := it.Arc()
		u, v, c := g.U(a), g.V(a), capacity(a)
		p.link(u.ID(), v.ID(), c)
		if g.IsEdge(a) {
			p.link(v.ID(), u.ID(), c)
		} else {
			p.link(v.ID(), u.ID(), 0)
		}
		if u == source {
			next := sourceOutSum + c
			if next < sourceOutSum {
				return nil, ErrCapacityOverflow
			}
			sourceOutSum = next
		}
	}

	p.initialize(len(core.NodesOf(g.Nodes())))
	p.run()
	return p, nil
}

func (p *IntegerPreflow) link(u, v int64, c int64) {
	if _, ok := p.residual[u][v]; !ok {
		p.neighbors[u] = append(p.neighbors[u], v)
	}
	p.residual[u][v] += c
}

func (p *IntegerPreflow) initialize(n int) {
	for id := range p.residual {
		p.height[id] = 0
	}
	p.height[p.source] = n

	for _, v := range p.neighbors[p.source] {
		c := p.residual[p.source][v]
		if c <= 0 {
			continue
		}
		p.residual[p.source][v] = 0
		p.residual[v][p.source] += c
		p.excess[v] += c
		p.excess[p.source] -= c
		if v != p.source && v != p.sink && p.excess[v] > 0 {
			p.active.Push(v, -float64(p.height[v]))
		}
	}
}

func (p *IntegerPreflow) run() {
	for p.active.Len() > 0 {
		id, _ := p.active.Pop()
		p.discharge(id)
	}
	p.FlowSize = -p.excess[p.source]
}

func (p *IntegerPreflow) discharge(u int64) {
	for p.excess[u] > 0 {
		nbrs := p.neighbors[u]
		if p.cur[u] >= len(nbrs) {
			p.relabel(u)
			p.cur[u] = 0
			continue
		}
		v := nbrs[p.cur[u]]
		if p.residual[u][v] > 0 && p.height[u] == p.height[v]+1 {
			p.push(u, v)
		} else {
			p.cur[u]++
		}
	}
}

func (p *IntegerPreflow) push(u, v int64) {
	delta := p.excess[u]
	if r := p.residual[u][v]; r < delta {
		delta = r
	}
	p.residual[u][v] -= delta
	p.residual[v][u] += delta
	p.excess[u] -= delta
	p.excess[v] += delta
	if v != p.source && v != p.sink && p.excess[v] > 0 {
		p.active.Push(v, -float64(p.height[v]))
	}
}

func (p *IntegerPreflow) relabel(u int64) {
	best := 1 << 62
	for _, v := range p.neighbors[u] {
		if p.residual[u][v] > 0 && p.height[v] < best {
			best = p.height[v]
		}
	}
	p.height[u] = best + 1
}
