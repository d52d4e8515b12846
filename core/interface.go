package core

// NodeIterator is a restartable, finite Node sequence. Order is unspecified
// unless a concrete implementation documents otherwise. Call Next before the
// first Node call and after every subsequent one; Next returns false once
// exhausted. Reset rewinds to the start. Modeled on the Next/Reset shape
// common to iterator-style graph libraries in the wild (e.g. gonum's
// graph.Iterator), adapted to this package's Node/Arc handles.
type NodeIterator interface {
	Next() bool
	Node() Node
	Reset()
}

// ArcIterator is the Arc analogue of NodeIterator.
type ArcIterator interface {
	Next() bool
	Arc() Arc
	Reset()
}

// NodesOf eagerly drains a NodeIterator into a slice. Safe to call with nil.
func NodesOf(it NodeIterator) []Node {
	if it == nil {
		return nil
	}
	var out []Node
	for it.Next() {
		out = append(out, it.Node())
	}
	return out
}

// ArcsOf eagerly drains an ArcIterator into a slice. Safe to call with nil.
func ArcsOf(it ArcIterator) []Arc {
	if it == nil {
		return nil
	}
	var out []Arc
	for it.Next() {
		out = append(out, it.Arc())
	}
	return out
}

// Graph is the contract every concrete graph and every view adapter
// satisfies. Implementations never mutate on read methods; sequences
// returned by Nodes/Arcs are lazy but must be evaluated eagerly within a
// single call chain (no goroutines, no suspension).
type Graph interface {
	// U returns the first endpoint of a.
	U(a Arc) Node
	// V returns the second endpoint of a.
	V(a Arc) Node
	// IsEdge reports whether a is undirected.
	IsEdge(a Arc) bool

	// Nodes enumerates every node in the graph.
	Nodes() NodeIterator
	// Arcs enumerates arcs matching filter.
	Arcs(filter ArcFilter) ArcIterator
	// ArcsAt enumerates arcs incident to u matching filter.
	ArcsAt(u Node, filter ArcFilter) ArcIterator
	// ArcsBetween enumerates arcs with endpoints u and v (order-insensitive
	// for edges) matching filter.
	ArcsBetween(u, v Node, filter ArcFilter) ArcIterator

	// NodeCount returns the number of nodes.
	NodeCount() int
	// ArcCount returns the number of arcs matching filter.
	ArcCount(filter ArcFilter) int
	// ArcCountAt returns the number of arcs incident to u matching filter.
	ArcCountAt(u Node, filter ArcFilter) int
	// ArcCountBetween returns the number of arcs between u and v matching filter.
	ArcCountBetween(u, v Node, filter ArcFilter) int

	// HasNode reports whether n is a live node of the graph.
	HasNode(n Node) bool
	// HasArc reports whether a is a live arc of the graph.
	HasArc(a Arc) bool
}

// Other returns the endpoint of a that is not node: V(a) if U(a) == node,
// else U(a). node must be one of a's endpoints (never returns InvalidNode
// for a live arc incident to node).
func Other(g Graph, a Arc, node Node) Node {
	if g.U(a) == node {
		return g.V(a)
	}
	return g.U(a)
}

// Buildable is a Graph that additionally supports insertion.
type Buildable interface {
	Graph
	// AddNode allocates and inserts a fresh node, consulting the graph's id
	// allocator.
	AddNode() Node
	// AddNodeWithID inserts a node with the given id. Returns
	// ErrDuplicateNodeID if id is already live, ErrInvalidHandle if id == 0.
	AddNodeWithID(id int64) (Node, error)
	// AddArc inserts an arc u->v (or the edge {u,v} when d == Undirected).
	// Returns ErrEndpointNotInGraph if either endpoint is absent.
	AddArc(u, v Node, d Directedness) (Arc, error)
}

// Destructible is a Buildable that additionally supports removal.
type Destructible interface {
	Buildable
	// DeleteNode removes n and every arc incident to it.
	DeleteNode(n Node) error
	// DeleteArc removes a.
	DeleteArc(a Arc) error
}
