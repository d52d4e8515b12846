package core

// sliceNodes is the canonical restartable NodeIterator: every concrete graph
// and every view in this module materializes its enumeration into a slice
// eagerly (within the call that produced the iterator) and hands it back
// wrapped in this cursor, matching the "lazy sequence, eagerly evaluated
// within a single call chain" rule in the concurrency model.
type sliceNodes struct {
	items []Node
	i     int
}

// NewNodeSlice wraps a materialized []Node as a NodeIterator. Exported so
// view adapters outside this package can build conforming iterators without
// reimplementing the cursor.
func NewNodeSlice(items []Node) NodeIterator { return &sliceNodes{items: items, i: -1} }

func (it *sliceNodes) Next() bool {
	it.i++
	return it.i < len(it.items)
}
func (it *sliceNodes) Node() Node { return it.items[it.i] }
func (it *sliceNodes) Reset()     { it.i = -1 }

type sliceArcs struct {
	items []Arc
	i     int
}

// NewArcSlice wraps a materialized []Arc as an ArcIterator.
func NewArcSlice(items []Arc) ArcIterator { return &sliceArcs{items: items, i: -1} }

func (it *sliceArcs) Next() bool {
	it.i++
	return it.i < len(it.items)
}
func (it *sliceArcs) Arc() Arc { return it.items[it.i] }
func (it *sliceArcs) Reset()   { it.i = -1 }
