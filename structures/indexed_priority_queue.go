// SPDX-License-Identifier: MIT

package structures

// IndexedPriorityQueue is a binary min-heap keyed by an external int64 key,
// supporting decrease-key by key lookup in O(log n). An auxiliary map from
// key to heap slot index is folded into the queue itself (see spec design
// note: "fold this into the queue structure rather than maintaining two
// containers at the call site"), so callers never juggle a parallel index.
//
// Ties in priority break by insertion order: among equal priorities the
// entry pushed earlier is popped first, matching the default tie-break the
// rest of this library's algorithms assume for deterministic replay.
type IndexedPriorityQueue struct {
	heap     []int64           // keys, in heap order
	pos      map[int64]int     // key -> index into heap
	priority map[int64]float64 // key -> current priority
	seq      map[int64]uint64  // key -> insertion sequence, for tie-break
	clock    uint64
}

// NewIndexedPriorityQueue returns an empty queue.
func NewIndexedPriorityQueue() *IndexedPriorityQueue {
	return &IndexedPriorityQueue{
		pos:      make(map[int64]int),
		priority: make(map[int64]float64),
		seq:      make(map[int64]uint64),
	}
}

// Len returns the number of keys currently queued.
func (q *IndexedPriorityQueue) Len() int { return len(q.heap) }

// Contains reports whether key is currently queued.
func (q *IndexedPriorityQueue) Contains(key int64) bool {
	_, ok := q.pos[key]
	return ok
}

// Push inserts key with the given priority. Pushing a key already present is
// equivalent to DecreaseKey/IncreaseKey as appropriate (it does not error).
//
// Complexity: O(log n).
func (q *IndexedPriorityQueue) Push(key int64, priority float64) {
	if i, ok := q.pos[key]; ok {
		old := q.priority[key]
		q.priority[key] = priority
		if priority < old {
			q.siftUp(i)
		} else if priority > old {
			q.siftDown(i)
		}
		return
	}
	q.heap = append(q.heap, key)
	q.pos[key] = len(q.heap) - 1
	q.priority[key] = priority
	q.seq[key] = q.clock
	q.clock++
	q.siftUp(len(q.heap) - 1)
}

// DecreaseKey lowers key's priority. It is a no-op if newPriority is not
// strictly lower than the current priority, and panics if key is absent —
// callers are expected to check Contains first when that is meaningful.
//
// Complexity: O(log n).
func (q *IndexedPriorityQueue) DecreaseKey(key int64, newPriority float64) {
	i, ok := q.pos[key]
	if !ok {
		panic("structures: DecreaseKey on absent key")
	}
	if newPriority >= q.priority[key] {
		return
	}
	q.priority[key] = newPriority
	q.siftUp(i)
}

// Pop removes and returns the key with the smallest priority.
//
// Complexity: O(log n).
func (q *IndexedPriorityQueue) Pop() (key int64, priority float64) {
	key = q.heap[0]
	priority = q.priority[key]
	last := len(q.heap) - 1
	q.swap(0, last)
	q.heap = q.heap[:last]
	delete(q.pos, key)
	delete(q.priority, key)
	delete(q.seq, key)
	if last > 0 {
		q.siftDown(0)
	}
	return key, priority
}

// Peek returns the smallest-priority key without removing it.
func (q *IndexedPriorityQueue) Peek() (key int64, priority float64) {
	key = q.heap[0]
	return key, q.priority[key]
}

// Priority returns the current priority of key and whether key is queued.
func (q *IndexedPriorityQueue) Priority(key int64) (float64, bool) {
	p, ok := q.priority[key]
	return p, ok
}

func (q *IndexedPriorityQueue) less(i, j int) bool {
	ki, kj := q.heap[i], q.heap[j]
	pi, pj := q.priority[ki], q.priority[kj]
	if pi != pj {
		return pi < pj
	}
	return q.seq[ki] < q.seq[kj]
}

func (q *IndexedPriorityQueue) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i]] = i
	q.pos[q.heap[j]] = j
}

func (q *IndexedPriorityQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *IndexedPriorityQueue) siftDown(i int) {
	n := len(q.heap)
	for {
		left, right, smallest := 2*i+1, 2*i+2, i
		if left < n && q.less(left, smallest) {
			smallest = left
		}
		if right < n && q.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			break
		}
		q.swap(i, smallest)
		i = smallest
	}
}
