// SPDX-License-Identifier: MIT

// Package structures provides the supporting data structures the algorithm
// kernels are built on: a disjoint-set with equivalence-class enumeration,
// an id allocator that skips ids already live in a host graph, and an
// indexed priority queue supporting decrease-key by external key.
//
// None of these types reference a host graph by pointer; each is handed the
// predicates or comparators it needs at construction, so ownership stays
// one-directional (caller -> structure, never back).
package structures

import "errors"

// ErrIDSpaceExhausted indicates the 64-bit id space has been fully consulted
// without finding a free id. Id 0 is never allocated; it is reserved as the invalid sentinel
// by callers such as core.Node/core.Arc.
var ErrIDSpaceExhausted = errors.New("structures: id space exhausted")

// IdAllocator generates ids starting at 1, skipping any id that isLive
// already reports as in use. It owns nothing but a counter and the supplied
// predicate: callers that want allocation to respect a host graph pass that
// graph's liveness check as isLive, rather than IdAllocator holding a
// back-pointer to the graph.
type IdAllocator struct {
	next   int64
	isLive func(id int64) bool
}

// NewIdAllocator constructs an allocator. isLive may be nil, in which case
// every id starting at 1 is considered free (plain monotonic counter).
func NewIdAllocator(isLive func(id int64) bool) *IdAllocator {
	return &IdAllocator{next: 1, isLive: isLive}
}

// Allocate returns the next id not reported live by isLive. Ids are tried in
// increasing order starting from the allocator's internal counter, which
// always advances (an id handed out once is never revisited even if later
// freed — that is the caller's AddNodeWithID liveness predicate's job to
// reject explicit reuse, not this allocator's).
//
// Complexity: O(k) where k is the number of consecutive already-live ids
// skipped; amortized O(1) for the common case of a mostly-empty id space.
func (a *IdAllocator) Allocate() (int64, error) {
	for {
		if a.next <= 0 {
			// Wrapped past math.MaxInt64: the id space is saturated.
			return 0, ErrIDSpaceExhausted
		}
		id := a.next
		a.next++
		if a.isLive == nil || !a.isLive(id) {
			return id, nil
		}
	}
}

// Notify informs the allocator that id is now known to be in use (e.g. a
// caller inserted it explicitly via AddNodeWithID rather than through
// Allocate). It advances the internal counter past id so future Allocate
// calls do not waste time re-discovering it via isLive.
func (a *IdAllocator) Notify(id int64) {
	if id >= a.next {
		a.next = id + 1
	}
}
