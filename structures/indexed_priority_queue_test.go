package structures_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/structures"
	"github.com/stretchr/testify/require"
)

func TestIndexedPriorityQueue_PopsInPriorityOrder(t *testing.T) {
	q := structures.NewIndexedPriorityQueue()
	q.Push(10, 5.0)
	q.Push(20, 1.0)
	q.Push(30, 3.0)
	require.Equal(t, 3, q.Len())

	k, p := q.Pop()
	require.Equal(t, int64(20), k)
	require.Equal(t, 1.0, p)

	k, _ = q.Pop()
	require.Equal(t, int64(30), k)

	k, _ = q.Pop()
	require.Equal(t, int64(10), k)

	require.Equal(t, 0, q.Len())
}

func TestIndexedPriorityQueue_DecreaseKeyReorders(t *testing.T) {
	q := structures.NewIndexedPriorityQueue()
	q.Push(1, 10.0)
	q.Push(2, 20.0)
	q.Push(3, 30.0)

	q.DecreaseKey(3, 1.0)
	k, p := q.Peek()
	require.Equal(t, int64(3), k)
	require.Equal(t, 1.0, p)

	// raising via DecreaseKey with a larger value is a no-op
	q.DecreaseKey(3, 50.0)
	k, _ = q.Peek()
	require.Equal(t, int64(3), k)
}

func TestIndexedPriorityQueue_TieBreakIsInsertionOrder(t *testing.T) {
	q := structures.NewIndexedPriorityQueue()
	q.Push(1, 5.0)
	q.Push(2, 5.0)
	q.Push(3, 5.0)

	k, _ := q.Pop()
	require.Equal(t, int64(1), k)
	k, _ = q.Pop()
	require.Equal(t, int64(2), k)
	k, _ = q.Pop()
	require.Equal(t, int64(3), k)
}

func TestIndexedPriorityQueue_PushExistingKeyActsAsReKey(t *testing.T) {
	q := structures.NewIndexedPriorityQueue()
	q.Push(1, 10.0)
	q.Push(1, 2.0)
	require.Equal(t, 1, q.Len())
	p, ok := q.Priority(1)
	require.True(t, ok)
	require.Equal(t, 2.0, p)
}
