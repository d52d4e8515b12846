package structures_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/structures"
	"github.com/stretchr/testify/require"
)

func TestIdAllocator_MonotonicWithoutPredicate(t *testing.T) {
	a := structures.NewIdAllocator(nil)
	for want := int64(1); want <= 5; want++ {
		got, err := a.Allocate()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestIdAllocator_SkipsLiveIDs(t *testing.T) {
	live := map[int64]bool{2: true, 3: true, 5: true}
	a := structures.NewIdAllocator(func(id int64) bool { return live[id] })

	got, err := a.Allocate()
	require.NoError(t, err)
	require.Equal(t, int64(1), got)

	got, err = a.Allocate() // 2, 3 are live -> 4
	require.NoError(t, err)
	require.Equal(t, int64(4), got)

	got, err = a.Allocate() // 5 is live -> 6
	require.NoError(t, err)
	require.Equal(t, int64(6), got)
}

func TestIdAllocator_NotifyAdvancesCounter(t *testing.T) {
	a := structures.NewIdAllocator(nil)
	a.Notify(100)
	got, err := a.Allocate()
	require.NoError(t, err)
	require.Equal(t, int64(101), got)
}
