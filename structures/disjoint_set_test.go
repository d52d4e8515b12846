package structures_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/graphkit/structures"
	"github.com/stretchr/testify/require"
)

func TestDisjointSet_SingletonClasses(t *testing.T) {
	ds := structures.NewDisjointSet(5)
	require.Equal(t, 5, ds.ClassCount())
	for i := 0; i < 5; i++ {
		require.Equal(t, i, ds.Find(i))
		require.Equal(t, []int{i}, ds.Members(i))
	}
}

func TestDisjointSet_UnionMergesAndEnumerates(t *testing.T) {
	ds := structures.NewDisjointSet(6)

	require.True(t, ds.Union(0, 1))
	require.True(t, ds.Union(1, 2))
	require.False(t, ds.Union(0, 2), "already unified, second union is a no-op")
	require.True(t, ds.Same(0, 2))
	require.Equal(t, 4, ds.ClassCount())

	members := ds.Members(0)
	sort.Ints(members)
	require.Equal(t, []int{0, 1, 2}, members)

	require.True(t, ds.Union(3, 4))
	members = ds.Members(3)
	sort.Ints(members)
	require.Equal(t, []int{3, 4}, members)

	require.False(t, ds.Same(0, 3))
}

func TestDisjointSet_UnionAll(t *testing.T) {
	const n = 50
	ds := structures.NewDisjointSet(n)
	for i := 1; i < n; i++ {
		require.True(t, ds.Union(0, i))
	}
	require.Equal(t, 1, ds.ClassCount())
	members := ds.Members(n / 2)
	require.Len(t, members, n)
}
