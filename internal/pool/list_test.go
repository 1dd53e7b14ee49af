package pool

import (
	"context"
	"testing"

	"microbench/internal/benchmark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values[T any](l *List[T]) []T {
	var out []T
	for n := l.Front(); n != nil; n = n.Next() {
		out = append(out, n.Value)
	}
	return out
}

func TestList(t *testing.T) {
	allocators := map[string]Allocator[int]{
		"pool":      NewNodePool[int](2, 4),
		"native":    NativeAllocator[int]{},
		"sync_pool": NewSyncPoolAllocator[int](),
	}

	for name, alloc := range allocators {
		t.Run(name, func(t *testing.T) {
			l := NewList(alloc)
			assert.Zero(t, l.Len())
			assert.Nil(t, l.Front())

			for i := 1; i <= 5; i++ {
				l.PushBack(i)
			}
			assert.Equal(t, 5, l.Len())
			assert.Equal(t, []int{1, 2, 3, 4, 5}, values(l))
			assert.Equal(t, 4, l.tail.prev.Value)

			l.Clear()
			assert.Zero(t, l.Len())
			assert.Nil(t, l.Front())

			l.PushBack(7)
			assert.Equal(t, []int{7}, values(l))
		})
	}
}

func TestList_ClearReturnsNodesToPool(t *testing.T) {
	p := NewNodePool[int](4, 4)
	l := NewList[int](p)
	for i := 0; i < 6; i++ {
		l.PushBack(i)
	}
	l.Clear()

	st := p.Stats()
	assert.Equal(t, 2, st.Chunks)
	assert.Equal(t, 6, st.Free)

	for i := 0; i < 6; i++ {
		l.PushBack(i)
	}
	assert.Equal(t, 2, p.Stats().Chunks)
	assert.Zero(t, p.Stats().Free)
}

func TestSuite(t *testing.T) {
	trials := Suite(Config{Count: 1000, NextSize: 64, MaxSize: 128})
	require.Len(t, trials, 3)
	assert.Equal(t, FastPoolAllocator, trials[0].Name)
	assert.Equal(t, Native, trials[1].Name)
	assert.Equal(t, SyncPool, trials[2].Name)

	h := benchmark.NewHarness(benchmark.WithGarbageCollection(true))
	report, err := h.Run(context.Background(), "alloc", trials)
	require.NoError(t, err)
	assert.Len(t, report.Results, 3)
	for _, r := range report.Results {
		assert.Equal(t, int64(1), r.Iterations)
	}
}

func TestSuite_TeardownPurgesPool(t *testing.T) {
	p := NewNodePool[int](8, 8)
	tr := listTrial("pool", 100, p)

	require.NoError(t, tr.Setup())
	require.NoError(t, tr.Op())
	assert.Equal(t, 13, p.Stats().Chunks)

	require.NoError(t, tr.Teardown())
	assert.Equal(t, Stats{}, p.Stats())
}
