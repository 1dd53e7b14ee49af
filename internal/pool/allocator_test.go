package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodePool_ChunkGrowth(t *testing.T) {
	p := NewNodePool[int](4, 8)

	for i := 0; i < 4; i++ {
		p.Alloc()
	}
	assert.Equal(t, Stats{Chunks: 1, Capacity: 4}, p.Stats())

	p.Alloc() // second chunk: 8
	assert.Equal(t, Stats{Chunks: 2, Capacity: 12}, p.Stats())

	for i := 0; i < 8; i++ {
		p.Alloc()
	}
	// third chunk is capped at maxSize
	assert.Equal(t, Stats{Chunks: 3, Capacity: 20}, p.Stats())
}

func TestNodePool_Reuse(t *testing.T) {
	p := NewNodePool[string](2, 2)

	a := p.Alloc()
	a.Value = "a"
	b := p.Alloc()

	p.Free(a)
	assert.Equal(t, 1, p.Stats().Free)
	assert.Empty(t, a.Value)

	c := p.Alloc()
	assert.Same(t, a, c)
	assert.Nil(t, c.Next())
	assert.Zero(t, p.Stats().Free)
	assert.NotSame(t, b, c)
	assert.Equal(t, 1, p.Stats().Chunks)
}

func TestNodePool_Purge(t *testing.T) {
	p := NewNodePool[int](2, 16)
	for i := 0; i < 10; i++ {
		p.Free(p.Alloc())
		p.Alloc()
	}
	assert.NotZero(t, p.Stats().Chunks)

	p.Purge()
	assert.Equal(t, Stats{}, p.Stats())

	// Growth restarts from the initial chunk size.
	p.Alloc()
	assert.Equal(t, Stats{Chunks: 1, Capacity: 2}, p.Stats())
}

func TestNewNodePool_Defaults(t *testing.T) {
	p := NewNodePool[int](0, 0)
	p.Alloc()
	assert.Equal(t, DefaultNextSize, p.Stats().Capacity)

	p = NewNodePool[int](32, 8)
	assert.Equal(t, 32, p.maxSize)
}

func TestNativeAllocator(t *testing.T) {
	var a NativeAllocator[int]
	n := a.Alloc()
	n.Value = 3
	a.Free(n)
	assert.Zero(t, n.Value)
	assert.NotSame(t, a.Alloc(), a.Alloc())
	a.Purge()
}

func TestSyncPoolAllocator(t *testing.T) {
	a := NewSyncPoolAllocator[int]()
	n := a.Alloc()
	assert.NotNil(t, n)
	n.Value = 9
	a.Free(n)
	assert.Zero(t, n.Value)

	a.Purge()
	assert.NotNil(t, a.Alloc())
}
