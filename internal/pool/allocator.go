// Package pool provides list node allocators with different strategies:
// a chunked free-list pool, plain heap allocation and sync.Pool.
package pool

import "sync"

// Allocator hands out and takes back list nodes.
type Allocator[T any] interface {
	Alloc() *Node[T]
	Free(n *Node[T])
	// Purge releases everything the allocator caches.
	Purge()
}

const (
	DefaultNextSize = 64
	DefaultMaxSize  = 128
)

// Stats describes the memory held by a NodePool.
type Stats struct {
	Chunks   int
	Capacity int
	Free     int
}

// NodePool reserves nodes in chunks and recycles freed nodes through a
// free list. The first chunk holds nextSize nodes, every following chunk
// doubles up to maxSize. Not safe for concurrent use.
type NodePool[T any] struct {
	initialSize int
	nextSize    int
	maxSize     int

	chunks  [][]Node[T]
	unused  []Node[T]
	free    *Node[T]
	freeLen int
}

// NewNodePool returns a pool with the given chunk sizes. Non-positive
// values fall back to the defaults; maxSize is raised to nextSize if
// smaller.
func NewNodePool[T any](nextSize, maxSize int) *NodePool[T] {
	if nextSize <= 0 {
		nextSize = DefaultNextSize
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if maxSize < nextSize {
		maxSize = nextSize
	}
	return &NodePool[T]{initialSize: nextSize, nextSize: nextSize, maxSize: maxSize}
}

func (p *NodePool[T]) Alloc() *Node[T] {
	if n := p.free; n != nil {
		p.free = n.next
		p.freeLen--
		n.next = nil
		return n
	}
	if len(p.unused) == 0 {
		p.grow()
	}
	n := &p.unused[0]
	p.unused = p.unused[1:]
	return n
}

func (p *NodePool[T]) grow() {
	chunk := make([]Node[T], p.nextSize)
	p.chunks = append(p.chunks, chunk)
	p.unused = chunk
	p.nextSize *= 2
	if p.nextSize > p.maxSize {
		p.nextSize = p.maxSize
	}
}

func (p *NodePool[T]) Free(n *Node[T]) {
	*n = Node[T]{}
	n.next = p.free
	p.free = n
	p.freeLen++
}

// Purge drops every chunk. Nodes handed out earlier must not be used again.
func (p *NodePool[T]) Purge() {
	p.chunks = nil
	p.unused = nil
	p.free = nil
	p.freeLen = 0
	p.nextSize = p.initialSize
}

func (p *NodePool[T]) Stats() Stats {
	s := Stats{Chunks: len(p.chunks), Free: p.freeLen}
	for _, c := range p.chunks {
		s.Capacity += len(c)
	}
	return s
}

// NativeAllocator allocates every node on the heap and leaves reclamation
// to the garbage collector.
type NativeAllocator[T any] struct{}

func (NativeAllocator[T]) Alloc() *Node[T] { return new(Node[T]) }

func (NativeAllocator[T]) Free(n *Node[T]) { *n = Node[T]{} }

func (NativeAllocator[T]) Purge() {}

// SyncPoolAllocator recycles nodes through a sync.Pool.
type SyncPoolAllocator[T any] struct {
	pool *sync.Pool
}

func NewSyncPoolAllocator[T any]() *SyncPoolAllocator[T] {
	a := &SyncPoolAllocator[T]{}
	a.Purge()
	return a
}

func (a *SyncPoolAllocator[T]) Alloc() *Node[T] {
	return a.pool.Get().(*Node[T])
}

func (a *SyncPoolAllocator[T]) Free(n *Node[T]) {
	*n = Node[T]{}
	a.pool.Put(n)
}

// Purge replaces the pool, leaving cached nodes to the garbage collector.
func (a *SyncPoolAllocator[T]) Purge() {
	a.pool = &sync.Pool{New: func() any { return new(Node[T]) }}
}
