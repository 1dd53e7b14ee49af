package pool

// Node is an element of a List.
type Node[T any] struct {
	Value T

	next, prev *Node[T]
}

// Next returns the following node or nil.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List is a doubly linked list that takes its nodes from an Allocator.
type List[T any] struct {
	alloc      Allocator[T]
	head, tail *Node[T]
	len        int
}

// NewList returns an empty list backed by alloc.
func NewList[T any](alloc Allocator[T]) *List[T] {
	return &List[T]{alloc: alloc}
}

// PushBack appends v.
func (l *List[T]) PushBack(v T) {
	n := l.alloc.Alloc()
	n.Value = v
	n.prev = l.tail
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.len++
}

// Front returns the first node or nil.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.len
}

// Clear returns every node to the allocator.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		l.alloc.Free(n)
		n = next
	}
	l.head, l.tail, l.len = nil, nil, 0
}
