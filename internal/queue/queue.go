// Package queue is a specialized adaption of `container/list` for use in LRU bookkeeping.
package queue

import "iter"

type (
	// A Node is an element of a recency [List].
	// Nodes must only belong to a single list at a time.
	// The zero value for a Node is an unlinked
	// element with a nil Value.
	Node[Key comparable, Value any] struct {
		next, prev *Node[Key, Value]
		Value      Value
		Entry[Key]
	}
	// Entry stores the bookkeeping state of a cache entry.
	// It is used by LRU and related eviction policies.
	Entry[Key comparable] struct {
		// Key is the identifier of the data this entry is bound to.
		Key Key
		// Weight is the amount of cache space the entry
		// consumes against the cache's scalar capacity.
		Weight int
		// Stamp orders entries by freshness. Stamps are
		// handed out by the cache, strictly increasing per
		// touch, and never reused.
		Stamp uint64
	}
	// A List is a doubly linked queue of nodes ordered from
	// most- (front) to least-recently-used (back).
	// The zero value for a List is an empty queue ready to use.
	List[Key comparable, Value any] struct {
		front, back *Node[Key, Value]
		length      int
	}
)

// Next returns the next (less recent) node or nil at the back.
func (n *Node[Key, Value]) Next() *Node[Key, Value] { return n.next }

// Prev returns the previous (more recent) node or nil at the front.
func (n *Node[Key, Value]) Prev() *Node[Key, Value] { return n.prev }

// Len returns the number of nodes in the queue.
func (l *List[Key, Value]) Len() int { return l.length }

// Front returns the most recent node or nil if the queue is empty.
func (l *List[Key, Value]) Front() *Node[Key, Value] { return l.front }

// Back returns the least recent node or nil if the queue is empty.
func (l *List[Key, Value]) Back() *Node[Key, Value] { return l.back }

// PushFront links node at the front of the queue.
// node must not already be in a list.
func (l *List[Key, Value]) PushFront(node *Node[Key, Value]) {
	node.next = l.front
	node.prev = nil
	if l.front == nil {
		l.back = node
	} else {
		l.front.prev = node
	}
	l.front = node
	l.length++
}

// Remove unlinks node from the queue. node must be in l.
func (l *List[Key, Value]) Remove(node *Node[Key, Value]) {
	var (
		previous = node.prev
		next     = node.next
	)
	if previous == nil {
		l.front = next
	} else {
		previous.next = next
	}
	if next == nil {
		l.back = previous
	} else {
		next.prev = previous
	}
	node.next = nil
	node.prev = nil
	l.length--
}

// MoveToFront splices node to the front of the queue.
// node must be in l.
func (l *List[Key, Value]) MoveToFront(node *Node[Key, Value]) {
	if node == l.front {
		return
	}
	l.Remove(node)
	l.PushFront(node)
}

// Init empties the queue without unlinking its nodes.
func (l *List[Key, Value]) Init() {
	l.front = nil
	l.back = nil
	l.length = 0
}

// Forward returns an iterator over the queue from
// front to back (most to least recent).
// The queue must not be modified during iteration.
func (l *List[Key, Value]) Forward() iter.Seq[*Node[Key, Value]] {
	return func(yield func(*Node[Key, Value]) bool) {
		for node := l.front; node != nil; node = node.next {
			if !yield(node) {
				return
			}
		}
	}
}

// Backward returns an iterator over the queue from
// back to front (least to most recent).
// The queue must not be modified during iteration.
func (l *List[Key, Value]) Backward() iter.Seq[*Node[Key, Value]] {
	return func(yield func(*Node[Key, Value]) bool) {
		for node := l.back; node != nil; node = node.prev {
			if !yield(node) {
				return
			}
		}
	}
}
