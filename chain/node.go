package chain

import (
	"fmt"
	"sync/atomic"
)

// Node is a single cell of a chain.
//
// The next link is the only owning edge between nodes. previous is kept
// consistent with next (n.previous.next == n) and is used for backward
// traversal only, it never takes part in owner counting.
type Node[T any] struct {
	Value T

	next     *Node[T]
	previous *Node[T]

	// refs is the number of owning references to this node: the next link of
	// its predecessor, or the head of every Chain handle sharing it.
	refs atomic.Int32
}

func newNode[T any](v T) *Node[T] {
	n := &Node[T]{Value: v}
	n.refs.Store(1)
	return n
}

// Next returns the following node or nil.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Previous returns the preceding node or nil.
func (n *Node[T]) Previous() *Node[T] {
	return n.previous
}

func (n *Node[T]) String() string {
	return fmt.Sprintf("%s <- %v -> %s", optional(n.previous), n.Value, optional(n.next))
}

func (n *Node[T]) retain() {
	n.refs.Add(1)
}

// release drops one owning reference to n and reports whether it was the last.
func (n *Node[T]) release() bool {
	return n.refs.Add(-1) == 0
}

func (n *Node[T]) isUnique() bool {
	return n.refs.Load() == 1
}

func optional[T any](n *Node[T]) string {
	if n == nil {
		return "nil"
	}
	return fmt.Sprint(n.Value)
}

// unlink tears down the chain starting at n, whose last owning reference has
// just been dropped. Each successor is detached in a flat loop, so the stack
// stays constant regardless of the chain length. The walk stops at the first
// successor that is still owned elsewhere. It returns the number of detached
// nodes.
func unlink[T any](n *Node[T]) int {
	count := 0
	for n != nil {
		next := n.next
		n.next = nil
		n.previous = nil
		count++
		if next == nil || !next.release() {
			break
		}
		n = next
	}
	return count
}
