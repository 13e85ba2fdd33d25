// Package chain implements a generic doubly linked list of owned nodes with
// copy on write value semantics.
//
// Forward links own the node they point to, backward links are navigation
// aids only. Handles produced by Clone share their nodes until one of them is
// mutated; the mutating handle then deep copies the nodes first, so a logical
// copy never observes mutations made through another one.
//
//	a := chain.New(1, 2)
//	b := a.Clone() // O(1), a and b share storage
//	b.Append(3)    // b copies, then appends
//	a.RemoveFirst()
//	// a is [2], b is [1-2-3]
//
// A Chain is not safe for concurrent mutation. Handles that still share
// storage must not be mutated from different goroutines without external
// synchronization.
package chain

import (
	"iter"

	"github.com/harmony-one/linkedqueue/internal/utils"
)

// longChainLogThreshold is the node count from which copies and teardowns are
// reported in the debug log.
const longChainLogThreshold = 1 << 16

// Chain is a doubly linked list. The zero value is an empty chain ready to use.
//
// Assigning a *Chain aliases it; use Clone for an independent logical copy.
type Chain[T any] struct {
	head  *Node[T] // owning
	tail  *Node[T] // cached, non-owning
	count int
}

// New returns a chain holding values in order.
func New[T any](values ...T) *Chain[T] {
	c := &Chain[T]{}
	for _, v := range values {
		c.Append(v)
	}
	return c
}

// FromSeq returns a chain holding the values of seq in order.
func FromSeq[T any](seq iter.Seq[T]) *Chain[T] {
	c := &Chain[T]{}
	for v := range seq {
		c.Append(v)
	}
	return c
}

// Len returns the number of elements.
func (c *Chain[T]) Len() int {
	return c.count
}

// IsEmpty reports whether the chain holds no element.
func (c *Chain[T]) IsEmpty() bool {
	return c.head == nil
}

// First returns the first element, or false if the chain is empty.
func (c *Chain[T]) First() (T, bool) {
	if c.head == nil {
		var zero T
		return zero, false
	}
	return c.head.Value, true
}

// Last returns the last element, or false if the chain is empty.
func (c *Chain[T]) Last() (T, bool) {
	if c.tail == nil {
		var zero T
		return zero, false
	}
	return c.tail.Value, true
}

// Insert prepends v.
func (c *Chain[T]) Insert(v T) {
	c.makeUnique()

	n := newNode(v)
	// the reference held by c.head moves to n.next
	n.next = c.head
	if c.head != nil {
		c.head.previous = n
	} else {
		c.tail = n
	}
	c.head = n
	c.count++
}

// Append adds v after the last element.
func (c *Chain[T]) Append(v T) {
	c.makeUnique()

	if c.head == nil {
		c.Insert(v)
		return
	}
	n := newNode(v)
	n.previous = c.tail
	c.tail.next = n
	c.tail = n
	c.count++
}

// RemoveFirst removes and returns the first element. It returns false if the
// chain is empty.
func (c *Chain[T]) RemoveFirst() (T, bool) {
	c.makeUnique()

	old := c.head
	if old == nil {
		var zero T
		return zero, false
	}
	c.head = old.next
	old.next = nil
	old.release()
	if c.head == nil {
		c.tail = nil
	} else {
		c.head.previous = nil
	}
	c.count--
	return old.Value, true
}

// Clone returns a handle sharing the storage of c. Neither handle observes
// later mutations made through the other one.
func (c *Chain[T]) Clone() *Chain[T] {
	if c.head != nil {
		c.head.retain()
	}
	return &Chain[T]{head: c.head, tail: c.tail, count: c.count}
}

// Release gives up the storage of c and leaves it empty. If c was the last
// handle owning its nodes they are unlinked iteratively, otherwise the nodes
// stay with the remaining handles.
func (c *Chain[T]) Release() {
	head := c.head
	c.head, c.tail, c.count = nil, nil, 0
	if head == nil || !head.release() {
		return
	}

	n := unlink(head)
	releasedNodesCounter.Add(float64(n))
	if n >= longChainLogThreshold {
		utils.Logger().Debug().
			Int("nodes", n).
			Msg("[Chain] released storage")
	}
}

// Get returns the element at i. It panics with ErrNotDereferenceable unless i
// is a node index.
func (c *Chain[T]) Get(i Index[T]) T {
	if i.kind != KindNode {
		panic(ErrNotDereferenceable)
	}
	return i.node.Value
}

// Set replaces the element at i. It panics with ErrNotDereferenceable unless i
// is a node index, and with ErrForeignIndex if i is not a position of c.
//
// If the storage is shared, c is copied first and the write lands on the node
// at the same position in the copy.
func (c *Chain[T]) Set(i Index[T], v T) {
	if i.kind != KindNode {
		panic(ErrNotDereferenceable)
	}
	n := i.node
	offset, ok := c.offsetOf(n)
	if !ok {
		panic(ErrForeignIndex)
	}
	if !c.head.isUnique() {
		c.makeUnique()
		n = c.nodeAt(offset)
	}
	n.Value = v
}

// makeUnique deep copies the storage if it is shared with another handle.
func (c *Chain[T]) makeUnique() {
	if c.head == nil || c.head.isUnique() {
		return
	}

	shared := c.head
	head := newNode(shared.Value)
	tail := head
	for n := shared.next; n != nil; n = n.next {
		fresh := newNode(n.Value)
		fresh.previous = tail
		tail.next = fresh
		tail = fresh
	}
	c.head, c.tail = head, tail

	if shared.release() {
		// every other handle released in the meantime
		releasedNodesCounter.Add(float64(unlink(shared)))
	}
	cowCopiesCounter.Inc()
	cowCopiedNodesCounter.Add(float64(c.count))
	if c.count >= longChainLogThreshold {
		utils.Logger().Debug().
			Int("nodes", c.count).
			Msg("[Chain] storage is shared, copied before write")
	}
}

// offsetOf walks back from target and reports its position if the walk ends
// at the head of c.
func (c *Chain[T]) offsetOf(target *Node[T]) (int, bool) {
	offset := 0
	n := target
	for n.previous != nil {
		n = n.previous
		offset++
	}
	return offset, n == c.head
}

func (c *Chain[T]) nodeAt(offset int) *Node[T] {
	n := c.head
	for ; offset > 0; offset-- {
		n = n.next
	}
	return n
}
