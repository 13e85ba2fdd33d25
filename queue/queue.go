// Package queue implements an unbounded FIFO queue on top of a copy on write
// linked chain. It can be used as a building block for an item processor.
package queue

import (
	"iter"

	"github.com/cespare/xxhash/v2"
	"github.com/harmony-one/linkedqueue/chain"
)

// EmptyMarker is the rendering of an empty queue.
const EmptyMarker = "[EmptyQueue]"

// Index is the cursor type of the underlying chain.
type Index[T any] = chain.Index[T]

// Handler handles an item out of a queue.
type Handler[T any] interface {
	HandleItem(item T)
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc[T any] func(item T)

// HandleItem calls f(item).
func (f HandlerFunc[T]) HandleItem(item T) {
	f(item)
}

// Queue is a first in first out queue. The zero value is an empty queue ready
// to use. Like chain.Chain, logical copies are made with Clone.
type Queue[T any] struct {
	list chain.Chain[T]
}

// New returns a queue holding values, values[0] being the first to dequeue.
func New[T any](values ...T) *Queue[T] {
	q := &Queue[T]{}
	for _, v := range values {
		q.Enqueue(v)
	}
	return q
}

// Enqueue adds item at the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	q.list.Append(item)
}

// Dequeue removes and returns the item at the front of the queue. It returns
// false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	return q.list.RemoveFirst()
}

// Front returns the item at the front without removing it.
func (q *Queue[T]) Front() (T, bool) {
	return q.list.First()
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	return q.list.Len()
}

// IsEmpty reports whether the queue holds no item.
func (q *Queue[T]) IsEmpty() bool {
	return q.list.IsEmpty()
}

// Drain dequeues and dispatches every queued item to h in FIFO order and
// returns the number of handled items. Items enqueued by h are handled too.
func (q *Queue[T]) Drain(h Handler[T]) int {
	n := 0
	for {
		item, ok := q.Dequeue()
		if !ok {
			return n
		}
		h.HandleItem(item)
		n++
	}
}

// Clone returns a queue sharing the storage of q until either one is mutated.
func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{list: *q.list.Clone()}
}

// Release gives up the storage of q and leaves it empty.
func (q *Queue[T]) Release() {
	q.list.Release()
}

// StartIndex returns the index of the front item, or an Empty index.
func (q *Queue[T]) StartIndex() Index[T] {
	return q.list.StartIndex()
}

// EndIndex returns the index one past the back item, or an Empty index.
func (q *Queue[T]) EndIndex() Index[T] {
	return q.list.EndIndex()
}

// IndexAfter returns the index following i.
func (q *Queue[T]) IndexAfter(i Index[T]) Index[T] {
	return q.list.IndexAfter(i)
}

// IndexBefore returns the index preceding i.
func (q *Queue[T]) IndexBefore(i Index[T]) Index[T] {
	return q.list.IndexBefore(i)
}

// Get returns the item at i. It panics unless i denotes an item.
func (q *Queue[T]) Get(i Index[T]) T {
	return q.list.Get(i)
}

// Set replaces the item at i. It panics unless i denotes an item.
func (q *Queue[T]) Set(i Index[T], item T) {
	q.list.Set(i, item)
}

// All returns an iterator over the items from front to back.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.list.All()
}

// Backward returns an iterator over the items from back to front.
func (q *Queue[T]) Backward() iter.Seq[T] {
	return q.list.Backward()
}

// Values returns the items from front to back.
func (q *Queue[T]) Values() []T {
	return q.list.Values()
}

func (q *Queue[T]) String() string {
	if q.list.IsEmpty() {
		return EmptyMarker
	}
	return q.list.String()
}

// Equal reports whether a and b hold equal items in the same order.
func Equal[T comparable](a, b *Queue[T]) bool {
	return chain.Equal(&a.list, &b.list)
}

// EqualFunc is Equal with a custom item comparison.
func EqualFunc[T any](a, b *Queue[T], eq func(x, y T) bool) bool {
	return chain.EqualFunc(&a.list, &b.list, eq)
}

// Hash returns the hash of the items of q, equal to the hash of a chain
// holding the same items.
func Hash[T any](q *Queue[T], write chain.ValueHasher[T]) uint64 {
	return chain.Hash(&q.list, write)
}

// HashInto feeds the items of q into d.
func HashInto[T any](d *xxhash.Digest, q *Queue[T], write chain.ValueHasher[T]) {
	chain.HashInto(d, &q.list, write)
}
