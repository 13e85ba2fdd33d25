package chain

import "iter"

// All returns an iterator over the elements from first to last.
func (c *Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from last to first.
func (c *Chain[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.tail; n != nil; n = n.previous {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Values returns the elements in order.
func (c *Chain[T]) Values() []T {
	out := make([]T, 0, c.count)
	for v := range c.All() {
		out = append(out, v)
	}
	return out
}
