package chain

// IndexKind is the state of an Index.
type IndexKind uint8

// Enum for the states of an Index. The zero value is KindEmpty.
const (
	// KindEmpty is the start and end index of an empty chain.
	KindEmpty IndexKind = iota
	// KindNode is positioned on a live node.
	KindNode
	// KindEnd is one past the last node and remembers the last node.
	KindEnd
)

func (k IndexKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindNode:
		return "Node"
	case KindEnd:
		return "End"
	}
	return "Unknown"
}

// Index is a cursor for bidirectional traversal of a Chain. An index is valid
// only against the chain state it was produced from; any mutation, including
// the copy made on write to shared storage, invalidates it.
type Index[T any] struct {
	kind IndexKind
	node *Node[T] // the current node, or the last node for KindEnd
}

func nodeIndex[T any](n *Node[T]) Index[T] {
	return Index[T]{kind: KindNode, node: n}
}

func endIndex[T any](last *Node[T]) Index[T] {
	return Index[T]{kind: KindEnd, node: last}
}

// Kind returns the state of i.
func (i Index[T]) Kind() IndexKind {
	return i.kind
}

// Node returns the node i is positioned on, the last node for an End index,
// and nil for an Empty index.
func (i Index[T]) Node() *Node[T] {
	return i.node
}

// IsDereferenceable reports whether i denotes an element.
func (i Index[T]) IsDereferenceable() bool {
	return i.kind == KindNode
}

// Next returns the index following i. End and Empty are fixed points.
func (i Index[T]) Next() Index[T] {
	switch i.kind {
	case KindNode:
		if next := i.node.next; next != nil {
			return nodeIndex(next)
		}
		return endIndex(i.node)
	case KindEnd:
		return i
	}
	return Index[T]{}
}

// Prev returns the index preceding i. Stepping back from the first node
// yields Empty.
func (i Index[T]) Prev() Index[T] {
	switch i.kind {
	case KindEnd:
		return nodeIndex(i.node)
	case KindNode:
		if prev := i.node.previous; prev != nil {
			return nodeIndex(prev)
		}
	}
	return Index[T]{}
}

// Equal reports whether i and o denote the same position. All End indices
// are equal, as are all Empty indices. Node indices are equal if they
// denote the same node.
func (i Index[T]) Equal(o Index[T]) bool {
	if i.kind != o.kind {
		return false
	}
	if i.kind == KindNode {
		return i.node == o.node
	}
	return true
}

// Less reports whether i is positioned before o. End sorts after every other
// index; a node index is before another one if the latter is reachable by
// following next links.
func (i Index[T]) Less(o Index[T]) bool {
	if i.Equal(o) || i.kind == KindEnd {
		return false
	}
	if o.kind == KindEnd {
		return true
	}
	if i.kind != KindNode || o.kind != KindNode {
		return false
	}
	for n := i.node.next; n != nil; n = n.next {
		if n == o.node {
			return true
		}
	}
	return false
}

func (i Index[T]) String() string {
	if i.node == nil {
		return i.kind.String()
	}
	return i.kind.String() + "(" + i.node.String() + ")"
}

// StartIndex returns the index of the first element, or Empty.
func (c *Chain[T]) StartIndex() Index[T] {
	if c.head == nil {
		return Index[T]{}
	}
	return nodeIndex(c.head)
}

// EndIndex returns the index one past the last element, or Empty.
func (c *Chain[T]) EndIndex() Index[T] {
	if c.tail == nil {
		return Index[T]{}
	}
	return endIndex(c.tail)
}

// IndexAfter returns the index following i.
func (c *Chain[T]) IndexAfter(i Index[T]) Index[T] {
	return i.Next()
}

// IndexBefore returns the index preceding i.
func (c *Chain[T]) IndexBefore(i Index[T]) Index[T] {
	return i.Prev()
}
