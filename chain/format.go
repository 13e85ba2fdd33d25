package chain

import (
	"fmt"
	"strings"
)

// EmptyMarker is the rendering of an empty chain.
const EmptyMarker = "[EmptyChain]"

// String renders the elements in order, such as [1-2-3].
func (c *Chain[T]) String() string {
	if c.head == nil {
		return EmptyMarker
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for n := c.head; n != nil; n = n.next {
		fmt.Fprint(&sb, n.Value)
		if n.next != nil {
			sb.WriteByte('-')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
