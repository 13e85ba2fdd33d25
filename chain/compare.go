package chain

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b hold equal elements in the same order.
// Storage sharing and node identity are irrelevant.
func Equal[T comparable](a, b *Chain[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T any](a, b *Chain[T], eq func(x, y T) bool) bool {
	if a.count != b.count {
		return false
	}
	if a.head == b.head {
		return true
	}
	for x, y := a.head, b.head; x != nil && y != nil; x, y = x.next, y.next {
		if !eq(x.Value, y.Value) {
			return false
		}
	}
	return true
}

// ValueHasher feeds one element into the digest.
type ValueHasher[T any] func(d *xxhash.Digest, v T)

// Hash returns the xxhash of the elements of c in order. Equal chains have
// equal hashes.
func Hash[T any](c *Chain[T], write ValueHasher[T]) uint64 {
	d := xxhash.New()
	HashInto(d, c, write)
	return d.Sum64()
}

// HashInto feeds the elements of c in order into d.
func HashInto[T any](d *xxhash.Digest, c *Chain[T], write ValueHasher[T]) {
	for n := c.head; n != nil; n = n.next {
		write(d, n.Value)
	}
}

// HashString is a ValueHasher for strings. The length is written first so
// that ["ab", "c"] and ["a", "bc"] differ.
func HashString[S ~string](d *xxhash.Digest, v S) {
	writeUint64(d, uint64(len(v)))
	d.WriteString(string(v))
}

// HashInteger is a ValueHasher for integers.
func HashInteger[I constraints.Integer](d *xxhash.Digest, v I) {
	writeUint64(d, uint64(v))
}

// HashFloat is a ValueHasher for floats. Both zeros hash alike since they
// compare equal.
func HashFloat[F constraints.Float](d *xxhash.Digest, v F) {
	f := float64(v)
	if f == 0 {
		f = 0
	}
	writeUint64(d, math.Float64bits(f))
}

func writeUint64(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	d.Write(buf[:])
}
