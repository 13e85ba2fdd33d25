package chain

import (
	"math"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	built := &Chain[int]{}
	built.Insert(3)
	built.Insert(2)
	built.Append(4)
	built.Insert(1)
	built.RemoveFirst()
	built.Insert(1)

	shared := New(1, 2, 3, 4)
	clone := shared.Clone()

	tests := []struct {
		lhs, rhs *Chain[int]
		exp      bool
	}{
		{New[int](), &Chain[int]{}, true},
		{New(1, 2, 3, 4), built, true},
		{shared, clone, true},
		{New(1, 2, 3), New(1, 2, 3, 4), false},
		{New(1, 2, 3, 4), New(1, 2, 3), false},
		{New(1, 2, 3, 5), built, false},
		{New[int](), New(0), false},
	}
	for i, test := range tests {
		assert.Equal(t, test.exp, Equal(test.lhs, test.rhs), "Test %v", i)
		assert.Equal(t, test.exp, Equal(test.rhs, test.lhs), "Test %v", i)
	}
}

func TestEqualFunc(t *testing.T) {
	a := New("a", "B")
	b := New("A", "b")
	require.False(t, Equal(a, b))
	require.True(t, EqualFunc(a, b, strings.EqualFold))
}

func TestHash(t *testing.T) {
	built := &Chain[int]{}
	built.Append(2)
	built.Insert(1)
	built.Append(3)

	require.Equal(t, Hash(New(1, 2, 3), HashInteger[int]), Hash(built, HashInteger[int]))
	require.Equal(t, Hash(built, HashInteger[int]), Hash(built.Clone(), HashInteger[int]))
	require.NotEqual(t, Hash(New(1, 2, 3), HashInteger[int]), Hash(New(3, 2, 1), HashInteger[int]))
	require.Equal(t, xxhash.New().Sum64(), Hash(New[int](), HashInteger[int]))
}

func TestHashString(t *testing.T) {
	require.NotEqual(t,
		Hash(New("ab", "c"), HashString[string]),
		Hash(New("a", "bc"), HashString[string]),
	)
	require.Equal(t,
		Hash(New("ab", "c"), HashString[string]),
		Hash(FromSeq(New("ab", "c").All()), HashString[string]),
	)
}

func TestHashFloat(t *testing.T) {
	require.Equal(t,
		Hash(New(0.0, 1.5), HashFloat[float64]),
		Hash(New(math.Copysign(0, -1), 1.5), HashFloat[float64]),
	)
	require.NotEqual(t,
		Hash(New(0.5, 1.5), HashFloat[float64]),
		Hash(New(1.5, 0.5), HashFloat[float64]),
	)
}

func TestHashInto(t *testing.T) {
	d1 := xxhash.New()
	HashInto(d1, New(1, 2), HashInteger[int])
	HashInto(d1, New(3), HashInteger[int])

	d2 := xxhash.New()
	HashInto(d2, New(1, 2, 3), HashInteger[int])

	require.Equal(t, d1.Sum64(), d2.Sum64())
}
