package concepts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/concepts/concepts"
)

type count int

func TestOdd(t *testing.T) {
	assert.True(t, concepts.Odd(1))
	assert.False(t, concepts.Odd(0))
	assert.True(t, concepts.Odd(-3))
	assert.True(t, concepts.Odd(uint8(255)))
	assert.False(t, concepts.Odd(int64(1)<<40))
	assert.True(t, concepts.Odd('a'), "rune is int32")
	assert.False(t, concepts.Odd(count(4)), "defined types pass through ~int")
}

func TestOddDynamic(t *testing.T) {
	odd, err := concepts.OddDynamic(7)
	require.NoError(t, err)
	assert.True(t, odd)

	odd, err = concepts.OddDynamic(uint16(10))
	require.NoError(t, err)
	assert.False(t, odd)

	odd, err = concepts.OddDynamic(count(9))
	require.NoError(t, err)
	assert.True(t, odd)

	for _, v := range []any{1.0, "1", nil, []int{1}} {
		_, err := concepts.OddDynamic(v)
		assert.ErrorIs(t, err, concepts.ErrNotInteger, "%T", v)
	}
}

func TestPlus(t *testing.T) {
	assert.Equal(t, 1, concepts.Plus(0, 1))
	assert.Equal(t, int64(1), concepts.Plus(0, int64(1)))
	assert.Equal(t, uint8(4), concepts.Plus(uint8(250), 10), "wraps")
	assert.Equal(t, count(5), concepts.Plus(count(2), 3))
}

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{-12, 18, 6},
		{12, -18, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, concepts.GCD(tt.a, tt.b), "GCD(%d, %d)", tt.a, tt.b)
	}
	assert.Equal(t, uint32(4), concepts.GCD(uint32(8), uint32(12)))
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024, 1 << 40} {
		assert.True(t, concepts.IsPowerOfTwo(n), "%d", n)
	}
	for _, n := range []int{0, -2, 3, 6, 1000} {
		assert.False(t, concepts.IsPowerOfTwo(n), "%d", n)
	}
	assert.True(t, concepts.IsPowerOfTwo(uint8(128)))
}
