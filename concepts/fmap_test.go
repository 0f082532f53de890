package concepts_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/marcodamonte/concepts/concepts"
)

func inc(n int) int { return n + 1 }

func TestFmap(t *testing.T) {
	got := concepts.Fmap(inc, concepts.Slice[int]{1, 2, 3, 4, 5})
	if diff := cmp.Diff([]int{2, 3, 4, 5, 6}, got.Slice()); diff != "" {
		t.Errorf("Fmap mismatch (-want +got):\n%s", diff)
	}
}

func TestFmapChangesElementType(t *testing.T) {
	got := concepts.Fmap(strconv.Itoa, concepts.Slice[int]{10, 20})
	if diff := cmp.Diff([]string{"10", "20"}, got.Slice()); diff != "" {
		t.Errorf("Fmap mismatch (-want +got):\n%s", diff)
	}
}

// TestFmapPreservesLengthAndOrder checks out[i] == f(in[i]) for inputs of
// every length up to 64, through every input/output combination.
func TestFmapPreservesLengthAndOrder(t *testing.T) {
	square := func(n int) int { return n * n }
	for n := 0; n <= 64; n++ {
		in := make([]int, n)
		for i := range in {
			in[i] = i - n/2
		}
		want := make([]int, n)
		for i, v := range in {
			want[i] = square(v)
		}

		assert.True(t, slices.Equal(want, concepts.FmapSlice(square, in)), "slice n=%d", n)
		assert.True(t, slices.Equal(want, concepts.Fmap(square, concepts.Slice[int](in)).Slice()), "vector n=%d", n)
		assert.True(t, slices.Equal(want, concepts.Fmap(square, concepts.NewStream(slices.Values(in))).Slice()), "stream n=%d", n)

		chain := concepts.FmapInto(&concepts.Chain[int]{}, square, concepts.Slice[int](in))
		assert.Equal(t, n, chain.Len())
		assert.True(t, slices.Equal(want, slices.Collect(chain.All())), "chain n=%d", n)
	}
}

func TestFmapEmptyStream(t *testing.T) {
	got := concepts.Fmap(inc, concepts.Stream[int]{})
	assert.Zero(t, got.Len())
}

func TestTryReserve(t *testing.T) {
	sized := concepts.Slice[int]{1, 2, 3}
	unsized := concepts.NewStream(slices.Values([]int{1, 2, 3}))

	v := &concepts.Vector[int]{}
	assert.True(t, concepts.TryReserve(v, sized))
	assert.GreaterOrEqual(t, v.Cap(), 3)
	assert.Zero(t, v.Len(), "reserving must not add elements")

	assert.False(t, concepts.TryReserve(&concepts.Vector[int]{}, unsized), "input has no Len")
	assert.False(t, concepts.TryReserve(&concepts.Chain[int]{}, sized), "output has no Grow")
}

func TestFmapReservesOnce(t *testing.T) {
	in := make(concepts.Slice[int], 1000)
	got := concepts.Fmap(inc, in)
	assert.Equal(t, 1000, got.Len())
	assert.Less(t, got.Cap(), 2000, "reserved vector should not have doubled")
}

func TestFmapSliceAllocs(t *testing.T) {
	in := make([]int, 256)
	allocs := testing.AllocsPerRun(100, func() {
		_ = concepts.FmapSlice(inc, in)
	})
	assert.Equal(t, 1.0, allocs)
}
