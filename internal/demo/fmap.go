package demo

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/marcodamonte/concepts/concepts"
)

func demoFmap(w io.Writer) {
	inc := func(n int) int { return n + 1 }
	in := []int{1, 2, 3, 4, 5}

	fmt.Fprintln(w, "  Fmap over Slice (has Len) into Vector (has Grow):")
	r := concepts.Fmap(inc, concepts.Slice[int](in))
	fmt.Fprintf(w, "  %v  len=%d cap=%d\n", r.Slice(), r.Len(), r.Cap())

	fmt.Fprintln(w, "\n  Fmap over Stream (no Len): nothing to reserve:")
	r = concepts.Fmap(inc, concepts.NewStream(slices.Values(in)))
	fmt.Fprintf(w, "  %v  len=%d cap=%d\n", r.Slice(), r.Len(), r.Cap())

	fmt.Fprintln(w, "\n  FmapInto a Chain (no Grow), changing the element type:")
	c := concepts.FmapInto(&concepts.Chain[string]{}, strconv.Itoa, concepts.Slice[int](in))
	fmt.Fprintf(w, "  %q\n", slices.Collect(c.All()))

	fmt.Fprintln(w, "\n  TryReserve:")
	fmt.Fprintln(w, "  Vector ← Slice  :", concepts.TryReserve(&concepts.Vector[int]{}, concepts.Slice[int](in)))
	fmt.Fprintln(w, "  Vector ← Stream :", concepts.TryReserve(&concepts.Vector[int]{}, concepts.NewStream(slices.Values(in))))
	fmt.Fprintln(w, "  Chain  ← Slice  :", concepts.TryReserve(&concepts.Chain[int]{}, concepts.Slice[int](in)))

	fmt.Fprintln(w, "\n  FmapSlice (plain []T):")
	fmt.Fprintln(w, " ", concepts.FmapSlice(inc, in))
}
