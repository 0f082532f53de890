package concepts

// Fmap applies f to every element of in and collects the results in a new
// Vector, in order. When in knows its length the vector is sized once up
// front.
//
//	r := Fmap(func(n int) int { return n + 1 }, Slice[int]{1, 2, 3, 4, 5})
//	// r.Slice() == []int{2, 3, 4, 5, 6}
func Fmap[T, U any](f func(T) U, in Range[T]) *Vector[U] {
	return FmapInto(&Vector[U]{}, f, in)
}

// FmapInto is Fmap with a caller-chosen output container. out is returned so
// calls can be chained.
//
// The reservation is decided per call with TryReserve rather than by a
// constraint: Go has no way to select a body based on whether C happens to
// have a Grow method, but an interface assertion on the value can.
func FmapInto[C Appender[U], T, U any](out C, f func(T) U, in Range[T]) C {
	TryReserve(out, in)
	for v := range in.All() {
		out.Append(f(v))
	}
	return out
}

// FmapSlice is the plain-slice form. A slice always knows its length, so the
// result is allocated exactly once.
func FmapSlice[S ~[]T, T, U any](f func(T) U, in S) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

// TryReserve grows out by in's length when out is a Reserver and in is a
// Sizer. It reports whether it did; either way the caller's results are the
// same.
func TryReserve(out, in any) bool {
	r, ok := out.(Reserver)
	if !ok {
		return false
	}
	s, ok := in.(Sizer)
	if !ok {
		return false
	}
	r.Grow(s.Len())
	return true
}
