package concepts

import (
	"errors"
	"fmt"
)

// ErrNoViableOverload is returned by Has when no variant accepts the value.
var ErrNoViableOverload = errors.New("no viable overload")

// In reports whether some element of r equals v.
//
//	In(Slice[string]{"Hello", "World"}, "Hello")  // true
//	In(Slice[string]{"Hello", "World"}, 0)        // does not compile: Slice[string] is not a Range[int]
func In[R Range[T], T comparable](r R, v T) bool {
	for x := range r.All() {
		if x == v {
			return true
		}
	}
	return false
}

// InSize reports whether r holds exactly n elements.
func InSize[R Sizer](r R, n int) bool {
	return r.Len() == n
}

// Has picks between In and InSize from the dynamic type of v, the way an
// overload set would pick between them at compile time:
//
//   - v is a T: scan the elements. An exact element-type match wins even when
//     T is int and r is a Sizer.
//   - v is an int and r is a Sizer: compare with the length.
//   - otherwise: ErrNoViableOverload.
func Has[T comparable](r Range[T], v any) (bool, error) {
	if x, ok := v.(T); ok {
		return In(r, x), nil
	}
	if n, ok := v.(int); ok {
		if s, ok := r.(Sizer); ok {
			return InSize(s, n), nil
		}
	}
	return false, fmt.Errorf("in(%T, %T): %w", r, v, ErrNoViableOverload)
}
