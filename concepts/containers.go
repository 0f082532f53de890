package concepts

import (
	"iter"
	"slices"
)

// ── Slice[T] ──────────────────────────────────────────────────────────────────
// An input range that knows its length.

type Slice[T any] []T

func (s Slice[T]) All() iter.Seq[T] { return slices.Values(s) }
func (s Slice[T]) Len() int         { return len(s) }

// ── Stream[T] ─────────────────────────────────────────────────────────────────
// An input range that can only be walked. It has no Len, so nothing can be
// reserved for it ahead of time.

type Stream[T any] struct {
	seq iter.Seq[T]
}

func NewStream[T any](seq iter.Seq[T]) Stream[T] { return Stream[T]{seq: seq} }

func (s Stream[T]) All() iter.Seq[T] {
	if s.seq == nil {
		return func(func(T) bool) {}
	}
	return s.seq
}

// ── Vector[T] ─────────────────────────────────────────────────────────────────
// Growable output container. The zero value is ready to use.

type Vector[T any] struct {
	items []T
}

func (v *Vector[T]) Append(x T)       { v.items = append(v.items, x) }
func (v *Vector[T]) Grow(n int)       { v.items = slices.Grow(v.items, n) }
func (v *Vector[T]) Len() int         { return len(v.items) }
func (v *Vector[T]) Cap() int         { return cap(v.items) }
func (v *Vector[T]) All() iter.Seq[T] { return slices.Values(v.items) }

// Slice returns the elements. The result aliases the vector's storage.
func (v *Vector[T]) Slice() []T { return v.items }

// ── Chain[T] ──────────────────────────────────────────────────────────────────
// Singly linked output container. Each Append allocates a node, so there is
// nothing to reserve: Chain is an Appender but not a Reserver.

type Chain[T any] struct {
	head, tail *link[T]
	n          int
}

type link[T any] struct {
	val  T
	next *link[T]
}

func (c *Chain[T]) Append(x T) {
	l := &link[T]{val: x}
	if c.tail == nil {
		c.head = l
	} else {
		c.tail.next = l
	}
	c.tail = l
	c.n++
}

func (c *Chain[T]) Len() int { return c.n }

func (c *Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for l := c.head; l != nil; l = l.next {
			if !yield(l.val) {
				return
			}
		}
	}
}

// Compile-time capability checks.
var (
	_ Range[int]    = Slice[int](nil)
	_ Sizer         = Slice[int](nil)
	_ Range[int]    = Stream[int]{}
	_ Appender[int] = (*Vector[int])(nil)
	_ Reserver      = (*Vector[int])(nil)
	_ Appender[int] = (*Chain[int])(nil)
	_ Range[int]    = (*Chain[int])(nil)
)
