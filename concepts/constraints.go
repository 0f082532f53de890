// Package concepts is a small vocabulary of constraints on type parameters
// and a handful of generic functions gated by them.
//
// Every constraint here is checked by the compiler: a call whose type
// arguments fall outside the constraint's type set does not compile. The
// conceptcheck tool (internal/conceptcheck) drives the type checker over
// such calls so the rejections can be observed and tested.
package concepts

import "iter"

// ── Whole numbers ─────────────────────────────────────────────────────────────
// The ~ prefix admits defined types: `type Count int` satisfies Signed.

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integral is every built-in whole-number kind. byte and rune are aliases of
// uint8 and int32, so character values are integral in Go.
type Integral interface {
	Signed | Unsigned
}

// ── Other numeric kinds ───────────────────────────────────────────────────────

type Float interface{ ~float32 | ~float64 }

type Complex interface{ ~complex64 | ~complex128 }

type Number interface {
	Integral | Float
}

// Ordered permits < <= >= >.
type Ordered interface {
	Integral | Float | ~string
}

// ── Algebraic predicates ──────────────────────────────────────────────────────
// These name the operations a generic body may use. Go has no operator
// overloading, so each one is spelled as the type set that supports the
// operators rather than as a list of required expressions.

// Semiring: a+b, a-b, a*b are closed over T, and T(0), T(1) exist.
type Semiring interface {
	Integral | Float | Complex
}

// Ring adds unary negation. Every Semiring kind in Go supports -a (unsigned
// kinds wrap), so the type set is unchanged.
type Ring interface {
	Semiring
}

// EuclideanDomain adds a/b and a%b. % is defined on integers only.
type EuclideanDomain interface {
	Ring
	Integral
}

// Integer is a EuclideanDomain whose values compare with the literals 0
// and 1. Floating-point and complex types are rejected.
type Integer interface {
	EuclideanDomain
}

// ── Object predicates ─────────────────────────────────────────────────────────

// Semiregular holds for every Go type: all values copy by assignment and
// have a zero value.
type Semiregular interface{ any }

// EqualityComparable types support == and !=. Slices, maps and funcs don't.
type EqualityComparable interface{ comparable }

// Regular is Semiregular plus EqualityComparable.
type Regular interface{ comparable }

// Pointer is the "readable" capability: *p yields an E.
type Pointer[E any] interface{ ~*E }

// ── Capabilities ──────────────────────────────────────────────────────────────
// Method constraints. Unlike the type sets above they are ordinary interfaces
// too, so they can be asserted at run time with v.(Sizer).

// Range is anything that can be walked once from front to back.
type Range[T any] interface {
	All() iter.Seq[T]
}

// Sizer reports how many elements a container holds.
type Sizer interface{ Len() int }

// Reserver can set aside room for n more elements before they are appended.
type Reserver interface{ Grow(n int) }

// Appender accepts elements at its back.
type Appender[T any] interface{ Append(v T) }
