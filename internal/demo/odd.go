package demo

import (
	"fmt"
	"io"

	"github.com/marcodamonte/concepts/concepts"
)

// ── Constrained ───────────────────────────────────────────────────────────────
// Odd[N Integral] rejects a float64 argument before the program runs:
//
//	concepts.Odd(1.0)  // float64 does not satisfy Integral  (check: odd/float)
//
// A character literal is a rune, i.e. int32, so it is accepted:
//
//	concepts.Odd('a')  // compiles                          (check: odd/rune)
//
// ── Unconstrained ─────────────────────────────────────────────────────────────
// A Go generic body is checked against its constraint when it is declared,
// so `func odd[N any](n N) bool { return n&1 != 0 }` does not compile at all.
// The unconstrained version has to take `any` and decide at run time.

func demoOdd(w io.Writer) {
	fmt.Fprintln(w, "  Odd[N Integral]:")
	fmt.Fprintln(w, "  Odd(1)   =", concepts.Odd(1))
	fmt.Fprintln(w, "  Odd('a') =", concepts.Odd('a'), " ← rune is int32")
	fmt.Fprintln(w, "  Odd(1.0)    does not compile (see `concepts check --run 'odd/*'`)")

	fmt.Fprintln(w, "\n  OddDynamic(any) — the check moves to run time:")
	for _, v := range []any{1, 'a', 1.0} {
		odd, err := concepts.OddDynamic(v)
		if err != nil {
			fmt.Fprintf(w, "  OddDynamic(%v) → error: %v\n", v, err)
			continue
		}
		fmt.Fprintf(w, "  OddDynamic(%v) = %v\n", v, odd)
	}
}
