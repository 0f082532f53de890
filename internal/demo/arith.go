package demo

import (
	"fmt"
	"io"

	"github.com/marcodamonte/concepts/concepts"
)

func demoArith(w io.Writer) {
	fmt.Fprintln(w, "  GCD uses the remainder, == 0 and negation:")
	fmt.Fprintln(w, "  GCD(12, 18)         =", concepts.GCD(12, 18))
	fmt.Fprintln(w, "  GCD(-12, 18)        =", concepts.GCD(-12, 18))
	fmt.Fprintln(w, "  GCD(uint8(84), 36)  =", concepts.GCD(uint8(84), 36))

	fmt.Fprintln(w, "\n  IsPowerOfTwo uses / and == 1:")
	for _, n := range []int{1, 6, 64} {
		fmt.Fprintf(w, "  IsPowerOfTwo(%d) = %v\n", n, concepts.IsPowerOfTwo(n))
	}
}
