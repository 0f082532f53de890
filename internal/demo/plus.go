package demo

import (
	"fmt"
	"io"

	"github.com/marcodamonte/concepts/concepts"
)

// Both operands of Plus share the type parameter N. Untyped constants adapt
// to the typed operand; two different typed operands can't:
//
//	concepts.Plus(0, int64(1))         // N = int64
//	concepts.Plus(int32(0), int64(1))  // does not compile  (check: plus/int32-and-int64)

func demoPlus(w io.Writer) {
	fmt.Fprintln(w, "  Plus(0, 1)         =", concepts.Plus(0, 1))
	r := concepts.Plus(0, int64(1))
	fmt.Fprintf(w, "  Plus(0, int64(1))  = %v (%T)\n", r, r)
	fmt.Fprintln(w, "  Plus(int32(0), int64(1)) does not compile")
	fmt.Fprintln(w, "  Plus(0.5, 1.5)           does not compile")
}
