package demo

import (
	"fmt"
	"io"

	"github.com/marcodamonte/concepts/concepts"
)

// Go has no overloading, so the two variants get their own names and Has
// plays the part of overload resolution at run time.
//
//	concepts.In(v, 0)  // does not compile: Slice[string] is not a Range[int]  (check: in/int-in-strings)

func demoIn(w io.Writer) {
	v := concepts.Slice[string]{"Hello", "World"}

	fmt.Fprintln(w, "  In — element scan:")
	fmt.Fprintln(w, "  In(v, \"Hello\") =", concepts.In(v, "Hello"))
	fmt.Fprintln(w, "  In(v, \"hello\") =", concepts.In(v, "hello"))
	fmt.Fprintln(w, "  In(v, 0)         does not compile")

	fmt.Fprintln(w, "\n  InSize — compare with Len:")
	fmt.Fprintln(w, "  InSize(v, 0) =", concepts.InSize(v, 0))
	fmt.Fprintln(w, "  InSize(v, 2) =", concepts.InSize(v, 2))

	fmt.Fprintln(w, "\n  Has — pick the variant from the value:")
	for _, x := range []any{"Hello", 0, 2, 3.5} {
		ok, err := concepts.Has[string](v, x)
		if err != nil {
			fmt.Fprintf(w, "  Has(v, %v) → error: %v\n", x, err)
			continue
		}
		fmt.Fprintf(w, "  Has(v, %#v) = %v\n", x, ok)
	}
}
