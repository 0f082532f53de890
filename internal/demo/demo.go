// Package demo holds one driver per demonstration. Each writes its output to
// an io.Writer so the cobra command and the tests can share it.
package demo

import (
	"fmt"
	"io"
	"slices"
)

// Demo is one runnable demonstration.
type Demo struct {
	Name  string
	Title string
	Run   func(w io.Writer)
}

// All lists the demonstrations in the order they are shown.
var All = []Demo{
	{"odd", "Odd — unconstrained vs. Integral", demoOdd},
	{"plus", "Plus — one Integer type for both operands", demoPlus},
	{"arith", "GCD / IsPowerOfTwo — what Integer promises", demoArith},
	{"fmap", "Fmap — transform with a reservation hint", demoFmap},
	{"in", "In — membership, size variant, dispatch", demoIn},
}

// Names returns the demo names in order.
func Names() []string {
	names := make([]string, len(All))
	for i, d := range All {
		names[i] = d.Name
	}
	return names
}

// Lookup finds a demo by name.
func Lookup(name string) (Demo, bool) {
	i := slices.IndexFunc(All, func(d Demo) bool { return d.Name == name })
	if i < 0 {
		return Demo{}, false
	}
	return All[i], true
}

// Section prints a demo title the way every demo in this repo does.
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

// Exec prints the demo's section header followed by its output.
func (d Demo) Exec(w io.Writer) {
	Section(w, d.Title)
	d.Run(w)
}
