package demo_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/concepts/internal/demo"
)

func run(t *testing.T, name string) string {
	t.Helper()
	d, ok := demo.Lookup(name)
	require.True(t, ok, name)
	var buf bytes.Buffer
	d.Exec(&buf)
	return buf.String()
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"odd", "plus", "arith", "fmap", "in"}, demo.Names())
	_, ok := demo.Lookup("nope")
	assert.False(t, ok)
}

func TestEveryDemoPrintsItsTitle(t *testing.T) {
	for _, d := range demo.All {
		out := run(t, d.Name)
		assert.True(t, strings.HasPrefix(out, "\n━━━ "+d.Title+" ━━━\n"), d.Name)
	}
}

func TestOddOutput(t *testing.T) {
	out := run(t, "odd")
	assert.Contains(t, out, "Odd(1)   = true")
	assert.Contains(t, out, "OddDynamic(1) = true")
	assert.Contains(t, out, "OddDynamic(1) → error: odd(float64): not an integer")
}

func TestPlusOutput(t *testing.T) {
	out := run(t, "plus")
	assert.Contains(t, out, "Plus(0, int64(1))  = 1 (int64)")
}

func TestArithOutput(t *testing.T) {
	out := run(t, "arith")
	assert.Contains(t, out, "GCD(-12, 18)        = 6")
	assert.Contains(t, out, "GCD(uint8(84), 36)  = 12")
	assert.Contains(t, out, "IsPowerOfTwo(64) = true")
}

func TestFmapOutput(t *testing.T) {
	out := run(t, "fmap")
	assert.Contains(t, out, "[2 3 4 5 6]  len=5")
	assert.Contains(t, out, `["1" "2" "3" "4" "5"]`)
	assert.Contains(t, out, "Vector ← Slice  : true")
	assert.Contains(t, out, "Vector ← Stream : false")
	assert.Contains(t, out, "Chain  ← Slice  : false")
}

func TestInOutput(t *testing.T) {
	out := run(t, "in")
	assert.Contains(t, out, `In(v, "Hello") = true`)
	assert.Contains(t, out, "InSize(v, 2) = true")
	assert.Contains(t, out, `Has(v, "Hello") = true`)
	assert.Contains(t, out, "Has(v, 0) = false")
	assert.Contains(t, out, "no viable overload")
}
