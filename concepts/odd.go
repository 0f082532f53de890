package concepts

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotInteger is returned by OddDynamic when its argument has no
// whole-number kind.
var ErrNotInteger = errors.New("not an integer")

// Odd reports whether n has its lowest bit set.
//
//	Odd(1)    // true
//	Odd('a')  // true: rune is int32
//	Odd(1.0)  // does not compile: float64 does not satisfy Integral
func Odd[N Integral](n N) bool {
	return n&0x1 != 0
}

// OddDynamic is Odd without a constraint. Go rejects n&1 on an unconstrained
// type parameter, so the check moves to run time: any value is accepted and
// the failure surfaces as an error instead of a compile error.
func OddDynamic(n any) (bool, error) {
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()&0x1 != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()&0x1 != 0, nil
	default:
		return false, fmt.Errorf("odd(%T): %w", n, ErrNotInteger)
	}
}
