package concepts

// Plus adds two values of one Integer type.
//
//	Plus(0, 1)                // int
//	Plus(0, int64(1))         // int64: the untyped 0 takes the other operand's type
//	Plus(int32(0), int64(1))  // does not compile: N cannot be both int32 and int64
//	Plus(0.5, 1.5)            // does not compile: float64 does not satisfy Integer
func Plus[N Integer](x, y N) N {
	return x + y
}
