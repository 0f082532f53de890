package concepts

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm. The result is never negative, except that for signed types the
// single value whose magnitude does not fit (e.g. math.MinInt64) is returned
// unchanged. GCD(0, 0) is 0.
func GCD[N Integer](a, b N) N {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// IsPowerOfTwo reports whether n is 1, 2, 4, 8, ...
func IsPowerOfTwo[N Integer](n N) bool {
	if n <= 0 {
		return false
	}
	for n%2 == 0 {
		n /= 2
	}
	return n == 1
}
