// Package overflow provides int64 arithmetic that reports overflow instead of wrapping.
package overflow

import "math"

// Add returns a+b and whether the result fits into an int64.
func Add(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) == (b > 0) {
		return c, true
	}
	return c, false
}

// Sub returns a-b and whether the result fits into an int64.
func Sub(a, b int64) (int64, bool) {
	c := a - b
	if (c < a) == (b > 0) {
		return c, true
	}
	return c, false
}

// Mul returns a*b and whether the result fits into an int64.
func Mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return c, false
	}
	return c, true
}

// Neg returns -a and whether the result fits into an int64.
func Neg(a int64) (int64, bool) {
	if a == math.MinInt64 {
		return a, false
	}
	return -a, true
}
