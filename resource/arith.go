package resource

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// maxOf returns the largest value representable by T.
func maxOf[T constraints.Signed]() T {
	bits := unsafe.Sizeof(T(0)) * 8

	return T(^uint64(0) >> (65 - bits))
}

// minOf returns the smallest value representable by T.
func minOf[T constraints.Signed]() T { return -maxOf[T]() - 1 }

// SatAdd returns a+b, saturating at the bounds of T instead of wrapping.
func SatAdd[T constraints.Signed](a, b T) T {
	c := a + b
	if b > 0 && c < a {
		return maxOf[T]()
	}
	if b < 0 && c > a {
		return minOf[T]()
	}

	return c
}

// SatMul returns a*b, saturating at the bounds of T instead of wrapping.
func SatMul[T constraints.Signed](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	lo, hi := minOf[T](), maxOf[T]()
	// -1 * min overflows and also fools the division check below.
	if (a == -1 && b == lo) || (b == -1 && a == lo) {
		return hi
	}
	c := a * b
	if c/b != a {
		if (a > 0) == (b > 0) {
			return hi
		}

		return lo
	}

	return c
}

// Triangular returns n(n-1)/2 for n > 0 and 0 otherwise, saturating at the
// bounds of T. It is the total yield of one extra producer started on every
// one of n remaining ticks.
func Triangular[T constraints.Signed](n T) T {
	if n <= 1 {
		return 0
	}
	if n%2 == 0 {
		return SatMul(n/2, n-1)
	}

	return SatMul(n, (n-1)/2)
}
