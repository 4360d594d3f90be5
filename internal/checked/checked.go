// Package checked provides overflow-detecting int64 arithmetic.
//
// Every helper returns ErrOverflow (wrapped with the offending operands)
// instead of silently wrapping around, so callers sizing sieve arrays or
// estimating bounds can fail fast rather than allocate an undersized domain.
package checked

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow indicates that the mathematical result does not fit in an int64.
var ErrOverflow = errors.New("integer overflow")

// Add returns a+b or ErrOverflow.
func Add(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}

	return a + b, nil
}

// Inc returns a+1 or ErrOverflow.
func Inc(a int64) (int64, error) {
	return Add(a, 1)
}

// Mul returns a*b or ErrOverflow.
func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	// MinInt64 * -1 wraps back to MinInt64 and passes the division test below.
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || p/b != a {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}

	return p, nil
}

// FloatToInt64 truncates f toward zero, failing when f is NaN or outside
// the int64 range.
func FloatToInt64(f float64) (int64, error) {
	// float64(math.MaxInt64) rounds up to 2^63, which is itself out of range.
	if math.IsNaN(f) || f >= float64(math.MaxInt64) || f < float64(math.MinInt64) {
		return 0, fmt.Errorf("%w: %g does not fit in int64", ErrOverflow, f)
	}

	return int64(f), nil
}
