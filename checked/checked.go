// Package checked implements arithmetic that reports overflow and zero
// divisors instead of wrapping or faulting.
//
// The original runtime exposes trapping variants of its arithmetic next
// to the wrapping ones; in Go the moral equivalent is an explicit error
// return. Every function here returns a structured error from the
// errors package on precondition violation, so callers can match with
// errors.Is against interrors.ErrOverflow and interrors.ErrDivideByZero.
package checked

import (
	"math"

	interrors "github.com/wippyai/int-runtime/errors"
	"github.com/wippyai/int-runtime/word"
)

// Add returns a + b, or an overflow error when the sum does not fit.
func Add(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, interrors.Overflow("checked.Add", [2]int64{a, b})
	}
	return sum, nil
}

// Sub returns a - b, or an overflow error.
func Sub(a, b int64) (int64, error) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, interrors.Overflow("checked.Sub", [2]int64{a, b})
	}
	return diff, nil
}

// Mul returns a * b, or an overflow error.
func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a || (a == math.MinInt64 && b == -1) {
		return 0, interrors.Overflow("checked.Mul", [2]int64{a, b})
	}
	return p, nil
}

// Neg returns -a, or an overflow error for MinInt64.
func Neg(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, interrors.Overflow("checked.Neg", a)
	}
	return -a, nil
}

// Abs returns |a|, or an overflow error for MinInt64.
func Abs(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, interrors.Overflow("checked.Abs", a)
	}
	if a < 0 {
		return -a, nil
	}
	return a, nil
}

// Div returns the truncated quotient a / b. Zero divisors and the
// MinInt64 / -1 wraparound are reported instead of faulting.
func Div(a, b int64) (int64, error) {
	if b == 0 {
		return 0, interrors.DivideByZero("checked.Div")
	}
	if a == math.MinInt64 && b == -1 {
		return 0, interrors.Overflow("checked.Div", [2]int64{a, b})
	}
	return word.Div(a, b), nil
}

// Mod returns the remainder of a / b with the dividend's sign. Only a
// zero divisor is an error; MinInt64 % -1 is well-defined zero.
func Mod(a, b int64) (int64, error) {
	if b == 0 {
		return 0, interrors.DivideByZero("checked.Mod")
	}
	if a == math.MinInt64 && b == -1 {
		return 0, nil
	}
	return word.Mod(a, b), nil
}
