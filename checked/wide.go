package checked

import (
	interrors "github.com/wippyai/int-runtime/errors"
	"github.com/wippyai/int-runtime/wide"
)

// Double-width counterparts over wide.Int128. Overflow detection leans
// on sign algebra rather than a wider intermediate, since there is no
// 256-bit scratch type to widen into.

// AddInt128 returns a + b, or an overflow error.
func AddInt128(a, b wide.Int128) (wide.Int128, error) {
	sum := a.Add(b)
	// Overflow iff the operands share a sign the sum does not.
	if (a.Hi < 0) == (b.Hi < 0) && (sum.Hi < 0) != (a.Hi < 0) {
		return wide.Int128{}, interrors.Overflow("checked.AddInt128", [2]string{a.String(), b.String()})
	}
	return sum, nil
}

// SubInt128 returns a - b, or an overflow error.
func SubInt128(a, b wide.Int128) (wide.Int128, error) {
	diff := a.Sub(b)
	if (a.Hi < 0) != (b.Hi < 0) && (diff.Hi < 0) != (a.Hi < 0) {
		return wide.Int128{}, interrors.Overflow("checked.SubInt128", [2]string{a.String(), b.String()})
	}
	return diff, nil
}

// MulInt128 returns a * b, or an overflow error.
func MulInt128(a, b wide.Int128) (wide.Int128, error) {
	if a.IsZero() || b.IsZero() {
		return wide.Int128{}, nil
	}
	p := a.Mul(b)
	// Division is the only exact wraparound probe at this width; the
	// MinInt128 * -1 case wraps p back to MinInt128 and is caught by
	// the quotient comparison below failing for b = -1.
	if a.Cmp(wide.MinInt128()) == 0 || b.Cmp(wide.MinInt128()) == 0 {
		one := wide.Int128FromInt64(1)
		if a.Cmp(one) != 0 && b.Cmp(one) != 0 {
			return wide.Int128{}, interrors.Overflow("checked.MulInt128", [2]string{a.String(), b.String()})
		}
		return p, nil
	}
	if p.Div(b).Cmp(a) != 0 {
		return wide.Int128{}, interrors.Overflow("checked.MulInt128", [2]string{a.String(), b.String()})
	}
	return p, nil
}

// NegInt128 returns -a, or an overflow error for MinInt128.
func NegInt128(a wide.Int128) (wide.Int128, error) {
	if a.Cmp(wide.MinInt128()) == 0 {
		return wide.Int128{}, interrors.Overflow("checked.NegInt128", a.String())
	}
	return a.Neg(), nil
}

// AbsInt128 returns |a| as a signed value, or an overflow error for
// MinInt128. Use wide.Int128.Abs for the total unsigned form.
func AbsInt128(a wide.Int128) (wide.Int128, error) {
	if a.Cmp(wide.MinInt128()) == 0 {
		return wide.Int128{}, interrors.Overflow("checked.AbsInt128", a.String())
	}
	if a.Hi < 0 {
		return a.Neg(), nil
	}
	return a, nil
}

// DivInt128 returns the truncated quotient a / b, reporting zero
// divisors and the MinInt128 / -1 wraparound.
func DivInt128(a, b wide.Int128) (wide.Int128, error) {
	if b.IsZero() {
		return wide.Int128{}, interrors.DivideByZero("checked.DivInt128")
	}
	if a.Cmp(wide.MinInt128()) == 0 && b.Cmp(wide.Int128FromInt64(-1)) == 0 {
		return wide.Int128{}, interrors.Overflow("checked.DivInt128", [2]string{a.String(), b.String()})
	}
	return a.Div(b), nil
}

// ModInt128 returns the remainder of a / b with the dividend's sign.
func ModInt128(a, b wide.Int128) (wide.Int128, error) {
	if b.IsZero() {
		return wide.Int128{}, interrors.DivideByZero("checked.ModInt128")
	}
	if a.Cmp(wide.MinInt128()) == 0 && b.Cmp(wide.Int128FromInt64(-1)) == 0 {
		return wide.Int128{}, nil
	}
	return a.Mod(b), nil
}
