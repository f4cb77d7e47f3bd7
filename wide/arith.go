package wide

import "math/bits"

// Arithmetic over {Hi, Lo} pairs. Carries and borrows propagate through
// math/bits intrinsics; everything wraps modulo 2^128.

// Add returns x + y.
func (x Uint128) Add(y Uint128) Uint128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	return Uint128{Lo: lo, Hi: hi}
}

// Sub returns x - y.
func (x Uint128) Sub(y Uint128) Uint128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	return Uint128{Lo: lo, Hi: hi}
}

// Mul returns the low 128 bits of x * y.
func (x Uint128) Mul(y Uint128) Uint128 {
	hi, lo := bits.Mul64(x.Lo, y.Lo)
	hi += x.Hi*y.Lo + x.Lo*y.Hi
	return Uint128{Lo: lo, Hi: hi}
}

// Neg returns -x modulo 2^128.
func (x Uint128) Neg() Uint128 {
	lo, borrow := bits.Sub64(0, x.Lo, 0)
	hi, _ := bits.Sub64(0, x.Hi, borrow)
	return Uint128{Lo: lo, Hi: hi}
}

// Cmp returns -1, 0, or 1 comparing x against y.
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.Hi != y.Hi:
		if x.Hi < y.Hi {
			return -1
		}
		return 1
	case x.Lo != y.Lo:
		if x.Lo < y.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// And returns x & y.
func (x Uint128) And(y Uint128) Uint128 {
	return Uint128{Lo: x.Lo & y.Lo, Hi: x.Hi & y.Hi}
}

// Or returns x | y.
func (x Uint128) Or(y Uint128) Uint128 {
	return Uint128{Lo: x.Lo | y.Lo, Hi: x.Hi | y.Hi}
}

// Xor returns x ^ y.
func (x Uint128) Xor(y Uint128) Uint128 {
	return Uint128{Lo: x.Lo ^ y.Lo, Hi: x.Hi ^ y.Hi}
}

// Not returns ^x.
func (x Uint128) Not() Uint128 {
	return Uint128{Lo: ^x.Lo, Hi: ^x.Hi}
}

// Lsh returns x << n. Shift counts of 128 or more yield zero.
func (x Uint128) Lsh(n uint) Uint128 {
	if n >= 64 {
		return Uint128{Hi: x.Lo << (n - 64)}
	}
	return Uint128{Lo: x.Lo << n, Hi: x.Hi<<n | x.Lo>>(64-n)}
}

// Rsh returns x >> n with zero fill.
func (x Uint128) Rsh(n uint) Uint128 {
	if n >= 64 {
		return Uint128{Lo: x.Hi >> (n - 64)}
	}
	return Uint128{Lo: x.Lo>>n | x.Hi<<(64-n), Hi: x.Hi >> n}
}

// LeadingZeros returns the number of leading zero bits in x; 128 for
// x == 0.
func (x Uint128) LeadingZeros() int {
	if x.Hi == 0 {
		return 64 + bits.LeadingZeros64(x.Lo)
	}
	return bits.LeadingZeros64(x.Hi)
}

// TrailingZeros returns the number of trailing zero bits in x; 128 for
// x == 0.
func (x Uint128) TrailingZeros() int {
	if x.Lo == 0 {
		return 64 + bits.TrailingZeros64(x.Hi)
	}
	return bits.TrailingZeros64(x.Lo)
}

// Bit returns bit i of x as 0 or 1. The bit index must be in [0, 127].
func (x Uint128) Bit(i int) uint64 {
	if i >= 64 {
		return (x.Hi >> (uint(i) - 64)) & 1
	}
	return (x.Lo >> uint(i)) & 1
}

// Signed counterparts share the unsigned carry chains through bit
// reinterpretation; only comparison and right shift differ.

// Add returns x + y.
func (x Int128) Add(y Int128) Int128 {
	return x.Uint128().Add(y.Uint128()).Int128()
}

// Sub returns x - y.
func (x Int128) Sub(y Int128) Int128 {
	return x.Uint128().Sub(y.Uint128()).Int128()
}

// Mul returns the low 128 bits of x * y.
func (x Int128) Mul(y Int128) Int128 {
	return x.Uint128().Mul(y.Uint128()).Int128()
}

// Neg returns -x. MinInt128 wraps back to itself.
func (x Int128) Neg() Int128 {
	return x.Uint128().Neg().Int128()
}

// Cmp returns -1, 0, or 1 comparing x against y as signed values.
func (x Int128) Cmp(y Int128) int {
	switch {
	case x.Hi != y.Hi:
		if x.Hi < y.Hi {
			return -1
		}
		return 1
	case x.Lo != y.Lo:
		if x.Lo < y.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Lsh returns x << n.
func (x Int128) Lsh(n uint) Int128 {
	return x.Uint128().Lsh(n).Int128()
}

// Rsh returns x >> n with sign fill.
func (x Int128) Rsh(n uint) Int128 {
	if n >= 64 {
		// Hi >> anything past the width keeps replicating the sign bit.
		return Int128{Lo: uint64(x.Hi >> (n - 64)), Hi: x.Hi >> 63}
	}
	if n == 0 {
		return x
	}
	return Int128{Lo: x.Lo>>n | uint64(x.Hi)<<(64-n), Hi: x.Hi >> n}
}

// Abs returns the magnitude of x as an unsigned value. Unlike a signed
// Abs it is total: |MinInt128| is representable and returned exactly.
func (x Int128) Abs() Uint128 {
	m := uint64(x.Hi >> 63) // all ones if negative
	return condNeg(x.Uint128(), m)
}

// condNeg negates u when m is all ones and returns it untouched when m
// is zero, via the XOR-subtract idiom extended to two words.
func condNeg(u Uint128, m uint64) Uint128 {
	lo, borrow := bits.Sub64(u.Lo^m, m, 0)
	hi, _ := bits.Sub64(u.Hi^m, m, borrow)
	return Uint128{Lo: lo, Hi: hi}
}
