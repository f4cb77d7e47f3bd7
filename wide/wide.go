package wide

import "math"

// Uint128 is an unsigned 128-bit integer with value Hi*2^64 + Lo.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Int128 is a signed two's-complement 128-bit integer. Lo holds the low
// magnitude bits regardless of sign; the top bit of Hi is the sign of
// the whole value.
type Int128 struct {
	Lo uint64
	Hi int64
}

// U128 builds a Uint128 from its high and low halves.
func U128(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// I128 builds an Int128 from its high and low halves.
func I128(hi int64, lo uint64) Int128 {
	return Int128{Hi: hi, Lo: lo}
}

// Uint128FromUint64 zero-extends v to 128 bits.
func Uint128FromUint64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Int128FromInt64 sign-extends v to 128 bits.
func Int128FromInt64(v int64) Int128 {
	return Int128{Lo: uint64(v), Hi: v >> 63}
}

// MaxUint128 returns 2^128 - 1.
func MaxUint128() Uint128 {
	return Uint128{Lo: math.MaxUint64, Hi: math.MaxUint64}
}

// MaxInt128 returns 2^127 - 1.
func MaxInt128() Int128 {
	return Int128{Lo: math.MaxUint64, Hi: math.MaxInt64}
}

// MinInt128 returns -2^127, the most negative representable value.
func MinInt128() Int128 {
	return Int128{Hi: math.MinInt64}
}

// Uint128 reinterprets the bits of x as unsigned.
func (x Int128) Uint128() Uint128 {
	return Uint128{Lo: x.Lo, Hi: uint64(x.Hi)}
}

// Int128 reinterprets the bits of x as signed.
func (x Uint128) Int128() Int128 {
	return Int128{Lo: x.Lo, Hi: int64(x.Hi)}
}

// Uint64 truncates x to its low word.
func (x Uint128) Uint64() uint64 {
	return x.Lo
}

// Int64 truncates x to its low word.
func (x Int128) Int64() int64 {
	return int64(x.Lo)
}

// IsUint64 reports whether x fits in a uint64.
func (x Uint128) IsUint64() bool {
	return x.Hi == 0
}

// IsInt64 reports whether x fits in an int64.
func (x Int128) IsInt64() bool {
	return x.Hi == int64(x.Lo)>>63
}

// IsZero reports whether x is zero.
func (x Uint128) IsZero() bool {
	return x.Lo|x.Hi == 0
}

// IsZero reports whether x is zero.
func (x Int128) IsZero() bool {
	return x.Lo|uint64(x.Hi) == 0
}

// Sign returns -1, 0, or 1 for negative, zero, or positive x.
func (x Int128) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.Hi < 0 {
		return -1
	}
	return 1
}
