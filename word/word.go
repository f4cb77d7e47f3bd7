// Package word implements truncating integer division and modulo over
// native machine words.
//
// The unsigned functions are the leaf primitives: they map directly onto
// the hardware divide and fault (panic with a runtime divide error) on a
// zero divisor. The signed functions wrap them with branch-free sign
// recovery: each operand's sign mask is the arithmetic shift of the
// operand by width-1 bits, absolute values are formed with the
// XOR-subtract idiom, and the unsigned result is conditionally negated
// by the combined mask. No data-dependent branch is taken on the sign of
// either operand.
//
// The most negative representable value negated through the idiom wraps
// back to itself under two's-complement arithmetic, and every function
// here remains correct for that operand.
package word

// Udiv returns the truncated quotient n / d.
//
// The divisor must be nonzero; a zero divisor faults like the hardware
// divide.
func Udiv(n, d uint64) uint64 {
	return n / d
}

// Umod returns the remainder n - (n/d)*d.
func Umod(n, d uint64) uint64 {
	return n % d
}

// UdivMod returns the truncated quotient and remainder of n / d.
func UdivMod(n, d uint64) (q, r uint64) {
	return n / d, n % d
}

// Div returns the quotient a / b truncated toward zero.
//
// The quotient is negative iff exactly one operand is negative. The
// divisor must be nonzero.
func Div(a, b int64) int64 {
	sa := a >> 63 // all ones if a < 0
	sb := b >> 63
	ua := uint64((a ^ sa) - sa) // |a|; MinInt64 wraps to itself
	ub := uint64((b ^ sb) - sb)
	sq := sa ^ sb // sign of the quotient
	return (int64(ua/ub) ^ sq) - sq
}

// Mod returns the remainder of a / b under truncating division. The
// result has the sign of the dividend or is zero.
func Mod(a, b int64) int64 {
	sa := a >> 63
	sb := b >> 63
	ua := uint64((a ^ sa) - sa)
	ub := uint64((b ^ sb) - sb)
	return (int64(ua%ub) ^ sa) - sa
}

// DivMod returns the truncated quotient and remainder of a / b in a
// single division.
func DivMod(a, b int64) (q, r int64) {
	sa := a >> 63
	sb := b >> 63
	ua := uint64((a ^ sa) - sa)
	ub := uint64((b ^ sb) - sb)
	sq := sa ^ sb
	uq, ur := ua/ub, ua%ub
	return (int64(uq) ^ sq) - sq, (int64(ur) ^ sa) - sa
}

// 32-bit variants of the same family. The original runtime ships the
// primitives one width down as well; callers slicing packed words use
// these to avoid widening.

// Udiv32 returns the truncated quotient n / d.
func Udiv32(n, d uint32) uint32 {
	return n / d
}

// Umod32 returns the remainder n - (n/d)*d.
func Umod32(n, d uint32) uint32 {
	return n % d
}

// UdivMod32 returns the truncated quotient and remainder of n / d.
func UdivMod32(n, d uint32) (q, r uint32) {
	return n / d, n % d
}

// Div32 returns the quotient a / b truncated toward zero.
func Div32(a, b int32) int32 {
	sa := a >> 31
	sb := b >> 31
	ua := uint32((a ^ sa) - sa)
	ub := uint32((b ^ sb) - sb)
	sq := sa ^ sb
	return (int32(ua/ub) ^ sq) - sq
}

// Mod32 returns the remainder of a / b with the dividend's sign.
func Mod32(a, b int32) int32 {
	sa := a >> 31
	sb := b >> 31
	ua := uint32((a ^ sa) - sa)
	ub := uint32((b ^ sb) - sb)
	return (int32(ua%ub) ^ sa) - sa
}

// DivMod32 returns the truncated quotient and remainder of a / b.
func DivMod32(a, b int32) (q, r int32) {
	sa := a >> 31
	sb := b >> 31
	ua := uint32((a ^ sa) - sa)
	ub := uint32((b ^ sb) - sb)
	sq := sa ^ sb
	uq, ur := ua/ub, ua%ub
	return (int32(uq) ^ sq) - sq, (int32(ur) ^ sa) - sa
}
