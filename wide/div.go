package wide

import "math/bits"

// Div returns the truncated quotient n / d. The divisor must be nonzero.
func (n Uint128) Div(d Uint128) Uint128 {
	q, _ := n.DivMod(d)
	return q
}

// Mod returns the remainder n - (n/d)*d.
func (n Uint128) Mod(d Uint128) Uint128 {
	_, r := n.DivMod(d)
	return r
}

// DivMod returns the truncated quotient and remainder of n / d.
//
// When the divisor fits in a single word the quotient is assembled from
// two applications of the single-width divide: the high half divides
// directly and its remainder flows into a 128-by-64 step. Otherwise the
// general path runs restoring long division one bit at a time, shifting
// numerator bits into a remainder accumulator and subtracting the
// divisor under a sign mask so no data-dependent branch is taken inside
// the loop.
//
// A zero divisor panics like the native divide.
func (n Uint128) DivMod(d Uint128) (q, r Uint128) {
	if d.Hi == 0 {
		// Two single-width steps. d.Lo == 0 faults right here, which
		// is the documented zero-divisor behavior.
		qHi, rHi := n.Hi/d.Lo, n.Hi%d.Lo
		qLo, rLo := bits.Div64(rHi, n.Lo, d.Lo)
		return Uint128{Hi: qHi, Lo: qLo}, Uint128{Lo: rLo}
	}

	// d >= 2^64, so the quotient fits in the low word and at most
	// 128 - LeadingZeros(n) iterations are needed.
	for i := 127 - n.LeadingZeros(); i >= 0; i-- {
		r = r.Lsh(1)
		r.Lo |= n.Bit(i)
		q = q.Lsh(1)

		// mask is all ones when r >= d, taken from the borrow of
		// r - d rather than a comparison.
		tLo, borrow := bits.Sub64(r.Lo, d.Lo, 0)
		tHi, borrow := bits.Sub64(r.Hi, d.Hi, borrow)
		mask := borrow - 1
		r.Lo = tLo&mask | r.Lo&^mask
		r.Hi = tHi&mask | r.Hi&^mask
		q.Lo |= mask & 1
	}
	return q, r
}

// Div returns the quotient a / b truncated toward zero. The quotient is
// negative iff exactly one operand is negative. The divisor must be
// nonzero.
func (a Int128) Div(b Int128) Int128 {
	q, _ := a.DivMod(b)
	return q
}

// Mod returns the remainder of a / b under truncating division. The
// result has the sign of the dividend or is zero.
func (a Int128) Mod(b Int128) Int128 {
	_, r := a.DivMod(b)
	return r
}

// DivMod returns the truncated quotient and remainder of a / b.
//
// Sign recovery mirrors the single-width wrapper: the sign mask of each
// operand is its high word shifted arithmetically by 63 and replicated
// across both halves, absolute values come from the XOR-subtract idiom,
// and the unsigned results are conditionally negated by the combined
// mask. MinInt128 wraps to itself through the negation and still
// produces correct results.
func (a Int128) DivMod(b Int128) (q, r Int128) {
	sa := uint64(a.Hi >> 63) // all ones if a < 0
	sb := uint64(b.Hi >> 63)
	ua := condNeg(a.Uint128(), sa)
	ub := condNeg(b.Uint128(), sb)
	sq := sa ^ sb // sign of the quotient
	uq, ur := ua.DivMod(ub)
	return condNeg(uq, sq).Int128(), condNeg(ur, sa).Int128()
}
