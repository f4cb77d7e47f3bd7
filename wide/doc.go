// Package wide implements 128-bit integers as {Hi, Lo} pairs of native
// words.
//
// A Uint128 with halves {Hi, Lo} has the value Hi*2^64 + Lo. The signed
// Int128 shares the same bit layout: Lo always holds magnitude bits and
// only the top bit of Hi carries the sign of the whole value. All
// arithmetic wraps modulo 2^128; nothing here signals overflow (see the
// checked package for that).
//
// Division follows truncating "C semantics" at double width. The
// unsigned divider composes the single-width hardware divide when the
// divisor fits in one word and falls back to bit-at-a-time restoring
// long division otherwise. The signed divider wraps it with the same
// branch-free sign-mask recovery the word package uses, extended to two
// words. MinInt128 negates to itself under two's-complement wraparound
// and divides correctly by ±1, ±2, ±3 and friends.
//
// Divisors must be nonzero; a zero divisor panics exactly like the
// native 64-bit divide.
package wide
