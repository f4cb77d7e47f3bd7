package wide

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	interrors "github.com/wippyai/int-runtime/errors"
)

// pow19 is the largest power of ten below 2^64; decimal formatting
// peels 19 digits per division.
const pow19 = 1e19

// String renders x in decimal.
func (x Uint128) String() string {
	if x.Hi == 0 {
		return strconv.FormatUint(x.Lo, 10)
	}
	q, r := x.DivMod(Uint128{Lo: pow19})
	if q.Hi == 0 {
		return strconv.FormatUint(q.Lo, 10) + fmt.Sprintf("%019d", r.Lo)
	}
	q2, r2 := q.DivMod(Uint128{Lo: pow19})
	return strconv.FormatUint(q2.Lo, 10) + fmt.Sprintf("%019d%019d", r2.Lo, r.Lo)
}

// String renders x in decimal with a leading minus for negative values.
func (x Int128) String() string {
	if x.Hi < 0 {
		return "-" + x.Abs().String()
	}
	return x.Uint128().String()
}

// Hex renders x as fixed-width high/low halves, the layout used for
// conformance diagnostics.
func (x Uint128) Hex() string {
	return fmt.Sprintf("0x%016X%016X", x.Hi, x.Lo)
}

// Hex renders the bit pattern of x as fixed-width high/low halves.
func (x Int128) Hex() string {
	return x.Uint128().Hex()
}

// ParseUint128 parses s as an unsigned 128-bit integer. Decimal and
// 0x-prefixed hexadecimal forms are accepted.
func ParseUint128(s string) (Uint128, error) {
	const op = "wide.ParseUint128"
	if hexDigits, ok := strings.CutPrefix(s, "0x"); ok {
		return parseHex(op, hexDigits)
	}
	if s == "" {
		return Uint128{}, interrors.ParseFailed(op, s, nil)
	}
	var x Uint128
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Uint128{}, interrors.ParseFailed(op, s, nil)
		}
		var carry uint64
		x, carry = mulAdd10(x, uint64(c-'0'))
		if carry != 0 {
			return Uint128{}, interrors.OutOfRange(op, s, "uint128")
		}
	}
	return x, nil
}

// ParseInt128 parses s as a signed 128-bit integer, accepting an
// optional leading minus before the decimal or 0x-prefixed magnitude.
func ParseInt128(s string) (Int128, error) {
	const op = "wide.ParseInt128"
	neg := false
	mag := s
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		neg = true
		mag = rest
	}
	u, err := ParseUint128(mag)
	if err != nil {
		return Int128{}, err
	}
	// The magnitude limit is 2^127 for negative values, 2^127-1 for
	// positive ones.
	limit := MinInt128().Uint128()
	if c := u.Cmp(limit); c > 0 || (c == 0 && !neg) {
		return Int128{}, interrors.OutOfRange(op, s, "int128")
	}
	if neg {
		return u.Neg().Int128(), nil
	}
	return u.Int128(), nil
}

func parseHex(op, s string) (Uint128, error) {
	if s == "" || len(s) > 32 {
		return Uint128{}, interrors.ParseFailed(op, "0x"+s, nil)
	}
	var x Uint128
	for i := 0; i < len(s); i++ {
		var d uint64
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			return Uint128{}, interrors.ParseFailed(op, "0x"+s, nil)
		}
		x = x.Lsh(4)
		x.Lo |= d
	}
	return x, nil
}

// mulAdd10 returns x*10 + d and the carry out of the high word.
func mulAdd10(x Uint128, d uint64) (Uint128, uint64) {
	carry1, lo := bits.Mul64(x.Lo, 10)
	carry2, hi := bits.Mul64(x.Hi, 10)
	lo, c := bits.Add64(lo, d, 0)
	hi, c = bits.Add64(hi, carry1, c)
	return Uint128{Lo: lo, Hi: hi}, carry2 + c
}
