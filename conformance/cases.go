package conformance

import (
	"context"
	"fmt"
	"math"

	"github.com/wippyai/int-runtime/oracle"
	"github.com/wippyai/int-runtime/wide"
	"github.com/wippyai/int-runtime/word"
)

// Case is one vector: a dividend/divisor pair with the expected
// truncated quotient and remainder. Eval checks the library; OracleEval
// checks the same operands against the wasm reference and returns nil
// for widths the reference does not cover.
type Case interface {
	Name() string
	Eval() []Result
	OracleEval(ctx context.Context, o *oracle.Oracle) []Result
}

// Suite groups cases for one primitive.
type Suite struct {
	Name  string
	Desc  string
	Cases []Case
}

type s64Case struct{ a, b, q, r int64 }

func (c s64Case) Name() string { return fmt.Sprintf("%d/%d", c.a, c.b) }

func (c s64Case) Eval() []Result {
	q, r := word.DivMod(c.a, c.b)
	return []Result{
		result64s("div.s64", c.a, c.b, q, c.q),
		result64s("rem.s64", c.a, c.b, r, c.r),
	}
}

func (c s64Case) OracleEval(ctx context.Context, o *oracle.Oracle) []Result {
	var out []Result
	// The reference traps on MinInt64/-1 where this library follows the
	// hardware wraparound, so that quotient has no reference value.
	if !(c.a == math.MinInt64 && c.b == -1) {
		q, err := o.DivS(ctx, c.a, c.b)
		out = append(out, oracleResult(result64s("oracle.div.s64", c.a, c.b, q, word.Div(c.a, c.b)), err))
	}
	r, err := o.RemS(ctx, c.a, c.b)
	out = append(out, oracleResult(result64s("oracle.rem.s64", c.a, c.b, r, word.Mod(c.a, c.b)), err))
	return out
}

type u64Case struct{ n, d, q, r uint64 }

func (c u64Case) Name() string { return fmt.Sprintf("%d/%d", c.n, c.d) }

func (c u64Case) Eval() []Result {
	q, r := word.UdivMod(c.n, c.d)
	return []Result{
		result64u("div.u64", c.n, c.d, q, c.q),
		result64u("rem.u64", c.n, c.d, r, c.r),
	}
}

func (c u64Case) OracleEval(ctx context.Context, o *oracle.Oracle) []Result {
	q, err := o.DivU(ctx, c.n, c.d)
	out := []Result{oracleResult(result64u("oracle.div.u64", c.n, c.d, q, word.Udiv(c.n, c.d)), err)}
	r, err := o.RemU(ctx, c.n, c.d)
	return append(out, oracleResult(result64u("oracle.rem.u64", c.n, c.d, r, word.Umod(c.n, c.d)), err))
}

type s32Case struct{ a, b, q, r int32 }

func (c s32Case) Name() string { return fmt.Sprintf("%d/%d", c.a, c.b) }

func (c s32Case) Eval() []Result {
	q, r := word.DivMod32(c.a, c.b)
	return []Result{
		result64s("div.s32", int64(c.a), int64(c.b), int64(q), int64(c.q)),
		result64s("rem.s32", int64(c.a), int64(c.b), int64(r), int64(c.r)),
	}
}

func (c s32Case) OracleEval(ctx context.Context, o *oracle.Oracle) []Result {
	var out []Result
	if !(c.a == math.MinInt32 && c.b == -1) {
		q, err := o.DivS32(ctx, c.a, c.b)
		out = append(out, oracleResult(result64s("oracle.div.s32", int64(c.a), int64(c.b), int64(q), int64(word.Div32(c.a, c.b))), err))
	}
	r, err := o.RemS32(ctx, c.a, c.b)
	return append(out, oracleResult(result64s("oracle.rem.s32", int64(c.a), int64(c.b), int64(r), int64(word.Mod32(c.a, c.b))), err))
}

type s128Case struct{ a, b, q, r wide.Int128 }

func (c s128Case) Name() string { return c.a.String() + "/" + c.b.String() }

func (c s128Case) Eval() []Result {
	q, r := c.a.DivMod(c.b)
	return []Result{
		result("div.s128", c.a.Uint128(), c.b.Uint128(), q.Uint128(), c.q.Uint128()),
		result("rem.s128", c.a.Uint128(), c.b.Uint128(), r.Uint128(), c.r.Uint128()),
	}
}

func (c s128Case) OracleEval(context.Context, *oracle.Oracle) []Result { return nil }

type u128Case struct{ n, d, q, r wide.Uint128 }

func (c u128Case) Name() string { return c.n.String() + "/" + c.d.String() }

func (c u128Case) Eval() []Result {
	q, r := c.n.DivMod(c.d)
	return []Result{
		result("div.u128", c.n, c.d, q, c.q),
		result("rem.u128", c.n, c.d, r, c.r),
	}
}

func (c u128Case) OracleEval(context.Context, *oracle.Oracle) []Result { return nil }

// oracleResult folds a reference trap into a failing result.
func oracleResult(r Result, err error) Result {
	if err != nil {
		r.Pass = false
		r.Got = "trap: " + err.Error()
	}
	return r
}

func u64(v uint64) wide.Uint128 { return wide.Uint128FromUint64(v) }

func i64w(v int64) wide.Int128 { return wide.Int128FromInt64(v) }

func u128(hi, lo uint64) wide.Uint128 { return wide.U128(hi, lo) }

func i128(hi int64, lo uint64) wide.Int128 { return wide.I128(hi, lo) }

// Suites returns the conformance registry. The vectors follow the
// original runtime's unit tables: zero over ±1, the ±5/±3 quadrant, the
// most negative value over ±1, ±2, ±3, exact powers, and wide cases
// covering both divider paths.
func Suites() []Suite {
	return []Suite{
		{
			Name: "s64",
			Desc: "signed 64-bit division and remainder",
			Cases: []Case{
				s64Case{0, 1, 0, 0},
				s64Case{0, -1, 0, 0},
				s64Case{1, 1, 1, 0},
				s64Case{-1, 1, -1, 0},
				s64Case{1, -1, -1, 0},
				s64Case{-1, -1, 1, 0},
				s64Case{5, 3, 1, 2},
				s64Case{5, -3, -1, 2},
				s64Case{-5, 3, -1, -2},
				s64Case{-5, -3, 1, -2},
				s64Case{97, 7, 13, 6},
				s64Case{-97, 7, -13, -6},
				s64Case{math.MinInt64, 1, math.MinInt64, 0},
				s64Case{math.MinInt64, -1, math.MinInt64, 0}, // negation wraps
				s64Case{math.MinInt64, 2, -4611686018427387904, 0},
				s64Case{math.MinInt64, -2, 4611686018427387904, 0},
				s64Case{math.MinInt64, 3, -3074457345618258602, -2},
				s64Case{math.MinInt64, -3, 3074457345618258602, -2},
				s64Case{math.MaxInt64, 1, math.MaxInt64, 0},
				s64Case{math.MaxInt64, -1, -math.MaxInt64, 0},
				s64Case{math.MaxInt64, 2, 4611686018427387903, 1},
				s64Case{math.MaxInt64, math.MaxInt64, 1, 0},
				s64Case{1 << 62, 4096, 1 << 50, 0},
			},
		},
		{
			Name: "u64",
			Desc: "unsigned 64-bit division and remainder",
			Cases: []Case{
				u64Case{0, 1, 0, 0},
				u64Case{7, 1, 7, 0},
				u64Case{12345, 100, 123, 45},
				u64Case{1 << 63, 3, 3074457345618258602, 2},
				u64Case{math.MaxUint64, 2, 9223372036854775807, 1},
				u64Case{math.MaxUint64, 10, 1844674407370955161, 5},
				u64Case{math.MaxUint64, math.MaxUint64, 1, 0},
				u64Case{1 << 32, 1 << 16, 1 << 16, 0},
			},
		},
		{
			Name: "s32",
			Desc: "signed 32-bit division and remainder",
			Cases: []Case{
				s32Case{0, 1, 0, 0},
				s32Case{5, 3, 1, 2},
				s32Case{-5, 3, -1, -2},
				s32Case{5, -3, -1, 2},
				s32Case{-5, -3, 1, -2},
				s32Case{math.MinInt32, 1, math.MinInt32, 0},
				s32Case{math.MinInt32, -1, math.MinInt32, 0},
				s32Case{math.MinInt32, 2, -1073741824, 0},
				s32Case{math.MinInt32, 3, -715827882, -2},
				s32Case{math.MinInt32, -3, 715827882, -2},
			},
		},
		{
			Name: "s128",
			Desc: "signed 128-bit division and remainder",
			Cases: []Case{
				s128Case{i64w(0), i64w(1), i64w(0), i64w(0)},
				s128Case{i64w(0), i64w(-1), i64w(0), i64w(0)},
				s128Case{i64w(5), i64w(3), i64w(1), i64w(2)},
				s128Case{i64w(5), i64w(-3), i64w(-1), i64w(2)},
				s128Case{i64w(-5), i64w(3), i64w(-1), i64w(-2)},
				s128Case{i64w(-5), i64w(-3), i64w(1), i64w(-2)},
				// 2^63 carried as a positive 128-bit value.
				s128Case{i128(0, 1 << 63), i64w(1), i128(0, 1 << 63), i64w(0)},
				s128Case{i128(0, 1 << 63), i64w(-1), i64w(math.MinInt64), i64w(0)},
				s128Case{i128(0, 1 << 63), i64w(2), i64w(1 << 62), i64w(0)},
				s128Case{i128(0, 1 << 63), i64w(3), i64w(3074457345618258602), i64w(2)},
				s128Case{i128(0, 1 << 63), i64w(-3), i64w(-3074457345618258602), i64w(2)},
				// 2^64 has remainder 1 modulo 3.
				s128Case{i128(1, 0), i64w(3), i64w(6148914691236517205), i64w(1)},
				s128Case{wide.MinInt128(), i64w(1), wide.MinInt128(), i64w(0)},
				s128Case{wide.MinInt128(), i64w(-1), wide.MinInt128(), i64w(0)}, // negation wraps
				s128Case{wide.MinInt128(), i64w(2), i128(-4611686018427387904, 0), i64w(0)},
				s128Case{wide.MinInt128(), i64w(-2), i128(4611686018427387904, 0), i64w(0)},
				s128Case{wide.MinInt128(), i64w(3), i128(-3074457345618258603, 0x5555555555555556), i64w(-2)},
				s128Case{wide.MinInt128(), i64w(-3), i128(3074457345618258602, 0xAAAAAAAAAAAAAAAA), i64w(-2)},
				s128Case{wide.MaxInt128(), wide.MaxInt128(), i64w(1), i64w(0)},
			},
		},
		{
			Name: "u128",
			Desc: "unsigned 128-bit division and remainder",
			Cases: []Case{
				// Single-word divisors take the composed fast path.
				u128Case{u64(0), u64(1), u64(0), u64(0)},
				u128Case{u64(5), u64(3), u64(1), u64(2)},
				u128Case{u128(1, 0), u64(2), u64(1 << 63), u64(0)},
				u128Case{u128(1, 0), u64(3), u64(6148914691236517205), u64(1)},
				u128Case{u128(1<<63, 0), u64(3), u128(0x2AAAAAAAAAAAAAAA, 0xAAAAAAAAAAAAAAAA), u64(2)},
				u128Case{wide.MaxUint128(), u64(1), wide.MaxUint128(), u64(0)},
				u128Case{u128(0x123456789ABCDEF0, 0xFEDCBA9876543210), u64(1 << 16), u128(0x0000123456789ABC, 0xDEF0FEDCBA987654), u64(0x3210)},
				// Full-width divisors force the bit-iterative path.
				u128Case{wide.MaxUint128(), u128(1, 0), u64(math.MaxUint64), u64(math.MaxUint64)},
				u128Case{u128(5, 5), u128(2, 0), u64(2), u128(1, 5)},
				u128Case{u128(1, 0), u128(2, 0), u64(0), u128(1, 0)},
				u128Case{wide.MaxUint128(), u128(1<<63, 0), u64(1), u128(0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF)},
				u128Case{u128(0x123456789ABCDEF0, 0xFEDCBA9876543210), u128(0x123456789ABCDEF0, 0xFEDCBA9876543210), u64(1), u64(0)},
			},
		},
	}
}
