package conformance

import (
	"fmt"

	"github.com/wippyai/int-runtime/wide"
)

// Result records one evaluated check: a single output (quotient or
// remainder) of one vector, compared bit-exactly against its expected
// value. Operands and values are rendered as high/low hexadecimal
// halves regardless of width so diagnostics line up across suites.
type Result struct {
	Op   string // e.g. "div.s64", "rem.u128", "oracle.div.s64"
	A    string
	B    string
	Got  string
	Want string
	Pass bool

	// raw bit patterns feeding Report.Digest: a, b, got as hi/lo pairs.
	words [6]uint64
}

func (r Result) String() string {
	status := "ok"
	if !r.Pass {
		status = "FAIL"
	}
	return fmt.Sprintf("%-4s %s: %s / %s = %s (expected %s)", status, r.Op, r.A, r.B, r.Got, r.Want)
}

func result(op string, a, b, got, want wide.Uint128) Result {
	return Result{
		Op:    op,
		A:     a.Hex(),
		B:     b.Hex(),
		Got:   got.Hex(),
		Want:  want.Hex(),
		Pass:  got == want,
		words: [6]uint64{a.Hi, a.Lo, b.Hi, b.Lo, got.Hi, got.Lo},
	}
}

func result64s(op string, a, b, got, want int64) Result {
	return result(op,
		wide.Int128FromInt64(a).Uint128(),
		wide.Int128FromInt64(b).Uint128(),
		wide.Int128FromInt64(got).Uint128(),
		wide.Int128FromInt64(want).Uint128(),
	)
}

func result64u(op string, n, d, got, want uint64) Result {
	return result(op,
		wide.Uint128FromUint64(n),
		wide.Uint128FromUint64(d),
		wide.Uint128FromUint64(got),
		wide.Uint128FromUint64(want),
	)
}
