package wide_test

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/wippyai/int-runtime/wide"
)

func randUint128(rng *rand.Rand) wide.Uint128 {
	// Bias toward small halves to hit carry and zero paths often.
	x := wide.U128(rng.Uint64(), rng.Uint64())
	switch rng.Intn(4) {
	case 0:
		x.Hi = 0
	case 1:
		x.Lo = 0
	}
	return x
}

func toBig(x wide.Uint128) *big.Int {
	b := new(big.Int).SetUint64(x.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(x.Lo))
}

var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

func fromBigTruncated(b *big.Int) wide.Uint128 {
	m := new(big.Int).Mod(b, two128)
	lo := new(big.Int).And(m, new(big.Int).SetUint64(math.MaxUint64))
	hi := new(big.Int).Rsh(m, 64)
	return wide.U128(hi.Uint64(), lo.Uint64())
}

func TestAddSubMulAgainstBig(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 5000; i++ {
		x, y := randUint128(rng), randUint128(rng)

		if got, want := x.Add(y), fromBigTruncated(new(big.Int).Add(toBig(x), toBig(y))); got != want {
			t.Fatalf("Add(%s, %s) = %s, want %s", x.Hex(), y.Hex(), got.Hex(), want.Hex())
		}
		if got, want := x.Sub(y), fromBigTruncated(new(big.Int).Sub(toBig(x), toBig(y))); got != want {
			t.Fatalf("Sub(%s, %s) = %s, want %s", x.Hex(), y.Hex(), got.Hex(), want.Hex())
		}
		if got, want := x.Mul(y), fromBigTruncated(new(big.Int).Mul(toBig(x), toBig(y))); got != want {
			t.Fatalf("Mul(%s, %s) = %s, want %s", x.Hex(), y.Hex(), got.Hex(), want.Hex())
		}
	}
}

func TestNeg(t *testing.T) {
	tests := []struct {
		x, want wide.Uint128
	}{
		{wide.U128(0, 0), wide.U128(0, 0)},
		{wide.U128(0, 1), wide.MaxUint128()},
		{wide.MaxUint128(), wide.U128(0, 1)},
		{wide.U128(1, 0), wide.U128(math.MaxUint64, 0)},
	}
	for _, tt := range tests {
		if got := tt.x.Neg(); got != tt.want {
			t.Errorf("Neg(%s) = %s, want %s", tt.x.Hex(), got.Hex(), tt.want.Hex())
		}
		if sum := tt.x.Add(tt.x.Neg()); !sum.IsZero() {
			t.Errorf("x + (-x) = %s for x = %s", sum.Hex(), tt.x.Hex())
		}
	}
}

func TestShifts(t *testing.T) {
	x := wide.U128(0x0123456789ABCDEF, 0xFEDCBA9876543210)
	tests := []struct {
		n        uint
		lsh, rsh wide.Uint128
	}{
		{0, x, x},
		{4, wide.U128(0x123456789ABCDEFF, 0xEDCBA98765432100), wide.U128(0x00123456789ABCDE, 0xFFEDCBA987654321)},
		{64, wide.U128(0xFEDCBA9876543210, 0), wide.U128(0, 0x0123456789ABCDEF)},
		{68, wide.U128(0xEDCBA98765432100, 0), wide.U128(0, 0x00123456789ABCDE)},
		{128, wide.U128(0, 0), wide.U128(0, 0)},
	}
	for _, tt := range tests {
		if got := x.Lsh(tt.n); got != tt.lsh {
			t.Errorf("Lsh(%d) = %s, want %s", tt.n, got.Hex(), tt.lsh.Hex())
		}
		if got := x.Rsh(tt.n); got != tt.rsh {
			t.Errorf("Rsh(%d) = %s, want %s", tt.n, got.Hex(), tt.rsh.Hex())
		}
	}
}

func TestArithmeticRsh(t *testing.T) {
	neg := wide.Int128FromInt64(-16)
	if got := neg.Rsh(2); got != wide.Int128FromInt64(-4) {
		t.Errorf("(-16) >> 2 = %s", got)
	}
	if got := wide.MinInt128().Rsh(127); got != wide.Int128FromInt64(-1) {
		t.Errorf("MinInt128 >> 127 = %s", got)
	}
	if got := wide.MinInt128().Rsh(64); got != wide.Int128FromInt64(math.MinInt64) {
		t.Errorf("MinInt128 >> 64 = %s", got)
	}
}

func TestLeadingTrailingZeros(t *testing.T) {
	tests := []struct {
		x      wide.Uint128
		lz, tz int
	}{
		{wide.U128(0, 0), 128, 128},
		{wide.U128(0, 1), 127, 0},
		{wide.U128(1, 0), 63, 64},
		{wide.U128(1<<63, 0), 0, 127},
		{wide.U128(0, 1 << 63), 64, 63},
	}
	for _, tt := range tests {
		if got := tt.x.LeadingZeros(); got != tt.lz {
			t.Errorf("LeadingZeros(%s) = %d, want %d", tt.x.Hex(), got, tt.lz)
		}
		if got := tt.x.TrailingZeros(); got != tt.tz {
			t.Errorf("TrailingZeros(%s) = %d, want %d", tt.x.Hex(), got, tt.tz)
		}
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		x    wide.Int128
		want wide.Uint128
	}{
		{wide.Int128FromInt64(0), wide.U128(0, 0)},
		{wide.Int128FromInt64(5), wide.U128(0, 5)},
		{wide.Int128FromInt64(-5), wide.U128(0, 5)},
		{wide.Int128FromInt64(math.MinInt64), wide.U128(0, 1 << 63)},
		{wide.MinInt128(), wide.U128(1<<63, 0)}, // |MinInt128| = 2^127
	}
	for _, tt := range tests {
		if got := tt.x.Abs(); got != tt.want {
			t.Errorf("Abs(%s) = %s, want %s", tt.x, got.Hex(), tt.want.Hex())
		}
	}
}
