package checked_test

import (
	"errors"
	"math"
	"testing"

	"github.com/wippyai/int-runtime/checked"
	interrors "github.com/wippyai/int-runtime/errors"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int64
		want     int64
		overflow bool
	}{
		{"simple", 2, 3, 5, false},
		{"negatives", -2, -3, -5, false},
		{"max plus zero", math.MaxInt64, 0, math.MaxInt64, false},
		{"max plus one", math.MaxInt64, 1, 0, true},
		{"min plus minus one", math.MinInt64, -1, 0, true},
		{"min plus max", math.MinInt64, math.MaxInt64, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checked.Add(tt.a, tt.b)
			checkResult(t, got, err, tt.want, tt.overflow)
		})
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int64
		want     int64
		overflow bool
	}{
		{"simple", 5, 3, 2, false},
		{"min minus zero", math.MinInt64, 0, math.MinInt64, false},
		{"min minus one", math.MinInt64, 1, 0, true},
		{"max minus minus one", math.MaxInt64, -1, 0, true},
		{"zero minus min", 0, math.MinInt64, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checked.Sub(tt.a, tt.b)
			checkResult(t, got, err, tt.want, tt.overflow)
		})
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int64
		want     int64
		overflow bool
	}{
		{"simple", 6, 7, 42, false},
		{"by zero", math.MinInt64, 0, 0, false},
		{"min by one", math.MinInt64, 1, math.MinInt64, false},
		{"min by minus one", math.MinInt64, -1, 0, true},
		{"max by two", math.MaxInt64, 2, 0, true},
		{"half min by two", math.MinInt64 / 2, 2, math.MinInt64, false},
		{"sqrt overflow", 3037000500, 3037000500, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checked.Mul(tt.a, tt.b)
			checkResult(t, got, err, tt.want, tt.overflow)
		})
	}
}

func TestNegAbs(t *testing.T) {
	if got, err := checked.Neg(5); err != nil || got != -5 {
		t.Errorf("Neg(5) = %d, %v", got, err)
	}
	if _, err := checked.Neg(math.MinInt64); !errors.Is(err, interrors.ErrOverflow) {
		t.Errorf("Neg(MinInt64): err = %v", err)
	}
	if got, err := checked.Abs(-5); err != nil || got != 5 {
		t.Errorf("Abs(-5) = %d, %v", got, err)
	}
	if got, err := checked.Abs(5); err != nil || got != 5 {
		t.Errorf("Abs(5) = %d, %v", got, err)
	}
	if _, err := checked.Abs(math.MinInt64); !errors.Is(err, interrors.ErrOverflow) {
		t.Errorf("Abs(MinInt64): err = %v", err)
	}
}

func TestDiv(t *testing.T) {
	if got, err := checked.Div(-7, 2); err != nil || got != -3 {
		t.Errorf("Div(-7, 2) = %d, %v", got, err)
	}
	if _, err := checked.Div(1, 0); !errors.Is(err, interrors.ErrDivideByZero) {
		t.Errorf("Div(1, 0): err = %v", err)
	}
	if _, err := checked.Div(math.MinInt64, -1); !errors.Is(err, interrors.ErrOverflow) {
		t.Errorf("Div(MinInt64, -1): err = %v", err)
	}
	if got, err := checked.Div(math.MinInt64, 1); err != nil || got != math.MinInt64 {
		t.Errorf("Div(MinInt64, 1) = %d, %v", got, err)
	}
}

func TestMod(t *testing.T) {
	if got, err := checked.Mod(-7, 2); err != nil || got != -1 {
		t.Errorf("Mod(-7, 2) = %d, %v", got, err)
	}
	if _, err := checked.Mod(1, 0); !errors.Is(err, interrors.ErrDivideByZero) {
		t.Errorf("Mod(1, 0): err = %v", err)
	}
	// MinInt64 % -1 is zero, not a fault.
	if got, err := checked.Mod(math.MinInt64, -1); err != nil || got != 0 {
		t.Errorf("Mod(MinInt64, -1) = %d, %v", got, err)
	}
}

func checkResult(t *testing.T, got int64, err error, want int64, overflow bool) {
	t.Helper()
	if overflow {
		if !errors.Is(err, interrors.ErrOverflow) {
			t.Errorf("err = %v, want overflow", err)
		}
		return
	}
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}
