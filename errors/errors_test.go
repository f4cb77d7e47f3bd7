package errors_test

import (
	stderrors "errors"
	"strings"
	"testing"

	interrors "github.com/wippyai/int-runtime/errors"
)

func TestErrorString(t *testing.T) {
	e := interrors.DivideByZero("checked.Div")
	want := "[checked.Div] divide_by_zero: divisor is zero"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorStringWithCause(t *testing.T) {
	cause := stderrors.New("boom")
	e := interrors.Trap("oracle.DivS", cause)
	got := e.Error()
	if !strings.Contains(got, "trap") || !strings.Contains(got, "caused by: boom") {
		t.Errorf("Error() = %q", got)
	}
}

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"divide by zero", interrors.DivideByZero("checked.Div"), interrors.ErrDivideByZero},
		{"overflow", interrors.Overflow("checked.Mul", [2]int64{1, 2}), interrors.ErrOverflow},
		{"parse", interrors.ParseFailed("wide.ParseUint128", "xyz", nil), interrors.ErrParse},
		{"range", interrors.OutOfRange("wide.ParseInt128", "…", "int128"), interrors.ErrRange},
		{"trap", interrors.Trap("oracle.DivS", stderrors.New("wasm trap")), interrors.ErrTrap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !stderrors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false", tt.err)
			}
			// A sentinel of another kind must not match.
			if stderrors.Is(tt.err, &interrors.Error{Kind: "other"}) {
				t.Errorf("errors.Is(%v, other kind) = true", tt.err)
			}
		})
	}
}

func TestOpScopedMatching(t *testing.T) {
	err := interrors.DivideByZero("checked.Mod")
	if !stderrors.Is(err, &interrors.Error{Op: "checked.Mod", Kind: interrors.KindDivideByZero}) {
		t.Error("same op and kind should match")
	}
	if stderrors.Is(err, &interrors.Error{Op: "checked.Div", Kind: interrors.KindDivideByZero}) {
		t.Error("different op should not match")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := interrors.ParseFailed("wide.ParseInt128", "bad", cause)
	if !stderrors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
}
