package errors

import (
	"fmt"
	"strings"
)

// Kind categorizes the error
type Kind string

const (
	KindDivideByZero Kind = "divide_by_zero"
	KindOverflow     Kind = "overflow"
	KindParse        Kind = "parse"
	KindRange        Kind = "range"
	KindTrap         Kind = "trap" // reference execution fault
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Op     string // operation that failed, e.g. "checked.Div"
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(e.Op)
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target with an empty
// Op matches on Kind alone, which lets callers test against the package
// sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op != "" && t.Op != e.Op {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is matching on Kind.
var (
	ErrDivideByZero = &Error{Kind: KindDivideByZero}
	ErrOverflow     = &Error{Kind: KindOverflow}
	ErrParse        = &Error{Kind: KindParse}
	ErrRange        = &Error{Kind: KindRange}
	ErrTrap         = &Error{Kind: KindTrap}
)

// Convenience constructors for common error patterns

// DivideByZero creates a zero-divisor error
func DivideByZero(op string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindDivideByZero,
		Detail: "divisor is zero",
	}
}

// Overflow creates an overflow error for the given operand(s)
func Overflow(op string, value any) *Error {
	return &Error{
		Op:     op,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("result of %v does not fit", value),
		Value:  value,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(op, input string, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindParse,
		Detail: fmt.Sprintf("parse %q", input),
		Cause:  cause,
	}
}

// OutOfRange creates a range error for a value that does not fit the
// target width
func OutOfRange(op string, value any, target string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindRange,
		Detail: fmt.Sprintf("value %v out of range for %s", value, target),
		Value:  value,
	}
}

// Trap wraps a fault raised by the reference execution engine
func Trap(op string, cause error) *Error {
	return &Error{
		Op:    op,
		Kind:  KindTrap,
		Cause: cause,
	}
}
