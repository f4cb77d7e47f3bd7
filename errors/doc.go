// Package errors provides structured error types for the int-runtime
// library.
//
// The core division primitives in word and wide are total functions over
// their documented domain and fault on a zero divisor, so they never
// return errors. This package serves the surfaces that do report
// failures: the checked arithmetic package, 128-bit parsing, and the
// wazero-backed oracle.
//
// Every error carries an operation name and a Kind. Callers match with
// the standard errors.Is against the exported sentinels:
//
//	_, err := checked.Div(math.MinInt64, -1)
//	if errors.Is(err, interrors.ErrOverflow) {
//	    // quotient does not fit
//	}
package errors
