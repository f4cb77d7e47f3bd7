// Package intruntime provides compiler-runtime style integer division
// primitives for native and double-width operands.
//
// The library implements truncating ("C semantics") signed and unsigned
// division and modulo over 64-bit machine words and over 128-bit values
// represented as {high, low} word pairs, together with a conformance
// harness that validates every primitive against fixed vector tables and
// an independent reference implementation.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	int-runtime/         Root package with architecture documentation
//	├── word/            Native-width (64/32-bit) division and modulo
//	├── wide/            128-bit integers built from {Hi, Lo} word pairs
//	├── checked/         Overflow-reporting arithmetic with error returns
//	├── errors/          Structured error types shared across packages
//	├── conformance/     Vector tables, runner, and result digests
//	├── oracle/          wazero-backed differential reference
//	└── cmd/intcheck/    Conformance harness CLI
//
// # Division Semantics
//
// All division truncates toward zero and the remainder carries the sign
// of the dividend, so for every nonzero divisor:
//
//	Div(a, b)*b + Mod(a, b) == a
//	|Mod(a, b)| < |b|
//
// Signed variants recover signs without data-dependent branches: the
// sign mask of each operand is its arithmetic shift by width-1, operands
// are made absolute with the XOR-subtract idiom, and the unsigned result
// is conditionally negated the same way. The most negative value wraps
// back to itself under two's-complement negation and divides correctly.
//
// # Preconditions
//
// Divisors must be nonzero. The word and wide packages mirror machine
// division and fault (panic) on a zero divisor; the checked package is
// the opt-in surface that reports zero divisors and overflow as errors
// instead.
//
// # Quick Start
//
// Divide a 128-bit value:
//
//	n := wide.U128(0x8000000000000000, 0) // 2^127
//	q, r := n.DivMod(wide.Uint128FromUint64(3))
//	fmt.Println(q, r)
//
// Run the conformance tables:
//
//	report := conformance.NewRunner().Run(ctx)
//	if report.Failed > 0 {
//	    os.Exit(1)
//	}
//
// # Thread Safety
//
// Every operation is a pure function of its operands; there is no shared
// mutable state. All packages are safe for concurrent use without
// coordination. The oracle's Oracle type serializes calls internally
// because the underlying wasm instance is single-threaded.
package intruntime
