// Package conformance validates every division primitive against fixed
// vector tables.
//
// The tables carry the boundary operands that historically break sign
// recovery: zero over ±1, the ±5/±3 quadrant probing all four sign
// combinations, and the most negative native and double-width values
// divided by ±1, ±2, ±3, where two's-complement negation wraps the
// dividend back onto itself. The 128-bit tables exercise both divider
// paths, single-word divisors and full-width ones.
//
// A Runner evaluates the tables bit-exactly, logs each mismatch through
// zap with the operands and actual/expected values rendered as high/low
// hexadecimal halves, and can differentially check every native-width
// vector against the wazero-backed oracle. Report.Digest folds every
// (operation, operands, result) tuple into an xxhash sum so runs on
// different architectures can be compared with a single value.
package conformance
