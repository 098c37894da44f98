// Package qword implements checked operations on QWORD, the 8-byte bit cell
// the interpreter and the constant folder use to carry runtime values.
//
// # Model
//
// A QWORD holds the bit pattern of one scalar. The TypeOp passed alongside
// an operation says how to read it: i8..i64, u8..u64, f32 or f64. Writing a
// value of width w clears every bit above w, so reading back the same type
// always yields the written value.
//
// # Results
//
// Every operation returns a (QWORD, OpError) pair. NoError means the QWORD
// holds the exact result. Any other code is advisory: the QWORD still holds
// a best-effort value (wrapped for integer overflow, clamped for float to
// integer conversions, the offending NaN operand for WasNaN) and the caller
// decides whether to warn, fail or continue.
//
// # Dispatch
//
// Typed operations are routed through per-operation tables indexed by
// TypeOp, built once at package initialisation. Bitwise operations and
// shifts take an explicit Size instead of a TypeOp, since only the width
// matters to them. Passing a TypeOp or Size outside the catalog is a
// programming error and panics.
//
// Nothing in this package holds mutable state; every function is safe for
// concurrent use.
package qword
