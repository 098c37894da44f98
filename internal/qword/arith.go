package qword

import (
	"math"
	"math/bits"
)

type binaryFn func(a, b QWORD) (QWORD, OpError)

type unaryFn func(a QWORD) (QWORD, OpError)

// Integer arithmetic ---------------------------------------------------------
//
// Operands are widened to int64/uint64 and the range is checked before the
// wrapped value is written back, so the result is always populated.

func addSigned(width uint) binaryFn {
	lo, hi := signedRange(width)
	return func(a, b QWORD) (QWORD, OpError) {
		x, y := sext(uint64(a), width), sext(uint64(b), width)
		err := NoError
		switch {
		case y > 0 && x > hi-y:
			err = SignedOverflow
		case y < 0 && x < lo-y:
			err = SignedUnderflow
		}
		return fromSigned(x+y, width), err
	}
}

func subSigned(width uint) binaryFn {
	lo, hi := signedRange(width)
	return func(a, b QWORD) (QWORD, OpError) {
		x, y := sext(uint64(a), width), sext(uint64(b), width)
		err := NoError
		switch {
		case y < 0 && x > hi+y:
			err = SignedOverflow
		case y > 0 && x < lo+y:
			err = SignedUnderflow
		}
		return fromSigned(x-y, width), err
	}
}

func mulSigned(width uint) binaryFn {
	_, hi := signedRange(width)
	limitPos := uint64(hi)
	limitNeg := uint64(hi) + 1
	return func(a, b QWORD) (QWORD, OpError) {
		x, y := sext(uint64(a), width), sext(uint64(b), width)
		negative := (x < 0) != (y < 0)
		phi, plo := bits.Mul64(magnitude(x), magnitude(y))
		err := NoError
		switch {
		case negative && (phi != 0 || plo > limitNeg):
			err = SignedUnderflow
		case !negative && (phi != 0 || plo > limitPos):
			err = SignedOverflow
		}
		return fromSigned(x*y, width), err
	}
}

func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

func divSigned(width uint) binaryFn {
	lo, _ := signedRange(width)
	return func(a, b QWORD) (QWORD, OpError) {
		x, y := sext(uint64(a), width), sext(uint64(b), width)
		if y == 0 {
			return a, DivByZero
		}
		if x == lo && y == -1 {
			return fromSigned(lo, width), SignedOverflow
		}
		return fromSigned(x/y, width), NoError
	}
}

func modSigned(width uint) binaryFn {
	return func(a, b QWORD) (QWORD, OpError) {
		x, y := sext(uint64(a), width), sext(uint64(b), width)
		if y == 0 {
			return a, DivByZero
		}
		return fromSigned(x%y, width), NoError
	}
}

func addUnsigned(width uint) binaryFn {
	m := mask(width)
	return func(a, b QWORD) (QWORD, OpError) {
		x, y := uint64(a)&m, uint64(b)&m
		sum, carry := bits.Add64(x, y, 0)
		if carry != 0 || sum > m {
			return QWORD(sum & m), UnsignedOverflow
		}
		return QWORD(sum), NoError
	}
}

func subUnsigned(width uint) binaryFn {
	m := mask(width)
	return func(a, b QWORD) (QWORD, OpError) {
		x, y := uint64(a)&m, uint64(b)&m
		if y > x {
			return QWORD((x - y) & m), UnsignedUnderflow
		}
		return QWORD(x - y), NoError
	}
}

func mulUnsigned(width uint) binaryFn {
	m := mask(width)
	return func(a, b QWORD) (QWORD, OpError) {
		x, y := uint64(a)&m, uint64(b)&m
		hi, lo := bits.Mul64(x, y)
		if hi != 0 || lo > m {
			return QWORD(lo & m), UnsignedOverflow
		}
		return QWORD(lo), NoError
	}
}

func divUnsigned(width uint) binaryFn {
	m := mask(width)
	return func(a, b QWORD) (QWORD, OpError) {
		x, y := uint64(a)&m, uint64(b)&m
		if y == 0 {
			return a, DivByZero
		}
		return QWORD(x / y), NoError
	}
}

func modUnsigned(width uint) binaryFn {
	m := mask(width)
	return func(a, b QWORD) (QWORD, OpError) {
		x, y := uint64(a)&m, uint64(b)&m
		if y == 0 {
			return a, DivByZero
		}
		return QWORD(x % y), NoError
	}
}

// Floating point -------------------------------------------------------------

func floatBinary[F float](fn func(x, y F) F) binaryFn {
	return func(a, b QWORD) (QWORD, OpError) {
		x, y := As[F](a), As[F](b)
		if isNaN(x) {
			return a, WasNaN
		}
		if isNaN(y) {
			return b, WasNaN
		}
		r := fn(x, y)
		if isNaN(r) {
			return Of(r), RetNaN
		}
		return Of(r), NoError
	}
}

func fadd[F float](x, y F) F { return x + y }
func fsub[F float](x, y F) F { return x - y }
func fmul[F float](x, y F) F { return x * y }
func fdiv[F float](x, y F) F { return x / y }
func fmod[F float](x, y F) F { return F(math.Mod(float64(x), float64(y))) }

// Negation -------------------------------------------------------------------

func negSigned(width uint) unaryFn {
	lo, _ := signedRange(width)
	return func(a QWORD) (QWORD, OpError) {
		x := sext(uint64(a), width)
		if x == lo {
			return fromSigned(lo, width), SignedUnderflow
		}
		return fromSigned(-x, width), NoError
	}
}

func negUnsigned(a QWORD) (QWORD, OpError) {
	return a, InvalidOp
}

func negFloat[F float](a QWORD) (QWORD, OpError) {
	x := As[F](a)
	if isNaN(x) {
		return a, WasNaN
	}
	return Of(-x), NoError
}

// Tables ---------------------------------------------------------------------

func arithTable(
	signed func(uint) binaryFn,
	unsigned func(uint) binaryFn,
	f32 func(x, y float32) float32,
	f64 func(x, y float64) float64,
) [typeOpCount]binaryFn {
	return [typeOpCount]binaryFn{
		I8: signed(8), I16: signed(16), I32: signed(32), I64: signed(64),
		U8: unsigned(8), U16: unsigned(16), U32: unsigned(32), U64: unsigned(64),
		F32: floatBinary(f32),
		F64: floatBinary(f64),
	}
}

var (
	addTable = arithTable(addSigned, addUnsigned, fadd[float32], fadd[float64])
	subTable = arithTable(subSigned, subUnsigned, fsub[float32], fsub[float64])
	mulTable = arithTable(mulSigned, mulUnsigned, fmul[float32], fmul[float64])
	divTable = arithTable(divSigned, divUnsigned, fdiv[float32], fdiv[float64])
	modTable = arithTable(modSigned, modUnsigned, fmod[float32], fmod[float64])

	negTable = [typeOpCount]unaryFn{
		I8: negSigned(8), I16: negSigned(16), I32: negSigned(32), I64: negSigned(64),
		U8: negUnsigned, U16: negUnsigned, U32: negUnsigned, U64: negUnsigned,
		F32: negFloat[float32],
		F64: negFloat[float64],
	}
)
