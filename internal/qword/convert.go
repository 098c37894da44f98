package qword

import "math"

// Conversions. Integer to integer is a plain truncating cast, with no
// range check. Float to integer checks the destination range and clamps on
// failure.

var convTable [typeOpCount][typeOpCount]unaryFn

func init() {
	for from := range typeOpCount {
		for to := range typeOpCount {
			convTable[from][to] = makeConv(TypeOp(from), TypeOp(to))
		}
	}
}

func widthOf(t TypeOp) uint { return SizeOf(t).Bits() }

func makeConv(from, to TypeOp) unaryFn {
	switch {
	case from == to:
		return func(a QWORD) (QWORD, OpError) {
			return QWORD(uint64(a) & mask(widthOf(to))), NoError
		}
	case from.IsSInt():
		fw := widthOf(from)
		return func(a QWORD) (QWORD, OpError) {
			return fromInt64(sext(uint64(a), fw), to), NoError
		}
	case from.IsUInt():
		fw := widthOf(from)
		return func(a QWORD) (QWORD, OpError) {
			return fromUint64(uint64(a)&mask(fw), to), NoError
		}
	case from == F32:
		return func(a QWORD) (QWORD, OpError) {
			return fromFloat(As[float32](a), to)
		}
	default:
		return func(a QWORD) (QWORD, OpError) {
			return fromFloat(As[float64](a), to)
		}
	}
}

func fromInt64(v int64, to TypeOp) QWORD {
	switch to {
	case F32:
		return Of(float32(v))
	case F64:
		return Of(float64(v))
	default:
		return fromSigned(v, widthOf(to))
	}
}

func fromUint64(v uint64, to TypeOp) QWORD {
	switch to {
	case F32:
		return Of(float32(v))
	case F64:
		return Of(float64(v))
	default:
		return QWORD(v & mask(widthOf(to)))
	}
}

func fromFloat[F float](v F, to TypeOp) (QWORD, OpError) {
	if isNaN(v) {
		return 0, WasNaN
	}
	switch {
	case to == F32:
		return Of(float32(v)), NoError
	case to == F64:
		return Of(float64(v)), NoError
	case to.IsUInt():
		return floatToUnsigned(v, widthOf(to))
	default:
		return floatToSigned(v, widthOf(to))
	}
}

// floatToUnsigned compares against 2^width computed in the source precision;
// v is accepted when it rounds to a value strictly below that bound.
func floatToUnsigned[F float](v F, width uint) (QWORD, OpError) {
	if v < 0 {
		return 0, UnsignedUnderflow
	}
	limit := F(math.Ldexp(1, int(width)))
	if !(v-limit < -0.5) {
		return QWORD(mask(width)), UnsignedOverflow
	}
	return QWORD(uint64(v) & mask(width)), NoError
}

func floatToSigned[F float](v F, width uint) (QWORD, OpError) {
	lo, hi := signedRange(width)
	limit := F(math.Ldexp(1, int(width)-1))
	if !(v-limit < -0.5) {
		return fromSigned(hi, width), SignedOverflow
	}
	if !(v+limit > -0.5) {
		return fromSigned(lo, width), SignedUnderflow
	}
	return fromSigned(int64(v), width), NoError
}
