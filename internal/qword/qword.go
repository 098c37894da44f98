package qword

import "math"

// QWORD is a 64-bit storage cell reinterpreted per operation.
type QWORD uint64

// Scalar lists the host types a QWORD can be read as or written from.
type Scalar interface {
	bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

type number interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

type float interface {
	float32 | float64
}

// Of stores v in a fresh QWORD. Bits above the width of T are zero.
func Of[T Scalar](v T) QWORD {
	switch x := any(v).(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case int8:
		return QWORD(uint8(x))
	case int16:
		return QWORD(uint16(x))
	case int32:
		return QWORD(uint32(x))
	case int64:
		return QWORD(uint64(x))
	case uint8:
		return QWORD(x)
	case uint16:
		return QWORD(x)
	case uint32:
		return QWORD(x)
	case uint64:
		return QWORD(x)
	case float32:
		return QWORD(math.Float32bits(x))
	case float64:
		return QWORD(math.Float64bits(x))
	}
	panic("qword: unreachable scalar type")
}

// As reads the low bits of q as T.
func As[T Scalar](q QWORD) T {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		*p = uint8(q) != 0
	case *int8:
		*p = int8(uint8(q))
	case *int16:
		*p = int16(uint16(q))
	case *int32:
		*p = int32(uint32(q))
	case *int64:
		*p = int64(q)
	case *uint8:
		*p = uint8(q)
	case *uint16:
		*p = uint16(q)
	case *uint32:
		*p = uint32(q)
	case *uint64:
		*p = uint64(q)
	case *float32:
		*p = math.Float32frombits(uint32(q))
	case *float64:
		*p = math.Float64frombits(uint64(q))
	}
	return out
}

// Bits returns the raw pattern.
func (q QWORD) Bits() uint64 { return uint64(q) }

func isNaN[T Scalar](v T) bool {
	switch f := any(v).(type) {
	case float32:
		return f != f
	case float64:
		return math.IsNaN(f)
	}
	return false
}

// mask returns the low-bits mask for a width in [1, 64].
func mask(bits uint) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return (uint64(1) << bits) - 1
}

// sext reads the low bits of v as a two's complement integer.
func sext(v uint64, bits uint) int64 {
	if bits >= 64 {
		return int64(v)
	}
	m := mask(bits)
	v &= m
	if v&(uint64(1)<<(bits-1)) == 0 {
		return int64(v)
	}
	return int64(v | ^m)
}

func fromSigned(v int64, bits uint) QWORD {
	return QWORD(uint64(v) & mask(bits))
}

func signedRange(bits uint) (lo, hi int64) {
	if bits >= 64 {
		return math.MinInt64, math.MaxInt64
	}
	hi = int64(mask(bits - 1))
	return -hi - 1, hi
}
