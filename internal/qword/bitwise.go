package qword

// Bitwise operations ignore signedness: results are masked to the low
// sz.Bits() bits and never fail, shifts aside.

// And returns a & b masked to sz.
func And(a, b QWORD, sz Size) (QWORD, OpError) {
	return QWORD(uint64(a&b) & mask(sz.Bits())), NoError
}

// Or returns a | b masked to sz.
func Or(a, b QWORD, sz Size) (QWORD, OpError) {
	return QWORD(uint64(a|b) & mask(sz.Bits())), NoError
}

// Xor returns a ^ b masked to sz.
func Xor(a, b QWORD, sz Size) (QWORD, OpError) {
	return QWORD(uint64(a^b) & mask(sz.Bits())), NoError
}

// Not returns ^a masked to sz.
func Not(a QWORD, sz Size) (QWORD, OpError) {
	return QWORD(^uint64(a) & mask(sz.Bits())), NoError
}

// BoolNot negates a QWORD holding a bool.
func BoolNot(a QWORD) (QWORD, OpError) {
	return Of(!As[bool](a)), NoError
}

// Shl shifts a left by b. A shift amount >= sz yields zero and
// ShiftByGreaterSizeof.
func Shl(a, b QWORD, sz Size) (QWORD, OpError) {
	width := sz.Bits()
	m := mask(width)
	n := uint64(b)
	if n >= uint64(width) {
		return 0, ShiftByGreaterSizeof
	}
	return QWORD((uint64(a) << n) & m), NoError
}

// Shr shifts a right by b, filling with zeros. A shift amount >= sz yields
// zero and ShiftByGreaterSizeof.
func Shr(a, b QWORD, sz Size) (QWORD, OpError) {
	width := sz.Bits()
	m := mask(width)
	n := uint64(b)
	if n >= uint64(width) {
		return 0, ShiftByGreaterSizeof
	}
	return QWORD((uint64(a) & m) >> n), NoError
}

// Sar shifts a right by b, replicating the sign bit of the sz-wide value.
// A shift amount >= sz saturates to all sign bits and reports
// ShiftByGreaterSizeof.
func Sar(a, b QWORD, sz Size) (QWORD, OpError) {
	width := sz.Bits()
	m := mask(width)
	x := sext(uint64(a), width)
	n := uint64(b)
	if n >= uint64(width) {
		if x < 0 {
			return QWORD(m), ShiftByGreaterSizeof
		}
		return 0, ShiftByGreaterSizeof
	}
	return QWORD(uint64(x>>n) & m), NoError
}

// The *Of variants derive the width from a TypeOp.

func AndOf(a, b QWORD, t TypeOp) (QWORD, OpError) { return And(a, b, SizeOf(t)) }
func OrOf(a, b QWORD, t TypeOp) (QWORD, OpError)  { return Or(a, b, SizeOf(t)) }
func XorOf(a, b QWORD, t TypeOp) (QWORD, OpError) { return Xor(a, b, SizeOf(t)) }
func NotOf(a QWORD, t TypeOp) (QWORD, OpError)    { return Not(a, SizeOf(t)) }
func ShlOf(a, b QWORD, t TypeOp) (QWORD, OpError) { return Shl(a, b, SizeOf(t)) }
func ShrOf(a, b QWORD, t TypeOp) (QWORD, OpError) { return Shr(a, b, SizeOf(t)) }
func SarOf(a, b QWORD, t TypeOp) (QWORD, OpError) { return Sar(a, b, SizeOf(t)) }
