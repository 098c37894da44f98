package qword

// Add returns a + b interpreted as t.
func Add(a, b QWORD, t TypeOp) (QWORD, OpError) {
	mustValid(t)
	return addTable[t](a, b)
}

// Sub returns a - b interpreted as t.
func Sub(a, b QWORD, t TypeOp) (QWORD, OpError) {
	mustValid(t)
	return subTable[t](a, b)
}

// Mul returns a * b interpreted as t.
func Mul(a, b QWORD, t TypeOp) (QWORD, OpError) {
	mustValid(t)
	return mulTable[t](a, b)
}

// Div returns a / b interpreted as t. For integers a zero divisor is
// reported before any overflow check and leaves a untouched.
func Div(a, b QWORD, t TypeOp) (QWORD, OpError) {
	mustValid(t)
	return divTable[t](a, b)
}

// Mod returns the remainder of a / b interpreted as t. Floats follow fmod.
func Mod(a, b QWORD, t TypeOp) (QWORD, OpError) {
	mustValid(t)
	return modTable[t](a, b)
}

// Neg returns -a. Unsigned operands report InvalidOp.
func Neg(a QWORD, t TypeOp) (QWORD, OpError) {
	mustValid(t)
	return negTable[t](a)
}

func Eq(a, b QWORD, t TypeOp) (QWORD, OpError) {
	mustValid(t)
	return eqTable[t](a, b)
}

func Neq(a, b QWORD, t TypeOp) (QWORD, OpError) {
	mustValid(t)
	return neqTable[t](a, b)
}

func Lt(a, b QWORD, t TypeOp) (QWORD, OpError) {
	mustValid(t)
	return ltTable[t](a, b)
}

func Gt(a, b QWORD, t TypeOp) (QWORD, OpError) {
	mustValid(t)
	return gtTable[t](a, b)
}

func Le(a, b QWORD, t TypeOp) (QWORD, OpError) {
	mustValid(t)
	return leTable[t](a, b)
}

func Ge(a, b QWORD, t TypeOp) (QWORD, OpError) {
	mustValid(t)
	return geTable[t](a, b)
}

// Convert reinterprets v from one TypeOp to another.
func Convert(v QWORD, from, to TypeOp) (QWORD, OpError) {
	mustValid(from)
	mustValid(to)
	return convTable[from][to](v)
}
