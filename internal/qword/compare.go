package qword

type cmpKind uint8

const (
	cmpEq cmpKind = iota
	cmpNeq
	cmpLt
	cmpGt
	cmpLe
	cmpGe
)

// compare yields a QWORD holding a bool. NaN operands still produce the
// IEEE answer but are flagged with WasNaN.
func compare[T number](kind cmpKind) binaryFn {
	return func(a, b QWORD) (QWORD, OpError) {
		x, y := As[T](a), As[T](b)
		var r bool
		switch kind {
		case cmpEq:
			r = x == y
		case cmpNeq:
			r = x != y
		case cmpLt:
			r = x < y
		case cmpGt:
			r = x > y
		case cmpLe:
			r = x <= y
		case cmpGe:
			r = x >= y
		}
		if isNaN(x) || isNaN(y) {
			return Of(r), WasNaN
		}
		return Of(r), NoError
	}
}

func compareTable(kind cmpKind) [typeOpCount]binaryFn {
	return [typeOpCount]binaryFn{
		I8: compare[int8](kind), I16: compare[int16](kind), I32: compare[int32](kind), I64: compare[int64](kind),
		U8: compare[uint8](kind), U16: compare[uint16](kind), U32: compare[uint32](kind), U64: compare[uint64](kind),
		F32: compare[float32](kind),
		F64: compare[float64](kind),
	}
}

var (
	eqTable  = compareTable(cmpEq)
	neqTable = compareTable(cmpNeq)
	ltTable  = compareTable(cmpLt)
	gtTable  = compareTable(cmpGt)
	leTable  = compareTable(cmpLe)
	geTable  = compareTable(cmpGe)
)
