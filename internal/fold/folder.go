package fold

import (
	"context"
	"fmt"

	"colt/internal/diag"
	"colt/internal/ops"
	"colt/internal/project"
	"colt/internal/qword"
	"colt/internal/trace"
	"colt/internal/types"
)

// Value is a folded constant: a type from the folder's buffer and its bits.
// A value of the error type carries no meaningful bits.
type Value struct {
	Type types.TypeToken
	Bits qword.QWORD
}

// Folder evaluates operators over constants, checking type support first and
// then reporting every engine result code through rep. A Folder is not safe
// for concurrent use; give each goroutine its own TypeBuffer and Folder.
type Folder struct {
	buf    *types.TypeBuffer
	warn   project.WarnFor
	rep    diag.Reporter
	tracer trace.Tracer
	parent uint64
}

func New(ctx context.Context, buf *types.TypeBuffer, warn project.WarnFor, rep diag.Reporter) *Folder {
	if rep == nil {
		rep = diag.NopReporter{}
	}
	return &Folder{
		buf:    buf,
		warn:   warn,
		rep:    rep,
		tracer: trace.FromContext(ctx),
		parent: trace.ParentID(ctx),
	}
}

// Buffer returns the type buffer values are interned in.
func (f *Folder) Buffer() *types.TypeBuffer { return f.buf }

// Const builds a value of a builtin type.
func (f *Folder) Const(id types.BuiltinID, q qword.QWORD) Value {
	return Value{Type: f.buf.AddBuiltin(id), Bits: q}
}

// Literal parses text as a constant of type ty. Unparsable text is reported
// as PRJ5002 and yields an error value.
func (f *Folder) Literal(at diag.Span, ty types.TypeToken, text string) Value {
	v := f.buf.Type(ty)
	if v.IsError() {
		return f.errorValue()
	}
	id, ok := v.Builtin()
	if !ok {
		diag.ReportError(f.rep, diag.PrjBadLiteral, at,
			fmt.Sprintf("type %s has no literals", f.buf.TypeName(ty))).Emit()
		return f.errorValue()
	}
	q, err := ParseLiteral(id, text)
	if err != nil {
		diag.ReportError(f.rep, diag.PrjBadLiteral, at, err.Error()).Emit()
		return f.errorValue()
	}
	return Value{Type: ty, Bits: q}
}

// IsError reports whether v is of the error type.
func (f *Folder) IsError(v Value) bool {
	return f.buf.Type(v.Type).IsError()
}

// Format renders v as a literal of its type.
func (f *Folder) Format(v Value) string {
	id, ok := f.buf.Builtin(v.Type)
	if !ok {
		return f.buf.TypeName(v.Type)
	}
	return FormatTyped(id, v.Bits)
}

func (f *Folder) errorValue() Value { return Value{Type: f.buf.ErrorType()} }

// Unary folds `op v`.
func (f *Folder) Unary(at diag.Span, op ops.UnaryOp, v Value) Value {
	tv := f.buf.Type(v.Type)
	if tv.IsError() {
		return f.errorValue()
	}
	if tv.SupportsUnary(op) != types.UnaryBuiltin {
		diag.ReportError(f.rep, diag.TypUnaryUnsupported, at,
			fmt.Sprintf("unary operator '%s' is not supported by type %s", op, f.buf.TypeName(v.Type))).Emit()
		return f.errorValue()
	}
	id, ok := tv.Builtin()
	if !ok {
		return f.notFoldable(at, v.Type)
	}
	expr := fmt.Sprintf("%s%s", op, FormatTyped(id, v.Bits))

	var (
		res qword.QWORD
		err qword.OpError
	)
	if id.IsBool() {
		res, err = qword.BoolNot(v.Bits)
	} else {
		res, err = unaryOf(op, id, v.Bits)
	}
	return f.finish(at, "unary", expr, Value{Type: v.Type, Bits: res}, err)
}

func unaryOf(op ops.UnaryOp, id types.BuiltinID, a qword.QWORD) (qword.QWORD, qword.OpError) {
	if op == ops.BitNot {
		return qword.Not(a, SizeOf(id))
	}
	t, _ := TypeOpOf(id)
	switch op {
	case ops.Negate:
		return qword.Neg(a, t)
	case ops.Inc:
		return qword.Add(a, one(t), t)
	case ops.Dec:
		return qword.Sub(a, one(t), t)
	}
	return a, qword.InvalidOp
}

func one(t qword.TypeOp) qword.QWORD {
	q, _ := qword.Convert(qword.Of(int64(1)), qword.I64, t)
	return q
}

// Binary folds `lhs op rhs`. Comparisons and boolean logic yield bool.
func (f *Folder) Binary(at diag.Span, op ops.BinaryOp, lhs, rhs Value) Value {
	lt, rt := f.buf.Type(lhs.Type), f.buf.Type(rhs.Type)
	if lt.IsError() || rt.IsError() {
		return f.errorValue()
	}
	switch lt.SupportsBinary(op, rt) {
	case types.BinaryInvalidOp:
		diag.ReportError(f.rep, diag.TypBinaryUnsupported, at,
			fmt.Sprintf("binary operator '%s' is not supported by type %s", op, f.buf.TypeName(lhs.Type))).Emit()
		return f.errorValue()
	case types.BinaryInvalidType:
		diag.ReportError(f.rep, diag.TypOperandMismatch, at,
			fmt.Sprintf("operator '%s' cannot combine %s with %s", op, f.buf.TypeName(lhs.Type), f.buf.TypeName(rhs.Type))).
			WithNote(at, "both operands must have the same type").
			Emit()
		return f.errorValue()
	}
	id, ok := lt.Builtin()
	if !ok {
		return f.notFoldable(at, lhs.Type)
	}
	if _, ok := rt.Builtin(); !ok {
		return f.notFoldable(at, rhs.Type)
	}
	expr := fmt.Sprintf("%s %s %s", FormatTyped(id, lhs.Bits), op, FormatTyped(id, rhs.Bits))

	resType := lhs.Type
	family := ops.FamilyOf(op)
	if family == ops.Comparison || family == ops.BoolLogic {
		resType = f.buf.AddBuiltin(types.Bool)
	}
	var (
		res qword.QWORD
		err qword.OpError
	)
	if id.IsBool() {
		res, err = boolBinary(op, lhs.Bits, rhs.Bits)
	} else {
		res, err = binaryOf(op, id, lhs.Bits, rhs.Bits)
	}
	return f.finish(at, "binary", expr, Value{Type: resType, Bits: res}, err)
}

func boolBinary(op ops.BinaryOp, a, b qword.QWORD) (qword.QWORD, qword.OpError) {
	x, y := qword.As[bool](a), qword.As[bool](b)
	switch op {
	case ops.BitAnd, ops.BoolAnd:
		return qword.Of(x && y), qword.NoError
	case ops.BitOr, ops.BoolOr:
		return qword.Of(x || y), qword.NoError
	case ops.BitXor, ops.NotEqual:
		return qword.Of(x != y), qword.NoError
	case ops.Equal:
		return qword.Of(x == y), qword.NoError
	}
	return 0, qword.InvalidOp
}

func binaryOf(op ops.BinaryOp, id types.BuiltinID, a, b qword.QWORD) (qword.QWORD, qword.OpError) {
	t, _ := TypeOpOf(id)
	sz := SizeOf(id)
	switch op {
	case ops.Sum:
		return qword.Add(a, b, t)
	case ops.Sub:
		return qword.Sub(a, b, t)
	case ops.Mul:
		return qword.Mul(a, b, t)
	case ops.Div:
		return qword.Div(a, b, t)
	case ops.Mod:
		return qword.Mod(a, b, t)
	case ops.BitAnd:
		return qword.And(a, b, sz)
	case ops.BitOr:
		return qword.Or(a, b, sz)
	case ops.BitXor:
		return qword.Xor(a, b, sz)
	case ops.BitLShift:
		return qword.Shl(a, b, sz)
	case ops.BitRShift:
		if id.IsSInt() {
			return qword.Sar(a, b, sz)
		}
		return qword.Shr(a, b, sz)
	case ops.Less:
		return qword.Lt(a, b, t)
	case ops.LessEqual:
		return qword.Le(a, b, t)
	case ops.Great:
		return qword.Gt(a, b, t)
	case ops.GreatEqual:
		return qword.Ge(a, b, t)
	case ops.NotEqual:
		return qword.Neq(a, b, t)
	case ops.Equal:
		return qword.Eq(a, b, t)
	}
	return 0, qword.InvalidOp
}

// Cast folds `v as to`.
func (f *Folder) Cast(at diag.Span, v Value, to types.TypeToken) Value {
	from, dst := f.buf.Type(v.Type), f.buf.Type(to)
	if from.IsError() || dst.IsError() {
		return f.errorValue()
	}
	if from.CastableTo(dst) != types.CastBuiltin {
		diag.ReportError(f.rep, diag.TypInvalidCast, at,
			fmt.Sprintf("cannot convert %s to %s", f.buf.TypeName(v.Type), f.buf.TypeName(to))).Emit()
		return f.errorValue()
	}
	src, ok := from.Builtin()
	if !ok {
		return f.notFoldable(at, v.Type)
	}
	id, ok := dst.Builtin()
	if !ok {
		return f.notFoldable(at, to)
	}
	expr := fmt.Sprintf("%s as %s", FormatTyped(src, v.Bits), id)
	res, err := convert(src, id, v.Bits)
	return f.finish(at, "cast", expr, Value{Type: to, Bits: res}, err)
}

func convert(from, to types.BuiltinID, q qword.QWORD) (qword.QWORD, qword.OpError) {
	if from == to {
		return q, qword.NoError
	}
	if from.IsBool() {
		if to.IsBool() {
			return q, qword.NoError
		}
		t, _ := TypeOpOf(to)
		return qword.Convert(qword.Of(qword.As[bool](q)), qword.U8, t)
	}
	ft, _ := TypeOpOf(from)
	if to.IsBool() {
		return qword.Neq(q, 0, ft)
	}
	t, _ := TypeOpOf(to)
	return qword.Convert(q, ft, t)
}

func (f *Folder) notFoldable(at diag.Span, tok types.TypeToken) Value {
	diag.ReportError(f.rep, diag.TypNotFoldable, at,
		fmt.Sprintf("values of type %s cannot be folded", f.buf.TypeName(tok))).Emit()
	return f.errorValue()
}

// finish turns an engine result code into diagnostics. Division by zero and
// invalid operations poison the result; other codes keep it and warn.
func (f *Folder) finish(at diag.Span, kind, expr string, res Value, err qword.OpError) Value {
	trace.Point(f.tracer, trace.ScopeOp, "fold."+kind, f.parent, fmt.Sprintf("%s -> %s", expr, err))
	switch err {
	case qword.NoError:
		return res
	case qword.DivByZero:
		diag.ReportError(f.rep, diag.FldDivByZero, at, err.Explain()).
			WithNote(at, "while folding "+expr).Emit()
		return f.errorValue()
	case qword.InvalidOp:
		diag.ReportError(f.rep, diag.FldInvalidOp, at, err.Explain()).
			WithNote(at, "while folding "+expr).Emit()
		return f.errorValue()
	}
	if f.warn.Folding(err) {
		diag.ReportWarning(f.rep, warningCode(err), at, err.Explain()).
			WithNote(at, "while folding "+expr).Emit()
	}
	return res
}

func warningCode(err qword.OpError) diag.Code {
	switch {
	case err.IsNaN():
		return diag.FldNaN
	case err.IsSignedRange():
		return diag.FldSignedOverflow
	case err.IsUnsignedRange():
		return diag.FldUnsignedOverflow
	case err == qword.ShiftByGreaterSizeof:
		return diag.FldInvalidShift
	}
	return diag.FldInfo
}
