package types

import (
	"testing"

	"colt/internal/ops"
)

func TestBuiltinClassificationPartitions(t *testing.T) {
	for id := range builtinCount {
		n := 0
		for _, pred := range []func(BuiltinID) bool{IsBool, IsChar, IsUInt, IsSInt, IsBytes, IsFP} {
			if pred(id) {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("%s belongs to %d categories", id, n)
		}
		if id.IsIntegral() != (id.IsUInt() || id.IsSInt()) {
			t.Fatalf("IsIntegral(%s) disagrees with IsUInt/IsSInt", id)
		}
		got, ok := ParseBuiltin(id.String())
		if !ok || got != id {
			t.Fatalf("ParseBuiltin(%q) = %v, %v", id.String(), got, ok)
		}
	}
}

func TestErrorTypeIsWildcard(t *testing.T) {
	b := NewTypeBuffer()
	errT := ErrorType{}.Variant()
	all := []TypeVariant{
		errT,
		VoidType{}.Variant(),
		BuiltinTypes[I64],
		PtrType{Pointee: b.AddBuiltin(U8)}.Variant(),
		MutPtrType{Pointee: b.AddBuiltin(U8)}.Variant(),
		OpaquePtrType{}.Variant(),
		MutOpaquePtrType{}.Variant(),
		FnType{Payload: 3}.Variant(),
	}
	for _, v := range all {
		if !errT.IsSameAs(v) || !v.IsSameAs(errT) {
			t.Fatalf("error type must be the same as %s", v.Classof())
		}
		if v.Classof() != KindError && v.Equal(errT) {
			t.Fatalf("%s must not be equal to the error type", v.Classof())
		}
	}
	if BuiltinTypes[U8].IsSameAs(BuiltinTypes[I8]) {
		t.Fatalf("u8 and i8 are not the same")
	}
}

func TestEqualVariantsHashEqually(t *testing.T) {
	b := NewTypeBuffer()
	u8 := b.AddBuiltin(U8)
	pairs := [][2]TypeVariant{
		{BuiltinTypes[F32], BuiltinType{ID: F32}.Variant()},
		{PtrType{Pointee: u8}.Variant(), b.Type(b.AddPtr(u8))},
		{VoidType{}.Variant(), b.Type(b.VoidType())},
	}
	for _, p := range pairs {
		if !p[0].Equal(p[1]) || p[0].Hash() != p[1].Hash() {
			t.Fatalf("%s variants should be equal with equal hashes", p[0].Classof())
		}
	}
	if (PtrType{Pointee: u8}).Variant().Equal((MutPtrType{Pointee: u8}).Variant()) {
		t.Fatalf("different kinds must never be equal")
	}
}

func TestDowncasts(t *testing.T) {
	b := NewTypeBuffer()
	u8 := b.AddBuiltin(U8)
	v := MutPtrType{Pointee: u8}.Variant()
	if _, ok := As[PtrType](v); ok {
		t.Fatalf("mutptr must not downcast to PtrType")
	}
	mp, ok := As[MutPtrType](v)
	if !ok || mp.Pointee != u8 {
		t.Fatalf("As[MutPtrType] = %+v, %v", mp, ok)
	}
	p, ok := AsPointer(v)
	if !ok || !p.Mutable || p.Pointee != u8 {
		t.Fatalf("AsPointer = %+v, %v", p, ok)
	}
	if _, ok := AsPointer(OpaquePtrType{}.Variant()); ok {
		t.Fatalf("opaque pointers have no pointee")
	}
	if bt, ok := As[BuiltinType](BuiltinTypes[Dword]); !ok || bt.ID != Dword {
		t.Fatalf("As[BuiltinType] = %+v, %v", bt, ok)
	}
}

func TestUnarySupport(t *testing.T) {
	cases := []struct {
		v    TypeVariant
		op   ops.UnaryOp
		want UnarySupport
	}{
		{ErrorType{}.Variant(), ops.Negate, UnaryBuiltin},
		{VoidType{}.Variant(), ops.BoolNot, UnaryInvalid},
		{BuiltinTypes[Bool], ops.BoolNot, UnaryBuiltin},
		{BuiltinTypes[Bool], ops.Negate, UnaryInvalid},
		{BuiltinTypes[Char], ops.Inc, UnaryInvalid},
		{BuiltinTypes[I16], ops.Negate, UnaryBuiltin},
		{BuiltinTypes[U16], ops.Negate, UnaryInvalid},
		{BuiltinTypes[U16], ops.BitNot, UnaryBuiltin},
		{BuiltinTypes[F64], ops.Negate, UnaryBuiltin},
		{BuiltinTypes[F64], ops.BitNot, UnaryInvalid},
		{BuiltinTypes[Word], ops.BitNot, UnaryBuiltin},
		{BuiltinTypes[Word], ops.Inc, UnaryInvalid},
		{OpaquePtrType{}.Variant(), ops.Inc, UnaryInvalid},
		{FnType{}.Variant(), ops.BitNot, UnaryInvalid},
	}
	for _, tc := range cases {
		if got := tc.v.SupportsUnary(tc.op); got != tc.want {
			t.Fatalf("%s supports %s = %s, want %s", tc.v.Classof(), tc.op, got, tc.want)
		}
	}
}

func TestBinarySupport(t *testing.T) {
	b := NewTypeBuffer()
	u8 := b.AddBuiltin(U8)
	i8 := b.AddBuiltin(I8)
	ptrU8 := PtrType{Pointee: u8}.Variant()
	cases := []struct {
		name string
		lhs  TypeVariant
		op   ops.BinaryOp
		rhs  TypeVariant
		want BinarySupport
	}{
		{"error absorbs", ErrorType{}.Variant(), ops.Sum, VoidType{}.Variant(), BinaryBuiltin},
		{"void", VoidType{}.Variant(), ops.Equal, VoidType{}.Variant(), BinaryInvalidOp},
		{"fn", FnType{}.Variant(), ops.Equal, FnType{}.Variant(), BinaryInvalidOp},
		{"i32+i32", BuiltinTypes[I32], ops.Sum, BuiltinTypes[I32], BinaryBuiltin},
		{"i32+i64", BuiltinTypes[I32], ops.Sum, BuiltinTypes[I64], BinaryInvalidType},
		{"i32&&i32", BuiltinTypes[I32], ops.BoolAnd, BuiltinTypes[I32], BinaryInvalidOp},
		{"u8<<u8", BuiltinTypes[U8], ops.BitLShift, BuiltinTypes[U8], BinaryBuiltin},
		{"f32&f32", BuiltinTypes[F32], ops.BitAnd, BuiltinTypes[F32], BinaryInvalidOp},
		{"f32%f32", BuiltinTypes[F32], ops.Mod, BuiltinTypes[F32], BinaryBuiltin},
		{"f32<f64", BuiltinTypes[F32], ops.Less, BuiltinTypes[F64], BinaryInvalidType},
		{"bool^bool", BuiltinTypes[Bool], ops.BitXor, BuiltinTypes[Bool], BinaryBuiltin},
		{"bool+bool", BuiltinTypes[Bool], ops.Sum, BuiltinTypes[Bool], BinaryInvalidOp},
		{"bool==u8", BuiltinTypes[Bool], ops.Equal, BuiltinTypes[U8], BinaryInvalidType},
		{"char==char", BuiltinTypes[Char], ops.Equal, BuiltinTypes[Char], BinaryInvalidOp},
		{"BYTE*BYTE", BuiltinTypes[Byte], ops.Mul, BuiltinTypes[Byte], BinaryBuiltin},
		{"BYTE*u8", BuiltinTypes[Byte], ops.Mul, BuiltinTypes[U8], BinaryInvalidType},
		{"ptr+i8", ptrU8, ops.Sum, b.Type(i8), BinaryBuiltin},
		{"ptr+f32", ptrU8, ops.Sub, BuiltinTypes[F32], BinaryInvalidType},
		{"ptr*i8", ptrU8, ops.Mul, b.Type(i8), BinaryInvalidOp},
		{"ptr==mutptr same pointee", ptrU8, ops.Equal, MutPtrType{Pointee: u8}.Variant(), BinaryBuiltin},
		{"ptr==ptr other pointee", ptrU8, ops.Equal, PtrType{Pointee: i8}.Variant(), BinaryInvalidType},
		{"optr<mut_optr", OpaquePtrType{}.Variant(), ops.Less, MutOpaquePtrType{}.Variant(), BinaryBuiltin},
		{"optr==ptr", OpaquePtrType{}.Variant(), ops.Equal, ptrU8, BinaryInvalidType},
		{"optr+i8", MutOpaquePtrType{}.Variant(), ops.Sum, b.Type(i8), BinaryInvalidOp},
	}
	for _, tc := range cases {
		if got := tc.lhs.SupportsBinary(tc.op, tc.rhs); got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestCastable(t *testing.T) {
	b := NewTypeBuffer()
	u8 := b.AddBuiltin(U8)
	ptr := PtrType{Pointee: u8}.Variant()
	mutPtr := MutPtrType{Pointee: b.AddBuiltin(I32)}.Variant()
	opaque := OpaquePtrType{}.Variant()
	mutOpaque := MutOpaquePtrType{}.Variant()
	cases := []struct {
		lhs, rhs TypeVariant
		want     ConversionSupport
	}{
		{ErrorType{}.Variant(), FnType{}.Variant(), CastBuiltin},
		{BuiltinTypes[Bool], BuiltinTypes[F64], CastBuiltin},
		{BuiltinTypes[Qword], BuiltinTypes[Char], CastBuiltin},
		{BuiltinTypes[U8], OpaquePtrType{}.Variant(), CastInvalid},
		{OpaquePtrType{}.Variant(), BuiltinTypes[U64], CastInvalid},
		{VoidType{}.Variant(), BuiltinTypes[U64], CastInvalid},
		{FnType{}.Variant(), BuiltinTypes[U64], CastInvalid},
		{opaque, opaque, CastBuiltin},
		{opaque, mutOpaque, CastBuiltin},
		{mutOpaque, opaque, CastBuiltin},
		{opaque, ptr, CastBuiltin},
		{mutOpaque, mutPtr, CastBuiltin},
		{ptr, mutPtr, CastBuiltin},
		{mutPtr, opaque, CastBuiltin},
		{ptr, BuiltinTypes[U64], CastInvalid},
		{opaque, VoidType{}.Variant(), CastInvalid},
		{mutOpaque, FnType{}.Variant(), CastInvalid},
		{BuiltinTypes[U64], ptr, CastInvalid},
	}
	for _, tc := range cases {
		if got := tc.lhs.CastableTo(tc.rhs); got != tc.want {
			t.Fatalf("%s castable to %s = %s, want %s", tc.lhs.Classof(), tc.rhs.Classof(), got, tc.want)
		}
	}
}
