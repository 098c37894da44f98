package types

import "colt/internal/ops"

// ErrorType is the type of ill-formed expressions. It supports everything so
// that one error does not cascade into more.
type ErrorType struct{}

// VoidType is the absence of a value.
type VoidType struct{}

// BuiltinType is one of the builtin scalars.
type BuiltinType struct{ ID BuiltinID }

// PtrType points to a read-only value of Pointee.
type PtrType struct{ Pointee TypeToken }

// MutPtrType points to a mutable value of Pointee.
type MutPtrType struct{ Pointee TypeToken }

// OpaquePtrType points to untyped read-only memory.
type OpaquePtrType struct{}

// MutOpaquePtrType points to untyped mutable memory.
type MutOpaquePtrType struct{}

// FnType refers to an interned FnTypePayload by index.
type FnType struct{ Payload uint32 }

func (ErrorType) Classof() Kind        { return KindError }
func (VoidType) Classof() Kind         { return KindVoid }
func (BuiltinType) Classof() Kind      { return KindBuiltin }
func (PtrType) Classof() Kind          { return KindPtr }
func (MutPtrType) Classof() Kind       { return KindMutPtr }
func (OpaquePtrType) Classof() Kind    { return KindOpaquePtr }
func (MutOpaquePtrType) Classof() Kind { return KindMutOpaquePtr }
func (FnType) Classof() Kind           { return KindFn }

func (ErrorType) Variant() TypeVariant { return TypeVariant{kind: KindError} }
func (VoidType) Variant() TypeVariant  { return TypeVariant{kind: KindVoid} }
func (t BuiltinType) Variant() TypeVariant {
	return TypeVariant{kind: KindBuiltin, builtin: t.ID}
}
func (t PtrType) Variant() TypeVariant {
	return TypeVariant{kind: KindPtr, pointee: t.Pointee}
}
func (t MutPtrType) Variant() TypeVariant {
	return TypeVariant{kind: KindMutPtr, pointee: t.Pointee}
}
func (OpaquePtrType) Variant() TypeVariant    { return TypeVariant{kind: KindOpaquePtr} }
func (MutOpaquePtrType) Variant() TypeVariant { return TypeVariant{kind: KindMutOpaquePtr} }
func (t FnType) Variant() TypeVariant {
	return TypeVariant{kind: KindFn, payload: t.Payload}
}

func unitHash(k Kind) uint64 { return hashCombine(uint64(k), 0) }

func (ErrorType) Hash() uint64        { return unitHash(KindError) }
func (VoidType) Hash() uint64         { return unitHash(KindVoid) }
func (OpaquePtrType) Hash() uint64    { return unitHash(KindOpaquePtr) }
func (MutOpaquePtrType) Hash() uint64 { return unitHash(KindMutOpaquePtr) }
func (t BuiltinType) Hash() uint64 {
	return hashCombine(uint64(KindBuiltin), uint64(t.ID))
}
func (t PtrType) Hash() uint64    { return hashCombine(uint64(KindPtr), t.Pointee.hash()) }
func (t MutPtrType) Hash() uint64 { return hashCombine(uint64(KindMutPtr), t.Pointee.hash()) }
func (t FnType) Hash() uint64     { return hashCombine(uint64(KindFn), uint64(t.Payload)) }

func (ErrorType) SupportsUnary(ops.UnaryOp) UnarySupport { return UnaryBuiltin }
func (ErrorType) SupportsBinary(ops.BinaryOp, TypeVariant) BinarySupport {
	return BinaryBuiltin
}
func (ErrorType) CastableTo(TypeVariant) ConversionSupport { return CastBuiltin }

func (VoidType) SupportsUnary(ops.UnaryOp) UnarySupport { return UnaryInvalid }
func (VoidType) SupportsBinary(ops.BinaryOp, TypeVariant) BinarySupport {
	return BinaryInvalidOp
}
func (VoidType) CastableTo(TypeVariant) ConversionSupport { return CastInvalid }

func (t BuiltinType) SupportsUnary(op ops.UnaryOp) UnarySupport {
	return builtinUnary(t.ID, op)
}
func (t BuiltinType) SupportsBinary(op ops.BinaryOp, rhs TypeVariant) BinarySupport {
	return builtinBinary(t.ID, op, rhs)
}
func (BuiltinType) CastableTo(rhs TypeVariant) ConversionSupport {
	return builtinCastable(rhs)
}

func (PtrType) SupportsUnary(ops.UnaryOp) UnarySupport { return UnaryInvalid }
func (t PtrType) SupportsBinary(op ops.BinaryOp, rhs TypeVariant) BinarySupport {
	return ptrBinary(PointerType{Pointee: t.Pointee}, op, rhs)
}
func (PtrType) CastableTo(rhs TypeVariant) ConversionSupport {
	return pointerCastable(rhs)
}

func (MutPtrType) SupportsUnary(ops.UnaryOp) UnarySupport { return UnaryInvalid }
func (t MutPtrType) SupportsBinary(op ops.BinaryOp, rhs TypeVariant) BinarySupport {
	return ptrBinary(PointerType{Pointee: t.Pointee, Mutable: true}, op, rhs)
}
func (MutPtrType) CastableTo(rhs TypeVariant) ConversionSupport {
	return pointerCastable(rhs)
}

func (OpaquePtrType) SupportsUnary(ops.UnaryOp) UnarySupport { return UnaryInvalid }
func (OpaquePtrType) SupportsBinary(op ops.BinaryOp, rhs TypeVariant) BinarySupport {
	return opaquePtrBinary(op, rhs)
}
func (OpaquePtrType) CastableTo(rhs TypeVariant) ConversionSupport {
	return pointerCastable(rhs)
}

func (MutOpaquePtrType) SupportsUnary(ops.UnaryOp) UnarySupport { return UnaryInvalid }
func (MutOpaquePtrType) SupportsBinary(op ops.BinaryOp, rhs TypeVariant) BinarySupport {
	return opaquePtrBinary(op, rhs)
}
func (MutOpaquePtrType) CastableTo(rhs TypeVariant) ConversionSupport {
	return pointerCastable(rhs)
}

func (FnType) SupportsUnary(ops.UnaryOp) UnarySupport { return UnaryInvalid }
func (FnType) SupportsBinary(ops.BinaryOp, TypeVariant) BinarySupport {
	return BinaryInvalidOp
}
func (FnType) CastableTo(TypeVariant) ConversionSupport { return CastInvalid }
