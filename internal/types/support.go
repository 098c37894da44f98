package types

import (
	"fmt"

	"colt/internal/ops"
)

// UnarySupport answers whether a unary operator applies to a type.
type UnarySupport uint8

const (
	UnaryBuiltin UnarySupport = iota
	UnaryInvalid
)

func (s UnarySupport) String() string {
	switch s {
	case UnaryBuiltin:
		return "builtin"
	case UnaryInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("UnarySupport(%d)", s)
	}
}

// BinarySupport distinguishes an operator the lhs never supports
// (BinaryInvalidOp) from one it supports with another rhs (BinaryInvalidType).
type BinarySupport uint8

const (
	BinaryBuiltin BinarySupport = iota
	BinaryInvalidOp
	BinaryInvalidType
)

func (s BinarySupport) String() string {
	switch s {
	case BinaryBuiltin:
		return "builtin"
	case BinaryInvalidOp:
		return "invalid_op"
	case BinaryInvalidType:
		return "invalid_type"
	default:
		return fmt.Sprintf("BinarySupport(%d)", s)
	}
}

// ConversionSupport answers whether a cast is allowed.
type ConversionSupport uint8

const (
	CastBuiltin ConversionSupport = iota
	CastInvalid
)

func (s ConversionSupport) String() string {
	switch s {
	case CastBuiltin:
		return "builtin"
	case CastInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("ConversionSupport(%d)", s)
	}
}

// Unary policies --------------------------------------------------------------

func boolUnary(op ops.UnaryOp) UnarySupport {
	if op == ops.BoolNot {
		return UnaryBuiltin
	}
	return UnaryInvalid
}

func sintUnary(op ops.UnaryOp) UnarySupport {
	switch op {
	case ops.BitNot, ops.Negate, ops.Inc, ops.Dec:
		return UnaryBuiltin
	}
	return UnaryInvalid
}

func uintUnary(op ops.UnaryOp) UnarySupport {
	switch op {
	case ops.BitNot, ops.Inc, ops.Dec:
		return UnaryBuiltin
	}
	return UnaryInvalid
}

func fpUnary(op ops.UnaryOp) UnarySupport {
	switch op {
	case ops.Inc, ops.Dec, ops.Negate:
		return UnaryBuiltin
	}
	return UnaryInvalid
}

func bytesUnary(op ops.UnaryOp) UnarySupport {
	if op == ops.BitNot {
		return UnaryBuiltin
	}
	return UnaryInvalid
}

func builtinUnary(id BuiltinID, op ops.UnaryOp) UnarySupport {
	switch {
	case id.IsBool():
		return boolUnary(op)
	case id.IsChar():
		return UnaryInvalid
	case id.IsUInt():
		return uintUnary(op)
	case id.IsSInt():
		return sintUnary(op)
	case id.IsFP():
		return fpUnary(op)
	case id.IsBytes():
		return bytesUnary(op)
	}
	panic(fmt.Sprintf("types: invalid BuiltinID %d", id))
}

// Binary policies -------------------------------------------------------------

func opaquePtrBinary(op ops.BinaryOp, rhs TypeVariant) BinarySupport {
	if ops.FamilyOf(op) != ops.Comparison {
		return BinaryInvalidOp
	}
	if rhs.IsAnyOpaquePtr() {
		return BinaryBuiltin
	}
	return BinaryInvalidType
}

func ptrBinary(lhs PointerType, op ops.BinaryOp, rhs TypeVariant) BinarySupport {
	switch {
	case op == ops.Sum || op == ops.Sub:
		if rhs.IsBuiltinAnd(IsIntegral) {
			return BinaryBuiltin
		}
		return BinaryInvalidType
	case ops.FamilyOf(op) == ops.Comparison:
		if p, ok := AsPointer(rhs); ok && p.Pointee == lhs.Pointee {
			return BinaryBuiltin
		}
		return BinaryInvalidType
	}
	return BinaryInvalidOp
}

func boolBinary(op ops.BinaryOp, rhs TypeVariant) BinarySupport {
	switch op {
	case ops.BitAnd, ops.BitOr, ops.BitXor, ops.BoolAnd, ops.BoolOr, ops.NotEqual, ops.Equal:
		if rhs.IsBuiltinAnd(IsBool) {
			return BinaryBuiltin
		}
		return BinaryInvalidType
	}
	return BinaryInvalidOp
}

// sameBuiltin accepts the operator family set and requires rhs to be the very
// same builtin as lhs.
func sameBuiltin(lhs BuiltinID, rhs TypeVariant) BinarySupport {
	if id, ok := rhs.Builtin(); ok && id == lhs {
		return BinaryBuiltin
	}
	return BinaryInvalidType
}

// intBinary covers signed, unsigned and byte-width types, which accept the
// same operator set.
func intBinary(lhs BuiltinID, op ops.BinaryOp, rhs TypeVariant) BinarySupport {
	switch ops.FamilyOf(op) {
	case ops.Arithmetic, ops.BitLogic, ops.Comparison:
		return sameBuiltin(lhs, rhs)
	}
	return BinaryInvalidOp
}

func fpBinary(lhs BuiltinID, op ops.BinaryOp, rhs TypeVariant) BinarySupport {
	switch ops.FamilyOf(op) {
	case ops.Arithmetic, ops.Comparison:
		return sameBuiltin(lhs, rhs)
	}
	return BinaryInvalidOp
}

func builtinBinary(id BuiltinID, op ops.BinaryOp, rhs TypeVariant) BinarySupport {
	switch {
	case id.IsBool():
		return boolBinary(op, rhs)
	case id.IsChar():
		return BinaryInvalidOp
	case id.IsIntegral(), id.IsBytes():
		return intBinary(id, op, rhs)
	case id.IsFP():
		return fpBinary(id, op, rhs)
	}
	panic(fmt.Sprintf("types: invalid BuiltinID %d", id))
}

// Casts -----------------------------------------------------------------------

func builtinCastable(rhs TypeVariant) ConversionSupport {
	if rhs.IsBuiltin() {
		return CastBuiltin
	}
	return CastInvalid
}

// pointerCastable allows any pointer kind to be reinterpreted as another
// pointer kind. Builtins, void and functions are never targets.
func pointerCastable(rhs TypeVariant) ConversionSupport {
	if rhs.IsAnyPtr() || rhs.IsAnyOpaquePtr() {
		return CastBuiltin
	}
	return CastInvalid
}
