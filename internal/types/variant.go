package types

import (
	"fmt"

	"colt/internal/ops"
)

// TypeVariant is a closed sum over the concrete type kinds. Only the fields
// used by the active kind are populated, the rest stay zero.
type TypeVariant struct {
	kind    Kind
	builtin BuiltinID
	pointee TypeToken
	payload uint32
}

// ConcreteType is satisfied by the payload struct of each kind.
type ConcreteType interface {
	comparable
	ErrorType | VoidType | BuiltinType | PtrType | MutPtrType | OpaquePtrType | MutOpaquePtrType | FnType

	Classof() Kind
	Variant() TypeVariant
	Hash() uint64
	SupportsUnary(op ops.UnaryOp) UnarySupport
	SupportsBinary(op ops.BinaryOp, rhs TypeVariant) BinarySupport
	CastableTo(rhs TypeVariant) ConversionSupport
}

// As downcasts v to T. ok is false when v holds another kind.
func As[T ConcreteType](v TypeVariant) (out T, ok bool) {
	if v.kind != out.Classof() {
		return out, false
	}
	switch p := any(&out).(type) {
	case *BuiltinType:
		p.ID = v.builtin
	case *PtrType:
		p.Pointee = v.pointee
	case *MutPtrType:
		p.Pointee = v.pointee
	case *FnType:
		p.Payload = v.payload
	}
	return out, true
}

// PointerType is the common view over PtrType and MutPtrType.
type PointerType struct {
	Pointee TypeToken
	Mutable bool
}

func isPointerBase(k Kind) bool {
	return k == KindPtr || k == KindMutPtr
}

var pointerKinds = kindsWhere(isPointerBase)

// AsPointer downcasts any pointer-to-type kind to PointerType.
func AsPointer(v TypeVariant) (PointerType, bool) {
	if !pointerKinds.has(v.kind) {
		return PointerType{}, false
	}
	return PointerType{Pointee: v.pointee, Mutable: v.kind == KindMutPtr}, true
}

// BuiltinTypes holds the canonical variant of every builtin, indexed by id.
var BuiltinTypes = func() (out [builtinCount]TypeVariant) {
	for id := range builtinCount {
		out[id] = BuiltinType{ID: id}.Variant()
	}
	return out
}()

// Dispatch tables, one row per kind.
var (
	equalTable    [kindCount]func(a, b TypeVariant) bool
	hashTable     [kindCount]func(v TypeVariant) uint64
	unaryTable    [kindCount]func(v TypeVariant, op ops.UnaryOp) UnarySupport
	binaryTable   [kindCount]func(v TypeVariant, op ops.BinaryOp, rhs TypeVariant) BinarySupport
	castableTable [kindCount]func(v, rhs TypeVariant) ConversionSupport
)

func register[T ConcreteType]() {
	var zero T
	k := zero.Classof()
	equalTable[k] = func(a, b TypeVariant) bool {
		x, _ := As[T](a)
		y, _ := As[T](b)
		return x == y
	}
	hashTable[k] = func(v TypeVariant) uint64 {
		x, _ := As[T](v)
		return x.Hash()
	}
	unaryTable[k] = func(v TypeVariant, op ops.UnaryOp) UnarySupport {
		x, _ := As[T](v)
		return x.SupportsUnary(op)
	}
	binaryTable[k] = func(v TypeVariant, op ops.BinaryOp, rhs TypeVariant) BinarySupport {
		x, _ := As[T](v)
		return x.SupportsBinary(op, rhs)
	}
	castableTable[k] = func(v, rhs TypeVariant) ConversionSupport {
		x, _ := As[T](v)
		return x.CastableTo(rhs)
	}
}

func init() {
	register[ErrorType]()
	register[BuiltinType]()
	register[VoidType]()
	register[PtrType]()
	register[MutPtrType]()
	register[OpaquePtrType]()
	register[MutOpaquePtrType]()
	register[FnType]()
	for _, k := range allKinds {
		if equalTable[k] == nil || hashTable[k] == nil || unaryTable[k] == nil ||
			binaryTable[k] == nil || castableTable[k] == nil {
			panic(fmt.Sprintf("types: kind %s has no dispatch row", k))
		}
	}
}

func (v TypeVariant) mustKind() Kind {
	if v.kind >= kindCount {
		panic("types: invalid Kind")
	}
	return v.kind
}

// Classof returns the active kind.
func (v TypeVariant) Classof() Kind { return v.kind }

// Equal reports structural equality. Different kinds are never equal.
func (v TypeVariant) Equal(o TypeVariant) bool {
	if v.mustKind() != o.mustKind() {
		return false
	}
	return equalTable[v.kind](v, o)
}

// IsSameAs is Equal with the error type acting as a wildcard on either side.
func (v TypeVariant) IsSameAs(o TypeVariant) bool {
	if v.IsError() || o.IsError() {
		return true
	}
	return v.Equal(o)
}

// Hash is seeded by the kind; structurally equal variants hash equally.
func (v TypeVariant) Hash() uint64 {
	return hashTable[v.mustKind()](v)
}

func (v TypeVariant) SupportsUnary(op ops.UnaryOp) UnarySupport {
	return unaryTable[v.mustKind()](v, op)
}

func (v TypeVariant) SupportsBinary(op ops.BinaryOp, rhs TypeVariant) BinarySupport {
	return binaryTable[v.mustKind()](v, op, rhs)
}

func (v TypeVariant) CastableTo(rhs TypeVariant) ConversionSupport {
	return castableTable[v.mustKind()](v, rhs)
}

func (v TypeVariant) IsError() bool { return v.kind == KindError }

func (v TypeVariant) IsVoid() bool { return v.kind == KindVoid }

func (v TypeVariant) IsBuiltin() bool { return v.kind == KindBuiltin }

// IsBuiltinAnd reports a builtin whose id satisfies check.
func (v TypeVariant) IsBuiltinAnd(check func(BuiltinID) bool) bool {
	return v.kind == KindBuiltin && check(v.builtin)
}

func (v TypeVariant) IsAnyPtr() bool { return pointerKinds.has(v.kind) }

func (v TypeVariant) IsAnyOpaquePtr() bool {
	return v.kind == KindOpaquePtr || v.kind == KindMutOpaquePtr
}

func (v TypeVariant) IsFn() bool { return v.kind == KindFn }

// Builtin returns the builtin id of a builtin variant.
func (v TypeVariant) Builtin() (BuiltinID, bool) {
	if v.kind != KindBuiltin {
		return 0, false
	}
	return v.builtin, true
}
