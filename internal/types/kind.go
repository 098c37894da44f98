package types

import "fmt"

// Kind is the tag of a TypeVariant.
type Kind uint8

const (
	KindError Kind = iota
	KindBuiltin
	KindVoid
	KindPtr
	KindMutPtr
	KindOpaquePtr
	KindMutOpaquePtr
	KindFn

	kindCount
)

// allKinds is the closed kind list every dispatch table is built from.
var allKinds = [...]Kind{
	KindError,
	KindBuiltin,
	KindVoid,
	KindPtr,
	KindMutPtr,
	KindOpaquePtr,
	KindMutOpaquePtr,
	KindFn,
}

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindBuiltin:
		return "builtin"
	case KindVoid:
		return "void"
	case KindPtr:
		return "ptr"
	case KindMutPtr:
		return "mutptr"
	case KindOpaquePtr:
		return "opaque_ptr"
	case KindMutOpaquePtr:
		return "mut_opaque_ptr"
	case KindFn:
		return "fn"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// kindSet is a membership table over the closed kind list.
type kindSet [kindCount]bool

func kindsWhere(pred func(Kind) bool) kindSet {
	var s kindSet
	for _, k := range allKinds {
		s[k] = pred(k)
	}
	return s
}

func (s *kindSet) has(k Kind) bool {
	return k < kindCount && s[k]
}
