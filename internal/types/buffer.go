package types

import (
	"fmt"
	"iter"
	"slices"
	"sync/atomic"
)

var bufferIDs atomic.Uint32

// TypeBuffer interns every type of one compilation context and hands out
// TypeTokens for them. Tokens stay valid for the lifetime of the buffer.
//
// A TypeBuffer is not safe for concurrent use. Independent units should each
// own a buffer.
type TypeBuffer struct {
	id       uint32
	types    indexedSet[TypeVariant]
	payloads indexedSet[FnTypePayload]
	names    []string
}

// NewTypeBuffer returns an empty buffer with a process-unique owner id.
func NewTypeBuffer() *TypeBuffer {
	return &TypeBuffer{
		id:       bufferIDs.Add(1),
		types:    newIndexedSet(TypeVariant.Hash, TypeVariant.Equal),
		payloads: newIndexedSet(FnTypePayload.Hash, FnTypePayload.Equal),
	}
}

// check panics when tok was not issued by b.
func (b *TypeBuffer) check(tok TypeToken) {
	if tok.IsZero() {
		panic("types: zero TypeToken")
	}
	if tok.owner != b.id {
		panic(fmt.Sprintf("types: %s used with TypeBuffer %d", tok, b.id))
	}
}

// AddType interns v. Structurally equal variants get the same token.
func (b *TypeBuffer) AddType(v TypeVariant) TypeToken {
	switch v.mustKind() {
	case KindPtr, KindMutPtr:
		b.check(v.pointee)
	case KindFn:
		if int(v.payload) >= b.payloads.len() {
			panic(fmt.Sprintf("types: fn payload %d out of range", v.payload))
		}
	}
	idx, _ := b.types.insert(v)
	return TypeToken{index: idx, owner: b.id}
}

func (b *TypeBuffer) ErrorType() TypeToken { return b.AddType(ErrorType{}.Variant()) }

func (b *TypeBuffer) VoidType() TypeToken { return b.AddType(VoidType{}.Variant()) }

// AddBuiltin interns the canonical variant of id.
func (b *TypeBuffer) AddBuiltin(id BuiltinID) TypeToken {
	if id >= builtinCount {
		panic(fmt.Sprintf("types: invalid BuiltinID %d", id))
	}
	return b.AddType(BuiltinTypes[id])
}

func (b *TypeBuffer) AddPtr(to TypeToken) TypeToken {
	return b.AddType(PtrType{Pointee: to}.Variant())
}

func (b *TypeBuffer) AddMutPtr(to TypeToken) TypeToken {
	return b.AddType(MutPtrType{Pointee: to}.Variant())
}

func (b *TypeBuffer) AddOpaquePtr() TypeToken {
	return b.AddType(OpaquePtrType{}.Variant())
}

func (b *TypeBuffer) AddMutOpaquePtr() TypeToken {
	return b.AddType(MutOpaquePtrType{}.Variant())
}

// AddFn interns the signature first, then the FnType that refers to it.
// args is copied.
func (b *TypeBuffer) AddFn(ret TypeToken, args []FnTypeArgument, variadic bool) TypeToken {
	b.check(ret)
	for _, arg := range args {
		b.check(arg.Type)
	}
	payload := FnTypePayload{
		IsVariadic: variadic,
		ReturnType: ret,
		Arguments:  slices.Clone(args),
	}
	idx, _ := b.payloads.insert(payload)
	return b.AddType(FnType{Payload: idx}.Variant())
}

// Type resolves tok. The variant is returned by value.
func (b *TypeBuffer) Type(tok TypeToken) TypeVariant {
	b.check(tok)
	return b.types.at(tok.index)
}

// Len reports the number of distinct interned types.
func (b *TypeBuffer) Len() int { return b.types.len() }

// Tokens yields every interned token in insertion order.
func (b *TypeBuffer) Tokens() iter.Seq[TypeToken] {
	return func(yield func(TypeToken) bool) {
		for i := range b.types.len() {
			if !yield(TypeToken{index: uint32(i), owner: b.id}) {
				return
			}
		}
	}
}

// FnPayload returns the signature of a function type.
func (b *TypeBuffer) FnPayload(tok TypeToken) (FnTypePayload, bool) {
	fn, ok := As[FnType](b.Type(tok))
	if !ok {
		return FnTypePayload{}, false
	}
	return b.payloads.at(fn.Payload).clone(), true
}

// Builtin returns the builtin id of tok when it names a builtin type.
func (b *TypeBuffer) Builtin(tok TypeToken) (BuiltinID, bool) {
	return b.Type(tok).Builtin()
}

// Owns reports whether tok was issued by b.
func (b *TypeBuffer) Owns(tok TypeToken) bool {
	return !tok.IsZero() && tok.owner == b.id && int(tok.index) < b.types.len()
}
