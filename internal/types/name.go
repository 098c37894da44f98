package types

import (
	"fmt"
	"strings"
)

// TypeName renders tok, memoising the result per token.
func (b *TypeBuffer) TypeName(tok TypeToken) string {
	b.check(tok)
	if int(tok.index) < len(b.names) && b.names[tok.index] != "" {
		return b.names[tok.index]
	}
	name := b.TypeNameOf(b.types.at(tok.index))
	if n := b.types.len(); len(b.names) < n {
		b.names = append(b.names, make([]string, n-len(b.names))...)
	}
	b.names[tok.index] = name
	return name
}

// TypeNameOf renders v, whose tokens must belong to b.
func (b *TypeBuffer) TypeNameOf(v TypeVariant) string {
	switch v.mustKind() {
	case KindError:
		return "<ERROR>"
	case KindVoid:
		return "void"
	case KindBuiltin:
		return v.builtin.String()
	case KindPtr:
		return "ptr." + b.TypeName(v.pointee)
	case KindMutPtr:
		return "mutptr." + b.TypeName(v.pointee)
	case KindOpaquePtr:
		return "opaque_ptr"
	case KindMutOpaquePtr:
		return "mut_opaque_ptr"
	case KindFn:
		return b.fnName(b.payloads.at(v.payload))
	}
	panic(fmt.Sprintf("types: unexpected kind %s", v.kind))
}

func (b *TypeBuffer) fnName(p FnTypePayload) string {
	var sb strings.Builder
	sb.WriteString("fn(")
	for i, arg := range p.Arguments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.Specifier.String())
		sb.WriteByte(' ')
		sb.WriteString(b.TypeName(arg.Type))
	}
	if p.IsVariadic {
		if len(p.Arguments) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("...")
	}
	sb.WriteString(") -> ")
	sb.WriteString(b.TypeName(p.ReturnType))
	return sb.String()
}
