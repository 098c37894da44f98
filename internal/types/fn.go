package types

import (
	"fmt"
	"slices"
)

// ArgSpecifier describes how a function parameter is passed.
type ArgSpecifier uint8

const (
	ArgIn ArgSpecifier = iota
	ArgOut
	ArgInOut
	ArgMove
)

func (s ArgSpecifier) String() string {
	switch s {
	case ArgIn:
		return "in"
	case ArgOut:
		return "out"
	case ArgInOut:
		return "inout"
	case ArgMove:
		return "move"
	default:
		return fmt.Sprintf("ArgSpecifier(%d)", s)
	}
}

// ParseArgSpecifier is the inverse of ArgSpecifier.String.
func ParseArgSpecifier(s string) (ArgSpecifier, bool) {
	switch s {
	case "in":
		return ArgIn, true
	case "out":
		return ArgOut, true
	case "inout":
		return ArgInOut, true
	case "move":
		return ArgMove, true
	}
	return 0, false
}

// FnTypeArgument is one parameter of a function type.
type FnTypeArgument struct {
	Type      TypeToken
	Specifier ArgSpecifier
}

// FnTypePayload is the signature referenced by FnType. It lives outside
// TypeVariant because its size varies.
type FnTypePayload struct {
	IsVariadic bool
	ReturnType TypeToken
	Arguments  []FnTypeArgument
}

// Equal requires every field to match.
func (p FnTypePayload) Equal(o FnTypePayload) bool {
	return p.IsVariadic == o.IsVariadic &&
		p.ReturnType == o.ReturnType &&
		slices.Equal(p.Arguments, o.Arguments)
}

func (p FnTypePayload) Hash() uint64 {
	var seed uint64
	if p.IsVariadic {
		seed = 1
	}
	seed = hashCombine(seed, p.ReturnType.hash())
	for _, arg := range p.Arguments {
		seed = hashCombine(seed, arg.Type.hash())
		seed = hashCombine(seed, uint64(arg.Specifier))
	}
	return seed
}

func (p FnTypePayload) clone() FnTypePayload {
	p.Arguments = slices.Clone(p.Arguments)
	return p
}
