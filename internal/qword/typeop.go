package qword

import (
	"fmt"
	"strings"
)

// TypeOp selects how an operation interprets its QWORD operands.
type TypeOp uint8

const (
	I8 TypeOp = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
)

const typeOpCount = int(F64) + 1

var typeOpNames = [typeOpCount]string{"i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64", "f32", "f64"}

func (t TypeOp) String() string {
	if t.Valid() {
		return typeOpNames[t]
	}
	return fmt.Sprintf("TypeOp(%d)", t)
}

// Valid reports whether t is part of the catalog.
func (t TypeOp) Valid() bool { return int(t) < typeOpCount }

// ParseTypeOp maps "i8".."f64" to a TypeOp.
func ParseTypeOp(s string) (TypeOp, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range typeOpNames {
		if name == s {
			return TypeOp(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operand type %q", s)
}

// IsSInt reports i8..i64.
func (t TypeOp) IsSInt() bool {
	switch t {
	case I8, I16, I32, I64:
		return true
	}
	return false
}

// IsUInt reports u8..u64.
func (t TypeOp) IsUInt() bool {
	switch t {
	case U8, U16, U32, U64:
		return true
	}
	return false
}

// IsInt reports any integral TypeOp.
func (t TypeOp) IsInt() bool { return t.IsSInt() || t.IsUInt() }

// IsFP reports f32 and f64.
func (t TypeOp) IsFP() bool { return t == F32 || t == F64 }

// Size is the bit width bitwise operations and shifts work on.
type Size uint8

const (
	Size8 Size = iota
	Size16
	Size32
	Size64
)

// Bits returns 8, 16, 32 or 64. Panics on an unknown Size.
func (s Size) Bits() uint {
	switch s {
	case Size8:
		return 8
	case Size16:
		return 16
	case Size32:
		return 32
	case Size64:
		return 64
	}
	panic(fmt.Sprintf("qword: invalid Size %d", s))
}

func (s Size) String() string {
	switch s {
	case Size8, Size16, Size32, Size64:
		return fmt.Sprintf("%dbits", s.Bits())
	}
	return fmt.Sprintf("Size(%d)", s)
}

// SizeFromBits maps 8/16/32/64 to a Size.
func SizeFromBits(bits uint) (Size, bool) {
	switch bits {
	case 8:
		return Size8, true
	case 16:
		return Size16, true
	case 32:
		return Size32, true
	case 64:
		return Size64, true
	}
	return 0, false
}

// SizeOf returns the storage width of t.
func SizeOf(t TypeOp) Size {
	switch t {
	case I8, U8:
		return Size8
	case I16, U16:
		return Size16
	case I32, U32, F32:
		return Size32
	case I64, U64, F64:
		return Size64
	}
	panic(fmt.Sprintf("qword: invalid TypeOp %d", t))
}

func mustValid(t TypeOp) {
	if !t.Valid() {
		panic(fmt.Sprintf("qword: invalid TypeOp %d", t))
	}
}
