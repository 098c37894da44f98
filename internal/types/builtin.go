package types

import "fmt"

// BuiltinID enumerates the builtin scalar types.
type BuiltinID uint8

const (
	Bool BuiltinID = iota
	Char
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
	Byte
	Word
	Dword
	Qword

	builtinCount
)

// BuiltinCount is the number of builtin scalar types.
const BuiltinCount = int(builtinCount)

var builtinNames = [builtinCount]string{
	Bool:  "bool",
	Char:  "char",
	U8:    "u8",
	U16:   "u16",
	U32:   "u32",
	U64:   "u64",
	I8:    "i8",
	I16:   "i16",
	I32:   "i32",
	I64:   "i64",
	F32:   "f32",
	F64:   "f64",
	Byte:  "BYTE",
	Word:  "WORD",
	Dword: "DWORD",
	Qword: "QWORD",
}

func (id BuiltinID) String() string {
	if id < builtinCount {
		return builtinNames[id]
	}
	return fmt.Sprintf("BuiltinID(%d)", id)
}

// ParseBuiltin resolves a builtin type name as rendered by String.
func ParseBuiltin(name string) (BuiltinID, bool) {
	for i, n := range builtinNames {
		if n == name {
			return BuiltinID(i), true
		}
	}
	return 0, false
}

// Bits reports the storage width of the builtin.
func (id BuiltinID) Bits() uint {
	switch id {
	case Bool, Char, U8, I8, Byte:
		return 8
	case U16, I16, Word:
		return 16
	case U32, I32, F32, Dword:
		return 32
	case U64, I64, F64, Qword:
		return 64
	default:
		panic(fmt.Sprintf("types: invalid BuiltinID %d", id))
	}
}

func (id BuiltinID) IsBool() bool { return id == Bool }

func (id BuiltinID) IsChar() bool { return id == Char }

func (id BuiltinID) IsUInt() bool {
	switch id {
	case U8, U16, U32, U64:
		return true
	}
	return false
}

func (id BuiltinID) IsSInt() bool {
	switch id {
	case I8, I16, I32, I64:
		return true
	}
	return false
}

// IsIntegral reports signed or unsigned integers. Raw byte-width types are
// not integral.
func (id BuiltinID) IsIntegral() bool { return id.IsUInt() || id.IsSInt() }

// IsBytes reports the raw bit containers BYTE, WORD, DWORD and QWORD.
func (id BuiltinID) IsBytes() bool {
	switch id {
	case Byte, Word, Dword, Qword:
		return true
	}
	return false
}

func (id BuiltinID) IsFP() bool { return id == F32 || id == F64 }

// Function forms of the predicates, for TypeVariant.IsBuiltinAnd.
func IsBool(id BuiltinID) bool     { return id.IsBool() }
func IsChar(id BuiltinID) bool     { return id.IsChar() }
func IsUInt(id BuiltinID) bool     { return id.IsUInt() }
func IsSInt(id BuiltinID) bool     { return id.IsSInt() }
func IsIntegral(id BuiltinID) bool { return id.IsIntegral() }
func IsBytes(id BuiltinID) bool    { return id.IsBytes() }
func IsFP(id BuiltinID) bool       { return id.IsFP() }
