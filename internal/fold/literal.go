package fold

import (
	"fmt"
	"strconv"
	"strings"

	"colt/internal/qword"
	"colt/internal/types"
)

// TypeOpOf maps a builtin to the engine type its values are computed in.
// Bool has no engine type and is folded natively.
func TypeOpOf(id types.BuiltinID) (qword.TypeOp, bool) {
	switch id {
	case types.Char, types.U8, types.Byte:
		return qword.U8, true
	case types.U16, types.Word:
		return qword.U16, true
	case types.U32, types.Dword:
		return qword.U32, true
	case types.U64, types.Qword:
		return qword.U64, true
	case types.I8:
		return qword.I8, true
	case types.I16:
		return qword.I16, true
	case types.I32:
		return qword.I32, true
	case types.I64:
		return qword.I64, true
	case types.F32:
		return qword.F32, true
	case types.F64:
		return qword.F64, true
	}
	return 0, false
}

// SizeOf returns the bit width used by bitwise operations on id.
func SizeOf(id types.BuiltinID) qword.Size {
	sz, ok := qword.SizeFromBits(id.Bits())
	if !ok {
		panic(fmt.Sprintf("fold: no size for %s", id))
	}
	return sz
}

// ParseLiteral reads text as a value of the builtin id. Integers accept the
// Go prefixes (0x, 0o, 0b) and underscores; chars are written 'c'.
func ParseLiteral(id types.BuiltinID, text string) (qword.QWORD, error) {
	s := strings.TrimSpace(text)
	bits := int(id.Bits())
	switch {
	case id.IsBool():
		b, err := strconv.ParseBool(s)
		if err != nil {
			return 0, fmt.Errorf("invalid bool literal %q", text)
		}
		return qword.Of(b), nil
	case id.IsChar():
		if len(s) >= 3 && s[0] == '\'' && s[len(s)-1] == '\'' {
			r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
			if err != nil || tail != "" || r > 0xFF {
				return 0, fmt.Errorf("char literal %q is not a single byte", text)
			}
			return qword.Of(uint8(r)), nil
		}
		v, err := strconv.ParseUint(s, 0, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid char literal %q", text)
		}
		return qword.Of(uint8(v)), nil
	case id.IsSInt():
		v, err := strconv.ParseInt(s, 0, bits)
		if err != nil {
			return 0, fmt.Errorf("invalid %s literal %q: %w", id, text, err)
		}
		return qword.Of(v) & qword.QWORD(widthMask(bits)), nil
	case id.IsUInt(), id.IsBytes():
		v, err := strconv.ParseUint(s, 0, bits)
		if err != nil {
			return 0, fmt.Errorf("invalid %s literal %q: %w", id, text, err)
		}
		return qword.Of(v), nil
	case id == types.F32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid %s literal %q: %w", id, text, err)
		}
		return qword.Of(float32(v)), nil
	case id == types.F64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s literal %q: %w", id, text, err)
		}
		return qword.Of(v), nil
	}
	return 0, fmt.Errorf("no literal syntax for %s", id)
}

func widthMask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<bits - 1
}

// FormatTyped renders q as a value of the builtin id.
func FormatTyped(id types.BuiltinID, q qword.QWORD) string {
	switch {
	case id.IsBool():
		return strconv.FormatBool(qword.As[bool](q))
	case id.IsChar():
		return strconv.QuoteRune(rune(qword.As[uint8](q)))
	case id.IsBytes():
		bits := int(id.Bits())
		return fmt.Sprintf("0x%0*X", bits/4, q.Bits()&widthMask(bits))
	case id == types.F32:
		return strconv.FormatFloat(float64(qword.As[float32](q)), 'g', -1, 32)
	case id == types.F64:
		return strconv.FormatFloat(qword.As[float64](q), 'g', -1, 64)
	}
	switch id {
	case types.U8:
		return strconv.FormatUint(uint64(qword.As[uint8](q)), 10)
	case types.U16:
		return strconv.FormatUint(uint64(qword.As[uint16](q)), 10)
	case types.U32:
		return strconv.FormatUint(uint64(qword.As[uint32](q)), 10)
	case types.U64:
		return strconv.FormatUint(qword.As[uint64](q), 10)
	case types.I8:
		return strconv.FormatInt(int64(qword.As[int8](q)), 10)
	case types.I16:
		return strconv.FormatInt(int64(qword.As[int16](q)), 10)
	case types.I32:
		return strconv.FormatInt(int64(qword.As[int32](q)), 10)
	case types.I64:
		return strconv.FormatInt(qword.As[int64](q), 10)
	}
	return fmt.Sprintf("%#x", q.Bits())
}
