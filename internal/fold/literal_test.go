package fold

import (
	"testing"

	"colt/internal/types"
)

func TestLiteralRoundTrip(t *testing.T) {
	cases := []struct {
		id   types.BuiltinID
		in   string
		want string
	}{
		{types.Bool, "true", "true"},
		{types.Char, "'z'", "'z'"},
		{types.Char, "0x41", "'A'"},
		{types.Char, `'\n'`, `'\n'`},
		{types.Char, `'\''`, `'\''`},
		{types.Char, `'\x7f'`, `'\x7f'`},
		{types.Char, `'\\'`, `'\\'`},
		{types.I8, "-128", "-128"},
		{types.I64, "-9_223_372_036_854_775_808", "-9223372036854775808"},
		{types.U64, "0xFFFFFFFFFFFFFFFF", "18446744073709551615"},
		{types.U16, "0b101", "5"},
		{types.F32, "0.1", "0.1"},
		{types.F64, "-Inf", "-Inf"},
		{types.Byte, "7", "0x07"},
		{types.Dword, "0xdeadbeef", "0xDEADBEEF"},
	}
	for _, tc := range cases {
		q, err := ParseLiteral(tc.id, tc.in)
		if err != nil {
			t.Fatalf("ParseLiteral(%s, %q): %v", tc.id, tc.in, err)
		}
		if got := FormatTyped(tc.id, q); got != tc.want {
			t.Fatalf("FormatTyped(%s, %q) = %q, want %q", tc.id, tc.in, got, tc.want)
		}
	}
}

func TestLiteralSignedUsesLowBits(t *testing.T) {
	q, err := ParseLiteral(types.I16, "-1")
	if err != nil {
		t.Fatalf("ParseLiteral: %v", err)
	}
	if q.Bits() != 0xFFFF {
		t.Fatalf("i16 -1 stored as %#x, want 0xffff", q.Bits())
	}
}

func TestLiteralErrors(t *testing.T) {
	cases := []struct {
		id types.BuiltinID
		in string
	}{
		{types.Bool, "yes please"},
		{types.Char, "'ab'"},
		{types.Char, "'''"},
		{types.Char, `'\q'`},
		{types.Char, `'\u0100'`},
		{types.Char, "256"},
		{types.I8, "128"},
		{types.U8, "-1"},
		{types.Word, "0x10000"},
		{types.F64, "one"},
	}
	for _, tc := range cases {
		if _, err := ParseLiteral(tc.id, tc.in); err == nil {
			t.Fatalf("ParseLiteral(%s, %q) should fail", tc.id, tc.in)
		}
	}
}
