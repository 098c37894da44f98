package ops

import "testing"

func TestFamilyOfCoversCatalog(t *testing.T) {
	want := map[BinaryOp]OpFamily{
		Sum: Arithmetic, Mod: Arithmetic,
		BitAnd: BitLogic, BitRShift: BitLogic,
		BoolAnd: BoolLogic, BoolOr: BoolLogic,
		Less: Comparison, Equal: Comparison,
	}
	for op, fam := range want {
		if got := FamilyOf(op); got != fam {
			t.Fatalf("FamilyOf(%s) = %s, want %s", op, got, fam)
		}
	}
	for i := range BinaryOpCount {
		_ = FamilyOf(BinaryOp(i))
	}
}

func TestPrecedenceOrdering(t *testing.T) {
	if Precedence(Mul) <= Precedence(Sum) {
		t.Fatalf("* must bind tighter than +")
	}
	if Precedence(BoolOr) >= Precedence(BoolAnd) {
		t.Fatalf("|| must bind looser than &&")
	}
	if Precedence(BinaryOp(200)) != 0 {
		t.Fatalf("unknown operator must have zero precedence")
	}
}

func TestParseBinaryRoundTrip(t *testing.T) {
	for i := range BinaryOpCount {
		op := BinaryOp(i)
		got, err := ParseBinary(op.String())
		if err != nil || got != op {
			t.Fatalf("ParseBinary(%q) = %v, %v", op.String(), got, err)
		}
		got, err = ParseBinary(op.Mnemonic())
		if err != nil || got != op {
			t.Fatalf("ParseBinary(%q) = %v, %v", op.Mnemonic(), got, err)
		}
	}
	if _, err := ParseBinary("**"); err == nil {
		t.Fatalf("expected error for unknown operator")
	}
}

func TestParseUnary(t *testing.T) {
	for i := range UnaryOpCount {
		op := UnaryOp(i)
		got, err := ParseUnary(op.String())
		if err != nil || got != op {
			t.Fatalf("ParseUnary(%q) = %v, %v", op.String(), got, err)
		}
	}
}
