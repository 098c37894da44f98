package diag

import "testing"

func TestBagSortAndFormat(t *testing.T) {
	bag := NewBag(10)
	r := BagReporter{Bag: bag}
	ReportWarning(r, FldNaN, Span{Unit: "b", Op: 0}, "NaN operand").Emit()
	ReportError(r, FldDivByZero, Span{Unit: "a", Op: 2}, "division\nby zero").
		WithNote(Span{Unit: "a", Op: 1}, "divisor folded here").
		Emit()
	ReportWarning(r, FldSignedOverflow, Span{Unit: "a", Op: 2}, "overflow").Emit()
	bag.Sort()

	want := "error FLD2001 a#2 division by zero\n" +
		"note FLD2001 a#1 divisor folded here\n" +
		"warning FLD2003 a#2 overflow\n" +
		"warning FLD2002 b#0 NaN operand"
	if got := FormatShort(bag.Items(), true); got != want {
		t.Fatalf("unexpected output:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
	if !bag.HasErrors() || bag.Count(SevWarning) != 3 {
		t.Fatalf("unexpected counts")
	}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(1)
	if !bag.Add(NewError(FldInvalidOp, NoSpan, "x")) {
		t.Fatalf("first add must succeed")
	}
	if bag.Add(NewError(FldInvalidOp, NoSpan, "y")) {
		t.Fatalf("second add must hit the limit")
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: bag})
	for range 3 {
		r.Report(FldNaN, SevWarning, Span{Unit: "u", Op: 1}, "nan", nil)
	}
	r.Report(FldNaN, SevWarning, Span{Unit: "u", Op: 2}, "nan", nil)
	if bag.Len() != 2 {
		t.Fatalf("expected 2 unique diagnostics, got %d", bag.Len())
	}
}

func TestCodeIDs(t *testing.T) {
	for code, want := range map[Code]string{
		TypOperandMismatch: "TYP1003",
		FldInvalidShift:    "FLD2005",
		PrjBadLiteral:      "PRJ5002",
		UnknownCode:        "E0000",
	} {
		if got := code.ID(); got != want {
			t.Fatalf("%d.ID() = %s, want %s", code, got, want)
		}
	}
	if NoSpan.String() != "<input>" || (Span{Unit: "u", Op: -1}).String() != "u" {
		t.Fatalf("unexpected span rendering")
	}
}
