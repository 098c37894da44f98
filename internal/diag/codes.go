package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Type support queries
	TypInfo              Code = 1000
	TypUnaryUnsupported  Code = 1001
	TypBinaryUnsupported Code = 1002
	TypOperandMismatch   Code = 1003
	TypInvalidCast       Code = 1004
	TypNotFoldable       Code = 1005

	// Constant folding
	FldInfo             Code = 2000
	FldDivByZero        Code = 2001
	FldNaN              Code = 2002
	FldSignedOverflow   Code = 2003
	FldUnsignedOverflow Code = 2004
	FldInvalidShift     Code = 2005
	FldInvalidOp        Code = 2006

	// Project and batch input
	PrjInfo       Code = 5000
	PrjBadBatch   Code = 5001
	PrjBadLiteral Code = 5002
	PrjBadType    Code = 5003
)

var (
	codeDescription = map[Code]string{
		UnknownCode:          "Unknown error",
		TypInfo:              "Type information",
		TypUnaryUnsupported:  "Unary operator not supported by type",
		TypBinaryUnsupported: "Binary operator not supported by type",
		TypOperandMismatch:   "Operand types do not match",
		TypInvalidCast:       "Invalid conversion",
		TypNotFoldable:       "Type cannot be constant folded",
		FldInfo:              "Constant folding information",
		FldDivByZero:         "Division by zero",
		FldNaN:               "NaN in constant folding",
		FldSignedOverflow:    "Signed overflow or underflow",
		FldUnsignedOverflow:  "Unsigned overflow or underflow",
		FldInvalidShift:      "Shift by the size of the type or more",
		FldInvalidOp:         "Invalid operation",
		PrjInfo:              "Project information",
		PrjBadBatch:          "Invalid batch entry",
		PrjBadLiteral:        "Invalid literal",
		PrjBadType:           "Invalid type name",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("TYP%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("FLD%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
