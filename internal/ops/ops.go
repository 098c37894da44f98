// Package ops holds the closed catalog of Colt unary and binary operators
// consumed by the type support tables and the constant folder.
package ops

import (
	"fmt"
	"strings"
)

// UnaryOp enumerates prefix operators.
type UnaryOp uint8

const (
	Inc     UnaryOp = iota // ++x
	Dec                    // --x
	Negate                 // -x
	BoolNot                // !x
	BitNot                 // ~x
)

// UnaryOpCount is the number of unary operators.
const UnaryOpCount = int(BitNot) + 1

func (op UnaryOp) String() string {
	switch op {
	case Inc:
		return "++"
	case Dec:
		return "--"
	case Negate:
		return "-"
	case BoolNot:
		return "!"
	case BitNot:
		return "~"
	default:
		return fmt.Sprintf("UnaryOp(%d)", op)
	}
}

// BinaryOp enumerates infix operators.
type BinaryOp uint8

const (
	Sum BinaryOp = iota
	Sub
	Mul
	Div
	Mod

	BitAnd
	BitOr
	BitXor
	BitLShift
	BitRShift

	BoolAnd
	BoolOr
	Less
	LessEqual
	Great
	GreatEqual
	NotEqual
	Equal
)

// BinaryOpCount is the number of binary operators.
const BinaryOpCount = int(Equal) + 1

var binarySpelling = [BinaryOpCount]string{
	Sum: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%",
	BitAnd: "&", BitOr: "|", BitXor: "^", BitLShift: "<<", BitRShift: ">>",
	BoolAnd: "&&", BoolOr: "||",
	Less: "<", LessEqual: "<=", Great: ">", GreatEqual: ">=", NotEqual: "!=", Equal: "==",
}

var binaryMnemonic = [BinaryOpCount]string{
	Sum: "add", Sub: "sub", Mul: "mul", Div: "div", Mod: "mod",
	BitAnd: "and", BitOr: "or", BitXor: "xor", BitLShift: "shl", BitRShift: "shr",
	BoolAnd: "land", BoolOr: "lor",
	Less: "lt", LessEqual: "le", Great: "gt", GreatEqual: "ge", NotEqual: "neq", Equal: "eq",
}

var precedence = [BinaryOpCount]uint8{
	12, 12, 13, 13, 13, // + - * / %
	10, 10, 10, 11, 11, // & | ^ << >>
	3, 2, // && ||
	7, 7, 7, 7, 6, 6, // < <= > >= != ==
}

func (op BinaryOp) String() string {
	if int(op) < BinaryOpCount {
		return binarySpelling[op]
	}
	return fmt.Sprintf("BinaryOp(%d)", op)
}

// Mnemonic returns the short textual name used by the CLI and batch files.
func (op BinaryOp) Mnemonic() string {
	if int(op) < BinaryOpCount {
		return binaryMnemonic[op]
	}
	return op.String()
}

// Precedence returns the binding power of op; higher binds tighter.
func Precedence(op BinaryOp) uint8 {
	if int(op) < BinaryOpCount {
		return precedence[op]
	}
	return 0
}

// OpFamily groups binary operators by the kind of result they produce.
type OpFamily uint8

const (
	Arithmetic OpFamily = iota
	BitLogic
	BoolLogic
	Comparison
)

func (f OpFamily) String() string {
	switch f {
	case Arithmetic:
		return "arithmetic"
	case BitLogic:
		return "bit logic"
	case BoolLogic:
		return "bool logic"
	case Comparison:
		return "comparison"
	default:
		return fmt.Sprintf("OpFamily(%d)", f)
	}
}

// FamilyOf classifies op. Panics on an operator outside the catalog.
func FamilyOf(op BinaryOp) OpFamily {
	switch op {
	case Sum, Sub, Mul, Div, Mod:
		return Arithmetic
	case BitAnd, BitOr, BitXor, BitLShift, BitRShift:
		return BitLogic
	case BoolAnd, BoolOr:
		return BoolLogic
	case Less, LessEqual, Great, GreatEqual, NotEqual, Equal:
		return Comparison
	default:
		panic(fmt.Sprintf("ops: unknown binary operator %d", op))
	}
}

// ParseBinary accepts either the source spelling ("<<") or the mnemonic ("shl").
func ParseBinary(s string) (BinaryOp, error) {
	s = strings.TrimSpace(s)
	for i := range BinaryOpCount {
		if binarySpelling[i] == s || binaryMnemonic[i] == strings.ToLower(s) {
			return BinaryOp(i), nil
		}
	}
	return 0, fmt.Errorf("unknown binary operator %q", s)
}

// ParseUnary accepts either the source spelling ("~") or a mnemonic ("not").
func ParseUnary(s string) (UnaryOp, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "++", "inc":
		return Inc, nil
	case "--", "dec":
		return Dec, nil
	case "-", "neg":
		return Negate, nil
	case "!", "lnot":
		return BoolNot, nil
	case "~", "not":
		return BitNot, nil
	default:
		return 0, fmt.Errorf("unknown unary operator %q", s)
	}
}
