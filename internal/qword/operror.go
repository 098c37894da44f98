package qword

import "fmt"

// OpError is the outcome code attached to every operation result.
type OpError uint8

const (
	NoError OpError = iota
	// InvalidOp marks an operation the operand type does not support (e.g. unsigned negation).
	InvalidOp
	DivByZero
	// ShiftByGreaterSizeof marks a shift amount >= the operand width.
	ShiftByGreaterSizeof
	UnsignedOverflow
	UnsignedUnderflow
	SignedOverflow
	SignedUnderflow
	// WasNaN marks a NaN operand; the QWORD echoes that operand.
	WasNaN
	// RetNaN marks a NaN produced from non-NaN operands.
	RetNaN
)

func (e OpError) String() string {
	switch e {
	case NoError:
		return "no_error"
	case InvalidOp:
		return "invalid_op"
	case DivByZero:
		return "div_by_zero"
	case ShiftByGreaterSizeof:
		return "shift_by_greater_sizeof"
	case UnsignedOverflow:
		return "unsigned_overflow"
	case UnsignedUnderflow:
		return "unsigned_underflow"
	case SignedOverflow:
		return "signed_overflow"
	case SignedUnderflow:
		return "signed_underflow"
	case WasNaN:
		return "was_nan"
	case RetNaN:
		return "ret_nan"
	default:
		return fmt.Sprintf("OpError(%d)", e)
	}
}

// Explain returns a sentence describing e.
func (e OpError) Explain() string {
	switch e {
	case NoError:
		return "No errors detected!"
	case InvalidOp:
		return "Operation is not supported by the operand type!"
	case DivByZero:
		return "Integral division by zero!"
	case ShiftByGreaterSizeof:
		return "Shift by value greater than bits size!"
	case UnsignedOverflow:
		return "Unsigned overflow detected!"
	case UnsignedUnderflow:
		return "Unsigned underflow detected!"
	case SignedOverflow:
		return "Signed overflow detected!"
	case SignedUnderflow:
		return "Signed underflow detected!"
	case WasNaN:
		return "Floating point value was NaN!"
	case RetNaN:
		return "Floating point operation evaluates to NaN!"
	default:
		return e.String()
	}
}

// IsNaN reports WasNaN and RetNaN.
func (e OpError) IsNaN() bool { return e == WasNaN || e == RetNaN }

// IsSignedRange reports signed overflow or underflow.
func (e OpError) IsSignedRange() bool { return e == SignedOverflow || e == SignedUnderflow }

// IsUnsignedRange reports unsigned overflow or underflow.
func (e OpError) IsUnsignedRange() bool { return e == UnsignedOverflow || e == UnsignedUnderflow }
