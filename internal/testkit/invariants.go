// Package testkit holds invariant checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"colt/internal/qword"
	"colt/internal/types"
)

// CheckTypeBuffer verifies the interning invariants of buf:
// 1) every token resolves, and Len matches the number of tokens
// 2) no two tokens hold equal variants, and equal variants hash equally
// 3) pointees and fn signatures refer to tokens of the same buffer
// 4) TypeName parses back to the same token
func CheckTypeBuffer(buf *types.TypeBuffer) error {
	if buf == nil {
		return fmt.Errorf("nil buffer")
	}
	var (
		seen  []types.TypeVariant
		count int
	)
	for tok := range buf.Tokens() {
		count++
		v := buf.Type(tok)
		for _, prev := range seen {
			if prev.Equal(v) {
				return fmt.Errorf("%s duplicates an earlier variant", tok)
			}
		}
		if !v.Equal(v) || v.Hash() != buf.Type(tok).Hash() {
			return fmt.Errorf("%s is not equal to itself", tok)
		}
		seen = append(seen, v)

		if p, ok := types.AsPointer(v); ok && !buf.Owns(p.Pointee) {
			return fmt.Errorf("%s points to foreign %s", tok, p.Pointee)
		}
		if fn, ok := buf.FnPayload(tok); ok {
			if !buf.Owns(fn.ReturnType) {
				return fmt.Errorf("%s returns foreign %s", tok, fn.ReturnType)
			}
			for i, arg := range fn.Arguments {
				if !buf.Owns(arg.Type) {
					return fmt.Errorf("%s argument %d is foreign %s", tok, i, arg.Type)
				}
			}
		}

		name := buf.TypeName(tok)
		back, err := types.ParseType(buf, name)
		if err != nil {
			return fmt.Errorf("%s: name %q does not parse: %w", tok, name, err)
		}
		if back != tok {
			return fmt.Errorf("%s: name %q parses to %s", tok, name, back)
		}
	}
	if count != buf.Len() {
		return fmt.Errorf("Tokens yielded %d types, Len is %d", count, buf.Len())
	}
	return nil
}

// CheckConvertRoundTrip verifies that v of type from survives a conversion
// to a wider or equal type of the same family and back.
func CheckConvertRoundTrip(v qword.QWORD, from, to qword.TypeOp) error {
	fromBits, err := safecast.Conv[int](qword.SizeOf(from).Bits())
	if err != nil {
		return err
	}
	toBits, err := safecast.Conv[int](qword.SizeOf(to).Bits())
	if err != nil {
		return err
	}
	if toBits < fromBits || from.IsFP() != to.IsFP() {
		return nil
	}
	if from.IsFP() && to.IsFP() {
		// f64 -> f32 is narrowing; f32 -> f64 -> f32 is exact except for NaN payloads
		if f := qword.As[float32](v); from == qword.F32 && f != f {
			return nil
		}
	} else if from.IsSInt() && to.IsUInt() {
		return nil
	}
	wide, werr := qword.Convert(v, from, to)
	back, berr := qword.Convert(wide, to, from)
	if werr != qword.NoError || berr != qword.NoError {
		return fmt.Errorf("%s -> %s -> %s of %#x: %s, %s", from, to, from, v.Bits(), werr, berr)
	}
	norm, _ := qword.Convert(v, from, from)
	if back != norm {
		return fmt.Errorf("%s -> %s -> %s of %#x gave %#x", from, to, from, v.Bits(), back.Bits())
	}
	return nil
}
