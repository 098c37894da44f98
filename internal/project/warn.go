package project

import (
	"fmt"
	"sort"

	"colt/internal/qword"
)

// WarnFor selects which diagnostics are reported as warnings. The zero value
// warns for nothing; WarnAll warns for everything.
type WarnFor struct {
	VarShadowing                bool `toml:"var_shadowing"`
	RedundantVisibility         bool `toml:"redundant_visibility"`
	ConstantFoldingNaN          bool `toml:"constant_folding_nan"`
	ConstantFoldingSignedOU     bool `toml:"constant_folding_signed_ou"`
	ConstantFoldingUnsignedOU   bool `toml:"constant_folding_unsigned_ou"`
	ConstantFoldingInvalidShift bool `toml:"constant_folding_invalid_shift"`
}

func WarnAll() WarnFor {
	return WarnFor{
		VarShadowing:                true,
		RedundantVisibility:         true,
		ConstantFoldingNaN:          true,
		ConstantFoldingSignedOU:     true,
		ConstantFoldingUnsignedOU:   true,
		ConstantFoldingInvalidShift: true,
	}
}

// Folding reports whether a folding result code should be surfaced.
// DivByZero is always an error and must not be asked about.
func (w WarnFor) Folding(err qword.OpError) bool {
	switch err {
	case qword.NoError:
		return false
	case qword.WasNaN, qword.RetNaN:
		return w.ConstantFoldingNaN
	case qword.SignedOverflow, qword.SignedUnderflow:
		return w.ConstantFoldingSignedOU
	case qword.UnsignedOverflow, qword.UnsignedUnderflow:
		return w.ConstantFoldingUnsignedOU
	case qword.ShiftByGreaterSizeof:
		return w.ConstantFoldingInvalidShift
	case qword.DivByZero:
		panic("project: DivByZero is an error, not a warning")
	default:
		return true
	}
}

var noWarnNames = map[string]func(*WarnFor){
	"var_shadowing":        func(w *WarnFor) { w.VarShadowing = false },
	"redundant_visibility": func(w *WarnFor) { w.RedundantVisibility = false },
	"cf_nan":               func(w *WarnFor) { w.ConstantFoldingNaN = false },
	"cf_signed_overflow":   func(w *WarnFor) { w.ConstantFoldingSignedOU = false },
	"cf_unsigned_overflow": func(w *WarnFor) { w.ConstantFoldingUnsignedOU = false },
	"cf_invalid_shift":     func(w *WarnFor) { w.ConstantFoldingInvalidShift = false },
}

// Disable turns off the warning named as on the command line (cf_nan, ...).
func (w *WarnFor) Disable(name string) error {
	off, ok := noWarnNames[name]
	if !ok {
		return fmt.Errorf("unknown warning %q (known: %v)", name, NoWarnNames())
	}
	off(w)
	return nil
}

// NoWarnNames lists the names accepted by Disable.
func NoWarnNames() []string {
	out := make([]string, 0, len(noWarnNames))
	for name := range noWarnNames {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
