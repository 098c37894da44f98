package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"colt/internal/diag"
	"colt/internal/fold"
	"colt/internal/observ"
	"colt/internal/ops"
	"colt/internal/types"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags] <type> (<lhs> <binop> <rhs> | <unop> <operand>)",
		Short: "Fold one operator over constants",
		Long: `Fold one operator over constants of the given type, for example

  colt eval i8 127 + 1
  colt eval u16 '~' 0
  colt eval --rhs-type i64 i32 1 + 2

Flags must come before the type.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: runEval,
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().String("rhs-type", "", "type of the right operand (defaults to <type>)")
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	rhsType, err := cmd.Flags().GetString("rhs-type")
	if err != nil {
		return fmt.Errorf("failed to get rhs-type flag: %w", err)
	}
	return foldOne(cmd, "eval", func(f *fold.Folder) (fold.Value, error) {
		buf := f.Buffer()
		ty, err := parseTypeArg(buf, args[0])
		if err != nil {
			return fold.Value{}, err
		}
		if len(args) == 3 {
			op, err := ops.ParseUnary(args[1])
			if err != nil {
				return fold.Value{}, err
			}
			return f.Unary(diag.NoSpan, op, f.Literal(diag.NoSpan, ty, args[2])), nil
		}
		op, err := ops.ParseBinary(args[2])
		if err != nil {
			return fold.Value{}, err
		}
		rty := ty
		if rhsType != "" {
			if rty, err = parseTypeArg(buf, rhsType); err != nil {
				return fold.Value{}, err
			}
		}
		lhs := f.Literal(diag.NoSpan, ty, args[1])
		rhs := f.Literal(diag.NoSpan, rty, args[3])
		return f.Binary(diag.NoSpan, op, lhs, rhs), nil
	})
}

func newCastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cast <from> <value> <to>",
		Short: "Fold a conversion between builtin types",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return foldOne(cmd, "cast", func(f *fold.Folder) (fold.Value, error) {
				from, err := parseTypeArg(f.Buffer(), args[0])
				if err != nil {
					return fold.Value{}, err
				}
				to, err := parseTypeArg(f.Buffer(), args[2])
				if err != nil {
					return fold.Value{}, err
				}
				return f.Cast(diag.NoSpan, f.Literal(diag.NoSpan, from, args[1]), to), nil
			})
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// foldOne runs body against a fresh Folder, prints "<value> : <type>" and
// the diagnostics, and fails when any diagnostic is an error.
func foldOne(cmd *cobra.Command, name string, body func(f *fold.Folder) (fold.Value, error)) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	var timer *observ.Timer
	if s.timings {
		timer = observ.NewTimer()
	}
	done := timer.Track(name)

	bag := diag.NewBag(s.maxDiagnostics)
	buf := types.NewTypeBuffer()
	f := fold.New(cmd.Context(), buf, s.warn, diag.NewDedupReporter(diag.BagReporter{Bag: bag}))
	v, err := body(f)
	done("")
	if err != nil {
		return err
	}

	value := "<error>"
	if !f.IsError(v) {
		value = f.Format(v)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s : %s\n", value, buf.TypeName(v.Type))
	printDiagnostics(cmd.ErrOrStderr(), bag.Items())
	if s.timings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	if bag.HasErrors() {
		return errHasErrors
	}
	return nil
}
