package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"colt/internal/ops"
	"colt/internal/types"
	"colt/internal/ui"
)

// supportRows are the types listed by `colt support` when none are given.
var supportRows = []string{
	"bool", "char",
	"u8", "u16", "u32", "u64",
	"i8", "i16", "i32", "i64",
	"f32", "f64",
	"BYTE", "WORD", "DWORD", "QWORD",
	"void", "ptr.u8", "mutptr.u8", "opaque_ptr", "mut_opaque_ptr", "fn() -> void",
}

func newSupportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "support (unary|binary|cast) [type...]",
		Short: "Print operator and conversion support tables",
		Long: `Print which operators each type supports.

  unary   one column per unary operator
  binary  one column per binary operator; the rhs is the row type or --rhs
  cast    one column per builtin target type`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"unary", "binary", "cast"},
		RunE:      runSupport,
	}
	cmd.Flags().String("rhs", "", "right operand type for the binary table")
	return cmd
}

func runSupport(cmd *cobra.Command, args []string) error {
	rhsName, err := cmd.Flags().GetString("rhs")
	if err != nil {
		return fmt.Errorf("failed to get rhs flag: %w", err)
	}
	buf := types.NewTypeBuffer()
	names := args[1:]
	if len(names) == 0 {
		names = supportRows
	}
	rows := make([]types.TypeToken, 0, len(names))
	for _, name := range names {
		tok, err := parseTypeArg(buf, name)
		if err != nil {
			return err
		}
		rows = append(rows, tok)
	}

	var table ui.Table
	switch args[0] {
	case "unary":
		table = unaryTable(buf, rows)
	case "binary":
		var rhs *types.TypeToken
		if rhsName != "" {
			tok, err := parseTypeArg(buf, rhsName)
			if err != nil {
				return err
			}
			rhs = &tok
		}
		table = binaryTable(buf, rows, rhs)
	case "cast":
		table = castTable(buf, rows)
	default:
		return fmt.Errorf("unknown table %q (expected unary, binary or cast)", args[0])
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.Render(table, useColor()))
	fmt.Fprintln(cmd.OutOrStdout(), legend())
	return nil
}

const (
	markOK       = "✓"
	markInvalid  = "✗"
	markMismatch = "≠"
)

func legend() string {
	return fmt.Sprintf("\n%s %s   %s %s   %s %s",
		markOK, ui.Title(types.BinaryBuiltin.String()),
		markInvalid, ui.Title(types.BinaryInvalidOp.String()),
		markMismatch, ui.Title(types.BinaryInvalidType.String()))
}

func unaryTable(buf *types.TypeBuffer, rows []types.TypeToken) ui.Table {
	t := ui.Table{Title: ui.Title("unary operators"), Corner: "type"}
	for op := range ops.UnaryOp(ops.UnaryOpCount) {
		t.Header = append(t.Header, op.String())
	}
	for _, tok := range rows {
		v := buf.Type(tok)
		row := ui.Row{Label: buf.TypeName(tok)}
		for op := range ops.UnaryOp(ops.UnaryOpCount) {
			row.Cells = append(row.Cells, unaryCell(v.SupportsUnary(op)))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func binaryTable(buf *types.TypeBuffer, rows []types.TypeToken, rhs *types.TypeToken) ui.Table {
	title := ui.Title("binary operators") + ", rhs = row type"
	if rhs != nil {
		title = ui.Title("binary operators") + ", rhs = " + buf.TypeName(*rhs)
	}
	t := ui.Table{Title: title, Corner: "lhs"}
	for op := range ops.BinaryOp(ops.BinaryOpCount) {
		t.Header = append(t.Header, op.String())
	}
	for _, tok := range rows {
		other := tok
		if rhs != nil {
			other = *rhs
		}
		lhs, r := buf.Type(tok), buf.Type(other)
		row := ui.Row{Label: buf.TypeName(tok)}
		for op := range ops.BinaryOp(ops.BinaryOpCount) {
			row.Cells = append(row.Cells, binaryCell(lhs.SupportsBinary(op, r)))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func castTable(buf *types.TypeBuffer, rows []types.TypeToken) ui.Table {
	t := ui.Table{Title: ui.Title("conversions"), Corner: "from"}
	targets := make([]types.TypeVariant, 0, types.BuiltinCount)
	for id := range types.BuiltinID(types.BuiltinCount) {
		t.Header = append(t.Header, id.String())
		targets = append(targets, types.BuiltinTypes[id])
	}
	for _, tok := range rows {
		v := buf.Type(tok)
		row := ui.Row{Label: buf.TypeName(tok)}
		for _, to := range targets {
			row.Cells = append(row.Cells, castCell(v.CastableTo(to)))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func unaryCell(s types.UnarySupport) ui.Cell {
	if s == types.UnaryBuiltin {
		return ui.Cell{Text: markOK, Status: ui.StatusOK}
	}
	return ui.Cell{Text: markInvalid, Status: ui.StatusInvalid}
}

func binaryCell(s types.BinarySupport) ui.Cell {
	switch s {
	case types.BinaryBuiltin:
		return ui.Cell{Text: markOK, Status: ui.StatusOK}
	case types.BinaryInvalidType:
		return ui.Cell{Text: markMismatch, Status: ui.StatusMismatch}
	default:
		return ui.Cell{Text: markInvalid, Status: ui.StatusInvalid}
	}
}

func castCell(s types.ConversionSupport) ui.Cell {
	if s == types.CastBuiltin {
		return ui.Cell{Text: markOK, Status: ui.StatusOK}
	}
	return ui.Cell{Text: markInvalid, Status: ui.StatusInvalid}
}
