package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"colt/internal/types"
	"colt/internal/ui"
)

// parseTypeArg reads a type name given on the command line.
func parseTypeArg(buf *types.TypeBuffer, arg string) (types.TypeToken, error) {
	name := norm.NFC.String(strings.TrimSpace(arg))
	tok, err := types.ParseType(buf, name)
	if err != nil {
		return types.TypeToken{}, fmt.Errorf("invalid type %q: %w", arg, err)
	}
	return tok, nil
}

func newTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type <name>...",
		Short: "Intern types and show their canonical names",
		Long: `Intern each type into one buffer and print its canonical name, kind,
token and hash. Equal types share a token.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf := types.NewTypeBuffer()
			table := ui.Table{
				Corner: "type",
				Header: []string{"kind", "token", "bits", "hash"},
			}
			for _, arg := range args {
				tok, err := parseTypeArg(buf, arg)
				if err != nil {
					return err
				}
				v := buf.Type(tok)
				bits := "-"
				if id, ok := v.Builtin(); ok {
					bits = strconv.FormatUint(uint64(id.Bits()), 10)
				}
				table.Rows = append(table.Rows, ui.Row{
					Label: buf.TypeName(tok),
					Cells: []ui.Cell{
						{Text: v.Classof().String()},
						{Text: strconv.FormatUint(uint64(tok.Index()), 10)},
						{Text: bits},
						{Text: fmt.Sprintf("%016x", v.Hash())},
					},
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.Render(table, useColor()))
			return nil
		},
	}
}
