package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"colt/internal/diag"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgBlue)
	noteColor    = color.New(color.FgCyan)
)

// errHasErrors is returned after error diagnostics have been printed.
var errHasErrors = errors.New("constant folding reported errors")

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// printDiagnostics renders diagnostics in the long form:
//
//	warning[FLD2003]: Signed overflow detected!
//	  --> ints#0
//	  = note: while folding 127 + 1
func printDiagnostics(w io.Writer, diags []diag.Diagnostic) {
	for _, d := range diags {
		head := severityColor(d.Severity).Sprintf("%s[%s]", d.Severity.Label(), d.Code.ID())
		fmt.Fprintf(w, "%s: %s\n", head, d.Message)
		if d.Primary != diag.NoSpan {
			fmt.Fprintf(w, "  --> %s\n", d.Primary)
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  = %s: %s\n", noteColor.Sprint("note"), n.Msg)
		}
	}
}
