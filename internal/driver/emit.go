package driver

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"colt/internal/diag"
)

// Formats accepted by Emit.
const (
	EmitText    = "text"
	EmitMsgpack = "msgpack"
)

// Emit writes report to w as text or msgpack.
func Emit(w io.Writer, report *Report, format string) error {
	switch format {
	case EmitMsgpack:
		enc := msgpack.NewEncoder(w)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return nil
	case EmitText, "":
		return emitText(w, report)
	default:
		return fmt.Errorf("unknown emit format %q", format)
	}
}

// DecodeReport reads a report written by Emit in msgpack form. Bags are not
// restored.
func DecodeReport(r io.Reader) (*Report, error) {
	var report Report
	if err := msgpack.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &report, nil
}

func emitText(w io.Writer, report *Report) error {
	bw := bufio.NewWriter(w)
	for _, u := range report.Units {
		fmt.Fprintf(bw, "unit %s\n", u.Name)
		for i, r := range u.Results {
			value := r.Value
			if r.Failed {
				value = "<error>"
			}
			fmt.Fprintf(bw, "  #%d %s = %s : %s\n", i, r.Expr, value, r.Type)
		}
		if u.Bag != nil && u.Bag.Len() > 0 {
			fmt.Fprintln(bw, indent(diag.FormatShort(u.Bag.Items(), true), "  "))
		}
	}
	return bw.Flush()
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
