package driver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"colt/internal/observ"
	"colt/internal/project"
)

const sampleBatch = `
[[unit]]
name = "ints"

  [[unit.op]]
  op = "+"
  type = "i8"
  lhs = "127"
  rhs = "1"

  [[unit.op]]
  op = "-"
  type = "i8"
  lhs = "$0"

  [[unit.op]]
  op = "as"
  lhs = "$1"
  to = "u16"

[[unit]]
name = "bytes"

  [[unit.op]]
  op = "xor"
  width = 16
  lhs = "0xFF00"
  rhs = "0x0FF0"

  [[unit.op]]
  op = "div"
  type = "u32"
  lhs = "1"
  rhs = "0"

[[unit]]
name = "bad"

  [[unit.op]]
  op = "+"
  type = "i32"
  rhs_type = "i64"
  lhs = "1"
  rhs = "2"

  [[unit.op]]
  op = "frobnicate"
  type = "i32"
  lhs = "1"
  rhs = "2"

  [[unit.op]]
  op = "~"
  type = "u9"
  lhs = "1"

  [[unit.op]]
  op = "!"
  type = "bool"
  lhs = "$7"
`

func runSample(t *testing.T, jobs uint, warn project.WarnFor) *Report {
	t.Helper()
	units, err := DecodeBatch("sample", sampleBatch)
	if err != nil {
		t.Fatalf("DecodeBatch: %v", err)
	}
	report, err := Run(context.Background(), units, Options{Jobs: jobs, Warn: warn, Timer: observ.NewTimer()})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return report
}

func codesOf(u UnitResult) []string {
	out := make([]string, 0, len(u.Diagnostics))
	for _, d := range u.Diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func TestRunKeepsInputOrder(t *testing.T) {
	report := runSample(t, 3, project.WarnAll())
	if len(report.Units) != 3 {
		t.Fatalf("units = %d, want 3", len(report.Units))
	}
	for i, want := range []string{"ints", "bytes", "bad"} {
		if report.Units[i].Name != want {
			t.Fatalf("unit %d = %q, want %q", i, report.Units[i].Name, want)
		}
	}
	if report.Timing == nil || len(report.Timing.Phases) == 0 {
		t.Fatalf("expected timing phases")
	}
}

func TestRunFoldsChains(t *testing.T) {
	ints := runSample(t, 1, project.WarnAll()).Units[0]
	want := []struct{ value, typ string }{
		{"-128", "i8"},
		{"-128", "i8"},
		{"65408", "u16"},
	}
	for i, w := range want {
		r := ints.Results[i]
		if r.Failed || r.Value != w.value || r.Type != w.typ {
			t.Fatalf("op %d = %+v, want %s : %s", i, r, w.value, w.typ)
		}
	}
	got := strings.Join(codesOf(ints), ",")
	if got != "FLD2003,FLD2003" {
		t.Fatalf("diagnostics = %s", got)
	}
}

func TestRunRespectsWarnFor(t *testing.T) {
	warn := project.WarnAll()
	warn.ConstantFoldingSignedOU = false
	ints := runSample(t, 0, warn).Units[0]
	if len(ints.Diagnostics) != 0 {
		t.Fatalf("signed overflow warnings should be off: %v", codesOf(ints))
	}
}

func TestRunReportsErrors(t *testing.T) {
	report := runSample(t, 2, project.WarnAll())
	if !report.HasErrors() {
		t.Fatalf("expected errors")
	}
	bytesUnit := report.Units[1]
	if bytesUnit.Results[0].Value != "0xF0F0" || bytesUnit.Results[0].Type != "WORD" {
		t.Fatalf("xor = %+v", bytesUnit.Results[0])
	}
	if !bytesUnit.Results[1].Failed || strings.Join(codesOf(bytesUnit), ",") != "FLD2001" {
		t.Fatalf("div by zero = %+v, diagnostics %v", bytesUnit.Results[1], codesOf(bytesUnit))
	}

	bad := report.Units[2]
	for i, r := range bad.Results {
		if !r.Failed {
			t.Fatalf("bad op %d should fail: %+v", i, r)
		}
	}
	got := strings.Join(codesOf(bad), ",")
	if got != "TYP1003,PRJ5001,PRJ5003,PRJ5001" {
		t.Fatalf("diagnostics = %s", got)
	}
}

func TestEmitText(t *testing.T) {
	var buf bytes.Buffer
	if err := Emit(&buf, runSample(t, 1, project.WarnAll()), EmitText); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"unit ints\n",
		"  #0 127 + 1 = -128 : i8\n",
		"  #2 $1 as u16 = 65408 : u16\n",
		"  warning FLD2003 ints#0 Signed overflow detected!\n",
		"  #1 1 / 0 = <error> : <ERROR>\n",
		"  error FLD2001 bytes#1 Integral division by zero!\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestEmitMsgpackRoundTrip(t *testing.T) {
	report := runSample(t, 1, project.WarnAll())
	var buf bytes.Buffer
	if err := Emit(&buf, report, EmitMsgpack); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	got, err := DecodeReport(&buf)
	if err != nil {
		t.Fatalf("DecodeReport: %v", err)
	}
	if len(got.Units) != len(report.Units) {
		t.Fatalf("units = %d, want %d", len(got.Units), len(report.Units))
	}
	if got.Units[2].Diagnostics[0].Code != "TYP1003" || got.Units[0].Results[2].Value != "65408" {
		t.Fatalf("decoded report differs: %+v", got.Units)
	}
	if err := Emit(&buf, report, "yaml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestLoadBatchErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":          "[[unit]]\nname = \"a\"\ncolour = 1\n",
		"defined twice":        "[[unit]]\nname = \"a\"\n[[unit]]\nname = \"a\"\n",
		"failed to parse TOML": "[[unit]\n",
	}
	for want, content := range cases {
		path := filepath.Join(t.TempDir(), "batch.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		_, err := LoadBatch(path)
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Fatalf("LoadBatch(%q) error = %v, want %q", content, err, want)
		}
	}
}

func TestUnnamedUnitsGetIndexNames(t *testing.T) {
	units, err := DecodeBatch("x", "[[unit]]\n[[unit]]\nname = \"b\"\n")
	if err != nil {
		t.Fatalf("DecodeBatch: %v", err)
	}
	if units[0].Name != "unit0" || units[1].Name != "b" {
		t.Fatalf("names = %q, %q", units[0].Name, units[1].Name)
	}
}

func TestRunTestdataBatch(t *testing.T) {
	units, err := LoadBatch(filepath.Join("..", "..", "testdata", "fold", "mixed.toml"))
	if err != nil {
		t.Fatalf("LoadBatch: %v", err)
	}
	report, err := Run(context.Background(), units, Options{Warn: project.WarnAll()})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	values := func(u UnitResult) string {
		out := make([]string, 0, len(u.Results))
		for _, r := range u.Results {
			if r.Failed {
				out = append(out, "<error>")
				continue
			}
			out = append(out, r.Value)
		}
		return strings.Join(out, ",")
	}
	cases := []struct {
		values, codes string
	}{
		{"+Inf,NaN,false", "FLD2002,FLD2002"},
		{"0x21524110,0xF0,559038736", ""},
		{"<error>,<error>,<error>,<error>", "FLD2001,TYP1003,TYP1004"},
	}
	for i, want := range cases {
		u := report.Units[i]
		if got := values(u); got != want.values {
			t.Fatalf("unit %s values = %s, want %s", u.Name, got, want.values)
		}
		if got := strings.Join(codesOf(u), ","); got != want.codes {
			t.Fatalf("unit %s diagnostics = %s, want %s", u.Name, got, want.codes)
		}
	}
}
