package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--color", "off"}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEvalBinary(t *testing.T) {
	t.Chdir(t.TempDir())
	out, errOut, err := execute(t, "eval", "i8", "127", "+", "1")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if out != "-128 : i8\n" {
		t.Fatalf("stdout = %q", out)
	}
	if !strings.Contains(errOut, "warning[FLD2003]: Signed overflow detected!") {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestEvalNoWarn(t *testing.T) {
	t.Chdir(t.TempDir())
	_, errOut, err := execute(t, "--no-warn", "cf_signed_overflow", "eval", "i8", "127", "+", "1")
	if err != nil || errOut != "" {
		t.Fatalf("eval: err=%v stderr=%q", err, errOut)
	}
}

func TestEvalUnaryAndErrors(t *testing.T) {
	t.Chdir(t.TempDir())
	out, _, err := execute(t, "eval", "u16", "~", "0")
	if err != nil || out != "65535 : u16\n" {
		t.Fatalf("eval ~0: out=%q err=%v", out, err)
	}
	out, errOut, err := execute(t, "eval", "u32", "1", "/", "0")
	if !errors.Is(err, errHasErrors) {
		t.Fatalf("expected errHasErrors, got %v", err)
	}
	if out != "<error> : <ERROR>\n" || !strings.Contains(errOut, "error[FLD2001]") {
		t.Fatalf("out=%q stderr=%q", out, errOut)
	}
	if _, _, err := execute(t, "eval", "u33", "1", "+", "1"); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}

func TestCast(t *testing.T) {
	t.Chdir(t.TempDir())
	out, errOut, err := execute(t, "cast", "f64", "300", "i8")
	if err != nil || out != "127 : i8\n" {
		t.Fatalf("cast: out=%q err=%v", out, err)
	}
	if !strings.Contains(errOut, "FLD2003") {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestManifestWarnings(t *testing.T) {
	dir := t.TempDir()
	manifest := "[package]\nname = \"demo\"\n\n[warn]\nconstant_folding_nan = false\n"
	if err := os.WriteFile(filepath.Join(dir, "colt.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	t.Chdir(dir)
	out, errOut, err := execute(t, "eval", "f64", "NaN", "+", "1")
	if err != nil || out != "NaN : f64\n" || errOut != "" {
		t.Fatalf("out=%q stderr=%q err=%v", out, errOut, err)
	}
}

func TestTypeCommand(t *testing.T) {
	out, _, err := execute(t, "type", "ptr.u8", "fn(in i32) -> void", "ptr.u8")
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got:\n%s", out)
	}
	if !strings.HasPrefix(lines[1], "ptr.u8") || !strings.HasPrefix(lines[2], "fn(in i32) -> void") {
		t.Fatalf("unexpected rows:\n%s", out)
	}
	if lines[1] != lines[3] {
		t.Fatalf("equal types must share a row:\n%s", out)
	}
}

func TestSupportTables(t *testing.T) {
	out, _, err := execute(t, "support", "binary", "i32", "f64")
	if err != nil {
		t.Fatalf("support: %v", err)
	}
	if !strings.Contains(out, "Binary Operators, rhs = row type") || !strings.Contains(out, "✓ Builtin") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if _, _, err := execute(t, "support", "ternary"); err == nil {
		t.Fatalf("expected error for unknown table")
	}
	out, _, err = execute(t, "support", "cast", "opaque_ptr")
	if err != nil || !strings.Contains(out, "QWORD") {
		t.Fatalf("cast table: err=%v\n%s", err, out)
	}
}

func TestFoldCommand(t *testing.T) {
	dir := t.TempDir()
	batch := filepath.Join(dir, "batch.toml")
	content := "[[unit]]\nname = \"u\"\n[[unit.op]]\nop = \"shl\"\ntype = \"u8\"\nlhs = \"1\"\nrhs = \"3\"\n"
	if err := os.WriteFile(batch, []byte(content), 0o644); err != nil {
		t.Fatalf("write batch: %v", err)
	}
	t.Chdir(dir)
	out, _, err := execute(t, "fold", "--jobs", "2", batch)
	if err != nil {
		t.Fatalf("fold: %v", err)
	}
	if !strings.Contains(out, "#0 1 << 3 = 8 : u8") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if _, _, err := execute(t, "fold", "--emit", "xml", batch); err == nil {
		t.Fatalf("expected error for unknown emit format")
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version", "--format", "json")
	if err != nil || !strings.Contains(out, `"tool": "colt"`) {
		t.Fatalf("version: out=%q err=%v", out, err)
	}
}
