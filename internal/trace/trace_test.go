package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		lvl, err := ParseLevel(strings.ToUpper(s))
		if err != nil || lvl.String() != s {
			t.Fatalf("ParseLevel(%q) = %v, %v", s, lvl, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLevelScopes(t *testing.T) {
	if !LevelPhase.ShouldEmit(ScopeDriver) || LevelPhase.ShouldEmit(ScopeUnit) {
		t.Fatalf("phase must only emit driver events")
	}
	if !LevelDetail.ShouldEmit(ScopeUnit) || LevelDetail.ShouldEmit(ScopeOp) {
		t.Fatalf("detail must emit unit but not op events")
	}
	if !LevelDebug.ShouldEmit(ScopeOp) {
		t.Fatalf("debug must emit everything")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDetail, Format: FormatText, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := WithTracer(context.Background(), tr)
	root := Begin(FromContext(ctx), ScopeDriver, "fold", 0)
	ctx = WithSpan(ctx, root)
	unit := Begin(FromContext(ctx), ScopeUnit, "unit:a", ParentID(ctx))
	Point(FromContext(ctx), ScopeOp, "op:add", unit.ID(), "filtered out")
	unit.WithExtra("ops", "3").WithExtra("diags", "0").End("")
	root.End("ok")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "← unit:a {diags=0, ops=3}") {
		t.Fatalf("unexpected unit end line %q", lines[2])
	}
	if !strings.Contains(lines[3], "← fold (ok)") {
		t.Fatalf("unexpected driver end line %q", lines[3])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeOp, "op:mul", 7, "u8")
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["name"] != "op:mul" || got["scope"] != "op" || got["parent_id"] != float64(7) {
		t.Fatalf("unexpected event %v", got)
	}
}

func TestOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("off must give a disabled tracer")
	}
	span := Begin(tr, ScopeDriver, "x", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Fatalf("nop span must be inert")
	}
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context must yield Nop")
	}
}

func TestSpanEndRepeatsBeginIdentity(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	span := Begin(tr, ScopeUnit, "unit:b", 3)
	span.WithExtra("ops", "1").End("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 events, got %d:\n%s", len(lines), buf.String())
	}
	var begin, end map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &begin); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &end); err != nil {
		t.Fatalf("end: %v", err)
	}
	if begin["span_id"] != float64(span.ID()) || end["span_id"] != begin["span_id"] {
		t.Fatalf("span ids differ: begin %v end %v", begin["span_id"], end["span_id"])
	}
	if end["gid"] != begin["gid"] || begin["gid"] == float64(0) {
		t.Fatalf("goroutine ids: begin %v end %v", begin["gid"], end["gid"])
	}
	if end["parent_id"] != float64(3) || end["detail"] != "done" {
		t.Fatalf("unexpected end event %v", end)
	}
}
