package observ

import (
	"strings"
	"sync"
	"testing"
)

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	done := tm.Track("load")
	done("2 units")
	idx := tm.Begin("fold")
	tm.End(idx, "")
	tm.End(42, "ignored")

	report := tm.Report()
	if len(report.Phases) != 2 || report.Phases[0].Note != "2 units" {
		t.Fatalf("unexpected report %+v", report)
	}
	sum := tm.Summary()
	if !strings.HasPrefix(sum, "timings:\n") || !strings.Contains(sum, "// 2 units") || !strings.Contains(sum, "total") {
		t.Fatalf("unexpected summary:\n%s", sum)
	}
}

func TestTimerConcurrentUse(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Track("unit")("")
		}()
	}
	wg.Wait()
	if got := len(tm.Report().Phases); got != 8 {
		t.Fatalf("expected 8 phases, got %d", got)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Track("x")("")
	if len(tm.Report().Phases) != 0 {
		t.Fatalf("nil timer must report nothing")
	}
}
