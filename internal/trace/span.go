package trace

import (
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

var (
	globalSeq  atomic.Uint64
	lastSpanID atomic.Uint64
)

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 { return globalSeq.Add(1) }

// goroutineID reads the id from the "goroutine N [...]" stack header, so
// units folded in parallel can be told apart. 0 if the header is unexpected.
func goroutineID() uint64 {
	var buf [64]byte
	header := string(buf[:runtime.Stack(buf[:], false)])
	rest, ok := strings.CutPrefix(header, "goroutine ")
	if !ok {
		return 0
	}
	num, _, _ := strings.Cut(rest, " ")
	gid, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return 0
	}
	return gid
}

// Span is an open driver, unit or op scope. The zero-cost form returned for
// filtered scopes has a nil tracer and ignores every call.
type Span struct {
	tracer Tracer
	begin  Event
	extra  map[string]string
}

// Begin emits a SpanBegin event for name under parent (0 for a root span).
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !emits(t, scope) {
		return &Span{}
	}
	s := &Span{
		tracer: t,
		begin: Event{
			Time:     time.Now(),
			Kind:     KindSpanBegin,
			Scope:    scope,
			SpanID:   lastSpanID.Add(1),
			ParentID: parent,
			GID:      goroutineID(),
			Name:     name,
		},
	}
	ev := s.begin
	t.Emit(&ev)
	return s
}

// End emits the SpanEnd event with detail and any extras, and returns the
// time since Begin.
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	dur := time.Since(s.begin.Time)
	ev := s.begin
	ev.Time = time.Now()
	ev.Kind = KindSpanEnd
	ev.Detail = detail
	ev.Extra = s.extra
	s.tracer.Emit(&ev)
	return dur
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// ID returns the span id, 0 for filtered spans.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.begin.SpanID
}

func (s *Span) live() bool {
	return s != nil && s.tracer != nil && s.tracer.Enabled()
}

// Point emits an instant event under parent.
func Point(t Tracer, scope Scope, name string, parent uint64, detail string) {
	if !emits(t, scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		SpanID:   lastSpanID.Add(1),
		ParentID: parent,
		GID:      goroutineID(),
		Name:     name,
		Detail:   detail,
	})
}

func emits(t Tracer, scope Scope) bool {
	return t != nil && t.Enabled() && t.Level().ShouldEmit(scope)
}
