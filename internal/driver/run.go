package driver

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"colt/internal/diag"
	"colt/internal/fold"
	"colt/internal/observ"
	"colt/internal/ops"
	"colt/internal/project"
	"colt/internal/trace"
	"colt/internal/types"
)

// Options controls Run.
type Options struct {
	Jobs           uint // 0 means GOMAXPROCS
	Warn           project.WarnFor
	MaxDiagnostics int
	Timer          *observ.Timer
}

// OpResult is the outcome of one batch entry.
type OpResult struct {
	Expr   string `msgpack:"expr"`
	Type   string `msgpack:"type"`
	Value  string `msgpack:"value"`
	Failed bool   `msgpack:"failed"`
}

// DiagRecord is a flattened diagnostic for reports.
type DiagRecord struct {
	Severity string   `msgpack:"severity"`
	Code     string   `msgpack:"code"`
	Op       int      `msgpack:"op"`
	Message  string   `msgpack:"message"`
	Notes    []string `msgpack:"notes,omitempty"`
}

// UnitResult collects the results of one unit. Bag holds the raw
// diagnostics; Diagnostics is its flattened, sorted form.
type UnitResult struct {
	Name        string       `msgpack:"name"`
	Results     []OpResult   `msgpack:"results"`
	Diagnostics []DiagRecord `msgpack:"diagnostics"`
	Bag         *diag.Bag    `msgpack:"-"`
}

// Report is what Run produces, in input order.
type Report struct {
	Units  []UnitResult   `msgpack:"units"`
	Timing *observ.Report `msgpack:"timing,omitempty"`
}

// HasErrors reports whether any unit produced an error diagnostic.
func (r *Report) HasErrors() bool {
	for i := range r.Units {
		if r.Units[i].Bag != nil && r.Units[i].Bag.HasErrors() {
			return true
		}
	}
	return false
}

// Run folds all units. Units run concurrently, each with its own
// TypeBuffer, Folder and diagnostics; operations inside a unit run in order.
func Run(ctx context.Context, units []Unit, opts Options) (*Report, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "fold.run", trace.ParentID(ctx))
	defer span.End("")
	ctx = trace.WithSpan(ctx, span)
	span.WithExtra("units", strconv.Itoa(len(units)))

	jobs, err := safecast.Conv[int](opts.Jobs)
	if err != nil {
		return nil, fmt.Errorf("invalid job count: %w", err)
	}
	if jobs == 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	report := &Report{Units: make([]UnitResult, len(units))}
	if len(units) == 0 {
		return report, nil
	}

	done := opts.Timer.Track("fold")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(units)))
	for i := range units {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// индекс i уникален для горутины, мьютекс не нужен
			report.Units[i] = runUnit(gctx, &units[i], opts)
			return nil
		})
	}
	err = g.Wait()
	done(fmt.Sprintf("%d units, %d jobs", len(units), jobs))
	if err != nil {
		return report, err
	}
	if opts.Timer != nil {
		timing := opts.Timer.Report()
		report.Timing = &timing
	}
	return report, nil
}

func runUnit(ctx context.Context, u *Unit, opts Options) UnitResult {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeUnit, "fold.unit", trace.ParentID(ctx))
	span.WithExtra("unit", u.Name)
	ctx = trace.WithSpan(ctx, span)

	bag := diag.NewBag(opts.MaxDiagnostics)
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	buf := types.NewTypeBuffer()
	ev := &unitEval{
		unit:    u,
		buf:     buf,
		folder:  fold.New(ctx, buf, opts.Warn, rep),
		rep:     rep,
		results: make([]fold.Value, 0, len(u.Ops)),
	}
	out := UnitResult{Name: u.Name, Results: make([]OpResult, 0, len(u.Ops)), Bag: bag}
	for i := range u.Ops {
		expr, v := ev.eval(i)
		ev.results = append(ev.results, v)
		res := OpResult{Expr: expr, Type: buf.TypeName(v.Type), Failed: ev.folder.IsError(v)}
		if !res.Failed {
			res.Value = ev.folder.Format(v)
		}
		out.Results = append(out.Results, res)
	}
	bag.Sort()
	out.Diagnostics = flatten(bag.Items())
	span.End(fmt.Sprintf("%d ops, %d diagnostics", len(u.Ops), bag.Len()))
	return out
}

func flatten(items []diag.Diagnostic) []DiagRecord {
	out := make([]DiagRecord, 0, len(items))
	for _, d := range items {
		rec := DiagRecord{
			Severity: d.Severity.Label(),
			Code:     d.Code.ID(),
			Op:       d.Primary.Op,
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			rec.Notes = append(rec.Notes, n.Msg)
		}
		out = append(out, rec)
	}
	return out
}

type unitEval struct {
	unit    *Unit
	buf     *types.TypeBuffer
	folder  *fold.Folder
	rep     diag.Reporter
	results []fold.Value
}

func (e *unitEval) span(i int) diag.Span { return diag.Span{Unit: e.unit.Name, Op: i} }

func (e *unitEval) errorValue() fold.Value { return fold.Value{Type: e.buf.ErrorType()} }

func (e *unitEval) bad(i int, code diag.Code, format string, args ...any) fold.Value {
	diag.ReportError(e.rep, code, e.span(i), fmt.Sprintf(format, args...)).Emit()
	return e.errorValue()
}

// eval folds entry i and returns a rendering of the expression.
func (e *unitEval) eval(i int) (string, fold.Value) {
	spec := e.unit.Ops[i]
	at := e.span(i)
	name := strings.TrimSpace(spec.Op)

	if strings.EqualFold(name, "as") || strings.EqualFold(name, "cast") {
		to, ok := e.resolveType(i, spec.To, 0, "to")
		lhs := e.operand(i, spec.LHS, spec.Type, spec.Width, "lhs")
		expr := fmt.Sprintf("%s as %s", spec.LHS, spec.To)
		if !ok {
			return expr, e.errorValue()
		}
		return expr, e.folder.Cast(at, lhs, to)
	}

	if spec.RHS == "" {
		op, err := ops.ParseUnary(name)
		if err != nil {
			return name, e.bad(i, diag.PrjBadBatch, "%v", err)
		}
		v := e.operand(i, spec.LHS, spec.Type, spec.Width, "lhs")
		return fmt.Sprintf("%s%s", op, spec.LHS), e.folder.Unary(at, op, v)
	}

	op, err := ops.ParseBinary(name)
	if err != nil {
		return name, e.bad(i, diag.PrjBadBatch, "%v", err)
	}
	lhs := e.operand(i, spec.LHS, spec.Type, spec.Width, "lhs")
	rty := spec.RHSType
	if rty == "" {
		rty = spec.Type
	}
	rhs := e.operand(i, spec.RHS, rty, spec.Width, "rhs")
	return fmt.Sprintf("%s %s %s", spec.LHS, op, spec.RHS), e.folder.Binary(at, op, lhs, rhs)
}

// operand reads a literal of type ty, or a $N back reference.
func (e *unitEval) operand(i int, text, ty string, width uint, role string) fold.Value {
	text = strings.TrimSpace(text)
	if text == "" {
		return e.bad(i, diag.PrjBadBatch, "missing %s operand", role)
	}
	if ref, ok := strings.CutPrefix(text, "$"); ok {
		n, err := strconv.Atoi(ref)
		if err != nil || n < 0 || n >= i {
			return e.bad(i, diag.PrjBadBatch, "%s refers to %q, which is not an earlier operation", role, text)
		}
		return e.results[n]
	}
	tok, ok := e.resolveType(i, ty, width, role)
	if !ok {
		return e.errorValue()
	}
	return e.folder.Literal(e.span(i), tok, text)
}

func (e *unitEval) resolveType(i int, name string, width uint, role string) (types.TypeToken, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		id, ok := bytesOfWidth(width)
		if !ok {
			e.bad(i, diag.PrjBadBatch, "missing type for %s", role)
			return types.TypeToken{}, false
		}
		return e.buf.AddBuiltin(id), true
	}
	tok, err := types.ParseType(e.buf, name)
	if err != nil {
		e.bad(i, diag.PrjBadType, "%s: %v", role, err)
		return types.TypeToken{}, false
	}
	return tok, true
}

func bytesOfWidth(width uint) (types.BuiltinID, bool) {
	switch width {
	case 8:
		return types.Byte, true
	case 16:
		return types.Word, true
	case 32:
		return types.Dword, true
	case 64:
		return types.Qword, true
	}
	return 0, false
}
