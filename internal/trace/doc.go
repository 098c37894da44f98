// Package trace records what the colt driver and folder do.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	colt fold --trace=- --trace-level=detail batch.toml
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes each event immediately as text or NDJSON
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Errors only
//   - LevelPhase: Driver boundaries
//   - LevelDetail: Per-unit events
//   - LevelDebug: Every folded operation
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeUnit, "unit:"+name, parentID)
//	defer span.End("")
package trace
