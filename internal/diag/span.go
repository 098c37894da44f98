package diag

import "fmt"

// Span locates a diagnostic inside a fold batch: the unit name and the
// zero-based index of the operation. Op < 0 points at the unit itself.
type Span struct {
	Unit string
	Op   int
}

// NoSpan is used for diagnostics that are not tied to a batch entry.
var NoSpan = Span{Op: -1}

func (s Span) String() string {
	switch {
	case s.Unit == "" && s.Op < 0:
		return "<input>"
	case s.Op < 0:
		return s.Unit
	default:
		return fmt.Sprintf("%s#%d", s.Unit, s.Op)
	}
}

// Less orders spans by unit, then by operation index.
func (s Span) Less(o Span) bool {
	if s.Unit != o.Unit {
		return s.Unit < o.Unit
	}
	return s.Op < o.Op
}
