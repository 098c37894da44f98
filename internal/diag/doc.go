// Package diag defines the diagnostic model shared by the folder, the batch
// driver and the CLI.
//
// Diagnostic is the central record: a Severity, a numeric Code with a stable
// string ID (TYP1001, FLD2003, ...), a message and a primary Span. A Span
// points at one operation of a fold batch rather than at source text.
//
// Producers emit through a Reporter so that storage stays decoupled.
// BagReporter aggregates into a Bag, which supports sorting, deduplication and
// one-line rendering via FormatShort. DedupReporter drops repeats before they
// reach the bag.
//
// Package diag does no IO and knows nothing about colours or terminals.
package diag
