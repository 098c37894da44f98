// Package fold evaluates Colt operators over constants. It asks the type
// system whether an operation is supported, runs it through the qword
// engine and turns the engine's result code into diagnostics according to
// the project's warning switches.
package fold
