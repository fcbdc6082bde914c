// Package ringneck is the embedding façade for the Ringneck scripting
// language: construct scanner, parser and interpreter, and run a
// program against a host subject and a set of builtins.
//
// Grounded on the teacher's cmd/funxy/main.go wiring (scanner → parser
// → evaluator, wired through a fresh context per invocation) and on
// internal/pipeline's "construct everything fresh per run" contract.
package ringneck

import (
	"github.com/ringneck-lang/ringneck/internal/errsink"
	"github.com/ringneck-lang/ringneck/internal/interp"
	"github.com/ringneck-lang/ringneck/internal/parser"
	"github.com/ringneck-lang/ringneck/internal/scanner"
	"github.com/ringneck-lang/ringneck/internal/value"
)

// Builtin is the host-facing alias for a callable a script can invoke
// by bare name.
type Builtin = value.BuiltinFunc

// BuiltinContext is the slice of interpreter state exposed to a
// Builtin: the variable bindings and subject visible at the call site.
type BuiltinContext = value.BuiltinContext

// Value is any Ringneck runtime value a Run call can hand back.
type Value = value.Value

// Run scans, parses and interprets source against subject, with
// builtins registered as the bottom, read-only layer of variable
// resolution. It returns the per-statement result list (§6): most
// statements yield null, pure expression statements yield their
// value.
//
// A fresh errsink.Sink and a fresh Interpreter are constructed for
// every call, so concurrent or repeated Run calls never share mutable
// package-level state (spec.md §5's per-run error sink requirement).
func Run(source string, subject any, builtins map[string]Builtin) ([]Value, error) {
	sink := errsink.New()

	toks := scanner.New(source, sink).ScanTokens()
	statements := parser.New(toks, sink).Parse()
	if sink.HadError() {
		return nil, sink
	}

	wrapped := make(map[string]value.Value, len(builtins))
	for name, fn := range builtins {
		wrapped[name] = value.Builtin{Name: name, Fn: fn}
	}

	it := interp.New(subject, wrapped)
	return it.Run(statements)
}
