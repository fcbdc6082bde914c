// Package interp implements the tree-walking evaluator: statement and
// expression evaluation rules, the layered variable-binding model, and
// the dual state/subject addressing scheme.
//
// Grounded on the teacher's internal/evaluator.Evaluator/Environment
// pair (evaluator.go's evalCore type switch, object.go's Object
// values), adapted from an error-as-return-value Object model to
// idiomatic Go (Value, error) returns, since spec.md's own error
// handling design already separates static sink-recorded diagnostics
// from a distinct runtime-failure channel.
package interp

import (
	"fmt"

	"github.com/ringneck-lang/ringneck/internal/ast"
	"github.com/ringneck-lang/ringneck/internal/token"
	"github.com/ringneck-lang/ringneck/internal/value"
)

// RuntimeError is a single interpretation failure, carrying the source
// position of the operator or call site that raised it.
type RuntimeError struct {
	Line    int
	Column  int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func runtimeErrf(node ast.Node, format string, args ...any) error {
	pos := node.Pos()
	return &RuntimeError{Line: pos.Line, Column: pos.Column, Message: fmt.Sprintf(format, args...)}
}

func runtimeErrAt(pos token.Token, format string, args ...any) error {
	return &RuntimeError{Line: pos.Line, Column: pos.Column, Message: fmt.Sprintf(format, args...)}
}

// Interpreter evaluates a parsed program against a host subject and a
// set of builtins, per spec.md §4.4's "state (layered) + globals
// (subject)" model.
type Interpreter struct {
	builtins map[string]value.Value
	scope    map[string]value.Value
	subject  any
}

// New constructs an Interpreter over subject, with builtins forming
// the bottom, read-only layer of variable resolution.
func New(subject any, builtins map[string]value.Value) *Interpreter {
	if builtins == nil {
		builtins = map[string]value.Value{}
	}
	return &Interpreter{
		builtins: builtins,
		scope:    map[string]value.Value{},
		subject:  subject,
	}
}

// Run executes every statement in order and returns the value each one
// produced (most statements yield null; pure expression statements
// yield their value), per spec.md §6.
func (it *Interpreter) Run(statements []ast.Stmt) ([]value.Value, error) {
	results := make([]value.Value, 0, len(statements))
	for _, stmt := range statements {
		v, err := it.execStmt(stmt)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

// Subject returns the raw host subject, satisfying value.BuiltinContext.
func (it *Interpreter) Subject() any { return it.subject }

// State returns the bindings currently visible to a script, satisfying
// value.BuiltinContext. Builtins are included since they are visible
// by bare name even though they are not writable from scripts.
func (it *Interpreter) State() map[string]value.Value {
	merged := make(map[string]value.Value, len(it.builtins)+len(it.scope))
	for k, v := range it.builtins {
		merged[k] = v
	}
	for k, v := range it.scope {
		merged[k] = v
	}
	return merged
}
