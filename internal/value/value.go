// Package value defines the dynamic value domain the interpreter
// computes over: the scalar and collection kinds a Ringneck program can
// produce, plus the host-reference and builtin-callable kinds that let
// a script reach back out into its embedder.
//
// Grounded on the teacher's internal/evaluator.Object interface
// (Type()/Inspect()), simplified to the flat, non-persistent value set
// spec.md names instead of the teacher's much larger typed-functional
// object model.
package value

import "fmt"

// Kind identifies a Value's runtime type.
type Kind string

const (
	NullKind    Kind = "null"
	BoolKind    Kind = "bool"
	IntKind     Kind = "int"
	FloatKind   Kind = "float"
	StrKind     Kind = "string"
	ListKind    Kind = "list"
	TupleKind   Kind = "tuple"
	DictKind    Kind = "dict"
	HostKind    Kind = "host"
	BuiltinKind Kind = "builtin"
)

// Value is any value Ringneck expressions can produce or a variable
// can hold.
type Value interface {
	Kind() Kind
	String() string
	Truthy() bool
}

// Null is the single null value.
type Null struct{}

func (Null) Kind() Kind      { return NullKind }
func (Null) String() string  { return "null" }
func (Null) Truthy() bool    { return false }

// NullValue is the shared Null instance; Null carries no state so every
// caller can share one.
var NullValue Value = Null{}

// Bool wraps a boolean.
type Bool struct{ Value bool }

func (b Bool) Kind() Kind { return BoolKind }
func (b Bool) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}
func (b Bool) Truthy() bool { return b.Value }

// Int wraps a 64-bit signed integer.
type Int struct{ Value int64 }

func (i Int) Kind() Kind     { return IntKind }
func (i Int) String() string { return fmt.Sprintf("%d", i.Value) }
func (i Int) Truthy() bool   { return i.Value != 0 }

// Float wraps a 64-bit float.
type Float struct{ Value float64 }

func (f Float) Kind() Kind     { return FloatKind }
func (f Float) String() string { return fmt.Sprintf("%g", f.Value) }
func (f Float) Truthy() bool   { return f.Value != 0 }

// Str wraps a string.
type Str struct{ Value string }

func (s Str) Kind() Kind     { return StrKind }
func (s Str) String() string { return s.Value }
func (s Str) Truthy() bool   { return s.Value != "" }

// List is an ordered, mutable sequence of values.
type List struct{ Elements []Value }

func (l *List) Kind() Kind { return ListKind }
func (l *List) String() string {
	return joinValues(l.Elements, ", ")
}
func (l *List) Truthy() bool { return len(l.Elements) > 0 }

// Tuple is an ordered, fixed-arity sequence of values.
type Tuple struct{ Elements []Value }

func (t *Tuple) Kind() Kind { return TupleKind }
func (t *Tuple) String() string {
	return joinValues(t.Elements, ", ")
}
func (t *Tuple) Truthy() bool { return len(t.Elements) > 0 }

func joinValues(vs []Value, sep string) string {
	s := ""
	for i, v := range vs {
		if i > 0 {
			s += sep
		}
		s += v.String()
	}
	return s
}

// HostRef is an opaque handle wrapping a value supplied by the
// embedding host (the "$" subject), reachable only via the addressing
// rules in internal/interp.
type HostRef struct{ Raw any }

func (h HostRef) Kind() Kind     { return HostKind }
func (h HostRef) String() string { return fmt.Sprintf("%v", h.Raw) }
func (h HostRef) Truthy() bool   { return h.Raw != nil }

// BuiltinContext is the slice of interpreter state a builtin needs:
// enough to read or mutate the bindings live at the call site without
// internal/value importing internal/interp (which would import
// internal/value back, a cycle). Grounded on the teacher's builtin
// convention in internal/evaluator/builtins.go, which passes the
// evaluator itself to every builtin function.
type BuiltinContext interface {
	// State returns the current variable bindings visible to the
	// script at the call site, keyed by bare name.
	State() map[string]Value
	// Subject returns the raw host subject value ("$").
	Subject() any
}

// BuiltinFunc is the Go function signature every builtin implements.
type BuiltinFunc func(ctx BuiltinContext, args []Value) (Value, error)

// Builtin is a host-supplied callable exposed to scripts.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (b Builtin) Kind() Kind     { return BuiltinKind }
func (b Builtin) String() string { return "<builtin " + b.Name + ">" }
func (b Builtin) Truthy() bool   { return true }

// Call invokes the wrapped Go function.
func (b Builtin) Call(ctx BuiltinContext, args []Value) (Value, error) {
	return b.Fn(ctx, args)
}
