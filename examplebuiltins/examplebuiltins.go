// Package examplebuiltins is a small demonstration builtin library for
// hosts embedding Ringneck, bundled with the CLI (cmd/ringneck).
//
// Grounded on the teacher's builtin registration style
// (internal/evaluator/builtins.go's Fn func(e *Evaluator, args
// ...Object) Object convention), adapted to the (ctx, args) -> (Value,
// error) signature internal/value.BuiltinFunc declares.
package examplebuiltins

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ringneck-lang/ringneck/internal/value"
)

// All returns the bundled builtins keyed by the name scripts call them
// with.
func All() map[string]value.BuiltinFunc {
	return map[string]value.BuiltinFunc{
		"uuid":   UUID,
		"len":    Len,
		"upper":  Upper,
		"lower":  Lower,
		"concat": Concat,
	}
}

// UUID returns a freshly generated random identifier, mirroring the
// id-generator pattern used throughout the pack's service code
// (uuid.New().String()).
func UUID(ctx value.BuiltinContext, args []value.Value) (value.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("uuid() takes no arguments, got %d", len(args))
	}
	return value.Str{Value: uuid.New().String()}, nil
}

// Len reports the length of a string, list, tuple, or dict argument.
func Len(ctx value.BuiltinContext, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("len() takes exactly one argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case value.Str:
		return value.Int{Value: int64(len(v.Value))}, nil
	case *value.List:
		return value.Int{Value: int64(len(v.Elements))}, nil
	case *value.Tuple:
		return value.Int{Value: int64(len(v.Elements))}, nil
	case *value.Dict:
		return value.Int{Value: int64(v.Len())}, nil
	default:
		return nil, fmt.Errorf("len() has no meaning for a value of kind %s", args[0].Kind())
	}
}

// Upper uppercases a string argument.
func Upper(ctx value.BuiltinContext, args []value.Value) (value.Value, error) {
	s, err := soleStringArg("upper", args)
	if err != nil {
		return nil, err
	}
	return value.Str{Value: strings.ToUpper(s)}, nil
}

// Lower lowercases a string argument.
func Lower(ctx value.BuiltinContext, args []value.Value) (value.Value, error) {
	s, err := soleStringArg("lower", args)
	if err != nil {
		return nil, err
	}
	return value.Str{Value: strings.ToLower(s)}, nil
}

// Concat joins any number of arguments' string forms together.
func Concat(ctx value.BuiltinContext, args []value.Value) (value.Value, error) {
	out := ""
	for _, a := range args {
		out += a.String()
	}
	return value.Str{Value: out}, nil
}

func soleStringArg(name string, args []value.Value) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s() takes exactly one argument, got %d", name, len(args))
	}
	s, ok := args[0].(value.Str)
	if !ok {
		return "", fmt.Errorf("%s() requires a string argument, got %s", name, args[0].Kind())
	}
	return s.Value, nil
}
