package interp

import (
	"github.com/ringneck-lang/ringneck/internal/ast"
	"github.com/ringneck-lang/ringneck/internal/value"
)

// eval dispatches on the concrete expression node type, per spec.md
// §4.4's expression evaluation rules.
func (it *Interpreter) eval(expr ast.Expr) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return literalValue(n.Value), nil
	case *ast.Grouping:
		return it.eval(n.Expression)
	case *ast.Variable:
		return it.readAddress(parseAddress(n.Name.Lexeme))
	case *ast.VariableIterator:
		return it.evalVariableIteratorRead(n)
	case *ast.IteratorValue:
		v, ok := it.scope["%"]
		if !ok {
			return nil, runtimeErrf(n, "'%%' is not bound outside a broadcast assignment")
		}
		return v, nil
	case *ast.Unary:
		return it.evalUnary(n)
	case *ast.Starred:
		return it.eval(n.Value)
	case *ast.Binary:
		return it.evalBinary(n)
	case *ast.Dict:
		return it.evalDict(n)
	case *ast.List:
		return it.evalList(n)
	case *ast.Tuple:
		return it.evalTuple(n)
	case *ast.ExpressionList:
		return it.evalTupleElements(n.Expressions)
	case *ast.Call:
		return it.evalCall(n)
	case *ast.Conditional:
		return it.evalConditional(n)
	case *ast.Assign:
		return it.evalAssign(n)
	case *ast.MultiAssign:
		return it.evalMultiAssign(n)
	case *ast.AssignIterator:
		return it.evalAssignIterator(n)
	case *ast.AugmentedAssign:
		return it.evalAugmentedAssign(n)
	default:
		return nil, runtimeErrf(expr, "unknown expression type %T", expr)
	}
}

func literalValue(v any) value.Value {
	switch val := v.(type) {
	case nil:
		return value.NullValue
	case bool:
		return value.Bool{Value: val}
	case int64:
		return value.Int{Value: val}
	case float64:
		return value.Float{Value: val}
	case string:
		return value.Str{Value: val}
	default:
		return value.NullValue
	}
}

func (it *Interpreter) evalUnary(n *ast.Unary) (value.Value, error) {
	right, err := it.eval(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Operator.Lexeme {
	case "-":
		switch r := right.(type) {
		case value.Int:
			return value.Int{Value: -r.Value}, nil
		case value.Float:
			return value.Float{Value: -r.Value}, nil
		}
		return nil, runtimeErrf(n, "unary '-' requires a number, got %s", right.Kind())
	case "not":
		return value.Bool{Value: !right.Truthy()}, nil
	default:
		return nil, runtimeErrf(n, "unknown unary operator %q", n.Operator.Lexeme)
	}
}

func (it *Interpreter) evalDict(n *ast.Dict) (value.Value, error) {
	d := value.NewDict()
	for _, kd := range n.Values {
		key, err := it.eval(kd.Key)
		if err != nil {
			return nil, err
		}
		datum, err := it.eval(kd.Datum)
		if err != nil {
			return nil, err
		}
		d.Set(dictKeyText(key), datum)
	}
	return d, nil
}

// dictKeyText renders a key value as the string Dict is keyed by;
// Ringneck dict keys are written as bare identifiers or literals in
// source and are compared by their textual form.
func dictKeyText(v value.Value) string {
	return v.String()
}

func (it *Interpreter) evalList(n *ast.List) (value.Value, error) {
	elements, err := it.evalListBody(n.Values)
	if err != nil {
		return nil, err
	}
	return &value.List{Elements: elements}, nil
}

func (it *Interpreter) evalListBody(values ast.Expr) ([]value.Value, error) {
	switch v := values.(type) {
	case nil:
		return nil, nil
	case *ast.Starred:
		spread, err := it.eval(v.Value)
		if err != nil {
			return nil, err
		}
		return spreadElements(v, spread)
	case *ast.ExpressionList:
		out := make([]value.Value, 0, len(v.Expressions))
		for _, e := range v.Expressions {
			ev, err := it.eval(e)
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
		return out, nil
	default:
		ev, err := it.eval(v)
		if err != nil {
			return nil, err
		}
		return []value.Value{ev}, nil
	}
}

// spreadElements materializes an evaluated Starred payload into a flat
// element slice, failing if it is not an iterable (list/tuple).
func spreadElements(pos ast.Node, v value.Value) ([]value.Value, error) {
	switch it := v.(type) {
	case *value.List:
		return append([]value.Value(nil), it.Elements...), nil
	case *value.Tuple:
		return append([]value.Value(nil), it.Elements...), nil
	default:
		return nil, runtimeErrf(pos, "cannot spread a non-iterable value of kind %s", v.Kind())
	}
}

func (it *Interpreter) evalTuple(n *ast.Tuple) (value.Value, error) {
	return it.evalTupleElements(n.Values)
}

func (it *Interpreter) evalTupleElements(exprs []ast.Expr) (value.Value, error) {
	out := make([]value.Value, 0, len(exprs))
	for _, e := range exprs {
		if starred, ok := e.(*ast.Starred); ok {
			spread, err := it.eval(starred.Value)
			if err != nil {
				return nil, err
			}
			elems, err := spreadElements(starred, spread)
			if err != nil {
				return nil, err
			}
			out = append(out, elems...)
			continue
		}
		ev, err := it.eval(e)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return &value.Tuple{Elements: out}, nil
}

func (it *Interpreter) evalConditional(n *ast.Conditional) (value.Value, error) {
	cond, err := it.eval(n.Condition)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return it.eval(n.Then)
	}
	if n.Else == nil {
		return value.NullValue, nil
	}
	return it.eval(n.Else)
}

func (it *Interpreter) evalCall(n *ast.Call) (value.Value, error) {
	callee, err := it.eval(n.Callee)
	if err != nil {
		return nil, err
	}
	builtin, ok := callee.(value.Builtin)
	if !ok {
		return nil, runtimeErrf(n, "value of kind %s is not callable", callee.Kind())
	}

	var args []value.Value
	switch a := n.Arguments.(type) {
	case nil:
	case *ast.ExpressionList:
		for _, e := range a.Expressions {
			av, err := it.eval(e)
			if err != nil {
				return nil, err
			}
			args = append(args, av)
		}
	case *ast.Starred:
		spread, err := it.eval(a.Value)
		if err != nil {
			return nil, err
		}
		elems, err := spreadElements(a, spread)
		if err != nil {
			return nil, err
		}
		args = elems
	}

	result, err := builtin.Call(it, args)
	if err != nil {
		pos := n.Pos()
		return nil, &RuntimeError{Line: pos.Line, Column: pos.Column, Message: err.Error()}
	}
	return result, nil
}
