package interp

import (
	"github.com/ringneck-lang/ringneck/internal/ast"
	"github.com/ringneck-lang/ringneck/internal/token"
	"github.com/ringneck-lang/ringneck/internal/value"
)

func (it *Interpreter) evalAssign(n *ast.Assign) (value.Value, error) {
	val, err := it.eval(n.Value)
	if err != nil {
		return nil, err
	}
	addr := parseAddress(n.Name.Lexeme)

	if n.Operator.Kind == token.MAYBE_EQUAL {
		current, err := it.readAddress(addr)
		if err != nil {
			return nil, err
		}
		if !isNull(current) {
			return value.NullValue, nil
		}
	}

	if err := it.writeAddress(addr, val); err != nil {
		return nil, withPos(err, n)
	}
	return value.NullValue, nil
}

func isNull(v value.Value) bool {
	_, ok := v.(value.Null)
	return ok
}

// evalMultiAssign destructures Value across Targets, a Tuple or List
// of Variables. The parser's checkMultiAssignArity already rejects a
// mismatch when both sides are syntactically fixed-arity sequence
// literals; the check here remains as the fallback for the genuinely
// dynamic case, where Value is not itself a literal sequence (e.g.
// "b, c = a").
func (it *Interpreter) evalMultiAssign(n *ast.MultiAssign) (value.Value, error) {
	val, err := it.eval(n.Value)
	if err != nil {
		return nil, err
	}
	elements, ok := sequenceElements(val)
	if !ok {
		return nil, runtimeErrf(n, "multi-assign value must be a sequence, got %s", val.Kind())
	}

	targets := targetExprs(n.Targets)
	if len(targets) != len(elements) {
		return nil, runtimeErrf(n, "multi-assign arity mismatch: %d targets, %d values", len(targets), len(elements))
	}
	for i, target := range targets {
		v, ok := target.(*ast.Variable)
		if !ok {
			return nil, runtimeErrf(n, "multi-assign target must be a variable")
		}
		if err := it.writeAddress(parseAddress(v.Name.Lexeme), elements[i]); err != nil {
			return nil, withPos(err, n)
		}
	}
	return value.NullValue, nil
}

func sequenceElements(v value.Value) ([]value.Value, bool) {
	switch seq := v.(type) {
	case *value.Tuple:
		return seq.Elements, true
	case *value.List:
		return seq.Elements, true
	default:
		return nil, false
	}
}

func targetExprs(targets ast.Expr) []ast.Expr {
	switch t := targets.(type) {
	case *ast.Tuple:
		return t.Values
	case *ast.List:
		if el, ok := t.Values.(*ast.ExpressionList); ok {
			return el.Expressions
		}
	}
	return nil
}

// evalVariableIteratorRead gathers the values at {prefix}{k} for each k
// in the iterator list, per spec.md §4.3's broadcast sugar.
func (it *Interpreter) evalVariableIteratorRead(n *ast.VariableIterator) (value.Value, error) {
	keys, err := it.evalListBody(n.Iterator.Values)
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, 0, len(keys))
	for _, k := range keys {
		addr := parseAddress(n.Prefix.Lexeme + k.String())
		v, err := it.readAddress(addr)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return &value.List{Elements: out}, nil
}

// evalAssignIterator broadcasts the evaluated RHS into every address
// named by the iterator, binding "%" to the current key for the
// duration and removing it once the broadcast completes (spec.md
// §4.4's AssignIterator rule and §8's "broadcast scoping" property).
func (it *Interpreter) evalAssignIterator(n *ast.AssignIterator) (value.Value, error) {
	keys, err := it.evalListBody(n.Iterator.Iterator.Values)
	if err != nil {
		return nil, err
	}

	defer delete(it.scope, "%")
	for _, k := range keys {
		it.scope["%"] = k
		val, err := it.eval(n.Value)
		if err != nil {
			return nil, err
		}
		addr := parseAddress(n.Iterator.Prefix.Lexeme + k.String())
		if err := it.writeAddress(addr, val); err != nil {
			return nil, withPos(err, n)
		}
	}
	return value.NullValue, nil
}

// evalAugmentedAssign implements "target op= right" as
// "target = target op right".
func (it *Interpreter) evalAugmentedAssign(n *ast.AugmentedAssign) (value.Value, error) {
	addr := parseAddress(n.Target.Name.Lexeme)
	current, err := it.readAddress(addr)
	if err != nil {
		return nil, err
	}
	right, err := it.eval(n.Right)
	if err != nil {
		return nil, err
	}
	result, err := applyArith(n.Operator, current, right)
	if err != nil {
		return nil, err
	}
	if err := it.writeAddress(addr, result); err != nil {
		return nil, withPos(err, n)
	}
	return value.NullValue, nil
}

func withPos(err error, n ast.Node) error {
	if re, ok := err.(*RuntimeError); ok && re.Line == 0 {
		pos := n.Pos()
		re.Line, re.Column = pos.Line, pos.Column
	}
	return err
}
