package interp

import (
	"github.com/ringneck-lang/ringneck/internal/ast"
	"github.com/ringneck-lang/ringneck/internal/token"
	"github.com/ringneck-lang/ringneck/internal/value"
	"github.com/spf13/cast"
)

// evalBinary implements spec.md §4.4's Binary rules: arithmetic,
// comparison, equality, and the short-circuiting logical operators.
func (it *Interpreter) evalBinary(n *ast.Binary) (value.Value, error) {
	switch n.Operator.Kind {
	case token.AND:
		left, err := it.eval(n.Left)
		if err != nil {
			return nil, err
		}
		if !left.Truthy() {
			return left, nil
		}
		return it.eval(n.Right)
	case token.OR:
		left, err := it.eval(n.Left)
		if err != nil {
			return nil, err
		}
		if left.Truthy() {
			return left, nil
		}
		return it.eval(n.Right)
	}

	left, err := it.eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Kind {
	case token.EQUAL_EQUAL:
		return value.Bool{Value: valuesEqual(left, right)}, nil
	case token.BANG_EQUAL:
		return value.Bool{Value: !valuesEqual(left, right)}, nil
	case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		return applyArith(n.Operator, left, right)
	case token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		return applyComparison(n.Operator, left, right)
	default:
		return nil, runtimeErrf(n, "unknown binary operator %q", n.Operator.Lexeme)
	}
}

// numericOperands coerces two operand values to a common numeric
// domain using spf13/cast, surfacing non-numeric operands as a
// runtime failure tagged with the operator's position.
func numericOperands(op token.Token, left, right value.Value) (lf, rf float64, bothInt bool, li, ri int64, err error) {
	li, lok := intOf(left)
	ri2, rok := intOf(right)
	if lok && rok {
		return 0, 0, true, li, ri2, nil
	}

	ln, rn := numericOperand(left), numericOperand(right)
	lf, lerr := cast.ToFloat64E(ln)
	if ln == nil || lerr != nil {
		return 0, 0, false, 0, 0, runtimeErrAt(op, "operand %s is not a number", left.Kind())
	}
	rf, rerr := cast.ToFloat64E(rn)
	if rn == nil || rerr != nil {
		return 0, 0, false, 0, 0, runtimeErrAt(op, "operand %s is not a number", right.Kind())
	}
	return lf, rf, false, 0, 0, nil
}

func intOf(v value.Value) (int64, bool) {
	i, ok := v.(value.Int)
	if !ok {
		return 0, false
	}
	return i.Value, true
}

func numericOperand(v value.Value) any {
	switch n := v.(type) {
	case value.Int:
		return n.Value
	case value.Float:
		return n.Value
	default:
		return nil
	}
}

func applyArith(op token.Token, left, right value.Value) (value.Value, error) {
	lf, rf, bothInt, li, ri, err := numericOperands(op, left, right)
	if err != nil {
		return nil, err
	}
	if bothInt {
		switch op.Lexeme {
		case "+":
			return value.Int{Value: li + ri}, nil
		case "-":
			return value.Int{Value: li - ri}, nil
		case "*":
			return value.Int{Value: li * ri}, nil
		case "%":
			if ri == 0 {
				return nil, runtimeErrAt(op, "modulo by zero")
			}
			return value.Int{Value: li % ri}, nil
		case "/":
			if ri == 0 {
				return nil, runtimeErrAt(op, "division by zero")
			}
			if li%ri == 0 {
				return value.Int{Value: li / ri}, nil
			}
			return value.Float{Value: float64(li) / float64(ri)}, nil
		}
	}
	switch op.Lexeme {
	case "+":
		return value.Float{Value: lf + rf}, nil
	case "-":
		return value.Float{Value: lf - rf}, nil
	case "*":
		return value.Float{Value: lf * rf}, nil
	case "/":
		if rf == 0 {
			return nil, runtimeErrAt(op, "division by zero")
		}
		return value.Float{Value: lf / rf}, nil
	case "%":
		return nil, runtimeErrAt(op, "'%%' requires integer operands")
	}
	return nil, runtimeErrAt(op, "unknown arithmetic operator %q", op.Lexeme)
}

func applyComparison(op token.Token, left, right value.Value) (value.Value, error) {
	// String operands compare lexicographically; everything else
	// compares numerically via the same coercion arithmetic uses.
	if ls, ok := left.(value.Str); ok {
		if rs, ok := right.(value.Str); ok {
			return value.Bool{Value: compareStrings(op.Lexeme, ls.Value, rs.Value)}, nil
		}
	}

	lf, rf, bothInt, li, ri, err := numericOperands(op, left, right)
	if err != nil {
		return nil, err
	}
	if bothInt {
		lf, rf = float64(li), float64(ri)
	}
	return value.Bool{Value: compareFloats(op.Lexeme, lf, rf)}, nil
}

func compareFloats(op string, l, r float64) bool {
	switch op {
	case ">":
		return l > r
	case ">=":
		return l >= r
	case "<":
		return l < r
	case "<=":
		return l <= r
	}
	return false
}

func compareStrings(op, l, r string) bool {
	switch op {
	case ">":
		return l > r
	case ">=":
		return l >= r
	case "<":
		return l < r
	case "<=":
		return l <= r
	}
	return false
}

func valuesEqual(left, right value.Value) bool {
	switch l := left.(type) {
	case value.Null:
		_, ok := right.(value.Null)
		return ok
	case value.Bool:
		r, ok := right.(value.Bool)
		return ok && l.Value == r.Value
	case value.Int:
		switch r := right.(type) {
		case value.Int:
			return l.Value == r.Value
		case value.Float:
			return float64(l.Value) == r.Value
		}
		return false
	case value.Float:
		switch r := right.(type) {
		case value.Int:
			return l.Value == float64(r.Value)
		case value.Float:
			return l.Value == r.Value
		}
		return false
	case value.Str:
		r, ok := right.(value.Str)
		return ok && l.Value == r.Value
	default:
		return left.String() == right.String() && left.Kind() == right.Kind()
	}
}
