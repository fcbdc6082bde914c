package interp

import (
	"github.com/ringneck-lang/ringneck/internal/ast"
	"github.com/ringneck-lang/ringneck/internal/value"
)

func (it *Interpreter) execStmt(stmt ast.Stmt) (value.Value, error) {
	switch n := stmt.(type) {
	case *ast.ExpressionStatement:
		return it.eval(n.Expression)
	case *ast.If:
		return it.execIf(n)
	case *ast.Repeat:
		return it.execRepeat(n)
	default:
		return nil, runtimeErrf(stmt, "unknown statement type %T", stmt)
	}
}

func (it *Interpreter) execIf(n *ast.If) (value.Value, error) {
	cond, err := it.eval(n.Condition)
	if err != nil {
		return nil, err
	}
	if !cond.Truthy() {
		return value.NullValue, nil
	}
	for _, s := range n.Then {
		if _, err := it.execStmt(s); err != nil {
			return nil, err
		}
	}
	return value.NullValue, nil
}

func (it *Interpreter) execRepeat(n *ast.Repeat) (value.Value, error) {
	countVal, err := it.eval(n.Count)
	if err != nil {
		return nil, err
	}
	count, ok := countVal.(value.Int)
	if !ok {
		return nil, runtimeErrf(n, "repeat count must be an integer, got %s", countVal.Kind())
	}
	if count.Value < 0 {
		return nil, runtimeErrf(n, "repeat count must be non-negative, got %d", count.Value)
	}
	for i := int64(0); i < count.Value; i++ {
		if _, err := it.execStmt(n.Body); err != nil {
			return nil, err
		}
	}
	return value.NullValue, nil
}
