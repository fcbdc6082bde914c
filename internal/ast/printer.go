package ast

import (
	"bytes"
	"fmt"
)

// Print renders a single statement as the canonical S-expression-like
// text used by the test suite, grounded on the teacher's
// internal/prettyprinter buffer-writing style.
func Print(stmt Stmt) string {
	p := &printer{}
	p.printStmt(stmt)
	return p.buf.String()
}

// PrintExpr renders a bare expression the same way, for fixtures that
// compare a sub-expression directly.
func PrintExpr(expr Expr) string {
	p := &printer{}
	p.printExpr(expr)
	return p.buf.String()
}

type printer struct {
	buf bytes.Buffer
}

func (p *printer) write(s string) {
	p.buf.WriteString(s)
}

func (p *printer) printStmt(stmt Stmt) {
	switch n := stmt.(type) {
	case *ExpressionStatement:
		p.printExpr(n.Expression)
	case *If:
		p.write("(if ")
		p.printExpr(n.Condition)
		for _, s := range n.Then {
			p.write(" ")
			p.printStmt(s)
		}
		p.write(")")
	case *Repeat:
		p.write("(repeat ")
		p.printExpr(n.Count)
		p.write(" ")
		p.printStmt(&ExpressionStatement{Expression: repeatBodyExpr(n.Body)})
		p.write(")")
	default:
		p.write(fmt.Sprintf("<unknown-stmt %T>", stmt))
	}
}

// repeatBodyExpr unwraps the single expression statement a Repeat body
// always is, so its printed form matches "(repeat 5 (+= a 1))" rather
// than nesting a redundant statement wrapper.
func repeatBodyExpr(body Stmt) Expr {
	if es, ok := body.(*ExpressionStatement); ok {
		return es.Expression
	}
	return &Literal{Value: nil}
}

func (p *printer) printExpr(expr Expr) {
	switch n := expr.(type) {
	case nil:
		p.write("nil")
	case *Literal:
		p.write(literalText(n.Value))
	case *Variable:
		p.write(n.Name.Lexeme)
	case *Grouping:
		p.write("(grouping ")
		p.printExpr(n.Expression)
		p.write(")")
	case *Unary:
		p.write("(" + n.Operator.Lexeme + " ")
		p.printExpr(n.Right)
		p.write(")")
	case *Starred:
		p.write("(starred ")
		p.printExpr(n.Value)
		p.write(")")
	case *Binary:
		p.write("(" + n.Operator.Lexeme + " ")
		p.printExpr(n.Left)
		p.write(" ")
		p.printExpr(n.Right)
		p.write(")")
	case *ExpressionList:
		p.printExprList(n.Expressions)
	case *List:
		if starred, ok := n.Values.(*Starred); ok {
			// A list whose whole body is a spread prints as the bare
			// Starred form, with no surrounding "(list ...)" — the
			// brackets contributed no structure beyond the spread
			// itself.
			p.printExpr(starred)
			return
		}
		p.write("(list ")
		p.printListBody(n.Values)
		p.write(")")
	case *Tuple:
		p.write("(tuple ")
		p.printCommaList(n.Values)
		p.write(")")
	case *Dict:
		p.write("(dict ")
		for i, kd := range n.Values {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(kd.Key)
			p.write(": ")
			p.printExpr(kd.Datum)
		}
		p.write(")")
	case *Call:
		p.write("(call ")
		p.printExpr(n.Callee)
		if n.Arguments != nil {
			switch args := n.Arguments.(type) {
			case *ExpressionList:
				for _, a := range args.Expressions {
					p.write(" ")
					p.printExpr(a)
				}
			default:
				p.write(" ")
				p.printExpr(n.Arguments)
			}
		}
		p.write(")")
	case *Conditional:
		p.write("(if ")
		p.printExpr(n.Then)
		p.write(" ")
		p.printExpr(n.Condition)
		if n.Else != nil {
			p.write(" ")
			p.printExpr(n.Else)
		}
		p.write(")")
	case *VariableIterator:
		// Prefix.Lexeme already carries its trailing '.' (the scanner
		// folds it into the identifier), so no extra separator here.
		p.write(n.Prefix.Lexeme)
		p.printExpr(n.Iterator)
	case *Assign:
		p.write("(assign " + n.Name.Lexeme + " ")
		p.printExpr(n.Value)
		p.write(")")
	case *MultiAssign:
		p.write("(assign ")
		p.printExpr(n.Targets)
		p.write(" ")
		p.printExpr(n.Value)
		p.write(")")
	case *AssignIterator:
		p.write("(assign ")
		p.printExpr(n.Iterator)
		p.write(" ")
		p.printExpr(n.Value)
		p.write(")")
	case *AugmentedAssign:
		p.write("(" + n.Operator.Lexeme + "= " + n.Target.Name.Lexeme + " ")
		p.printExpr(n.Right)
		p.write(")")
	case *IteratorValue:
		p.write("%")
	default:
		p.write(fmt.Sprintf("<unknown-expr %T>", expr))
	}
}

func (p *printer) printExprList(exprs []Expr) {
	for i, e := range exprs {
		if i > 0 {
			p.write(" ")
		}
		p.printExpr(e)
	}
}

func (p *printer) printCommaList(exprs []Expr) {
	for i, e := range exprs {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(e)
	}
}

// printListBody renders a List's payload when it isn't the bare-spread
// case printExpr already special-cases: nil (empty list) or an
// ExpressionList of elements.
func (p *printer) printListBody(values Expr) {
	switch v := values.(type) {
	case nil:
	case *ExpressionList:
		p.printCommaList(v.Expressions)
	default:
		p.printExpr(v)
	}
}

func literalText(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
