package parser

import (
	"fmt"

	"github.com/ringneck-lang/ringneck/internal/ast"
	"github.com/ringneck-lang/ringneck/internal/token"
)

// parseExpression is the grammar's entry point: assignment.
func (p *Parser) parseExpression() ast.Expr {
	return p.assignment()
}

// assignment ::= expression_list ( ('=' | '?=') assignment )?
//
// A plus/minus augmented assign ("a += 1") is recognized here too: the
// closed token-kind set has no dedicated PLUS_EQUAL kind, so "+="
// scans as PLUS followed immediately by EQUAL, which this production
// distinguishes from "target = value" by checking for that adjacent
// pair before falling through to the ordinary assignment forms.
func (p *Parser) assignment() ast.Expr {
	if aug, ok := p.tryAugmentedAssign(); ok {
		return aug
	}

	expr := p.expressionList()

	if p.match(token.EQUAL, token.MAYBE_EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Tuple:
			p.checkMultiAssignArity(target, value)
			return &ast.MultiAssign{Targets: target, Operator: equals, Value: value}
		case *ast.List:
			p.checkMultiAssignArity(target, value)
			return &ast.MultiAssign{Targets: target, Operator: equals, Value: value}
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Operator: equals, Value: value}
		case *ast.VariableIterator:
			return &ast.AssignIterator{Iterator: target, Operator: equals, Value: value}
		default:
			panic(p.error("Invalid assignment target."))
		}
	}

	return expr
}

// checkMultiAssignArity reports a static parse error when Targets and
// Value are both syntactically fixed-arity sequence literals (a Tuple,
// or a List literal whose body is a flat element list) with differing
// element counts — spec.md §8's "MultiAssign with mismatched LHS/RHS
// arities is a parse error" property. When either side's arity isn't
// knowable until runtime (a bare variable, or a spread), this is
// silent here and left to evalMultiAssign's runtime check.
func (p *Parser) checkMultiAssignArity(target, value ast.Expr) {
	targetN, targetOK := literalArity(target)
	valueN, valueOK := literalArity(value)
	if targetOK && valueOK && targetN != valueN {
		panic(p.error(fmt.Sprintf("multi-assign arity mismatch: %d targets, %d values", targetN, valueN)))
	}
}

// literalArity reports the element count of expr when expr is
// syntactically a fixed-arity sequence literal: a Tuple, or a List
// literal whose body is a flat comma-separated element list (or
// empty). A List whose body is a single spread (Starred) has no
// element count knowable until runtime.
func literalArity(expr ast.Expr) (int, bool) {
	switch e := expr.(type) {
	case *ast.Tuple:
		return len(e.Values), true
	case *ast.List:
		switch values := e.Values.(type) {
		case nil:
			return 0, true
		case *ast.ExpressionList:
			return len(values.Expressions), true
		default:
			return 0, false
		}
	default:
		return 0, false
	}
}

// tryAugmentedAssign looks ahead for "IDENTIFIER ('+' | '-') '='" and,
// if found, consumes it as an AugmentedAssign; otherwise it leaves the
// cursor untouched.
func (p *Parser) tryAugmentedAssign() (ast.Expr, bool) {
	if !p.check(token.IDENTIFIER) {
		return nil, false
	}
	save := p.current
	name := p.advance()
	if !p.check(token.PLUS) && !p.check(token.MINUS) {
		p.current = save
		return nil, false
	}
	opTok := p.peek()
	// Require the '+'/'-' to be immediately followed by '=' with no
	// space consumed as a separate operator; the scanner does not
	// track adjacency, so we simply require EQUAL right after.
	next := p.current + 1
	if next >= len(p.tokens) || p.tokens[next].Kind != token.EQUAL {
		p.current = save
		return nil, false
	}
	p.advance() // the '+' or '-'
	p.advance() // the '='
	right := p.assignment()
	return &ast.AugmentedAssign{
		Target:   &ast.Variable{Name: name},
		Operator: opTok,
		Right:    right,
	}, true
}

// expressionList ::= equality ( ',' equality )*
//
// With no comma this yields a bare expression. With a comma, a list
// immediately followed by ')' is returned as an ExpressionList, which
// primary's '(...)' production reclassifies into a Tuple; a comma list
// standing alone (not followed by ')') is already a Tuple. Call
// arguments and '[...]' bodies are parsed by finishCall and list
// themselves and do not go through here.
func (p *Parser) expressionList() ast.Expr {
	expr := p.equality()
	if !p.check(token.COMMA) {
		return expr
	}
	exprs := []ast.Expr{expr}
	for p.match(token.COMMA) {
		exprs = append(exprs, p.equality())
	}
	if p.check(token.RIGHT_PAREN) {
		return &ast.ExpressionList{Token: exprs[0].Pos(), Expressions: exprs}
	}
	return &ast.Tuple{Token: exprs[0].Pos(), Values: exprs}
}

// equality ::= logical ( ('==' | '!=') logical )*
//
//	| logical 'if' equality ('else' expression)?
func (p *Parser) equality() ast.Expr {
	expr := p.logical()

	if p.check(token.IF) {
		ifTok := p.advance()
		condition := p.equality()
		var elseExpr ast.Expr
		if p.match(token.ELSE) {
			elseExpr = p.parseExpression()
		}
		return &ast.Conditional{Token: ifTok, Then: expr, Condition: condition, Else: elseExpr}
	}

	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.logical()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// logical ::= comparison ( ('and' | 'or') comparison )*
func (p *Parser) logical() ast.Expr {
	expr := p.comparison()
	for p.match(token.AND, token.OR) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// comparison ::= term ( ('<' | '<=' | '>' | '>=') term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// term ::= factor ( ('+' | '-') factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.PLUS, token.MINUS) {
		operator := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// factor ::= unary ( ('*' | '/' | '%') unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.STAR, token.SLASH, token.PERCENT) {
		operator := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// unary ::= ('-' unary) | ('*' unary) | ('not' unary) | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: operator, Right: right}
	}
	if p.match(token.STAR) {
		operator := p.previous()
		right := p.unary()
		return &ast.Starred{Operator: operator, Value: right}
	}
	if p.match(token.NOT) {
		operator := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: operator, Right: right}
	}
	return p.call()
}

// call ::= primary ( '(' args? ')' )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		if p.match(token.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	var starred ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		if p.check(token.STAR) {
			starred = p.unary()
		} else {
			args = append(args, p.equality())
			for p.match(token.COMMA) {
				args = append(args, p.equality())
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "expected ')' after arguments")

	var arguments ast.Expr
	switch {
	case starred != nil:
		arguments = starred
	case args != nil:
		arguments = &ast.ExpressionList{Token: paren, Expressions: args}
	default:
		arguments = &ast.ExpressionList{Token: paren}
	}
	return &ast.Call{Callee: callee, Paren: paren, Arguments: arguments}
}

// primary ::= TRUE | FALSE | NUMBER | STRING
//           | IDENTIFIER ( '[' list ']' )?
//           | '(' expr_list ')'
//           | '[' list_body ']'
//           | '{' dict_body '}'
//           | '%'
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Token: p.previous(), Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Token: p.previous(), Value: true}
	case p.match(token.IDENTIFIER):
		// The scanner folds a trailing '.' into the identifier lexeme
		// itself (identifiers continue over '.'), so "a.['x','y']"
		// scans as IDENTIFIER("a.") followed directly by '['; no
		// separate DOT token stands between prefix and bracket.
		name := p.previous()
		if p.check(token.LEFT_BRACKET) {
			iterList := p.list()
			return &ast.VariableIterator{Prefix: name, Iterator: iterList.(*ast.List)}
		}
		return &ast.Variable{Name: name}
	case p.match(token.NUMBER, token.STRING):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case p.match(token.LEFT_PAREN):
		leftParen := p.previous()
		expr := p.expressionList()
		p.consume(token.RIGHT_PAREN, "expected ')' after expression")
		if list, ok := expr.(*ast.ExpressionList); ok {
			return &ast.Tuple{Token: list.Token, Values: list.Expressions}
		}
		return &ast.Grouping{LeftParen: leftParen, Expression: expr}
	case p.check(token.LEFT_BRACKET):
		return p.list()
	case p.match(token.LEFT_BRACE):
		return p.dictionary()
	case p.match(token.PERCENT):
		return &ast.IteratorValue{Token: p.previous()}
	}
	panic(p.error("expected expression"))
}

// list parses its own comma-separated element sequence rather than
// delegating to expressionList: expressionList decides Tuple vs.
// ExpressionList by peeking for a trailing ')', which is the wrong
// terminator inside '[...]' and would wrongly fold a multi-element
// list into a single Tuple element.
func (p *Parser) list() ast.Expr {
	leftBracket := p.consume(token.LEFT_BRACKET, "expected '['")
	if p.match(token.RIGHT_BRACKET) {
		return &ast.List{LeftBracket: leftBracket}
	}
	if p.check(token.STAR) {
		starred := p.unary()
		p.consume(token.RIGHT_BRACKET, "expected ']' to close list")
		return &ast.List{LeftBracket: leftBracket, Values: starred}
	}
	exprs := []ast.Expr{p.equality()}
	for p.match(token.COMMA) {
		exprs = append(exprs, p.equality())
	}
	p.consume(token.RIGHT_BRACKET, "expected ']' to close list")
	return &ast.List{LeftBracket: leftBracket, Values: &ast.ExpressionList{Token: leftBracket, Expressions: exprs}}
}

func (p *Parser) dictionary() ast.Expr {
	leftBrace := p.previous()
	var pairs []ast.KeyDatum
	p.skipEOLs()
	for !p.check(token.RIGHT_BRACE) {
		key := p.parseExpression()
		p.consume(token.COLON, "expected ':' in dict entry")
		datum := p.equality()
		pairs = append(pairs, ast.KeyDatum{Key: key, Datum: datum})
		if p.check(token.COMMA) {
			p.advance()
		}
		p.skipEOLs()
	}
	p.consume(token.RIGHT_BRACE, "expected '}' to close dict")
	return &ast.Dict{LeftBrace: leftBrace, Values: pairs}
}
