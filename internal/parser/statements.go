package parser

import (
	"github.com/ringneck-lang/ringneck/internal/ast"
	"github.com/ringneck-lang/ringneck/internal/token"
)

// statement ::= if_stmt | repeat_stmt | expression_statement
func (p *Parser) statement() ast.Stmt {
	return p.recoverStatement(func() ast.Stmt {
		switch {
		case p.check(token.IF):
			return p.ifStatement()
		case p.checkIdent("repeat"):
			return p.repeatStatement()
		default:
			return p.expressionStatement()
		}
	})
}

// if_stmt ::= IF equality ':' EOL statement* 'endif'
func (p *Parser) ifStatement() ast.Stmt {
	ifTok := p.consume(token.IF, "expected 'if'")
	condition := p.equality()
	p.consume(token.COLON, "expected ':' after if condition")
	p.consume(token.EOL, "expected newline after ':'")
	p.skipEOLs()

	var body []ast.Stmt
	for !p.checkIdent("endif") && !p.atEnd() {
		stmt := p.statement()
		if stmt != nil {
			body = append(body, stmt)
		}
		p.skipEOLs()
	}
	p.consumeIdent("endif", "expected 'endif' to close 'if'")

	return &ast.If{Token: ifTok, Condition: condition, Then: body}
}

// repeat_stmt ::= 'repeat' statement_body 'times' equality
//
// The body is a single statement (no EOL separates it from the
// trailing "times COUNT"), matching the "repeat a += 1 times 5"
// surface form.
func (p *Parser) repeatStatement() ast.Stmt {
	repeatTok := p.consumeIdent("repeat", "expected 'repeat'")
	bodyExpr := p.parseExpression()
	body := ast.Stmt(&ast.ExpressionStatement{Expression: bodyExpr})
	p.consumeIdent("times", "expected 'times' after repeat body")
	count := p.equality()

	return &ast.Repeat{Token: repeatTok, Count: count, Body: body}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.parseExpression()
	if !p.atEnd() && !p.checkIdent("endif") {
		p.consume(token.EOL, "expected newline after expression")
	}
	return &ast.ExpressionStatement{Expression: expr}
}
