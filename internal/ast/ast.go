// Package ast defines the tagged-tree node types produced by the parser
// and consumed by the interpreter and printer.
//
// Ringneck's own spec calls its node set a "tagged tree" of expression
// and statement variants rather than a class hierarchy, so nodes here
// are plain structs behind two marker interfaces (Expr, Stmt) and
// callers dispatch on concrete type with a type switch, instead of the
// teacher's Visitor/Accept pattern in internal/ast/ast.go.
package ast

import "github.com/ringneck-lang/ringneck/internal/token"

// Node is the base of every AST node: it carries the token most useful
// for positioning a diagnostic at this node.
type Node interface {
	Pos() token.Token
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Literal is a bare value that evaluates to itself: a number, string,
// or boolean.
type Literal struct {
	Token token.Token
	Value any
}

func (n *Literal) Pos() token.Token { return n.Token }
func (n *Literal) exprNode()        {}

// Variable reads or writes a dotted address, e.g. "a", "a.b", "$.foo.bar".
type Variable struct {
	Name token.Token
}

func (n *Variable) Pos() token.Token { return n.Name }
func (n *Variable) exprNode()        {}

// Grouping is a parenthesized single expression.
type Grouping struct {
	LeftParen  token.Token
	Expression Expr
}

func (n *Grouping) Pos() token.Token { return n.LeftParen }
func (n *Grouping) exprNode()        {}

// Unary is a prefix operator: "-x".
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (n *Unary) Pos() token.Token { return n.Operator }
func (n *Unary) exprNode()        {}

// Starred marks an expression for spreading: "*xs" as a list element, a
// call argument, or an assignment value.
type Starred struct {
	Operator token.Token
	Value    Expr
}

func (n *Starred) Pos() token.Token { return n.Operator }
func (n *Starred) exprNode()        {}

// Binary is an infix operator application.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (n *Binary) Pos() token.Token { return n.Operator }
func (n *Binary) exprNode()        {}

// ExpressionList is the undecided comma-separated form produced while
// parsing an expression list; the parser reclassifies it into a Tuple
// or unwraps it depending on the enclosing context (see parser.go).
type ExpressionList struct {
	Token       token.Token
	Expressions []Expr
}

func (n *ExpressionList) Pos() token.Token { return n.Token }
func (n *ExpressionList) exprNode()        {}

// List is a `[...]` literal. Payload is either an ExpressionList, a
// single Starred (spread-only list), or nil for an empty list.
type List struct {
	LeftBracket token.Token
	Values      Expr
}

func (n *List) Pos() token.Token { return n.LeftBracket }
func (n *List) exprNode()        {}

// Tuple is a fixed-arity, comma-separated value sequence, written as
// "(a, b)" or bare "a, b" wherever a tuple is syntactically valid.
type Tuple struct {
	Token  token.Token
	Values []Expr
}

func (n *Tuple) Pos() token.Token { return n.Token }
func (n *Tuple) exprNode()        {}

// KeyDatum is one key/value pair inside a Dict literal.
type KeyDatum struct {
	Key   Expr
	Datum Expr
}

// Dict is a `{...}` literal, preserving source order.
type Dict struct {
	LeftBrace token.Token
	Values    []KeyDatum
}

func (n *Dict) Pos() token.Token { return n.LeftBrace }
func (n *Dict) exprNode()        {}

// Call invokes callee with the given arguments, which is either an
// ExpressionList (empty for a call with no arguments) or a single
// Starred spread.
type Call struct {
	Callee    Expr
	Paren     token.Token
	Arguments Expr
}

func (n *Call) Pos() token.Token { return n.Paren }
func (n *Call) exprNode()        {}

// Conditional is the Python-style ternary "then if cond else other".
type Conditional struct {
	Token     token.Token
	Then      Expr
	Condition Expr
	Else      Expr
}

func (n *Conditional) Pos() token.Token { return n.Token }
func (n *Conditional) exprNode()        {}

// VariableIterator is the broadcast-sugar read/write target:
// "prefix.['k1', 'k2']" gathers or scatters across prefix+k for each k.
type VariableIterator struct {
	Prefix   token.Token
	Iterator *List
}

func (n *VariableIterator) Pos() token.Token { return n.Prefix }
func (n *VariableIterator) exprNode()        {}

// Assign binds Name to the evaluated Value. Operator is EQUAL for a
// plain assign or MAYBE_EQUAL for "?=" (write only if the current value
// is null).
type Assign struct {
	Name     token.Token
	Operator token.Token
	Value    Expr
}

func (n *Assign) Pos() token.Token { return n.Name }
func (n *Assign) exprNode()        {}

// MultiAssign destructures Value (evaluated to a fixed-length sequence)
// across Targets, a Tuple or List of Variables of matching arity.
type MultiAssign struct {
	Targets  Expr
	Operator token.Token
	Value    Expr
}

func (n *MultiAssign) Pos() token.Token { return n.Operator }
func (n *MultiAssign) exprNode()        {}

// AssignIterator broadcasts Value across every address named by
// Iterator, binding the transient key "%" for the duration.
type AssignIterator struct {
	Iterator *VariableIterator
	Operator token.Token
	Value    Expr
}

func (n *AssignIterator) Pos() token.Token { return n.Operator }
func (n *AssignIterator) exprNode()        {}

// AugmentedAssign is sugar for "target = target op right".
type AugmentedAssign struct {
	Target   *Variable
	Operator token.Token
	Right    Expr
}

func (n *AugmentedAssign) Pos() token.Token { return n.Operator }
func (n *AugmentedAssign) exprNode()        {}

// IteratorValue reads the transient broadcast key "%".
type IteratorValue struct {
	Token token.Token
}

func (n *IteratorValue) Pos() token.Token { return n.Token }
func (n *IteratorValue) exprNode()        {}

// ExpressionStatement evaluates Expression for its value and effects.
type ExpressionStatement struct {
	Expression Expr
}

func (n *ExpressionStatement) Pos() token.Token { return n.Expression.Pos() }
func (n *ExpressionStatement) stmtNode()        {}

// If executes Then in order when Condition evaluates truthy.
type If struct {
	Token     token.Token
	Condition Expr
	Then      []Stmt
}

func (n *If) Pos() token.Token { return n.Token }
func (n *If) stmtNode()        {}

// Repeat evaluates Count once to a non-negative integer and executes
// Body that many times.
type Repeat struct {
	Token token.Token
	Count Expr
	Body  Stmt
}

func (n *Repeat) Pos() token.Token { return n.Token }
func (n *Repeat) stmtNode()        {}
