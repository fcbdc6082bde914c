package parser

import (
	"testing"

	"github.com/ringneck-lang/ringneck/internal/ast"
	"github.com/ringneck-lang/ringneck/internal/errsink"
	"github.com/ringneck-lang/ringneck/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, source string) ([]ast.Stmt, *errsink.Sink) {
	t.Helper()
	sink := errsink.New()
	toks := scanner.New(source, sink).ScanTokens()
	stmts := New(toks, sink).Parse()
	return stmts, sink
}

func TestParseGroupingVsTupleDisambiguation(t *testing.T) {
	stmts, sink := parse(t, "(1)\n(1, 2)")
	require.False(t, sink.HadError())
	require.Len(t, stmts, 2)
	_, isGrouping := stmts[0].(*ast.ExpressionStatement).Expression.(*ast.Grouping)
	assert.True(t, isGrouping, "a single parenthesized expression is a Grouping, not a Tuple")
	_, isTuple := stmts[1].(*ast.ExpressionStatement).Expression.(*ast.Tuple)
	assert.True(t, isTuple)
}

func TestParseBareCommaListIsATuple(t *testing.T) {
	stmts, sink := parse(t, "1, 2, 3")
	require.False(t, sink.HadError())
	_, ok := stmts[0].(*ast.ExpressionStatement).Expression.(*ast.Tuple)
	assert.True(t, ok)
}

func TestParseListLiteralKeepsEachElementSeparate(t *testing.T) {
	stmts, sink := parse(t, `["x", "y"]`)
	require.False(t, sink.HadError())
	list := stmts[0].(*ast.ExpressionStatement).Expression.(*ast.List)
	el, ok := list.Values.(*ast.ExpressionList)
	require.True(t, ok, "a multi-element list body must stay a flat ExpressionList")
	assert.Len(t, el.Expressions, 2)
}

func TestParseEmptyListHasNilValues(t *testing.T) {
	stmts, sink := parse(t, "[]")
	require.False(t, sink.HadError())
	list := stmts[0].(*ast.ExpressionStatement).Expression.(*ast.List)
	assert.Nil(t, list.Values)
}

func TestParseInvalidAssignmentTargetReportsError(t *testing.T) {
	_, sink := parse(t, "1 = 2")
	assert.True(t, sink.HadError())
}

func TestParseMultiAssignTargets(t *testing.T) {
	stmts, sink := parse(t, "a, b = 1, 2")
	require.False(t, sink.HadError())
	ma, ok := stmts[0].(*ast.ExpressionStatement).Expression.(*ast.MultiAssign)
	require.True(t, ok)
	targets, ok := ma.Targets.(*ast.Tuple)
	require.True(t, ok)
	assert.Len(t, targets.Values, 2)
}

func TestParseBroadcastAssignIterator(t *testing.T) {
	stmts, sink := parse(t, `a.["x", "y"] = 3`)
	require.False(t, sink.HadError())
	ai, ok := stmts[0].(*ast.ExpressionStatement).Expression.(*ast.AssignIterator)
	require.True(t, ok)
	assert.Equal(t, "a.", ai.Iterator.Prefix.Lexeme)
}

func TestParseAugmentedAssignLookahead(t *testing.T) {
	stmts, sink := parse(t, "a += 1\na -= 2")
	require.False(t, sink.HadError())
	require.Len(t, stmts, 2)
	plus, ok := stmts[0].(*ast.ExpressionStatement).Expression.(*ast.AugmentedAssign)
	require.True(t, ok)
	assert.Equal(t, "+", plus.Operator.Lexeme)
	minus, ok := stmts[1].(*ast.ExpressionStatement).Expression.(*ast.AugmentedAssign)
	require.True(t, ok)
	assert.Equal(t, "-", minus.Operator.Lexeme)
}

func TestParseAugmentedAssignDoesNotMisfireOnPlainAddition(t *testing.T) {
	stmts, sink := parse(t, "a + 1")
	require.False(t, sink.HadError())
	_, ok := stmts[0].(*ast.ExpressionStatement).Expression.(*ast.Binary)
	assert.True(t, ok)
}

func TestParseIfStatementSurfaceSyntax(t *testing.T) {
	stmts, sink := parse(t, "if 1 < 2:\na = 1\nendif")
	require.False(t, sink.HadError())
	ifStmt, ok := stmts[0].(*ast.If)
	require.True(t, ok)
	assert.Len(t, ifStmt.Then, 1)
}

func TestParseRepeatStatementSurfaceSyntax(t *testing.T) {
	stmts, sink := parse(t, "repeat a += 1 times 5")
	require.False(t, sink.HadError())
	repeatStmt, ok := stmts[0].(*ast.Repeat)
	require.True(t, ok)
	_, isAugAssign := repeatStmt.Body.(*ast.ExpressionStatement).Expression.(*ast.AugmentedAssign)
	assert.True(t, isAugAssign)
}

func TestParseConditionalExpression(t *testing.T) {
	stmts, sink := parse(t, "7 if 1 < 2 else 9")
	require.False(t, sink.HadError())
	cond, ok := stmts[0].(*ast.ExpressionStatement).Expression.(*ast.Conditional)
	require.True(t, ok)
	assert.NotNil(t, cond.Else)
}

func TestParseStarredCallArgument(t *testing.T) {
	stmts, sink := parse(t, "sum(*(1, 2, 3))")
	require.False(t, sink.HadError())
	call, ok := stmts[0].(*ast.ExpressionStatement).Expression.(*ast.Call)
	require.True(t, ok)
	_, isStarred := call.Arguments.(*ast.Starred)
	assert.True(t, isStarred)
}

func TestParseMultiAssignArityMismatchIsAStaticError(t *testing.T) {
	stmts, sink := parse(t, "a, b = 1, 2, 3")
	assert.True(t, sink.HadError(), "a literal arity mismatch must be caught by the parser, not left to runtime")
	assert.Len(t, stmts, 0, "the mismatched statement is dropped like any other parse error")
}

func TestParseMultiAssignMatchingArityHasNoError(t *testing.T) {
	stmts, sink := parse(t, "a, b = 1, 2")
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)
}

func TestParseRecoversFromSyntaxErrorAtNextStatement(t *testing.T) {
	stmts, sink := parse(t, "1 = 2\na = 3")
	assert.True(t, sink.HadError())
	require.Len(t, stmts, 1, "the malformed statement is dropped, parsing resumes at the next line")
	assign, ok := stmts[0].(*ast.ExpressionStatement).Expression.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
}
