package parser

import (
	"testing"

	"github.com/saghm/pallang/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOneExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	p := NewParser("let __t = " + src + ";")
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors(), p.Errors())
	require.Len(t, stmts, 1)
	let, ok := stmts[0].(*ast.LetStmt)
	require.True(t, ok)
	return let.Exp
}

func TestParser_PrecedenceDisplayRoundTrip(t *testing.T) {
	// S1: arithmetic precedence display.
	e := parseOneExpr(t, "(100 / (-12 / 6)) == (((4 * 7) % (-6 + 3)))")
	assert.Equal(t, "100 / (-12 / 6) == 4 * 7 % (-6 + 3)", ast.DisplayExpr(e))
}

func TestParser_BooleanDisplayRoundTrip(t *testing.T) {
	// S2: boolean display.
	e := parseOneExpr(t, "(true || (every_little_thing || false)) != ((x && y) && (true || is_gonna_be_all_right))")
	assert.Equal(t, "(true || (every_little_thing || false)) != (x && y && (true || is_gonna_be_all_right))", ast.DisplayExpr(e))
}

func TestParser_LeftAssociativity(t *testing.T) {
	e := parseOneExpr(t, "1 - 2 - 3")
	assert.Equal(t, "1 - 2 - 3", ast.DisplayExpr(e))

	bin, ok := e.(*ast.BinExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Minus, bin.Op)
	_, leftIsBin := bin.Left.(*ast.BinExpr)
	assert.True(t, leftIsBin, "left-associative chain should nest on the left")
}

func TestParser_ArrayIndexingAndCalls(t *testing.T) {
	e := parseOneExpr(t, "a[0][1] + foo(1, 2, b)")
	assert.Equal(t, "a[0][1] + foo(1, 2, b)", ast.DisplayExpr(e))
}

func TestParser_Builtins(t *testing.T) {
	e := parseOneExpr(t, `length(letters("hi")) + range(1, 3)[0] + step(1, 10, 2)[0]`)
	assert.Equal(t, `length(letters("hi")) + range(1, 3)[0] + step(1, 10, 2)[0]`, ast.DisplayExpr(e))
}

func TestParser_IfElseIfChain(t *testing.T) {
	p := NewParser(`if (x && false) y = 1; else if (x || false) y = 2; else if (x) y = 3; else y = 4;`)
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors(), p.Errors())
	require.Len(t, stmts, 1)
	ifStmt, ok := stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, ifStmt.Else, 1)
	_, isElseIf := ifStmt.Else[0].(*ast.IfStmt)
	assert.True(t, isElseIf)
}

func TestParser_DefunAndArrayLiteral(t *testing.T) {
	p := NewParser(`int sum3(x, y, z) { return x + y + z; }`)
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors(), p.Errors())
	require.Len(t, stmts, 1)
	defun, ok := stmts[0].(*ast.DefunStmt)
	require.True(t, ok)
	assert.Equal(t, "sum3", defun.Name)
	assert.Equal(t, ast.IntType, defun.ReturnType)
	assert.Equal(t, []string{"x", "y", "z"}, defun.Params)
}

func TestParser_ArrayElemAssignAndDelete(t *testing.T) {
	p := NewParser(`a[0][1] = 5; delete a[0];`)
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors(), p.Errors())
	require.Len(t, stmts, 2)
	_, ok := stmts[0].(*ast.ArrayElemAssignStmt)
	assert.True(t, ok)
	_, ok = stmts[1].(*ast.DeleteStmt)
	assert.True(t, ok)
}
