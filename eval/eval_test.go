package eval

import (
	"testing"

	"github.com/saghm/pallang/ast"
	"github.com/saghm/pallang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) []ast.Statement {
	t.Helper()
	p := parser.NewParser(src)
	stmts := p.ParseProgram()
	require.False(t, p.HasErrors(), p.Errors())
	return stmts
}

func TestEval_ArithmeticEvaluation(t *testing.T) {
	// S3: negative literal lexing plus truncating division/multiplication.
	ev := New()
	stmts := mustParse(t, "let x = -12; let y = x / -4; x = x * y;")
	_, err := ev.Run(stmts)
	require.NoError(t, err)

	x, ok := ev.State.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, ast.Int(-36), x)

	y, ok := ev.State.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, ast.Int(3), y)

	assert.Equal(t, 2, ev.State.Len())
}

func TestEval_IfElseIfChain(t *testing.T) {
	// S4: with x = false, the chain falls all the way to the final else.
	ev := New()
	stmts := mustParse(t, `let x = false; let y = 0; if (x && false) y = 1; else if (x || false) y = 2; else if (x) y = 3; else y = 4;`)
	_, err := ev.Run(stmts)
	require.NoError(t, err)

	y, ok := ev.State.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, ast.Int(4), y)
}

func TestEval_FunctionAndWhile(t *testing.T) {
	// S5: recursion-safe scope isolation across a function called from a
	// while loop that also mutates a global.
	ev := New()
	stmts := mustParse(t, `
		let total = 0;
		int sum3(x, y, z) { return x + y + z; }
		void stepDown(i) {
			while (i >= 0) {
				total = total + sum3(i, i + 1, i + 2);
				i = i - 1;
			}
		}
		stepDown(10);
	`)
	_, err := ev.Run(stmts)
	require.NoError(t, err)

	total, ok := ev.State.Lookup("total")
	require.True(t, ok)
	assert.Equal(t, ast.Int(198), total)
}

func TestEval_ArrayIndexing(t *testing.T) {
	// S6: mixed-type array, nested indexing, and every edge case named.
	ev := New()
	stmts := mustParse(t, `let a = [1, false, ["hello!"]];`)
	_, err := ev.Run(stmts)
	require.NoError(t, err)

	eval := func(src string) (ast.Value, error) {
		exprStmts := mustParse(t, "let __t = "+src+";")
		if _, err := ev.Run(exprStmts); err != nil {
			return nil, err
		}
		v, _ := ev.State.Lookup("__t")
		return v, nil
	}

	_, err = eval("a[-1]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of bounds")

	v, err := eval("a[0]")
	require.NoError(t, err)
	assert.Equal(t, ast.Int(1), v)

	v, err = eval("a[1]")
	require.NoError(t, err)
	assert.Equal(t, ast.Bool(false), v)

	_, err = eval("a[1][0]")
	require.Error(t, err)

	v, err = eval("a[2][0]")
	require.NoError(t, err)
	assert.Equal(t, ast.Str("hello!"), v)

	_, err = eval("a[2][1]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of bounds")

	_, err = eval("a[3]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of bounds")
}

func TestEval_LettersAndLength(t *testing.T) {
	ev := New()

	letters := mustParse(t, `let l = letters("hello!");`)
	_, err := ev.Run(letters)
	require.NoError(t, err)
	l, _ := ev.State.Lookup("l")
	assert.Equal(t, ast.Array{ast.Str("h"), ast.Str("e"), ast.Str("l"), ast.Str("l"), ast.Str("o"), ast.Str("!")}, l)

	length := mustParse(t, `let n = length([1, false, ["hello!", 0]]);`)
	_, err = ev.Run(length)
	require.NoError(t, err)
	n, _ := ev.State.Lookup("n")
	assert.Equal(t, ast.Int(3), n)

	_, err = ev.Run(mustParse(t, `let bad = length(false);`))
	require.Error(t, err)
}

func TestEval_ArrayElemAssignAndDelete(t *testing.T) {
	ev := New()
	stmts := mustParse(t, `
		let a = [1, 2, [3, 4]];
		a[0] = 10;
		a[2][1] = 40;
		delete a[1];
	`)
	_, err := ev.Run(stmts)
	require.NoError(t, err)

	a, ok := ev.State.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, ast.Array{ast.Int(10), ast.Array{ast.Int(3), ast.Int(40)}}, a)
}

func TestEval_RangeAndStep(t *testing.T) {
	ev := New()

	_, err := ev.Run(mustParse(t, `let r = range(1, 3);`))
	require.NoError(t, err)
	r, _ := ev.State.Lookup("r")
	assert.Equal(t, ast.Array{ast.Int(1), ast.Int(2), ast.Int(3)}, r)

	_, err = ev.Run(mustParse(t, `let s = step(10, 0, -5);`))
	require.NoError(t, err)
	s, _ := ev.State.Lookup("s")
	assert.Equal(t, ast.Array{ast.Int(10), ast.Int(5), ast.Int(0)}, s)

	_, err = ev.Run(mustParse(t, `let bad = step(0, 10, 0);`))
	require.Error(t, err)
}

func TestEval_RecursionIsolatesLocals(t *testing.T) {
	ev := New()
	stmts := mustParse(t, `
		int fact(n) {
			if (n <= 1) return 1;
			let rest = fact(n - 1);
			return n * rest;
		}
		let result = fact(5);
	`)
	_, err := ev.Run(stmts)
	require.NoError(t, err)
	result, _ := ev.State.Lookup("result")
	assert.Equal(t, ast.Int(120), result)
}
