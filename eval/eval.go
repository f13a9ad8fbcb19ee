// Package eval walks an AST against a state.State, the way
// original_source's `impl Statement { fn eval }` / `impl Expr { fn eval }`
// do it, expressed in Go as a type switch (Eloquence's Eval(node, env)
// idiom) rather than the teacher's NodeVisitor: this grammar's twelve
// expression and twelve statement variants don't earn visitor dispatch
// across a parser/eval package split the way go-mix's much larger grammar
// does.
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/saghm/pallang/ast"
	"github.com/saghm/pallang/function"
	"github.com/saghm/pallang/interrors"
	"github.com/saghm/pallang/state"
	"github.com/saghm/pallang/stream"
)

// Evaluator walks statements and expressions against a shared State. A
// nil Stream means synchronous mode: Print/PrintLine write straight to
// Writer and readline() reads straight from Reader.
type Evaluator struct {
	State  *state.State
	Stream *stream.Stream
	Writer io.Writer
	Reader *bufio.Reader
}

// New builds an Evaluator over a fresh State, writing to stdout and
// reading from stdin by default.
func New() *Evaluator {
	return &Evaluator{
		State:  state.New(),
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
	}
}

// Run evaluates a whole program statement by statement, stopping at the
// first error or top-level return.
func (e *Evaluator) Run(stmts []ast.Statement) (ast.Value, error) {
	return e.evalBlock(stmts)
}

// evalBlock runs a statement list, returning the first bubbled-up return
// value (or nil, nil if none) or the first error.
func (e *Evaluator) evalBlock(stmts []ast.Statement) (ast.Value, error) {
	for _, stmt := range stmts {
		val, err := e.Eval(stmt)
		if err != nil {
			return nil, err
		}
		if val != nil {
			return val, nil
		}
	}
	return nil, nil
}

// Eval evaluates one statement. A non-nil Value return means a Return
// statement's value is bubbling up through the caller's block.
func (e *Evaluator) Eval(s ast.Statement) (ast.Value, error) {
	switch n := s.(type) {
	case *ast.LetStmt:
		val, err := e.EvalExpr(n.Exp)
		if err != nil {
			return nil, err
		}
		e.State.DefineVar(n.Name, val.Clone())
		return nil, nil

	case *ast.VarAssignStmt:
		val, err := e.EvalExpr(n.Exp)
		if err != nil {
			return nil, err
		}
		if err := e.State.Assign(n.Name, val.Clone()); err != nil {
			return nil, err
		}
		return nil, nil

	case *ast.ArrayElemAssignStmt:
		return nil, e.evalArrayElemAssign(n)

	case *ast.DeleteStmt:
		return nil, e.evalDelete(n)

	case *ast.IfStmt:
		cond, err := e.EvalExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(ast.Bool)
		if !ok {
			return nil, interrors.TypeError("`if (%s) ...` doesn't make sense: the condition is %s, not a boolean", ast.DisplayExpr(n.Cond), cond.Type().WithArticle())
		}
		if bool(b) {
			return e.evalBlock(n.Then)
		}
		return e.evalBlock(n.Else)

	case *ast.WhileStmt:
		for {
			cond, err := e.EvalExpr(n.Cond)
			if err != nil {
				return nil, err
			}
			b, ok := cond.(ast.Bool)
			if !ok {
				return nil, interrors.TypeError("`while (%s) ...` doesn't make sense: the condition is %s, not a boolean", ast.DisplayExpr(n.Cond), cond.Type().WithArticle())
			}
			if !bool(b) {
				return nil, nil
			}
			val, err := e.evalBlock(n.Body)
			if err != nil || val != nil {
				return val, err
			}
		}

	case *ast.ForStmt:
		iter, err := e.EvalExpr(n.Iterable)
		if err != nil {
			return nil, err
		}
		arr, ok := iter.(ast.Array)
		if !ok {
			return nil, interrors.TypeError("`for %s in %s ...` doesn't make sense: %s is %s, not an array", n.Var, ast.DisplayExpr(n.Iterable), ast.DisplayExpr(n.Iterable), iter.Type().WithArticle())
		}
		for _, elem := range arr {
			e.State.DefineVar(n.Var, elem.Clone())
			val, err := e.evalBlock(n.Body)
			if err != nil || val != nil {
				return val, err
			}
		}
		return nil, nil

	case *ast.DefunStmt:
		fn := function.New(n.ReturnType, n.Params, n.Body)
		if err := e.State.DefineFunc(n.Name, fn); err != nil {
			return nil, err
		}
		return nil, nil

	case *ast.ReturnStmt:
		val, err := e.EvalExpr(n.Exp)
		if err != nil {
			return nil, err
		}
		return val, nil

	case *ast.VoidCallStmt:
		_, err := e.callFunction(n.Call.Name, n.Call.Args)
		return nil, err

	case *ast.PrintStmt:
		val, err := e.EvalExpr(n.Exp)
		if err != nil {
			return nil, err
		}
		e.output(val.Display())
		return nil, nil

	case *ast.PrintLineStmt:
		val, err := e.EvalExpr(n.Exp)
		if err != nil {
			return nil, err
		}
		e.output(val.Display() + "\n")
		return nil, nil

	default:
		return nil, fmt.Errorf("eval: unhandled statement type %T", s)
	}
}

func (e *Evaluator) output(s string) {
	if e.Stream != nil {
		e.Stream.WriteOutput(s)
		return
	}
	fmt.Fprint(e.Writer, s)
}
