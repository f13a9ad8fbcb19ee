package eval

import (
	"fmt"

	"github.com/saghm/pallang/ast"
	"github.com/saghm/pallang/interrors"
)

// EvalExpr evaluates one expression to a Value.
func (e *Evaluator) EvalExpr(x ast.Expr) (ast.Value, error) {
	switch n := x.(type) {
	case *ast.ValueExpr:
		return n.Value, nil

	case *ast.VarExpr:
		val, ok := e.State.Lookup(n.Name)
		if !ok {
			return nil, interrors.UndefinedVariableError(n.Name)
		}
		return val, nil

	case *ast.NotExpr:
		val, err := e.EvalExpr(n.Operand)
		if err != nil {
			return nil, err
		}
		b, ok := val.(ast.Bool)
		if !ok {
			return nil, interrors.TypeError("`%s` is not a boolean, so `!%s` doesn't make sense", ast.DisplayExpr(n.Operand), ast.DisplayExpr(n.Operand))
		}
		return !b, nil

	case *ast.BinExpr:
		return e.evalBinExpr(n)

	case *ast.ArrayExpr:
		elems := make(ast.Array, len(n.Elements))
		for i, elExpr := range n.Elements {
			val, err := e.EvalExpr(elExpr)
			if err != nil {
				return nil, err
			}
			elems[i] = val
		}
		return elems, nil

	case *ast.ArrayElementExpr:
		val, _, err := e.evalArrayIndexChain(n)
		return val, err

	case *ast.LengthExpr:
		return e.evalLength(n)

	case *ast.LettersExpr:
		return e.evalLetters(n)

	case *ast.RangeExpr:
		return e.evalRange(n)

	case *ast.StepExpr:
		return e.evalStep(n)

	case *ast.ReadLineExpr:
		return ast.Str(e.readLine()), nil

	case *ast.CallExpr:
		val, err := e.callFunction(n.Name, n.Args)
		if err != nil {
			return nil, err
		}
		if val == nil {
			return nil, interrors.TypeError("The function `%s` doesn't return anything, so `%s` doesn't make sense", n.Name, ast.DisplayExpr(n))
		}
		return val, nil

	default:
		return nil, fmt.Errorf("eval: unhandled expression type %T", x)
	}
}

func (e *Evaluator) readLine() string {
	if e.Stream != nil {
		return e.Stream.ReadInput()
	}
	line, _ := e.Reader.ReadString('\n')
	return trimTrailingNewline(line)
}

func trimTrailingNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '\r' {
		s = s[:len(s)-1]
	}
	return s
}
