package eval

import (
	"github.com/saghm/pallang/ast"
	"github.com/saghm/pallang/interrors"
)

func (e *Evaluator) evalLength(n *ast.LengthExpr) (ast.Value, error) {
	val, err := e.EvalExpr(n.Operand)
	if err != nil {
		return nil, err
	}
	switch v := val.(type) {
	case ast.Array:
		return ast.Int(len(v)), nil
	case ast.Str:
		return ast.Int(len(string(v))), nil
	default:
		return nil, interrors.TypeError("`%s` is %s, so `length(%s)` doesn't make sense", ast.DisplayExpr(n.Operand), val.Type().WithArticle(), ast.DisplayExpr(n.Operand))
	}
}

func (e *Evaluator) evalLetters(n *ast.LettersExpr) (ast.Value, error) {
	val, err := e.EvalExpr(n.Operand)
	if err != nil {
		return nil, err
	}
	s, ok := val.(ast.Str)
	if !ok {
		return nil, interrors.TypeError("`%s` is %s, so `letters(%s)` doesn't make sense", ast.DisplayExpr(n.Operand), val.Type().WithArticle(), ast.DisplayExpr(n.Operand))
	}
	str := string(s)
	out := make(ast.Array, 0, len(str))
	for _, r := range str {
		out = append(out, ast.Str(string(r)))
	}
	return out, nil
}

func (e *Evaluator) evalRange(n *ast.RangeExpr) (ast.Value, error) {
	start, err := e.evalIntOperand(n.Start, "range")
	if err != nil {
		return nil, err
	}
	end, err := e.evalIntOperand(n.End, "range")
	if err != nil {
		return nil, err
	}

	var out ast.Array
	if start <= end {
		for i := start; i <= end; i++ {
			out = append(out, ast.Int(i))
		}
	} else {
		for i := start; i >= end; i-- {
			out = append(out, ast.Int(i))
		}
	}
	return out, nil
}

func (e *Evaluator) evalStep(n *ast.StepExpr) (ast.Value, error) {
	start, err := e.evalIntOperand(n.Start, "step")
	if err != nil {
		return nil, err
	}
	end, err := e.evalIntOperand(n.End, "step")
	if err != nil {
		return nil, err
	}
	step, err := e.evalIntOperand(n.Step, "step")
	if err != nil {
		return nil, err
	}

	if step == 0 || (start <= end && step < 0) || (start > end && step > 0) {
		return nil, interrors.StepError(int64(start), int64(end), int64(step))
	}

	var out ast.Array
	if step > 0 {
		for i := start; i <= end; i += step {
			out = append(out, ast.Int(i))
		}
	} else {
		for i := start; i >= end; i += step {
			out = append(out, ast.Int(i))
		}
	}
	return out, nil
}

func (e *Evaluator) evalIntOperand(x ast.Expr, builtin string) (ast.Int, error) {
	val, err := e.EvalExpr(x)
	if err != nil {
		return 0, err
	}
	i, ok := val.(ast.Int)
	if !ok {
		return 0, interrors.TypeError("`%s` is %s, so it can't be used as an argument to `%s`", ast.DisplayExpr(x), val.Type().WithArticle(), builtin)
	}
	return i, nil
}
