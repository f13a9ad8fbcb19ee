package eval

import (
	"github.com/saghm/pallang/ast"
	"github.com/saghm/pallang/interrors"
)

// evalBinExpr evaluates both operands unconditionally before dispatching
// on the operator — And/Or are intentionally not short-circuiting.
func (e *Evaluator) evalBinExpr(n *ast.BinExpr) (ast.Value, error) {
	left, err := e.EvalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.EvalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ast.And, ast.Or:
		return boolOp(n, left, right)
	case ast.Equal, ast.NotEqual:
		return eqOp(n, left, right)
	case ast.Ge, ast.Gt, ast.Le, ast.Lt:
		return ineqOp(n, left, right)
	case ast.Plus, ast.Minus, ast.Times, ast.Divide, ast.Modulus:
		return arithOp(n, left, right)
	case ast.Concat:
		return concatOp(n, left, right)
	default:
		return nil, interrors.TypeError("unknown operator `%s`", n.Op.String())
	}
}

func boolOp(n *ast.BinExpr, left, right ast.Value) (ast.Value, error) {
	lb, ok := left.(ast.Bool)
	if !ok {
		return nil, notABoolean(n.Left, left)
	}
	rb, ok := right.(ast.Bool)
	if !ok {
		return nil, notABoolean(n.Right, right)
	}
	if n.Op == ast.And {
		return lb && rb, nil
	}
	return lb || rb, nil
}

func eqOp(n *ast.BinExpr, left, right ast.Value) (ast.Value, error) {
	if left.Type() != right.Type() {
		return nil, interrors.TypeError("`%s` is %s and `%s` is %s, so they can't be compared", ast.DisplayExpr(n.Left), left.Type().WithArticle(), ast.DisplayExpr(n.Right), right.Type().WithArticle())
	}
	eq := valuesEqual(left, right)
	if n.Op == ast.Equal {
		return ast.Bool(eq), nil
	}
	return ast.Bool(!eq), nil
}

func valuesEqual(a, b ast.Value) bool {
	switch av := a.(type) {
	case ast.Int:
		return av == b.(ast.Int)
	case ast.Bool:
		return av == b.(ast.Bool)
	case ast.Str:
		return av == b.(ast.Str)
	default:
		return false
	}
}

func ineqOp(n *ast.BinExpr, left, right ast.Value) (ast.Value, error) {
	li, ok := left.(ast.Int)
	if !ok {
		return nil, notAnInt(n.Left, left)
	}
	ri, ok := right.(ast.Int)
	if !ok {
		return nil, notAnInt(n.Right, right)
	}
	switch n.Op {
	case ast.Ge:
		return ast.Bool(li >= ri), nil
	case ast.Gt:
		return ast.Bool(li > ri), nil
	case ast.Le:
		return ast.Bool(li <= ri), nil
	default:
		return ast.Bool(li < ri), nil
	}
}

func arithOp(n *ast.BinExpr, left, right ast.Value) (ast.Value, error) {
	li, ok := left.(ast.Int)
	if !ok {
		return nil, notAnInt(n.Left, left)
	}
	ri, ok := right.(ast.Int)
	if !ok {
		return nil, notAnInt(n.Right, right)
	}
	switch n.Op {
	case ast.Plus:
		return li + ri, nil
	case ast.Minus:
		return li - ri, nil
	case ast.Times:
		return li * ri, nil
	case ast.Divide:
		// Division by zero is left to panic, a fatal runtime error rather
		// than one of the structured error kinds; the front ends recover
		// from it the same way they recover from any other panic.
		return li / ri, nil
	default:
		return li % ri, nil
	}
}

func concatOp(n *ast.BinExpr, left, right ast.Value) (ast.Value, error) {
	la, ok := left.(ast.Array)
	if !ok {
		return nil, interrors.TypeError("`%s` is not an array, so `%s` is invalid", ast.DisplayExpr(n.Left), ast.DisplayExpr(n))
	}
	ra, ok := right.(ast.Array)
	if !ok {
		return nil, interrors.TypeError("`%s` is not an array, so `%s` is invalid", ast.DisplayExpr(n.Right), ast.DisplayExpr(n))
	}
	out := make(ast.Array, 0, len(la)+len(ra))
	for _, v := range la {
		out = append(out, v.Clone())
	}
	for _, v := range ra {
		out = append(out, v.Clone())
	}
	return out, nil
}

func notABoolean(operandExpr ast.Expr, v ast.Value) error {
	return interrors.TypeError("`%s` is not a boolean, so this expression doesn't make sense", ast.DisplayExpr(operandExpr))
}

func notAnInt(operandExpr ast.Expr, v ast.Value) error {
	return interrors.TypeError("`%s` is not an int, so this expression doesn't make sense", ast.DisplayExpr(operandExpr))
}
