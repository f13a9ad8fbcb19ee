package eval

import (
	"github.com/saghm/pallang/ast"
	"github.com/saghm/pallang/interrors"
)

// evalArrayIndexChain reads through a possibly-nested ArrayElementExpr,
// returning the element found and the repr string built up along the way
// (e.g. `a[0][1]`) for use in error messages.
func (e *Evaluator) evalArrayIndexChain(n *ast.ArrayElementExpr) (ast.Value, string, error) {
	arrVal, repr, err := e.evalIndexable(n.Array)
	if err != nil {
		return nil, "", err
	}
	arr, ok := arrVal.(ast.Array)
	if !ok {
		return nil, "", interrors.TypeError("`%s` is not an array, so it can't be indexed", repr)
	}
	idx, idxVal, err := e.evalIndex(n.Index, len(arr), repr)
	if err != nil {
		return nil, "", err
	}
	return arr[idx], repr + "[" + idxVal.Display() + "]", nil
}

// evalIndexable evaluates the expression being indexed into, recursing
// through nested ArrayElementExprs so the repr chain accumulates correctly;
// anything else (a variable, a call, an array literal) is evaluated
// directly and displayed as-is.
func (e *Evaluator) evalIndexable(x ast.Expr) (ast.Value, string, error) {
	if inner, ok := x.(*ast.ArrayElementExpr); ok {
		return e.evalArrayIndexChain(inner)
	}
	val, err := e.EvalExpr(x)
	if err != nil {
		return nil, "", err
	}
	return val, ast.DisplayExpr(x), nil
}

// evalIndex evaluates an index expression to an in-bounds int, or returns a
// Type or ArrayIndexOutOfBounds error against the repr built so far.
func (e *Evaluator) evalIndex(idxExpr ast.Expr, length int, repr string) (int, ast.Int, error) {
	idxVal, err := e.EvalExpr(idxExpr)
	if err != nil {
		return 0, 0, err
	}
	idx, ok := idxVal.(ast.Int)
	if !ok {
		return 0, 0, interrors.TypeError("`%s` is not an int, so it can't be used as an index into `%s`", ast.DisplayExpr(idxExpr), repr)
	}
	if idx < 0 || int(idx) >= length {
		return 0, 0, interrors.ArrayIndexError(repr+"["+idxVal.Display()+"]", int(idx), length)
	}
	return int(idx), idx, nil
}

// evalArrayElemAssign rebuilds the array named by n.Name with the element
// at n.Indices replaced, then writes the whole (value-semantic) array back.
func (e *Evaluator) evalArrayElemAssign(n *ast.ArrayElemAssignStmt) error {
	base, ok := e.State.Lookup(n.Name)
	if !ok {
		return interrors.UndefinedVariableError(n.Name)
	}
	arr, ok := base.(ast.Array)
	if !ok {
		return interrors.TypeError("`%s` is not an array, so it can't be indexed", n.Name)
	}
	val, err := e.EvalExpr(n.Exp)
	if err != nil {
		return err
	}
	updated, err := e.setAtPath(arr, n.Indices, val.Clone(), n.Name)
	if err != nil {
		return err
	}
	return e.State.Assign(n.Name, updated)
}

func (e *Evaluator) setAtPath(arr ast.Array, indices []ast.Expr, val ast.Value, repr string) (ast.Array, error) {
	idx, idxVal, err := e.evalIndex(indices[0], len(arr), repr)
	if err != nil {
		return nil, err
	}
	nextRepr := repr + "[" + idxVal.Display() + "]"
	out := make(ast.Array, len(arr))
	copy(out, arr)

	if len(indices) == 1 {
		out[idx] = val
		return out, nil
	}

	child, ok := out[idx].(ast.Array)
	if !ok {
		return nil, interrors.TypeError("`%s` is not an array, so it can't be indexed", nextRepr)
	}
	newChild, err := e.setAtPath(child, indices[1:], val, nextRepr)
	if err != nil {
		return nil, err
	}
	out[idx] = newChild
	return out, nil
}

// evalDelete rebuilds the array named by n.Name with the element at
// n.Indices removed, then writes the whole array back.
func (e *Evaluator) evalDelete(n *ast.DeleteStmt) error {
	base, ok := e.State.Lookup(n.Name)
	if !ok {
		return interrors.UndefinedVariableError(n.Name)
	}
	arr, ok := base.(ast.Array)
	if !ok {
		return interrors.TypeError("`%s` is not an array, so it can't be indexed", n.Name)
	}
	updated, err := e.deleteAtPath(arr, n.Indices, n.Name)
	if err != nil {
		return err
	}
	return e.State.Assign(n.Name, updated)
}

func (e *Evaluator) deleteAtPath(arr ast.Array, indices []ast.Expr, repr string) (ast.Array, error) {
	idx, idxVal, err := e.evalIndex(indices[0], len(arr), repr)
	if err != nil {
		return nil, err
	}
	nextRepr := repr + "[" + idxVal.Display() + "]"

	if len(indices) == 1 {
		out := make(ast.Array, 0, len(arr)-1)
		out = append(out, arr[:idx]...)
		out = append(out, arr[idx+1:]...)
		return out, nil
	}

	child, ok := arr[idx].(ast.Array)
	if !ok {
		return nil, interrors.TypeError("`%s` is not an array, so it can't be indexed", nextRepr)
	}
	newChild, err := e.deleteAtPath(child, indices[1:], nextRepr)
	if err != nil {
		return nil, err
	}
	out := make(ast.Array, len(arr))
	copy(out, arr)
	out[idx] = newChild
	return out, nil
}
