package eval

import (
	"github.com/saghm/pallang/ast"
	"github.com/saghm/pallang/interrors"
)

// callFunction evaluates args in the caller's scope before pushing a new
// one, binds them positionally, runs the body, and enforces the declared
// return type: a nil Value return means a void function completed without
// a Return statement, and CallExpr (unlike VoidCallStmt) treats that as a
// usage error rather than a no-op.
func (e *Evaluator) callFunction(name string, argExprs []ast.Expr) (ast.Value, error) {
	fn, ok := e.State.LookupFunc(name)
	if !ok {
		return nil, interrors.UndefinedFunctionError(name)
	}
	if len(argExprs) != len(fn.Params) {
		return nil, interrors.ArgumentError(name, len(fn.Params), len(argExprs))
	}

	args := make([]ast.Value, len(argExprs))
	for i, argExpr := range argExprs {
		val, err := e.EvalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = val.Clone()
	}

	e.State.EnterScope()
	defer e.State.ExitScope()

	for i, param := range fn.Params {
		e.State.DefineVar(param, args[i])
	}

	val, err := e.evalBlock(fn.Body)
	if err != nil {
		return nil, err
	}

	if val == nil {
		if fn.ReturnType != ast.VoidType {
			return nil, interrors.TypeError("The function `%s` is declared to return %s, but it finished without a return statement", name, fn.ReturnType.WithArticle())
		}
		return nil, nil
	}

	if fn.ReturnType == ast.VoidType {
		return nil, interrors.TypeError("The function `%s` is declared void, but it returned %s", name, val.Type().WithArticle())
	}
	if val.Type() != fn.ReturnType {
		return nil, interrors.TypeError("The function `%s` is declared to return %s, but it returned %s", name, fn.ReturnType.WithArticle(), val.Type().WithArticle())
	}

	return val, nil
}
