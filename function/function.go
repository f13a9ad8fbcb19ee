// Package function holds the Function record, the stored shape of a
// Defun'd function. Unlike the teacher's Function, there is no captured
// defining scope: this language has no closures, so a call sees only its
// own freshly bound parameters plus the global scope.
package function

import "github.com/saghm/pallang/ast"

// Function is a user-defined function's signature and body.
type Function struct {
	ReturnType ast.Type
	Params     []string
	Body       []ast.Statement
}

// New builds a Function record.
func New(returnType ast.Type, params []string, body []ast.Statement) *Function {
	return &Function{ReturnType: returnType, Params: params, Body: body}
}
