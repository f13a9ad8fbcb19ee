package ast

// Statement is any statement node in a program's body.
type Statement interface {
	stmtNode()
}

// LetStmt introduces a new binding in the innermost scope, shadowing any
// outer binding of the same name.
type LetStmt struct {
	Name string
	Exp  Expr
}

// VarAssignStmt rebinds an already-defined variable in place, in whichever
// scope (the current call's own scope, then global) already holds it.
type VarAssignStmt struct {
	Name string
	Exp  Expr
}

// ArrayElemAssignStmt writes a value into a (possibly nested) array
// element and rebinds the whole outer array.
type ArrayElemAssignStmt struct {
	Name    string
	Indices []Expr
	Exp     Expr
}

// DeleteStmt removes a single element from a (possibly nested) array and
// rebinds the whole outer array.
type DeleteStmt struct {
	Name    string
	Indices []Expr
}

// IfStmt runs Then when Cond is true, otherwise Else (which may be nil, or
// itself a single-statement slice representing an else-if chain).
type IfStmt struct {
	Cond Expr
	Then []Statement
	Else []Statement
}

// WhileStmt runs Body while Cond evaluates true.
type WhileStmt struct {
	Cond Expr
	Body []Statement
}

// ForStmt binds Var to each element of Iterable (which must evaluate to an
// Array) in turn and runs Body.
type ForStmt struct {
	Var      string
	Iterable Expr
	Body     []Statement
}

// DefunStmt defines a named function once; redefinition is an error.
type DefunStmt struct {
	Name       string
	ReturnType Type
	Params     []string
	Body       []Statement
}

// ReturnStmt exits the current function call with a value.
type ReturnStmt struct{ Exp Expr }

// VoidCallStmt calls a function purely for its side effects, discarding
// any return value.
type VoidCallStmt struct{ Call *CallExpr }

// PrintStmt writes a value's Display form with no trailing newline.
type PrintStmt struct{ Exp Expr }

// PrintLineStmt writes a value's Display form followed by a newline.
type PrintLineStmt struct{ Exp Expr }

func (*LetStmt) stmtNode()             {}
func (*VarAssignStmt) stmtNode()       {}
func (*ArrayElemAssignStmt) stmtNode() {}
func (*DeleteStmt) stmtNode()          {}
func (*IfStmt) stmtNode()              {}
func (*WhileStmt) stmtNode()           {}
func (*ForStmt) stmtNode()             {}
func (*DefunStmt) stmtNode()           {}
func (*ReturnStmt) stmtNode()          {}
func (*VoidCallStmt) stmtNode()        {}
func (*PrintStmt) stmtNode()           {}
func (*PrintLineStmt) stmtNode()       {}
