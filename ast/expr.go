package ast

// Expr is any expression node. Precedence drives the pretty-printer's
// parenthesization: a child whose precedence is lower than (for the left
// child) or lower-than-or-equal-to (for the right child) the parent's
// precedence is wrapped in parens, which is exactly what's needed to make
// left-associative operators round-trip through Display.
type Expr interface {
	exprNode()
	// Precedence is PrecAtom for anything that never needs parenthesizing
	// standing alone (literals, variables, calls, indexing, builtins) and
	// the operator's own precedence for BinExp/Not.
	Precedence() int
}

// ValueExpr wraps a literal Value.
type ValueExpr struct{ Value Value }

// VarExpr references a bound variable by name.
type VarExpr struct{ Name string }

// NotExpr negates a boolean expression.
type NotExpr struct{ Operand Expr }

// BinExpr applies a binary operator to two operands, evaluated left then
// right, both unconditionally (no short-circuiting for And/Or).
type BinExpr struct {
	Op          BinOp
	Left, Right Expr
}

// ArrayExpr is an array literal; each element is evaluated in order.
type ArrayExpr struct{ Elements []Expr }

// ArrayElementExpr indexes into a (possibly nested) array.
type ArrayElementExpr struct {
	Array Expr
	Index Expr
}

// LengthExpr is the builtin length(expr): element count for arrays, byte
// count for strings.
type LengthExpr struct{ Operand Expr }

// LettersExpr is the builtin letters(expr): splits a string into an array
// of one-character strings.
type LettersExpr struct{ Operand Expr }

// RangeExpr is the builtin range(start, end): an inclusive array of
// integers walking from start to end in whichever direction fits.
type RangeExpr struct{ Start, End Expr }

// StepExpr is the builtin step(start, end, step): like RangeExpr but with
// an explicit, possibly larger, stride.
type StepExpr struct{ Start, End, Step Expr }

// ReadLineExpr is the builtin readline(): one line of input, stream-backed
// or stdin-backed depending on how the program is being run.
type ReadLineExpr struct{}

// CallExpr invokes a user-defined function by name, evaluating each
// argument in the caller's scope before the call.
type CallExpr struct {
	Name string
	Args []Expr
}

func (*ValueExpr) exprNode()        {}
func (*VarExpr) exprNode()          {}
func (*NotExpr) exprNode()          {}
func (*BinExpr) exprNode()          {}
func (*ArrayExpr) exprNode()        {}
func (*ArrayElementExpr) exprNode() {}
func (*LengthExpr) exprNode()       {}
func (*LettersExpr) exprNode()      {}
func (*RangeExpr) exprNode()        {}
func (*StepExpr) exprNode()         {}
func (*ReadLineExpr) exprNode()     {}
func (*CallExpr) exprNode()         {}

func (*ValueExpr) Precedence() int  { return PrecAtom }
func (*VarExpr) Precedence() int    { return PrecAtom }
func (*NotExpr) Precedence() int    { return PrecUnary }
func (e *BinExpr) Precedence() int  { return e.Op.Precedence() }
func (*ArrayExpr) Precedence() int  { return PrecAtom }
func (*ArrayElementExpr) Precedence() int { return PrecAtom }
func (*LengthExpr) Precedence() int { return PrecAtom }
func (*LettersExpr) Precedence() int { return PrecAtom }
func (*RangeExpr) Precedence() int  { return PrecAtom }
func (*StepExpr) Precedence() int   { return PrecAtom }
func (*ReadLineExpr) Precedence() int { return PrecAtom }
func (*CallExpr) Precedence() int   { return PrecAtom }
