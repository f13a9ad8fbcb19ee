package ast

import "strings"

// DisplayExpr renders an expression as source text. Binary expressions
// parenthesize their left child when its precedence is strictly lower than
// the parent's, and their right child when its precedence is lower than or
// equal to the parent's; that asymmetry is what makes a left-associative
// chain like `1 - 2 - 3` round-trip instead of collapsing to `1 - (2 - 3)`.
func DisplayExpr(e Expr) string {
	switch n := e.(type) {
	case *ValueExpr:
		return n.Value.Display()
	case *VarExpr:
		return n.Name
	case *NotExpr:
		return "!" + parenIf(n.Operand, n.Operand.Precedence() < PrecUnary)
	case *BinExpr:
		left := parenIf(n.Left, n.Left.Precedence() < n.Op.Precedence())
		right := parenIf(n.Right, n.Right.Precedence() <= n.Op.Precedence())
		return left + " " + n.Op.String() + " " + right
	case *ArrayExpr:
		parts := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = DisplayExpr(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ArrayElementExpr:
		return DisplayExpr(n.Array) + "[" + DisplayExpr(n.Index) + "]"
	case *LengthExpr:
		return "length(" + DisplayExpr(n.Operand) + ")"
	case *LettersExpr:
		return "letters(" + DisplayExpr(n.Operand) + ")"
	case *RangeExpr:
		return "range(" + DisplayExpr(n.Start) + ", " + DisplayExpr(n.End) + ")"
	case *StepExpr:
		return "step(" + DisplayExpr(n.Start) + ", " + DisplayExpr(n.End) + ", " + DisplayExpr(n.Step) + ")"
	case *ReadLineExpr:
		return "readline()"
	case *CallExpr:
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			parts[i] = DisplayExpr(a)
		}
		return n.Name + "(" + strings.Join(parts, ", ") + ")"
	default:
		return "<unknown expr>"
	}
}

func parenIf(e Expr, paren bool) string {
	if paren {
		return "(" + DisplayExpr(e) + ")"
	}
	return DisplayExpr(e)
}

// DisplayBlock renders a statement list with 4-space indentation, the
// block indentation contract used by If/While/For/Defun bodies.
func DisplayBlock(stmts []Statement, indent int) string {
	pad := strings.Repeat("    ", indent)
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(pad)
		b.WriteString(DisplayStatement(s, indent))
		b.WriteByte('\n')
	}
	return b.String()
}

// DisplayStatement renders a single statement as source text. indent is
// the nesting depth of the statement itself, used to indent any nested
// block bodies one level deeper.
func DisplayStatement(s Statement, indent int) string {
	switch n := s.(type) {
	case *LetStmt:
		return "let " + n.Name + " = " + DisplayExpr(n.Exp) + ";"
	case *VarAssignStmt:
		return n.Name + " = " + DisplayExpr(n.Exp) + ";"
	case *ArrayElemAssignStmt:
		return n.Name + indexSuffix(n.Indices) + " = " + DisplayExpr(n.Exp) + ";"
	case *DeleteStmt:
		return "delete " + n.Name + indexSuffix(n.Indices) + ";"
	case *IfStmt:
		pad := strings.Repeat("    ", indent)
		out := "if (" + DisplayExpr(n.Cond) + ") {\n" + DisplayBlock(n.Then, indent+1) + pad + "}"
		if len(n.Else) == 1 {
			if elseIf, ok := n.Else[0].(*IfStmt); ok {
				out += " else " + DisplayStatement(elseIf, indent)
				return out
			}
		}
		if n.Else != nil {
			out += " else {\n" + DisplayBlock(n.Else, indent+1) + pad + "}"
		}
		return out
	case *WhileStmt:
		pad := strings.Repeat("    ", indent)
		return "while (" + DisplayExpr(n.Cond) + ") {\n" + DisplayBlock(n.Body, indent+1) + pad + "}"
	case *ForStmt:
		pad := strings.Repeat("    ", indent)
		return "for " + n.Var + " in " + DisplayExpr(n.Iterable) + " {\n" + DisplayBlock(n.Body, indent+1) + pad + "}"
	case *DefunStmt:
		pad := strings.Repeat("    ", indent)
		return n.ReturnType.String() + " " + n.Name + "(" + strings.Join(n.Params, ", ") + ") {\n" + DisplayBlock(n.Body, indent+1) + pad + "}"
	case *ReturnStmt:
		return "return " + DisplayExpr(n.Exp) + ";"
	case *VoidCallStmt:
		return DisplayExpr(n.Call) + ";"
	case *PrintStmt:
		return "print " + DisplayExpr(n.Exp) + ";"
	case *PrintLineStmt:
		return "print_line " + DisplayExpr(n.Exp) + ";"
	default:
		return "<unknown statement>"
	}
}

func indexSuffix(indices []Expr) string {
	var b strings.Builder
	for _, idx := range indices {
		b.WriteByte('[')
		b.WriteString(DisplayExpr(idx))
		b.WriteByte(']')
	}
	return b.String()
}
