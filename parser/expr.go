package parser

import (
	"strconv"

	"github.com/saghm/pallang/ast"
	"github.com/saghm/pallang/lexer"
)

var binOps = map[lexer.TokenType]ast.BinOp{
	lexer.AND_OP:    ast.And,
	lexer.OR_OP:     ast.Or,
	lexer.EQ_OP:     ast.Equal,
	lexer.NE_OP:     ast.NotEqual,
	lexer.GE_OP:     ast.Ge,
	lexer.GT_OP:     ast.Gt,
	lexer.LE_OP:     ast.Le,
	lexer.LT_OP:     ast.Lt,
	lexer.PLUS_OP:   ast.Plus,
	lexer.MINUS_OP:  ast.Minus,
	lexer.MUL_OP:    ast.Times,
	lexer.DIV_OP:    ast.Divide,
	lexer.MOD_OP:    ast.Modulus,
	lexer.CONCAT_OP: ast.Concat,
}

// parseExpr climbs precedence the standard way: parse one atom/prefix,
// then keep swallowing infix operators whose precedence exceeds minPrec.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parsePrefix()

	for {
		op, ok := binOps[p.curToken.Type]
		if !ok {
			break
		}
		prec := op.Precedence()
		if prec <= minPrec {
			break
		}
		p.nextToken()
		right := p.parseExpr(prec)
		left = &ast.BinExpr{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expr {
	switch p.curToken.Type {
	case lexer.NOT_OP:
		p.nextToken()
		operand := p.parseExpr(ast.PrecUnary)
		return &ast.NotExpr{Operand: operand}
	case lexer.LEFT_PAREN:
		p.nextToken()
		exp := p.parseExpr(ast.PrecLowest)
		p.expect(lexer.RIGHT_PAREN)
		return exp
	case lexer.INT_LIT:
		n, _ := strconv.ParseInt(p.curToken.Literal, 10, 64)
		p.nextToken()
		return p.parsePostfix(&ast.ValueExpr{Value: ast.Int(n)})
	case lexer.STRING_LIT:
		s := unescapeString(p.curToken.Literal)
		p.nextToken()
		return p.parsePostfix(&ast.ValueExpr{Value: ast.Str(s)})
	case lexer.TRUE_KEY:
		p.nextToken()
		return &ast.ValueExpr{Value: ast.Bool(true)}
	case lexer.FALSE_KEY:
		p.nextToken()
		return &ast.ValueExpr{Value: ast.Bool(false)}
	case lexer.LEFT_BRACKET:
		return p.parseArrayLiteral()
	case lexer.LENGTH_KEY:
		p.nextToken()
		p.expect(lexer.LEFT_PAREN)
		operand := p.parseExpr(ast.PrecLowest)
		p.expect(lexer.RIGHT_PAREN)
		return p.parsePostfix(&ast.LengthExpr{Operand: operand})
	case lexer.LETTERS_KEY:
		p.nextToken()
		p.expect(lexer.LEFT_PAREN)
		operand := p.parseExpr(ast.PrecLowest)
		p.expect(lexer.RIGHT_PAREN)
		return p.parsePostfix(&ast.LettersExpr{Operand: operand})
	case lexer.RANGE_KEY:
		p.nextToken()
		p.expect(lexer.LEFT_PAREN)
		start := p.parseExpr(ast.PrecLowest)
		p.expect(lexer.COMMA_DELIM)
		end := p.parseExpr(ast.PrecLowest)
		p.expect(lexer.RIGHT_PAREN)
		return p.parsePostfix(&ast.RangeExpr{Start: start, End: end})
	case lexer.STEP_KEY:
		p.nextToken()
		p.expect(lexer.LEFT_PAREN)
		start := p.parseExpr(ast.PrecLowest)
		p.expect(lexer.COMMA_DELIM)
		end := p.parseExpr(ast.PrecLowest)
		p.expect(lexer.COMMA_DELIM)
		step := p.parseExpr(ast.PrecLowest)
		p.expect(lexer.RIGHT_PAREN)
		return p.parsePostfix(&ast.StepExpr{Start: start, End: end, Step: step})
	case lexer.READLINE_KEY:
		p.nextToken()
		p.expect(lexer.LEFT_PAREN)
		p.expect(lexer.RIGHT_PAREN)
		return p.parsePostfix(&ast.ReadLineExpr{})
	case lexer.IDENTIFIER_ID:
		name := p.curToken.Literal
		p.nextToken()
		if p.curToken.Type == lexer.LEFT_PAREN {
			return p.parsePostfix(p.parseCallArgs(name))
		}
		return p.parsePostfix(&ast.VarExpr{Name: name})
	default:
		p.errorf("unexpected token %s (%q) at line %d in expression", p.curToken.Type, p.curToken.Literal, p.curToken.Line)
		p.nextToken()
		return &ast.ValueExpr{Value: ast.Int(0)}
	}
}

// parsePostfix wraps e in as many `[index]` ArrayElementExprs as follow.
func (p *Parser) parsePostfix(e ast.Expr) ast.Expr {
	for p.curToken.Type == lexer.LEFT_BRACKET {
		p.nextToken()
		idx := p.parseExpr(ast.PrecLowest)
		p.expect(lexer.RIGHT_BRACKET)
		e = &ast.ArrayElementExpr{Array: e, Index: idx}
	}
	return e
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	p.nextToken() // consume '['
	var elems []ast.Expr
	for p.curToken.Type != lexer.RIGHT_BRACKET && p.curToken.Type != lexer.EOF_TYPE {
		elems = append(elems, p.parseExpr(ast.PrecLowest))
		if p.curToken.Type == lexer.COMMA_DELIM {
			p.nextToken()
		}
	}
	p.expect(lexer.RIGHT_BRACKET)
	return p.parsePostfix(&ast.ArrayExpr{Elements: elems})
}

// parseCallArgs parses `(ArgList)` after an identifier already consumed as
// name, leaving the parser positioned just past the closing paren.
func (p *Parser) parseCallArgs(name string) *ast.CallExpr {
	p.expect(lexer.LEFT_PAREN)
	var args []ast.Expr
	for p.curToken.Type != lexer.RIGHT_PAREN && p.curToken.Type != lexer.EOF_TYPE {
		args = append(args, p.parseExpr(ast.PrecLowest))
		if p.curToken.Type == lexer.COMMA_DELIM {
			p.nextToken()
		}
	}
	p.expect(lexer.RIGHT_PAREN)
	return &ast.CallExpr{Name: name, Args: args}
}

// unescapeString reverses the lexer's single-character escape rule: a
// backslash followed by any character becomes just that character.
func unescapeString(lit string) string {
	var b []byte
	for i := 0; i < len(lit); i++ {
		if lit[i] == '\\' && i+1 < len(lit) {
			i++
		}
		b = append(b, lit[i])
	}
	return string(b)
}
