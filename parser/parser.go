// Package parser turns a Lexer's token stream into an AST, using
// precedence-climbing for expressions and recursive descent for
// statements, in the style of the teacher's own Pratt parser (and of
// Eloquence's, for the prefix/infix registration idiom).
package parser

import (
	"fmt"

	"github.com/saghm/pallang/ast"
	"github.com/saghm/pallang/lexer"
)

// Parser consumes tokens from a Lexer and produces statements. It
// collects errors rather than panicking on the first one, so a file-mode
// caller can report every parse error in a program at once.
type Parser struct {
	lex       *lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token
	errors    []string
}

// NewParser builds a Parser over src, primed with the first two tokens.
func NewParser(src string) *Parser {
	p := &Parser{lex: lexer.NewLexer(src)}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

// HasErrors reports whether any parse error has been recorded.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// Errors returns every parse error recorded so far.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.curToken.Type != tt {
		p.errorf("expected %s, got %s (%q) at line %d", tt, p.curToken.Type, p.curToken.Literal, p.curToken.Line)
		return false
	}
	p.nextToken()
	return true
}

// ParseProgram parses every statement up to EOF, for file/stdin mode.
func (p *Parser) ParseProgram() []ast.Statement {
	var stmts []ast.Statement
	for p.curToken.Type != lexer.EOF_TYPE {
		before := p.curToken
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.curToken == before {
			// Guard against a parse rule that fails to consume anything.
			p.nextToken()
		}
	}
	return stmts
}

// ParseStatement parses exactly one statement, for interactive/REPL mode.
// Returns nil, with an error recorded, if the current token doesn't begin
// a valid statement.
func (p *Parser) ParseStatement() ast.Statement {
	return p.parseStatement()
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.LET_KEY:
		return p.parseLet()
	case lexer.DELETE_KEY:
		return p.parseDelete()
	case lexer.IF_KEY:
		return p.parseIf()
	case lexer.WHILE_KEY:
		return p.parseWhile()
	case lexer.FOR_KEY:
		return p.parseFor()
	case lexer.RETURN_KEY:
		return p.parseReturn()
	case lexer.PRINT_KEY:
		return p.parsePrint(false)
	case lexer.PRINTLINE_KEY:
		return p.parsePrint(true)
	case lexer.INT_KEY, lexer.BOOL_KEY, lexer.STR_KEY, lexer.ARRAY_KEY, lexer.VOID_KEY:
		return p.parseDefun()
	case lexer.IDENTIFIER_ID:
		return p.parseIdentLed()
	default:
		p.errorf("unexpected token %s (%q) at line %d", p.curToken.Type, p.curToken.Literal, p.curToken.Line)
		return nil
	}
}

func (p *Parser) parseLet() ast.Statement {
	p.nextToken() // consume 'let'
	name := p.curToken.Literal
	if !p.expect(lexer.IDENTIFIER_ID) {
		return nil
	}
	if !p.expect(lexer.ASSIGN_OP) {
		return nil
	}
	exp := p.parseExpr(ast.PrecLowest)
	p.expect(lexer.SEMICOLON_DELIM)
	return &ast.LetStmt{Name: name, Exp: exp}
}

// parseIdentLed disambiguates the statement forms that start with an
// identifier: VarAssign, ArrayElemAssign, and VoidCall.
func (p *Parser) parseIdentLed() ast.Statement {
	name := p.curToken.Literal
	p.nextToken()

	if p.curToken.Type == lexer.LEFT_PAREN {
		call := p.parseCallArgs(name)
		p.expect(lexer.SEMICOLON_DELIM)
		return &ast.VoidCallStmt{Call: call}
	}

	var indices []ast.Expr
	for p.curToken.Type == lexer.LEFT_BRACKET {
		p.nextToken()
		indices = append(indices, p.parseExpr(ast.PrecLowest))
		p.expect(lexer.RIGHT_BRACKET)
	}

	if !p.expect(lexer.ASSIGN_OP) {
		return nil
	}
	exp := p.parseExpr(ast.PrecLowest)
	p.expect(lexer.SEMICOLON_DELIM)

	if len(indices) == 0 {
		return &ast.VarAssignStmt{Name: name, Exp: exp}
	}
	return &ast.ArrayElemAssignStmt{Name: name, Indices: indices, Exp: exp}
}

func (p *Parser) parseDelete() ast.Statement {
	p.nextToken() // consume 'delete'
	name := p.curToken.Literal
	if !p.expect(lexer.IDENTIFIER_ID) {
		return nil
	}
	var indices []ast.Expr
	for p.curToken.Type == lexer.LEFT_BRACKET {
		p.nextToken()
		indices = append(indices, p.parseExpr(ast.PrecLowest))
		p.expect(lexer.RIGHT_BRACKET)
	}
	p.expect(lexer.SEMICOLON_DELIM)
	return &ast.DeleteStmt{Name: name, Indices: indices}
}

func (p *Parser) parseIf() ast.Statement {
	p.nextToken() // consume 'if'
	p.expect(lexer.LEFT_PAREN)
	cond := p.parseExpr(ast.PrecLowest)
	p.expect(lexer.RIGHT_PAREN)
	then := p.parseBlock()

	var elseBlock []ast.Statement
	if p.curToken.Type == lexer.ELSE_KEY {
		p.nextToken()
		if p.curToken.Type == lexer.IF_KEY {
			elseBlock = []ast.Statement{p.parseIf()}
		} else {
			elseBlock = p.parseBlock()
		}
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBlock}
}

func (p *Parser) parseWhile() ast.Statement {
	p.nextToken() // consume 'while'
	p.expect(lexer.LEFT_PAREN)
	cond := p.parseExpr(ast.PrecLowest)
	p.expect(lexer.RIGHT_PAREN)
	body := p.parseBlock()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

func (p *Parser) parseFor() ast.Statement {
	p.nextToken() // consume 'for'
	name := p.curToken.Literal
	if !p.expect(lexer.IDENTIFIER_ID) {
		return nil
	}
	if !p.expect(lexer.IN_KEY) {
		return nil
	}
	iterable := p.parseExpr(ast.PrecLowest)
	body := p.parseBlock()
	return &ast.ForStmt{Var: name, Iterable: iterable, Body: body}
}

func (p *Parser) parseDefun() ast.Statement {
	returnType := tokenToType(p.curToken.Type)
	p.nextToken() // consume return type keyword
	name := p.curToken.Literal
	if !p.expect(lexer.IDENTIFIER_ID) {
		return nil
	}
	p.expect(lexer.LEFT_PAREN)
	var params []string
	for p.curToken.Type != lexer.RIGHT_PAREN && p.curToken.Type != lexer.EOF_TYPE {
		params = append(params, p.curToken.Literal)
		p.expect(lexer.IDENTIFIER_ID)
		if p.curToken.Type == lexer.COMMA_DELIM {
			p.nextToken()
		}
	}
	p.expect(lexer.RIGHT_PAREN)
	body := p.parseBlock()
	return &ast.DefunStmt{Name: name, ReturnType: returnType, Params: params, Body: body}
}

func (p *Parser) parseReturn() ast.Statement {
	p.nextToken() // consume 'return'
	exp := p.parseExpr(ast.PrecLowest)
	p.expect(lexer.SEMICOLON_DELIM)
	return &ast.ReturnStmt{Exp: exp}
}

func (p *Parser) parsePrint(newline bool) ast.Statement {
	p.nextToken() // consume 'print'/'print_line'
	exp := p.parseExpr(ast.PrecLowest)
	p.expect(lexer.SEMICOLON_DELIM)
	if newline {
		return &ast.PrintLineStmt{Exp: exp}
	}
	return &ast.PrintStmt{Exp: exp}
}

// parseBlock parses either a brace-delimited statement list or, per the
// grammar's single-statement shorthand used for else-if chains like
// `if (x) y = 1; else y = 2;`, a single statement with no braces.
func (p *Parser) parseBlock() []ast.Statement {
	if p.curToken.Type != lexer.LEFT_BRACE {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		return []ast.Statement{stmt}
	}
	p.nextToken() // consume '{'
	var stmts []ast.Statement
	for p.curToken.Type != lexer.RIGHT_BRACE && p.curToken.Type != lexer.EOF_TYPE {
		before := p.curToken
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.curToken == before {
			p.nextToken()
		}
	}
	p.expect(lexer.RIGHT_BRACE)
	return stmts
}

func tokenToType(tt lexer.TokenType) ast.Type {
	switch tt {
	case lexer.INT_KEY:
		return ast.IntType
	case lexer.BOOL_KEY:
		return ast.BoolType
	case lexer.STR_KEY:
		return ast.StrType
	case lexer.ARRAY_KEY:
		return ast.ArrayType
	default:
		return ast.VoidType
	}
}
