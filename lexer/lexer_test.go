package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func TestNewLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(INT_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "12"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: ` <=  + 2   {31} -12 __a19bcd_aa90`,
			ExpectedTokens: []Token{
				NewToken(LE_OP, "<="),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(INT_LIT, "31"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(INT_LIT, "-12"),
				NewToken(IDENTIFIER_ID, "__a19bcd_aa90"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: `-5 ++ "he said \"hi\"" != false`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "-5"),
				NewToken(CONCAT_OP, "++"),
				NewToken(STRING_LIT, `he said \"hi\"`),
				NewToken(NE_OP, "!="),
				NewToken(FALSE_KEY, "false"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: `defun-isnt-a-keyword int void length letters range step readline`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "defun"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "isnt"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "keyword"),
				NewToken(INT_KEY, "int"),
				NewToken(VOID_KEY, "void"),
				NewToken(LENGTH_KEY, "length"),
				NewToken(LETTERS_KEY, "letters"),
				NewToken(RANGE_KEY, "range"),
				NewToken(STEP_KEY, "step"),
				NewToken(READLINE_KEY, "readline"),
				NewToken(EOF_TYPE, ""),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		toks := lex.ConsumeTokens()
		if assert.Equal(t, len(test.ExpectedTokens), len(toks), test.Input) {
			for i, expected := range test.ExpectedTokens {
				assert.Equal(t, expected.Type, toks[i].Type, "token %d of %q", i, test.Input)
				assert.Equal(t, expected.Literal, toks[i].Literal, "token %d of %q", i, test.Input)
			}
		}
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"never closed`)
	tok := lex.NextToken()
	assert.Equal(t, INVALID_TYPE, tok.Type)
}
