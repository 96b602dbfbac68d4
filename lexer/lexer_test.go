package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		``,

		`1`,

		`1 + 2 * 3`,

		`(1+2)*3`,

		`f(1, 2)`,

		`fn add(a b) -> a + b`,

		`if x < 3 { 1 } else { 2 }`,

		`;;;`,

		"a\n\tb\r\n\v\fc",

		`$ @ # ! ~ "quoted" 'q' [ ] .`,

		`😊 🤖`,

		"\xff\xfe",
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i])
		t.Logf("tokens: %v", tokens)

		assert.NotEmpty(t, tokens)

		eofs := 0
		for _, tok := range tokens {
			if tok.Is(TokenEOF) {
				eofs++
			}
		}
		assert.Equal(t, 1, eofs)
		assert.Equal(t, TokenEOF, tokens[len(tokens)-1].Type())
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{
				TokenEOF,
			},
		},
		{
			"  \t\n  ",
			[]TokenType{
				TokenEOF,
			},
		},
		{
			`fn`,
			[]TokenType{
				TokenFn,
				TokenEOF,
			},
		},
		{
			`if`,
			[]TokenType{
				TokenIf,
				TokenEOF,
			},
		},
		{
			`else`,
			[]TokenType{
				TokenElse,
				TokenEOF,
			},
		},
		{
			`fnx iff elsewhere Fn`,
			[]TokenType{
				TokenIdentifier,
				TokenIdentifier,
				TokenIdentifier,
				TokenIdentifier,
				TokenEOF,
			},
		},
		{
			`12ab`,
			[]TokenType{
				TokenInteger,
				TokenIdentifier,
				TokenEOF,
			},
		},
		{
			`->`,
			[]TokenType{
				TokenFnYields,
				TokenEOF,
			},
		},
		{
			`-x`,
			[]TokenType{
				TokenMinus,
				TokenIdentifier,
				TokenEOF,
			},
		},
		{
			`- >`,
			[]TokenType{
				TokenMinus,
				TokenGreater,
				TokenEOF,
			},
		},
		{
			`a->b`,
			[]TokenType{
				TokenIdentifier,
				TokenFnYields,
				TokenIdentifier,
				TokenEOF,
			},
		},
		{
			`-->`,
			[]TokenType{
				TokenMinus,
				TokenFnYields,
				TokenEOF,
			},
		},
		{
			`: , ( ) { } + - * / < > = ;`,
			[]TokenType{
				TokenColon,
				TokenComma,
				TokenOpenParen,
				TokenCloseParen,
				TokenOpenCurly,
				TokenCloseCurly,
				TokenPlus,
				TokenMinus,
				TokenStar,
				TokenSlash,
				TokenLess,
				TokenGreater,
				TokenEqual,
				TokenSemicolon,
				TokenEOF,
			},
		},
		{
			`fn sum(a b) -> a + b;`,
			[]TokenType{
				TokenFn,
				TokenIdentifier,
				TokenOpenParen,
				TokenIdentifier,
				TokenIdentifier,
				TokenCloseParen,
				TokenFnYields,
				TokenIdentifier,
				TokenPlus,
				TokenIdentifier,
				TokenSemicolon,
				TokenEOF,
			},
		},
		{
			`x$1`,
			[]TokenType{
				TokenIdentifier,
				TokenUndefined,
				TokenInteger,
				TokenEOF,
			},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)
		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenText(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{
			`12ab`,
			[]string{`integer(12)`, `identifier(ab)`, `EOF`},
		},
		{
			`fn if else`,
			[]string{`fn`, `if`, `else`, `EOF`},
		},
		{
			`foo(bar, 007)`,
			[]string{`identifier(foo)`, `open_paren`, `identifier(bar)`, `comma`, `integer(007)`, `close_paren`, `EOF`},
		},
		{
			`a $ b`,
			[]string{`identifier(a)`, `undefined($)`, `identifier(b)`, `EOF`},
		},
		{
			`ä`,
			[]string{`undefined(ä)`, `EOF`},
		},
		{
			`x2y3 -> 45`,
			[]string{`identifier(x2y3)`, `fn_yields`, `integer(45)`, `EOF`},
		},
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)

		out := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			out = append(out, tok.String())
		}
		assert.Equal(t, testCases[i].Out, out)
	}
}

func TestTokenPayload(t *testing.T) {
	tokens := Tokenize(`fn x 1 + ?`)

	assert.False(t, tokens[0].HasText())
	assert.Equal(t, "", tokens[0].Text())

	assert.True(t, tokens[1].HasText())
	assert.Equal(t, "x", tokens[1].Text())

	assert.True(t, tokens[2].HasText())
	assert.Equal(t, "1", tokens[2].Text())

	assert.False(t, tokens[3].HasText())

	assert.True(t, tokens[4].HasText())
	assert.Equal(t, "?", tokens[4].Text())

	assert.False(t, tokens[5].HasText())
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"",
			[][2]int{
				{1, 1},
			},
		},
		{
			"1",
			[][2]int{
				{1, 1}, {1, 2},
			},
		},
		{
			"\n\n\n\n",
			[][2]int{
				{5, 1},
			},
		},
		{
			"\n\n\nABCDF efgh\n",
			[][2]int{
				{4, 1}, {4, 7},
				{5, 1},
			},
		},
		{
			"1\n\n\t\t23456",
			[][2]int{
				{1, 1},
				{3, 3},
				{3, 8},
			},
		},
		{
			"fn a -> b",
			[][2]int{
				{1, 1}, {1, 4}, {1, 6}, {1, 9}, {1, 10},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, [2]int{tokens[i].line, tokens[i].col})
		}
		return ret
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)
		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens))
	}
}

func TestMaximalMunch(t *testing.T) {
	long := strings.Repeat("a1", 500)
	tokens := Tokenize(long + " " + strings.Repeat("9", 300))

	if assert.Len(t, tokens, 3) {
		assert.Equal(t, long, tokens[0].Text())
		assert.Equal(t, strings.Repeat("9", 300), tokens[1].Text())
	}
}
