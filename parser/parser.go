package parser

import (
	"strconv"

	"github.com/xiam/infix/ast"
	"github.com/xiam/infix/lexer"
)

type parserState func(p *Parser) parserState

// Parser turns a sequence of tokens into top-level function declarations.
// A Parser is not safe for concurrent use, independent Parsers are.
type Parser struct {
	tokens []lexer.Token
	offset int
	eof    lexer.Token

	decls   []*ast.FunctionDeclaration
	done    bool
	lastErr error

	options Options
}

// New creates a parser over the given tokens
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens: tokens,
		eof:    endOfInput(tokens),
		decls:  []*ast.FunctionDeclaration{},
		options: Options{
			Observer: NopObserver,
		},
	}
}

// SetOptions replaces the parser options
func (p *Parser) SetOptions(options Options) {
	if options.Observer == nil {
		options.Observer = NopObserver
	}
	p.options = options
}

// Parse consumes all the tokens and returns the top-level declarations
// found. Parsing halts at the first malformed declaration, in that case no
// declarations are returned and the error is an *Error.
func (p *Parser) Parse() ([]*ast.FunctionDeclaration, error) {
	if !p.done {
		for state := parserDefaultState; state != nil; {
			state = state(p)
		}
		p.done = true
	}

	if p.lastErr != nil {
		return nil, p.lastErr
	}
	return p.decls, nil
}

func (p *Parser) peek() lexer.Token {
	if p.offset < len(p.tokens) {
		return p.tokens[p.offset]
	}
	return p.eof
}

// endOfInput is returned by peek once the token sequence is exhausted, in
// case the sequence lacks its own TokenEOF. It sits at the last token.
func endOfInput(tokens []lexer.Token) lexer.Token {
	line, col := 1, 1
	if n := len(tokens); n > 0 {
		line, col = tokens[n-1].Pos()
	}
	return lexer.NewToken(lexer.TokenEOF, line, col)
}

func (p *Parser) next() lexer.Token {
	tok := p.peek()
	if p.offset < len(p.tokens) {
		p.offset++
	}
	p.options.Observer.TokenConsumed(tok)
	return tok
}

func (p *Parser) produce(node ast.Node) {
	p.options.Observer.NodeProduced(node)
}

func parserDefaultState(p *Parser) parserState {
	switch p.peek().Type() {
	case lexer.TokenEOF:
		return nil

	case lexer.TokenSemicolon:
		p.next()
		return parserDefaultState
	}

	return parserTopLevelState
}

func parserTopLevelState(p *Parser) parserState {
	fn, err := p.parseTopLevelExpr()
	if err != nil {
		return parserErrorState(err)
	}
	p.decls = append(p.decls, fn)
	return parserDefaultState
}

func parserErrorState(err error) parserState {
	return func(p *Parser) parserState {
		p.lastErr = err
		return nil
	}
}

// parseTopLevelExpr wraps a bare expression into an anonymous function.
func (p *Parser) parseTopLevelExpr() (*ast.FunctionDeclaration, error) {
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	proto := ast.NewPrototype("")
	p.produce(proto)

	fn := ast.NewFunction(proto, body)
	p.produce(fn)
	return fn, nil
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinaryRHS(precLowest, lhs)
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Type() {
	case lexer.TokenInteger:
		return p.parseIntegerExpr()
	case lexer.TokenIdentifier:
		return p.parseIdentifierExpr()
	case lexer.TokenOpenParen:
		return p.parseParenExpr()
	}

	return nil, newError(ErrUnexpectedToken, tok, "expression")
}

func (p *Parser) parseIntegerExpr() (ast.Expr, error) {
	tok := p.next()

	i64, err := strconv.ParseInt(tok.Text(), 10, 64)
	if err != nil {
		return nil, newError(ErrIntegerRange, tok, "")
	}

	node := ast.NewInt(i64)
	p.produce(node)
	return node, nil
}

func (p *Parser) parseIdentifierExpr() (ast.Expr, error) {
	name := p.next().Text()

	if !p.peek().Is(lexer.TokenOpenParen) {
		node := ast.NewVariable(name)
		p.produce(node)
		return node, nil
	}
	p.next()

	args := []ast.Expr{}
	if p.peek().Is(lexer.TokenCloseParen) {
		p.next()
		return p.newCall(name, args), nil
	}

	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok := p.peek()
		switch tok.Type() {
		case lexer.TokenCloseParen:
			p.next()
			return p.newCall(name, args), nil
		case lexer.TokenComma:
			p.next()
		default:
			return nil, newError(ErrUnexpectedToken, tok, "',' or ')'")
		}
	}
}

func (p *Parser) newCall(name string, args []ast.Expr) ast.Expr {
	node := ast.NewCall(name, args...)
	p.produce(node)
	return node
}

func (p *Parser) parseParenExpr() (ast.Expr, error) {
	p.next()

	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); !tok.Is(lexer.TokenCloseParen) {
		return nil, newError(ErrUnexpectedToken, tok, "')'")
	}
	p.next()

	return inner, nil
}

// parseBinaryRHS climbs operators that bind tighter than minPrec, starting
// from lhs. When the operator after a right-hand side binds tighter than the
// current one, that right-hand side absorbs it first.
func (p *Parser) parseBinaryRHS(minPrec int, lhs ast.Expr) (ast.Expr, error) {
	for {
		opPrec := precedence(p.peek())
		if opPrec <= minPrec {
			return lhs, nil
		}

		op := tokenOperator[p.next().Type()]

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		if precedence(p.peek()) > opPrec {
			if rhs, err = p.parseBinaryRHS(opPrec, rhs); err != nil {
				return nil, err
			}
		}

		node := ast.NewBinary(op, lhs, rhs)
		p.produce(node)
		lhs = node
	}
}

// Parse turns tokens into top-level declarations, see (*Parser).Parse.
func Parse(tokens []lexer.Token) ([]*ast.FunctionDeclaration, error) {
	return New(tokens).Parse()
}

// ParseString tokenizes and parses the given source text.
func ParseString(src string) ([]*ast.FunctionDeclaration, error) {
	return Parse(lexer.Tokenize(src))
}
