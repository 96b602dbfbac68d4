package lexer

const eof = rune(-1)

type lexState func(*Lexer) lexState

// New initializes a Lexer object
func New(src string) *Lexer {
	return &Lexer{
		in:     []rune(src),
		tokens: []Token{},
		buf:    []rune{},
		line:   1,
		col:    1,
	}
}

// Lexer represents a lexical analyzer. A Lexer is not safe for concurrent
// use, independent Lexers are.
type Lexer struct {
	in     []rune
	offset int

	tokens []Token
	done   bool

	buf []rune

	line, col           int
	startLine, startCol int
}

// Scan runs the lexer over the whole input and returns all the tokens found.
// Scan never fails: characters that don't belong to the language become
// TokenUndefined tokens. The last token is always the only TokenEOF. Each
// call returns a new slice.
func (lx *Lexer) Scan() []Token {
	if !lx.done {
		for state := lexDefaultState; state != nil; {
			state = state(lx)
		}
		lx.mark()
		lx.emit(TokenEOF)
		lx.done = true
	}
	tokens := make([]Token, len(lx.tokens))
	copy(tokens, lx.tokens)
	return tokens
}

func (lx *Lexer) peek() rune {
	return lx.peekAt(0)
}

func (lx *Lexer) peekAt(n int) rune {
	if lx.offset+n >= len(lx.in) {
		return eof
	}
	return lx.in[lx.offset+n]
}

func (lx *Lexer) next() rune {
	r := lx.peek()
	if r == eof {
		return eof
	}
	lx.offset++
	lx.buf = append(lx.buf, r)

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r
}

// mark sets the start position of the token being collected.
func (lx *Lexer) mark() {
	lx.startLine, lx.startCol = lx.line, lx.col
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, NewToken(tt, lx.startLine, lx.startCol))
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) emitText(tt TokenType) {
	lx.tokens = append(lx.tokens, NewTextToken(tt, string(lx.buf), lx.startLine, lx.startCol))
	lx.buf = lx.buf[0:0]
}

func lexDefaultState(lx *Lexer) lexState {
	r := lx.peek()
	if r == eof {
		return nil
	}

	lx.mark()

	switch {
	case isWhitespace(r):
		return lexWhitespace
	case isLetter(r):
		return lexWord
	case isDigit(r):
		return lexInteger
	case r == '-' && lx.peekAt(1) == '>':
		return lexFnYields
	}

	if _, ok := operators[r]; ok {
		return lexOperator
	}
	return lexUndefined
}

func lexWhitespace(lx *Lexer) lexState {
	for isWhitespace(lx.peek()) {
		lx.next()
	}
	lx.buf = lx.buf[0:0]
	return lexDefaultState
}

func lexWord(lx *Lexer) lexState {
	for isAlphanumeric(lx.peek()) {
		lx.next()
	}
	if tt, ok := Keyword(string(lx.buf)); ok {
		lx.emit(tt)
		return lexDefaultState
	}
	lx.emitText(TokenIdentifier)
	return lexDefaultState
}

func lexInteger(lx *Lexer) lexState {
	for isDigit(lx.peek()) {
		lx.next()
	}
	lx.emitText(TokenInteger)
	return lexDefaultState
}

func lexFnYields(lx *Lexer) lexState {
	lx.next()
	lx.next()
	lx.emit(TokenFnYields)
	return lexDefaultState
}

func lexOperator(lx *Lexer) lexState {
	r := lx.next()
	lx.emit(operators[r])
	return lexDefaultState
}

func lexUndefined(lx *Lexer) lexState {
	lx.next()
	lx.emitText(TokenUndefined)
	return lexDefaultState
}

// Tokenize takes a source text and returns all the tokens within it. The
// result always ends with a single TokenEOF.
func Tokenize(src string) []Token {
	return New(src).Scan()
}

// TokenizeBytes is like Tokenize but takes an array of bytes.
func TokenizeBytes(in []byte) []Token {
	return Tokenize(string(in))
}
