package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenUndefined  TokenType = iota // Any character not listed below
	TokenEOF                         // End of input
	TokenFn                          // Keyword: "fn"
	TokenFnYields                    // Function yields: "->"
	TokenIdentifier                  // Letter followed by letters or digits
	TokenInteger                     // Digits
	TokenOpenParen                   // Open parenthesis: "("
	TokenCloseParen                  // Close parenthesis: ")"
	TokenOpenCurly                   // Open curly bracket: "{"
	TokenCloseCurly                  // Close curly bracket: "}"
	TokenColon                       // Colon: ":"
	TokenComma                       // Comma: ",", separates call arguments
	TokenPlus                        // Plus: "+"
	TokenMinus                       // Minus: "-"
	TokenStar                        // Star: "*"
	TokenSlash                       // Forward slash: "/"
	TokenLess                        // Less than: "<"
	TokenGreater                     // Greater than: ">"
	TokenEqual                       // Equal: "="
	TokenIf                          // Keyword: "if"
	TokenElse                        // Keyword: "else"
	TokenSemicolon                   // Semicolon: ";"
)

// Character classes, ASCII only.
var (
	letters    = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	digits     = []rune("0123456789")
	whitespace = []rune(" \t\n\v\f\r")
)

var operators = map[rune]TokenType{
	':': TokenColon,
	',': TokenComma, // extension to the base character set, separates call arguments
	'(': TokenOpenParen,
	')': TokenCloseParen,
	'{': TokenOpenCurly,
	'}': TokenCloseCurly,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'<': TokenLess,
	'>': TokenGreater,
	'=': TokenEqual,
	';': TokenSemicolon,
}

var keywords = map[string]TokenType{
	"fn":   TokenFn,
	"if":   TokenIf,
	"else": TokenElse,
}

var tokenNames = map[TokenType]string{
	TokenUndefined:  "undefined",
	TokenEOF:        "EOF",
	TokenFn:         "fn",
	TokenFnYields:   "fn_yields",
	TokenIdentifier: "identifier",
	TokenInteger:    "integer",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
	TokenOpenCurly:  "open_curly",
	TokenCloseCurly: "close_curly",
	TokenColon:      "colon",
	TokenComma:      "comma",
	TokenPlus:       "plus",
	TokenMinus:      "minus",
	TokenStar:       "star",
	TokenSlash:      "slash",
	TokenLess:       "less",
	TokenGreater:    "greater",
	TokenEqual:      "equal",
	TokenIf:         "if",
	TokenElse:       "else",
	TokenSemicolon:  "semicolon",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenUndefined]
}

// IsKeyword returns true for the reserved words "fn", "if" and "else".
func (tt TokenType) IsKeyword() bool {
	return tt == TokenFn || tt == TokenIf || tt == TokenElse
}

// Keyword returns the keyword type for the given word, if the word is a
// keyword.
func Keyword(word string) (TokenType, bool) {
	tt, ok := keywords[word]
	return tt, ok
}

func isClass(class []rune) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range class {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isLetter     = isClass(letters)
	isDigit      = isClass(digits)
	isWhitespace = isClass(whitespace)
)

func isAlphanumeric(r rune) bool {
	return isLetter(r) || isDigit(r)
}
