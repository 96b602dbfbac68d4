package main

import (
	"fmt"

	"github.com/xiam/infix/lexer"
)

func main() {
	input := `
		area(w, h) * 2;
		fn twice(x) -> x + x $
	`

	tokens := lexer.Tokenize(input)

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
