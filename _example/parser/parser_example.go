package main

import (
	"log"

	"github.com/xiam/infix/ast"
	"github.com/xiam/infix/parser"
)

func main() {
	input := `fa(fb(89, a * b), 3 + 4 * 5); (1 + 2) * c`

	decls, err := parser.ParseString(input)
	if err != nil {
		log.Fatal("parser.ParseString:", err)
	}

	for _, decl := range decls {
		ast.Print(decl)
	}
}
