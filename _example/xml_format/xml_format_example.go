package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/infix/ast"
	"github.com/xiam/infix/parser"
)

func printTree(node ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)

	var children []ast.Node
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		fmt.Printf("%s<%s>%d</%s>\n", indent, n.Type(), n.Value, n.Type())
		return
	case *ast.VariableReference:
		fmt.Printf("%s<%s>%s</%s>\n", indent, n.Type(), n.Name, n.Type())
		return
	case *ast.Prototype:
		fmt.Printf("%s<%s name=%q params=%q/>\n", indent, n.Type(), n.Name, strings.Join(n.Params, " "))
		return
	case *ast.BinaryExpression:
		fmt.Printf("%s<%s op=%q>\n", indent, n.Type(), n.Op)
		children = []ast.Node{n.Left, n.Right}
	case *ast.CallExpression:
		fmt.Printf("%s<%s callee=%q>\n", indent, n.Type(), n.Callee)
		for _, arg := range n.Args {
			children = append(children, arg)
		}
	case *ast.FunctionDeclaration:
		fmt.Printf("%s<%s>\n", indent, n.Type())
		children = []ast.Node{n.Proto, n.Body}
	}

	for i := range children {
		printIndentedTree(children[i], indentationLevel+1)
	}
	fmt.Printf("%s</%s>\n", indent, node.Type())
}

func main() {
	input := `fa(fb(89, a * b), fc(66, 3 - 53 / x))`

	decls, err := parser.ParseString(input)
	if err != nil {
		log.Fatal("parser.ParseString:", err)
	}

	for _, decl := range decls {
		printTree(decl)
	}
}
