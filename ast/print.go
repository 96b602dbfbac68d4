package ast

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes an indented, one node per line representation of a node to
// w.
func Fprint(w io.Writer, n Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s)", indent, n.Type())

	switch n := n.(type) {
	case *IntegerLiteral:
		fmt.Fprintf(w, ": %d\n", n.Value)

	case *VariableReference:
		fmt.Fprintf(w, ": %s\n", n.Name)

	case *BinaryExpression:
		fmt.Fprintf(w, ": %v\n", n.Op)
		printLevel(w, n.Left, level+1)
		printLevel(w, n.Right, level+1)

	case *CallExpression:
		fmt.Fprintf(w, ": %s [%d]\n", n.Callee, len(n.Args))
		for i := range n.Args {
			printLevel(w, n.Args[i], level+1)
		}

	case *Prototype:
		fmt.Fprintf(w, ": %q [%s]\n", n.Name, strings.Join(n.Params, " "))

	case *FunctionDeclaration:
		fmt.Fprintf(w, "\n")
		printLevel(w, n.Proto, level+1)
		printLevel(w, n.Body, level+1)

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its canonical one-line text representation,
// e.g. "Binary(add, Int(1), Call(f, [Var(x)]))".
func Encode(n Node) string {
	var b strings.Builder
	encodeNode(&b, n)
	return b.String()
}

func encodeNode(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
		b.WriteString(":nil")

	case *IntegerLiteral:
		b.WriteString("Int(")
		b.WriteString(strconv.FormatInt(n.Value, 10))
		b.WriteString(")")

	case *VariableReference:
		b.WriteString("Var(")
		b.WriteString(n.Name)
		b.WriteString(")")

	case *BinaryExpression:
		b.WriteString("Binary(")
		b.WriteString(n.Op.String())
		b.WriteString(", ")
		encodeNode(b, n.Left)
		b.WriteString(", ")
		encodeNode(b, n.Right)
		b.WriteString(")")

	case *CallExpression:
		b.WriteString("Call(")
		b.WriteString(n.Callee)
		b.WriteString(", [")
		for i := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			encodeNode(b, n.Args[i])
		}
		b.WriteString("])")

	case *Prototype:
		b.WriteString("Proto(")
		b.WriteString(n.Name)
		b.WriteString(", [")
		b.WriteString(strings.Join(n.Params, ", "))
		b.WriteString("])")

	case *FunctionDeclaration:
		b.WriteString("Function(")
		encodeNode(b, n.Proto)
		b.WriteString(", ")
		encodeNode(b, n.Body)
		b.WriteString(")")

	default:
		panic("unknown node type")
	}
}

// Source renders an expression back into source form, fully parenthesizing
// binary expressions.
func Source(e Expr) string {
	switch e := e.(type) {
	case *IntegerLiteral:
		return strconv.FormatInt(e.Value, 10)
	case *VariableReference:
		return e.Name
	case *BinaryExpression:
		return fmt.Sprintf("(%s %s %s)", Source(e.Left), e.Op.Symbol(), Source(e.Right))
	case *CallExpression:
		args := make([]string, 0, len(e.Args))
		for i := range e.Args {
			args = append(args, Source(e.Args[i]))
		}
		return fmt.Sprintf("%s(%s)", e.Callee, strings.Join(args, ", "))
	}
	panic("unknown node type")
}
