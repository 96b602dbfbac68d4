package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode(t *testing.T) {
	testCases := []struct {
		Node Node
		Type NodeType
		Out  string
	}{
		{
			NewInt(42),
			NodeTypeInt,
			`Int(42)`,
		},
		{
			NewVariable("x"),
			NodeTypeVariable,
			`Var(x)`,
		},
		{
			NewBinary(OpAdd, NewInt(1), NewBinary(OpMul, NewInt(2), NewInt(3))),
			NodeTypeBinary,
			`Binary(add, Int(1), Binary(mult, Int(2), Int(3)))`,
		},
		{
			NewBinary(OpDiv, NewBinary(OpSub, NewVariable("a"), NewInt(1)), NewVariable("b")),
			NodeTypeBinary,
			`Binary(div, Binary(sub, Var(a), Int(1)), Var(b))`,
		},
		{
			NewCall("f"),
			NodeTypeCall,
			`Call(f, [])`,
		},
		{
			NewCall("f", NewInt(1), NewCall("g", NewVariable("y"))),
			NodeTypeCall,
			`Call(f, [Int(1), Call(g, [Var(y)])])`,
		},
		{
			NewPrototype("sum", "a", "b"),
			NodeTypePrototype,
			`Proto(sum, [a, b])`,
		},
		{
			NewAnonymousFunction(NewInt(7)),
			NodeTypeFunction,
			`Function(Proto(, []), Int(7))`,
		},
	}

	for i := range testCases {
		node := testCases[i].Node
		assert.Equal(t, testCases[i].Type, node.Type())
		assert.Equal(t, testCases[i].Out, Encode(node))
		assert.Equal(t, testCases[i].Out, node.String())
	}
}

func TestNodeInvariants(t *testing.T) {
	assert.Panics(t, func() {
		NewBinary(OpAdd, NewInt(1), nil)
	})
	assert.Panics(t, func() {
		NewBinary(OpAdd, nil, NewInt(1))
	})
	assert.Panics(t, func() {
		NewFunction(nil, NewInt(1))
	})
	assert.Panics(t, func() {
		NewFunction(NewPrototype(""), nil)
	})
	assert.Panics(t, func() {
		NewCall("f", NewInt(1), nil)
	})
}

func TestNodeOwnership(t *testing.T) {
	args := []Expr{NewInt(1), NewInt(2)}
	call := NewCall("f", args...)

	args[0] = NewVariable("changed")
	assert.Equal(t, `Call(f, [Int(1), Int(2)])`, Encode(call))

	params := []string{"a", "b"}
	proto := NewPrototype("g", params...)
	params[1] = "changed"
	assert.Equal(t, []string{"a", "b"}, proto.Params)

	assert.NotNil(t, NewCall("h").Args)
	assert.NotNil(t, NewPrototype("").Params)
	assert.True(t, NewPrototype("").IsAnonymous())
	assert.False(t, proto.IsAnonymous())
}

func TestNodeType(t *testing.T) {
	assert.True(t, NodeTypeInt.IsExpr())
	assert.True(t, NodeTypeCall.IsExpr())
	assert.False(t, NodeTypePrototype.IsExpr())
	assert.False(t, NodeTypeFunction.IsExpr())
	assert.Equal(t, "binary", NodeTypeBinary.String())
	assert.Equal(t, "", NodeTypeInvalid.String())

	assert.Equal(t, "mult", OpMul.String())
	assert.Equal(t, "*", OpMul.Symbol())
	assert.Equal(t, "invalid", BinaryOp(99).String())
}

func TestFprint(t *testing.T) {
	fn := NewAnonymousFunction(
		NewBinary(OpAdd, NewInt(1), NewCall("f", NewVariable("x"))),
	)

	var buf bytes.Buffer
	Fprint(&buf, fn)

	expected := "(function)\n" +
		"    (prototype): \"\" []\n" +
		"    (binary): add\n" +
		"        (int): 1\n" +
		"        (call): f [1]\n" +
		"            (variable): x\n"
	assert.Equal(t, expected, buf.String())
}

func TestSource(t *testing.T) {
	e := NewBinary(OpMul,
		NewBinary(OpAdd, NewInt(1), NewVariable("x")),
		NewCall("f", NewInt(2), NewCall("g")),
	)
	assert.Equal(t, `((1 + x) * f(2, g()))`, Source(e))
}
