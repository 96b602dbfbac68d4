// Package ast defines the syntax tree built by the parser. Nodes are
// immutable once constructed: the fields are exported for reading, callers
// must not modify them.
package ast

// Node represents an element of the AST
type Node interface {
	Type() NodeType
	String() string
}

// Expr represents a node that can be part of an expression tree. The set of
// expressions is closed: *IntegerLiteral, *VariableReference,
// *BinaryExpression and *CallExpression.
type Expr interface {
	Node
	exprNode()
}

// IntegerLiteral is a decimal integer constant
type IntegerLiteral struct {
	Value int64
}

// VariableReference is a bare identifier
type VariableReference struct {
	Name string
}

// BinaryExpression applies Op to Left and Right, both always present
type BinaryExpression struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// CallExpression is a call to Callee with the arguments in written order
type CallExpression struct {
	Callee string
	Args   []Expr
}

// Prototype is the name and parameter list of a function. An empty name
// marks an anonymous function.
type Prototype struct {
	Name   string
	Params []string
}

// FunctionDeclaration is a top-level declaration
type FunctionDeclaration struct {
	Proto *Prototype
	Body  Expr
}

// NewInt creates and returns an integer literal
func NewInt(v int64) *IntegerLiteral {
	return &IntegerLiteral{Value: v}
}

// NewVariable creates and returns a variable reference
func NewVariable(name string) *VariableReference {
	return &VariableReference{Name: name}
}

// NewBinary creates and returns a binary expression. Both operands are
// required.
func NewBinary(op BinaryOp, left Expr, right Expr) *BinaryExpression {
	if left == nil || right == nil {
		panic("ast: binary expression requires two operands")
	}
	return &BinaryExpression{
		Op:    op,
		Left:  left,
		Right: right,
	}
}

// NewCall creates and returns a call expression
func NewCall(callee string, args ...Expr) *CallExpression {
	list := make([]Expr, 0, len(args))
	for _, arg := range args {
		if arg == nil {
			panic("ast: nil call argument")
		}
		list = append(list, arg)
	}
	return &CallExpression{
		Callee: callee,
		Args:   list,
	}
}

// NewPrototype creates and returns a function prototype
func NewPrototype(name string, params ...string) *Prototype {
	return &Prototype{
		Name:   name,
		Params: append([]string{}, params...),
	}
}

// NewFunction creates and returns a function declaration
func NewFunction(proto *Prototype, body Expr) *FunctionDeclaration {
	if proto == nil || body == nil {
		panic("ast: function declaration requires a prototype and a body")
	}
	return &FunctionDeclaration{
		Proto: proto,
		Body:  body,
	}
}

// NewAnonymousFunction wraps a bare expression into a function declaration
// with an empty prototype.
func NewAnonymousFunction(body Expr) *FunctionDeclaration {
	return NewFunction(NewPrototype(""), body)
}

// IsAnonymous returns true if the prototype has no name
func (p *Prototype) IsAnonymous() bool {
	return p.Name == ""
}

// Type returns the type of the node
func (*IntegerLiteral) Type() NodeType { return NodeTypeInt }

// Type returns the type of the node
func (*VariableReference) Type() NodeType { return NodeTypeVariable }

// Type returns the type of the node
func (*BinaryExpression) Type() NodeType { return NodeTypeBinary }

// Type returns the type of the node
func (*CallExpression) Type() NodeType { return NodeTypeCall }

// Type returns the type of the node
func (*Prototype) Type() NodeType { return NodeTypePrototype }

// Type returns the type of the node
func (*FunctionDeclaration) Type() NodeType { return NodeTypeFunction }

func (n *IntegerLiteral) String() string      { return Encode(n) }
func (n *VariableReference) String() string   { return Encode(n) }
func (n *BinaryExpression) String() string    { return Encode(n) }
func (n *CallExpression) String() string      { return Encode(n) }
func (n *Prototype) String() string           { return Encode(n) }
func (n *FunctionDeclaration) String() string { return Encode(n) }

func (*IntegerLiteral) exprNode()    {}
func (*VariableReference) exprNode() {}
func (*BinaryExpression) exprNode()  {}
func (*CallExpression) exprNode()    {}

var (
	_ = Expr(&IntegerLiteral{})
	_ = Expr(&VariableReference{})
	_ = Expr(&BinaryExpression{})
	_ = Expr(&CallExpression{})

	_ = Node(&Prototype{})
	_ = Node(&FunctionDeclaration{})
)
