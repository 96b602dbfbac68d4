package ast

// BinaryOp is the operator of a binary expression
type BinaryOp uint8

// Binary operators
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

var binaryOpName = map[BinaryOp]string{
	OpAdd: "add",
	OpSub: "sub",
	OpMul: "mult",
	OpDiv: "div",
}

var binaryOpSymbol = map[BinaryOp]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

func (op BinaryOp) String() string {
	if s, ok := binaryOpName[op]; ok {
		return s
	}
	return "invalid"
}

// Symbol returns the source form of the operator
func (op BinaryOp) Symbol() string {
	return binaryOpSymbol[op]
}
