package ast

// NodeType represents the type of the AST node
type NodeType uint8

// Node types
const (
	NodeTypeInvalid NodeType = iota

	NodeTypeInt
	NodeTypeVariable
	NodeTypeBinary
	NodeTypeCall

	NodeTypePrototype
	NodeTypeFunction
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

// IsExpr returns true for the node types that can appear inside an
// expression tree.
func (nt NodeType) IsExpr() bool {
	switch nt {
	case NodeTypeInt, NodeTypeVariable, NodeTypeBinary, NodeTypeCall:
		return true
	}
	return false
}

var nodeTypeName = map[NodeType]string{
	NodeTypeInt:       "int",
	NodeTypeVariable:  "variable",
	NodeTypeBinary:    "binary",
	NodeTypeCall:      "call",
	NodeTypePrototype: "prototype",
	NodeTypeFunction:  "function",
}
