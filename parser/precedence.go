package parser

import (
	"github.com/xiam/infix/ast"
	"github.com/xiam/infix/lexer"
)

// Precedence levels, higher binds tighter. Tokens that are not binary
// operators have precLowest, which ends every climb.
const (
	precLowest  = -1
	precSum     = 10
	precProduct = 20
)

// Relational and equality tokens are reserved and have no precedence.
var tokenPrecedence = map[lexer.TokenType]int{
	lexer.TokenPlus:  precSum,
	lexer.TokenMinus: precSum,
	lexer.TokenStar:  precProduct,
	lexer.TokenSlash: precProduct,
}

var tokenOperator = map[lexer.TokenType]ast.BinaryOp{
	lexer.TokenPlus:  ast.OpAdd,
	lexer.TokenMinus: ast.OpSub,
	lexer.TokenStar:  ast.OpMul,
	lexer.TokenSlash: ast.OpDiv,
}

func precedence(tok lexer.Token) int {
	if prec, ok := tokenPrecedence[tok.Type()]; ok {
		return prec
	}
	return precLowest
}
