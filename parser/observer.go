package parser

import (
	"github.com/xiam/infix/ast"
	"github.com/xiam/infix/lexer"
)

// Observer is notified while the parser runs. TokenConsumed fires each time
// a token is consumed and NodeProduced each time a node is completed, so
// nodes arrive bottom-up. Nodes that end up discarded because of a later
// failure are reported as well.
type Observer interface {
	TokenConsumed(tok lexer.Token)
	NodeProduced(node ast.Node)
}

type nopObserver struct{}

func (nopObserver) TokenConsumed(lexer.Token) {}

func (nopObserver) NodeProduced(ast.Node) {}

// NopObserver ignores all events
var NopObserver Observer = nopObserver{}

// Options configures a Parser
type Options struct {
	Observer Observer
}
