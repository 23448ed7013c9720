package emit

import (
	"io"

	"pl0dash/syntax"
)

// WriteTree writes tree to w.  Every non-terminal is written as an opening tag
// named after its grammar symbol, its children, and a matching closing tag;
// every terminal is a single tag holding the token's text.  Each nesting level
// adds one indent: an empty indent writes every line flush left.
func WriteTree(w io.Writer, tree *syntax.SyntaxTree, indent string) error {
	e := newEmitter(w, indent)
	e.node(0, tree.Root)
	return e.flush()
}

// node writes n and its descendants in pre-order.
func (e *emitter) node(level int, n *syntax.SyntaxNode) {
	if n.IsTerminal() {
		e.terminal(level, n.Token)
		return
	}

	tag := nodeTags[n.Kind]
	e.line(level, "<"+tag+">")

	for _, child := range n.Children {
		e.node(level+1, child)
	}

	e.line(level, "</"+tag+">")
}
