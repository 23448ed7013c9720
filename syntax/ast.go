package syntax

import "pl0dash/report"

// NodeKind is the grammar symbol a syntax node was produced by.
type NodeKind int

// Enumeration of node kinds: one per production plus NODE_TERMINAL for tokens.
const (
	NODE_PROGRAM NodeKind = iota
	NODE_BLOCK
	NODE_CONST_DECL
	NODE_VAR_DECL
	NODE_FUNC_DECL
	NODE_STATEMENT
	NODE_CONDITION
	NODE_EXPRESSION
	NODE_TERM
	NODE_FACTOR
	NODE_TERMINAL
)

var nodeKindNames = [...]string{
	NODE_PROGRAM:    "Program",
	NODE_BLOCK:      "Block",
	NODE_CONST_DECL: "ConstDecl",
	NODE_VAR_DECL:   "VarDecl",
	NODE_FUNC_DECL:  "FuncDecl",
	NODE_STATEMENT:  "Statement",
	NODE_CONDITION:  "Condition",
	NODE_EXPRESSION: "Expression",
	NODE_TERM:       "Term",
	NODE_FACTOR:     "Factor",
	NODE_TERMINAL:   "Terminal",
}

func (nk NodeKind) String() string {
	if 0 <= nk && int(nk) < len(nodeKindNames) {
		return nodeKindNames[nk]
	}

	return "Invalid"
}

// SyntaxNode is a node of the concrete syntax tree.  A non-terminal node owns
// the nodes of every token and production it matched, in source order.  A
// terminal node wraps exactly one token and has no children.  Nodes are never
// shared between parents and must not be modified once the parser has returned
// them.
type SyntaxNode struct {
	Kind NodeKind

	// The token of a terminal node.  This is nil for all other nodes.
	Token *Token

	Children []*SyntaxNode
}

// SyntaxTree is the result of parsing a source unit.  Its root is always a
// Program node.
type SyntaxTree struct {
	Root *SyntaxNode
}

// newBranch creates an empty non-terminal node of the given kind.
func newBranch(kind NodeKind) *SyntaxNode {
	return &SyntaxNode{Kind: kind}
}

// newLeaf creates a terminal node wrapping tok.
func newLeaf(tok *Token) *SyntaxNode {
	return &SyntaxNode{Kind: NODE_TERMINAL, Token: tok}
}

// add appends a child to the node.
func (n *SyntaxNode) add(child *SyntaxNode) {
	n.Children = append(n.Children, child)
}

// IsTerminal returns whether the node wraps a token.
func (n *SyntaxNode) IsTerminal() bool {
	return n.Kind == NODE_TERMINAL
}

// IsCall returns whether the node is a Factor of call shape: an identifier
// followed by a parenthesized, possibly empty, argument list.  A bare
// identifier reference is a Factor whose only child is the identifier.
func (n *SyntaxNode) IsCall() bool {
	return n.Kind == NODE_FACTOR &&
		len(n.Children) >= 3 &&
		n.Children[0].IsTerminal() && n.Children[0].Token.Kind == TOK_IDENT &&
		n.Children[1].IsTerminal() && n.Children[1].Token.Kind == TOK_LPAREN
}

// Args returns the argument expressions of a call Factor.
func (n *SyntaxNode) Args() []*SyntaxNode {
	if !n.IsCall() {
		return nil
	}

	var args []*SyntaxNode
	for _, child := range n.Children {
		if child.Kind == NODE_EXPRESSION {
			args = append(args, child)
		}
	}

	return args
}

// Terminals returns the tokens of every terminal under the node in source
// order.
func (n *SyntaxNode) Terminals() []*Token {
	var toks []*Token
	n.walk(func(m *SyntaxNode) {
		if m.IsTerminal() {
			toks = append(toks, m.Token)
		}
	})

	return toks
}

// Depth returns the number of nodes on the longest path from this node to a
// leaf, including both ends.
func (n *SyntaxNode) Depth() int {
	max := 0
	for _, child := range n.Children {
		if d := child.Depth(); d > max {
			max = d
		}
	}

	return max + 1
}

// Span returns the source text spanned by the node or nil if the node contains
// no tokens (the empty statement).
func (n *SyntaxNode) Span() *report.TextSpan {
	toks := n.Terminals()
	if len(toks) == 0 {
		return nil
	}

	return report.NewSpanOver(toks[0].Span, toks[len(toks)-1].Span)
}

// walk calls f on the node and all of its descendants in pre-order.
func (n *SyntaxNode) walk(f func(*SyntaxNode)) {
	f(n)

	for _, child := range n.Children {
		child.walk(f)
	}
}

// Terminals returns the tokens of the whole tree in source order.
func (t *SyntaxTree) Terminals() []*Token {
	return t.Root.Terminals()
}
