package syntax

import (
	"errors"
	"os"

	"pl0dash/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// DefaultMaxDepth is the default bound on how deeply productions may nest.
const DefaultMaxDepth = 256

// Parser is a recursive descent parser for a PL/0-dash source unit.  It builds
// a concrete syntax tree: every token it consumes is kept as a terminal node.
// All parsing functions assume that they begin with the parser centered on the
// first token of their production and must consume all tokens (including the
// last) of their production, leaving the parser on the next token.  Errors are
// thrown as panics of *report.LocalCompileError and caught in Parse: there is
// no error recovery.  Parsers are created once per source unit.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source.
	lexer *Lexer

	// tok is the current token the parser is positioned on.  It is the only
	// token the parser buffers and is refilled only by next.
	tok *Token

	// depth is the number of productions currently being parsed.
	depth int

	// maxDepth is the bound on depth.
	maxDepth int

	// parsed indicates that Parse has already been called.
	parsed bool
}

// ParserOption configures a parser.
type ParserOption func(*Parser)

// WithMaxDepth sets the maximum production nesting depth.  Non-positive values
// select DefaultMaxDepth.
func WithMaxDepth(n int) ParserOption {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		} else {
			p.maxDepth = DefaultMaxDepth
		}
	}
}

// NewParser creates a new parser reading tokens from the given lexer.
func NewParser(l *Lexer, opts ...ParserOption) *Parser {
	p := &Parser{
		lexer:    l,
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses the entire source unit.  No tree is returned if an error
// occurs.  Parse may only be called once.
func (p *Parser) Parse() (tree *SyntaxTree, err error) {
	if p.parsed {
		return nil, errors.New("syntax: Parse called more than once")
	}
	p.parsed = true

	defer report.CatchErrors(&err)

	// move the parser onto the first token
	p.next()

	return &SyntaxTree{Root: p.parseProgram()}, nil
}

// ParseFile parses the source file at path.
func ParseFile(path string, opts ...ParserOption) (*SyntaxTree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewParser(NewLexer(f), opts...).Parse()
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.  This is the only place the lexer
// is called.
func (p *Parser) next() {
	tok, err := p.lexer.NextToken()
	if err != nil {
		panic(err)
	}

	p.tok = tok
}

// has returns true if the parser is on a token of a given kind.
func (p *Parser) has(kind int) bool {
	return p.tok.Kind == kind
}

// hasOneOf returns if the parser's current token kind is one of given kinds.
func (p *Parser) hasOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// consume returns a terminal node for the current token and moves the parser
// forward.
func (p *Parser) consume() *SyntaxNode {
	leaf := newLeaf(p.tok)
	p.next()
	return leaf
}

// want asserts that the parser is on a token of the given kind and consumes
// it.  The token is rejected otherwise.
func (p *Parser) want(kind int) *SyntaxNode {
	if !p.has(kind) {
		p.reject("`" + KindString(kind) + "`")
	}

	return p.consume()
}

// wantIdent consumes an identifier.
func (p *Parser) wantIdent() *SyntaxNode {
	if !p.has(TOK_IDENT) {
		p.reject("identifier")
	}

	return p.consume()
}

// reject throws a syntax error on the current token.  expected describes what
// the parser would have accepted.
func (p *Parser) reject(expected string) {
	kind := ErrSyntax
	if p.has(TOK_EOF) {
		kind = ErrReachedEnd
	}

	panic(report.RaiseErr(kind, p.tok.Span, "expected %s but found %s", expected, p.tok.Describe()))
}

// -----------------------------------------------------------------------------

// enter creates the node of a production and records that the parser has
// descended into it.  Every call must be paired with a deferred call to leave.
func (p *Parser) enter(kind NodeKind) *SyntaxNode {
	p.depth++
	if p.depth > p.maxDepth {
		panic(report.RaiseErr(
			ErrNestingTooDeep,
			p.tok.Span,
			"program nests more than %d productions deep",
			p.maxDepth,
		))
	}

	return newBranch(kind)
}

// leave records that the parser has finished a production.
func (p *Parser) leave() {
	p.depth--
}
