// Package emit serializes syntax trees and token streams to the nested, tagged
// text format written by the compiler: one XML-like tag per line, nested by
// indentation.
package emit

import (
	"bufio"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"pl0dash/syntax"
)

// DefaultIndent is the indentation added per nesting level.
const DefaultIndent = "  "

// nodeTags maps the kinds of non-terminal nodes to their tag names.
var nodeTags = map[syntax.NodeKind]string{
	syntax.NODE_PROGRAM:    "program",
	syntax.NODE_BLOCK:      "block",
	syntax.NODE_CONST_DECL: "constDecl",
	syntax.NODE_VAR_DECL:   "varDecl",
	syntax.NODE_FUNC_DECL:  "funcDecl",
	syntax.NODE_STATEMENT:  "statement",
	syntax.NODE_CONDITION:  "condition",
	syntax.NODE_EXPRESSION: "expression",
	syntax.NODE_TERM:       "term",
	syntax.NODE_FACTOR:     "factor",
}

// categoryTags maps token categories to the tag names of terminals.
var categoryTags = map[int]string{
	syntax.CategoryKeyword:    "keyword",
	syntax.CategorySymbol:     "symbol",
	syntax.CategoryIdentifier: "identifier",
	syntax.CategoryNumber:     "number",
}

// emitter writes tagged lines to an output sink.  The first write error is
// kept and all later writes are dropped.
type emitter struct {
	w      *bufio.Writer
	indent string
	err    error
}

func newEmitter(w io.Writer, indent string) *emitter {
	return &emitter{w: bufio.NewWriter(w), indent: indent}
}

// line writes one line at the given nesting level.
func (e *emitter) line(level int, text string) {
	if e.err != nil {
		return
	}

	if _, e.err = e.w.WriteString(strings.Repeat(e.indent, level)); e.err != nil {
		return
	}

	if _, e.err = e.w.WriteString(text); e.err != nil {
		return
	}

	e.err = e.w.WriteByte('\n')
}

// terminal writes a single terminal line for tok.
func (e *emitter) terminal(level int, tok *syntax.Token) {
	tag := categoryTags[tok.Category()]
	e.line(level, "<"+tag+"> "+tokenText(tok)+" </"+tag+">")
}

// flush flushes the output and returns the first error encountered.
func (e *emitter) flush() error {
	if e.err != nil {
		return e.err
	}

	return e.w.Flush()
}

// tokenText returns the escaped text of a token as it appears in the body of a
// terminal tag.  Numbers are written as the decimal digits of their value.
func tokenText(tok *syntax.Token) string {
	if tok.Kind == syntax.TOK_NUMBER {
		return strconv.Itoa(tok.Num)
	}

	var sb strings.Builder
	xml.EscapeText(&sb, []byte(tok.Value))
	return sb.String()
}
