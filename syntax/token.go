package syntax

import (
	"fmt"

	"pl0dash/report"
)

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The source text of the token.  This is empty for the EOF token.
	Value string

	// The folded value of a number literal.  This is zero for all other kinds.
	Num int

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_BEGIN = iota
	TOK_END
	TOK_IF
	TOK_THEN
	TOK_WHILE
	TOK_DO
	TOK_RETURN
	TOK_FUNCTION
	TOK_VAR
	TOK_CONST
	TOK_ODD
	TOK_WRITE
	TOK_WRITELN

	TOK_PLUS
	TOK_MINUS
	TOK_MULT
	TOK_DIV
	TOK_LPAREN
	TOK_RPAREN
	TOK_EQ
	TOK_LT
	TOK_GT
	TOK_NEQ
	TOK_LTEQ
	TOK_GTEQ
	TOK_COMMA
	TOK_PERIOD
	TOK_SEMI
	TOK_ASSIGN

	TOK_IDENT
	TOK_NUMBER

	TOK_EOF
)

// Enumeration of token categories: the variants of a token as it appears in
// emitted output.
const (
	CategoryKeyword = iota
	CategorySymbol
	CategoryIdentifier
	CategoryNumber
	CategoryEOF
)

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
var keywordPatterns = map[string]int{
	"begin":    TOK_BEGIN,
	"end":      TOK_END,
	"if":       TOK_IF,
	"then":     TOK_THEN,
	"while":    TOK_WHILE,
	"do":       TOK_DO,
	"return":   TOK_RETURN,
	"function": TOK_FUNCTION,
	"var":      TOK_VAR,
	"const":    TOK_CONST,
	"odd":      TOK_ODD,
	"write":    TOK_WRITE,
	"writeln":  TOK_WRITELN,
}

// symbolPatterns maps single-byte symbols to their token kind.  Compound
// symbols are handled by the lexer directly.
var symbolPatterns = map[byte]int{
	'+': TOK_PLUS,
	'-': TOK_MINUS,
	'*': TOK_MULT,
	'/': TOK_DIV,
	'(': TOK_LPAREN,
	')': TOK_RPAREN,
	'=': TOK_EQ,
	'<': TOK_LT,
	'>': TOK_GT,
	',': TOK_COMMA,
	'.': TOK_PERIOD,
	';': TOK_SEMI,
}

// kindTexts is the canonical text of every fixed-text token kind.
var kindTexts = map[int]string{
	TOK_NEQ:    "<>",
	TOK_LTEQ:   "<=",
	TOK_GTEQ:   ">=",
	TOK_ASSIGN: ":=",
	TOK_IDENT:  "identifier",
	TOK_NUMBER: "number",
	TOK_EOF:    "end of file",
}

func init() {
	for text, kind := range keywordPatterns {
		kindTexts[kind] = text
	}

	for b, kind := range symbolPatterns {
		kindTexts[kind] = string(b)
	}
}

// KindString returns a human readable description of a token kind: the text
// of keywords and symbols or the name of the other kinds.
func KindString(kind int) string {
	if text, ok := kindTexts[kind]; ok {
		return text
	}

	return fmt.Sprintf("<token kind %d>", kind)
}

// Category returns the category of the token.
func (tok *Token) Category() int {
	switch {
	case tok.Kind <= TOK_WRITELN:
		return CategoryKeyword
	case tok.Kind <= TOK_ASSIGN:
		return CategorySymbol
	case tok.Kind == TOK_IDENT:
		return CategoryIdentifier
	case tok.Kind == TOK_NUMBER:
		return CategoryNumber
	default:
		return CategoryEOF
	}
}

// Describe returns the description of the token used in error messages.
func (tok *Token) Describe() string {
	switch tok.Kind {
	case TOK_EOF:
		return "end of file"
	case TOK_IDENT:
		return fmt.Sprintf("identifier `%s`", tok.Value)
	case TOK_NUMBER:
		return fmt.Sprintf("number `%s`", tok.Value)
	default:
		return fmt.Sprintf("`%s`", tok.Value)
	}
}

func (tok *Token) String() string {
	if tok.Kind == TOK_EOF {
		return "EOF"
	}

	return tok.Value
}
