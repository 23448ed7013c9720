package syntax

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"pl0dash/report"
)

// MaxNumber is the largest value a number literal may have.
const MaxNumber = math.MaxInt32

// Lexer is responsible for tokenizing a source file.  The lexer reads its input
// strictly forward one byte at a time and holds at most one byte of lookahead:
// `ahead` is an explicit one-byte pushback buffer.  A byte that is peeked but
// does not belong to the current token (eg. the byte after a lone `<`) simply
// stays in the buffer and is the first byte classified on the next call.
type Lexer struct {
	src     *bufio.Reader
	tokBuff *strings.Builder

	// The pushback buffer.  It is only meaningful if hasAhead is true.
	ahead    byte
	hasAhead bool

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer reading from the given source.
func NewLexer(r io.Reader) *Lexer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Lexer{
		src:     br,
		tokBuff: &strings.Builder{},
	}
}

// NextToken retrieves the next token from the input. If the input has been
// exhausted, this will be an EOF token: exhaustion is not an error.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch Classify(byte(c)) {
		case CC_SPACE:
			l.skip()
		case CC_SLASH:
			if tok, err := l.lexCommentOrDiv(); tok != nil || err != nil {
				return tok, err
			}
		case CC_DIGIT:
			return l.lexNumber()
		case CC_LETTER:
			return l.lexIdentOrKeyword()
		case CC_COLON, CC_LSS, CC_GTR:
			return l.lexCompound()
		default:
			return l.lexSymbol()
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF), nil
}

// Tokenize lexes the whole input and returns its tokens.  The trailing EOF
// token is not included.
func Tokenize(r io.Reader) ([]*Token, error) {
	l := NewLexer(r)

	var toks []*Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		} else if tok.Kind == TOK_EOF {
			return toks, nil
		}

		toks = append(toks, tok)
	}
}

// -----------------------------------------------------------------------------

// lexSymbol lexes a single-byte punctuation or operator symbol.
func (l *Lexer) lexSymbol() (*Token, error) {
	l.mark()
	c, err := l.eat()
	if err != nil {
		return nil, err
	}

	kind, ok := symbolPatterns[byte(c)]
	if !ok {
		return nil, report.RaiseErr(
			ErrUndefinedToken,
			l.getSpan(),
			"undefined token: %s",
			strconv.QuoteToASCII(string([]byte{byte(c)})),
		)
	}

	return l.makeToken(kind), nil
}

// lexCompound lexes a symbol that may be the first byte of a two-byte symbol:
// `:=`, `<=`, `<>`, and `>=`.  If the following byte does not complete such a
// symbol, it is left in the pushback buffer.
func (l *Lexer) lexCompound() (*Token, error) {
	l.mark()
	first, err := l.eat()
	if err != nil {
		return nil, err
	}

	second, err := l.peek()
	if err != nil {
		return nil, err
	}

	switch first {
	case ':':
		if second == '=' {
			l.eat()
			return l.makeToken(TOK_ASSIGN), nil
		}

		return nil, report.RaiseErr(ErrUndefinedToken, l.getSpan(), "undefined token: `:` (did you mean `:=`?)")
	case '<':
		switch second {
		case '=':
			l.eat()
			return l.makeToken(TOK_LTEQ), nil
		case '>':
			l.eat()
			return l.makeToken(TOK_NEQ), nil
		}

		return l.makeToken(TOK_LT), nil
	default:
		if second == '=' {
			l.eat()
			return l.makeToken(TOK_GTEQ), nil
		}

		return l.makeToken(TOK_GT), nil
	}
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		if cc := Classify(byte(c)); cc != CC_LETTER && cc != CC_DIGIT {
			break
		}

		l.eat()
	}

	kind, ok := keywordPatterns[l.tokBuff.String()]
	if !ok {
		kind = TOK_IDENT
	}

	return l.makeToken(kind), nil
}

// lexNumber lexes a decimal number literal.  The digits are folded into the
// token's value as they are read.
func (l *Lexer) lexNumber() (*Token, error) {
	l.mark()

	value := 0
	overflow := false
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 || Classify(byte(c)) != CC_DIGIT {
			break
		}

		l.eat()

		// checked before folding: value never leaves the int32 range
		if !overflow {
			d := c - '0'
			if value > (MaxNumber-d)/10 {
				overflow = true
			} else {
				value = value*10 + d
			}
		}
	}

	if overflow {
		return nil, report.RaiseErr(
			ErrNumberOverflow,
			l.getSpan(),
			"number literal `%s` exceeds the maximum of %d",
			l.tokBuff.String(),
			MaxNumber,
		)
	}

	tok := l.makeToken(TOK_NUMBER)
	tok.Num = value
	return tok, nil
}

// lexCommentOrDiv lexes a comment or a division token.  If a comment was
// skipped, both return values are nil.
func (l *Lexer) lexCommentOrDiv() (*Token, error) {
	l.mark()
	l.skip()

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	if c != '*' {
		l.tokBuff.WriteByte('/')
		return l.makeToken(TOK_DIV), nil
	}

	l.skip()
	for {
		c, err = l.skip()
		if err != nil {
			return nil, err
		} else if c == -1 {
			return nil, report.RaiseErr(ErrCommentNotTerminated, l.getSpan(), "comment not terminated before end of file")
		}

		if c == '*' {
			c, err = l.peek()
			if err != nil {
				return nil, err
			} else if c == '/' {
				l.skip()
				return nil, nil
			}
		}
	}
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one byte and writes the byte to the token buffer.
// If the lexer encounters an EOF, -1 is returned as the byte value.
func (l *Lexer) eat() (int, error) {
	c, err := l.skip()
	if c != -1 && err == nil {
		l.tokBuff.WriteByte(byte(c))
	}

	return c, err
}

// skip moves the lexer forward one byte but does not write the byte to the
// token buffer.  If the lexer encounters an EOF, -1 is returned as the byte
// value.
func (l *Lexer) skip() (int, error) {
	c, err := l.peek()
	if c == -1 || err != nil {
		return c, err
	}

	l.hasAhead = false
	l.updatePos(byte(c))

	return c, nil
}

// peek returns the next byte of input without moving the lexer forward or
// writing the byte to the token buffer.  The byte is held in the pushback
// buffer until it is consumed.  If the lexer encounters an EOF, -1 is returned
// as the byte value.
func (l *Lexer) peek() (int, error) {
	if l.hasAhead {
		return int(l.ahead), nil
	}

	c, err := l.src.ReadByte()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		l.mark()
		return 0, &report.LocalCompileError{
			Message: "cannot read byte: " + err.Error(),
			Span:    l.getSpan(),
			Err:     ErrCannotReadByte,
		}
	}

	l.ahead = c
	l.hasAhead = true
	return int(c), nil
}

// updatePos updates the lexer's position based on input byte.
func (l *Lexer) updatePos(c byte) {
	switch c {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	default:
		l.col++
	}
}
