package syntax

import "errors"

// Kinds of errors raised by the lexer and parser.  Every error returned from
// this package is a *report.LocalCompileError wrapping one of these, so they
// can be tested for with errors.Is.
var (
	ErrUndefinedToken       = errors.New("undefined token")
	ErrCommentNotTerminated = errors.New("comment not terminated")
	ErrCannotReadByte       = errors.New("cannot read byte")
	ErrNumberOverflow       = errors.New("number literal out of range")
	ErrReachedEnd           = errors.New("reached end of input")
	ErrSyntax               = errors.New("syntax error")
	ErrNestingTooDeep       = errors.New("nesting too deep")
)
