package report

import (
	"errors"
	"fmt"
)

// LocalCompileError is a compilation error that occurs in a context in which
// the file is known by the error handler and thus doesn't need to be passed
// along with the error.
type LocalCompileError struct {
	// The error message.
	Message string

	// The span over which the error occurs.  This may be nil.
	Span *TextSpan

	// The kind of error: one of the sentinel errors of the raising package.
	// This may be nil.
	Err error
}

func (lce *LocalCompileError) Error() string {
	if lce.Span == nil {
		return lce.Message
	}

	return fmt.Sprintf("%s: %s", lce.Span, lce.Message)
}

func (lce *LocalCompileError) Unwrap() error {
	return lce.Err
}

// Raise creates a new local compile error.
func Raise(span *TextSpan, msg string, args ...interface{}) *LocalCompileError {
	return &LocalCompileError{Message: fmt.Sprintf(msg, args...), Span: span}
}

// RaiseErr creates a new local compile error of the given kind.
func RaiseErr(kind error, span *TextSpan, msg string, args ...interface{}) *LocalCompileError {
	return &LocalCompileError{Message: fmt.Sprintf(msg, args...), Span: span, Err: kind}
}

// SpanOf returns the text span attached to err if err is or wraps a local
// compile error.  Otherwise, nil is returned.
func SpanOf(err error) *TextSpan {
	var lce *LocalCompileError
	if errors.As(err, &lce) {
		return lce.Span
	}

	return nil
}

// -----------------------------------------------------------------------------

// CatchErrors catches any local compile error thrown by a `panic` during a stage
// of compilation and stores it in errp.  In effect, this handler determines
// where errors "unrecoverable" within a given subsection of the compiler stop
// bubbling.  Any other panic is propagated.
// NB: This function must ALWAYS be deferred.
func CatchErrors(errp *error) {
	if x := recover(); x != nil {
		if cerr, ok := x.(*LocalCompileError); ok {
			*errp = cerr
		} else {
			panic(x)
		}
	}
}
