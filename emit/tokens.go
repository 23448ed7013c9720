package emit

import (
	"io"

	"pl0dash/syntax"
)

// WriteTokens writes a flat token listing enclosed in a `tokens` tag.
func WriteTokens(w io.Writer, toks []*syntax.Token) error {
	e := newEmitter(w, "")

	e.line(0, "<tokens>")
	for _, tok := range toks {
		e.terminal(0, tok)
	}
	e.line(0, "</tokens>")

	return e.flush()
}
