package emit

import (
	"io"

	"github.com/kr/pretty"

	"pl0dash/syntax"
)

// Dump writes a Go-syntax rendering of the whole tree, token spans included,
// to w.  It is meant for debugging the parser.
func Dump(w io.Writer, tree *syntax.SyntaxTree) error {
	_, err := pretty.Fprintf(w, "%# v\n", tree)
	return err
}
