// Package francaidl is the public entry point to the Franca IDL front end:
// lexing, parsing, and pretty-printing .fidl documents. It exists at module
// root the way github.com/dekarrin/tunaq exposes its game engine from a root
// "tunaq" package rather than burying it under internal/.
package francaidl

import (
	"github.com/ilehmann/francaidl/internal/ast"
	"github.com/ilehmann/francaidl/internal/parser"
)

// Document is the root of a parsed Franca IDL file.
type Document = ast.Document

// Node is implemented by every AST node kind.
type Node = ast.Node

// ShowOptions controls Show's rendering.
type ShowOptions = ast.ShowOptions

// Parse lexes and parses text as a single Franca IDL document. A lexical
// error is logged and the offending character skipped; it does not make Parse
// fail. On the first syntactic error, Parse returns a non-nil error and a nil
// Document; Franca IDL's grammar has no recovery mode, so there is no
// partial tree to return alongside the error.
func Parse(text string) (*Document, error) {
	return parser.Parse(text)
}

// Show renders n and its subtree as a single multi-line string, suitable for
// golden-file comparison across runs: identical trees always produce
// identical output.
func Show(n Node, opts ShowOptions) string {
	return ast.Show(n, opts)
}
