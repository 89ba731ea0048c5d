// Package fidlerr defines the wrapped-error shape used for lexical and
// syntax errors, adapted from github.com/dekarrin/tunaq's
// internal/tqerrors package.
package fidlerr

import "fmt"

// frontendError is a wrapped error carrying both a terse message (for
// Error()) and an optional wrapped cause, reachable via Unwrap.
type frontendError struct {
	msg  string
	wrap error
}

func (e *frontendError) Error() string {
	return e.msg
}

func (e *frontendError) Unwrap() error {
	return e.wrap
}

// Syntax creates a syntax-error with the given message, already formatted by
// the caller (see package parser's "line L: unexpected token T" /
// "unexpected EOF" formats).
func Syntax(msg string) error {
	return &frontendError{msg: msg}
}

// Syntaxf creates a syntax-error by formatting a message with fmt.Sprintf
// semantics. Deliberately kept separate from Syntax rather than folding
// Sprintf into every call site, matching tqerrors's Interpreter/Interpreterf
// split.
func Syntaxf(format string, args ...interface{}) error {
	return &frontendError{msg: fmt.Sprintf(format, args...)}
}

// WrapSyntax wraps an existing error with an additional message, preserving
// it as the Unwrap cause.
func WrapSyntax(msg string, cause error) error {
	return &frontendError{msg: msg, wrap: cause}
}
