// Package input contains readers for getting whole Franca IDL documents from
// CLI or other sources, for use by the interactive francai driver.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DirectDocumentReader reads documents from
// any generic input stream directly. It can be used generically with any
// io.Reader but does not sanitize the input of control and escape sequences.
//
// DirectDocumentReader should not be used directly; instead, create one with
// [NewDirectReader].
type DirectDocumentReader struct {
	r *bufio.Reader
}

// InteractiveDocumentReader reads documents
// from stdin using a Go implementation of the GNU Readline library. This
// keeps input clear of typing and editing escape sequences and enables
// command history across documents. This should in general only be used
// when directly connecting to a TTY for input.
//
// InteractiveDocumentReader should not be used directly; instead, create one
// with [NewInteractiveReader].
type InteractiveDocumentReader struct {
	rl     *readline.Instance
	prompt string
}

// NewDirectReader creates a new DirectDocumentReader wrapping a buffered
// reader over r. The returned reader holds no readline resources; its Close
// does nothing and returns nil.
func NewDirectReader(r io.Reader) *DirectDocumentReader {
	return &DirectDocumentReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader creates a new InteractiveDocumentReader and
// initializes readline. The returned reader must have Close called on it
// before disposal to properly teardown readline resources.
func NewInteractiveReader() (*InteractiveDocumentReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "fidl> ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveDocumentReader{
		rl:     rl,
		prompt: "fidl> ",
	}, nil
}

// Close cleans up resources associated with the DirectDocumentReader.
func (dr *DirectDocumentReader) Close() error {
	return nil
}

// Close cleans up readline resources associated with the
// InteractiveDocumentReader.
func (ir *InteractiveDocumentReader) Close() error {
	return ir.rl.Close()
}

// ReadDocument reads one whole Franca IDL document: all lines up to (but not
// including) the next blank line, or up to EOF, whichever comes first.
//
// If there is no more input at all, the returned string is empty and err is
// io.EOF. If a partial document is read before EOF, that document's text is
// returned with a nil error; the next call then returns io.EOF.
func (dr *DirectDocumentReader) ReadDocument() (string, error) {
	var lines []string
	for {
		line, err := dr.r.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
		if err != nil {
			if err == io.EOF {
				if len(lines) == 0 {
					return "", io.EOF
				}
				return strings.Join(lines, "\n"), nil
			}
			return "", err
		}
		if trimmed == "" && len(lines) > 0 {
			return strings.Join(lines, "\n"), nil
		}
	}
}

// ReadDocument reads one whole Franca IDL document from stdin the same way
// DirectDocumentReader.ReadDocument does, but via readline so history and
// line editing are available.
func (ir *InteractiveDocumentReader) ReadDocument() (string, error) {
	var lines []string
	for {
		line, err := ir.rl.Readline()
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
		if err != nil {
			if err == io.EOF {
				if len(lines) == 0 {
					return "", io.EOF
				}
				return strings.Join(lines, "\n"), nil
			}
			return "", err
		}
		if trimmed == "" && len(lines) > 0 {
			return strings.Join(lines, "\n"), nil
		}
	}
}

// SetPrompt updates the prompt to the given text.
func (ir *InteractiveDocumentReader) SetPrompt(p string) {
	ir.rl.SetPrompt(p)
	ir.prompt = p
}

// GetPrompt gets the current prompt.
func (ir *InteractiveDocumentReader) GetPrompt() string {
	return ir.prompt
}
