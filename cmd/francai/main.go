/*
Francai starts an interactive Franca IDL parsing session.

It reads whole .fidl documents from stdin, one at a time (each terminated by
a blank line or end of input), parses each, and prints its AST before
prompting for the next. Francai exits when stdin is exhausted.

Usage:

	francai [flags]

The flags are:

	-v, --version
		Give the current version of francai and then exit.

	-d, --direct
		Force reading directly from stdin instead of going through GNU
		readline, even if launched in a tty.

	-a, --attrnames
		Show attribute names alongside their values.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/ilehmann/francaidl"
	"github.com/ilehmann/francaidl/internal/input"
	"github.com/ilehmann/francaidl/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the input reader.
	ExitInitError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	forceDirect = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
	flagAttrs   = pflag.BoolP("attrnames", "a", true, "Show attribute names alongside their values")
)

// documentReader is implemented by both input.DirectDocumentReader and
// input.InteractiveDocumentReader.
type documentReader interface {
	ReadDocument() (string, error)
	Close() error
}

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	reader, err := newReader(*forceDirect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer reader.Close()

	opts := francaidl.ShowOptions{AttrNames: *flagAttrs}

	for {
		text, err := reader.ReadDocument()
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			return
		}

		doc, perr := francaidl.Parse(text)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", perr.Error())
			continue
		}
		fmt.Print(francaidl.Show(doc, opts))
	}
}

func newReader(forceDirect bool) (documentReader, error) {
	if forceDirect || !isTerminal() {
		return input.NewDirectReader(os.Stdin), nil
	}
	return input.NewInteractiveReader()
}

func isTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
