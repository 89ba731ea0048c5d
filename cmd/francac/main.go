/*
Francac parses a Franca IDL document and prints its abstract syntax tree.

It reads a single .fidl document from stdin (or from the file named by
--file), parses it, and writes the pretty-printed AST to stdout.

Usage:

	francac [flags]

The flags are:

	-v, --version
		Give the current version of francac and then exit.

	-f, --file FILE
		Read the document from FILE instead of stdin.

	-a, --attrnames
		Show attribute names alongside their values.

	-n, --nodenames
		Show the child-slot name each node was reached through.

	-c, --coords
		Show the source line each node begins on.

	-s, --summary
		Print a human-readable summary of input size to stderr after parsing.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/ilehmann/francaidl"
	"github.com/ilehmann/francaidl/internal/config"
	"github.com/ilehmann/francaidl/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitParseError indicates an unsuccessful program execution due to a
	// syntax error in the input document (lexical errors are only logged).
	ExitParseError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue reading input or configuration.
	ExitInitError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	flagFile    = pflag.StringP("file", "f", "", "Read the document from FILE instead of stdin")
	flagAttrs   = pflag.BoolP("attrnames", "a", false, "Show attribute names alongside their values")
	flagNodes   = pflag.BoolP("nodenames", "n", false, "Show the child-slot name each node was reached through")
	flagCoords  = pflag.BoolP("coords", "c", false, "Show the source line each node begins on")
	flagSummary = pflag.BoolP("summary", "s", false, "Print a size summary to stderr after parsing")
)

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

	opts, err := config.Load(defaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: loading config: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	if *flagAttrs {
		opts.AttrNames = true
	}
	if *flagNodes {
		opts.NodeNames = true
	}
	if *flagCoords {
		opts.ShowCoord = true
	}

	var in io.Reader = os.Stdin
	if *flagFile != "" {
		f, ferr := os.Open(*flagFile)
		if ferr != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", ferr.Error())
			returnCode = ExitInitError
			return
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: reading input: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	doc, err := francaidl.Parse(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitParseError
		return
	}

	out := francaidl.Show(doc, francaidl.ShowOptions{
		AttrNames: opts.AttrNames,
		NodeNames: opts.NodeNames,
		ShowCoord: opts.ShowCoord,
	})
	fmt.Print(out)

	if *flagSummary {
		fmt.Fprintf(os.Stderr, "parsed %s of input\n", humanize.Bytes(uint64(len(data))))
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.francaidlrc"
}
