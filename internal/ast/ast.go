// Package ast defines the Franca IDL abstract syntax tree: a closed set of
// tagged node kinds (the teacher's tunascript/syntax package represents its
// own AST the same way — a Kind tag plus typed accessors — rather than as a
// class hierarchy) and the uniform show() traversal both the parser and
// downstream consumers use to walk it.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ilehmann/francaidl/internal/lex"
)

// Kind tags every Node variant. The set is closed. Show walks nodes through
// the Node interface rather than switching over Kind; String returns
// "UNKNOWN" for a value outside the set.
type Kind int

const (
	KindDocument Kind = iota
	KindPackageStatement
	KindPackageIdentifier
	KindImportStatement
	KindImportIdentifier
	KindInterface
	KindTypeCollection
	KindEnum
	KindStruct
	KindUnion
	KindMap
	KindMethod
	KindBroadcastMethod
	KindAttribute
	KindVersion
	KindArrayTypeDeclaration
	KindTypedef
	KindVariableList
	KindVariable
	KindEnumeratorList
	KindEnumerator
	KindMethodBody
	KindMethodInArguments
	KindMethodOutArguments
	KindMethodArgumentList
	KindMethodArgument
	KindID
	KindTypename
	KindIntegerConstant
	KindString
	KindFrancaComment
)

var kindNames = [...]string{
	"Document", "PackageStatement", "PackageIdentifier", "ImportStatement",
	"ImportIdentifier", "Interface", "TypeCollection", "Enum", "Struct",
	"Union", "Map", "Method", "BroadcastMethod", "Attribute", "Version",
	"ArrayTypeDeclaration", "Typedef", "VariableList", "Variable",
	"EnumeratorList", "Enumerator", "MethodBody", "MethodInArguments",
	"MethodOutArguments", "MethodArgumentList", "MethodArgument", "ID",
	"Typename", "IntegerConstant", "String", "FrancaComment",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Attr is one entry of a node's fixed, ordered scalar-attribute tuple: a
// primitive value rendered inline on the node's header line by Show.
type Attr struct {
	Name  string
	Value string
}

// Child names one of a node's subtree-valued positions. Node is never nil;
// optional children that were absent in the source simply do not appear in
// the slice Children() returns, matching the `if x is not None` guards of
// the node this package's show() is modeled on.
type Child struct {
	Name string
	Node Node
}

// Node is implemented by every AST node kind. Methods are read-only; nodes
// are built once during parsing (see package parser) and never mutated
// afterward.
type Node interface {
	// Kind identifies which of the closed set of node variants this is.
	Kind() Kind

	// Source is the token that begins this node's span, for error messages
	// and coordinate display.
	Source() lex.Token

	// Attrs returns this node's fixed ordered scalar-attribute tuple.
	Attrs() []Attr

	// Children returns this node's named subtree-valued children in
	// declared order, omitting absent optional positions.
	Children() []Child
}

// ShowOptions controls Show's rendering, matching the attrnames, nodenames
// and showcoord parameters of the original
// show(buf, offset, attrnames, nodenames, showcoord) traversal.
type ShowOptions struct {
	AttrNames bool
	NodeNames bool
	ShowCoord bool
}

// Show pretty-prints the subtree rooted at n into a single string, suitable
// for golden-file comparison. Show is deterministic: identical trees produce
// identical output on every call.
func Show(n Node, opts ShowOptions) string {
	var sb strings.Builder
	show(&sb, n, 0, opts, "")
	return sb.String()
}

func show(sb *strings.Builder, n Node, offset int, opts ShowOptions, childName string) {
	sb.WriteString(strings.Repeat(" ", offset))
	sb.WriteString(n.Kind().String())

	if opts.NodeNames && childName != "" {
		sb.WriteString(" <")
		sb.WriteString(childName)
		sb.WriteString(">")
	}
	sb.WriteString(": ")

	attrs := n.Attrs()
	if len(attrs) > 0 {
		parts := make([]string, len(attrs))
		for i, a := range attrs {
			if opts.AttrNames {
				parts[i] = a.Name + "=" + a.Value
			} else {
				parts[i] = a.Value
			}
		}
		sb.WriteString(strings.Join(parts, ", "))
	}

	if opts.ShowCoord {
		sb.WriteString(" (at line ")
		sb.WriteString(strconv.Itoa(n.Source().Line))
		sb.WriteString(")")
	}
	sb.WriteString("\n")

	for _, c := range n.Children() {
		show(sb, c.Node, offset+2, opts, c.Name)
	}
}

// intAttr is a small helper so node constructors don't each repeat
// strconv.FormatInt at every Attrs() call site.
func intAttr(name string, v int64) Attr {
	return Attr{Name: name, Value: strconv.FormatInt(v, 10)}
}

func boolAttr(name string, v bool) Attr {
	return Attr{Name: name, Value: fmt.Sprintf("%v", v)}
}
