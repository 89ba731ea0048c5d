package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilehmann/francaidl/internal/ast"
)

func Test_Parse_MinimalDocument(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	src := `package org.example

interface Basic {
	method ping {
		out {
			Boolean ok
		}
	}
}
`
	doc, err := Parse(src)
	require.NoError(err)
	require.NotNil(doc)

	assert.Equal("org.example", doc.Package.Identifier.Name)
	require.Len(doc.Objects, 1)

	iface, ok := doc.Objects[0].(*ast.Interface)
	require.True(ok)
	assert.Equal("Basic", iface.Name.Name)
	require.Len(iface.Members, 1)

	method, ok := iface.Members[0].(*ast.Method)
	require.True(ok)
	assert.Equal("ping", method.Name.Name)
	assert.False(method.IsFireAndForget)
	assert.Nil(method.Body.In)
	require.NotNil(method.Body.Out)
	require.Len(method.Body.Out.Args.Items, 1)
	assert.Equal("ok", method.Body.Out.Args.Items[0].Name.Name)
}

func Test_Parse_ImportsAndTypeCollection(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	src := `package org.example

import common.* from "common.fidl"
import other.Thing from "other.fidl"

typeCollection Types {
	struct Point {
		Int32 x
		Int32 y
	}
}
`
	doc, err := Parse(src)
	require.NoError(err)
	require.Len(doc.Imports, 2)
	assert.Equal("common.*", doc.Imports[0].Identifier.Name)
	assert.Equal(`"common.fidl"`, doc.Imports[0].Source.Text)
	assert.Equal("other.Thing", doc.Imports[1].Identifier.Name)

	require.Len(doc.Objects, 1)
	tc, ok := doc.Objects[0].(*ast.TypeCollection)
	require.True(ok)
	assert.Equal("Types", tc.Name.Name)

	st, ok := tc.Members[0].(*ast.Struct)
	require.True(ok)
	require.Len(st.Variables.Items, 2)
	assert.Equal("x", st.Variables.Items[0].Name.Name)
	assert.Equal("y", st.Variables.Items[1].Name.Name)
}

func Test_Parse_DocCommentAttachment(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	src := `package org.example

<** the main interface **>
interface Documented {
	<** says hello **>
	method greet {
		in {
			String name
		}
	}
}
`
	doc, err := Parse(src)
	require.NoError(err)

	iface := doc.Objects[0].(*ast.Interface)
	require.NotNil(iface.Comment)
	assert.Contains(iface.Comment.Text, "the main interface")

	method := iface.Members[0].(*ast.Method)
	require.NotNil(method.Comment)
	assert.Contains(method.Comment.Text, "says hello")
}

func Test_Parse_VersionDoesNotAdmitDocComment(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	src := `package org.example

interface NoVersionComment {
	<** not allowed here **>
	version {
		major 1
		minor 0
	}
}
`
	_, err := Parse(src)
	require.Error(err)

	var synErr *SyntaxError
	require.ErrorAs(err, &synErr)
	assert.Equal("version", synErr.Lexeme)
	assert.Equal(5, synErr.Line)
}

func Test_Parse_FourMethodForms(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	src := `package org.example

interface Forms {
	method regular {
		in {
			Int32 a
		}
		out {
			Int32 b
		}
	}
	method oneWay fireAndForget {
		in {
			Int32 a
		}
	}
	broadcast notify {
		out {
			Int32 b
		}
	}
	broadcast filtered selective {
		in {
			Int32 a
		}
		out {
			Int32 b
		}
	}
}
`
	doc, err := Parse(src)
	require.NoError(err)
	iface := doc.Objects[0].(*ast.Interface)
	require.Len(iface.Members, 4)

	regular := iface.Members[0].(*ast.Method)
	assert.False(regular.IsFireAndForget)
	assert.NotNil(regular.Body.In)
	assert.NotNil(regular.Body.Out)

	fireAndForget := iface.Members[1].(*ast.Method)
	assert.True(fireAndForget.IsFireAndForget)
	assert.NotNil(fireAndForget.Body.In)
	assert.Nil(fireAndForget.Body.Out)

	broadcast := iface.Members[2].(*ast.BroadcastMethod)
	assert.False(broadcast.IsSelective)
	assert.Nil(broadcast.Body.In)
	assert.NotNil(broadcast.Body.Out)

	selective := iface.Members[3].(*ast.BroadcastMethod)
	assert.True(selective.IsSelective)
	assert.NotNil(selective.Body.In)
	assert.NotNil(selective.Body.Out)
}

func Test_Parse_ArrayMapUnionEnumTypedefAttribute(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	src := `package org.example

interface Everything {
	array Names of String
	map Lookup {
		Int32 to String
	}
	union Shape {
		Int32 circleRadius
		Int32 squareSide
	}
	enumeration Color {
		RED
		GREEN = 5
		BLUE = "blue"
	}
	typedef Alias is Int32
	attribute Int32 count
	version {
		major 1
		minor 2
	}
}
`
	doc, err := Parse(src)
	require.NoError(err)
	iface := doc.Objects[0].(*ast.Interface)
	require.Len(iface.Members, 7)

	arr := iface.Members[0].(*ast.ArrayTypeDeclaration)
	assert.Equal("Names", arr.Name.Name)
	assert.Equal(ast.TypenameBuiltin, arr.Element.Form)

	m := iface.Members[1].(*ast.Map)
	assert.Equal("Lookup", m.Name.Name)

	u := iface.Members[2].(*ast.Union)
	assert.Equal("Shape", u.Name.Name)

	en := iface.Members[3].(*ast.Enum)
	require.Len(en.Enumerators.Items, 3)
	assert.Nil(en.Enumerators.Items[0].Value)
	assert.NotNil(en.Enumerators.Items[1].Value)
	assert.NotNil(en.Enumerators.Items[2].Value)

	td := iface.Members[4].(*ast.Typedef)
	assert.Equal("Alias", td.Name.Name)
	assert.Equal(ast.TypenameBuiltin, td.Type.Form)

	attr := iface.Members[5].(*ast.Attribute)
	assert.Equal("count", attr.Name.Name)

	ver := iface.Members[6].(*ast.Version)
	assert.EqualValues(1, ver.Major)
	assert.EqualValues(2, ver.Minor)
}

func Test_Parse_ImplicitArrayTypename(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	src := `package org.example

interface Arrays {
	attribute Int32[] values
}
`
	doc, err := Parse(src)
	require.NoError(err)
	iface := doc.Objects[0].(*ast.Interface)
	attr := iface.Members[0].(*ast.Attribute)

	assert.Equal(ast.TypenameImplicitArray, attr.Type.Form)
	require.NotNil(attr.Type.Elem)
	assert.Equal(ast.TypenameBuiltin, attr.Type.Elem.Element.Form)
}

func Test_Parse_ListOrderPreserved(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	src := `package org.example

interface Order {
	struct S {
		Int32 first
		Int32 second
		Int32 third
	}
}
`
	doc, err := Parse(src)
	require.NoError(err)
	iface := doc.Objects[0].(*ast.Interface)
	st := iface.Members[0].(*ast.Struct)
	require.Len(st.Variables.Items, 3)
	assert.Equal("first", st.Variables.Items[0].Name.Name)
	assert.Equal("second", st.Variables.Items[1].Name.Name)
	assert.Equal("third", st.Variables.Items[2].Name.Name)
}

func Test_Parse_SyntaxErrorUnexpectedToken(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	src := `package org.example

interface Broken {
	method m {
		in {
			Int32 a
		}
	123
}
`
	_, err := Parse(src)
	require.Error(err)
	assert.Contains(err.Error(), "unexpected token")
}

func Test_Parse_SyntaxErrorUnexpectedEOF(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	src := `package org.example

interface Unterminated {
	method m {
		in {
			Int32 a
`
	_, err := Parse(src)
	require.Error(err)
	assert.Equal("unexpected EOF", err.Error())

	var synErr *SyntaxError
	require.ErrorAs(err, &synErr)
	assert.Empty(synErr.Lexeme)
}

func Test_Parse_SyntaxErrorAsTypedSyntaxError(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	src := `package org.example

interface Broken {
	method m {
		in {
			Int32 a
		}
	123
}
`
	_, err := Parse(src)
	require.Error(err)

	var synErr *SyntaxError
	require.True(errors.As(err, &synErr))
	assert.Equal("123", synErr.Lexeme)
	assert.Positive(synErr.Line)
}

// A lexical error -- an unrecognized character -- must not abort parsing:
// the lexer skips it and resumes, and Parse still returns a valid document
// so long as the rest of the token stream parses cleanly.
func Test_Parse_LexicalErrorDoesNotAbortParsing(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	src := "package org.example\x01\n\ninterface Basic {\n\tmethod ping {\n\t\tout {\n\t\t\tBoolean ok\n\t\t}\n\t}\n}\n"

	doc, err := Parse(src)
	require.NoError(err)
	require.NotNil(doc)
	assert.Equal("org.example", doc.Package.Identifier.Name)
}

func Test_Parse_Deterministic(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	src := `package org.example

interface Basic {
	method ping {
		out {
			Boolean ok
		}
	}
}
`
	doc1, err := Parse(src)
	require.NoError(err)
	doc2, err := Parse(src)
	require.NoError(err)

	assert.Equal(ast.Show(doc1, ast.ShowOptions{AttrNames: true}), ast.Show(doc2, ast.ShowOptions{AttrNames: true}))
}
