package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ilehmann/francaidl/internal/lex"
)

func tok(kind lex.Kind, lexeme string, line int) lex.Token {
	return lex.Token{Kind: kind, Lexeme: lexeme, Line: line}
}

func Test_Show_LeafNode(t *testing.T) {
	assert := assert.New(t)

	id := NewID(tok(lex.ID, "Position", 3), "Position")
	out := Show(id, ShowOptions{})

	assert.Equal("ID: Position\n", out)
}

func Test_Show_AttrNamesToggle(t *testing.T) {
	assert := assert.New(t)

	id := NewID(tok(lex.ID, "Position", 1), "Position")

	withNames := Show(id, ShowOptions{AttrNames: true})
	assert.Equal("ID: id=Position\n", withNames)

	withoutNames := Show(id, ShowOptions{AttrNames: false})
	assert.Equal("ID: Position\n", withoutNames)
}

func Test_Show_Coord(t *testing.T) {
	assert := assert.New(t)

	id := NewID(tok(lex.ID, "Position", 7), "Position")
	out := Show(id, ShowOptions{ShowCoord: true})

	assert.Equal("ID: Position (at line 7)\n", out)
}

func Test_Show_NodeNamesAndIndentation(t *testing.T) {
	assert := assert.New(t)

	name := NewID(tok(lex.ID, "Speed", 2), "Speed")
	typ := NewBuiltinTypename(tok(lex.KwUInt32, "UInt32", 2), "UInt32")
	attr := NewAttribute(tok(lex.KwAttribute, "attribute", 2), typ, name)

	out := Show(attr, ShowOptions{NodeNames: true})

	expect := "Attribute: \n" +
		"  Typename <type>: UInt32\n" +
		"  ID <name>: Speed\n"
	assert.Equal(expect, out)
}

func Test_Show_OmitsAbsentOptionalChildren(t *testing.T) {
	assert := assert.New(t)

	name := NewID(tok(lex.ID, "Color", 1), "Color")
	enumerators := NewEnumeratorList(tok(lex.LBrace, "{", 1), []*Enumerator{
		NewEnumerator(tok(lex.ID, "RED", 1), NewID(tok(lex.ID, "RED", 1), "RED"), nil, nil),
	})
	enum := NewEnum(tok(lex.KwEnumeration, "enumeration", 1), name, nil, enumerators)

	out := Show(enum, ShowOptions{})

	expect := "Enum: \n" +
		"  ID: Color\n" +
		"  EnumeratorList: \n" +
		"    Enumerator: \n" +
		"      ID: RED\n"
	assert.Equal(expect, out)
}

func Test_Show_Deterministic(t *testing.T) {
	assert := assert.New(t)

	build := func() Node {
		name := NewID(tok(lex.ID, "Color", 1), "Color")
		enumerators := NewEnumeratorList(tok(lex.LBrace, "{", 1), []*Enumerator{
			NewEnumerator(tok(lex.ID, "RED", 1), NewID(tok(lex.ID, "RED", 1), "RED"), nil, nil),
			NewEnumerator(tok(lex.ID, "GREEN", 2), NewID(tok(lex.ID, "GREEN", 2), "GREEN"), nil, nil),
		})
		return NewEnum(tok(lex.KwEnumeration, "enumeration", 1), name, nil, enumerators)
	}

	first := Show(build(), ShowOptions{AttrNames: true, NodeNames: true, ShowCoord: true})
	second := Show(build(), ShowOptions{AttrNames: true, NodeNames: true, ShowCoord: true})
	assert.Equal(first, second)
}

func Test_Kind_String_UnknownOutOfRange(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("UNKNOWN", Kind(-1).String())
	assert.Equal("UNKNOWN", Kind(len(kindNames)+1).String())
}
