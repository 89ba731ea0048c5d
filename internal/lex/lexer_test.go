package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lexAll(t *testing.T, input string) ([]Token, []string) {
	t.Helper()
	var errs []string
	l := New(func(msg string, line, col int) {
		errs = append(errs, msg)
	})
	l.Build()
	l.SetInput(input)

	var tokens []Token
	for {
		tok := l.Token()
		if tok.Kind == EndOfText {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, errs
}

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func Test_Lex_KeywordsAndIdentifiers(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []Kind
	}{
		{"package keyword", "package", []Kind{KwPackage}},
		{"typeCollection keyword", "typeCollection", []Kind{KwTypeCollection}},
		{"builtin type keyword", "UInt64", []Kind{KwUInt64}},
		{"plain identifier", "Position", []Kind{ID}},
		{"identifier with digits and underscore", "foo_Bar2", []Kind{ID}},
		{"keyword-prefixed identifier is still an identifier", "packageName", []Kind{ID}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			tokens, errs := lexAll(t, tc.input)
			assert.Empty(errs)
			assert.Equal(tc.expect, kinds(tokens))
		})
	}
}

func Test_Lex_IntegerLiterals(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect Kind
	}{
		{"decimal", "42", IntConstDec},
		{"lone zero is octal", "0", IntConstOct},
		{"octal", "0755", IntConstOct},
		{"hex", "0xFF", IntConstHex},
		{"hex lowercase", "0xabc", IntConstHex},
		{"binary", "0b1010", IntConstBin},
		{"decimal with unsigned suffix", "42u", IntConstDec},
		{"decimal with long suffix", "42L", IntConstDec},
		{"hex with suffix", "0x1Fu", IntConstHex},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			tokens, errs := lexAll(t, tc.input)
			assert.Empty(errs)
			if assert.Len(tokens, 1) {
				assert.Equal(tc.expect, tokens[0].Kind)
				assert.Equal(tc.input, tokens[0].Lexeme)
			}
		})
	}
}

func Test_Lex_FloatLiterals(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect Kind
	}{
		{"simple decimal float", "3.14", FloatConst},
		{"exponent only", "1e10", FloatConst},
		{"trailing dot", "2.", FloatConst},
		{"hex float", "0x1.8p3", HexFloatConst},
		{"hex float no fraction", "0x1p4", HexFloatConst},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			tokens, errs := lexAll(t, tc.input)
			assert.Empty(errs)
			if assert.Len(tokens, 1) {
				assert.Equal(tc.expect, tokens[0].Kind)
			}
		})
	}
}

func Test_Lex_HexFloatVsHexInt(t *testing.T) {
	assert := assert.New(t)

	tokens, errs := lexAll(t, "0x10")
	assert.Empty(errs)
	if assert.Len(tokens, 1) {
		assert.Equal(IntConstHex, tokens[0].Kind)
	}

	tokens, errs = lexAll(t, "0x10p2")
	assert.Empty(errs)
	if assert.Len(tokens, 1) {
		assert.Equal(HexFloatConst, tokens[0].Kind)
	}
}

func Test_Lex_StringLiteral(t *testing.T) {
	assert := assert.New(t)
	tokens, errs := lexAll(t, `"hello world"`)
	assert.Empty(errs)
	if assert.Len(tokens, 1) {
		assert.Equal(StringLiteral, tokens[0].Kind)
		assert.Equal(`"hello world"`, tokens[0].Lexeme)
	}
}

func Test_Lex_FrancaCommentPreserved(t *testing.T) {
	assert := assert.New(t)
	tokens, errs := lexAll(t, "<** a doc comment **> interface")
	assert.Empty(errs)
	if assert.Len(tokens, 2) {
		assert.Equal(FrancaComment, tokens[0].Kind)
		assert.Equal(KwInterface, tokens[1].Kind)
	}
}

func Test_Lex_CCommentsDiscarded(t *testing.T) {
	assert := assert.New(t)
	tokens, errs := lexAll(t, "/* a block comment */ package // line comment\nfoo")
	assert.Empty(errs)
	assert.Equal([]Kind{KwPackage, ID}, kinds(tokens))
}

func Test_Lex_Operators(t *testing.T) {
	assert := assert.New(t)
	tokens, errs := lexAll(t, "<<= >>= <= >= == != && || <<")
	assert.Empty(errs)
	assert.Equal([]Kind{
		LShiftAssign, RShiftAssign, Le, Ge, EqEq, NotEq, AmpAmp, PipePipe, LShift,
	}, kinds(tokens))
}

func Test_Lex_IllegalCharacterSkipsOneAndResumes(t *testing.T) {
	assert := assert.New(t)
	tokens, errs := lexAll(t, "package`foo")
	if assert.Len(errs, 1) {
		assert.Contains(errs[0], "`")
	}
	assert.Equal([]Kind{KwPackage, ID}, kinds(tokens))
}

func Test_Lex_LineTracking(t *testing.T) {
	assert := assert.New(t)
	tokens, _ := lexAll(t, "package\nfoo")
	if assert.Len(tokens, 2) {
		assert.Equal(1, tokens[0].Line)
		assert.Equal(2, tokens[1].Line)
	}
}
