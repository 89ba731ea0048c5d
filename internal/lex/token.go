// Package lex implements the Franca IDL lexer: a single-state, regex- and
// literal-table-driven tokenizer adapted from the class/Action registration
// style of github.com/dekarrin/tunaq's internal/ictiobus/lex package, scoped
// down from that package's multi-state generic machine to the single start
// state and fixed token set Franca IDL actually needs.
package lex

// Kind identifies the class of a Token. The set is closed; every lexeme this
// package recognizes maps to exactly one Kind.
type Kind int

const (
	// EndOfText is returned once, after the final real token, and on every
	// subsequent call to Token.
	EndOfText Kind = iota

	// Keywords (case-sensitive, matched whole).
	KwImport
	KwFrom
	KwVersion
	KwMajor
	KwMinor
	KwPackage
	KwInterface
	KwTypeCollection
	KwMethod
	KwBroadcast
	KwSelective
	KwFireAndForget
	KwIn
	KwOut
	KwAttribute
	KwEnumeration
	KwStruct
	KwUnion
	KwMap
	KwTypedef
	KwIs
	KwTo
	KwArray
	KwOf
	KwConst
	KwExtends
	KwPolymorphic
	KwTrue
	KwFalse

	// Built-in type keywords.
	KwInteger
	KwInt8
	KwInt16
	KwInt32
	KwInt64
	KwUInt8
	KwUInt16
	KwUInt32
	KwUInt64
	KwBoolean
	KwFloat
	KwDouble
	KwString
	KwByteBuffer

	// Identifier.
	ID

	// Comments. CComment never escapes the lexer: C-style comments are
	// discarded while scanning and no Token of this Kind is returned.
	CComment
	FrancaComment

	// String literal.
	StringLiteral

	// Integer constants, one Kind per radix.
	IntConstDec
	IntConstOct
	IntConstHex
	IntConstBin

	// Floating constants.
	FloatConst
	HexFloatConst

	// Operators.
	Plus
	Minus
	Star
	Slash
	Percent
	Pipe
	Amp
	Tilde
	Caret
	LShift
	RShift
	PipePipe
	AmpAmp
	Bang
	Lt
	Gt
	Le
	Ge
	EqEq
	NotEq

	// Assignment operators.
	Assign
	StarAssign
	SlashAssign
	PercentAssign
	PlusAssign
	MinusAssign
	LShiftAssign
	RShiftAssign
	AmpAssign
	PipeAssign
	CaretAssign

	// Increment/decrement.
	PlusPlus
	MinusMinus

	// Conditional operator.
	Question

	// Delimiters.
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Comma
	Period
	Semi
	Colon
)

var kindNames = map[Kind]string{
	EndOfText:        "EOF",
	KwImport:         "import",
	KwFrom:           "from",
	KwVersion:        "version",
	KwMajor:          "major",
	KwMinor:          "minor",
	KwPackage:        "package",
	KwInterface:      "interface",
	KwTypeCollection: "typeCollection",
	KwMethod:         "method",
	KwBroadcast:      "broadcast",
	KwSelective:      "selective",
	KwFireAndForget:  "fireAndForget",
	KwIn:             "in",
	KwOut:            "out",
	KwAttribute:      "attribute",
	KwEnumeration:    "enumeration",
	KwStruct:         "struct",
	KwUnion:          "union",
	KwMap:            "map",
	KwTypedef:        "typedef",
	KwIs:             "is",
	KwTo:             "to",
	KwArray:          "array",
	KwOf:             "of",
	KwConst:          "const",
	KwExtends:        "extends",
	KwPolymorphic:    "polymorphic",
	KwTrue:           "true",
	KwFalse:          "false",
	KwInteger:        "Integer",
	KwInt8:           "Int8",
	KwInt16:          "Int16",
	KwInt32:          "Int32",
	KwInt64:          "Int64",
	KwUInt8:          "UInt8",
	KwUInt16:         "UInt16",
	KwUInt32:         "UInt32",
	KwUInt64:         "UInt64",
	KwBoolean:        "Boolean",
	KwFloat:          "Float",
	KwDouble:         "Double",
	KwString:         "String",
	KwByteBuffer:     "ByteBuffer",
	ID:               "ID",
	CComment:         "C_COMMENT",
	FrancaComment:    "FRANCA_COMMENT",
	StringLiteral:    "STRING_LITERAL",
	IntConstDec:      "INT_CONST_DEC",
	IntConstOct:      "INT_CONST_OCT",
	IntConstHex:      "INT_CONST_HEX",
	IntConstBin:      "INT_CONST_BIN",
	FloatConst:       "FLOAT_CONST",
	HexFloatConst:    "HEX_FLOAT_CONST",
	Plus:             "+",
	Minus:            "-",
	Star:             "*",
	Slash:            "/",
	Percent:          "%",
	Pipe:             "|",
	Amp:              "&",
	Tilde:            "~",
	Caret:            "^",
	LShift:           "<<",
	RShift:           ">>",
	PipePipe:         "||",
	AmpAmp:           "&&",
	Bang:             "!",
	Lt:               "<",
	Gt:               ">",
	Le:               "<=",
	Ge:               ">=",
	EqEq:             "==",
	NotEq:            "!=",
	Assign:           "=",
	StarAssign:       "*=",
	SlashAssign:      "/=",
	PercentAssign:    "%=",
	PlusAssign:       "+=",
	MinusAssign:      "-=",
	LShiftAssign:     "<<=",
	RShiftAssign:     ">>=",
	AmpAssign:        "&=",
	PipeAssign:       "|=",
	CaretAssign:      "^=",
	PlusPlus:         "++",
	MinusMinus:       "--",
	Question:         "?",
	LParen:           "(",
	RParen:           ")",
	LBracket:         "[",
	RBracket:         "]",
	LBrace:           "{",
	RBrace:           "}",
	Comma:            ",",
	Period:           ".",
	Semi:             ";",
	Colon:            ":",
}

// String returns the human-readable name of a Kind, e.g. "STRING_LITERAL" or
// "package". Used in diagnostics; never parsed back.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// keywords maps exact lexemes to their reserved Kind. Consulted only after
// the identifier pattern matches, per the lexer's ordering rule.
var keywords = map[string]Kind{
	"import":         KwImport,
	"from":           KwFrom,
	"version":        KwVersion,
	"major":          KwMajor,
	"minor":          KwMinor,
	"package":        KwPackage,
	"interface":      KwInterface,
	"typeCollection": KwTypeCollection,
	"method":         KwMethod,
	"broadcast":      KwBroadcast,
	"selective":      KwSelective,
	"fireAndForget":  KwFireAndForget,
	"in":             KwIn,
	"out":            KwOut,
	"attribute":      KwAttribute,
	"enumeration":    KwEnumeration,
	"struct":         KwStruct,
	"union":          KwUnion,
	"map":            KwMap,
	"typedef":        KwTypedef,
	"is":             KwIs,
	"to":             KwTo,
	"array":          KwArray,
	"of":             KwOf,
	"const":          KwConst,
	"extends":        KwExtends,
	"polymorphic":    KwPolymorphic,
	"true":           KwTrue,
	"false":          KwFalse,
	"Integer":        KwInteger,
	"Int8":           KwInt8,
	"Int16":          KwInt16,
	"Int32":          KwInt32,
	"Int64":          KwInt64,
	"UInt8":          KwUInt8,
	"UInt16":         KwUInt16,
	"UInt32":         KwUInt32,
	"UInt64":         KwUInt64,
	"Boolean":        KwBoolean,
	"Float":          KwFloat,
	"Double":         KwDouble,
	"String":         KwString,
	"ByteBuffer":     KwByteBuffer,
}

// BuiltinTypeKinds is the set of Kinds that name a built-in Franca type, used
// by the parser to recognize a typename without needing its own keyword
// list.
var BuiltinTypeKinds = map[Kind]bool{
	KwInteger:    true,
	KwInt8:       true,
	KwInt16:      true,
	KwInt32:      true,
	KwInt64:      true,
	KwUInt8:      true,
	KwUInt16:     true,
	KwUInt32:     true,
	KwUInt64:     true,
	KwBoolean:    true,
	KwString:     true,
	KwFloat:      true,
	KwDouble:     true,
	KwByteBuffer: true,
}

// Token is a single lexed unit: its Kind, its original source text, and the
// 1-based line it started on.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}
