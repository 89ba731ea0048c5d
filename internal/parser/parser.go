// Package parser implements a hand-written recursive-descent parser for
// Franca IDL, grounded production-by-production on
// _examples/original_source/franca_parser/franca_parser/franca_parser.py.
// The grammar's only real ambiguity -- disambiguating the four method and
// broadcast forms -- is resolved with up to two tokens of lookahead; nothing
// else in the grammar needs backtracking, so a table-driven LALR parser
// (the kind internal/ictiobus/grammar and internal/ictiobus/parse build) was
// not warranted here.
package parser

import (
	"strconv"
	"strings"

	"github.com/ilehmann/francaidl/internal/ast"
	"github.com/ilehmann/francaidl/internal/fidlerr"
	"github.com/ilehmann/francaidl/internal/lex"
)

// Parser holds a fully tokenized Franca IDL document and a read position
// into it. The whole token stream is buffered up front, matching the
// in-memory, non-streaming contract of package lex.
type Parser struct {
	tokens []lex.Token
	pos    int
}

// New wraps an already-tokenized stream. Exported so callers that need their
// own lexical error handling can drive lex.Lexer themselves and hand the
// resulting tokens to the parser directly.
func New(tokens []lex.Token) *Parser {
	if len(tokens) == 0 {
		tokens = []lex.Token{{Kind: lex.EndOfText}}
	}
	return &Parser{tokens: tokens}
}

// Parse tokenizes text and parses it as a single Franca IDL document. A
// lexical error (an unrecognized character) is reported through the
// lexer's default error callback (lex.DefaultErrorFunc) and does not abort
// anything: the lexer skips the offending rune and resumes, exactly as
// franca_lexer.py's t_error does, and Parse goes on to parse whatever token
// stream results. Parse fails only when that token stream is not itself a
// syntactically valid document.
func Parse(text string) (*ast.Document, error) {
	lexer := lex.New(nil)
	lexer.Build()
	lexer.SetInput(text)

	var tokens []lex.Token
	for {
		t := lexer.Token()
		tokens = append(tokens, t)
		if t.Kind == lex.EndOfText {
			break
		}
	}

	p := New(tokens)
	return p.ParseDocument()
}

func (p *Parser) cur() lex.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek(n int) lex.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		idx = len(p.tokens) - 1
	}
	return p.tokens[idx]
}

func (p *Parser) advance() lex.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) expect(kind lex.Kind) (lex.Token, error) {
	if p.cur().Kind != kind {
		return lex.Token{}, p.unexpected()
	}
	return p.advance(), nil
}

// SyntaxError is the error Parse returns once it hits the first unexpected
// token. It embeds the fidlerr wrapped-error shape for its Error() string
// and adds the structured Line/Lexeme a caller can recover with errors.As
// instead of string-matching Error()'s text. Lexeme is empty for the
// unexpected-EOF case, the lexer's EndOfText token never carrying one.
type SyntaxError struct {
	error
	Line   int
	Lexeme string
}

func newUnexpectedTokenError(line int, lexeme string) *SyntaxError {
	return &SyntaxError{
		error:  fidlerr.Syntaxf("line %d: unexpected token %s", line, lexeme),
		Line:   line,
		Lexeme: lexeme,
	}
}

func newUnexpectedEOFError(line int) *SyntaxError {
	return &SyntaxError{
		error: fidlerr.Syntax("unexpected EOF"),
		Line:  line,
	}
}

// unexpected builds the syntax error for whatever token is current, per the
// two required forms: "line L: unexpected token T" and "unexpected EOF".
func (p *Parser) unexpected() error {
	t := p.cur()
	if t.Kind == lex.EndOfText {
		return newUnexpectedEOFError(t.Line)
	}
	return newUnexpectedTokenError(t.Line, t.Lexeme)
}

// ParseDocument parses "package_statement import_statement* root_level_object+".
func (p *Parser) ParseDocument() (*ast.Document, error) {
	startTok := p.cur()

	pkg, err := p.parsePackageStatement()
	if err != nil {
		return nil, err
	}

	var imports []*ast.ImportStatement
	for p.cur().Kind == lex.KwImport {
		imp, err := p.parseImportStatement()
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}

	var objects []ast.Node
	for p.atRootLevelObject() {
		obj, err := p.parseRootLevelObject()
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	if len(objects) == 0 {
		return nil, p.unexpected()
	}
	if p.cur().Kind != lex.EndOfText {
		return nil, p.unexpected()
	}

	return ast.NewDocument(startTok, pkg, imports, objects), nil
}

func (p *Parser) atRootLevelObject() bool {
	switch p.cur().Kind {
	case lex.KwInterface, lex.KwTypeCollection:
		return true
	case lex.FrancaComment:
		switch p.peek(1).Kind {
		case lex.KwInterface, lex.KwTypeCollection:
			return true
		}
	}
	return false
}

func (p *Parser) parseRootLevelObject() (ast.Node, error) {
	startTok := p.cur()

	var comment *ast.FrancaComment
	if p.cur().Kind == lex.FrancaComment {
		c, err := p.parseFrancaComment()
		if err != nil {
			return nil, err
		}
		comment = c
	}

	switch p.cur().Kind {
	case lex.KwInterface:
		return p.parseInterface(startTok, comment)
	case lex.KwTypeCollection:
		return p.parseTypeCollection(startTok, comment)
	default:
		return nil, p.unexpected()
	}
}

func (p *Parser) parsePackageStatement() (*ast.PackageStatement, error) {
	startTok := p.cur()
	if _, err := p.expect(lex.KwPackage); err != nil {
		return nil, err
	}
	id, err := p.parsePackageIdentifier()
	if err != nil {
		return nil, err
	}
	return ast.NewPackageStatement(startTok, id), nil
}

func (p *Parser) parsePackageIdentifier() (*ast.PackageIdentifier, error) {
	startTok, err := p.expect(lex.ID)
	if err != nil {
		return nil, err
	}
	name := startTok.Lexeme
	for p.cur().Kind == lex.Period {
		p.advance()
		seg, err := p.expect(lex.ID)
		if err != nil {
			return nil, err
		}
		name += "." + seg.Lexeme
	}
	return ast.NewPackageIdentifier(startTok, name), nil
}

func (p *Parser) parseImportStatement() (*ast.ImportStatement, error) {
	startTok, err := p.expect(lex.KwImport)
	if err != nil {
		return nil, err
	}
	id, err := p.parseImportIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.KwFrom); err != nil {
		return nil, err
	}
	src, err := p.parseString()
	if err != nil {
		return nil, err
	}
	return ast.NewImportStatement(startTok, id, src), nil
}

func (p *Parser) parseImportIdentifier() (*ast.ImportIdentifier, error) {
	startTok := p.cur()
	var name string
	switch startTok.Kind {
	case lex.Star:
		p.advance()
		name = "*"
	case lex.ID:
		p.advance()
		name = startTok.Lexeme
	default:
		return nil, p.unexpected()
	}
	for p.cur().Kind == lex.Period {
		p.advance()
		seg := p.cur()
		switch seg.Kind {
		case lex.ID:
			p.advance()
			name += "." + seg.Lexeme
		case lex.Star:
			p.advance()
			name += ".*"
		default:
			return nil, p.unexpected()
		}
	}
	return ast.NewImportIdentifier(startTok, name), nil
}

func (p *Parser) parseFrancaComment() (*ast.FrancaComment, error) {
	tok, err := p.expect(lex.FrancaComment)
	if err != nil {
		return nil, err
	}
	return ast.NewFrancaComment(tok, tok.Lexeme), nil
}

func (p *Parser) parseIdentifier() (*ast.ID, error) {
	tok, err := p.expect(lex.ID)
	if err != nil {
		return nil, err
	}
	return ast.NewID(tok, tok.Lexeme), nil
}

func (p *Parser) parseString() (*ast.String, error) {
	tok, err := p.expect(lex.StringLiteral)
	if err != nil {
		return nil, err
	}
	return ast.NewString(tok, tok.Lexeme), nil
}

var constIntKinds = map[lex.Kind]bool{
	lex.IntConstDec: true,
	lex.IntConstOct: true,
	lex.IntConstHex: true,
	lex.IntConstBin: true,
}

func (p *Parser) parseConstInt() (*ast.IntegerConstant, error) {
	tok := p.cur()
	if !constIntKinds[tok.Kind] {
		return nil, p.unexpected()
	}
	p.advance()
	return ast.NewIntegerConstant(tok, tok.Lexeme), nil
}

// ---- interface / type collection bodies -----------------------------------

func (p *Parser) parseInterface(startTok lex.Token, comment *ast.FrancaComment) (*ast.Interface, error) {
	if _, err := p.expect(lex.KwInterface); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.LBrace); err != nil {
		return nil, err
	}
	members, err := p.parseComplexTypeDeclarationList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.RBrace); err != nil {
		return nil, err
	}
	return ast.NewInterface(startTok, name, comment, members), nil
}

func (p *Parser) parseTypeCollection(startTok lex.Token, comment *ast.FrancaComment) (*ast.TypeCollection, error) {
	if _, err := p.expect(lex.KwTypeCollection); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.LBrace); err != nil {
		return nil, err
	}
	members, err := p.parseComplexTypeDeclarationList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.RBrace); err != nil {
		return nil, err
	}
	return ast.NewTypeCollection(startTok, name, comment, members), nil
}

func (p *Parser) parseComplexTypeDeclarationList() ([]ast.Node, error) {
	var items []ast.Node
	for p.cur().Kind != lex.RBrace && p.cur().Kind != lex.EndOfText {
		item, err := p.parseComplexTypeDeclaration()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, p.unexpected()
	}
	return items, nil
}

// parseComplexTypeDeclaration dispatches on the ten complex_type_declaration
// alternatives. A leading FrancaComment is always consumed first, mirroring
// parseRootLevelObject, so that a comment misattached to one of the four
// productions that don't admit one (attribute/version/array/typedef) is
// reported against the following keyword token, not against the comment
// itself: the keyword is what p.cur() names once the comment is behind us.
func (p *Parser) parseComplexTypeDeclaration() (ast.Node, error) {
	startTok := p.cur()

	var comment *ast.FrancaComment
	if p.cur().Kind == lex.FrancaComment {
		c, err := p.parseFrancaComment()
		if err != nil {
			return nil, err
		}
		comment = c
	}

	switch p.cur().Kind {
	case lex.KwEnumeration:
		return p.parseEnum(startTok, comment)
	case lex.KwStruct:
		return p.parseStruct(startTok, comment)
	case lex.KwMap:
		return p.parseMap(startTok, comment)
	case lex.KwUnion:
		return p.parseUnion(startTok, comment)
	case lex.KwMethod:
		return p.parseMethod(startTok, comment)
	case lex.KwBroadcast:
		return p.parseBroadcast(startTok, comment)
	case lex.KwAttribute:
		if comment != nil {
			return nil, p.unexpected()
		}
		return p.parseAttribute(startTok)
	case lex.KwVersion:
		if comment != nil {
			return nil, p.unexpected()
		}
		return p.parseVersion(startTok)
	case lex.KwArray:
		if comment != nil {
			return nil, p.unexpected()
		}
		return p.parseExplicitArrayTypeDeclaration(startTok)
	case lex.KwTypedef:
		if comment != nil {
			return nil, p.unexpected()
		}
		return p.parseTypedef(startTok)
	default:
		return nil, p.unexpected()
	}
}

func (p *Parser) parseEnum(startTok lex.Token, comment *ast.FrancaComment) (*ast.Enum, error) {
	if _, err := p.expect(lex.KwEnumeration); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.LBrace); err != nil {
		return nil, err
	}
	list, err := p.parseEnumeratorList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.RBrace); err != nil {
		return nil, err
	}
	return ast.NewEnum(startTok, name, comment, list), nil
}

func (p *Parser) parseEnumeratorList() (*ast.EnumeratorList, error) {
	startTok := p.cur()
	var items []*ast.Enumerator
	for p.cur().Kind != lex.RBrace && p.cur().Kind != lex.EndOfText {
		item, err := p.parseEnumerator()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, p.unexpected()
	}
	return ast.NewEnumeratorList(startTok, items), nil
}

func (p *Parser) parseEnumerator() (*ast.Enumerator, error) {
	startTok := p.cur()
	var comment *ast.FrancaComment
	if p.cur().Kind == lex.FrancaComment {
		c, err := p.parseFrancaComment()
		if err != nil {
			return nil, err
		}
		comment = c
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	var value ast.Node
	if p.cur().Kind == lex.Assign {
		p.advance()
		switch {
		case constIntKinds[p.cur().Kind]:
			v, err := p.parseConstInt()
			if err != nil {
				return nil, err
			}
			value = v
		case p.cur().Kind == lex.StringLiteral:
			v, err := p.parseString()
			if err != nil {
				return nil, err
			}
			value = v
		default:
			return nil, p.unexpected()
		}
	}
	return ast.NewEnumerator(startTok, name, value, comment), nil
}

func (p *Parser) parseStruct(startTok lex.Token, comment *ast.FrancaComment) (*ast.Struct, error) {
	if _, err := p.expect(lex.KwStruct); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.LBrace); err != nil {
		return nil, err
	}
	vars, err := p.parseVariableList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.RBrace); err != nil {
		return nil, err
	}
	return ast.NewStruct(startTok, name, comment, vars), nil
}

func (p *Parser) parseUnion(startTok lex.Token, comment *ast.FrancaComment) (*ast.Union, error) {
	if _, err := p.expect(lex.KwUnion); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.LBrace); err != nil {
		return nil, err
	}
	vars, err := p.parseVariableList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.RBrace); err != nil {
		return nil, err
	}
	return ast.NewUnion(startTok, name, comment, vars), nil
}

func (p *Parser) parseVariableList() (*ast.VariableList, error) {
	startTok := p.cur()
	var items []*ast.Variable
	for p.cur().Kind != lex.RBrace && p.cur().Kind != lex.EndOfText {
		item, err := p.parseVariable()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, p.unexpected()
	}
	return ast.NewVariableList(startTok, items), nil
}

func (p *Parser) parseVariable() (*ast.Variable, error) {
	startTok := p.cur()
	var comment *ast.FrancaComment
	if p.cur().Kind == lex.FrancaComment {
		c, err := p.parseFrancaComment()
		if err != nil {
			return nil, err
		}
		comment = c
	}
	typ, err := p.parseTypename()
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	return ast.NewVariable(startTok, typ, name, comment), nil
}

func (p *Parser) parseMap(startTok lex.Token, comment *ast.FrancaComment) (*ast.Map, error) {
	if _, err := p.expect(lex.KwMap); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.LBrace); err != nil {
		return nil, err
	}
	keyType, err := p.parseTypename()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.KwTo); err != nil {
		return nil, err
	}
	valueType, err := p.parseTypename()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.RBrace); err != nil {
		return nil, err
	}
	return ast.NewMap(startTok, name, comment, keyType, valueType), nil
}

func (p *Parser) parseAttribute(startTok lex.Token) (*ast.Attribute, error) {
	if _, err := p.expect(lex.KwAttribute); err != nil {
		return nil, err
	}
	typ, err := p.parseTypename()
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	return ast.NewAttribute(startTok, typ, name), nil
}

func (p *Parser) parseVersion(startTok lex.Token) (*ast.Version, error) {
	if _, err := p.expect(lex.KwVersion); err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.LBrace); err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.KwMajor); err != nil {
		return nil, err
	}
	majorTok, err := p.expect2ConstInt()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.KwMinor); err != nil {
		return nil, err
	}
	minorTok, err := p.expect2ConstInt()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.RBrace); err != nil {
		return nil, err
	}
	major, err := parseIntLiteral(majorTok.Lexeme)
	if err != nil {
		return nil, fidlerr.WrapSyntax("invalid version major value", err)
	}
	minor, err := parseIntLiteral(minorTok.Lexeme)
	if err != nil {
		return nil, fidlerr.WrapSyntax("invalid version minor value", err)
	}
	return ast.NewVersion(startTok, major, minor), nil
}

// expect2ConstInt consumes one of the four integer-literal kinds without
// building an IntegerConstant node, since Version stores numeric values
// directly rather than nesting AST leaves.
func (p *Parser) expect2ConstInt() (lex.Token, error) {
	tok := p.cur()
	if !constIntKinds[tok.Kind] {
		return lex.Token{}, p.unexpected()
	}
	p.advance()
	return tok, nil
}

func (p *Parser) parseExplicitArrayTypeDeclaration(startTok lex.Token) (*ast.ArrayTypeDeclaration, error) {
	if _, err := p.expect(lex.KwArray); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.KwOf); err != nil {
		return nil, err
	}
	elem, err := p.parseTypename()
	if err != nil {
		return nil, err
	}
	return ast.NewArrayTypeDeclaration(startTok, name, elem, 1), nil
}

func (p *Parser) parseTypedef(startTok lex.Token) (*ast.Typedef, error) {
	if _, err := p.expect(lex.KwTypedef); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.KwIs); err != nil {
		return nil, err
	}
	typ, err := p.parseTypename()
	if err != nil {
		return nil, err
	}
	return ast.NewTypedef(startTok, name, typ), nil
}

// parseTypename parses the three typename forms: a raw identifier, a
// built-in type keyword, or an implicit array ("T[]", possibly nested as
// "T[][]"). The trailing "[]" loop is what lets the otherwise mutually
// recursive typename/implicit_array_type_declaration productions be handled
// without backtracking.
func (p *Parser) parseTypename() (*ast.Typename, error) {
	startTok := p.cur()
	var tn *ast.Typename
	switch {
	case lex.BuiltinTypeKinds[startTok.Kind]:
		p.advance()
		tn = ast.NewBuiltinTypename(startTok, startTok.Lexeme)
	case startTok.Kind == lex.ID:
		p.advance()
		tn = ast.NewUserTypename(startTok, startTok.Lexeme)
	default:
		return nil, p.unexpected()
	}

	for p.cur().Kind == lex.LBracket && p.peek(1).Kind == lex.RBracket {
		lb := p.advance()
		p.advance() // RBracket
		arr := ast.NewArrayTypeDeclaration(lb, nil, tn, 1)
		tn = ast.NewImplicitArrayTypename(lb, arr)
	}
	return tn, nil
}

// ---- methods and broadcasts -------------------------------------------

func (p *Parser) parseMethod(startTok lex.Token, comment *ast.FrancaComment) (*ast.Method, error) {
	if _, err := p.expect(lex.KwMethod); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	switch p.cur().Kind {
	case lex.KwFireAndForget:
		p.advance()
		if _, err := p.expect(lex.LBrace); err != nil {
			return nil, err
		}
		in, err := p.parseMethodInArguments()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.RBrace); err != nil {
			return nil, err
		}
		body := ast.NewMethodBody(in.Source(), in, nil)
		return ast.NewMethod(startTok, name, comment, body, true), nil

	case lex.LBrace:
		p.advance()
		body, err := p.parseMethodBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.RBrace); err != nil {
			return nil, err
		}
		return ast.NewMethod(startTok, name, comment, body, false), nil

	default:
		return nil, p.unexpected()
	}
}

func (p *Parser) parseBroadcast(startTok lex.Token, comment *ast.FrancaComment) (*ast.BroadcastMethod, error) {
	if _, err := p.expect(lex.KwBroadcast); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	switch p.cur().Kind {
	case lex.KwSelective:
		p.advance()
		if _, err := p.expect(lex.LBrace); err != nil {
			return nil, err
		}
		body, err := p.parseMethodBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.RBrace); err != nil {
			return nil, err
		}
		return ast.NewBroadcastMethod(startTok, name, comment, body, true), nil

	case lex.LBrace:
		p.advance()
		out, err := p.parseMethodOutArguments()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.RBrace); err != nil {
			return nil, err
		}
		body := ast.NewMethodBody(out.Source(), nil, out)
		return ast.NewBroadcastMethod(startTok, name, comment, body, false), nil

	default:
		return nil, p.unexpected()
	}
}

// parseMethodBody handles both argument orderings the grammar allows: "in"
// alone or followed by "out", and "out" alone or followed by "in".
func (p *Parser) parseMethodBody() (*ast.MethodBody, error) {
	switch p.cur().Kind {
	case lex.KwIn:
		in, err := p.parseMethodInArguments()
		if err != nil {
			return nil, err
		}
		var out *ast.MethodOutArguments
		if p.cur().Kind == lex.KwOut {
			out, err = p.parseMethodOutArguments()
			if err != nil {
				return nil, err
			}
		}
		return ast.NewMethodBody(in.Source(), in, out), nil

	case lex.KwOut:
		out, err := p.parseMethodOutArguments()
		if err != nil {
			return nil, err
		}
		var in *ast.MethodInArguments
		if p.cur().Kind == lex.KwIn {
			in, err = p.parseMethodInArguments()
			if err != nil {
				return nil, err
			}
		}
		return ast.NewMethodBody(out.Source(), in, out), nil

	default:
		return nil, p.unexpected()
	}
}

func (p *Parser) parseMethodInArguments() (*ast.MethodInArguments, error) {
	startTok, err := p.expect(lex.KwIn)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.LBrace); err != nil {
		return nil, err
	}
	args, err := p.parseMethodArgumentList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.RBrace); err != nil {
		return nil, err
	}
	return ast.NewMethodInArguments(startTok, args), nil
}

func (p *Parser) parseMethodOutArguments() (*ast.MethodOutArguments, error) {
	startTok, err := p.expect(lex.KwOut)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.LBrace); err != nil {
		return nil, err
	}
	args, err := p.parseMethodArgumentList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.RBrace); err != nil {
		return nil, err
	}
	return ast.NewMethodOutArguments(startTok, args), nil
}

func (p *Parser) parseMethodArgumentList() (*ast.MethodArgumentList, error) {
	startTok := p.cur()
	var items []*ast.MethodArgument
	for p.cur().Kind != lex.RBrace && p.cur().Kind != lex.EndOfText {
		item, err := p.parseMethodArgument()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, p.unexpected()
	}
	return ast.NewMethodArgumentList(startTok, items), nil
}

func (p *Parser) parseMethodArgument() (*ast.MethodArgument, error) {
	startTok := p.cur()
	var comment *ast.FrancaComment
	if p.cur().Kind == lex.FrancaComment {
		c, err := p.parseFrancaComment()
		if err != nil {
			return nil, err
		}
		comment = c
	}
	typ, err := p.parseTypename()
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	return ast.NewMethodArgument(startTok, typ, name, comment), nil
}

// parseIntLiteral converts a raw integer-constant lexeme (any of the four
// radices, with an optional C-style u/U/l/L suffix) into its numeric value.
// Used only for version{major minor}, the one place the grammar needs an
// actual numeric value rather than a preserved literal (see IntegerConstant).
func parseIntLiteral(text string) (int64, error) {
	end := len(text)
	for end > 0 {
		c := text[end-1]
		if c == 'u' || c == 'U' || c == 'l' || c == 'L' {
			end--
			continue
		}
		break
	}
	digits := text[:end]

	switch {
	case strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X"):
		return strconv.ParseInt(digits[2:], 16, 64)
	case strings.HasPrefix(digits, "0b") || strings.HasPrefix(digits, "0B"):
		return strconv.ParseInt(digits[2:], 2, 64)
	case strings.HasPrefix(digits, "0") && len(digits) > 1:
		return strconv.ParseInt(digits[1:], 8, 64)
	case digits == "":
		return 0, nil
	default:
		return strconv.ParseInt(digits, 10, 64)
	}
}
