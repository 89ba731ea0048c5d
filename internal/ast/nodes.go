package ast

import "github.com/ilehmann/francaidl/internal/lex"

// base is embedded by every concrete node to hold the token the node's span
// starts at, satisfying Source() once instead of in each constructor.
type base struct {
	tok lex.Token
}

func (b base) Source() lex.Token { return b.tok }

// ---- Document structure -------------------------------------------------

// Document is the root of every successful parse: a package statement,
// zero or more imports, and one or more interfaces/type collections.
type Document struct {
	base
	Package *PackageStatement
	Imports []*ImportStatement
	Objects []Node // *Interface | *TypeCollection, in source order
}

func NewDocument(tok lex.Token, pkg *PackageStatement, imports []*ImportStatement, objects []Node) *Document {
	return &Document{base: base{tok}, Package: pkg, Imports: imports, Objects: objects}
}

func (n *Document) Kind() Kind    { return KindDocument }
func (n *Document) Attrs() []Attr { return nil }
func (n *Document) Children() []Child {
	children := []Child{{"package", n.Package}}
	for i, imp := range n.Imports {
		children = append(children, Child{indexedName("imports", i), imp})
	}
	for i, obj := range n.Objects {
		children = append(children, Child{indexedName("objects", i), obj})
	}
	return children
}

// PackageStatement names the package a document belongs to.
type PackageStatement struct {
	base
	Identifier *PackageIdentifier
}

func NewPackageStatement(tok lex.Token, id *PackageIdentifier) *PackageStatement {
	return &PackageStatement{base: base{tok}, Identifier: id}
}

func (n *PackageStatement) Kind() Kind        { return KindPackageStatement }
func (n *PackageStatement) Attrs() []Attr     { return nil }
func (n *PackageStatement) Children() []Child { return []Child{{"identifier", n.Identifier}} }

// PackageIdentifier is a dotted package name, e.g. "a.b.c". It is built
// left-to-right by the parser's list production and stored as a single
// string; there is no per-segment child list.
type PackageIdentifier struct {
	base
	Name string
}

func NewPackageIdentifier(tok lex.Token, name string) *PackageIdentifier {
	return &PackageIdentifier{base: base{tok}, Name: name}
}

func (n *PackageIdentifier) Kind() Kind        { return KindPackageIdentifier }
func (n *PackageIdentifier) Attrs() []Attr     { return []Attr{{"name", n.Name}} }
func (n *PackageIdentifier) Children() []Child { return nil }

// ImportStatement records an import textually; the referenced file is never
// read by this package or by package parser.
type ImportStatement struct {
	base
	Identifier *ImportIdentifier
	Source     *String
}

func NewImportStatement(tok lex.Token, id *ImportIdentifier, source *String) *ImportStatement {
	return &ImportStatement{base: base{tok}, Identifier: id, Source: source}
}

func (n *ImportStatement) Kind() Kind    { return KindImportStatement }
func (n *ImportStatement) Attrs() []Attr { return nil }
func (n *ImportStatement) Children() []Child {
	return []Child{{"identifier", n.Identifier}, {"source", n.Source}}
}

// ImportIdentifier is a dotted import name, optionally ending in a literal
// "*" wildcard segment (or being the bare wildcard "*" on its own).
type ImportIdentifier struct {
	base
	Name string
}

func NewImportIdentifier(tok lex.Token, name string) *ImportIdentifier {
	return &ImportIdentifier{base: base{tok}, Name: name}
}

func (n *ImportIdentifier) Kind() Kind        { return KindImportIdentifier }
func (n *ImportIdentifier) Attrs() []Attr     { return []Attr{{"name", n.Name}} }
func (n *ImportIdentifier) Children() []Child { return nil }

// ---- Top-level declarations ----------------------------------------------

// Interface is a Franca interface: a named collection of methods,
// broadcasts, attributes, and type declarations.
type Interface struct {
	base
	Name    *ID
	Comment *FrancaComment // nil if undocumented
	Members []Node
}

func NewInterface(tok lex.Token, name *ID, comment *FrancaComment, members []Node) *Interface {
	return &Interface{base: base{tok}, Name: name, Comment: comment, Members: members}
}

func (n *Interface) Kind() Kind    { return KindInterface }
func (n *Interface) Attrs() []Attr { return nil }
func (n *Interface) Children() []Child {
	children := []Child{{"name", n.Name}}
	if n.Comment != nil {
		children = append(children, Child{"comment", n.Comment})
	}
	for i, m := range n.Members {
		children = append(children, Child{indexedName("members", i), m})
	}
	return children
}

// TypeCollection is a named container of reusable type declarations with no
// interface semantics (no methods or broadcasts; the grammar happens to
// allow them, downstream semantic analysis is expected to reject that).
type TypeCollection struct {
	base
	Name    *ID
	Comment *FrancaComment
	Members []Node
}

func NewTypeCollection(tok lex.Token, name *ID, comment *FrancaComment, members []Node) *TypeCollection {
	return &TypeCollection{base: base{tok}, Name: name, Comment: comment, Members: members}
}

func (n *TypeCollection) Kind() Kind    { return KindTypeCollection }
func (n *TypeCollection) Attrs() []Attr { return nil }
func (n *TypeCollection) Children() []Child {
	children := []Child{{"name", n.Name}}
	if n.Comment != nil {
		children = append(children, Child{"comment", n.Comment})
	}
	for i, m := range n.Members {
		children = append(children, Child{indexedName("members", i), m})
	}
	return children
}

// ---- Complex type declarations --------------------------------------------

// Enum is an enumeration declaration.
type Enum struct {
	base
	Name        *ID
	Comment     *FrancaComment
	Enumerators *EnumeratorList
}

func NewEnum(tok lex.Token, name *ID, comment *FrancaComment, enumerators *EnumeratorList) *Enum {
	return &Enum{base: base{tok}, Name: name, Comment: comment, Enumerators: enumerators}
}

func (n *Enum) Kind() Kind    { return KindEnum }
func (n *Enum) Attrs() []Attr { return nil }
func (n *Enum) Children() []Child {
	children := []Child{{"name", n.Name}}
	if n.Comment != nil {
		children = append(children, Child{"comment", n.Comment})
	}
	children = append(children, Child{"enumerators", n.Enumerators})
	return children
}

// Struct is a struct declaration.
type Struct struct {
	base
	Name      *ID
	Comment   *FrancaComment
	Variables *VariableList
}

func NewStruct(tok lex.Token, name *ID, comment *FrancaComment, variables *VariableList) *Struct {
	return &Struct{base: base{tok}, Name: name, Comment: comment, Variables: variables}
}

func (n *Struct) Kind() Kind    { return KindStruct }
func (n *Struct) Attrs() []Attr { return nil }
func (n *Struct) Children() []Child {
	children := []Child{{"name", n.Name}}
	if n.Comment != nil {
		children = append(children, Child{"comment", n.Comment})
	}
	children = append(children, Child{"variables", n.Variables})
	return children
}

// Union is a union declaration.
type Union struct {
	base
	Name      *ID
	Comment   *FrancaComment
	Variables *VariableList
}

func NewUnion(tok lex.Token, name *ID, comment *FrancaComment, variables *VariableList) *Union {
	return &Union{base: base{tok}, Name: name, Comment: comment, Variables: variables}
}

func (n *Union) Kind() Kind    { return KindUnion }
func (n *Union) Attrs() []Attr { return nil }
func (n *Union) Children() []Child {
	children := []Child{{"name", n.Name}}
	if n.Comment != nil {
		children = append(children, Child{"comment", n.Comment})
	}
	children = append(children, Child{"variables", n.Variables})
	return children
}

// Map is a named association from one typename to another.
type Map struct {
	base
	Name      *ID
	Comment   *FrancaComment
	KeyType   *Typename
	ValueType *Typename
}

func NewMap(tok lex.Token, name *ID, comment *FrancaComment, keyType, valueType *Typename) *Map {
	return &Map{base: base{tok}, Name: name, Comment: comment, KeyType: keyType, ValueType: valueType}
}

func (n *Map) Kind() Kind    { return KindMap }
func (n *Map) Attrs() []Attr { return nil }
func (n *Map) Children() []Child {
	children := []Child{{"name", n.Name}}
	if n.Comment != nil {
		children = append(children, Child{"comment", n.Comment})
	}
	children = append(children, Child{"key_type", n.KeyType}, Child{"value_type", n.ValueType})
	return children
}

// Method is a request/response or fire-and-forget method. IsFireAndForget
// being true is a grammar-enforced guarantee that Body.Out is nil (spec
// invariant: fireAndForget methods carry only in-arguments).
type Method struct {
	base
	Name            *ID
	Comment         *FrancaComment
	Body            *MethodBody
	IsFireAndForget bool
}

func NewMethod(tok lex.Token, name *ID, comment *FrancaComment, body *MethodBody, fireAndForget bool) *Method {
	return &Method{base: base{tok}, Name: name, Comment: comment, Body: body, IsFireAndForget: fireAndForget}
}

func (n *Method) Kind() Kind    { return KindMethod }
func (n *Method) Attrs() []Attr { return []Attr{boolAttr("is_fire_and_forget", n.IsFireAndForget)} }
func (n *Method) Children() []Child {
	children := []Child{{"name", n.Name}}
	if n.Comment != nil {
		children = append(children, Child{"comment", n.Comment})
	}
	children = append(children, Child{"body", n.Body})
	return children
}

// BroadcastMethod is a server-to-client notification. IsSelective true means
// it may carry in-arguments (a subscription filter) as well as out-arguments;
// false means it carries only out-arguments (grammar-enforced).
type BroadcastMethod struct {
	base
	Name        *ID
	Comment     *FrancaComment
	Body        *MethodBody
	IsSelective bool
}

func NewBroadcastMethod(tok lex.Token, name *ID, comment *FrancaComment, body *MethodBody, selective bool) *BroadcastMethod {
	return &BroadcastMethod{base: base{tok}, Name: name, Comment: comment, Body: body, IsSelective: selective}
}

func (n *BroadcastMethod) Kind() Kind { return KindBroadcastMethod }
func (n *BroadcastMethod) Attrs() []Attr {
	return []Attr{boolAttr("is_selective", n.IsSelective)}
}
func (n *BroadcastMethod) Children() []Child {
	children := []Child{{"name", n.Name}}
	if n.Comment != nil {
		children = append(children, Child{"comment", n.Comment})
	}
	children = append(children, Child{"body", n.Body})
	return children
}

// Attribute is a readable (and, per Franca semantics beyond this grammar,
// possibly writable) named value on an interface.
type Attribute struct {
	base
	Type *Typename
	Name *ID
}

func NewAttribute(tok lex.Token, typ *Typename, name *ID) *Attribute {
	return &Attribute{base: base{tok}, Type: typ, Name: name}
}

func (n *Attribute) Kind() Kind    { return KindAttribute }
func (n *Attribute) Attrs() []Attr { return nil }
func (n *Attribute) Children() []Child {
	return []Child{{"type", n.Type}, {"name", n.Name}}
}

// Version carries a major/minor pair. It never admits a doc-comment; the
// grammar has no production for one here.
type Version struct {
	base
	Major int64
	Minor int64
}

func NewVersion(tok lex.Token, major, minor int64) *Version {
	return &Version{base: base{tok}, Major: major, Minor: minor}
}

func (n *Version) Kind() Kind        { return KindVersion }
func (n *Version) Attrs() []Attr     { return []Attr{intAttr("major", n.Major), intAttr("minor", n.Minor)} }
func (n *Version) Children() []Child { return nil }

// ArrayTypeDeclaration is either an explicit "array Name of T" declaration
// (Name non-nil, Dimension 1) or the unnamed array wrapped by a Typename in
// implicit "T[]" form (Name nil).
type ArrayTypeDeclaration struct {
	base
	Name      *ID // nil in implicit form
	Element   *Typename
	Dimension int
}

func NewArrayTypeDeclaration(tok lex.Token, name *ID, element *Typename, dimension int) *ArrayTypeDeclaration {
	return &ArrayTypeDeclaration{base: base{tok}, Name: name, Element: element, Dimension: dimension}
}

func (n *ArrayTypeDeclaration) Kind() Kind    { return KindArrayTypeDeclaration }
func (n *ArrayTypeDeclaration) Attrs() []Attr { return []Attr{intAttr("dimension", int64(n.Dimension))} }
func (n *ArrayTypeDeclaration) Children() []Child {
	children := []Child{}
	if n.Name != nil {
		children = append(children, Child{"name", n.Name})
	}
	children = append(children, Child{"element", n.Element})
	return children
}

// Typedef aliases an existing typename under a new name.
type Typedef struct {
	base
	Name *ID
	Type *Typename
}

func NewTypedef(tok lex.Token, name *ID, typ *Typename) *Typedef {
	return &Typedef{base: base{tok}, Name: name, Type: typ}
}

func (n *Typedef) Kind() Kind    { return KindTypedef }
func (n *Typedef) Attrs() []Attr { return nil }
func (n *Typedef) Children() []Child {
	return []Child{{"name", n.Name}, {"type", n.Type}}
}

// ---- Structure internals ---------------------------------------------------

// VariableList holds the members of a Struct or Union, in source order.
type VariableList struct {
	base
	Items []*Variable
}

func NewVariableList(tok lex.Token, items []*Variable) *VariableList {
	return &VariableList{base: base{tok}, Items: items}
}

func (n *VariableList) Kind() Kind    { return KindVariableList }
func (n *VariableList) Attrs() []Attr { return nil }
func (n *VariableList) Children() []Child {
	children := make([]Child, len(n.Items))
	for i, v := range n.Items {
		children[i] = Child{indexedName("items", i), v}
	}
	return children
}

// Variable is a single typed, named field inside a struct or union.
type Variable struct {
	base
	Type    *Typename
	Name    *ID
	Comment *FrancaComment
}

func NewVariable(tok lex.Token, typ *Typename, name *ID, comment *FrancaComment) *Variable {
	return &Variable{base: base{tok}, Type: typ, Name: name, Comment: comment}
}

func (n *Variable) Kind() Kind    { return KindVariable }
func (n *Variable) Attrs() []Attr { return nil }
func (n *Variable) Children() []Child {
	children := []Child{{"type", n.Type}, {"name", n.Name}}
	if n.Comment != nil {
		children = append(children, Child{"comment", n.Comment})
	}
	return children
}

// EnumeratorList holds the members of an Enum, in source order.
type EnumeratorList struct {
	base
	Items []*Enumerator
}

func NewEnumeratorList(tok lex.Token, items []*Enumerator) *EnumeratorList {
	return &EnumeratorList{base: base{tok}, Items: items}
}

func (n *EnumeratorList) Kind() Kind    { return KindEnumeratorList }
func (n *EnumeratorList) Attrs() []Attr { return nil }
func (n *EnumeratorList) Children() []Child {
	children := make([]Child, len(n.Items))
	for i, e := range n.Items {
		children[i] = Child{indexedName("items", i), e}
	}
	return children
}

// Enumerator is one member of an enumeration. Value is nil for a bare name,
// *IntegerConstant or *String otherwise; the parser never evaluates or
// converts it.
type Enumerator struct {
	base
	Name    *ID
	Value   Node // nil | *IntegerConstant | *String
	Comment *FrancaComment
}

func NewEnumerator(tok lex.Token, name *ID, value Node, comment *FrancaComment) *Enumerator {
	return &Enumerator{base: base{tok}, Name: name, Value: value, Comment: comment}
}

func (n *Enumerator) Kind() Kind    { return KindEnumerator }
func (n *Enumerator) Attrs() []Attr { return nil }
func (n *Enumerator) Children() []Child {
	children := []Child{{"name", n.Name}}
	if n.Value != nil {
		children = append(children, Child{"value", n.Value})
	}
	if n.Comment != nil {
		children = append(children, Child{"comment", n.Comment})
	}
	return children
}

// MethodBody holds a method or broadcast's argument lists. Exactly which of
// In/Out is non-nil, and which appeared first in source, is fixed by which
// grammar form matched (see package parser); MethodBody itself just records
// the result.
type MethodBody struct {
	base
	In  *MethodInArguments  // nil if absent
	Out *MethodOutArguments // nil if absent
}

func NewMethodBody(tok lex.Token, in *MethodInArguments, out *MethodOutArguments) *MethodBody {
	return &MethodBody{base: base{tok}, In: in, Out: out}
}

func (n *MethodBody) Kind() Kind    { return KindMethodBody }
func (n *MethodBody) Attrs() []Attr { return nil }
func (n *MethodBody) Children() []Child {
	var children []Child
	if n.In != nil {
		children = append(children, Child{"in_args", n.In})
	}
	if n.Out != nil {
		children = append(children, Child{"out_args", n.Out})
	}
	return children
}

// MethodInArguments wraps a method's "in { ... }" argument list.
type MethodInArguments struct {
	base
	Args *MethodArgumentList
}

func NewMethodInArguments(tok lex.Token, args *MethodArgumentList) *MethodInArguments {
	return &MethodInArguments{base: base{tok}, Args: args}
}

func (n *MethodInArguments) Kind() Kind        { return KindMethodInArguments }
func (n *MethodInArguments) Attrs() []Attr     { return nil }
func (n *MethodInArguments) Children() []Child { return []Child{{"args", n.Args}} }

// MethodOutArguments wraps a method's "out { ... }" argument list.
type MethodOutArguments struct {
	base
	Args *MethodArgumentList
}

func NewMethodOutArguments(tok lex.Token, args *MethodArgumentList) *MethodOutArguments {
	return &MethodOutArguments{base: base{tok}, Args: args}
}

func (n *MethodOutArguments) Kind() Kind        { return KindMethodOutArguments }
func (n *MethodOutArguments) Attrs() []Attr     { return nil }
func (n *MethodOutArguments) Children() []Child { return []Child{{"args", n.Args}} }

// MethodArgumentList holds an in/out argument list's arguments, in source
// order.
type MethodArgumentList struct {
	base
	Items []*MethodArgument
}

func NewMethodArgumentList(tok lex.Token, items []*MethodArgument) *MethodArgumentList {
	return &MethodArgumentList{base: base{tok}, Items: items}
}

func (n *MethodArgumentList) Kind() Kind    { return KindMethodArgumentList }
func (n *MethodArgumentList) Attrs() []Attr { return nil }
func (n *MethodArgumentList) Children() []Child {
	children := make([]Child, len(n.Items))
	for i, a := range n.Items {
		children[i] = Child{indexedName("items", i), a}
	}
	return children
}

// MethodArgument is one typed, named argument in an in/out list.
type MethodArgument struct {
	base
	Type    *Typename
	Name    *ID
	Comment *FrancaComment
}

func NewMethodArgument(tok lex.Token, typ *Typename, name *ID, comment *FrancaComment) *MethodArgument {
	return &MethodArgument{base: base{tok}, Type: typ, Name: name, Comment: comment}
}

func (n *MethodArgument) Kind() Kind    { return KindMethodArgument }
func (n *MethodArgument) Attrs() []Attr { return nil }
func (n *MethodArgument) Children() []Child {
	children := []Child{{"type", n.Type}, {"name", n.Name}}
	if n.Comment != nil {
		children = append(children, Child{"comment", n.Comment})
	}
	return children
}

// ---- Leaf values -----------------------------------------------------------

// ID is a bare identifier.
type ID struct {
	base
	Name string
}

func NewID(tok lex.Token, name string) *ID {
	return &ID{base: base{tok}, Name: name}
}

func (n *ID) Kind() Kind        { return KindID }
func (n *ID) Attrs() []Attr     { return []Attr{{"id", n.Name}} }
func (n *ID) Children() []Child { return nil }

// TypenameForm distinguishes the three shapes a Typename may wrap.
type TypenameForm int

const (
	TypenameBuiltin TypenameForm = iota
	TypenameUser
	TypenameImplicitArray
)

// Typename wraps exactly one of a built-in type keyword, a user-defined
// name, or an implicit array declaration. The parser preserves whichever
// original form was written; it never resolves a user name against a
// declaration.
type Typename struct {
	base
	Form TypenameForm
	Name string                // set for TypenameBuiltin/TypenameUser
	Elem *ArrayTypeDeclaration // set for TypenameImplicitArray
}

func NewBuiltinTypename(tok lex.Token, name string) *Typename {
	return &Typename{base: base{tok}, Form: TypenameBuiltin, Name: name}
}

func NewUserTypename(tok lex.Token, name string) *Typename {
	return &Typename{base: base{tok}, Form: TypenameUser, Name: name}
}

func NewImplicitArrayTypename(tok lex.Token, elem *ArrayTypeDeclaration) *Typename {
	return &Typename{base: base{tok}, Form: TypenameImplicitArray, Elem: elem}
}

func (n *Typename) Kind() Kind { return KindTypename }
func (n *Typename) Attrs() []Attr {
	display := n.Name
	if n.Form == TypenameImplicitArray {
		display = ""
	}
	return []Attr{{"typename", display}}
}
func (n *Typename) Children() []Child {
	if n.Form == TypenameImplicitArray {
		return []Child{{"array", n.Elem}}
	}
	return nil
}

// IntegerConstant is a raw integer literal, stored exactly as lexed (the
// parser neither converts nor validates its value).
type IntegerConstant struct {
	base
	Text string
}

func NewIntegerConstant(tok lex.Token, text string) *IntegerConstant {
	return &IntegerConstant{base: base{tok}, Text: text}
}

func (n *IntegerConstant) Kind() Kind        { return KindIntegerConstant }
func (n *IntegerConstant) Attrs() []Attr     { return []Attr{{"value", n.Text}} }
func (n *IntegerConstant) Children() []Child { return nil }

// String is a raw string literal, including its surrounding quotes exactly
// as lexed.
type String struct {
	base
	Text string
}

func NewString(tok lex.Token, text string) *String {
	return &String{base: base{tok}, Text: text}
}

func (n *String) Kind() Kind        { return KindString }
func (n *String) Attrs() []Attr     { return []Attr{{"value", n.Text}} }
func (n *String) Children() []Child { return nil }

// FrancaComment is a preserved "<** ... **>" doc-comment, attached to
// whichever node's production admitted a leading doc-comment position.
type FrancaComment struct {
	base
	Text string
}

func NewFrancaComment(tok lex.Token, text string) *FrancaComment {
	return &FrancaComment{base: base{tok}, Text: text}
}

func (n *FrancaComment) Kind() Kind        { return KindFrancaComment }
func (n *FrancaComment) Attrs() []Attr     { return []Attr{{"comment", n.Text}} }
func (n *FrancaComment) Children() []Child { return nil }

func indexedName(base string, i int) string {
	return base + "[" + itoa(i) + "]"
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
