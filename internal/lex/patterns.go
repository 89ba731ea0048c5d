package lex

import "regexp"

// Pattern regexes are translated directly from franca_lexer.py's PLY
// token functions (themselves adapted from pycparser). Each is anchored at
// the start of the remaining input; Lexer.Token tries them in a fixed order,
// and scanNumber keeps the longest numeric match so that, e.g., a hex float
// is recognized instead of the hex integer prefix of it.
var (
	reWhitespace = regexp.MustCompile(`^[ \t\r\n]+`)

	reCComment      = regexp.MustCompile(`^(?:/\*(?:[^*]|\*+[^*/])*\*+/)|^(?://[^\n]*)`)
	reFrancaComment = regexp.MustCompile(`^<\*{2,}(?:[^*]|\*+[^*>])*\*{2,}>`)

	reStringLiteral = regexp.MustCompile(`^"(?:[^"\\\n]|\\(?:[a-zA-Z._~!=&^\-\\?'"]|[0-9]+|x[0-9a-fA-F]+))*"`)

	reIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*`)

	intSuffix = `(?:(?:[uU]ll)|(?:[uU]LL)|(?:ll[uU]?)|(?:LL[uU]?)|(?:[uU][lL])|(?:[lL][uU]?)|[uU])?`

	reIntConstHex = regexp.MustCompile(`^0[xX][0-9a-fA-F]+` + intSuffix)
	reIntConstBin = regexp.MustCompile(`^0[bB][01]+` + intSuffix)
	reIntConstOct = regexp.MustCompile(`^0[0-7]*` + intSuffix)
	reIntConstDec = regexp.MustCompile(`^(?:0` + intSuffix + `)|^(?:[1-9][0-9]*` + intSuffix + `)`)

	reHexFloatConst = regexp.MustCompile(`^0[xX](?:[0-9a-fA-F]+|(?:(?:[0-9a-fA-F]+)?\.[0-9a-fA-F]+)|(?:[0-9a-fA-F]+\.))(?:[pP][+-]?[0-9]+)[FfLl]?`)
	reFloatConst    = regexp.MustCompile(`^(?:(?:(?:(?:[0-9]*\.[0-9]+)|(?:[0-9]+\.))(?:[eE][-+]?[0-9]+)?)|(?:[0-9]+(?:[eE][-+]?[0-9]+)))[FfLl]?`)
)

// operator is one punctuator/operator lexeme and the Kind it scans as.
type operator struct {
	lexeme string
	kind   Kind
}

// operators is ordered longest-lexeme-first so a scan that tries entries in
// order never stops at a proper prefix of a longer operator (e.g. "<<"
// before "<", "<<=" before both).
var operators = []operator{
	{"<<=", LShiftAssign},
	{">>=", RShiftAssign},

	{"+=", PlusAssign},
	{"-=", MinusAssign},
	{"*=", StarAssign},
	{"/=", SlashAssign},
	{"%=", PercentAssign},
	{"&=", AmpAssign},
	{"|=", PipeAssign},
	{"^=", CaretAssign},
	{"<<", LShift},
	{">>", RShift},
	{"||", PipePipe},
	{"&&", AmpAmp},
	{"<=", Le},
	{">=", Ge},
	{"==", EqEq},
	{"!=", NotEq},
	{"++", PlusPlus},
	{"--", MinusMinus},

	{"+", Plus},
	{"-", Minus},
	{"*", Star},
	{"/", Slash},
	{"%", Percent},
	{"|", Pipe},
	{"&", Amp},
	{"~", Tilde},
	{"^", Caret},
	{"!", Bang},
	{"<", Lt},
	{">", Gt},
	{"=", Assign},
	{"?", Question},
	{"(", LParen},
	{")", RParen},
	{"[", LBracket},
	{"]", RBracket},
	{"{", LBrace},
	{"}", RBrace},
	{",", Comma},
	{".", Period},
	{";", Semi},
	{":", Colon},
}
