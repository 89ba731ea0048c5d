package parser

// Production documents one grammar rule, purely for diagnostics and
// traceability back to franca_parser.py; it plays no role in parsing
// itself, which is hand-written recursive descent (see parser.go).
type Production struct {
	Name string
	Rule string
}

// Grammar lists every production the parser implements, in the same order
// as franca_parser.py, for anyone auditing coverage against the original.
var Grammar = []Production{
	{"document", "package_statement import_statement* root_level_object+"},
	{"root_level_object", "interface | type_collection"},
	{"import_statement", "IMPORT import_identifier FROM string"},
	{"import_identifier", "'*' | ID | import_identifier '.' ID | import_identifier '.' '*'"},
	{"interface", "[franca_comment] INTERFACE identifier '{' complex_type_declaration+ '}'"},
	{"type_collection", "[franca_comment] TYPECOLLECTION identifier '{' complex_type_declaration+ '}'"},
	{"complex_type_declaration", "enumeration | struct | map | union | method | broadcast | attribute | version | explicit_array | typedef"},
	{"attribute_declaration", "ATTRIBUTE typename identifier"},
	{"explicit_array_type_declaration", "ARRAY identifier OF typename"},
	{"implicit_array_type_declaration", "typename '[' ']'"},
	{"map_declaration", "[franca_comment] MAP identifier '{' typename TO typename '}'"},
	{"union_declaration", "[franca_comment] UNION identifier '{' variable_declaration+ '}'"},
	{"struct_declaration", "[franca_comment] STRUCT identifier '{' variable_declaration+ '}'"},
	{"variable_declaration", "[franca_comment] typename identifier"},
	{"enumeration_declaration", "[franca_comment] ENUMERATION identifier '{' enumeration_member+ '}'"},
	{"enumeration_member_declaration", "[franca_comment] identifier ['=' (const_int | string)]"},
	{"franca_comment", "FRANCA_COMMENT"},
	{"method_declaration", "[franca_comment] METHOD identifier '{' method_body '}'"},
	{"fire_and_forget_method_declaration", "[franca_comment] METHOD identifier FIREANDFORGET '{' method_in_arguments '}'"},
	{"broadcast_method_declaration", "[franca_comment] BROADCAST identifier '{' method_out_arguments '}'"},
	{"selective_broadcast_method", "[franca_comment] BROADCAST identifier SELECTIVE '{' method_body '}'"},
	{"method_body", "method_in_arguments [method_out_arguments] | method_out_arguments [method_in_arguments]"},
	{"method_in_arguments", "IN '{' method_argument+ '}'"},
	{"method_out_arguments", "OUT '{' method_argument+ '}'"},
	{"method_argument", "[franca_comment] typename identifier"},
	{"typedef", "TYPEDEF identifier IS typename"},
	{"typename", "ID | <builtin type keyword> | implicit_array_type_declaration"},
	{"identifier", "ID"},
	{"package_statement", "PACKAGE package_identifier"},
	{"package_identifier", "ID | package_identifier '.' ID"},
	{"version_declaration", "VERSION '{' MAJOR const_int MINOR const_int '}'"},
	{"string", "STRING_LITERAL"},
	{"const_int", "INT_CONST_DEC | INT_CONST_OCT | INT_CONST_HEX | INT_CONST_BIN"},
}
