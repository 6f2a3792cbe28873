package pylang

// Keywords mirrors keyword.kwlist, in the same order.
var Keywords = []string{
	"False", "None", "True",
	"and", "as", "assert", "async", "await",
	"break", "class", "continue",
	"def", "del",
	"elif", "else", "except",
	"finally", "for", "from",
	"global",
	"if", "import", "in", "is",
	"lambda",
	"nonlocal", "not",
	"or",
	"pass",
	"raise", "return",
	"try",
	"while", "with",
	"yield",
}

// BuiltinFunctions lists public callables in the builtins module whose value
// is not a type. Site helpers (exit, quit, help, ...) are included because the
// interactive interpreter installs them.
var BuiltinFunctions = []string{
	"abs", "aiter", "all", "anext", "any", "ascii",
	"bin", "breakpoint",
	"callable", "chr", "compile", "copyright", "credits",
	"delattr", "dir", "divmod",
	"eval", "exec", "exit",
	"format",
	"getattr", "globals",
	"hasattr", "hash", "help", "hex",
	"id", "input", "isinstance", "issubclass", "iter",
	"len", "license", "locals",
	"max", "min",
	"next",
	"oct", "open", "ord",
	"pow", "print",
	"quit",
	"repr", "round",
	"setattr", "sorted", "sum",
	"vars",
}

// BuiltinTypes is the allow-list of builtin types that source code commonly
// calls like functions.
var BuiltinTypes = []string{
	"bool", "bytearray", "bytes",
	"classmethod", "complex",
	"dict",
	"enumerate",
	"filter", "float", "frozenset",
	"int",
	"list",
	"map", "memoryview",
	"object",
	"property",
	"range", "reversed",
	"set", "slice", "staticmethod", "str", "super",
	"tuple", "type",
	"zip",
}

// IsIdentifier reports whether s is a non-empty ASCII identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == '_', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		case b >= '0' && b <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
