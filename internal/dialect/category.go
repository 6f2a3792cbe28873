package dialect

import "fmt"

// Category tells which table a mapping belongs to.
type Category uint8

const (
	CategoryUnknown Category = iota
	Keyword
	Builtin
	Symbol
	Digit

	categoryCount
)

// Categories lists the known categories in table order.
var Categories = []Category{Keyword, Builtin, Symbol, Digit}

func (c Category) String() string {
	switch c {
	case Keyword:
		return "keyword"
	case Builtin:
		return "builtin"
	case Symbol:
		return "symbol"
	case Digit:
		return "digit"
	default:
		return "unknown"
	}
}

func (c Category) GoString() string {
	return fmt.Sprintf("Category(%s)", c.String())
}

// ParseCategory accepts the names produced by String plus a few short aliases.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "keyword", "keywords", "kw":
		return Keyword, nil
	case "builtin", "builtins":
		return Builtin, nil
	case "symbol", "symbols", "sym":
		return Symbol, nil
	case "digit", "digits", "number", "numbers":
		return Digit, nil
	default:
		return CategoryUnknown, fmt.Errorf("unknown category %q (expected keyword|builtin|symbol|digit)", s)
	}
}

// MarshalText lets categories render by name in json and yaml output.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
