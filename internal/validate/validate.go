// Package validate checks that the mapping tables cover the canonical
// language: every reserved word needs a keyword mapping, and every builtin
// callable plus the allow-listed builtin types need a builtin mapping.
package validate

import (
	"fmt"
	"slices"
	"strings"

	"japy/internal/dialect"
	"japy/internal/pylang"
)

// ValidationError carries every missing name, never just the first.
type ValidationError struct {
	MissingKeywords []string
	MissingBuiltins []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.MissingKeywords) > 0 {
		parts = append(parts, fmt.Sprintf("keywords not mapped: %s", strings.Join(e.MissingKeywords, ", ")))
	}
	if len(e.MissingBuiltins) > 0 {
		parts = append(parts, fmt.Sprintf("builtins not mapped: %s", strings.Join(e.MissingBuiltins, ", ")))
	}
	return "incomplete mapping tables: " + strings.Join(parts, "; ")
}

// Summary counts what a successful check covered.
type Summary struct {
	Keywords         int
	BuiltinFunctions int
	BuiltinTypes     int
	BuiltinMappings  int
	Symbols          int
	Digits           int
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "all %d keywords are mapped\n", s.Keywords)
	fmt.Fprintf(&b, "all %d builtins are mapped\n", s.BuiltinFunctions+s.BuiltinTypes)
	fmt.Fprintf(&b, "  - functions: %d\n", s.BuiltinFunctions)
	fmt.Fprintf(&b, "  - types: %d\n", s.BuiltinTypes)
	fmt.Fprintf(&b, "  - total builtin mappings: %d\n", s.BuiltinMappings)
	fmt.Fprintf(&b, "symbols: %d, digits: %d\n", s.Symbols, s.Digits)
	return b.String()
}

// Check runs both coverage checks against t. On failure the error is a
// *ValidationError; the caller decides whether that is fatal.
func Check(t *dialect.Tables) (Summary, error) {
	missingKeywords := missing(t, dialect.Keyword, pylang.Keywords)
	missingBuiltins := missing(t, dialect.Builtin, pylang.BuiltinFunctions)
	for _, name := range missing(t, dialect.Builtin, pylang.BuiltinTypes) {
		if !slices.Contains(missingBuiltins, name) {
			missingBuiltins = append(missingBuiltins, name)
		}
	}
	slices.Sort(missingBuiltins)

	if len(missingKeywords) > 0 || len(missingBuiltins) > 0 {
		return Summary{}, &ValidationError{
			MissingKeywords: missingKeywords,
			MissingBuiltins: missingBuiltins,
		}
	}
	return Summary{
		Keywords:         len(pylang.Keywords),
		BuiltinFunctions: len(pylang.BuiltinFunctions),
		BuiltinTypes:     len(pylang.BuiltinTypes),
		BuiltinMappings:  t.Len(dialect.Builtin),
		Symbols:          t.Len(dialect.Symbol),
		Digits:           t.Len(dialect.Digit),
	}, nil
}

// Mappings checks the shipped tables.
func Mappings() (Summary, error) {
	t, err := dialect.Load()
	if err != nil {
		return Summary{}, err
	}
	return Check(t)
}

func missing(t *dialect.Tables, cat dialect.Category, names []string) []string {
	var out []string
	for _, name := range names {
		if _, ok := t.DialectFor(cat, name); !ok {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}
