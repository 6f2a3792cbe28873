// Package normalize folds full-width digits and typographic punctuation to
// ASCII. Both passes are context-free: a glyph inside what later reads as a
// string literal is converted too.
package normalize

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"japy/internal/dialect"
)

// Normalizer holds the prepared replacement order for one set of tables.
type Normalizer struct {
	digits  *strings.Replacer
	symbols []dialect.Mapping
}

// New prepares a Normalizer over t.
func New(t *dialect.Tables) *Normalizer {
	digits := t.Mappings(dialect.Digit)
	pairs := make([]string, 0, 2*len(digits))
	for _, m := range digits {
		pairs = append(pairs, m.Dialect, m.Canonical)
	}

	// Longest glyph first so a multi-rune glyph is never eaten by a shorter
	// entry that overlaps it. Stable keeps literal order for ties.
	symbols := t.Mappings(dialect.Symbol)
	slices.SortStableFunc(symbols, func(a, b dialect.Mapping) int {
		return cmp.Compare(utf8.RuneCountInString(b.Dialect), utf8.RuneCountInString(a.Dialect))
	})

	return &Normalizer{
		digits:  strings.NewReplacer(pairs...),
		symbols: symbols,
	}
}

// Digits replaces every full-width digit with its ASCII digit. Digit glyphs
// are single, disjoint runes, so one simultaneous pass is exact.
func (n *Normalizer) Digits(text string) string {
	return n.digits.Replace(text)
}

// Symbols replaces every symbol glyph with its ASCII text, one glyph at a time
// over the whole text, longest glyph first.
func (n *Normalizer) Symbols(text string) string {
	for _, m := range n.symbols {
		if strings.Contains(text, m.Dialect) {
			text = strings.ReplaceAll(text, m.Dialect, m.Canonical)
		}
	}
	return text
}

// SymbolOrder returns the glyphs in the order Symbols applies them.
func (n *Normalizer) SymbolOrder() []string {
	out := make([]string, len(n.symbols))
	for i, m := range n.symbols {
		out[i] = m.Dialect
	}
	return out
}

var defaultNormalizer = sync.OnceValue(func() *Normalizer {
	return New(dialect.Default())
})

// Digits folds digits using the shipped tables.
func Digits(text string) string { return defaultNormalizer().Digits(text) }

// Symbols folds symbols using the shipped tables.
func Symbols(text string) string { return defaultNormalizer().Symbols(text) }
