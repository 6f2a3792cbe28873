// Package subst replaces whole dialect tokens (keywords and builtins) with
// their canonical names. It runs after digits and symbols are normalized.
//
// Tokens are applied longest first, each one over the full text. A match
// counts only when neither neighbour rune is a word rune, where the word
// class includes the dialect script; so イン never fires inside インポート
// or メイン, and never inside a Latin identifier.
package subst

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"japy/internal/dialect"
)

// Substituter applies one translation table.
type Substituter struct {
	tables *dialect.Tables
	order  []dialect.Mapping
}

// New prepares the longest-first order over the keyword ∪ builtin table.
func New(t *dialect.Tables) *Substituter {
	order := t.Translation()
	slices.SortStableFunc(order, func(a, b dialect.Mapping) int {
		return cmp.Compare(utf8.RuneCountInString(b.Dialect), utf8.RuneCountInString(a.Dialect))
	})
	return &Substituter{tables: t, order: order}
}

// Order returns the dialect tokens in the order they are applied.
func (s *Substituter) Order() []string {
	out := make([]string, len(s.order))
	for i, m := range s.order {
		out[i] = m.Dialect
	}
	return out
}

// Substitute never fails: text with no known token comes back unchanged.
func (s *Substituter) Substitute(text string) string {
	for _, m := range s.order {
		text = replaceWhole(text, m.Dialect, m.Canonical)
	}
	return text
}

// replaceWhole substitutes every whole-token occurrence of token in text.
func replaceWhole(text, token, repl string) string {
	i := strings.Index(text, token)
	if i < 0 {
		return text
	}
	_, step := utf8.DecodeRuneInString(token)

	var b strings.Builder
	last := 0
	for i >= 0 {
		end := i + len(token)
		next := i + step
		if isWholeToken(text, i, end) {
			if last == 0 {
				b.Grow(len(text))
			}
			b.WriteString(text[last:i])
			b.WriteString(repl)
			last = end
			next = end
		}
		j := strings.Index(text[next:], token)
		if j < 0 {
			break
		}
		i = next + j
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// isWholeToken reports whether text[start:end] has no word rune on either side.
func isWholeToken(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); dialect.IsWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); dialect.IsWordRune(r) {
			return false
		}
	}
	return true
}

var defaultSubstituter = sync.OnceValue(func() *Substituter {
	return New(dialect.Default())
})

// Substitute applies the shipped tables.
func Substitute(text string) string {
	return defaultSubstituter().Substitute(text)
}
