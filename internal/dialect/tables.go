package dialect

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"japy/internal/pylang"
)

// Mapping pairs one dialect token with the canonical text it stands for.
type Mapping struct {
	Dialect   string   `json:"dialect" yaml:"dialect"`
	Canonical string   `json:"canonical" yaml:"canonical"`
	Category  Category `json:"category" yaml:"category"`
}

// Tables is a verified, read-only set of the four mapping tables.
type Tables struct {
	byCategory [categoryCount][]Mapping
	// translation is Keyword ∪ Builtin keyed by dialect token.
	translation map[string]Mapping
	// reverse maps canonical -> dialect per category; first entry wins.
	reverse [categoryCount]map[string]string
}

// ConfigError reports structurally broken tables. It is fatal: tables that
// fail verification are never handed out.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	if len(e.Problems) == 1 {
		return "dialect tables: " + e.Problems[0]
	}
	return fmt.Sprintf("dialect tables: %d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// New verifies the given tables and returns them frozen. Every problem found
// is collected into a single *ConfigError.
func New(keyword, builtin, symbol, digit []Mapping) (*Tables, error) {
	t := &Tables{translation: make(map[string]Mapping, len(keyword)+len(builtin))}
	t.byCategory[Keyword] = slices.Clone(keyword)
	t.byCategory[Builtin] = slices.Clone(builtin)
	t.byCategory[Symbol] = slices.Clone(symbol)
	t.byCategory[Digit] = slices.Clone(digit)

	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	keys := make(map[string]Category)
	lexical := make(map[string]string) // canonical -> dialect over Keyword ∪ Builtin
	for _, cat := range Categories {
		seen := make(map[string]struct{}, len(t.byCategory[cat]))
		rev := make(map[string]string, len(t.byCategory[cat]))
		for _, m := range t.byCategory[cat] {
			if m.Category != cat {
				addf("%q listed in the %s table but tagged %s", m.Dialect, cat, m.Category)
			}
			if m.Dialect == "" || m.Canonical == "" {
				addf("empty %s mapping %q -> %q", cat, m.Dialect, m.Canonical)
				continue
			}
			if _, dup := seen[m.Dialect]; dup {
				addf("duplicate %s token %q", cat, m.Dialect)
				continue
			}
			seen[m.Dialect] = struct{}{}
			if _, ok := rev[m.Canonical]; !ok {
				rev[m.Canonical] = m.Dialect
			}
			problems = append(problems, checkShape(cat, m)...)
			if !isLexical(cat) {
				if _, ok := keys[m.Dialect]; !ok {
					keys[m.Dialect] = cat
				}
				continue
			}
			if prev, clash := keys[m.Dialect]; clash {
				addf("token %q is both a %s and a %s", m.Dialect, prev, cat)
				continue
			}
			keys[m.Dialect] = cat
			if other, taken := lexical[m.Canonical]; taken {
				addf("%q is reachable from both %q and %q", m.Canonical, other, m.Dialect)
				continue
			}
			lexical[m.Canonical] = m.Dialect
			t.translation[m.Dialect] = m
		}
		t.reverse[cat] = rev
	}

	for _, cat := range Categories {
		for _, m := range t.byCategory[cat] {
			if owner, ok := keys[m.Canonical]; ok {
				addf("canonical %s value %q is also a %s token", cat, m.Canonical, owner)
			}
		}
	}

	if len(problems) > 0 {
		return nil, &ConfigError{Problems: problems}
	}
	return t, nil
}

func isLexical(c Category) bool { return c == Keyword || c == Builtin }

func checkShape(cat Category, m Mapping) []string {
	var problems []string
	switch cat {
	case Keyword, Builtin:
		for _, r := range m.Dialect {
			if !IsWordRune(r) {
				problems = append(problems, fmt.Sprintf("%s token %q contains non-word rune %q", cat, m.Dialect, r))
				break
			}
		}
		if !pylang.IsIdentifier(m.Canonical) {
			problems = append(problems, fmt.Sprintf("%s %q maps to %q, which is not an identifier", cat, m.Dialect, m.Canonical))
		}
	case Digit:
		if utf8.RuneCountInString(m.Dialect) != 1 {
			problems = append(problems, fmt.Sprintf("digit glyph %q is not a single rune", m.Dialect))
		} else if folded := norm.NFKC.String(m.Dialect); folded != m.Canonical {
			problems = append(problems, fmt.Sprintf("digit glyph %q folds to %q, not %q", m.Dialect, folded, m.Canonical))
		}
	}
	return problems
}

// IsWordRune reports whether r belongs to the word class used for whole-token
// matching: '_', letters, numbers, nonspacing marks and the Katakana block.
// Katakana is listed explicitly even though most of it is already a letter.
func IsWordRune(r rune) bool {
	if r < utf8.RuneSelf {
		return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	}
	return unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Katakana, r)
}

// Mappings returns a copy of one table in literal order.
func (t *Tables) Mappings(cat Category) []Mapping {
	if cat <= CategoryUnknown || cat >= categoryCount {
		return nil
	}
	return slices.Clone(t.byCategory[cat])
}

// Len returns the number of entries in a table.
func (t *Tables) Len(cat Category) int {
	if cat <= CategoryUnknown || cat >= categoryCount {
		return 0
	}
	return len(t.byCategory[cat])
}

// Translation returns Keyword ∪ Builtin, keywords first, in literal order.
func (t *Tables) Translation() []Mapping {
	out := make([]Mapping, 0, len(t.translation))
	out = append(out, t.byCategory[Keyword]...)
	return append(out, t.byCategory[Builtin]...)
}

// Without returns a copy of the tables with the named dialect token removed
// from cat. It is used to probe validation.
func (t *Tables) Without(cat Category, dialectToken string) (*Tables, error) {
	tables := [categoryCount][]Mapping{}
	for _, c := range Categories {
		tables[c] = slices.DeleteFunc(t.Mappings(c), func(m Mapping) bool {
			return c == cat && m.Dialect == dialectToken
		})
	}
	return New(tables[Keyword], tables[Builtin], tables[Symbol], tables[Digit])
}
