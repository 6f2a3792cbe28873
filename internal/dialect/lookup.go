package dialect

import (
	"cmp"
	"crypto/sha256"
	"slices"
	"strings"
)

// Lookup finds a keyword or builtin by its dialect token.
func (t *Tables) Lookup(dialectToken string) (Mapping, bool) {
	m, ok := t.translation[dialectToken]
	return m, ok
}

// DialectFor returns the dialect token that maps to canonical in cat. When
// several glyphs share a canonical value the first listed one is returned.
func (t *Tables) DialectFor(cat Category, canonical string) (string, bool) {
	if cat <= CategoryUnknown || cat >= categoryCount {
		return "", false
	}
	d, ok := t.reverse[cat][canonical]
	return d, ok
}

// Complete returns the keywords and builtins whose dialect token starts with
// prefix, ordered by token. An empty prefix matches everything.
func (t *Tables) Complete(prefix string) []Mapping {
	var out []Mapping
	for _, m := range t.Translation() {
		if strings.HasPrefix(m.Dialect, prefix) {
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, func(a, b Mapping) int {
		return cmp.Or(strings.Compare(a.Dialect, b.Dialect), cmp.Compare(a.Category, b.Category))
	})
	return out
}

// Fingerprint hashes every entry of every table. Two Tables with the same
// fingerprint transpile identically.
func (t *Tables) Fingerprint() [32]byte {
	h := sha256.New()
	for _, cat := range Categories {
		for _, m := range t.byCategory[cat] {
			_, _ = h.Write([]byte{byte(cat)})
			_, _ = h.Write([]byte(m.Dialect))
			_, _ = h.Write([]byte{0})
			_, _ = h.Write([]byte(m.Canonical))
			_, _ = h.Write([]byte{0})
		}
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
