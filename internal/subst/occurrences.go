package subst

import (
	"unicode/utf8"

	"japy/internal/dialect"
	"japy/internal/source"
)

// Occurrence is one whole-token match in normalized text.
type Occurrence struct {
	Span      source.Span
	Pos       source.LineCol
	Dialect   string
	Canonical string
	Category  dialect.Category
}

// Occurrences lists the whole-token matches Substitute would replace, in text
// order. Every dialect token is made of word runes only, so a whole-token
// match is exactly a maximal run of word runes equal to a token; one scan
// over the runs finds them all.
func (s *Substituter) Occurrences(text string) ([]Occurrence, error) {
	idx, err := source.NewText(text)
	if err != nil {
		return nil, err
	}
	var out []Occurrence
	for i := 0; i < len(text); {
		r, sz := utf8.DecodeRuneInString(text[i:])
		if !dialect.IsWordRune(r) {
			i += sz
			continue
		}
		start := i
		for i < len(text) {
			r, sz = utf8.DecodeRuneInString(text[i:])
			if !dialect.IsWordRune(r) {
				break
			}
			i += sz
		}
		m, ok := s.tables.Lookup(text[start:i])
		if !ok {
			continue
		}
		sp, err := source.SpanOf(start, i)
		if err != nil {
			return nil, err
		}
		out = append(out, Occurrence{
			Span:      sp,
			Pos:       idx.Resolve(sp.Start),
			Dialect:   m.Dialect,
			Canonical: m.Canonical,
			Category:  m.Category,
		})
	}
	return out, nil
}

// Apply rewrites text using occurrences previously found in it.
func Apply(text string, occs []Occurrence) string {
	if len(occs) == 0 {
		return text
	}
	buf := make([]byte, 0, len(text))
	last := uint32(0)
	for _, o := range occs {
		buf = append(buf, text[last:o.Span.Start]...)
		buf = append(buf, o.Canonical...)
		last = o.Span.End
	}
	return string(append(buf, text[last:]...))
}
