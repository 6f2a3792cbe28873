// Package testkit holds invariant checks shared by tests and fuzz targets.
package testkit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"

	"japy/internal/dialect"
	"japy/internal/source"
	"japy/internal/subst"
)

// CheckOccurrences runs the span invariants on matches found in text:
// 1) every span is non-empty and within text
// 2) spans are sorted and do not overlap
// 3) each span covers exactly its dialect token, which is a whole token
// 4) each position names the line and rune column where the span starts
// 5) applying them reproduces Substitute
func CheckOccurrences(s *subst.Substituter, text string, occs []subst.Occurrence) error {
	if s == nil {
		return fmt.Errorf("nil substituter")
	}
	lenText, err := safecast.Conv[uint32](len(text))
	if err != nil {
		return fmt.Errorf("len text overflow: %w", err)
	}

	idx, err := source.NewText(text)
	if err != nil {
		return err
	}

	var prevEnd uint32
	for i, o := range occs {
		// 1) bounds
		if o.Span.Empty() {
			return fmt.Errorf("occurrence %d has empty span %v", i, o.Span)
		}
		if o.Span.End > lenText {
			return fmt.Errorf("occurrence %d ends beyond text: %d > %d", i, o.Span.End, lenText)
		}
		// 2) order
		if o.Span.Start < prevEnd {
			return fmt.Errorf("occurrence %d at %v overlaps previous ending at %d", i, o.Span, prevEnd)
		}
		prevEnd = o.Span.End
		// 3) content
		if got := text[o.Span.Start:o.Span.End]; got != o.Dialect {
			return fmt.Errorf("occurrence %d span %v covers %q, want %q", i, o.Span, got, o.Dialect)
		}
		if o.Category != dialect.Keyword && o.Category != dialect.Builtin {
			return fmt.Errorf("occurrence %d has non-lexical category %v", i, o.Category)
		}
		if err := checkBoundary(text, int(o.Span.Start), int(o.Span.End)); err != nil {
			return fmt.Errorf("occurrence %d: %w", i, err)
		}
		// 4) position
		if err := checkPosition(idx, o); err != nil {
			return fmt.Errorf("occurrence %d: %w", i, err)
		}
	}

	// 5) consistency with the replacing pass
	if applied, want := subst.Apply(text, occs), s.Substitute(text); applied != want {
		return fmt.Errorf("Apply(occurrences) = %q, Substitute = %q", applied, want)
	}
	return nil
}

func checkBoundary(text string, start, end int) error {
	if r, _ := utf8.DecodeLastRuneInString(text[:start]); start > 0 && dialect.IsWordRune(r) {
		return fmt.Errorf("word rune %q precedes token at %d", r, start)
	}
	if r, _ := utf8.DecodeRuneInString(text[end:]); end < len(text) && dialect.IsWordRune(r) {
		return fmt.Errorf("word rune %q follows token at %d", r, end)
	}
	return nil
}

func checkPosition(idx *source.Text, o subst.Occurrence) error {
	line := int(o.Pos.Line)
	if line < 1 || line > idx.Lines() {
		return fmt.Errorf("position %v is outside %d lines", o.Pos, idx.Lines())
	}
	runes := []rune(idx.Line(line))
	col := int(o.Pos.Col) - 1
	if col < 0 || col > len(runes) || !strings.HasPrefix(string(runes[col:]), o.Dialect) {
		return fmt.Errorf("position %v does not start %q", o.Pos, o.Dialect)
	}
	return nil
}
