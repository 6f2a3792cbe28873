package source

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"fortio.org/safecast"
)

// LineCol is a human-readable position. Col counts runes, not bytes, so a
// Katakana token reports the column a reader sees.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}

// Text pairs content with an index of its line starts.
type Text struct {
	Content string
	lineIdx []uint32 // offsets of every '\n'
}

// NewText indexes content.
func NewText(content string) (*Text, error) {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		return nil, fmt.Errorf("text too large: %w", err)
	}
	idx := make([]uint32, 0, 64)
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			idx = append(idx, uint32(i)) //nolint:gosec // bounded by the check above
		}
	}
	return &Text{Content: content, lineIdx: idx}, nil
}

// Lines returns the number of lines; text without a newline has one.
func (t *Text) Lines() int {
	return len(t.lineIdx) + 1
}

// Resolve maps a byte offset to its line and rune column. Offsets past the
// end clamp to the end.
func (t *Text) Resolve(off uint32) LineCol {
	if int(off) > len(t.Content) {
		off = uint32(len(t.Content)) //nolint:gosec // checked in NewText
	}
	// first newline at or after off gives the line number
	line := sort.Search(len(t.lineIdx), func(i int) bool { return t.lineIdx[i] >= off })
	var start uint32
	if line > 0 {
		start = t.lineIdx[line-1] + 1
	}
	col := utf8.RuneCountInString(t.Content[start:off])
	return LineCol{Line: uint32(line + 1), Col: uint32(col + 1)} //nolint:gosec // bounded by len(Content)
}

// Line returns the 1-based line without its trailing newline.
func (t *Text) Line(n int) string {
	if n < 1 || n > t.Lines() {
		return ""
	}
	start := 0
	if n > 1 {
		start = int(t.lineIdx[n-2]) + 1
	}
	end := len(t.Content)
	if n-1 < len(t.lineIdx) {
		end = int(t.lineIdx[n-1])
	}
	return t.Content[start:end]
}
