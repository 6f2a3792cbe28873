package validate

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"japy/internal/dialect"
)

func TestMappingsSucceedOnShippedTables(t *testing.T) {
	sum, err := Mappings()
	if err != nil {
		t.Fatalf("Mappings() error: %v", err)
	}
	want := Summary{Keywords: 35, BuiltinFunctions: 49, BuiltinTypes: 26, BuiltinMappings: 75, Symbols: 38, Digits: 10}
	if sum != want {
		t.Fatalf("Mappings() = %+v, want %+v", sum, want)
	}
	if !strings.Contains(sum.String(), "all 75 builtins are mapped") {
		t.Fatalf("summary text = %q", sum.String())
	}
}

// Removing any single keyword or builtin must surface exactly that name, in
// the right list.
func TestCheckReportsExactlyTheRemovedEntry(t *testing.T) {
	tables := dialect.Default()
	for _, cat := range []dialect.Category{dialect.Keyword, dialect.Builtin} {
		for _, m := range tables.Mappings(cat) {
			reduced, err := tables.Without(cat, m.Dialect)
			if err != nil {
				t.Fatalf("Without(%v, %q): %v", cat, m.Dialect, err)
			}
			_, err = Check(reduced)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Check without %q: error = %v, want *ValidationError", m.Dialect, err)
			}
			gotKw, gotBi := vErr.MissingKeywords, vErr.MissingBuiltins
			if cat == dialect.Keyword {
				if !slices.Equal(gotKw, []string{m.Canonical}) || len(gotBi) != 0 {
					t.Fatalf("without %q: missing = %v / %v, want [%s] / []", m.Dialect, gotKw, gotBi, m.Canonical)
				}
				continue
			}
			if !slices.Equal(gotBi, []string{m.Canonical}) || len(gotKw) != 0 {
				t.Fatalf("without %q: missing = %v / %v, want [] / [%s]", m.Dialect, gotKw, gotBi, m.Canonical)
			}
		}
	}
}

func TestCheckCollectsEverything(t *testing.T) {
	tables, err := dialect.New(nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("dialect.New: %v", err)
	}
	_, err = Check(tables)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Check(empty) error = %v, want *ValidationError", err)
	}
	if len(vErr.MissingKeywords) != 35 {
		t.Fatalf("len(MissingKeywords) = %d, want 35", len(vErr.MissingKeywords))
	}
	if len(vErr.MissingBuiltins) != 49+26 {
		t.Fatalf("len(MissingBuiltins) = %d, want 75", len(vErr.MissingBuiltins))
	}
	if !slices.IsSorted(vErr.MissingBuiltins) {
		t.Fatalf("MissingBuiltins not sorted: %v", vErr.MissingBuiltins)
	}
	msg := vErr.Error()
	if !strings.Contains(msg, "keywords not mapped: False, None, True, and") {
		t.Fatalf("Error() = %q", msg)
	}
}
