package dialect

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultTablesLoad(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := map[Category]int{Keyword: 35, Builtin: 75, Symbol: 38, Digit: 10}
	for cat, n := range want {
		if got := tables.Len(cat); got != n {
			t.Fatalf("Len(%v) = %d, want %d", cat, got, n)
		}
	}
	if got := len(tables.Translation()); got != 35+75 {
		t.Fatalf("len(Translation()) = %d, want %d", got, 35+75)
	}
}

func TestLoadIsSingleton(t *testing.T) {
	a, _ := Load()
	b, _ := Load()
	if a != b {
		t.Fatalf("Load returned different tables on second call")
	}
}

func TestCanonicalValuesAreNeverDialectTokens(t *testing.T) {
	tables := Default()
	keys := map[string]bool{}
	for _, cat := range Categories {
		for _, m := range tables.Mappings(cat) {
			keys[m.Dialect] = true
		}
	}
	for _, cat := range Categories {
		for _, m := range tables.Mappings(cat) {
			if keys[m.Canonical] {
				t.Fatalf("canonical %q (%v) is also a dialect token", m.Canonical, cat)
			}
		}
	}
}

func TestMappingsReturnsCopy(t *testing.T) {
	tables := Default()
	kws := tables.Mappings(Keyword)
	kws[0].Canonical = "mutated"
	if got := tables.Mappings(Keyword)[0].Canonical; got != "True" {
		t.Fatalf("table mutated through copy: first keyword = %q", got)
	}
}

func TestNewRejectsBrokenTables(t *testing.T) {
	cases := []struct {
		name    string
		keyword []Mapping
		builtin []Mapping
		symbol  []Mapping
		digit   []Mapping
		want    string
	}{
		{
			name:    "cross-category collision",
			keyword: []Mapping{kw("イン", "in")},
			builtin: []Mapping{bi("イン", "int")},
			want:    `token "イン" is both a keyword and a builtin`,
		},
		{
			name:    "duplicate within category",
			keyword: []Mapping{kw("イフ", "if"), kw("イフ", "elif")},
			want:    `duplicate keyword token "イフ"`,
		},
		{
			name:    "shared canonical value",
			keyword: []Mapping{kw("イフ", "if"), kw("モシ", "if")},
			want:    `"if" is reachable from both "イフ" and "モシ"`,
		},
		{
			name:    "non-word rune in token",
			builtin: []Mapping{bi("プリ・ント", "print")},
			want:    "contains non-word rune",
		},
		{
			name:    "canonical not an identifier",
			builtin: []Mapping{bi("プリント", "print()")},
			want:    "not an identifier",
		},
		{
			name:    "empty token",
			keyword: []Mapping{kw("", "if")},
			want:    "empty keyword mapping",
		},
		{
			name:  "digit fold mismatch",
			digit: []Mapping{dig("１", "7")},
			want:  `digit glyph "１" folds to "1", not "7"`,
		},
		{
			name:   "canonical is a dialect token",
			symbol: []Mapping{sym("（", "("), sym("(", "[")},
			want:   `canonical symbol value "(" is also a symbol token`,
		},
		{
			name:    "wrong tag",
			keyword: []Mapping{bi("プリント", "print")},
			want:    "listed in the keyword table but tagged builtin",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.keyword, tc.builtin, tc.symbol, tc.digit)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("New() error = %v, want *ConfigError", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("New() error = %q, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestConfigErrorCollectsEveryProblem(t *testing.T) {
	_, err := New(
		[]Mapping{kw("イン", "in"), kw("イン", "in")},
		[]Mapping{bi("イン", "int")},
		nil,
		[]Mapping{dig("１", "2")},
	)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("New() error = %v, want *ConfigError", err)
	}
	if len(cfgErr.Problems) != 3 {
		t.Fatalf("len(Problems) = %d, want 3: %v", len(cfgErr.Problems), cfgErr.Problems)
	}
}

func TestLookup(t *testing.T) {
	tables := Default()
	m, ok := tables.Lookup("プリント")
	if !ok || m.Canonical != "print" || m.Category != Builtin {
		t.Fatalf("Lookup(プリント) = %+v, %v", m, ok)
	}
	if _, ok := tables.Lookup("（"); ok {
		t.Fatalf("Lookup found a symbol; symbols are not part of the translation table")
	}
}

func TestDialectFor(t *testing.T) {
	tables := Default()
	cases := []struct {
		cat       Category
		canonical string
		want      string
	}{
		{Keyword, "def", "デフ"},
		{Builtin, "isinstance", "イズインスタンス"},
		{Symbol, "*", "×"},
		{Symbol, ".", "。"},
		{Symbol, `"`, "「"},
		{Digit, "7", "７"},
	}
	for _, tc := range cases {
		got, ok := tables.DialectFor(tc.cat, tc.canonical)
		if !ok || got != tc.want {
			t.Fatalf("DialectFor(%v, %q) = %q, %v, want %q", tc.cat, tc.canonical, got, ok, tc.want)
		}
	}
	if _, ok := tables.DialectFor(Keyword, "print"); ok {
		t.Fatalf("DialectFor(Keyword, print) should miss")
	}
}

func TestComplete(t *testing.T) {
	tables := Default()
	got := tables.Complete("イズ")
	want := []string{"イズ", "イズインスタンス", "イズサブクラス"}
	if len(got) != len(want) {
		t.Fatalf("Complete(イズ) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Dialect != want[i] {
			t.Fatalf("Complete(イズ)[%d] = %q, want %q", i, got[i].Dialect, want[i])
		}
	}
	if n := len(tables.Complete("")); n != 110 {
		t.Fatalf("len(Complete(\"\")) = %d, want 110", n)
	}
	if n := len(tables.Complete("zz")); n != 0 {
		t.Fatalf("len(Complete(zz)) = %d, want 0", n)
	}
}

func TestWithoutAndFingerprint(t *testing.T) {
	tables := Default()
	reduced, err := tables.Without(Builtin, "プリント")
	if err != nil {
		t.Fatalf("Without() error: %v", err)
	}
	if reduced.Len(Builtin) != tables.Len(Builtin)-1 {
		t.Fatalf("Without removed %d entries", tables.Len(Builtin)-reduced.Len(Builtin))
	}
	if _, ok := reduced.Lookup("プリント"); ok {
		t.Fatalf("removed token still present")
	}
	if reduced.Fingerprint() == tables.Fingerprint() {
		t.Fatalf("fingerprint did not change after removing an entry")
	}
	if tables.Fingerprint() != Default().Fingerprint() {
		t.Fatalf("fingerprint is not stable")
	}
}

func TestIsWordRune(t *testing.T) {
	word := []rune{'a', 'Z', '9', '_', 'ア', 'ー', 'ｱ', 'ﾞ', '漢', 'ひ', '\u3099', '１'}
	for _, r := range word {
		if !IsWordRune(r) {
			t.Fatalf("IsWordRune(%q) = false, want true", r)
		}
	}
	nonWord := []rune{' ', '(', '・', '、', '。', '「', '-', '\n', '＿'}
	for _, r := range nonWord {
		if IsWordRune(r) {
			t.Fatalf("IsWordRune(%q) = true, want false", r)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]Category{"kw": Keyword, "builtins": Builtin, "symbol": Symbol, "digits": Digit} {
		got, err := ParseCategory(in)
		if err != nil || got != want {
			t.Fatalf("ParseCategory(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseCategory("nope"); err == nil {
		t.Fatalf("ParseCategory(nope) should fail")
	}
}
