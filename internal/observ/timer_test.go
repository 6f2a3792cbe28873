package observ

import (
	"strings"
	"testing"
)

func TestTimerRecordsPhasesInOrder(t *testing.T) {
	tm := NewTimer()
	a := tm.Begin("digits")
	tm.End(a, "")
	b := tm.Begin("symbols")
	tm.End(b, "3 glyphs")

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "digits" || r.Phases[1].Note != "3 glyphs" {
		t.Fatalf("Report() = %+v", r)
	}
	sum := tm.Summary()
	if !strings.Contains(sum, "symbols") || !strings.Contains(sum, "// 3 glyphs") || !strings.Contains(sum, "total") {
		t.Fatalf("Summary() = %q", sum)
	}
}

func TestNilTimerIsNoop(t *testing.T) {
	var tm *Timer
	idx := tm.Begin("x")
	tm.End(idx, "note")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatalf("nil timer reported phases: %+v", r)
	}
}

func TestEndIgnoresBadIndex(t *testing.T) {
	tm := NewTimer()
	tm.End(5, "x")
	tm.End(-1, "x")
	if len(tm.Report().Phases) != 0 {
		t.Fatalf("unexpected phases")
	}
}

func TestPassNotesSizeChange(t *testing.T) {
	tm := NewTimer()
	out := tm.Pass("symbols", "（）", func(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "（", "("), "）", ")") })
	if out != "()" {
		t.Fatalf("Pass = %q", out)
	}
	r := tm.Report()
	if len(r.Phases) != 1 || r.Phases[0].Note != "6 -> 2 bytes" {
		t.Fatalf("Report() = %+v", r)
	}

	var none *Timer
	if got := none.Pass("x", "a", strings.ToUpper); got != "A" {
		t.Fatalf("nil Pass = %q", got)
	}
}
