// Package transpile rewrites JaPy source into Python source: digits, then
// symbols, then whole-token keyword and builtin substitution.
//
// Transpile is total. Any text, however malformed as JaPy, yields a
// best-effort rewrite; nothing here checks that the output is valid Python.
package transpile

import (
	"sync"

	"japy/internal/dialect"
	"japy/internal/normalize"
	"japy/internal/observ"
	"japy/internal/subst"
)

// Transpiler is safe for concurrent use; it holds no per-call state.
type Transpiler struct {
	norm  *normalize.Normalizer
	subst *subst.Substituter
}

// New builds a Transpiler over t.
func New(t *dialect.Tables) *Transpiler {
	return &Transpiler{
		norm:  normalize.New(t),
		subst: subst.New(t),
	}
}

// Transpile runs the full pipeline.
func (tr *Transpiler) Transpile(src string) string {
	return tr.TranspileTimed(src, nil)
}

// TranspileTimed runs the full pipeline and records each pass in timer,
// which may be nil.
func (tr *Transpiler) TranspileTimed(src string, timer *observ.Timer) string {
	out := timer.Pass("digits", src, tr.norm.Digits)
	out = timer.Pass("symbols", out, tr.norm.Symbols)
	return timer.Pass("substitute", out, tr.subst.Substitute)
}

// Explain normalizes src and reports the keyword and builtin matches the
// substitution pass will replace, positioned in the normalized text.
func (tr *Transpiler) Explain(src string) ([]subst.Occurrence, error) {
	return tr.subst.Occurrences(tr.norm.Symbols(tr.norm.Digits(src)))
}

var defaultTranspiler = sync.OnceValue(func() *Transpiler {
	return New(dialect.Default())
})

// Default returns the Transpiler over the shipped tables.
func Default() *Transpiler {
	return defaultTranspiler()
}

// Transpile rewrites src with the shipped tables.
func Transpile(src string) string {
	return Default().Transpile(src)
}
