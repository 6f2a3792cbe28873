// Package dialect defines the static mapping tables of the JaPy dialect:
// Katakana lexemes standing for Python reserved words and builtin names, plus
// the full-width punctuation and digit glyphs that fold to ASCII.
//
// Invariants:
//   - Tables are built once and never mutated; every accessor hands out copies.
//   - A dialect token is unique within its category, and unique across the
//     Keyword and Builtin categories combined.
//   - No canonical value is itself a dialect token, so substituted output is
//     never matched again by a later pass.
package dialect
