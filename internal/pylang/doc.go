// Package pylang holds the name inventory of the canonical target language
// (CPython 3.12): its reserved words, the builtin callables that are not
// types, and the builtin type names that are commonly called like functions.
//
// The lists are literal data taken from the language reference and
// `dir(builtins)`; nothing here is discovered at runtime.
package pylang
