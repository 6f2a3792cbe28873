// Package fuzztests houses Go fuzz harnesses for the JaPy pipeline. They
// check that transpilation never panics on arbitrary bytes and that the
// normalization passes are idempotent.
//
// Does not: generate corpora, write files, or run the CLI.
package fuzztests
