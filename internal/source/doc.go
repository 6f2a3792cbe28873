// Package source describes positions in dialect text: byte spans, a line
// index, and 1-based line/column resolution for human-readable reports.
package source
