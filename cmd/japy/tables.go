package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"japy/internal/dialect"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the dialect mapping tables",
	Long: `Tables prints the keyword, builtin, symbol and digit mappings in the
order they are applied to. --reverse lists canonical text first; when several
glyphs map to the same text only the first listed glyph is shown.`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func init() {
	tablesCmd.Flags().StringP("category", "c", "", "only this table (keyword|builtin|symbol|digit)")
	tablesCmd.Flags().BoolP("reverse", "r", false, "map canonical text back to dialect tokens")
	tablesCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
}

// tableRow is one printed mapping; From/To follow the chosen direction.
type tableRow struct {
	Category dialect.Category `json:"category" yaml:"category"`
	From     string           `json:"from" yaml:"from"`
	To       string           `json:"to" yaml:"to"`
}

func runTables(cmd *cobra.Command, _ []string) error {
	categoryValue, err := cmd.Flags().GetString("category")
	if err != nil {
		return err
	}
	reverse, err := cmd.Flags().GetBool("reverse")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	cats := dialect.Categories
	if categoryValue != "" {
		cat, err := dialect.ParseCategory(strings.ToLower(categoryValue))
		if err != nil {
			return err
		}
		cats = []dialect.Category{cat}
	}
	rows := collectTableRows(tables, cats, reverse)

	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "pretty":
		return renderTablesPretty(out, rows, reverse)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json or yaml)", format)
	}
}

func collectTableRows(t *dialect.Tables, cats []dialect.Category, reverse bool) []tableRow {
	var rows []tableRow
	for _, cat := range cats {
		for _, m := range t.Mappings(cat) {
			if !reverse {
				rows = append(rows, tableRow{Category: cat, From: m.Dialect, To: m.Canonical})
				continue
			}
			// skip glyphs shadowed by an earlier entry with the same text
			if first, ok := t.DialectFor(cat, m.Canonical); ok && first == m.Dialect {
				rows = append(rows, tableRow{Category: cat, From: m.Canonical, To: first})
			}
		}
	}
	return rows
}

func renderTablesPretty(out io.Writer, rows []tableRow, reverse bool) error {
	fromHeader, toHeader := "dialect", "python"
	if reverse {
		fromHeader, toHeader = toHeader, fromHeader
	}
	fromWidth := runewidth.StringWidth(fromHeader)
	for _, r := range rows {
		fromWidth = max(fromWidth, runewidth.StringWidth(r.From))
	}

	header := fmt.Sprintf("%-8s  %s  %s", "category", runewidth.FillRight(fromHeader, fromWidth), toHeader)
	if !color.NoColor {
		header = lipgloss.NewStyle().Bold(true).Underline(true).Render(header)
	}
	if _, err := fmt.Fprintln(out, header); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(out, "%-8s  %s  %s\n", r.Category, runewidth.FillRight(r.From, fromWidth), r.To); err != nil {
			return err
		}
	}
	return nil
}
