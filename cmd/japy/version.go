package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"japy/internal/dialect"
	"japy/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	Keywords  int    `json:"keywords"`
	Builtins  int    `json:"builtins"`
	Symbols   int    `json:"symbols"`
	Digits    int    `json:"digits"`
	Tables    string `json:"tables_fingerprint"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show japy build and table information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		switch strings.ToLower(format) {
		case "pretty":
			return renderVersionPretty(cmd.OutOrStdout())
		case "json":
			return renderVersionJSON(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
		}
	},
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func collectVersion() versionPayload {
	fp := tables.Fingerprint()
	return versionPayload{
		Tool:      "japy",
		Version:   valueOrUnknown(strings.TrimSpace(version.Version)),
		GitCommit: strings.TrimSpace(version.GitCommit),
		BuildDate: strings.TrimSpace(version.BuildDate),
		Keywords:  tables.Len(dialect.Keyword),
		Builtins:  tables.Len(dialect.Builtin),
		Symbols:   tables.Len(dialect.Symbol),
		Digits:    tables.Len(dialect.Digit),
		Tables:    fmt.Sprintf("%x", fp[:8]),
	}
}

func renderVersionPretty(out io.Writer) error {
	info := collectVersion()
	_, err := fmt.Fprintf(out, "%s\ntables %s: %d keywords, %d builtins, %d symbols, %d digits\n",
		version.String(), info.Tables, info.Keywords, info.Builtins, info.Symbols, info.Digits)
	return err
}

func renderVersionJSON(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(collectVersion())
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
