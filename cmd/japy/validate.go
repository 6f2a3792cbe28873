package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"japy/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the mapping tables cover every Python keyword and builtin",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var (
	okColor      = color.New(color.FgGreen)
	missingColor = color.New(color.FgRed, color.Bold)
)

func runValidate(cmd *cobra.Command, _ []string) error {
	summary, err := validate.Check(tables)
	out := cmd.OutOrStdout()
	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		printMissing(cmd.ErrOrStderr(), "keywords", verr.MissingKeywords)
		printMissing(cmd.ErrOrStderr(), "builtins", verr.MissingBuiltins)
		return err
	}
	if err != nil {
		return err
	}
	if isQuiet(cmd) {
		return nil
	}
	for _, line := range strings.SplitAfter(summary.String(), "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "all ") {
			okColor.Fprint(out, line)
			continue
		}
		fmt.Fprint(out, line)
	}
	return nil
}

func printMissing(out io.Writer, what string, names []string) {
	if len(names) == 0 {
		return
	}
	missingColor.Fprintf(out, "missing %s (%d):\n", what, len(names))
	for _, name := range names {
		fmt.Fprintf(out, "  - %s\n", name)
	}
}
