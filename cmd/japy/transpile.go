package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"japy/internal/project"
)

// headerLine precedes stdout output when --header is set.
const headerLine = "# transpiled Python code:"

var transpileCmd = &cobra.Command{
	Use:   "transpile [flags] [file.japy]",
	Short: "Transpile a japy source file to Python",
	Long: `Transpile rewrites a japy source file into Python. The result is printed
to stdout unless --output is given. With no file argument the [package].main
entry of japy.toml is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranspile,
}

func init() {
	transpileCmd.Flags().StringP("input", "i", "", "input file (alternative to the positional argument)")
	transpileCmd.Flags().StringP("output", "o", "", "write Python to this file instead of stdout")
	transpileCmd.Flags().Bool("show", true, "print the transpiled code when no --output is given")
	transpileCmd.Flags().Bool("header", false, "prefix printed code with a comment header")
	transpileCmd.Flags().BoolP("execute", "e", false, "run the transpiled code with Python")
	transpileCmd.Flags().Bool("explain", false, "list every keyword and builtin substitution")
	transpileCmd.Flags().String("interpreter", "", "python interpreter for --execute")
}

func runTranspile(cmd *cobra.Command, args []string) error {
	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	show, err := cmd.Flags().GetBool("show")
	if err != nil {
		return err
	}
	header, err := cmd.Flags().GetBool("header")
	if err != nil {
		return err
	}
	execute, err := cmd.Flags().GetBool("execute")
	if err != nil {
		return err
	}
	explain, err := cmd.Flags().GetBool("explain")
	if err != nil {
		return err
	}
	interpreter, err := cmd.Flags().GetString("interpreter")
	if err != nil {
		return err
	}

	if input != "" && len(args) > 0 {
		return errors.New("give the input either as an argument or with --input, not both")
	}
	if len(args) > 0 {
		input = args[0]
	}

	manifest, manifestFound, err := project.LoadManifest(".")
	if err != nil {
		return err
	}
	inputPath, err := resolveInput(input, manifest, manifestFound)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("header") {
		header = manifest.Config.Transpile.Header
	}

	src, err := readSource(inputPath)
	if err != nil {
		return err
	}
	code := transpileSource(cmd, inputPath, src)

	out := cmd.OutOrStdout()
	if explain {
		if err := printExplain(out, src); err != nil {
			return err
		}
	}

	switch {
	case output != "":
		if err := os.WriteFile(output, []byte(code), 0o644); err != nil { //nolint:gosec // generated sources are world-readable
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		logger.Debug("wrote output", zap.String("path", output), zap.Int("bytes", len(code)))
		if !isQuiet(cmd) {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
		}
	case show && !explain:
		if header {
			fmt.Fprintln(out, headerLine)
		}
		if _, err := io.WriteString(out, code); err != nil {
			return err
		}
	}

	if execute {
		return executeProgram(cmd, code, inputPath, interpreter, manifest, nil)
	}
	return nil
}

// printExplain lists substitutions as line:col, dialect token, replacement
// and category. Positions refer to the text after digit and symbol
// normalization.
func printExplain(out io.Writer, src string) error {
	occs, err := transpiler().Explain(src)
	if err != nil {
		return err
	}
	if len(occs) == 0 {
		_, err := fmt.Fprintln(out, "no keyword or builtin substitutions")
		return err
	}
	for _, occ := range occs {
		if _, err := fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", occ.Pos, occ.Dialect, occ.Canonical, occ.Category); err != nil {
			return err
		}
	}
	return nil
}
