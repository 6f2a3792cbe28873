// Package main implements the japy CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"japy/internal/dialect"
	"japy/internal/version"
)

var (
	logger = zap.NewNop()
	// tables is loaded once per invocation before any subcommand runs.
	tables *dialect.Tables
	// colorMode backs --color.
	colorMode autoMode
)

var rootCmd = &cobra.Command{
	Use:   "japy",
	Short: "Katakana Python dialect transpiler",
	Long: `japy rewrites programs written in the Katakana Python dialect into
plain Python: full-width digits and symbols become ASCII, and Katakana
keywords and builtins become their Python names.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupRoot,
	PersistentPostRun: func(*cobra.Command, []string) {
		stopProfiling()
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.AddCommand(transpileCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Var(newAutoMode(&colorMode), "color", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime trace to this file")
}

// main executes the root command. Any error exits with status 1.
func main() {
	rootCmd.Version = version.Version
	err := rootCmd.Execute()
	// PersistentPostRun is skipped when a command fails
	stopProfiling()
	if err != nil {
		os.Exit(1)
	}
}

func setupRoot(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return err
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return err
	}
	color.NoColor = !colorMode.enabled(stdoutIsTerminal)

	l, err := newLogger(verbose, quiet)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l

	if err := setupProfiling(cmd); err != nil {
		return err
	}

	t, err := dialect.Load()
	if err != nil {
		logger.Error("dialect tables are inconsistent", zap.Error(err))
		return err
	}
	tables = t
	logger.Debug("tables loaded",
		zap.Int("keywords", t.Len(dialect.Keyword)),
		zap.Int("builtins", t.Len(dialect.Builtin)),
		zap.Int("symbols", t.Len(dialect.Symbol)),
		zap.Int("digits", t.Len(dialect.Digit)),
	)
	return nil
}

func newLogger(verbose, quiet bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	switch {
	case verbose:
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case quiet:
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return config.Build()
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	return err == nil && quiet
}

func wantTimings(cmd *cobra.Command) bool {
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	return err == nil && timings
}
