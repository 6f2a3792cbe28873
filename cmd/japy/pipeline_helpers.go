package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"japy/internal/observ"
	"japy/internal/project"
	"japy/internal/pyexec"
	"japy/internal/transpile"
)

const noInputMessage = `no input file: pass file.japy, use --input, or run inside a project with japy.toml`

func transpiler() *transpile.Transpiler {
	if tables == nil {
		return transpile.Default()
	}
	return transpile.New(tables)
}

// resolveInput picks the source to transpile: the explicit path, or the
// manifest entry point when none is given.
func resolveInput(input string, manifest *project.Manifest, manifestFound bool) (string, error) {
	if strings.TrimSpace(input) != "" {
		return input, nil
	}
	if !manifestFound {
		return "", errors.New(noInputMessage)
	}
	return manifest.Resolve(manifest.Config.Package.Main), nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is supplied by the user
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// transpileSource runs the pipeline, printing phase timings to stderr when
// --timings is set.
func transpileSource(cmd *cobra.Command, path, src string) string {
	var timer *observ.Timer
	if wantTimings(cmd) {
		timer = observ.NewTimer()
	}
	code := transpiler().TranspileTimed(src, timer)
	logger.Debug("transpiled", zap.String("path", path), zap.Int("in", len(src)), zap.Int("out", len(code)))
	if timer != nil {
		printTimer(cmd.ErrOrStderr(), timer)
	}
	return code
}

// executeProgram hands code to Python. Interpreter flag wins over the
// manifest; manifest args go before the program.
func executeProgram(cmd *cobra.Command, code, path, interpreter string, manifest *project.Manifest, programArgs []string) error {
	if interpreter == "" && manifest != nil {
		interpreter = manifest.Config.Execute.Interpreter
	}
	var interpArgs []string
	if manifest != nil {
		interpArgs = manifest.Config.Execute.Args
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger.Debug("executing", zap.String("path", path), zap.String("interpreter", interpreter), zap.Strings("args", programArgs))
	err := pyexec.Run(ctx, code, pyexec.Options{
		Interpreter: interpreter,
		Args:        interpArgs,
		ProgramArgs: programArgs,
		Name:        filepath.Base(path),
		Stdin:       cmd.InOrStdin(),
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
	})
	var execErr *pyexec.ExecutionError
	if errors.As(err, &execErr) {
		logger.Debug("execution failed", zap.Int("exit_code", execErr.ExitCode), zap.Error(execErr.Err))
	}
	return err
}
