// Package pyexec runs transpiled text with an external Python interpreter.
// The program is staged in a temporary file so the child's stdin stays
// attached to whatever the caller passes (usually the terminal).
package pyexec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultInterpreters are tried in order when no interpreter is configured.
var DefaultInterpreters = []string{"python3", "python"}

// ErrNoInterpreter is returned when no candidate interpreter is on PATH.
var ErrNoInterpreter = errors.New("no python interpreter found")

// ExecutionError reports that the interpreter ran and failed.
type ExecutionError struct {
	Interpreter string
	ExitCode    int
	Err         error
}

func (e *ExecutionError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s exited with status %d", e.Interpreter, e.ExitCode)
	}
	return fmt.Sprintf("%s failed: %v", e.Interpreter, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// Options configure one run. Zero values use the process's own stdio.
type Options struct {
	Interpreter string
	// Args go to the interpreter, before the program.
	Args []string
	// ProgramArgs become sys.argv[1:] of the program.
	ProgramArgs []string
	// Name is shown in tracebacks as the script name.
	Name   string
	Dir    string
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Resolve picks the interpreter binary: the configured one if set, otherwise
// the first of DefaultInterpreters found on PATH.
func Resolve(configured string) (string, error) {
	if c := strings.TrimSpace(configured); c != "" {
		path, err := exec.LookPath(c)
		if err != nil {
			return "", fmt.Errorf("interpreter %q: %w", c, err)
		}
		return path, nil
	}
	for _, name := range DefaultInterpreters {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrNoInterpreter
}

// Run executes code and waits for it. Cancelling ctx kills the interpreter.
func Run(ctx context.Context, code string, opts Options) error {
	interp, err := Resolve(opts.Interpreter)
	if err != nil {
		return err
	}
	staged, err := os.CreateTemp("", "japy-*.py")
	if err != nil {
		return fmt.Errorf("failed to stage program: %w", err)
	}
	defer func() { _ = os.Remove(staged.Name()) }()
	if _, err := staged.WriteString(code); err != nil {
		_ = staged.Close()
		return fmt.Errorf("failed to stage program: %w", err)
	}
	if err := staged.Close(); err != nil {
		return fmt.Errorf("failed to stage program: %w", err)
	}

	args := append([]string(nil), opts.Args...)
	args = append(args, "-c", bootstrap, staged.Name(), opts.scriptName())
	args = append(args, opts.ProgramArgs...)

	cmd := exec.CommandContext(ctx, interp, args...)
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env
	cmd.Stdin = orReader(opts.Stdin, os.Stdin)
	cmd.Stdout = orWriter(opts.Stdout, os.Stdout)
	cmd.Stderr = orWriter(opts.Stderr, os.Stderr)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExecutionError{Interpreter: interp, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &ExecutionError{Interpreter: interp, ExitCode: -1, Err: err}
	}
	return nil
}

// bootstrap compiles the staged program under its display name so
// tracebacks point at the source file rather than the temp copy.
const bootstrap = `import sys
path, name = sys.argv[1], sys.argv[2]
sys.argv = [name] + sys.argv[3:]
with open(path, encoding="utf-8") as f:
    src = f.read()
exec(compile(src, name, "exec"), {"__name__": "__main__", "__file__": name})
`

func (o Options) scriptName() string {
	if o.Name == "" {
		return "<japy>"
	}
	return o.Name
}

func orReader(r, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orWriter(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
