package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"japy/internal/project"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [file.japy] [-- program args...]",
	Short: "Transpile and execute a japy program",
	Long: `Run transpiles a japy source file and executes the result with Python
without printing it. Arguments after -- are passed to the program.`,
	RunE: runExecution,
}

func init() {
	runCmd.Flags().String("interpreter", "", "python interpreter (default: python3, then python)")
}

func runExecution(cmd *cobra.Command, args []string) error {
	interpreter, err := cmd.Flags().GetString("interpreter")
	if err != nil {
		return err
	}
	argsBeforeDash, programArgs := splitArgsAtDash(cmd, args)
	if len(argsBeforeDash) > 1 {
		return fmt.Errorf("accepts at most 1 file argument before --, received %d", len(argsBeforeDash))
	}
	var input string
	if len(argsBeforeDash) == 1 {
		input = argsBeforeDash[0]
	}

	manifest, manifestFound, err := project.LoadManifest(".")
	if err != nil {
		return err
	}
	inputPath, err := resolveInput(input, manifest, manifestFound)
	if err != nil {
		return err
	}
	src, err := readSource(inputPath)
	if err != nil {
		return err
	}
	code := transpileSource(cmd, inputPath, src)
	return executeProgram(cmd, code, inputPath, interpreter, manifest, programArgs)
}

// splitArgsAtDash separates positional arguments from those after "--".
func splitArgsAtDash(cmd *cobra.Command, args []string) (before, after []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}
