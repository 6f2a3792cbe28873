package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete [prefix]",
	Short: "List keywords and builtins starting with a prefix",
	Long: `Complete prints every keyword and builtin whose dialect token starts with
prefix as tab-separated dialect, python and category columns, ordered by
token. Editors can call it to offer completions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	var prefix string
	if len(args) == 1 {
		prefix = args[0]
	}
	out := cmd.OutOrStdout()
	for _, m := range tables.Complete(prefix) {
		if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", m.Dialect, m.Canonical, m.Category); err != nil {
			return err
		}
	}
	return nil
}
