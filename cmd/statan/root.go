package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statan",
		Short: "statan is a whole-project static analyzer",
		Long: `statan analyses a directory of source files and reports errors, warnings,
and notes keyed by file and line, without modifying or executing them.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newAnalyseCmd())
	return cmd
}
