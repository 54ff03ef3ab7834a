package main

import (
	"github.com/spf13/cobra"

	"github.com/hookkit/hookkit/internal/precommit"
)

var runHooksCmd = &cobra.Command{
	Use:   "run-hooks",
	Short: "Run the hooks against staged changes",
	Long:  `Run the configured hooks against the currently staged change set. The hook manager's exit status and output are propagated verbatim.`,
	Args:  cobra.NoArgs,
	Run:   runHooksStaged,
}

var runHooksAllCmd = &cobra.Command{
	Use:   "run-hooks-all",
	Short: "Run the hooks against every file in the working tree",
	Long:  `Run the configured hooks against every file in the working tree, forcing colorized output regardless of the terminal.`,
	Args:  cobra.NoArgs,
	Run:   runHooksAll,
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Alias for run-hooks-all",
	Long:  `Identical to run-hooks-all: run the configured hooks against every file in the working tree with forced color.`,
	Args:  cobra.NoArgs,
	Run:   runHooksAll,
}

func init() {
	rootCmd.AddCommand(runHooksCmd)
	rootCmd.AddCommand(runHooksAllCmd)
	rootCmd.AddCommand(lintCmd)
}

func runHooksStaged(cmd *cobra.Command, args []string) {
	fail(newManager().Run(cmd.Context(), precommit.RunOptions{}))
}

func runHooksAll(cmd *cobra.Command, args []string) {
	fail(newManager().Run(cmd.Context(), precommit.RunAll))
}
