package main

import (
	"github.com/spf13/cobra"
)

var installHooksCmd = &cobra.Command{
	Use:   "install-hooks",
	Short: "Reinstall the git hooks and their environments",
	Long:  `Uninstall any existing pre-commit and commit-msg hooks, then install fresh ones along with the hook environments they depend on. Uninstalling hooks that were never installed is not an error.`,
	Args:  cobra.NoArgs,
	Run:   runInstallHooks,
}

func init() {
	rootCmd.AddCommand(installHooksCmd)
}

func runInstallHooks(cmd *cobra.Command, args []string) {
	fail(newManager().Install(cmd.Context()))
}
