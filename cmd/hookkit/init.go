package main

import (
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install the git hooks and update them to their latest revisions",
	Long:  `Run install-hooks followed by update-hooks. The sequence stops at the first failing step.`,
	Args:  cobra.NoArgs,
	Run:   runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) {
	fail(newManager().Init(cmd.Context()))
}
