package main

import (
	"github.com/spf13/cobra"
)

var updateHooksCmd = &cobra.Command{
	Use:   "update-hooks",
	Short: "Update the hooks to their latest revisions",
	Long:  `Run the hook manager's autoupdate to bump every configured hook repository to its latest tagged revision.`,
	Args:  cobra.NoArgs,
	Run:   runUpdateHooks,
}

func init() {
	rootCmd.AddCommand(updateHooksCmd)
}

func runUpdateHooks(cmd *cobra.Command, args []string) {
	fail(newManager().Update(cmd.Context()))
}
