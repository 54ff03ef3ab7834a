package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hookkit/hookkit/internal/guard"
)

var checkUtilityCmd = &cobra.Command{
	Use:   "check-utility-install <utility>",
	Short: "Check that a command-line utility is installed",
	Long:  `Check whether the named utility resolves on the current search path. Succeeds silently when it does; otherwise prints an error with an installation hint and exits non-zero.`,
	Args:  cobra.ExactArgs(1),
	Run:   runCheckUtility,
}

func init() {
	rootCmd.AddCommand(checkUtilityCmd)
}

func runCheckUtility(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	g := guard.New()
	g.InstallHint = cfg.Hooks.InstallHint

	if err := g.Check(args[0]); err != nil {
		os.Exit(1)
	}
}
