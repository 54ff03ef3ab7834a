package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hookkit/hookkit/internal/command"
	"github.com/hookkit/hookkit/internal/config"
	"github.com/hookkit/hookkit/internal/executil"
	"github.com/hookkit/hookkit/internal/guard"
	"github.com/hookkit/hookkit/internal/precommit"
)

var rootCmd = &cobra.Command{
	Use:   "hookkit",
	Short: "Git hook workflow helper",
	Long:  `hookkit wraps the pre-commit hook manager with convenience commands for installing, updating, and running git hooks.`,
}

// commandTable drives the default listing. Order here is the listing order.
var commandTable = command.NewTable(
	command.Descriptor{Name: "init", Group: "Hooks", Help: "Install the git hooks and update them to their latest revisions"},
	command.Descriptor{Name: "install-hooks", Group: "Hooks", Help: "Reinstall the git hooks and their environments"},
	command.Descriptor{Name: "update-hooks", Group: "Hooks", Help: "Update the hooks to their latest revisions"},
	command.Descriptor{Name: "run-hooks", Group: "Hooks", Help: "Run the hooks against staged changes"},
	command.Descriptor{Name: "run-hooks-all", Group: "Hooks", Help: "Run the hooks against every file in the working tree"},
	command.Descriptor{Name: "lint", Group: "Hooks", Help: "Alias for run-hooks-all"},
	command.Descriptor{Name: "list-hooks", Group: "Configuration", Help: "List the hooks configured for this repository"},
	command.Descriptor{Name: "search-hooks", Group: "Configuration", Help: "Search the pre-commit hooks directory"},
	command.Descriptor{Name: "check-utility-install", Group: "Utilities", Help: "Check that a command-line utility is installed"},
	command.Descriptor{Name: "help", Group: "Utilities", Help: "Print this command listing"},
)

func init() {
	rootCmd.Run = runListing
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:   "help",
		Short: "Print the command listing",
		Run:   runListing,
	})
}

// runListing prints the formatted command listing. It never fails.
func runListing(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s <command>\n", rootCmd.Use)
	commandTable.Render(out)
}

// loadConfig reads the optional .hookkit.toml from the working directory.
func loadConfig() config.Config {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newManager wires the hook manager operations from the loaded configuration.
func newManager() *precommit.Manager {
	cfg := loadConfig()

	g := guard.New()
	g.InstallHint = cfg.Hooks.InstallHint

	return precommit.New(cfg.Hooks, executil.NewStreamRunner(), g)
}

// fail terminates the invocation, forwarding the exit status carried by err.
// Guard failures have already printed their own message.
func fail(err error) {
	if err == nil {
		return
	}
	if !errors.Is(err, guard.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(executil.ExitCode(err))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
