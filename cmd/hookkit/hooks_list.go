package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hookkit/hookkit/internal/command"
	"github.com/hookkit/hookkit/internal/hookcfg"
)

var listHooksCmd = &cobra.Command{
	Use:   "list-hooks",
	Short: "List the hooks configured for this repository",
	Long:  `Read the hook manager's configuration file and list the configured hooks, grouped by the repository they ship in.`,
	Args:  cobra.NoArgs,
	Run:   runListHooks,
}

func init() {
	rootCmd.AddCommand(listHooksCmd)
}

func runListHooks(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	f, err := hookcfg.Load(cfg.Hooks.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	title := color.New(color.Bold)

	for _, repo := range f.Repos {
		label := repo.Repo
		if repo.Rev != "" {
			label += " @ " + repo.Rev
		}
		fmt.Fprintf(out, "\n%s\n", title.Sprint(label))

		for _, h := range repo.Hooks {
			fmt.Fprintf(out, "  %-*s %s\n", command.NameColumnWidth, h.ID, h.Name)
		}
	}

	fmt.Fprintf(out, "\n%d hooks configured\n", f.HookCount())
}
