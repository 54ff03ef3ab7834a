package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hookkit/hookkit/internal/command"
	"github.com/hookkit/hookkit/internal/directory"
)

var searchHooksCmd = &cobra.Command{
	Use:   "search-hooks <term>",
	Short: "Search the pre-commit hooks directory",
	Long:  `Fetch the hook manager's online hooks directory and list the hooks whose repository, id, or description matches the given term.`,
	Args:  cobra.ExactArgs(1),
	Run:   runSearchHooks,
}

func init() {
	rootCmd.AddCommand(searchHooksCmd)
}

func runSearchHooks(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	term := args[0]

	client := directory.NewClient(cfg.Directory.URL)
	entries, err := client.Search(cmd.Context(), term)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintf(out, "No hooks matched %q\n", term)
		return
	}

	title := color.New(color.Bold)
	var lastRepo string
	for _, e := range entries {
		if e.Repo != lastRepo {
			fmt.Fprintf(out, "\n%s\n", title.Sprint(e.Repo))
			lastRepo = e.Repo
		}
		fmt.Fprintf(out, "  %-*s %s\n", command.NameColumnWidth, e.Hook, e.Description)
	}
}
