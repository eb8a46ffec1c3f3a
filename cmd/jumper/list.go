package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-jumper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		games := registry.List()
		if len(games) == 0 {
			fmt.Fprintln(out, "No games available.")
			return
		}

		width := len("ID")
		for _, g := range games {
			width = max(width, len(g.ID))
		}

		fmt.Fprintf(out, "  %-*s  %s\n", width, "ID", "Title")
		fmt.Fprintf(out, "  %-*s  %s\n", width, "--", "-----")
		for _, g := range games {
			fmt.Fprintf(out, "  %-*s  %s\n", width, g.ID, g.Title)
		}
	},
}
