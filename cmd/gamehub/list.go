package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamehub/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the hub.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	games := registry.List()
	out := cmd.OutOrStdout()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	// Calculate column widths
	idLen, titleLen := len("ID"), len("Title")
	for _, g := range games {
		idLen = max(idLen, len(g.ID))
		titleLen = max(titleLen, len(g.Title))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idLen, "ID", titleLen, "Title", "Description")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idLen, "--", titleLen, "-----", "-----------")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idLen, g.ID, titleLen, g.Title, g.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'gamehub play <id>' to play a game.")
}
