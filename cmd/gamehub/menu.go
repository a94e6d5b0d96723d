package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamehub/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the hub with a game picker menu",
	Long: `Start the hub in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press Esc or B in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit

Examples:
  gamehub menu
  gamehub menu --difficulty hard
  gamehub menu --log-file ./gamehub.log`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.RunSession(runtimeConfig(), logger)
}
