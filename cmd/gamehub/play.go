package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamehub/internal/platform/tui"
	"github.com/vovakirdan/gamehub/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/hjkl/wasd - Move (Block Stack: up rotates, down drops)
  Space/P          - Pause
  R                - Reset
  Esc/B            - Leave the game
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower drops, more lives, longer power mode
  normal - Defaults
  hard   - Faster drops, fewer lives, shorter power mode

Examples:
  gamehub play blockstack
  gamehub play mazechase --difficulty easy
  gamehub play blockstack --seed 42
  gamehub play mazechase --config ./my-maze.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'gamehub list' to see available games)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
