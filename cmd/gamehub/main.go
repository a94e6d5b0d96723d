// gamehub is a terminal game hub with a falling-block puzzle and a maze chase.
//
// Usage:
//
//	gamehub list              - List available games
//	gamehub play <game>       - Play a game
//	gamehub menu              - Start menu to pick games interactively
//	gamehub serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load game config from a YAML file
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-file <path>     - Write session logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gamehub/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/gamehub/internal/games/blockstack"
	_ "github.com/vovakirdan/gamehub/internal/games/mazechase"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gamehub",
	Short: "Game Hub - Block Stack and Maze Chase in your terminal",
	Long: `Game Hub is a terminal-based gaming platform with two classic-style
games: a falling-block puzzle and a maze chase.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play

Examples:
  gamehub list
  gamehub play blockstack
  gamehub play mazechase --difficulty hard
  gamehub menu --log-file ./gamehub.log
  gamehub serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig builds the game config from global flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty
	return cfg
}

// openLogger returns a logger writing to --log-file, or a discarding one.
// The terminal belongs to the TUI, so interactive commands never log to it.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "gamehub",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}
