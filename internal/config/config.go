// Package config provides YAML-based game configuration loading and
// difficulty presets for the game hub.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every configuration validation error.
var ErrInvalid = errors.New("invalid configuration")

// Error describes a single configuration defect detected at engine construction.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrInvalid).
func (e *Error) Unwrap() error {
	return ErrInvalid
}

// Invalid builds an *Error for the given field.
func Invalid(field, format string, args ...any) error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// GridPoint is a cell coordinate as written in config files.
type GridPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// BlockStackConfig contains all configuration for the falling-block game.
type BlockStackConfig struct {
	Board   BlockStackBoard   `yaml:"board"`
	Timing  BlockStackTiming  `yaml:"timing"`
	Scoring BlockStackScoring `yaml:"scoring"`
	Pieces  []PieceDef        `yaml:"pieces"`
}

// BlockStackBoard defines the board dimensions.
type BlockStackBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BlockStackTiming defines the automatic drop cadence.
// interval(level) = max(MinDropMS, BaseDropMS - (level-1)*LevelStepMS)
type BlockStackTiming struct {
	BaseDropMS  int `yaml:"base_drop_ms"`
	LevelStepMS int `yaml:"level_step_ms"`
	MinDropMS   int `yaml:"min_drop_ms"`
}

// BlockStackScoring defines line-clear scoring and level progression.
type BlockStackScoring struct {
	PointsPerLine int `yaml:"points_per_line"` // Multiplied by lines cleared and current level
	LinesPerLevel int `yaml:"lines_per_level"`
}

// PieceDef is one entry of the shape palette.
// Shape rows use '#' for occupied and '.' for empty cells.
type PieceDef struct {
	Name  string   `yaml:"name"`
	Color string   `yaml:"color"`
	Shape []string `yaml:"shape"`
}

// Validate checks the numeric fields. Shapes are checked by the engine.
func (c BlockStackConfig) Validate() error {
	switch {
	case c.Board.Width < 4:
		return Invalid("board.width", "must be at least 4, got %d", c.Board.Width)
	case c.Board.Height < 4:
		return Invalid("board.height", "must be at least 4, got %d", c.Board.Height)
	case c.Timing.MinDropMS <= 0:
		return Invalid("timing.min_drop_ms", "must be positive, got %d", c.Timing.MinDropMS)
	case c.Timing.BaseDropMS < c.Timing.MinDropMS:
		return Invalid("timing.base_drop_ms", "must be >= min_drop_ms (%d), got %d", c.Timing.MinDropMS, c.Timing.BaseDropMS)
	case c.Timing.LevelStepMS < 0:
		return Invalid("timing.level_step_ms", "must not be negative, got %d", c.Timing.LevelStepMS)
	case c.Scoring.PointsPerLine < 0:
		return Invalid("scoring.points_per_line", "must not be negative, got %d", c.Scoring.PointsPerLine)
	case c.Scoring.LinesPerLevel <= 0:
		return Invalid("scoring.lines_per_level", "must be positive, got %d", c.Scoring.LinesPerLevel)
	case len(c.Pieces) == 0:
		return Invalid("pieces", "palette is empty")
	}
	return nil
}

// MazeChaseConfig contains all configuration for the maze-chase game.
type MazeChaseConfig struct {
	Maze     MazeLayout   `yaml:"maze"`
	Player   MazePlayer   `yaml:"player"`
	Rally    GridPoint    `yaml:"rally"`
	Pursuers []PursuerDef `yaml:"pursuers"`
	Scoring  MazeScoring  `yaml:"scoring"`
	Timing   MazeTiming   `yaml:"timing"`
	Gameplay MazeGameplay `yaml:"gameplay"`
}

// MazeLayout holds the maze rows.
// Cells: '#' wall, ' ' empty, '.' pellet, 'o' power pellet, '=' tunnel.
type MazeLayout struct {
	Rows       []string `yaml:"rows"`
	TunnelWrap bool     `yaml:"tunnel_wrap"`
}

// MazePlayer defines where and how the player spawns.
type MazePlayer struct {
	Start  GridPoint `yaml:"start"`
	Facing string    `yaml:"facing"`
}

// PursuerDef defines one pursuer's identity and initial facing.
type PursuerDef struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color"`
	Facing string `yaml:"facing"`
}

// MazeScoring defines points per event.
type MazeScoring struct {
	Pellet      int `yaml:"pellet"`
	PowerPellet int `yaml:"power_pellet"`
	Pursuer     int `yaml:"pursuer"`
}

// MazeTiming defines the two scheduler cadences.
type MazeTiming struct {
	TickMS      int `yaml:"tick_ms"`
	PowerTickMS int `yaml:"power_tick_ms"`
}

// MazeGameplay defines lives and power mode length.
type MazeGameplay struct {
	Lives         int `yaml:"lives"`
	PowerDuration int `yaml:"power_duration"` // Counted in power ticks
}

// Validate checks the numeric fields. The layout is checked by the engine.
func (c MazeChaseConfig) Validate() error {
	switch {
	case len(c.Maze.Rows) == 0:
		return Invalid("maze.rows", "layout is empty")
	case c.Timing.TickMS <= 0:
		return Invalid("timing.tick_ms", "must be positive, got %d", c.Timing.TickMS)
	case c.Timing.PowerTickMS <= 0:
		return Invalid("timing.power_tick_ms", "must be positive, got %d", c.Timing.PowerTickMS)
	case c.Gameplay.Lives <= 0:
		return Invalid("gameplay.lives", "must be positive, got %d", c.Gameplay.Lives)
	case c.Gameplay.PowerDuration <= 0:
		return Invalid("gameplay.power_duration", "must be positive, got %d", c.Gameplay.PowerDuration)
	case c.Scoring.Pellet < 0 || c.Scoring.PowerPellet < 0 || c.Scoring.Pursuer < 0:
		return Invalid("scoring", "points must not be negative")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}
