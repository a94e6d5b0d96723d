package config

import (
	_ "embed"
)

//go:embed defaults/blockstack.yaml
var defaultBlockStackYAML []byte

//go:embed defaults/mazechase.yaml
var defaultMazeChaseYAML []byte

// DefaultBlockStackConfig returns the default Block Stack configuration:
// a 10x20 board, the seven tetromino shapes, 1000ms base drop shortened by
// 100ms per level down to 100ms, 100 points per line times level.
func DefaultBlockStackConfig() BlockStackConfig {
	return BlockStackConfig{
		Board: BlockStackBoard{
			Width:  10,
			Height: 20,
		},
		Timing: BlockStackTiming{
			BaseDropMS:  1000,
			LevelStepMS: 100,
			MinDropMS:   100,
		},
		Scoring: BlockStackScoring{
			PointsPerLine: 100,
			LinesPerLevel: 10,
		},
		Pieces: []PieceDef{
			{Name: "I", Color: "cyan", Shape: []string{"####"}},
			{Name: "O", Color: "yellow", Shape: []string{"##", "##"}},
			{Name: "T", Color: "purple", Shape: []string{".#.", "###"}},
			{Name: "S", Color: "green", Shape: []string{".##", "##."}},
			{Name: "Z", Color: "red", Shape: []string{"##.", ".##"}},
			{Name: "L", Color: "orange", Shape: []string{"#..", "###"}},
			{Name: "J", Color: "blue", Shape: []string{"..#", "###"}},
		},
	}
}

// DefaultMazeRows is the built-in 19x21 maze.
var DefaultMazeRows = []string{
	"###################",
	"#........#........#",
	"#o###.#######.###o#",
	"#.................#",
	"#.###.### ###.###.#",
	"#.....#.....#.....#",
	"#####.#.###.#.#####",
	"=   #.#.# #.#.#   =",
	"#####.#.###.#.#####",
	"#.................#",
	"#.###.### ###.###.#",
	"#.....#.....#.....#",
	"#####.#.###.#.#####",
	"=   #.#.# #.#.#   =",
	"#####.#.###.#.#####",
	"#.................#",
	"#.###.### ###.###.#",
	"#.....#.....#.....#",
	"#o###.#######.###o#",
	"#........#........#",
	"###################",
}

// DefaultMazeChaseConfig returns the default Maze Chase configuration.
func DefaultMazeChaseConfig() MazeChaseConfig {
	rows := make([]string, len(DefaultMazeRows))
	copy(rows, DefaultMazeRows)

	return MazeChaseConfig{
		Maze: MazeLayout{
			Rows:       rows,
			TunnelWrap: false,
		},
		Player: MazePlayer{
			Start:  GridPoint{X: 9, Y: 15},
			Facing: "right",
		},
		Rally: GridPoint{X: 9, Y: 9},
		Pursuers: []PursuerDef{
			{Name: "blinky", Color: "red", Facing: "up"},
			{Name: "pinky", Color: "pink", Facing: "down"},
			{Name: "inky", Color: "cyan", Facing: "left"},
			{Name: "clyde", Color: "orange", Facing: "right"},
		},
		Scoring: MazeScoring{
			Pellet:      10,
			PowerPellet: 50,
			Pursuer:     200,
		},
		Timing: MazeTiming{
			TickMS:      150,
			PowerTickMS: 50,
		},
		Gameplay: MazeGameplay{
			Lives:         3,
			PowerDuration: 200,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blockstack":
		return defaultBlockStackYAML
	case "mazechase":
		return defaultMazeChaseYAML
	default:
		return nil
	}
}
