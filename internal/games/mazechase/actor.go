package mazechase

import "github.com/vovakirdan/gamehub/internal/core"

// Mode is a pursuer's behavior mode. It mirrors the global power state and
// does not change how pursuers move.
type Mode string

const (
	ModeChase      Mode = "chase"
	ModeFrightened Mode = "frightened"
)

// Player is the user-controlled actor.
type Player struct {
	Pos    core.Point
	Facing core.Direction
	Next   core.Direction // Buffered requested direction
}

// Pursuer is one of the maze's chasing actors.
type Pursuer struct {
	Name   string
	Color  core.Color
	Pos    core.Point
	Facing core.Direction
	Mode   Mode
}

// pursuerSpec is a pursuer's identity and spawn facing, parsed from config.
type pursuerSpec struct {
	name   string
	color  core.Color
	facing core.Direction
}
