package mazechase

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning GameStateType = "running"
	StatePaused  GameStateType = "paused"
	StateWon     GameStateType = "won"
	StateLost    GameStateType = "lost"
)

// Snapshot is a fully materialized copy of the session for rendering and tests.
// Nothing in it aliases engine state.
type Snapshot struct {
	State  GameStateType
	Width  int
	Height int
	Cells  [][]CellType

	Player   Player
	Pursuers []Pursuer

	Score            int
	Lives            int
	Power            bool
	PowerRemaining   int
	PelletsRemaining int
}

// Snapshot returns the current session state.
func (e *Engine) Snapshot() Snapshot {
	w, h := e.maze.Size()
	return Snapshot{
		State:            e.state,
		Width:            w,
		Height:           h,
		Cells:            e.maze.Rows(),
		Player:           e.player,
		Pursuers:         append([]Pursuer(nil), e.pursuers...),
		Score:            e.score,
		Lives:            e.lives,
		Power:            e.power,
		PowerRemaining:   e.powerRemaining,
		PelletsRemaining: e.maze.Remaining(),
	}
}
