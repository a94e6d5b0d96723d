package blockstack

import (
	"time"

	"github.com/vovakirdan/gamehub/internal/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning  GameStateType = "running"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// PieceView is a read-only copy of a piece.
type PieceView struct {
	Name  string
	Color core.Color
	X, Y  int
	Shape [][]bool
}

// Snapshot is a fully materialized copy of the session for rendering and tests.
// Nothing in it aliases engine state.
type Snapshot struct {
	State  GameStateType
	Width  int
	Height int

	Board    [][]core.Color // Locked cells only
	Composed [][]core.Color // Locked cells with the active piece drawn in

	Active PieceView
	Next   PieceView

	Score        int
	Level        int
	Lines        int
	DropInterval time.Duration
}

// Snapshot returns the current session state.
func (e *Engine) Snapshot() Snapshot {
	composed := e.board.Rows()
	for _, c := range e.active.Cells() {
		if core.InBounds(e.board, c.X, c.Y) {
			composed[c.Y][c.X] = e.active.Color
		}
	}

	return Snapshot{
		State:        e.state,
		Width:        e.cfg.Board.Width,
		Height:       e.cfg.Board.Height,
		Board:        e.board.Rows(),
		Composed:     composed,
		Active:       viewOf(e.active),
		Next:         viewOf(e.next),
		Score:        e.score,
		Level:        e.level,
		Lines:        e.lines,
		DropInterval: e.DropInterval(),
	}
}

func viewOf(p Piece) PieceView {
	shape := make([][]bool, len(p.Shape))
	for i, row := range p.Shape {
		shape[i] = append([]bool(nil), row...)
	}
	return PieceView{
		Name:  p.Name,
		Color: p.Color,
		X:     p.X,
		Y:     p.Y,
		Shape: shape,
	}
}
