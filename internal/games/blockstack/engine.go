// Package blockstack implements the falling-block puzzle: a pure state machine
// over a fixed board, driven by an external drop clock and discrete commands.
package blockstack

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
)

// Engine owns one block-stack session.
// It holds no clock: the caller invokes Tick every DropInterval while running.
type Engine struct {
	cfg     config.BlockStackConfig
	palette []Piece
	rng     *rand.Rand

	board  *Board
	active Piece
	next   Piece

	score int
	level int
	lines int
	state GameStateType
}

// New validates cfg and returns an engine with a fresh session.
func New(cfg config.BlockStackConfig, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := parsePalette(cfg.Pieces, cfg.Board.Width, cfg.Board.Height)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{
		cfg:     cfg,
		palette: palette,
		rng:     rng,
	}
	e.Reset()
	return e, nil
}

// Reset discards the session and starts a new one.
func (e *Engine) Reset() {
	e.board = NewBoard(e.cfg.Board.Width, e.cfg.Board.Height)
	e.active = e.atSpawn(e.randomPiece())
	e.next = e.randomPiece()
	e.score = 0
	e.level = 1
	e.lines = 0
	e.state = StateRunning
}

// Submit applies a command immediately. Everything except TogglePause and
// ResetRequest is ignored unless the session is running.
func (e *Engine) Submit(cmd Command) {
	switch cmd.(type) {
	case ResetRequest:
		e.Reset()
		return
	case TogglePause:
		switch e.state {
		case StateRunning:
			e.state = StatePaused
		case StatePaused:
			e.state = StateRunning
		}
		return
	}

	if e.state != StateRunning {
		return
	}

	switch cmd.(type) {
	case MoveLeft:
		e.try(e.active.Moved(-1, 0))
	case MoveRight:
		e.try(e.active.Moved(1, 0))
	case Rotate:
		e.try(e.active.Rotated())
	case SoftDrop:
		e.drop()
	}
}

// Tick is the automatic drop. It is a no-op unless the session is running.
func (e *Engine) Tick() {
	if e.state != StateRunning {
		return
	}
	e.drop()
}

// DropInterval returns how often Tick should fire at the current level.
func (e *Engine) DropInterval() time.Duration {
	t := e.cfg.Timing
	ms := max(t.MinDropMS, t.BaseDropMS-(e.level-1)*t.LevelStepMS)
	return time.Duration(ms) * time.Millisecond
}

// IsValidPosition reports whether p fits on the board. Cells above the top
// edge are allowed; every other cell must be on the board and empty.
func (e *Engine) IsValidPosition(p Piece) bool {
	return core.CanPlace(e.board, p.Shape, p.X, p.Y, true)
}

// State returns the machine state.
func (e *Engine) State() GameStateType {
	return e.state
}

// try replaces the active piece with candidate if it is valid.
func (e *Engine) try(candidate Piece) bool {
	if !e.IsValidPosition(candidate) {
		return false
	}
	e.active = candidate
	return true
}

func (e *Engine) drop() {
	if e.try(e.active.Moved(0, 1)) {
		return
	}
	e.lockActive()
}

// lockActive writes the active piece into the board, clears rows, updates
// scoring and spawns the next piece.
func (e *Engine) lockActive() {
	e.board.lock(e.active)

	if cleared := e.board.clearFullRows(); cleared > 0 {
		e.score += cleared * e.cfg.Scoring.PointsPerLine * e.level
		e.lines += cleared
		e.level = e.lines/e.cfg.Scoring.LinesPerLevel + 1
	}

	e.spawn()
}

// spawn promotes the on-deck piece and draws a new one. A spawn position
// that collides ends the session.
func (e *Engine) spawn() {
	e.active = e.atSpawn(e.next)
	e.next = e.randomPiece()

	if !e.IsValidPosition(e.active) {
		e.state = StateGameOver
	}
}

// atSpawn centers p horizontally on the top row.
func (e *Engine) atSpawn(p Piece) Piece {
	p.X = e.cfg.Board.Width/2 - p.Width()/2
	p.Y = 0
	return p
}

func (e *Engine) randomPiece() Piece {
	return e.palette[e.rng.Intn(len(e.palette))]
}
