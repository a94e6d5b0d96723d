// Package mazechase implements the maze-chase game: a pure state machine over
// a static maze with one player, four pursuers and a timed power mode.
package mazechase

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
)

// PursuerCount is the number of pursuers in every session.
const PursuerCount = 4

// Engine owns one maze-chase session.
// It holds no clock: the caller invokes Tick every TickInterval and
// SecondaryTick every PowerInterval while running.
type Engine struct {
	cfg    config.MazeChaseConfig
	layout *Maze // Pristine maze, copied on every reset
	rng    *rand.Rand

	start       core.Point
	startFacing core.Direction
	rally       core.Point
	specs       []pursuerSpec

	maze     *Maze
	player   Player
	pursuers []Pursuer

	score          int
	lives          int
	power          bool
	powerRemaining int
	state          GameStateType
}

// New validates cfg and returns an engine with a fresh session.
func New(cfg config.MazeChaseConfig, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	layout, err := parseMaze(cfg.Maze.Rows, cfg.Maze.TunnelWrap)
	if err != nil {
		return nil, err
	}
	if layout.Remaining() == 0 {
		return nil, config.Invalid("maze.rows", "layout has no pellets")
	}

	start := core.Point{X: cfg.Player.Start.X, Y: cfg.Player.Start.Y}
	if !core.CanOccupy(layout, start.X, start.Y) {
		return nil, config.Invalid("player.start", "(%d, %d) is not an open cell", start.X, start.Y)
	}
	startFacing, ok := core.ParseDirection(cfg.Player.Facing)
	if !ok {
		return nil, config.Invalid("player.facing", "unknown direction %q", cfg.Player.Facing)
	}

	rally := core.Point{X: cfg.Rally.X, Y: cfg.Rally.Y}
	if !core.CanOccupy(layout, rally.X, rally.Y) {
		return nil, config.Invalid("rally", "(%d, %d) is not an open cell", rally.X, rally.Y)
	}

	specs, err := parsePursuers(cfg.Pursuers)
	if err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{
		cfg:         cfg,
		layout:      layout,
		rng:         rng,
		start:       start,
		startFacing: startFacing,
		rally:       rally,
		specs:       specs,
	}
	e.Reset()
	return e, nil
}

func parsePursuers(defs []config.PursuerDef) ([]pursuerSpec, error) {
	if len(defs) != PursuerCount {
		return nil, config.Invalid("pursuers", "need exactly %d, got %d", PursuerCount, len(defs))
	}

	specs := make([]pursuerSpec, len(defs))
	for i, def := range defs {
		field := fmt.Sprintf("pursuers[%d]", i)
		color, ok := core.ParseColor(def.Color)
		if !ok {
			return nil, config.Invalid(field+".color", "unknown color %q", def.Color)
		}
		facing, ok := core.ParseDirection(def.Facing)
		if !ok {
			return nil, config.Invalid(field+".facing", "unknown direction %q", def.Facing)
		}
		specs[i] = pursuerSpec{name: def.Name, color: color, facing: facing}
	}
	return specs, nil
}

// Reset discards the session and starts a new one.
func (e *Engine) Reset() {
	e.maze = e.layout.clone()
	e.player = Player{Pos: e.start, Facing: e.startFacing, Next: e.startFacing}

	e.pursuers = make([]Pursuer, len(e.specs))
	for i, s := range e.specs {
		e.pursuers[i] = Pursuer{
			Name:   s.name,
			Color:  s.color,
			Pos:    e.rally,
			Facing: s.facing,
			Mode:   ModeChase,
		}
	}

	e.score = 0
	e.lives = e.cfg.Gameplay.Lives
	e.power = false
	e.powerRemaining = 0
	e.state = StateRunning
}

// Submit applies a command immediately. Direction changes are ignored unless
// the session is running.
func (e *Engine) Submit(cmd Command) {
	switch c := cmd.(type) {
	case ResetRequest:
		e.Reset()
	case TogglePause:
		switch e.state {
		case StateRunning:
			e.state = StatePaused
		case StatePaused:
			e.state = StateRunning
		}
	case SetDirection:
		if e.state != StateRunning || c.Dir < core.DirUp || c.Dir > core.DirRight {
			return
		}
		e.player.Next = c.Dir
	}
}

// Tick advances the session by one step: player move, pursuer moves, item
// consumption, collisions, then the win check. No-op unless running.
func (e *Engine) Tick() {
	if e.state != StateRunning {
		return
	}

	e.movePlayer()
	e.movePursuers()
	e.consume()
	e.resolveCollisions()

	if e.state == StateRunning && e.maze.Remaining() == 0 {
		e.state = StateWon
	}
}

// SecondaryTick counts down power mode by one unit. No-op unless running.
func (e *Engine) SecondaryTick() {
	if e.state != StateRunning || !e.power {
		return
	}

	e.powerRemaining--
	if e.powerRemaining <= 0 {
		e.powerRemaining = 0
		e.power = false
		e.setPursuerMode(ModeChase)
	}
}

// TickInterval returns the main step cadence.
func (e *Engine) TickInterval() time.Duration {
	return time.Duration(e.cfg.Timing.TickMS) * time.Millisecond
}

// PowerInterval returns the power countdown cadence.
func (e *Engine) PowerInterval() time.Duration {
	return time.Duration(e.cfg.Timing.PowerTickMS) * time.Millisecond
}

// IsValidPosition reports whether an actor may stand on (x, y).
func (e *Engine) IsValidPosition(x, y int) bool {
	return core.CanOccupy(e.maze, x, y)
}

// State returns the machine state.
func (e *Engine) State() GameStateType {
	return e.state
}

// movePlayer tries the buffered direction first, then the current facing.
// The buffered direction survives a blocked attempt.
func (e *Engine) movePlayer() {
	if next, ok := e.maze.step(e.player.Pos, e.player.Next); ok {
		e.player.Pos = next
		e.player.Facing = e.player.Next
		return
	}
	if next, ok := e.maze.step(e.player.Pos, e.player.Facing); ok {
		e.player.Pos = next
	}
}

// movePursuers keeps each pursuer going straight until it hits a wall, then
// turns to the first open direction in a random order.
func (e *Engine) movePursuers() {
	for i := range e.pursuers {
		p := &e.pursuers[i]
		if next, ok := e.maze.step(p.Pos, p.Facing); ok {
			p.Pos = next
			continue
		}
		for _, k := range e.rng.Perm(len(core.Directions)) {
			d := core.Directions[k]
			if next, ok := e.maze.step(p.Pos, d); ok {
				p.Pos = next
				p.Facing = d
				break
			}
		}
	}
}

func (e *Engine) consume() {
	switch e.maze.consume(e.player.Pos) {
	case CellPellet:
		e.score += e.cfg.Scoring.Pellet
	case CellPowerPellet:
		e.score += e.cfg.Scoring.PowerPellet
		e.power = true
		e.powerRemaining = e.cfg.Gameplay.PowerDuration
		e.setPursuerMode(ModeFrightened)
	}
}

// resolveCollisions handles every pursuer on the player's cell independently.
func (e *Engine) resolveCollisions() {
	at := e.player.Pos
	for i := range e.pursuers {
		p := &e.pursuers[i]
		if p.Pos != at {
			continue
		}

		if e.power {
			e.score += e.cfg.Scoring.Pursuer
			p.Pos = e.rally
			continue
		}

		e.lives--
		if e.lives <= 0 {
			e.lives = 0
			e.state = StateLost
			return
		}
		e.player = Player{Pos: e.start, Facing: e.startFacing, Next: e.startFacing}
	}
}

func (e *Engine) setPursuerMode(m Mode) {
	for i := range e.pursuers {
		e.pursuers[i].Mode = m
	}
}
