package mazechase

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
	"github.com/vovakirdan/gamehub/internal/registry"
)

const (
	cellW    = 2 // Screen columns per maze cell
	panelW   = 16
	panelGap = 2
)

// Game adapts Engine to the platform.
type Game struct {
	engine *Engine
}

// NewGame creates an unstarted Maze Chase game. Call Reset before use.
func NewGame() *Game {
	return &Game{}
}

func init() {
	registry.Register("mazechase", func() registry.Game {
		return NewGame()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "mazechase" }

// Title returns the display name.
func (g *Game) Title() string { return "Maze Chase" }

// Description returns the catalog blurb.
func (g *Game) Description() string { return "Eat the dots, dodge the ghosts" }

// Reset loads configuration and builds a fresh engine.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	mc, err := config.LoadMazeChase(cfg.ConfigPath)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(cfg.Difficulty)
	if err != nil {
		return err
	}
	config.ApplyMazeChasePreset(&mc, preset)

	engine, err := New(mc, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return fmt.Errorf("mazechase: %w", err)
	}

	g.engine = engine
	return nil
}

// HandleAction maps platform actions to engine commands.
func (g *Game) HandleAction(a core.Action) {
	if g.engine == nil {
		return
	}

	switch a {
	case core.ActionUp:
		g.engine.Submit(SetDirection{Dir: core.DirUp})
	case core.ActionDown:
		g.engine.Submit(SetDirection{Dir: core.DirDown})
	case core.ActionLeft:
		g.engine.Submit(SetDirection{Dir: core.DirLeft})
	case core.ActionRight:
		g.engine.Submit(SetDirection{Dir: core.DirRight})
	case core.ActionPause:
		g.engine.Submit(TogglePause{})
	case core.ActionRestart:
		g.engine.Submit(ResetRequest{})
	}
}

// Timers returns the movement step and the power countdown drivers.
func (g *Game) Timers() []core.Timer {
	return []core.Timer{
		{
			Name:     "step",
			Interval: func() time.Duration { return g.engine.TickInterval() },
			Fire:     func() { g.engine.Tick() },
		},
		{
			Name:     "power",
			Interval: func() time.Duration { return g.engine.PowerInterval() },
			Fire:     func() { g.engine.SecondaryTick() },
		},
	}
}

// State returns the platform-facing state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	st := g.engine.State()
	return core.GameState{
		Score:    g.engine.score,
		GameOver: st == StateWon || st == StateLost,
		Won:      st == StateWon,
		Paused:   st == StatePaused,
		Status:   string(st),
	}
}

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// Render draws the maze, actors, side panel and any state overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.engine == nil {
		return
	}
	snap := g.engine.Snapshot()

	mazeW := snap.Width*cellW + 2
	mazeH := snap.Height + 2
	totalW := mazeW + panelGap + panelW
	if dst.Width() < totalW || dst.Height() < mazeH {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", totalW, mazeH))
		return
	}

	ox := (dst.Width() - totalW) / 2
	oy := (dst.Height() - mazeH) / 2
	dst.DrawBox(core.NewRect(ox, oy, mazeW, mazeH))

	cellX := func(x int) int { return ox + 1 + x*cellW }
	cellY := func(y int) int { return oy + 1 + y }

	for y, row := range snap.Cells {
		for x, c := range row {
			drawMazeCell(dst, cellX(x), cellY(y), c)
		}
	}

	for _, p := range snap.Pursuers {
		glyph, color := 'M', p.Color
		if p.Mode == ModeFrightened {
			glyph, color = 'm', core.ColorBlue
		}
		dst.SetColored(cellX(p.Pos.X), cellY(p.Pos.Y), glyph, color)
	}
	dst.SetColored(cellX(snap.Player.Pos.X), cellY(snap.Player.Pos.Y), playerGlyph(snap.Player.Facing), core.ColorBrightYellow)

	renderPanel(dst, snap, ox+mazeW+panelGap, oy)

	switch snap.State {
	case StatePaused:
		dst.DrawOverlay("PAUSED", "P to resume")
	case StateWon:
		dst.DrawOverlay("MAZE CLEARED", fmt.Sprintf("Score %d - R to restart", snap.Score))
	case StateLost:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score %d - R to restart", snap.Score))
	}
}

func renderPanel(dst *core.Screen, snap Snapshot, x, y int) {
	dst.DrawTextColored(x, y, "MAZE CHASE", core.ColorBrightYellow)
	dst.DrawText(x, y+2, fmt.Sprintf("Score %d", snap.Score))
	dst.DrawText(x, y+3, "Lives "+strings.Repeat("@", snap.Lives))
	dst.DrawText(x, y+4, fmt.Sprintf("Dots  %d", snap.PelletsRemaining))
	if snap.Power {
		dst.DrawTextColored(x, y+6, fmt.Sprintf("POWER %d", snap.PowerRemaining), core.ColorBrightCyan)
	}
}

func drawMazeCell(dst *core.Screen, x, y int, c CellType) {
	switch c {
	case CellWall:
		dst.SetColored(x, y, '█', core.ColorBlue)
		dst.SetColored(x+1, y, '█', core.ColorBlue)
	case CellPellet:
		dst.SetColored(x, y, '·', core.ColorWhite)
	case CellPowerPellet:
		dst.SetColored(x, y, '●', core.ColorBrightWhite)
	}
}

func playerGlyph(d core.Direction) rune {
	switch d {
	case core.DirUp:
		return 'v'
	case core.DirDown:
		return '^'
	case core.DirLeft:
		return '>'
	default:
		return '<'
	}
}
