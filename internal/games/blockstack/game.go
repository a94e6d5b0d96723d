package blockstack

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
	"github.com/vovakirdan/gamehub/internal/registry"
)

const (
	cellW      = 2  // Screen columns per board cell
	panelW     = 16 // Width of the side panel
	panelGap   = 2
	emptyGlyph = '·'
	blockGlyph = '█'
)

// Game adapts Engine to the platform.
type Game struct {
	engine *Engine
}

// NewGame creates an unstarted Block Stack game. Call Reset before use.
func NewGame() *Game {
	return &Game{}
}

func init() {
	registry.Register("blockstack", func() registry.Game {
		return NewGame()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "blockstack" }

// Title returns the display name.
func (g *Game) Title() string { return "Block Stack" }

// Description returns the catalog blurb.
func (g *Game) Description() string { return "Classic falling-block puzzle" }

// Reset loads configuration and builds a fresh engine.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	bc, err := config.LoadBlockStack(cfg.ConfigPath)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(cfg.Difficulty)
	if err != nil {
		return err
	}
	config.ApplyBlockStackPreset(&bc, preset)

	engine, err := New(bc, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return fmt.Errorf("blockstack: %w", err)
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
	case core.ActionLeft:
		g.engine.Submit(MoveLeft{})
	case core.ActionRight:
		g.engine.Submit(MoveRight{})
	case core.ActionDown:
		g.engine.Submit(SoftDrop{})
	case core.ActionUp:
		g.engine.Submit(Rotate{})
	case core.ActionPause:
		g.engine.Submit(TogglePause{})
	case core.ActionRestart:
		g.engine.Submit(ResetRequest{})
	}
}

// Timers returns the automatic drop driver. Its interval follows the level.
func (g *Game) Timers() []core.Timer {
	return []core.Timer{
		{
			Name:     "drop",
			Interval: func() time.Duration { return g.engine.DropInterval() },
			Fire:     func() { g.engine.Tick() },
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
		GameOver: st == StateGameOver,
		Paused:   st == StatePaused,
		Status:   string(st),
	}
}

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// Render draws the board, the side panel and any state overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.engine == nil {
		return
	}
	snap := g.engine.Snapshot()

	boardW := snap.Width*cellW + 2
	boardH := snap.Height + 2
	totalW := boardW + panelGap + panelW
	if dst.Width() < totalW || dst.Height() < boardH {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", totalW, boardH))
		return
	}

	ox := (dst.Width() - totalW) / 2
	oy := (dst.Height() - boardH) / 2

	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH))
	for y, row := range snap.Composed {
		for x, c := range row {
			drawCell(dst, ox+1+x*cellW, oy+1+y, c)
		}
	}

	g.renderPanel(dst, snap, ox+boardW+panelGap, oy)

	switch snap.State {
	case StatePaused:
		dst.DrawOverlay("PAUSED", "P to resume")
	case StateGameOver:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score %d - R to restart", snap.Score))
	}
}

func (g *Game) renderPanel(dst *core.Screen, snap Snapshot, x, y int) {
	dst.DrawTextColored(x, y, "BLOCK STACK", core.ColorBrightCyan)
	dst.DrawText(x, y+2, fmt.Sprintf("Score %d", snap.Score))
	dst.DrawText(x, y+3, fmt.Sprintf("Level %d", snap.Level))
	dst.DrawText(x, y+4, fmt.Sprintf("Lines %d", snap.Lines))

	dst.DrawText(x, y+6, "Next")
	for row, cells := range snap.Next.Shape {
		for col, set := range cells {
			if set {
				drawCell(dst, x+col*cellW, y+7+row, snap.Next.Color)
			}
		}
	}
}

func drawCell(dst *core.Screen, x, y int, c core.Color) {
	if c == core.ColorDefault {
		dst.SetColored(x, y, ' ', core.ColorDefault)
		dst.SetColored(x+1, y, emptyGlyph, core.ColorGray)
		return
	}
	dst.SetColored(x, y, blockGlyph, c)
	dst.SetColored(x+1, y, blockGlyph, c)
}
