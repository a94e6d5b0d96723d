package mazechase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gamehub/internal/core"
	"github.com/vovakirdan/gamehub/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame()
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	require.NoError(t, g.Reset(cfg))
	return g
}

func TestGameRegistered(t *testing.T) {
	require.True(t, registry.Exists("mazechase"))

	found := false
	for _, info := range registry.List() {
		if info.ID == "mazechase" {
			found = true
			assert.Equal(t, "Maze Chase", info.Title)
			assert.NotEmpty(t, info.Description)
		}
	}
	assert.True(t, found)
}

func TestGameTimers(t *testing.T) {
	g := newTestGame(t)

	timers := g.Timers()
	require.Len(t, timers, 2)
	assert.Equal(t, "step", timers[0].Name)
	assert.Equal(t, 150*time.Millisecond, timers[0].Interval())
	assert.Equal(t, "power", timers[1].Name)
	assert.Equal(t, 50*time.Millisecond, timers[1].Interval())

	timers[0].Fire()
	assert.Equal(t, core.Point{X: 10, Y: 15}, g.Snapshot().Player.Pos)
}

func TestGameActionsMapToDirections(t *testing.T) {
	g := newTestGame(t)

	for action, dir := range map[core.Action]core.Direction{
		core.ActionUp:    core.DirUp,
		core.ActionDown:  core.DirDown,
		core.ActionLeft:  core.DirLeft,
		core.ActionRight: core.DirRight,
	} {
		g.HandleAction(action)
		assert.Equal(t, dir, g.Snapshot().Player.Next, action.String())
	}

	g.HandleAction(core.ActionPause)
	assert.True(t, g.State().Paused)

	g.HandleAction(core.ActionRestart)
	assert.Equal(t, "running", g.State().Status)
}

func TestGameStateReportsOutcome(t *testing.T) {
	g := newTestGame(t)

	g.engine.state = StateWon
	st := g.State()
	assert.True(t, st.GameOver)
	assert.True(t, st.Won)
	assert.False(t, st.Running())

	g.engine.state = StateLost
	st = g.State()
	assert.True(t, st.GameOver)
	assert.False(t, st.Won)
}

func TestGameEasyPresetAddsLives(t *testing.T) {
	g := NewGame()
	cfg := core.DefaultConfig()
	cfg.Difficulty = "easy"
	require.NoError(t, g.Reset(cfg))
	assert.Equal(t, 5, g.Snapshot().Lives)
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "MAZE CHASE")
	assert.Contains(t, out, "Lives @@@")
	assert.Contains(t, out, "<", "player glyph faces right")

	g.engine.state = StateLost
	screen.Clear()
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
}
