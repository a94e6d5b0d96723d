package blockstack

import (
	"strings"
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
	cfg.Seed = 42
	require.NoError(t, g.Reset(cfg))
	return g
}

func TestGameRegistered(t *testing.T) {
	require.True(t, registry.Exists("blockstack"))

	g, err := registry.Create("blockstack")
	require.NoError(t, err)
	assert.Equal(t, "Block Stack", g.Title())
}

func TestGameActionsMapToCommands(t *testing.T) {
	g := newTestGame(t)
	start := g.Snapshot().Active

	g.HandleAction(core.ActionLeft)
	assert.Equal(t, start.X-1, g.Snapshot().Active.X)

	g.HandleAction(core.ActionRight)
	g.HandleAction(core.ActionRight)
	assert.Equal(t, start.X+1, g.Snapshot().Active.X)

	g.HandleAction(core.ActionDown)
	assert.Equal(t, 1, g.Snapshot().Active.Y)

	g.HandleAction(core.ActionConfirm)
	assert.Equal(t, 1, g.Snapshot().Active.Y, "unmapped actions are ignored")

	g.HandleAction(core.ActionPause)
	assert.True(t, g.State().Paused)
	assert.False(t, g.State().Running())

	g.HandleAction(core.ActionRestart)
	st := g.State()
	assert.False(t, st.Paused)
	assert.Equal(t, "running", st.Status)
	assert.Equal(t, 0, g.Snapshot().Active.Y)
}

func TestGameDropTimer(t *testing.T) {
	g := newTestGame(t)

	timers := g.Timers()
	require.Len(t, timers, 1)
	assert.Equal(t, "drop", timers[0].Name)
	assert.Equal(t, time.Second, timers[0].Interval())

	timers[0].Fire()
	assert.Equal(t, 1, g.Snapshot().Active.Y)
}

func TestGameResetRejectsUnknownDifficulty(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Difficulty = "nightmare"
	assert.Error(t, NewGame().Reset(cfg))
}

func TestGameHardPresetDropsFaster(t *testing.T) {
	g := NewGame()
	cfg := core.DefaultConfig()
	cfg.Difficulty = "hard"
	require.NoError(t, g.Reset(cfg))
	assert.Equal(t, 700*time.Millisecond, g.Timers()[0].Interval())
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "BLOCK STACK")
	assert.Contains(t, out, "Score 0")
	assert.Contains(t, out, string(blockGlyph))

	g.HandleAction(core.ActionPause)
	screen.Clear()
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	small := core.NewScreen(20, 10)
	g.Render(small)
	assert.True(t, strings.Contains(small.String(), "too small"))
}
