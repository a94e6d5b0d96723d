package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var bs BlockStackConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("blockstack"), &bs))
	assert.Equal(t, DefaultBlockStackConfig(), bs)

	var mc MazeChaseConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("mazechase"), &mc))
	assert.Equal(t, DefaultMazeChaseConfig(), mc)

	assert.Nil(t, GetDefaultYAML("pinball"))
}

func TestDefaultsValidate(t *testing.T) {
	assert.NoError(t, DefaultBlockStackConfig().Validate())
	assert.NoError(t, DefaultMazeChaseConfig().Validate())
}

func TestBlockStackValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlockStackConfig)
		field  string
	}{
		{"narrow board", func(c *BlockStackConfig) { c.Board.Width = 2 }, "board.width"},
		{"zero floor", func(c *BlockStackConfig) { c.Timing.MinDropMS = 0 }, "timing.min_drop_ms"},
		{"base below floor", func(c *BlockStackConfig) { c.Timing.BaseDropMS = 50 }, "timing.base_drop_ms"},
		{"no lines per level", func(c *BlockStackConfig) { c.Scoring.LinesPerLevel = 0 }, "scoring.lines_per_level"},
		{"empty palette", func(c *BlockStackConfig) { c.Pieces = nil }, "pieces"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlockStackConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)

			var cfgErr *Error
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestMazeChaseValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MazeChaseConfig)
	}{
		{"empty maze", func(c *MazeChaseConfig) { c.Maze.Rows = nil }},
		{"zero tick", func(c *MazeChaseConfig) { c.Timing.TickMS = 0 }},
		{"zero power tick", func(c *MazeChaseConfig) { c.Timing.PowerTickMS = 0 }},
		{"no lives", func(c *MazeChaseConfig) { c.Gameplay.Lives = 0 }},
		{"no power", func(c *MazeChaseConfig) { c.Gameplay.PowerDuration = 0 }},
		{"negative points", func(c *MazeChaseConfig) { c.Scoring.Pellet = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMazeChaseConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockstack.yaml")
	custom := DefaultBlockStackConfig()
	custom.Board.Width = 12
	data, err := yaml.Marshal(custom)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadBlockStack(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Board.Width)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadMazeChase(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("maze: [unterminated"), 0o600))
	_, err = LoadMazeChase(bad)
	assert.Error(t, err)
}

func TestParsePreset(t *testing.T) {
	for name, want := range map[string]DifficultyPreset{
		"":       DifficultyNormal,
		"normal": DifficultyNormal,
		"easy":   DifficultyEasy,
		"hard":   DifficultyHard,
	} {
		got, err := ParsePreset(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestApplyPresets(t *testing.T) {
	bs := DefaultBlockStackConfig()
	ApplyBlockStackPreset(&bs, DifficultyHard)
	assert.Equal(t, 700, bs.Timing.BaseDropMS)
	assert.Equal(t, 100, bs.Timing.MinDropMS, "presets never move the floor")

	bs = DefaultBlockStackConfig()
	ApplyBlockStackPreset(&bs, DifficultyNormal)
	assert.Equal(t, DefaultBlockStackConfig(), bs)

	mc := DefaultMazeChaseConfig()
	ApplyMazeChasePreset(&mc, DifficultyEasy)
	assert.Equal(t, 5, mc.Gameplay.Lives)
	assert.Equal(t, 300, mc.Gameplay.PowerDuration)

	mc = DefaultMazeChaseConfig()
	ApplyMazeChasePreset(&mc, DifficultyHard)
	assert.Equal(t, 2, mc.Gameplay.Lives)
	assert.Equal(t, 120, mc.Gameplay.PowerDuration)
}
