package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultCrossyConfig(), cfg)
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultCrossyConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 15, cfg.Columns())
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("scoring:\n  coin: 10\n"))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Scoring.Coin)
	assert.Equal(t, 1, cfg.Scoring.Step)
	assert.Equal(t, 40, cfg.World.GridSize)
	assert.Equal(t, 120, cfg.Shield.InvincibilityTicks)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("world: [unclosed"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CrossyConfig)
	}{
		{"zero grid", func(c *CrossyConfig) { c.World.GridSize = 0 }},
		{"width off grid", func(c *CrossyConfig) { c.World.Width = 610 }},
		{"negative safe rows", func(c *CrossyConfig) { c.World.SafeRowsAhead = -1 }},
		{"player larger than cell", func(c *CrossyConfig) { c.Player.Width = 40 }},
		{"start row below playfield", func(c *CrossyConfig) { c.Player.StartRowsDown = 10 }},
		{"speed range inverted", func(c *CrossyConfig) { c.Vehicles.MaxSpeed = 1 }},
		{"zero vehicle count", func(c *CrossyConfig) { c.Vehicles.MinCount = 0 }},
		{"empty vehicle hitbox", func(c *CrossyConfig) { c.Vehicles.HitboxInset = 12 }},
		{"chance above one", func(c *CrossyConfig) { c.Road.CoinChance = 1.5 }},
		{"grass bands overflow", func(c *CrossyConfig) { c.Grass.CoinChance = 0.9 }},
		{"collectible outside cell", func(c *CrossyConfig) { c.Collectibles.Size = 35 }},
		{"negative invincibility", func(c *CrossyConfig) { c.Shield.InvincibilityTicks = -1 }},
		{"particle life inverted", func(c *CrossyConfig) { c.Particles.MaxLife = 10 }},
		{"zero particle size", func(c *CrossyConfig) { c.Particles.MinSize = 0 }},
		{"particle size inverted", func(c *CrossyConfig) { c.Particles.MaxSize = 3 }},
		{"zero top overscan", func(c *CrossyConfig) { c.World.TopOverscan = 0 }},
		{"top overscan below playfield", func(c *CrossyConfig) { c.World.TopOverscan = -900 }},
		{"zero search tolerance", func(c *CrossyConfig) { c.World.SearchTolerance = 0 }},
		{"negative search tolerance", func(c *CrossyConfig) { c.World.SearchTolerance = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCrossyConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadCrossyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crossy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shield:\n  invincibility_ticks: 30\n"), 0o644))

	cfg, src, err := LoadCrossy(path)
	require.NoError(t, err)
	assert.Equal(t, SourceCustom, src)
	assert.Equal(t, 30, cfg.Shield.InvincibilityTicks)
}

func TestLoadCrossyCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := LoadCrossy(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("world:\n  grid_size: 0\n"), 0o644))
	cfg, _, err := LoadCrossy(bad)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, DefaultCrossyConfig(), cfg, "a rejected file falls back to defaults")
}

func TestLoadCrossyFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := LoadCrossy("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, src)
	assert.Equal(t, DefaultCrossyConfig(), cfg)
}

func TestLoadCrossyPrefersLocalFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, localConfigPath), []byte("scoring:\n  coin: 7\n"), 0o644))

	cfg, src, err := LoadCrossy("")
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, src)
	assert.Equal(t, 7, cfg.Scoring.Coin)
}

func TestMarshalWritesYAMLKeys(t *testing.T) {
	out, err := Marshal(DefaultCrossyConfig())
	require.NoError(t, err)
	assert.Contains(t, string(out), "grid_size: 40")
}
