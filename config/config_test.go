package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blockfall/constants"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, constants.DefaultGridWidth, cfg.Game.Width)
	assert.Equal(t, 500*time.Millisecond, cfg.Game.FallInterval)
	assert.Equal(t, 80*time.Millisecond, cfg.Game.MinFallInterval)
	assert.Equal(t, "", cfg.Metrics.Addr)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
game:
  width: 12
  fall_interval: 300ms
  seed: 42
audio:
  enabled: false
metrics:
  addr: 127.0.0.1:9102
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Game.Width)
	assert.Equal(t, constants.DefaultGridHeight, cfg.Game.Height, "unset keys keep defaults")
	assert.Equal(t, 300*time.Millisecond, cfg.Game.FallInterval)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 50, cfg.Audio.Volume)
	assert.Equal(t, "127.0.0.1:9102", cfg.Metrics.Addr)
}

func TestLoadPathFromEnvironment(t *testing.T) {
	path := writeConfig(t, "game:\n  height: 24\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Game.Height)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "game:\n  width: 12\n")
	t.Setenv("BLOCKFALL_WIDTH", "14")
	t.Setenv("BLOCKFALL_FALL_INTERVAL", "250ms")
	t.Setenv("BLOCKFALL_SEED", "-7")
	t.Setenv("BLOCKFALL_AUDIO_ENABLED", "false")
	t.Setenv("BLOCKFALL_METRICS_ADDR", ":9000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Game.Width)
	assert.Equal(t, 250*time.Millisecond, cfg.Game.FallInterval)
	assert.Equal(t, int64(-7), cfg.Game.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, ":9000", cfg.Metrics.Addr)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "game: [unterminated"))
		require.Error(t, err)
	})

	t.Run("bad env integer", func(t *testing.T) {
		t.Setenv("BLOCKFALL_HEIGHT", "tall")
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("bad env duration", func(t *testing.T) {
		t.Setenv("BLOCKFALL_FRAME_SLEEP", "10")
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "game:\n  width: 3\n"))
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"narrow board", func(c *Config) { c.Game.Width = 2 }},
		{"short board", func(c *Config) { c.Game.Height = 3 }},
		{"spawn past right wall", func(c *Config) { c.Game.SpawnX = 7 }},
		{"negative spawn row", func(c *Config) { c.Game.SpawnY = -1 }},
		{"zero interval", func(c *Config) { c.Game.FallInterval = 0 }},
		{"floor above interval", func(c *Config) { c.Game.MinFallInterval = time.Second }},
		{"factor above one", func(c *Config) { c.Game.SpeedUpFactor = 1.5 }},
		{"zero factor", func(c *Config) { c.Game.SpeedUpFactor = 0 }},
		{"negative sleep", func(c *Config) { c.Game.FrameSleep = -time.Millisecond }},
		{"loud volume", func(c *Config) { c.Audio.Volume = 150 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()
	cfg.Game.Width = 12
	cfg.Audio.Volume = 25
	cfg.Audio.Enabled = false

	ec := cfg.EngineConfig()
	assert.Equal(t, 12, ec.Width)
	assert.Equal(t, cfg.Game.FallInterval, ec.FallInterval)
	assert.Equal(t, cfg.Game.SpeedUpFactor, ec.SpeedUpFactor)
	assert.Equal(t, cfg.Game.FrameSleep, ec.FrameSleep)

	ac := cfg.AudioConfig()
	assert.False(t, ac.Enabled)
	assert.InDelta(t, 0.25, ac.MasterVolume, 1e-9)
	assert.Equal(t, constants.AudioSampleRate, ac.SampleRate)
}
