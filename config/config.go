// Package config loads game settings: built-in defaults, then an optional
// YAML file, then BLOCKFALL_* environment overrides. Command-line flags are
// applied last by the binary.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/blockfall/audio"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/engine"
)

// ErrInvalid marks a configuration that cannot run
var ErrInvalid = errors.New("invalid configuration")

// EnvConfigPath names the variable holding the config file path
const EnvConfigPath = "BLOCKFALL_CONFIG"

// Config is the root configuration
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Audio   AudioConfig   `yaml:"audio"`
	Metrics MetricsConfig `yaml:"metrics"`
	Debug   bool          `yaml:"debug"`
}

// GameConfig holds board and timing settings
type GameConfig struct {
	Width           int           `yaml:"width"`
	Height          int           `yaml:"height"`
	SpawnX          int           `yaml:"spawn_x"`
	SpawnY          int           `yaml:"spawn_y"`
	FallInterval    time.Duration `yaml:"fall_interval"`
	MinFallInterval time.Duration `yaml:"min_fall_interval"`
	SpeedUpFactor   float64       `yaml:"speed_up_factor"`
	FrameSleep      time.Duration `yaml:"frame_sleep"`
	// Seed of the shape generator; 0 picks one from the clock
	Seed int64 `yaml:"seed"`
}

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	// Volume in percent, 0-100
	Volume int `yaml:"volume"`
}

// MetricsConfig holds the prometheus listener
type MetricsConfig struct {
	// Addr is host:port for /metrics; empty disables the listener
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Width:           constants.DefaultGridWidth,
			Height:          constants.DefaultGridHeight,
			SpawnX:          constants.SpawnX,
			SpawnY:          constants.SpawnY,
			FallInterval:    constants.InitialFallInterval,
			MinFallInterval: constants.MinFallInterval,
			SpeedUpFactor:   constants.SpeedUpFactor,
			FrameSleep:      constants.FrameSleepInterval,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  50,
		},
	}
}

// Load reads defaults, then the YAML file at path (or $BLOCKFALL_CONFIG when
// path is empty; no file at all is fine), then environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overrides fields from BLOCKFALL_* variables
func (c *Config) applyEnv() error {
	ints := map[string]*int{
		"BLOCKFALL_WIDTH":        &c.Game.Width,
		"BLOCKFALL_HEIGHT":       &c.Game.Height,
		"BLOCKFALL_AUDIO_VOLUME": &c.Audio.Volume,
	}
	for name, dst := range ints {
		if v := os.Getenv(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, name, v, err)
			}
			*dst = n
		}
	}

	durations := map[string]*time.Duration{
		"BLOCKFALL_FALL_INTERVAL":     &c.Game.FallInterval,
		"BLOCKFALL_MIN_FALL_INTERVAL": &c.Game.MinFallInterval,
		"BLOCKFALL_FRAME_SLEEP":       &c.Game.FrameSleep,
	}
	for name, dst := range durations {
		if v := os.Getenv(name); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, name, v, err)
			}
			*dst = d
		}
	}

	if v := os.Getenv("BLOCKFALL_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: BLOCKFALL_SEED=%q: %v", ErrInvalid, v, err)
		}
		c.Game.Seed = n
	}
	if v := os.Getenv("BLOCKFALL_AUDIO_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: BLOCKFALL_AUDIO_ENABLED=%q: %v", ErrInvalid, v, err)
		}
		c.Audio.Enabled = b
	}
	if v := os.Getenv("BLOCKFALL_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
	if v := os.Getenv("BLOCKFALL_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
	return nil
}

// Validate rejects settings the engine cannot run with
func (c *Config) Validate() error {
	g := c.Game
	switch {
	case g.Width < 4 || g.Height < 4:
		return fmt.Errorf("%w: board %dx%d smaller than 4x4", ErrInvalid, g.Width, g.Height)
	case g.SpawnX < 0 || g.SpawnX+4 > g.Width:
		return fmt.Errorf("%w: spawn column %d leaves no room on a %d wide board", ErrInvalid, g.SpawnX, g.Width)
	case g.SpawnY < 0 || g.SpawnY+3 > g.Height:
		return fmt.Errorf("%w: spawn row %d outside a %d high board", ErrInvalid, g.SpawnY, g.Height)
	case g.FallInterval <= 0:
		return fmt.Errorf("%w: fall interval %v", ErrInvalid, g.FallInterval)
	case g.MinFallInterval < 0 || g.MinFallInterval > g.FallInterval:
		return fmt.Errorf("%w: min fall interval %v not in [0, %v]", ErrInvalid, g.MinFallInterval, g.FallInterval)
	case g.SpeedUpFactor <= 0 || g.SpeedUpFactor > 1:
		return fmt.Errorf("%w: speed-up factor %v not in (0, 1]", ErrInvalid, g.SpeedUpFactor)
	case g.FrameSleep < 0:
		return fmt.Errorf("%w: frame sleep %v", ErrInvalid, g.FrameSleep)
	case c.Audio.Volume < 0 || c.Audio.Volume > 100:
		return fmt.Errorf("%w: audio volume %d not in [0, 100]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

// EngineConfig maps the game section onto engine settings
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		Width:           c.Game.Width,
		Height:          c.Game.Height,
		SpawnX:          c.Game.SpawnX,
		SpawnY:          c.Game.SpawnY,
		FallInterval:    c.Game.FallInterval,
		MinFallInterval: c.Game.MinFallInterval,
		SpeedUpFactor:   c.Game.SpeedUpFactor,
		FrameSleep:      c.Game.FrameSleep,
	}
}

// AudioConfig maps the audio section onto mixer settings
func (c *Config) AudioConfig() *audio.AudioConfig {
	a := audio.DefaultAudioConfig()
	a.Enabled = c.Audio.Enabled
	a.MasterVolume = float64(c.Audio.Volume) / 100.0
	return a
}
