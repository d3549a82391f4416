package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/mo-shahab/pong-arcade/ball"
	"github.com/mo-shahab/pong-arcade/game"
	"github.com/mo-shahab/pong-arcade/gutter"
	"github.com/mo-shahab/pong-arcade/paddle"
)

type Config struct {
	TickMillis int    `toml:"tick_ms"`
	LogFile    string `toml:"log_file"`

	Ball     BallConfig     `toml:"ball"`
	Paddle   PaddleConfig   `toml:"paddle"`
	Gutter   GutterConfig   `toml:"gutter"`
	Terminal TerminalConfig `toml:"terminal"`
	Spectate SpectateConfig `toml:"spectate"`
	Audio    AudioConfig    `toml:"audio"`
}

type BallConfig struct {
	Speed  float64 `toml:"speed"`
	Radius float64 `toml:"radius"`
	ServeY float64 `toml:"serve_y"`
}

type PaddleConfig struct {
	Speed   float64 `toml:"speed"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Padding float64 `toml:"padding"`
}

type GutterConfig struct {
	Height float64 `toml:"height"`
}

// TerminalConfig maps terminal cells to logical units. Terminals send no
// key release, so a first press is held for RepeatDelayMillis (longer than
// the keyboard's auto-repeat delay) and each repeat after that for
// HoldMillis.
type TerminalConfig struct {
	CellWidth         float64 `toml:"cell_width"`
	CellHeight        float64 `toml:"cell_height"`
	HoldMillis        int     `toml:"hold_ms"`
	RepeatDelayMillis int     `toml:"repeat_delay_ms"`
}

type SpectateConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`
}

func Default() Config {
	return Config{
		TickMillis: int(game.TickRate / time.Millisecond),
		Ball: BallConfig{
			Speed:  ball.Speed,
			Radius: ball.Radius,
			ServeY: ball.ServeY,
		},
		Paddle: PaddleConfig{
			Speed:   paddle.Speed,
			Width:   paddle.Width,
			Height:  paddle.Height,
			Padding: paddle.Padding,
		},
		Gutter: GutterConfig{Height: gutter.Height},
		Terminal: TerminalConfig{
			CellWidth:         8,
			CellHeight:        16,
			HoldMillis:        120,
			RepeatDelayMillis: 700,
		},
		Spectate: SpectateConfig{Addr: ":8080"},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
		},
	}
}

// Load reads defaults, then the TOML file at path (if it exists), then a
// .env file, then PONG_* environment variables. Later sources win.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("decode %s: %w", path, err)
			}
			log.Printf("No config file at %s, using defaults", path)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PONG_SPECTATE_ADDR"); v != "" {
		c.Spectate.Addr = v
		c.Spectate.Enabled = true
	}
	if v := os.Getenv("PONG_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("PONG_AUDIO"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PONG_AUDIO: %w", err)
		}
		c.Audio.Enabled = on
	}
	if v := os.Getenv("PONG_TICK_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PONG_TICK_MS: %w", err)
		}
		c.TickMillis = ms
	}
	return nil
}

func (c Config) Validate() error {
	if c.TickMillis <= 0 {
		return fmt.Errorf("tick_ms must be positive, got %d", c.TickMillis)
	}
	if c.Ball.Radius < 0 || c.Paddle.Width < 0 || c.Paddle.Height < 0 || c.Gutter.Height < 0 {
		return errors.New("sizes must not be negative")
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return errors.New("terminal cell size must be positive")
	}
	if c.Terminal.HoldMillis <= 0 || c.Terminal.RepeatDelayMillis < c.Terminal.HoldMillis {
		return fmt.Errorf("terminal hold_ms (%d) must be positive and not above repeat_delay_ms (%d)",
			c.Terminal.HoldMillis, c.Terminal.RepeatDelayMillis)
	}
	return nil
}

// Tuning converts the file values into engine tuning
func (c Config) Tuning() game.Tuning {
	return game.Tuning{
		TickRate:      time.Duration(c.TickMillis) * time.Millisecond,
		BallSpeed:     c.Ball.Speed,
		BallRadius:    c.Ball.Radius,
		ServeY:        c.Ball.ServeY,
		PaddleSpeed:   c.Paddle.Speed,
		PaddleWidth:   c.Paddle.Width,
		PaddleHeight:  c.Paddle.Height,
		PaddlePadding: c.Paddle.Padding,
		GutterHeight:  c.Gutter.Height,
	}
}
