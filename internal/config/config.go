package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/waitpong/internal/pong"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPreset     = "classic"
	DefaultFrameRate  = 60
	DefaultThrottleMs = 16
	DefaultTheme      = "minimal"
	DefaultScale      = 2.0
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Preset     string     `yaml:"preset"`
	Game       GameConfig `yaml:"game"`
	FrameRate  int        `yaml:"frame_rate"`
	ThrottleMs int        `yaml:"throttle_ms"`
	Theme      string     `yaml:"theme"`
	Seed       int64      `yaml:"seed"`
	ShowScore  bool       `yaml:"show_score"`
	Sound      bool       `yaml:"sound"`
	Scale      float64    `yaml:"scale"`
}

// GameConfig mirrors pong.Params.
type GameConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	PaddleWidth   float64 `yaml:"paddle_width"`
	PaddleHeight  float64 `yaml:"paddle_height"`
	BallRadius    float64 `yaml:"ball_radius"`
	BallSpeed     float64 `yaml:"ball_speed"`
	OpponentSpeed float64 `yaml:"opponent_speed"`
	DeadZone      float64 `yaml:"dead_zone"`
	SpeedUp       float64 `yaml:"speed_up"`
	ScorePerHit   int     `yaml:"score_per_hit"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:     DefaultPreset,
		Game:       fromParams(pong.DefaultParams()),
		FrameRate:  DefaultFrameRate,
		ThrottleMs: DefaultThrottleMs,
		Theme:      DefaultTheme,
		Scale:      DefaultScale,
	}
}

// Load reads a YAML file on top of DefaultConfig. A preset named in the file
// is applied first so that explicit game values still win.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if head.Preset != "" {
		p := GetPreset(head.Preset)
		if p == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, head.Preset)
		}
		cfg = p
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.FrameRate <= 0 || c.FrameRate > 240 {
		return fmt.Errorf("%w: frame_rate %d", ErrInvalidConfig, c.FrameRate)
	}
	if c.ThrottleMs < 0 {
		return fmt.Errorf("%w: throttle_ms %d", ErrInvalidConfig, c.ThrottleMs)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale %g", ErrInvalidConfig, c.Scale)
	}
	return nil
}

func (c *Config) Params() pong.Params {
	return pong.Params{
		Width:         c.Game.Width,
		Height:        c.Game.Height,
		PaddleWidth:   c.Game.PaddleWidth,
		PaddleHeight:  c.Game.PaddleHeight,
		BallRadius:    c.Game.BallRadius,
		BallSpeed:     c.Game.BallSpeed,
		OpponentSpeed: c.Game.OpponentSpeed,
		DeadZone:      c.Game.DeadZone,
		SpeedUp:       c.Game.SpeedUp,
		ScorePerHit:   c.Game.ScorePerHit,
	}
}

func (c *Config) Throttle() time.Duration {
	return time.Duration(c.ThrottleMs) * time.Millisecond
}

// FramePeriod is the host frame interval for FrameRate.
func (c *Config) FramePeriod() time.Duration {
	if c.FrameRate <= 0 {
		return pong.ReferenceFrame
	}
	return time.Second / time.Duration(c.FrameRate)
}

func fromParams(p pong.Params) GameConfig {
	return GameConfig{
		Width:         p.Width,
		Height:        p.Height,
		PaddleWidth:   p.PaddleWidth,
		PaddleHeight:  p.PaddleHeight,
		BallRadius:    p.BallRadius,
		BallSpeed:     p.BallSpeed,
		OpponentSpeed: p.OpponentSpeed,
		DeadZone:      p.DeadZone,
		SpeedUp:       p.SpeedUp,
		ScorePerHit:   p.ScorePerHit,
	}
}
