package config

import (
	"errors"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

var Presets = map[string]*Config{
	"classic": {
		Preset: "classic",
		Game: GameConfig{
			Width: 300, Height: 200, PaddleWidth: 8, PaddleHeight: 50, BallRadius: 6,
			BallSpeed: 4, OpponentSpeed: 3, DeadZone: 10, SpeedUp: 1.05, ScorePerHit: 10,
		},
		FrameRate: DefaultFrameRate, ThrottleMs: DefaultThrottleMs, Theme: "minimal", Scale: DefaultScale,
	},
	"arcade": {
		Preset: "arcade",
		Game: GameConfig{
			Width: 360, Height: 250, PaddleWidth: 10, PaddleHeight: 60, BallRadius: 8,
			BallSpeed: 4, OpponentSpeed: 3, DeadZone: 10, SpeedUp: 1.05, ScorePerHit: 10,
		},
		FrameRate: DefaultFrameRate, ThrottleMs: DefaultThrottleMs, Theme: "retro", Scale: DefaultScale,
		ShowScore: true,
	},
	"frantic": {
		Preset: "frantic",
		Game: GameConfig{
			Width: 300, Height: 200, PaddleWidth: 8, PaddleHeight: 40, BallRadius: 5,
			BallSpeed: 6, OpponentSpeed: 4.5, DeadZone: 6, SpeedUp: 1.08, ScorePerHit: 10,
		},
		FrameRate: DefaultFrameRate, ThrottleMs: DefaultThrottleMs, Theme: "cyberpunk", Scale: DefaultScale,
		ShowScore: true,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
