package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/waitpong/internal/pong"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Preset != "classic" {
		t.Errorf("expected preset classic, got %s", cfg.Preset)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.Params() != pong.DefaultParams() {
		t.Errorf("default params mismatch: %+v", cfg.Params())
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("arcade")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Game.Width != 360 || cfg.Game.PaddleHeight != 60 || !cfg.ShowScore {
		t.Errorf("unexpected arcade preset: %+v", cfg)
	}

	cfg.Game.Width = 1
	if Presets["arcade"].Game.Width != 360 {
		t.Error("GetPreset returned shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waitpong.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Game.BallSpeed = 5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Seed != 42 || loaded.Game.BallSpeed != 5 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoadPresetWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waitpong.yaml")
	data := "preset: arcade\ngame:\n  ball_speed: 6\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Game.Width != 360 {
		t.Errorf("preset not applied, width %v", cfg.Game.Width)
	}
	if cfg.Game.BallSpeed != 6 {
		t.Errorf("override not applied, ball speed %v", cfg.Game.BallSpeed)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown preset", "preset: nope\n", ErrUnknownPreset},
		{"bad params", "game:\n  height: -1\n", pong.ErrInvalidParams},
		{"bad frame rate", "frame_rate: 0\n", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
