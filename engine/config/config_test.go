package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Timing.FixedTimestep != 0.01 {
		t.Errorf("fixed timestep = %v", cfg.Timing.FixedTimestep)
	}
	if cfg.Renderer.LogicalWidth != 1920 || cfg.Renderer.LogicalHeight != 1080 {
		t.Errorf("logical size = %dx%d", cfg.Renderer.LogicalWidth, cfg.Renderer.LogicalHeight)
	}
	if cfg.Audio.Volumes["master"] != 1 {
		t.Errorf("master volume = %v", cfg.Audio.Volumes["master"])
	}
}

func TestLoadCustomOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "frame_rate:\n  cap_fps: true\n  fps_limit: 30\nlocale: fr\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, from, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if from != path {
		t.Errorf("loaded from %q", from)
	}
	if cfg.FrameRate.FPSLimit != 30 || cfg.Locale != "fr" {
		t.Errorf("overrides not applied: %+v", cfg.FrameRate)
	}
	if cfg.Window.Title != "Stardust" {
		t.Errorf("unset keys should keep defaults, title = %q", cfg.Window.Title)
	}
	if got := cfg.FrameBudget(); got != time.Second/30 {
		t.Errorf("FrameBudget = %v", got)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	os.WriteFile(broken, []byte("window: [oops"), 0o644)
	if _, _, err := Load(broken); err == nil {
		t.Error("unparsable custom file should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("timing:\n  fixed_timestep: 0\n"), 0o644)
	if _, _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("zero timestep error = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"window", func(c *Config) { c.Window.Width = 0 }},
		{"logical size", func(c *Config) { c.Renderer.LogicalHeight = -1 }},
		{"fps limit", func(c *Config) { c.FrameRate.FPSLimit = 0 }},
		{"deadzone", func(c *Config) { c.Controls.ControllerDeadzone = 1 }},
		{"locale", func(c *Config) { c.Locale = "" }},
		{"volume", func(c *Config) { c.Audio.Volumes["music"] = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestFrameBudgetUncapped(t *testing.T) {
	cfg := Default()
	cfg.FrameRate.CapFPS = false
	if cfg.FrameBudget() != 0 {
		t.Error("uncapped config should have no frame budget")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Window.Fullscreen = true
	cfg.Controls.ControllerDeadzone = 0.3

	if err := Save(cfg, path); err != nil {
		t.Fatal(err)
	}
	got, _, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Window.Fullscreen || got.Controls.ControllerDeadzone != 0.3 {
		t.Errorf("saved settings lost: %+v %+v", got.Window, got.Controls)
	}
}
