// Package config provides YAML-based engine configuration loading.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the engine configuration
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Renderer  RendererConfig  `yaml:"renderer"`
	FrameRate FrameRateConfig `yaml:"frame_rate"`
	Timing    TimingConfig    `yaml:"timing"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Audio     AudioConfig     `yaml:"audio"`
	Controls  ControlsConfig  `yaml:"controls"`

	Locale        string `yaml:"locale"`
	LogLevel      string `yaml:"log_level"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// WindowConfig defines the OS window.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Borderless bool   `yaml:"borderless"` // only honoured with fullscreen
}

// RendererConfig defines the logical resolution scenes draw at.
type RendererConfig struct {
	LogicalWidth  int `yaml:"logical_width"`
	LogicalHeight int `yaml:"logical_height"`
}

// FrameRateConfig defines the frame-rate cap.
type FrameRateConfig struct {
	CapFPS      bool `yaml:"cap_fps"`
	FPSLimit    int  `yaml:"fps_limit"`
	EnableVSync bool `yaml:"enable_vsync"`
}

// TimingConfig defines the simulation step.
type TimingConfig struct {
	FixedTimestep float64 `yaml:"fixed_timestep"` // seconds
}

// PhysicsConfig defines the physics world.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"` // world units/s², applied on Y
	VelocityIterations int     `yaml:"velocity_iterations"`
	PositionIterations int     `yaml:"position_iterations"`
}

// AudioConfig defines named volumes; "master" scales every other one.
type AudioConfig struct {
	Volumes map[string]float64 `yaml:"volumes"`
}

// ControlsConfig defines input device behaviour.
type ControlsConfig struct {
	ControllerDeadzone float64 `yaml:"controller_deadzone"`
	MaxControllers     int     `yaml:"max_controllers"` // 0 = unlimited
}

// FrameBudget returns the duration of one capped frame, or zero when the
// cap is off
func (c Config) FrameBudget() time.Duration {
	if !c.FrameRate.CapFPS || c.FrameRate.FPSLimit <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FrameRate.FPSLimit)
}

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate reports the first setting the engine cannot run with
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Renderer.LogicalWidth <= 0 || c.Renderer.LogicalHeight <= 0:
		return fmt.Errorf("%w: logical size %dx%d", ErrInvalid, c.Renderer.LogicalWidth, c.Renderer.LogicalHeight)
	case c.FrameRate.CapFPS && c.FrameRate.FPSLimit <= 0:
		return fmt.Errorf("%w: fps_limit must be positive when cap_fps is set", ErrInvalid)
	case c.Timing.FixedTimestep <= 0:
		return fmt.Errorf("%w: fixed_timestep %v", ErrInvalid, c.Timing.FixedTimestep)
	case c.Controls.ControllerDeadzone < 0 || c.Controls.ControllerDeadzone >= 1:
		return fmt.Errorf("%w: controller_deadzone %v outside [0, 1)", ErrInvalid, c.Controls.ControllerDeadzone)
	case c.Locale == "":
		return fmt.Errorf("%w: empty locale", ErrInvalid)
	}
	for name, v := range c.Audio.Volumes {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: volume %q = %v outside [0, 1]", ErrInvalid, name, v)
		}
	}
	return nil
}
