// Package config handles navigation configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("config: invalid")

// Config holds all navigation settings.
type Config struct {
	Navigation NavigationConfig `yaml:"navigation"`
	Panel      PanelConfig      `yaml:"panel"`
	Tour       TourConfig       `yaml:"tour"`
	Icons      IconsConfig      `yaml:"icons"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Runner     RunnerConfig     `yaml:"runner"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// NavigationConfig holds camera framing and selection timing.
type NavigationConfig struct {
	CameraName     string        `yaml:"camera_name"`
	FocusDuration  time.Duration `yaml:"focus_duration"`  // Camera move to a mesh
	JumpDuration   time.Duration `yaml:"jump_duration"`   // Camera move to a fixed jump point
	PanelBuffer    time.Duration `yaml:"panel_buffer"`    // Extra wait before the panel appears
	ClickThreshold float64       `yaml:"click_threshold"` // Pixels of travel still counted as a click
	PitchDeg       float64       `yaml:"pitch_deg"`
	YawOffsetDeg   float64       `yaml:"yaw_offset_deg"`
	MinDistance    float64       `yaml:"min_distance"`
	MaxDistance    float64       `yaml:"max_distance"`
	Ease           string        `yaml:"ease"`
}

// PanelConfig holds info panel fades and per-element alphas.
type PanelConfig struct {
	FadeIn     time.Duration `yaml:"fade_in"`
	FadeOut    time.Duration `yaml:"fade_out"`
	Settle     time.Duration `yaml:"settle"`
	AnchorLift float64       `yaml:"anchor_lift"`
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Background float64       `yaml:"background_alpha"`
	Title      float64       `yaml:"title_alpha"`
	Content    float64       `yaml:"content_alpha"`
	Accent     float64       `yaml:"accent_alpha"`
	Plane      float64       `yaml:"plane_alpha"`
}

// TourConfig holds scripted tour settings.
type TourConfig struct {
	Sequence    []string `yaml:"sequence"`
	Overlap     float64  `yaml:"overlap"` // Fraction of the next leg started early
	Loop        bool     `yaml:"loop"`
	AutoPlay    bool     `yaml:"autoplay"`
	DefaultView string   `yaml:"default_view"`
	Ease        string   `yaml:"ease"`
}

// IconsConfig holds building icon settings.
type IconsConfig struct {
	Lift    float64 `yaml:"lift"`
	Visible bool    `yaml:"visible"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
}

// CatalogConfig points at an optional catalog file.
type CatalogConfig struct {
	Path string `yaml:"path"` // Empty uses the embedded catalog
}

// RunnerConfig holds the headless runner's loop settings.
type RunnerConfig struct {
	FPS      int           `yaml:"fps"`
	Duration time.Duration `yaml:"duration"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	// Components overrides Level per component logger, e.g. panel: debug.
	Components map[string]string `yaml:"components,omitempty"`
}

// Default returns a Config with the reference viewer's values.
func Default() *Config {
	return &Config{
		Navigation: NavigationConfig{
			CameraName:     "freeCamera",
			FocusDuration:  800 * time.Millisecond,
			JumpDuration:   time.Second,
			PanelBuffer:    100 * time.Millisecond,
			ClickThreshold: 5,
			PitchDeg:       33.72,
			YawOffsetDeg:   37.75,
			MinDistance:    15,
			MaxDistance:    80,
			Ease:           "out-quad",
		},
		Panel: PanelConfig{
			FadeIn:     500 * time.Millisecond,
			FadeOut:    300 * time.Millisecond,
			Settle:     350 * time.Millisecond,
			AnchorLift: 15,
			Width:      540,
			Height:     420,
			Background: 0.8,
			Title:      0.8,
			Content:    0.9,
			Accent:     0.8,
			Plane:      0.8,
		},
		Tour: TourConfig{
			Sequence:    []string{"view1", "view2", "view3", "view4", "view5", "view6", "view7"},
			Overlap:     0.3,
			Loop:        false,
			AutoPlay:    false,
			DefaultView: "main_view",
			Ease:        "in-out-quad",
		},
		Icons: IconsConfig{
			Lift:    10,
			Visible: true,
			Width:   200,
			Height:  100,
		},
		Runner: RunnerConfig{
			FPS:      60,
			Duration: 60 * time.Second,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	n := c.Navigation
	switch {
	case n.FocusDuration < 0 || n.JumpDuration < 0 || n.PanelBuffer < 0:
		return fmt.Errorf("%w: navigation durations must not be negative", ErrInvalid)
	case n.ClickThreshold < 0:
		return fmt.Errorf("%w: click_threshold must not be negative", ErrInvalid)
	case n.MinDistance < 0 || n.MinDistance > n.MaxDistance:
		return fmt.Errorf("%w: min_distance %.2f exceeds max_distance %.2f", ErrInvalid, n.MinDistance, n.MaxDistance)
	}
	p := c.Panel
	if p.FadeIn < 0 || p.FadeOut < 0 || p.Settle < 0 {
		return fmt.Errorf("%w: panel durations must not be negative", ErrInvalid)
	}
	if c.Tour.Overlap < 0 || c.Tour.Overlap >= 1 {
		return fmt.Errorf("%w: tour overlap %.2f outside [0, 1)", ErrInvalid, c.Tour.Overlap)
	}
	if c.Runner.FPS <= 0 {
		return fmt.Errorf("%w: runner fps must be positive", ErrInvalid)
	}
	if !validLevel(c.Logging.Level) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Logging.Level)
	}
	for name, lvl := range c.Logging.Components {
		if !validLevel(lvl) {
			return fmt.Errorf("%w: unknown log level %q for component %s", ErrInvalid, lvl, name)
		}
	}
	return nil
}

func validLevel(level string) bool {
	switch level {
	case "", "debug", "info", "warn", "error":
		return true
	}
	return false
}
