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

	// Navigation defaults
	if cfg.Navigation.FocusDuration != 800*time.Millisecond {
		t.Errorf("expected focus duration 800ms, got %v", cfg.Navigation.FocusDuration)
	}
	if cfg.Navigation.JumpDuration != time.Second {
		t.Errorf("expected jump duration 1s, got %v", cfg.Navigation.JumpDuration)
	}
	if cfg.Navigation.PanelBuffer != 100*time.Millisecond {
		t.Errorf("expected panel buffer 100ms, got %v", cfg.Navigation.PanelBuffer)
	}
	if cfg.Navigation.ClickThreshold != 5 {
		t.Errorf("expected click threshold 5, got %v", cfg.Navigation.ClickThreshold)
	}
	if cfg.Navigation.MinDistance != 15 || cfg.Navigation.MaxDistance != 80 {
		t.Errorf("expected distance clamp 15..80, got %v..%v", cfg.Navigation.MinDistance, cfg.Navigation.MaxDistance)
	}

	// Panel defaults
	if cfg.Panel.FadeIn != 500*time.Millisecond {
		t.Errorf("expected fade in 500ms, got %v", cfg.Panel.FadeIn)
	}
	if cfg.Panel.FadeOut != 300*time.Millisecond {
		t.Errorf("expected fade out 300ms, got %v", cfg.Panel.FadeOut)
	}
	if cfg.Panel.Settle != 350*time.Millisecond {
		t.Errorf("expected settle 350ms, got %v", cfg.Panel.Settle)
	}
	if cfg.Panel.Content != 0.9 {
		t.Errorf("expected content alpha 0.9, got %v", cfg.Panel.Content)
	}

	// Tour defaults
	if len(cfg.Tour.Sequence) != 7 || cfg.Tour.Sequence[0] != "view1" {
		t.Errorf("expected view1..view7 sequence, got %v", cfg.Tour.Sequence)
	}
	if cfg.Tour.Overlap != 0.3 {
		t.Errorf("expected overlap 0.3, got %v", cfg.Tour.Overlap)
	}
	if cfg.Tour.Loop {
		t.Error("expected loop to be false by default")
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
navigation:
  focus_duration: 1.2s
  click_threshold: 8
  min_distance: 20

panel:
  fade_in: 250ms
  settle: 400ms

tour:
  sequence: [view2, view4]
  overlap: 0.5
  loop: true

logging:
  level: "debug"
  log_file: "depot.log"
  components:
    panel: warn
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Navigation.FocusDuration != 1200*time.Millisecond {
		t.Errorf("expected focus duration 1.2s, got %v", cfg.Navigation.FocusDuration)
	}
	if cfg.Navigation.ClickThreshold != 8 {
		t.Errorf("expected click threshold 8, got %v", cfg.Navigation.ClickThreshold)
	}
	if cfg.Navigation.MaxDistance != 80 {
		t.Errorf("expected max distance to keep default 80, got %v", cfg.Navigation.MaxDistance)
	}
	if cfg.Panel.FadeIn != 250*time.Millisecond {
		t.Errorf("expected fade in 250ms, got %v", cfg.Panel.FadeIn)
	}
	if cfg.Panel.FadeOut != 300*time.Millisecond {
		t.Errorf("expected fade out to keep default 300ms, got %v", cfg.Panel.FadeOut)
	}
	if len(cfg.Tour.Sequence) != 2 || cfg.Tour.Sequence[1] != "view4" {
		t.Errorf("expected sequence [view2 view4], got %v", cfg.Tour.Sequence)
	}
	if !cfg.Tour.Loop {
		t.Error("expected loop to be true")
	}
	if cfg.Logging.LogFile != "depot.log" {
		t.Errorf("expected log file 'depot.log', got %s", cfg.Logging.LogFile)
	}
	if cfg.Logging.Components["panel"] != "warn" {
		t.Errorf("expected panel level 'warn', got %q", cfg.Logging.Components["panel"])
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
navigation:
  focus_duration: not a duration
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative focus", func(c *Config) { c.Navigation.FocusDuration = -time.Second }},
		{"negative threshold", func(c *Config) { c.Navigation.ClickThreshold = -1 }},
		{"inverted clamp", func(c *Config) { c.Navigation.MinDistance = 100 }},
		{"negative fade", func(c *Config) { c.Panel.FadeOut = -time.Millisecond }},
		{"overlap too large", func(c *Config) { c.Tour.Overlap = 1 }},
		{"negative overlap", func(c *Config) { c.Tour.Overlap = -0.1 }},
		{"zero fps", func(c *Config) { c.Runner.FPS = 0 }},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"unknown component level", func(c *Config) { c.Logging.Components = map[string]string{"panel": "loud"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("tour:\n  loop: true\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "catalog flag",
			setup: func() { *flagCatalog = "/srv/depot.yaml" },
			verify: func(cfg *Config) {
				if cfg.Catalog.Path != "/srv/depot.yaml" {
					t.Errorf("expected catalog path /srv/depot.yaml, got %s", cfg.Catalog.Path)
				}
			},
			teardown: func() { *flagCatalog = "" },
		},
		{
			name:  "loop and autoplay flags",
			setup: func() { *flagLoop = true; *flagAutoPlay = true },
			verify: func(cfg *Config) {
				if !cfg.Tour.Loop || !cfg.Tour.AutoPlay {
					t.Error("expected loop and autoplay to be enabled")
				}
			},
			teardown: func() { *flagLoop = false; *flagAutoPlay = false },
		},
		{
			name:  "fps flag",
			setup: func() { *flagFPS = 30 },
			verify: func(cfg *Config) {
				if cfg.Runner.FPS != 30 {
					t.Errorf("expected fps 30, got %d", cfg.Runner.FPS)
				}
			},
			teardown: func() { *flagFPS = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
runner:
  fps: 24
tour:
  overlap: 0.2
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagFPS = 120
	defer func() {
		*flagConfig = ""
		*flagFPS = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// FPS from flag, not file
	if cfg.Runner.FPS != 120 {
		t.Errorf("expected fps 120 from flag, got %d", cfg.Runner.FPS)
	}
	// Overlap from file since no flag override
	if cfg.Tour.Overlap != 0.2 {
		t.Errorf("expected overlap 0.2 from file, got %v", cfg.Tour.Overlap)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("tour:\n  overlap: 1.5\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Tour.Loop = true
	cfg.Panel.Settle = 420 * time.Millisecond

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if !loaded.Tour.Loop || loaded.Panel.Settle != 420*time.Millisecond {
		t.Errorf("saved values not restored: loop=%v settle=%v", loaded.Tour.Loop, loaded.Panel.Settle)
	}
}
