package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagCatalog  = flag.String("catalog", "", "Path to catalog file")
	flagLoop     = flag.Bool("loop", false, "Loop the tour")
	flagAutoPlay = flag.Bool("autoplay", false, "Start the tour on launch")
	flagFPS      = flag.Int("fps", 0, "Frame rate of the headless loop")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagCatalog != "" {
		cfg.Catalog.Path = *flagCatalog
	}
	if *flagLoop {
		cfg.Tour.Loop = true
	}
	if *flagAutoPlay {
		cfg.Tour.AutoPlay = true
	}
	if *flagFPS > 0 {
		cfg.Runner.FPS = *flagFPS
	}
}
