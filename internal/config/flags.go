package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagHeadless = flag.Bool("headless", false, "Export snapshots and exit without opening a window")
	flagOut      = flag.String("out", "", "Directory for exported images")
	flagWidth    = flag.Int("width", 0, "Window width")
	flagHeight   = flag.Int("height", 0, "Window height")
	flagSeed     = flag.Int64("seed", 0, "Noise seed")
	flagBackend  = flag.String("backend", "", "Noise backend: opensimplex or perlin")
	flagSave     = flag.String("save-config", "", "Write the effective config to this path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SavePath returns the path given via --save-config, if any.
func SavePath() string {
	return *flagSave
}

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags applies CLI flag overrides to the config. set holds the flags
// given explicitly; the seed is only taken from there since 0 is a valid seed.
func applyFlags(cfg *Config, set map[string]bool) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagHeadless {
		cfg.Window.Headless = true
		cfg.Export.Enabled = true
	}
	if *flagOut != "" {
		cfg.Export.Dir = *flagOut
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if set["seed"] {
		cfg.Noise.Seed = *flagSeed
	}
	if *flagBackend != "" {
		cfg.Noise.Backend = *flagBackend
	}
}
