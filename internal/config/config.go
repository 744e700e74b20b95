// Package config handles terrainwave configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Terrain TerrainConfig `yaml:"terrain"`
	Noise   NoiseConfig   `yaml:"noise"`
	Light   LightConfig   `yaml:"light"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings for the interactive view.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Headless   bool   `yaml:"headless"` // export only, never open a window
}

// TerrainConfig holds the grid and height-field parameters.
type TerrainConfig struct {
	Scale        int     `yaml:"scale"`  // world units per grid cell
	Width        int     `yaml:"width"`  // world units, also export image width
	Height       int     `yaml:"height"` // world units, also export image height
	Exponent     float64 `yaml:"exponent"`
	MinAmplitude float64 `yaml:"min_amplitude"`
	MaxAmplitude float64 `yaml:"max_amplitude"`

	StaticFrequency   float64 `yaml:"static_frequency"`   // noise step per cell at startup
	AnimatedFrequency float64 `yaml:"animated_frequency"` // noise step per cell per frame
	TimeScale         float64 `yaml:"time_scale"`         // seconds to noise time units
}

// NoiseConfig selects and tunes the coherent noise backend.
type NoiseConfig struct {
	Backend     string  `yaml:"backend"` // opensimplex or perlin
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Alpha       float64 `yaml:"alpha"` // perlin only
	Beta        float64 `yaml:"beta"`  // perlin only
}

// LightConfig holds the single scene light.
type LightConfig struct {
	Diffuse   [3]float32 `yaml:"diffuse"`
	Specular  [3]float32 `yaml:"specular"`
	Ambient   float32    `yaml:"ambient"`
	Shininess float32    `yaml:"shininess"`
	Swing     float32    `yaml:"swing"` // amplitude of the vertical light oscillation
}

// ExportConfig holds the startup snapshot settings.
type ExportConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Dir        string `yaml:"dir"`
	Format     string `yaml:"format"` // png, bmp or tiff
	HeightsCSV string `yaml:"heights_csv"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock terrain settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "terrainwave",
			Width:  1280,
			Height: 800,
			VSync:  true,
		},
		Terrain: TerrainConfig{
			Scale:             6,
			Width:             1024,
			Height:            1024,
			Exponent:          3,
			MinAmplitude:      16,
			MaxAmplitude:      48,
			StaticFrequency:   0.1,
			AnimatedFrequency: 0.05,
			TimeScale:         0.5,
		},
		Noise: NoiseConfig{
			Backend:     "opensimplex",
			Octaves:     1,
			Persistence: 0.5,
			Alpha:       2,
			Beta:        2,
		},
		Light: LightConfig{
			Diffuse:   [3]float32{0.85, 0.85, 0.55},
			Specular:  [3]float32{1, 1, 1},
			Ambient:   0.2,
			Shininess: 32,
			Swing:     100,
		},
		Export: ExportConfig{
			Enabled: true,
			Dir:     ".",
			Format:  "png",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
