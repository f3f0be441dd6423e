package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .statable.yaml configuration file.
type Config struct {
	Version int          `yaml:"version" mapstructure:"version"`
	Loader  LoaderConfig `yaml:"loader" mapstructure:"loader"`
	Demo    DemoConfig   `yaml:"demo" mapstructure:"demo"`
	Script  ScriptConfig `yaml:"script" mapstructure:"script"`
	Output  OutputConfig `yaml:"output" mapstructure:"output"`
}

// LoaderConfig controls the loader's motion and ring appearance.
type LoaderConfig struct {
	// Label is shown next to the state on the status line.
	Label string `yaml:"label" mapstructure:"label"`

	// Start is the initial angle in degrees. -90 is twelve o'clock.
	Start float64 `yaml:"start" mapstructure:"start"`

	// Sweep is how many degrees one cycle covers. The end of each sweep is
	// the angle at which spinning began plus Sweep.
	Sweep float64 `yaml:"sweep" mapstructure:"sweep"`

	// Stop is the angle assigned when the loader is stopped.
	Stop float64 `yaml:"stop" mapstructure:"stop"`

	// Cycle is how long one sweep takes.
	Cycle time.Duration `yaml:"cycle" mapstructure:"cycle"`

	// FPS is the frame rate while spinning.
	FPS int `yaml:"fps" mapstructure:"fps"`

	// Radius is the ring radius in rows.
	Radius int `yaml:"radius" mapstructure:"radius"`

	// Segments is how many cells make up the ring.
	Segments int `yaml:"segments" mapstructure:"segments"`

	// Accent is the solid ring color (hex).
	Accent string `yaml:"accent" mapstructure:"accent"`

	// Background is what the faded tail blends against (hex).
	Background string `yaml:"background" mapstructure:"background"`

	// Fade is the opacity at the start of the gradient, 0..1.
	Fade float64 `yaml:"fade" mapstructure:"fade"`
}

// DemoConfig controls the interactive demo.
type DemoConfig struct {
	// Initial is the state the demo starts in (spinning, paused, stopped).
	Initial string `yaml:"initial" mapstructure:"initial"`

	// AltScreen runs the demo full-screen.
	AltScreen bool `yaml:"alt_screen" mapstructure:"alt_screen"`
}

// ScriptConfig controls scripted playback.
type ScriptConfig struct {
	// Hold is how long a step without an explicit duration lasts.
	Hold time.Duration `yaml:"hold" mapstructure:"hold"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color is auto, always, or never.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Loader: LoaderConfig{
			Label:      "Loading",
			Start:      -90,
			Sweep:      360,
			Stop:       -90,
			Cycle:      time.Second,
			FPS:        30,
			Radius:     4,
			Segments:   24,
			Accent:     "#FF3B30",
			Background: "#000000",
			Fade:       0.15,
		},
		Demo: DemoConfig{
			Initial:   "stopped",
			AltScreen: false,
		},
		Script: ScriptConfig{
			Hold: time.Second,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
