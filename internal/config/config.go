// Package config handles probe tool configuration loading and management.
package config

// Config holds all probe settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Input   InputConfig   `yaml:"input"`
	Probe   ProbeConfig   `yaml:"probe"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings for the probe window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// InputConfig holds binding persistence settings.
type InputConfig struct {
	BindingsPath string `yaml:"bindings_path"` // Path to the bindings XML file
	SaveOnExit   bool   `yaml:"save_on_exit"`
}

// ProbeConfig holds probe loop settings.
type ProbeConfig struct {
	FrameRate   int `yaml:"frame_rate"`
	ReportEvery int `yaml:"report_every"` // Log action values every N frames
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "inputkit probe",
			Width:  640,
			Height: 360,
		},
		Input: InputConfig{
			BindingsPath: "bindings.xml",
			SaveOnExit:   false,
		},
		Probe: ProbeConfig{
			FrameRate:   60,
			ReportEvery: 30,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
