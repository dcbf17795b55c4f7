// Package config handles trace tool configuration loading and management.
package config

// Config holds all trace tool settings.
type Config struct {
	Trace   TraceConfig   `yaml:"trace"`
	Logging LoggingConfig `yaml:"logging"`
}

// TraceConfig holds collision query settings.
type TraceConfig struct {
	// DefaultHull names the hull used when a command does not pick one.
	DefaultHull string `yaml:"default_hull"`
	// MaxDistance is how far direction-style trace queries extend, in
	// level units.
	MaxDistance float32 `yaml:"max_distance"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Trace: TraceConfig{
			DefaultHull: "point",
			MaxDistance: 8192,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
