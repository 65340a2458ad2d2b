package config

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the full configuration for tm.
type Config struct {
	// DataDir is where project documents live. Empty means the
	// OS-specific default data directory.
	DataDir string `toml:"data_dir"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

// Default values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.tm/tm.toml or OS-specific config dir)
// 3. Environment variables (TM_*)
// 4. CLI flags (registered on fs)
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := findUserConfigFile(); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	dataDir := fs.String("data-dir", cfg.DataDir, "Data directory for project files")
	logLevel := fs.String("log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	logFormat := fs.String("log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	cfg.DataDir = *dataDir
	cfg.LogLevel = *logLevel
	cfg.LogFormat = *logFormat

	cfg.DataDir = expandPath(cfg.DataDir)
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}
