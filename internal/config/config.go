// Package config loads the solver settings from a TOML file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/milden6/dawg-anagram/errors"
)

const (
	appName = "dawg-anagram"

	// DefaultGraph is the file name the standard word list is distributed as.
	DefaultGraph = "Traditional_Dawg_For_Word-List.dat"

	// GraphExtension is the suffix of graph files found by directory scans.
	GraphExtension = ".dat"
)

// Config holds everything the commands need to open a graph and answer
// queries.
type Config struct {
	Graph         string   `toml:"graph"`
	GraphDir      string   `toml:"graph_dir"`
	LogLevel      string   `toml:"log_level"`
	MaxResults    int      `toml:"max_results"`
	SearchTimeout Duration `toml:"search_timeout"`
	Server        Server   `toml:"server"`
}

// Server configures the HTTP query API.
type Server struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// Duration is a time.Duration written as a string such as "2s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Graph:         DefaultGraph,
		LogLevel:      "info",
		SearchTimeout: Duration{5 * time.Second},
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  Duration{5 * time.Second},
			WriteTimeout: Duration{10 * time.Second},
		},
	}
}

// Load reads path over the defaults. An empty path reads the user config
// file if there is one and otherwise returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = userConfigPath()
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings for values no command can use.
func (c Config) Validate() error {
	if c.Graph == "" && c.GraphDir == "" {
		return errors.New(errors.ErrCodeInvalidInput, "either graph or graph_dir must be set")
	}
	if c.MaxResults < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_results must not be negative, got %d", c.MaxResults)
	}
	if c.SearchTimeout.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "search_timeout must not be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown log_level %q", c.LogLevel)
	}
	return nil
}

// userConfigPath returns the config file location using the XDG standard
// (~/.config/dawg-anagram/config.toml).
func userConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
