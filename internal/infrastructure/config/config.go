// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for socialnet configuration.
	DefaultConfigDir = ".socialnet"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDataDir is where bare input and output file names are resolved.
	DefaultDataDir = "files"
	// DefaultSeedsFile is the residential seed list read by the residential query.
	DefaultSeedsFile = "residential.txt"
)

// DefaultDateLayouts are tried in order when parsing birth dates.
var DefaultDateLayouts = []string{"2-1-2006", "2006-01-02", "2/1/2006"}

// Config holds static configuration (read-only after load).
type Config struct {
	Data   DataConfig   `yaml:"data,omitempty"`
	Log    LogConfig    `yaml:"log,omitempty"`
	SQLite SQLiteConfig `yaml:"sqlite,omitempty"`
}

// DataConfig describes the input files fed to the registry.
type DataConfig struct {
	Dir           string   `yaml:"dir,omitempty"`
	PeopleFile    string   `yaml:"people_file,omitempty"`
	RelationsFile string   `yaml:"relations_file,omitempty"`
	SeedsFile     string   `yaml:"seeds_file,omitempty"`
	DateLayouts   []string `yaml:"date_layouts,omitempty"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
	// Format is "console" for human readable output or "json".
	Format string `yaml:"format,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite snapshot export.
type SQLiteConfig struct {
	// Path is the file path of the exported database.
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir:         DefaultDataDir,
			SeedsFile:   DefaultSeedsFile,
			DateLayouts: append([]string(nil), DefaultDateLayouts...),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		SQLite: SQLiteConfig{
			Path: "socialnet.db",
		},
	}
}

// Load loads configuration from the .socialnet directory in the given path.
// A missing config file is not an error: defaults are used. A .env file in
// basePath, if present, is loaded before environment overrides apply.
func Load(basePath string) (*Config, error) {
	_ = godotenv.Load(filepath.Join(basePath, ".env"))

	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Data.DateLayouts) == 0 {
		cfg.Data.DateLayouts = append([]string(nil), DefaultDateLayouts...)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SOCIALNET_PEOPLE_FILE"); v != "" {
		c.Data.PeopleFile = v
	}
	if v := os.Getenv("SOCIALNET_RELATIONS_FILE"); v != "" {
		c.Data.RelationsFile = v
	}
	if v := os.Getenv("SOCIALNET_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("SOCIALNET_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Resolve maps a bare file name into the data directory. Absolute paths and
// names that already contain a directory are returned unchanged.
func (d DataConfig) Resolve(name string) string {
	if name == "" || d.Dir == "" || filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	return filepath.Join(d.Dir, name)
}

// ConfigDir returns the path to the .socialnet config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a socialnet config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
