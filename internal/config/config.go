package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "JOBTRACK"

// Color modes for display.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type DBConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type LogConfig struct {
	// UseCases enables one structured log record per schedule use case.
	UseCases bool `mapstructure:"use_cases" yaml:"use_cases"`
}

type UrgencyConfig struct {
	WindowDays int `mapstructure:"window_days" yaml:"window_days"`
}

type DisplayConfig struct {
	Color string `mapstructure:"color" yaml:"color"`
}

// Config is the top-level application configuration.
type Config struct {
	DB      DBConfig      `mapstructure:"db" yaml:"db"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Urgency UrgencyConfig `mapstructure:"urgency" yaml:"urgency"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// Dir returns ~/.jobtrack, or ./.jobtrack when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jobtrack"
	}
	return filepath.Join(home, ".jobtrack")
}

func DefaultConfigPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func DefaultConfig() *Config {
	return &Config{
		DB:      DBConfig{Path: filepath.Join(Dir(), "jobtrack.db")},
		Urgency: UrgencyConfig{WindowDays: 7},
		Display: DisplayConfig{Color: ColorAuto},
	}
}

// Load reads configuration from defaults, then the YAML file at path, then
// JOBTRACK_* environment variables. An empty path means the default location,
// which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	def := DefaultConfig()
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("db.path", def.DB.Path)
	v.SetDefault("log.use_cases", def.Log.UseCases)
	v.SetDefault("urgency.window_days", def.Urgency.WindowDays)
	v.SetDefault("display.color", def.Display.Color)

	// Keys are bound one by one rather than with AutomaticEnv, which would
	// also read JOBTRACK_DB as the whole "db" table and drop db.path.
	// JOBTRACK_DB predates the nested key; JOBTRACK_DB_PATH wins if both are set.
	envKeys := map[string][]string{
		"db.path":             {envPrefix + "_DB_PATH", envPrefix + "_DB"},
		"log.use_cases":       {envPrefix + "_LOG_USE_CASES"},
		"urgency.window_days": {envPrefix + "_URGENCY_WINDOW_DAYS"},
		"display.color":       {envPrefix + "_DISPLAY_COLOR"},
	}
	for key, names := range envKeys {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &pathErr) || errors.As(err, &notFound)
		if !missing || explicit {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DB.Path) == "" {
		return fmt.Errorf("db.path must not be empty")
	}
	if c.Urgency.WindowDays < 1 {
		return fmt.Errorf("urgency.window_days must be >= 1, got %d", c.Urgency.WindowDays)
	}
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("display.color must be one of auto, always, never, got %q", c.Display.Color)
	}
	return nil
}
