package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/thenoetrevino/tick/internal/config/colors"
	"github.com/thenoetrevino/tick/internal/database"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig     `yaml:"database"`
	Log         LogConfig          `yaml:"log"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// DatabaseConfig controls where tasks are stored and how the file is opened
type DatabaseConfig struct {
	Path string `yaml:"path" env:"TICK_DB_PATH"`
	// PerOperation opens and closes the database around every operation
	PerOperation bool `yaml:"per_operation" env:"TICK_PER_OPERATION"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level" env:"TICK_LOG_LEVEL"`
	Dir   string `yaml:"dir" env:"TICK_LOG_DIR"`
}

// Default returns a config with every value filled in
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from TICK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TICK_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults. TICK_* environment variables
// override values from the file.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			// Still honour the environment when no config dir can be found
			return loadEnv()
		}
		path = p
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return nil, fmt.Errorf("cannot read config %q: %w", path, err)
		}
		return loadEnv()
	}

	loadThemeFile(&cfg)
	cfg.applyDefaults()

	return &cfg, nil
}

func loadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read env: %w", err)
	}

	loadThemeFile(&cfg)
	cfg.applyDefaults()

	return &cfg, nil
}

// Save writes the config as YAML to path, or the default location when path is empty
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := Path()
		if err != nil {
			return err
		}
		path = p
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Path returns the default location of the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tick", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tick", "config.yaml"), nil
}

// DefaultLogDir returns ~/.tick/logs
func DefaultLogDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "tick", "logs")
	}
	return filepath.Join(homeDir, ".tick", "logs")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		if p, err := database.DefaultPath(); err == nil {
			c.Database.Path = p
		}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Dir == "" {
		c.Log.Dir = DefaultLogDir()
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// StorageMode maps the database settings to a handle mode
func (c *Config) StorageMode() database.Mode {
	if c.Database.PerOperation {
		return database.ModePerOperation
	}
	return database.ModeShared
}
