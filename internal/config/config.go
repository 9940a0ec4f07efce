package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/taskflow/internal/config/colors"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/presence"
)

// Environment variables that override file settings
const (
	EnvDBPath          = "TASKFLOW_DB_PATH"
	EnvDefaultAssignee = "TASKFLOW_DEFAULT_ASSIGNEE"
	EnvLogLevel        = "TASKFLOW_LOG_LEVEL"
	EnvThemeFile       = "TASKFLOW_THEME_FILE"
)

// Defaults
const (
	DefaultLogLevel         = "debug"
	DefaultPresenceInterval = 5 * time.Second
	DefaultSaveTimeout      = 5 * time.Second
)

// Config represents the application configuration
type Config struct {
	// DefaultAssignee is the identity given to tasks created without an
	// assignee. Empty means the first collaborator.
	DefaultAssignee string `yaml:"default_assignee"`

	// DBPath is the SQLite database file. Empty means ~/.taskflow/taskflow.db
	DBPath string `yaml:"db_path"`

	LogLevel string `yaml:"log_level"`

	Columns          []models.ColumnSpec     `yaml:"columns"`
	Collaborators    []presence.Collaborator `yaml:"collaborators"`
	PresenceInterval time.Duration           `yaml:"presence_interval"`
	SaveTimeout      time.Duration           `yaml:"save_timeout"`

	KeyMappings KeyMappings        `yaml:"key_mappings"`
	Colors      colors.ColorScheme `yaml:"colors"`
}

// Default returns a config with every setting at its default
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile merges color overrides from TASKFLOW_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Colors colors.ColorScheme `yaml:"colors"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Colors.MergeFrom(themeConfig.Colors)
	}
}

// loadDotEnv loads .env from the working directory without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// applyEnv applies environment overrides on top of file settings
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvDefaultAssignee); v != "" {
		c.DefaultAssignee = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	config := &Config{}

	configPath, err := Path()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Defaults only
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		}
	}

	loadThemeFile(config)
	config.applyEnv()

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskflow", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskflow", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if len(c.Columns) == 0 {
		c.Columns = models.DefaultColumns()
	} else if valid, dropped := models.SanitizeColumns(c.Columns); dropped > 0 {
		slog.Warn("config has columns with blank or duplicate ids; ignoring them", "dropped", dropped)
		c.Columns = valid
	}
	c.Collaborators = presence.Normalize(c.Collaborators)
	if strings.TrimSpace(c.DefaultAssignee) == "" {
		c.DefaultAssignee = c.Collaborators[0].Name
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.PresenceInterval <= 0 {
		c.PresenceInterval = DefaultPresenceInterval
	}
	if c.SaveTimeout <= 0 {
		c.SaveTimeout = DefaultSaveTimeout
	}
	c.KeyMappings.applyDefaults()
}
