package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Flag styles understood by the renderer
const (
	FlagEmoji = "emoji"
	FlagCode  = "code"
	FlagNone  = "none"
)

// Config represents the picker configuration
type Config struct {
	Version     int            `toml:"version"`
	InitialCode string         `toml:"initial_code"`
	UISettings  UISettings     `toml:"ui"`
	Styles      StyleSettings  `toml:"styles"`
	Filter      FilterSettings `toml:"filter"`
	Log         LogSettings    `toml:"log"`
}

// UISettings represents the input field and dropdown behaviour
type UISettings struct {
	Placeholder      string `toml:"placeholder"`
	PlaceholderColor string `toml:"placeholder_color"`
	FlagStyle        string `toml:"flag_style"` // emoji, code or none
	MaxRows          int    `toml:"max_rows"`
}

// StyleSettings holds colour overrides (ANSI 256 numbers or hex strings)
type StyleSettings struct {
	BorderColor    string `toml:"border_color"`
	TextColor      string `toml:"text_color"`
	HighlightColor string `toml:"highlight_color"`
	SelectedColor  string `toml:"selected_color"`
}

// FilterSettings configures the filter engine
type FilterSettings struct {
	CacheSize int `toml:"cache_size"`
}

// LogSettings configures the rotating log file
type LogSettings struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		return NewConfigService()
	}
	return &configService{filePath: path}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "countrypick", "config.toml")
}

// Path returns the file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults if no file exists
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		log.Printf("No config at %s, using defaults", cs.filePath)
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Validate()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate replaces out-of-range values with defaults
func (c *Config) Validate() {
	def := DefaultConfig()

	switch c.UISettings.FlagStyle {
	case FlagEmoji, FlagCode, FlagNone:
	default:
		log.Printf("Unknown flag_style %q, using %q", c.UISettings.FlagStyle, FlagEmoji)
		c.UISettings.FlagStyle = FlagEmoji
	}
	if c.UISettings.MaxRows <= 0 {
		c.UISettings.MaxRows = def.UISettings.MaxRows
	}
	if c.UISettings.Placeholder == "" {
		c.UISettings.Placeholder = def.UISettings.Placeholder
	}
	if c.Filter.CacheSize < 0 {
		c.Filter.CacheSize = 0
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = def.Log.MaxSizeMB
	}
	if c.Log.MaxBackups < 0 {
		c.Log.MaxBackups = 0
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			Placeholder:      "Select Country...",
			PlaceholderColor: "241",
			FlagStyle:        FlagEmoji,
			MaxRows:          8,
		},
		Styles: StyleSettings{
			BorderColor:    "241",
			TextColor:      "252",
			HighlightColor: "226",
			SelectedColor:  "238",
		},
		Filter: FilterSettings{
			CacheSize: 64,
		},
		Log: LogSettings{
			File:       "countrypick.log",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}
