package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"selectgrip/internal/eventbus"
)

const (
	DefaultIdleResetMs    = 1000
	DefaultMaxVisibleRows = 8
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	LogFile    string         `toml:"log_file"`
	LogLevel   string         `toml:"log_level"`
	Search     SearchSettings `toml:"search"`
	UISettings UISettings     `toml:"ui"`
}

// SearchSettings configures type-ahead search
type SearchSettings struct {
	IdleResetMs int `toml:"idle_reset_ms"` // quiet period before the buffer clears
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title          string `toml:"title"`
	MaxVisibleRows int    `toml:"max_visible_rows"`
	SyncNative     bool   `toml:"sync_native"`
	ShowHelp       bool   `toml:"show_help"`
}

// IdleWindow returns the type-ahead idle window as a duration
func (c *Config) IdleWindow() time.Duration {
	return time.Duration(c.Search.IdleResetMs) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "selectgrip", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the default location, falling back
// to defaults when no file exists
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path. Unset fields
// keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}

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

// Validate rejects values the widget cannot work with
func (c *Config) Validate() error {
	if c.Search.IdleResetMs <= 0 {
		return fmt.Errorf("search.idle_reset_ms must be positive, got %d", c.Search.IdleResetMs)
	}
	if c.UISettings.MaxVisibleRows <= 0 {
		return fmt.Errorf("ui.max_visible_rows must be positive, got %d", c.UISettings.MaxVisibleRows)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		LogFile:  "selectgrip.log",
		LogLevel: "info",
		Search: SearchSettings{
			IdleResetMs: DefaultIdleResetMs,
		},
		UISettings: UISettings{
			Title:          "selectgrip",
			MaxVisibleRows: DefaultMaxVisibleRows,
			ShowHelp:       true,
		},
	}
}
