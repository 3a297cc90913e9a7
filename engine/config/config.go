// Package config provides configuration management for the playground with Viper integration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config represents the complete configuration for the playground.
type Config struct {
	Window  WindowConfig  `mapstructure:"window" yaml:"window" json:"window"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`
	Menu    MenuConfig    `mapstructure:"menu" yaml:"menu" json:"menu"`
	Demo    DemoConfig    `mapstructure:"demo" yaml:"demo" json:"demo"`
}

// WindowConfig holds the window and backbuffer settings.
type WindowConfig struct {
	Title  string `mapstructure:"title" yaml:"title" json:"title"`
	Width  int    `mapstructure:"width" yaml:"width" json:"width" jsonschema:"minimum=1"`
	Height int    `mapstructure:"height" yaml:"height" json:"height" jsonschema:"minimum=1"`
	VSync  bool   `mapstructure:"vsync" yaml:"vsync" json:"vsync"`
	// ClearColor is #rrggbb or #rrggbbaa.
	ClearColor string `mapstructure:"clear_color" yaml:"clear_color" json:"clear_color" jsonschema:"pattern=^#?([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// MenuConfig sizes the menu buttons, in window units.
type MenuConfig struct {
	ButtonWidth  float32 `mapstructure:"button_width" yaml:"button_width" json:"button_width"`
	ButtonHeight float32 `mapstructure:"button_height" yaml:"button_height" json:"button_height"`
	FontSize     float32 `mapstructure:"font_size" yaml:"font_size" json:"font_size"`
	// Spacing is the distance between button centres.
	Spacing float32 `mapstructure:"spacing" yaml:"spacing" json:"spacing"`
}

// DemoConfig tunes the rectangle playground.
type DemoConfig struct {
	// MoveSpeed is in window units per millisecond.
	MoveSpeed float32 `mapstructure:"move_speed" yaml:"move_speed" json:"move_speed"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	log       zerolog.Logger
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager. An empty file searches the
// config directory and the working directory for playground.{yaml,toml,json}.
func NewManager(file string, log zerolog.Logger) (*Manager, error) {
	v := viper.New()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(appName)
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".") // Current directory for development
	}

	// Set up environment variable support: PLAYGROUND_WINDOW_WIDTH etc.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	m := &Manager{viper: v, log: log}
	m.setDefaults()
	return m, nil
}

// Viper exposes the underlying instance so command-line flags can be bound.
func (m *Manager) Viper() *viper.Viper { return m.viper }

// Load loads the configuration from file and environment variables. A missing
// config file is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		m.log.Debug().Msg("no config file, using defaults")
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// File reports the config file in use, or "" when running on defaults.
func (m *Manager) File() string { return m.viper.ConfigFileUsed() }

// Watch starts watching the config file for changes and reloads automatically.
// Callbacks run on the watcher goroutine.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}
	if m.viper.ConfigFileUsed() == "" {
		return errors.New("no config file to watch")
	}

	m.viper.OnConfigChange(func(ev fsnotify.Event) {
		if err := m.reload(); err != nil {
			m.log.Warn().Err(err).Str("file", ev.Name).Msg("failed to reload config")
			return
		}

		// Notify callbacks
		m.mu.RLock()
		config := *m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		m.log.Info().Str("file", ev.Name).Msg("config reloaded")
		for _, callback := range callbacks {
			c := config
			callback(&c)
		}
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file. An invalid file keeps the previous configuration.
func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("window.title", defaults.Window.Title)
	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
	m.viper.SetDefault("window.vsync", defaults.Window.VSync)
	m.viper.SetDefault("window.clear_color", defaults.Window.ClearColor)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("menu.button_width", defaults.Menu.ButtonWidth)
	m.viper.SetDefault("menu.button_height", defaults.Menu.ButtonHeight)
	m.viper.SetDefault("menu.font_size", defaults.Menu.FontSize)
	m.viper.SetDefault("menu.spacing", defaults.Menu.Spacing)

	m.viper.SetDefault("demo.move_speed", defaults.Demo.MoveSpeed)
}
