// Package config handles loading and hot-reloading tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Config holds ideafactory configuration.
// Stored at: {workspace}/config.yaml or ~/.ideafactory/config.yaml.
type Config struct {
	// Workspace overrides the workspace root directory.
	Workspace string      `mapstructure:"workspace" yaml:"workspace"`
	Defaults  DefaultsCfg `mapstructure:"defaults" yaml:"defaults"`
	Log       LogCfg      `mapstructure:"log" yaml:"log"`
}

// DefaultsCfg specifies default knobs for search and similarity commands.
type DefaultsCfg struct {
	SearchLimit        int     `mapstructure:"search_limit" yaml:"search_limit"`
	SimilarLimit       int     `mapstructure:"similar_limit" yaml:"similar_limit"`
	FuzzyThreshold     float64 `mapstructure:"fuzzy_threshold" yaml:"fuzzy_threshold"`
	DuplicateThreshold float64 `mapstructure:"duplicate_threshold" yaml:"duplicate_threshold"`
}

// LogCfg controls logging.
type LogCfg struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`
}

// DefaultConfig returns configuration with the stock thresholds. The fuzzy
// and duplicate values are long-standing empirical defaults, not derived
// constants.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsCfg{
			SearchLimit:        20,
			SimilarLimit:       10,
			FuzzyThreshold:     0.6,
			DuplicateThreshold: 0.8,
		},
		Log: LogCfg{Level: "info"},
	}
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a config manager and loads initial config. cfgFile
// may be empty, in which case config.yaml is searched in the current
// directory, the workspace, and ~/.ideafactory.
func NewManager(cfgFile, workspacePath string) (*Manager, error) {
	m := &Manager{}

	if err := m.initViper(cfgFile, workspacePath); err != nil {
		return nil, err
	}

	cfg, err := m.load()
	if err != nil {
		return nil, err
	}
	m.config = cfg

	return m, nil
}

// initViper sets up viper with defaults and config file discovery.
func (m *Manager) initViper(cfgFile, workspacePath string) error {
	defaults := DefaultConfig()
	viper.SetDefault("workspace", defaults.Workspace)
	viper.SetDefault("defaults", defaults.Defaults)
	viper.SetDefault("log", defaults.Log)

	// Environment variables with IDEAFACTORY_ prefix
	viper.SetEnvPrefix("IDEAFACTORY")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if workspacePath != "" {
			viper.AddConfigPath(workspacePath)
		}
		viper.AddConfigPath("$HOME/.ideafactory")
	}

	// Config file is optional
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (m *Manager) load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// OnChange registers a callback for config changes.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration.
func (m *Manager) WatchConfig() {
	viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := m.load()
		if err != nil {
			return
		}

		m.mu.Lock()
		m.config = cfg
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	viper.WatchConfig()
}

// WriteDefault writes the default configuration to path, refusing to
// overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
