package config

import (
	"encoding/json"
	"os"
	"sync"
)

// Config represents the main configuration file structure
type Config struct {
	Locale       string `json:"locale"`                 // "auto" or ISO format (e.g., "en-US")
	Registry     string `json:"registry,omitempty"`     // catalog override: file path or URL, empty = built-in
	ClientConfig string `json:"clientConfig,omitempty"` // Claude Desktop config path, empty = default location
}

var (
	cfg     *Config
	cfgOnce sync.Once
	cfgMu   sync.RWMutex
)

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Locale: "auto", // default: auto-detect system locale
	}
}

// Load loads the configuration from file
func Load() (*Config, error) {
	cfgMu.RLock()
	defer cfgMu.RUnlock()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Set default locale if empty
	if config.Locale == "" {
		config.Locale = "auto"
	}

	return &config, nil
}

// Save saves the configuration to file
func Save(config *Config) error {
	cfgMu.Lock()
	defer cfgMu.Unlock()

	if err := EnsureDir(FleurDir()); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(), data, 0644)
}

// Get returns the current configuration (singleton)
func Get() *Config {
	cfgOnce.Do(func() {
		var err error
		cfg, err = Load()
		if err != nil {
			cfg = NewConfig()
		}
	})
	return cfg
}

// GetLocale returns the configured locale
func GetLocale() string {
	return Get().Locale
}

// SetLocale sets the locale and saves
func SetLocale(locale string) error {
	config := Get()
	config.Locale = locale
	return Save(config)
}

// GetRegistry returns the configured catalog override, empty for built-in
func GetRegistry() string {
	return Get().Registry
}

// SetRegistry sets the catalog override and saves
func SetRegistry(registry string) error {
	config := Get()
	config.Registry = registry
	return Save(config)
}

// GetClientConfig returns the configured Claude Desktop config path, empty
// for the default location
func GetClientConfig() string {
	return Get().ClientConfig
}

// SetClientConfig sets the Claude Desktop config path and saves
func SetClientConfig(path string) error {
	config := Get()
	config.ClientConfig = path
	return Save(config)
}
