// Package config handles finsage configuration: a TOML file in the XDG
// config directory with environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config holds all finsage configuration.
type Config struct {
	Gemini     GeminiConfig     `toml:"gemini"`
	Advice     AdviceConfig     `toml:"advice"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeminiConfig holds advice-generation service settings.
type GeminiConfig struct {
	APIKey     string `toml:"api_key,omitempty" env:"GEMINI_API_KEY"`
	BaseURL    string `toml:"base_url,omitempty" env:"FINSAGE_BASE_URL"`
	Model      string `toml:"model" env:"FINSAGE_MODEL"`
	TimeoutSec int    `toml:"timeout_sec" env:"FINSAGE_TIMEOUT_SEC"`
}

// AdviceConfig holds display preferences for rendered advice.
type AdviceConfig struct {
	Currency string `toml:"currency" env:"FINSAGE_CURRENCY"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" env:"FINSAGE_THEME"`
}

// Timeout returns the request timeout as a duration.
func (g GeminiConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSec) * time.Second
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Gemini: GeminiConfig{
			Model:      "gemini-2.0-flash",
			TimeoutSec: 30,
		},
		Advice: AdviceConfig{
			Currency: "$",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finsage")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finsage")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file and applies environment overrides. A missing
// file is not an error; defaults are used.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	// Environment beats file
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing env overrides: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
