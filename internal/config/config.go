// Package config manages persisted CLI preferences and credentials under
// the brale home directory (~/.brale by default).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Default endpoints and preferences.
const (
	DefaultAPIBaseURL  = "https://api.brale.xyz"
	DefaultAuthBaseURL = "https://auth.brale.xyz"
	DefaultOutput      = "table"
	DefaultTimeout     = 30
)

// Config holds non-secret preferences persisted in config.yaml.
type Config struct {
	DefaultAccount string `yaml:"default_account,omitempty"`
	DefaultOutput  string `yaml:"default_output"`
	APIBaseURL     string `yaml:"api_base_url"`
	AuthBaseURL    string `yaml:"auth_base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Defaults returns a Config with the stock settings.
func Defaults() *Config {
	return &Config{
		DefaultOutput:  DefaultOutput,
		APIBaseURL:     DefaultAPIBaseURL,
		AuthBaseURL:    DefaultAuthBaseURL,
		TimeoutSeconds: DefaultTimeout,
	}
}

// Load reads configuration from path. A missing file yields defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes configuration to path, creating the directory if needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Keys lists the settable configuration keys.
func Keys() []string {
	return []string{"default_account", "default_output", "api_base_url", "auth_base_url", "timeout_seconds"}
}

// Get returns a configuration value by key name.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "default_account":
		return c.DefaultAccount, nil
	case "default_output":
		return c.DefaultOutput, nil
	case "api_base_url":
		return c.APIBaseURL, nil
	case "auth_base_url":
		return c.AuthBaseURL, nil
	case "timeout_seconds":
		return strconv.Itoa(c.TimeoutSeconds), nil
	default:
		return "", fmt.Errorf("unknown configuration key %q", key)
	}
}

// Set updates a configuration value by key name.
func (c *Config) Set(key, value string) error {
	switch key {
	case "default_account":
		c.DefaultAccount = value
	case "default_output":
		c.DefaultOutput = value
	case "api_base_url":
		c.APIBaseURL = value
	case "auth_base_url":
		c.AuthBaseURL = value
	case "timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("timeout_seconds must be a positive integer, got %q", value)
		}
		c.TimeoutSeconds = n
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}
	return nil
}

// Path returns the config file path under home.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// CredentialsPath returns the credentials file path under home.
func CredentialsPath(home string) string {
	return filepath.Join(home, "credentials.json")
}

// DefaultHome returns the default brale home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".brale"
	}
	return filepath.Join(home, ".brale")
}
