package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultServerURL is the backend used when nothing is configured.
// The platform runs its API on localhost:8080 in development.
const DefaultServerURL = "http://localhost:8080"

// Config represents the application configuration
type Config struct {
	ServerURL string `yaml:"server_url"`
	Theme     string `yaml:"theme"`
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist. The COLLAB_SERVER_URL
// environment variable overrides the configured server.
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		}
	}

	config.applyDefaults()

	if url := os.Getenv("COLLAB_SERVER_URL"); url != "" {
		config.ServerURL = url
	}

	return config, nil
}

// Save saves the config to the user's config directory.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// applyDefaults fills in any missing values
func (c *Config) applyDefaults() {
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.Theme == "" {
		c.Theme = "default"
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "collab", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "collab", "config.yaml"), nil
}
