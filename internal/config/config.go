// Package config handles the XDG configuration directory, its files, and
// the settings a session is built from.
package config

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"wellness/internal/seed"
	"wellness/internal/water"
)

const (
	// AppName is the application directory name.
	AppName = "wellness"

	// SettingsFile is the optional TOML settings filename.
	SettingsFile = "config.toml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// SeedCount is the number of generated tasks.
	SeedCount int

	// LabelTemplate formats generated task labels.
	LabelTemplate string

	// WaterMax caps the water counter.
	WaterMax int

	// FromList names a Google Tasks list to seed from instead of the
	// generator. "@default" selects the default list.
	FromList string
}

// New creates a Config for the default or specified config directory and
// applies config.toml from it when present.
// If configDir is empty, uses XDG_CONFIG_HOME/wellness or $HOME/.config/wellness.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:           dir,
		SeedCount:     seed.DefaultCount,
		LabelTemplate: seed.DefaultTemplate,
		WaterMax:      water.DefaultMax,
	}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to config.toml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}

// UsesGoogle reports whether sessions are seeded from Google Tasks.
func (c *Config) UsesGoogle() bool {
	return c.FromList != ""
}

// Logger returns a debug logger writing to w, or a discarding one unless
// Debug is set.
func (c *Config) Logger(w io.Writer) *log.Logger {
	if !c.Debug {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, AppName+": ", log.Ltime)
}
