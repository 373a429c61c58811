package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"wellness/internal/seed"
)

// ErrInvalidSettings wraps every validation failure of config.toml or flags.
var ErrInvalidSettings = errors.New("invalid settings")

// settingsFile is the on-disk shape of config.toml. Pointer fields tell
// "unset" apart from zero.
type settingsFile struct {
	SeedCount     *int    `toml:"seed_count"`
	LabelTemplate *string `toml:"label_template"`
	WaterMax      *int    `toml:"water_max"`
	FromList      *string `toml:"from_list"`
}

func (c *Config) loadSettings() error {
	data, err := os.ReadFile(c.SettingsPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", SettingsFile, err)
	}
	return c.applySettings(data)
}

func (c *Config) applySettings(data []byte) error {
	var f settingsFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSettings, SettingsFile, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %s: unknown key: %s", ErrInvalidSettings, SettingsFile, undecoded[0])
	}

	if f.SeedCount != nil {
		c.SeedCount = *f.SeedCount
	}
	if f.LabelTemplate != nil {
		c.LabelTemplate = *f.LabelTemplate
	}
	if f.WaterMax != nil {
		c.WaterMax = *f.WaterMax
	}
	if f.FromList != nil {
		c.FromList = *f.FromList
	}
	return c.Validate()
}

// Validate checks the session settings.
func (c *Config) Validate() error {
	if c.SeedCount < 0 {
		return fmt.Errorf("%w: seed count must not be negative: %d", ErrInvalidSettings, c.SeedCount)
	}
	if c.WaterMax < 1 {
		return fmt.Errorf("%w: water max must be at least 1: %d", ErrInvalidSettings, c.WaterMax)
	}
	if err := seed.ValidateTemplate(c.LabelTemplate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}
