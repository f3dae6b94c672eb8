package config

import (
	"fmt"

	"github.com/FocuswithJustin/bibleprep/internal/logging"
	"github.com/FocuswithJustin/bibleprep/internal/validation"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	for _, p := range []struct {
		key   string
		value string
	}{
		{"paths.topics", c.Paths.Topics},
		{"paths.translation", c.Paths.Translation},
		{"paths.enriched", c.Paths.Enriched},
		{"paths.bible_root", c.Paths.BibleRoot},
	} {
		if err := validation.ValidatePath(p.value); err != nil {
			return fmt.Errorf("%s: %w", p.key, err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		return fmt.Errorf("logging.format: %w", err)
	}
	return nil
}
