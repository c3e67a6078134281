// Package config provides YAML-based configuration loading for the guide:
// catalog tabs, locale, dataset source and SSH server settings.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
)

// Config is the full guide configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Locale  LocaleConfig  `yaml:"locale"`
	Data    DataConfig    `yaml:"data"`
	Server  ServerConfig  `yaml:"server"`
}

// CatalogConfig controls the level showcase.
type CatalogConfig struct {
	FeaturedCount int             `yaml:"featured_count"`
	Ranges        []catalog.Range `yaml:"ranges"`
}

// LocaleConfig selects the dictionary when no --lang flag or LANG is set.
type LocaleConfig struct {
	Default string `yaml:"default"`
}

// DataConfig points at the level dataset. Empty means the bundled one.
type DataConfig struct {
	Levels string `yaml:"levels"`
}

// ServerConfig holds SSH server settings.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Validate checks the catalog tabs: a positive featured count and
// ascending, non-overlapping ranges with start <= end.
func (c Config) Validate() error {
	if c.Catalog.FeaturedCount <= 0 {
		return fmt.Errorf("config: featured_count must be positive, got %d", c.Catalog.FeaturedCount)
	}
	if len(c.Catalog.Ranges) == 0 {
		return fmt.Errorf("config: at least one range is required")
	}

	for i, r := range c.Catalog.Ranges {
		if r.Start <= 0 || r.Start > r.End {
			return fmt.Errorf("config: range %d (%d-%d) is malformed", i, r.Start, r.End)
		}
		if i > 0 && r.Start <= c.Catalog.Ranges[i-1].End {
			prev := c.Catalog.Ranges[i-1]
			return fmt.Errorf("config: range %d-%d overlaps or precedes %d-%d", r.Start, r.End, prev.Start, prev.End)
		}
	}

	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: idle_timeout_minutes cannot be negative")
	}
	return nil
}
