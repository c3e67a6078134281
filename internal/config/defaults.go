package config

import (
	_ "embed"

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
)

//go:embed defaults/dreamyroom.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Catalog: CatalogConfig{
			FeaturedCount: catalog.InitialFeaturedCount,
			Ranges:        catalog.DefaultRanges(),
		},
		Locale: LocaleConfig{
			Default: "en",
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
