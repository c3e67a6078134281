// Package formats provides pluggable level dataset parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
)

// YAMLFile represents the YAML structure of a dataset file.
type YAMLFile struct {
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single level in YAML format.
type YAMLLevel struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	VideoURL string `yaml:"video_url"`
	ImageURL string `yaml:"image_url,omitempty"`
}

// ParseYAML parses a dataset file, keeping the order levels appear in.
func ParseYAML(data []byte) ([]catalog.Level, error) {
	var f YAMLFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	levels := make([]catalog.Level, 0, len(f.Levels))
	for _, yl := range f.Levels {
		levels = append(levels, catalog.Level{
			ID:       yl.ID,
			Title:    yl.Title,
			VideoURL: yl.VideoURL,
			ImageURL: yl.ImageURL,
		})
	}
	return levels, nil
}

// MarshalYAML encodes levels in the dataset file format.
func MarshalYAML(levels []catalog.Level) ([]byte, error) {
	f := YAMLFile{Levels: make([]YAMLLevel, len(levels))}
	for i, lvl := range levels {
		f.Levels[i] = YAMLLevel{
			ID:       lvl.ID,
			Title:    lvl.Title,
			VideoURL: lvl.VideoURL,
			ImageURL: lvl.ImageURL,
		}
	}
	return yaml.Marshal(f)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
