// Package levels loads the walkthrough dataset from the embedded bundle,
// YAML files or a SQLite catalog.
// This package depends on catalog but catalog does not depend on levels.
package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
	"github.com/vovakirdan/dreamyroom-guide/internal/levels/formats"
	"github.com/vovakirdan/dreamyroom-guide/internal/storage"
)

//go:embed data/levels.yaml
var bundledYAML []byte

// ErrEmptyDataset is returned when a source contains no levels.
var ErrEmptyDataset = errors.New("levels: dataset is empty")

// Loader resolves a dataset source. An empty Path means the bundled dataset.
type Loader struct {
	Path string
}

// NewLoader creates a new dataset loader.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Bundled returns the dataset compiled into the binary.
func Bundled() ([]catalog.Level, error) {
	levels, err := formats.ParseYAML(bundledYAML)
	if err != nil {
		return nil, fmt.Errorf("parsing bundled dataset: %w", err)
	}
	return levels, Validate(levels)
}

// Load reads and validates the dataset.
func (l *Loader) Load() ([]catalog.Level, error) {
	if l.Path == "" {
		return Bundled()
	}

	path, err := homedir.Expand(l.Path)
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", l.Path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	var levels []catalog.Level
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case info.IsDir():
		levels, err = l.loadDir(path)
	case isSupportedExtension(ext):
		levels, err = l.LoadFile(path)
	case ext == ".db" || ext == ".sqlite" || ext == ".sqlite3":
		levels, err = loadSQLite(path)
	default:
		return nil, fmt.Errorf("unsupported dataset extension: %s", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(levels); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return levels, nil
}

// Catalog loads the dataset and wraps it in a read-only catalog.
func (l *Loader) Catalog() (*catalog.Catalog, error) {
	levels, err := l.Load()
	if err != nil {
		return nil, err
	}
	return catalog.New(levels), nil
}

// LoadFile loads a single YAML dataset file.
func (l *Loader) LoadFile(path string) ([]catalog.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	levels, err := formats.ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return levels, nil
}

// loadDir merges every YAML file below root. Files carry no order
// relative to each other, so the merged dataset is sorted by ID.
func (l *Loader) loadDir(root string) ([]catalog.Level, error) {
	var levels []catalog.Level

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		fileLevels, err := l.LoadFile(path)
		if err != nil {
			return err
		}

		levels = append(levels, fileLevels...)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	// Sort by ID for determinism
	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

func loadSQLite(path string) ([]catalog.Level, error) {
	store, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.Levels()
}

// Validate checks that IDs are positive and unique and titles are set.
func Validate(levels []catalog.Level) error {
	if len(levels) == 0 {
		return ErrEmptyDataset
	}

	seen := make(map[int]bool, len(levels))
	for i, lvl := range levels {
		if lvl.ID <= 0 {
			return fmt.Errorf("levels: entry %d has non-positive id %d", i, lvl.ID)
		}
		if seen[lvl.ID] {
			return fmt.Errorf("levels: duplicate id %d", lvl.ID)
		}
		if strings.TrimSpace(lvl.Title) == "" {
			return fmt.Errorf("levels: level %d has no title", lvl.ID)
		}
		seen[lvl.ID] = true
	}
	return nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}
