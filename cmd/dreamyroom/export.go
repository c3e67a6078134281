package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dreamyroom-guide/internal/levels/formats"
	"github.com/vovakirdan/dreamyroom-guide/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the dataset to SQLite or YAML",
	Long: `Write the loaded dataset to a file. The format follows the extension:
.db, .sqlite and .sqlite3 write a SQLite catalog (replacing its levels),
.yaml and .yml write a dataset file. Both can be read back with --data.

Examples:
  dreamyroom export ~/.dreamyroom/catalog.db
  dreamyroom export levels.yaml --data ./more-levels/`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func runExport(_ *cobra.Command, args []string) {
	a := loadApp()

	path, err := homedir.Expand(args[0])
	if err != nil {
		logger.Fatal("cannot expand path", "path", args[0], "error", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".db", ".sqlite", ".sqlite3":
		store, err := storage.Open(path)
		if err != nil {
			logger.Fatal("cannot open catalog", "path", path, "error", err)
		}
		defer store.Close()

		if err := store.ReplaceLevels(a.levels); err != nil {
			logger.Fatal("export failed", "path", path, "error", err)
		}

	case ".yaml", ".yml":
		data, err := formats.MarshalYAML(a.levels)
		if err != nil {
			logger.Fatal("export failed", "error", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			logger.Fatal("export failed", "path", path, "error", err)
		}

	default:
		logger.Fatal("unsupported export format", "ext", ext)
	}

	logger.Info("dataset exported", "path", path, "levels", len(a.levels))
}
