// Package storage provides a SQLite-backed level catalog.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/dreamyroom-guide/internal/catalog"
)

// Store manages the SQLite database connection for a level catalog.
type Store struct {
	db *sql.DB
}

// Info describes the catalog stored in a database.
type Info struct {
	Levels     int
	ExportedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := homedir.Expand(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			position INTEGER PRIMARY KEY,
			id INTEGER NOT NULL UNIQUE,
			title TEXT NOT NULL,
			video_url TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS exports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_count INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ReplaceLevels swaps the stored catalog for levels in a single
// transaction. Dataset order is kept in the position column.
func (s *Store) ReplaceLevels(levels []catalog.Level) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM levels"); err != nil {
		return fmt.Errorf("storage: cannot clear levels: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO levels (position, id, title, video_url, image_url) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, lvl := range levels {
		if _, err := stmt.Exec(i, lvl.ID, lvl.Title, lvl.VideoURL, lvl.ImageURL); err != nil {
			return fmt.Errorf("storage: cannot save level %d: %w", lvl.ID, err)
		}
	}

	if _, err := tx.Exec("INSERT INTO exports (level_count) VALUES (?)", len(levels)); err != nil {
		return fmt.Errorf("storage: cannot record export: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit levels: %w", err)
	}
	return nil
}

// Levels returns the stored catalog in dataset order.
func (s *Store) Levels() ([]catalog.Level, error) {
	rows, err := s.db.Query(
		`SELECT id, title, video_url, image_url
		 FROM levels
		 ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var levels []catalog.Level
	for rows.Next() {
		var lvl catalog.Level
		if err := rows.Scan(&lvl.ID, &lvl.Title, &lvl.VideoURL, &lvl.ImageURL); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		levels = append(levels, lvl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return levels, nil
}

// Level returns a single stored level.
// Returns nil if no level has that ID.
func (s *Store) Level(id int) (*catalog.Level, error) {
	var lvl catalog.Level
	err := s.db.QueryRow(
		"SELECT id, title, video_url, image_url FROM levels WHERE id = ?",
		id,
	).Scan(&lvl.ID, &lvl.Title, &lvl.VideoURL, &lvl.ImageURL)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level: %w", err)
	}
	return &lvl, nil
}

// Info returns the level count and the time of the last export.
func (s *Store) Info() (Info, error) {
	var info Info
	if err := s.db.QueryRow("SELECT COUNT(*) FROM levels").Scan(&info.Levels); err != nil {
		return info, fmt.Errorf("storage: cannot count levels: %w", err)
	}

	var createdAt any
	err := s.db.QueryRow(
		"SELECT created_at FROM exports ORDER BY id DESC LIMIT 1",
	).Scan(&createdAt)
	if err != nil && err != sql.ErrNoRows {
		return info, fmt.Errorf("storage: cannot query last export: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		info.ExportedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			info.ExportedAt = parsed
		}
	}

	return info, nil
}
