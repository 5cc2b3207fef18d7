// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index maintains a SQLite lookup index of asset names so named
// images can be located across catalogs without re-walking them.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/carver/internal/inspect"
	"github.com/pdiddy/carver/pkg/types"
)

const dbFile = "carver.db"

// Store manages the asset lookup SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the index database at indexDir/carver.db,
// creating the schema if it does not exist.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS catalogs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL UNIQUE,
			indexed_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS assets (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			catalog_id INTEGER NOT NULL REFERENCES catalogs(id) ON DELETE CASCADE,
			group_name TEXT NOT NULL,
			full_name TEXT NOT NULL,
			file_name TEXT NOT NULL,
			kind TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_assets_file_name ON assets(file_name)`,
		`CREATE INDEX IF NOT EXISTS idx_assets_group_name ON assets(group_name)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Ingest records every asset of c under catalogPath, replacing any previous
// index entries for that catalog. It returns the number of assets indexed.
func (s *Store) Ingest(ctx context.Context, catalogPath string, c types.Catalog) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalogs WHERE path = ?`, catalogPath); err != nil {
		return 0, fmt.Errorf("clearing previous entries: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO catalogs (path, indexed_at) VALUES (?, ?)`,
		catalogPath, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("inserting catalog: %w", err)
	}
	catalogID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("catalog id: %w", err)
	}

	count := 0
	for _, group := range c.AssetGroups() {
		for _, asset := range group.Assets {
			fileName := asset.FullName
			if i := strings.LastIndex(fileName, "/"); i >= 0 {
				fileName = fileName[i+1:]
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO assets (catalog_id, group_name, full_name, file_name, kind)
				 VALUES (?, ?, ?, ?, ?)`,
				catalogID, group.Name, asset.FullName, fileName, inspect.Kind(asset.Rendition))
			if err != nil {
				return 0, fmt.Errorf("inserting asset %q: %w", asset.FullName, err)
			}
			count++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return count, nil
}

// Entry is one lookup result.
type Entry struct {
	Catalog  string
	Group    string
	FullName string
	FileName string
	Kind     string
}

// Find returns index entries whose file name matches pattern. '*' acts as a
// wildcard; a pattern without wildcards matches as a substring.
func (s *Store) Find(ctx context.Context, pattern string) ([]Entry, error) {
	like := strings.ReplaceAll(pattern, "*", "%")
	if !strings.Contains(pattern, "*") {
		like = "%" + like + "%"
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT c.path, a.group_name, a.full_name, a.file_name, a.kind
		 FROM assets a JOIN catalogs c ON c.id = a.catalog_id
		 WHERE a.file_name LIKE ?
		 ORDER BY c.path, a.group_name, a.file_name
		 LIMIT ?`,
		like, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Catalog, &e.Group, &e.FullName, &e.FileName, &e.Kind); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return entries, nil
}
