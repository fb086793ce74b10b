package kv

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type SQLite struct {
	path    string
	readDB  *sql.DB
	writeDB *sql.DB
}

func OpenSQLite(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, &OpError{Op: "kv.mkdir", Path: dbPath, Err: err}
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, &OpError{Op: "kv.open", Path: dbPath, Err: err}
	}
	writeDB.SetMaxOpenConns(1)

	s := &SQLite{path: dbPath, writeDB: writeDB}
	// Schema first: a read-only handle cannot create the file.
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		s.Close()
		return nil, &OpError{Op: "kv.open", Path: dbPath, Err: err}
	}
	s.readDB = readDB
	return s, nil
}

func (s *SQLite) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`)
	if err != nil {
		return &OpError{Op: "kv.schema", Path: s.path, Err: err}
	}
	return nil
}

func (s *SQLite) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	return errors.Join(errs...)
}

func (s *SQLite) Get(key string) ([]byte, error) {
	var value string
	err := s.readDB.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &OpError{Op: "kv.get " + key, Path: s.path, Err: err}
	}
	return []byte(value), nil
}

func (s *SQLite) Set(key string, value []byte) error {
	_, err := s.writeDB.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, string(value), time.Now().UTC())
	if err != nil {
		return &OpError{Op: "kv.set " + key, Path: s.path, Err: err}
	}
	return nil
}

// Stats returns the number of stored keys and the database file size.
func (s *SQLite) Stats() (int, int64, error) {
	var count int
	if err := s.readDB.QueryRow("SELECT COUNT(*) FROM kv").Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting keys: %w", err)
	}
	info, err := os.Stat(s.path)
	if err != nil {
		return count, 0, fmt.Errorf("stat %s: %w", s.path, err)
	}
	return count, info.Size(), nil
}

func (s *SQLite) Path() string {
	return s.path
}
