//go:build sqlite

package store

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists layer snapshots to a single-file SQLite
// database via the pure-Go modernc.org/sqlite driver.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func newSQLiteStore(path string) (Store, error) {
	return NewSQLiteStore(path), nil
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) SaveLayer(ctx context.Context, record LayerRecord) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO layers (id, schema_version, num_cells, snapshot, updated_at_utc)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			schema_version = excluded.schema_version,
			num_cells = excluded.num_cells,
			snapshot = excluded.snapshot,
			updated_at_utc = excluded.updated_at_utc
	`, record.ID, record.SchemaVersion, record.NumCells, record.Snapshot, record.UpdatedAtUTC)
	return err
}

func (s *SQLiteStore) GetLayer(ctx context.Context, id string) (LayerRecord, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return LayerRecord{}, false, err
	}
	var record LayerRecord
	row := db.QueryRowContext(ctx, `
		SELECT id, schema_version, num_cells, snapshot, updated_at_utc
		FROM layers WHERE id = ?
	`, id)
	if err := row.Scan(&record.ID, &record.SchemaVersion, &record.NumCells, &record.Snapshot, &record.UpdatedAtUTC); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LayerRecord{}, false, nil
		}
		return LayerRecord{}, false, err
	}
	return record, true, nil
}

func (s *SQLiteStore) DeleteLayer(ctx context.Context, id string) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `DELETE FROM layers WHERE id = ?`, id)
	return err
}

func (s *SQLiteStore) ListLayerIDs(ctx context.Context) ([]string, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT id FROM layers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS layers (
			id TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			num_cells INTEGER NOT NULL,
			snapshot BLOB NOT NULL,
			updated_at_utc TEXT NOT NULL
		);
	`)
	return err
}
