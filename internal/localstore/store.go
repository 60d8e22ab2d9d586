// Package localstore persists extraction results in a local SQLite file for
// offline batch runs, when no Postgres instance is around.
package localstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/camille-renard/nutrition-insights/internal/repository"
)

// Store writes insight rows into a SQLite database. It satisfies the
// pipeline's InsightWriter.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the
// insights table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open result store: %w", err)
	}

	const ddl = `CREATE TABLE IF NOT EXISTS insights (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		barcode      TEXT NOT NULL,
		type         TEXT NOT NULL,
		data         TEXT NOT NULL,
		version      TEXT NOT NULL,
		source_image TEXT NOT NULL DEFAULT '',
		created_at   INTEGER NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create insights table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// BatchInsert stores the rows in one transaction.
func (s *Store) BatchInsert(ctx context.Context, inserts []repository.NewInsight) (int, error) {
	if len(inserts) == 0 {
		return 0, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert: %w", err)
	}
	defer tx.Rollback()

	const q = `INSERT INTO insights (barcode, type, data, version, source_image, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	now := time.Now().Unix()
	for _, in := range inserts {
		if _, err := tx.ExecContext(ctx, q, in.Barcode, string(in.Type), string(in.Data), in.Version, in.SourceImage, now); err != nil {
			return 0, fmt.Errorf("insert insight for %s: %w", in.Barcode, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert: %w", err)
	}
	return len(inserts), nil
}

// Count reports the number of stored rows, optionally filtered by type.
func (s *Store) Count(ctx context.Context, insightType string) (int, error) {
	var (
		n   int
		err error
	)
	if insightType == "" {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM insights`).Scan(&n)
	} else {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM insights WHERE type = ?`, insightType).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("count insights: %w", err)
	}
	return n, nil
}
