// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/Kpacaychuk/type-quiz-bot/db"
	"github.com/Kpacaychuk/type-quiz-bot/models"
)

// SQLStore keeps the state document in the state_document table of a
// SQLite or PostgreSQL database.
type SQLStore struct {
	db       *sql.DB
	postgres bool
}

// OpenSQLite opens (or creates) a SQLite database through modernc.org/sqlite
func OpenSQLite(ctx context.Context, dsn string) (*SQLStore, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY
	conn.SetMaxOpenConns(1)
	return newSQLStore(ctx, conn, false)
}

// OpenPostgres connects to PostgreSQL through lib/pq
func OpenPostgres(ctx context.Context, url string) (*SQLStore, error) {
	conn, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	return newSQLStore(ctx, conn, true)
}

func newSQLStore(ctx context.Context, conn *sql.DB, postgres bool) (*SQLStore, error) {
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	if err := db.CreateSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}
	return &SQLStore{db: conn, postgres: postgres}, nil
}

// bind rewrites ? placeholders to $n for PostgreSQL
func (s *SQLStore) bind(query string) string {
	if !s.postgres {
		return query
	}
	out := make([]byte, 0, len(query)+8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			out = append(out, fmt.Sprintf("$%d", n)...)
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}

func (s *SQLStore) Load(ctx context.Context) (*models.State, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, s.bind(`
		SELECT payload FROM state_document WHERE key = ?
	`), db.StateKey).Scan(&payload)

	if errors.Is(err, sql.ErrNoRows) {
		return models.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	return decodeState([]byte(payload))
}

func (s *SQLStore) Save(ctx context.Context, state *models.State) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, s.bind(`
		INSERT INTO state_document (key, payload, version, updated_at)
		VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			payload = excluded.payload,
			version = state_document.version + 1,
			updated_at = CURRENT_TIMESTAMP
	`), db.StateKey, string(data))

	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// Version returns how many times the state document has been written
func (s *SQLStore) Version(ctx context.Context) (int, error) {
	var version int
	err := s.db.QueryRowContext(ctx, s.bind(`
		SELECT version FROM state_document WHERE key = ?
	`), db.StateKey).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return version, err
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
