package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on a kv_entries table.
// Used when balances must survive across hosts, not just restarts.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects a pool and verifies the connection.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, &StoreError{Code: codeInvalid, Message: "database URL is required for postgres kv provider"}
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Get retrieves the value stored at key.
func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	query := `
		SELECT value
		FROM kv_entries
		WHERE key = $1
	`

	var value string
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("select kv entry: %w", err)
	}

	return value, nil
}

// Set stores value at key, overwriting any previous value.
func (s *PostgresStore) Set(ctx context.Context, key string, value string) error {
	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("upsert kv entry: %w", err)
	}
	return nil
}

// Delete removes the value at key (idempotent).
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_entries WHERE key = $1`

	if _, err := s.pool.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("delete kv entry: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
