// Package postgres backs the CollectionStore with a single JSONB
// table, keeping the whole-collection read/replace contract while
// letting a real database stand behind it.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goquantum/booking/internal/core/domain"
)

// Store implements ports.CollectionStore over a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a new Store and verifies the connection.
func New(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	cfg.MaxConns = 10

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Load returns the collection blob for a key.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM collections WHERE key = $1`, key,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save upserts the collection blob for a key.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO collections (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = now()
	`, key, data)
	return err
}

// Close releases pool resources.
func (s *Store) Close() {
	s.pool.Close()
}
