package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultDocumentKey is the fixed key the roster document lives under
const DefaultDocumentKey = "team-roster-data"

// PostgresBackend keeps the document as a single JSONB row keyed by a fixed
// string. The row is rewritten wholesale on every persist.
type PostgresBackend struct {
	pool *pgxpool.Pool
	key  string
}

// NewPostgresBackend creates a backend over the given pool. An empty key
// falls back to DefaultDocumentKey.
func NewPostgresBackend(pool *pgxpool.Pool, key string) *PostgresBackend {
	if key == "" {
		key = DefaultDocumentKey
	}
	return &PostgresBackend{pool: pool, key: key}
}

// EnsureSchema creates the document table if it does not exist
func (b *PostgresBackend) EnsureSchema(ctx context.Context) error {
	_, err := b.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS roster_documents (
			key TEXT PRIMARY KEY,
			doc JSONB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure roster_documents table: %w", err)
	}
	return nil
}

// Load reads the document row
func (b *PostgresBackend) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := b.pool.QueryRow(ctx,
		`SELECT doc FROM roster_documents WHERE key = $1`, b.key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("failed to load document %s: %w", b.key, err)
	}
	return data, nil
}

// Persist upserts the document row
func (b *PostgresBackend) Persist(ctx context.Context, data []byte) error {
	_, err := b.pool.Exec(ctx, `
		INSERT INTO roster_documents (key, doc) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc`,
		b.key, data)
	if err != nil {
		return fmt.Errorf("failed to persist document %s: %w", b.key, err)
	}
	return nil
}
