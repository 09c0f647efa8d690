package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// KV implements the storage.KV medium on Postgres: one row per slot in a
// kv_store table. Used for hosted deployments where a local data file is
// not durable. The blob layout inside each value is identical to the
// file medium's.
type KV struct {
	pool *pgxpool.Pool
}

// NewKV creates the Postgres KV medium, creating the kv_store table if
// it does not exist.
func NewKV(ctx context.Context, pool *pgxpool.Pool) (*KV, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create kv_store table: %w", err)
	}
	return &KV{pool: pool}, nil
}

// Get returns the stored value for key. Query failures degrade to
// absence, matching the medium contract.
func (k *KV) Get(key string) ([]byte, bool) {
	var value []byte
	err := k.pool.QueryRow(context.Background(),
		`SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			log.Warn().Err(err).Str("key", key).Msg("KV read failed, treating as empty")
		}
		return nil, false
	}
	return value, true
}

// Put upserts the value for key. Last write wins.
func (k *KV) Put(key string, value []byte) error {
	_, err := k.pool.Exec(context.Background(), `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
