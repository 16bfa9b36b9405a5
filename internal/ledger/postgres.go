package ledger

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// createTableSQL matches migrations/001_init.up.sql; EnsureSchema keeps
// ad-hoc runs working against a database that was never migrated.
const createTableSQL = `
CREATE TABLE IF NOT EXISTS file_hashes (
	id         BIGSERIAL PRIMARY KEY,
	path       TEXT NOT NULL,
	hash_value TEXT NOT NULL,
	algorithm  TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresLedger persists digest records to PostgreSQL.
// It implements the Ledger interface.
type PostgresLedger struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgresLedger creates a PostgresLedger backed by the given connection pool.
func NewPostgresLedger(pool *pgxpool.Pool, logger *zap.Logger) *PostgresLedger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresLedger{pool: pool, logger: logger}
}

// EnsureSchema creates the file_hashes table if it does not exist.
func (l *PostgresLedger) EnsureSchema(ctx context.Context) error {
	if _, err := l.pool.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("%w: create schema: %v", ErrStore, err)
	}
	return nil
}

// Record implements Ledger. The insert runs in its own transaction; on any
// failure the transaction is rolled back and no row is left behind.
func (l *PostgresLedger) Record(ctx context.Context, path, hashValue, algorithm string) (*Record, error) {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: begin tx: %v", ErrStore, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	rec := &Record{Path: path, HashValue: hashValue, Algorithm: algorithm}
	if err := tx.QueryRow(ctx,
		`INSERT INTO file_hashes (path, hash_value, algorithm)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		path, hashValue, algorithm,
	).Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: insert record: %v", ErrStore, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", ErrStore, err)
	}

	l.logger.Debug("digest recorded",
		zap.Int64("id", rec.ID),
		zap.String("path", rec.Path),
		zap.String("algorithm", rec.Algorithm),
	)
	return rec, nil
}

// List implements Ledger.
func (l *PostgresLedger) List(ctx context.Context) ([]*Record, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT id, path, hash_value, algorithm, created_at
		 FROM file_hashes ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query records: %v", ErrStore, err)
	}
	defer rows.Close()

	records := []*Record{}
	for rows.Next() {
		rec := &Record{}
		if err := rows.Scan(&rec.ID, &rec.Path, &rec.HashValue, &rec.Algorithm, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan record: %v", ErrStore, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read records: %v", ErrStore, err)
	}
	return records, nil
}
