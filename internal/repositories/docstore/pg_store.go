package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
)

// BaseRepository provides transaction helpers over a pgx pool
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. Rolling back a finished transaction is a no-op.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// PgStore keeps each dataset as a JSONB row in the documents table.
// The in-process key lock orders writers within one replica; the row lock
// taken by SELECT ... FOR UPDATE orders them across replicas.
type PgStore struct {
	BaseRepository
	locks KeyedMutex
}

// NewPgStore creates a document store backed by PostgreSQL.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{BaseRepository: BaseRepository{Pool: pool}}
}

var _ Store = (*PgStore)(nil)

func (s *PgStore) Get(ctx context.Context, key string) ([]byte, error) {
	var body []byte
	err := s.Pool.QueryRow(ctx, `SELECT body FROM documents WHERE key = $1`, key).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read document %s: %w", key, err)
	}
	return body, nil
}

func (s *PgStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	unlock := s.locks.Lock(key)
	defer unlock()

	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO documents (key, body) VALUES ($1, '[]'::jsonb) ON CONFLICT (key) DO NOTHING`, key); err != nil {
		return fmt.Errorf("failed to initialise document %s: %w", key, err)
	}

	var current []byte
	if err := tx.QueryRow(ctx, `SELECT body FROM documents WHERE key = $1 FOR UPDATE`, key).Scan(&current); err != nil {
		return fmt.Errorf("failed to lock document %s: %w", key, err)
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE documents SET body = $2::jsonb, updated_at = now() WHERE key = $1`, key, string(next)); err != nil {
		return fmt.Errorf("failed to write document %s: %w", key, err)
	}
	return s.Commit(ctx, tx)
}
