package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cwrk-planet/classroom-scheduler/internal/pg"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

type Store struct {
	pool  *pgxpool.Pool
	repos repository.Repositories
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:  pool,
		repos: NewRepositories(pool),
	}
}

func (s *Store) Repositories() repository.Repositories {
	return s.repos
}

// WithinTx открывает транзакцию и отдаёт в fn репозитории, привязанные к ней.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	// после Commit откат вернёт ErrTxClosed, его игнорируем
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, NewRepositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return mapPgError(err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return pg.Ping(ctx, s.pool)
}

func (s *Store) Close() {
	s.pool.Close()
}

// Migrate применяет встроенную схему; все выражения идемпотентны.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
