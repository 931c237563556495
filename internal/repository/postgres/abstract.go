package postgres

import (
	"context"
	"errors"

	"github.com/cwrk-planet/classroom-scheduler/internal/repository"

	"github.com/jackc/pgx/v5"
	pgconn "github.com/jackc/pgx/v5/pgconn"
)

/*
абстрактный слой над *pgxpool.Pool / pgx.Tx
чтобы одни и те же репозитории работали и в транзакции, и вне её
*/
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// NewRepositories собирает все репозитории поверх одного querier (пул или транзакция).
func NewRepositories(q querier) repository.Repositories {
	return repository.Repositories{
		Rooms:        &RoomRepo{q: q},
		Users:        &UserRepo{q: q},
		Reservations: &ReservationRepo{q: q},
	}
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return repository.ErrAlreadyExists
		case "23503": // foreign_key_violation
			return repository.ErrConflict
		case "23514": // check_violation
			return repository.ErrInvalidInput
		}
	}

	return err
}

func notFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return mapPgError(err)
}
