package postgres

import (
	"context"
	"strings"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository/queries"
)

type UserRepo struct {
	q querier
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) (int64, error) {
	var id int64
	err := r.q.QueryRow(
		ctx,
		queries.QueryCreateUser,
		u.Name,
		u.Email,
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}

	return id, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, queries.QueryGetUserByID, id)
}

func (r *UserRepo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	return r.getOne(ctx, queries.QueryGetUserByName, strings.TrimSpace(name))
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, queries.QueryGetUserByEmail, domain.NormalizeEmail(email))
}

func (r *UserRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, queries.QueryExistsUserByName, strings.TrimSpace(name))
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, queries.QueryExistsUserByEmail, domain.NormalizeEmail(email))
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.Query(ctx, queries.QueryListUsers)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	out := make([]domain.User, 0, 16)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}

	return out, rows.Err()
}

func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	tag, err := r.q.Exec(ctx, queries.QueryUpdateUser, u.ID, u.Name, u.Email, u.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, queries.QueryDeleteUser, id)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *UserRepo) getOne(ctx context.Context, sql string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.q.QueryRow(ctx, sql, arg).Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, notFoundOr(err)
	}

	return &u, nil
}

func (r *UserRepo) exists(ctx context.Context, sql string, arg any) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, sql, arg).Scan(&ok); err != nil {
		return false, mapPgError(err)
	}

	return ok, nil
}
