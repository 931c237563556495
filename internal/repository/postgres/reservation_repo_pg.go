package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository/queries"

	"github.com/jackc/pgx/v5"
)

type ReservationRepo struct {
	q querier
}

func (r *ReservationRepo) Create(ctx context.Context, res *domain.Reservation) (int64, error) {
	var id int64
	err := r.q.QueryRow(
		ctx,
		queries.QueryCreateReservation,
		res.StartAt,
		res.EndAt,
		res.UserID,
		res.RoomID,
		string(res.Status),
		res.CreatedAt,
		res.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}

	return id, nil
}

func (r *ReservationRepo) GetByID(ctx context.Context, id int64) (*domain.ReservationView, error) {
	row := r.q.QueryRow(ctx, queries.QuerySelectReservationView+" WHERE r.id = $1;", id)
	v, err := scanView(row)
	if err != nil {
		return nil, notFoundOr(err)
	}

	return v, nil
}

func (r *ReservationRepo) List(ctx context.Context, f repository.ReservationFilter) ([]domain.ReservationView, string, error) {
	limit := repository.ClampLimit(f.Limit)
	cur, err := repository.DecodeCursor(f.Cursor)
	if err != nil {
		return nil, "", err
	}

	where := make([]string, 0, 3)
	args := make([]any, 0, 5)
	i := 1

	if f.RoomNumber != nil {
		where = append(where, "rm.number = $"+strconv.Itoa(i))
		args = append(args, *f.RoomNumber)
		i++
	}
	if name := strings.TrimSpace(f.UserName); name != "" {
		where = append(where, "u.name = $"+strconv.Itoa(i))
		args = append(args, name)
		i++
	}
	if cur != nil {
		where = append(where, "(r.start_at > $"+strconv.Itoa(i)+
			" OR (r.start_at = $"+strconv.Itoa(i)+" AND r.id > $"+strconv.Itoa(i+1)+"))")
		args = append(args, cur.StartAt, cur.ID)
		i += 2
	}

	sql := queries.QuerySelectReservationView
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += " ORDER BY r.start_at ASC, r.id ASC LIMIT $" + strconv.Itoa(i) + ";"
	args = append(args, limit)

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, "", mapPgError(err)
	}
	defer rows.Close()

	out := make([]domain.ReservationView, 0, limit)
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, "", err
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	var next string
	if len(out) == limit {
		last := out[len(out)-1]
		next, _ = repository.EncodeCursor(repository.Cursor{StartAt: last.StartAt, ID: last.ID})
	}

	return out, next, nil
}

func (r *ReservationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, now time.Time) error {
	tag, err := r.q.Exec(ctx, queries.QueryUpdateReservationStatus, id, string(status), now)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func scanView(row pgx.Row) (*domain.ReservationView, error) {
	var (
		v      domain.ReservationView
		status string
	)
	err := row.Scan(
		&v.ID,
		&v.StartAt,
		&v.EndAt,
		&v.UserID,
		&v.RoomID,
		&status,
		&v.CreatedAt,
		&v.UpdatedAt,
		&v.UserName,
		&v.RoomNumber,
	)
	if err != nil {
		return nil, err
	}
	v.Status = domain.ReservationStatus(status)

	return &v, nil
}
