package postgres

import (
	"context"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository/queries"
)

type RoomRepo struct {
	q querier
}

func (r *RoomRepo) Create(ctx context.Context, room *domain.Room) (int64, error) {
	var id int64
	err := r.q.QueryRow(
		ctx,
		queries.QueryCreateRoom,
		room.Number,
		room.Capacity,
		room.Active,
		room.CreatedAt,
		room.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err)
	}

	return id, nil
}

func (r *RoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return r.getOne(ctx, queries.QueryGetRoomByID, id)
}

func (r *RoomRepo) GetByNumber(ctx context.Context, number int) (*domain.Room, error) {
	return r.getOne(ctx, queries.QueryGetRoomByNumber, number)
}

func (r *RoomRepo) ListActive(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.q.Query(ctx, queries.QueryListActiveRooms)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	out := make([]domain.Room, 0, 16)
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.Number, &rm.Capacity, &rm.Active, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}

	return out, rows.Err()
}

func (r *RoomRepo) Update(ctx context.Context, room *domain.Room) error {
	tag, err := r.q.Exec(ctx, queries.QueryUpdateRoom, room.ID, room.Number, room.Capacity, room.Active, room.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *RoomRepo) getOne(ctx context.Context, sql string, arg any) (*domain.Room, error) {
	var rm domain.Room
	err := r.q.QueryRow(ctx, sql, arg).
		Scan(&rm.ID, &rm.Number, &rm.Capacity, &rm.Active, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return nil, notFoundOr(err)
	}

	return &rm, nil
}
