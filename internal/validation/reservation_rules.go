package validation

import (
	"context"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
)

type ReservationWindow struct{}

func (ReservationWindow) Validate(_ context.Context, r *domain.Reservation) error {
	if r.StartAt.IsZero() {
		return domain.NewValidationError("start_at", "start time is required")
	}
	if r.EndAt.IsZero() {
		return domain.NewValidationError("end_at", "end time is required")
	}
	if !r.StartAt.Before(r.EndAt) {
		return domain.NewValidationError("end_at", "end time must be after start time")
	}
	return nil
}

type RoomByIDGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// ReservationRoomActive запрещает бронировать мягко удалённую комнату.
type ReservationRoomActive struct {
	Rooms RoomByIDGetter
}

func (v ReservationRoomActive) Validate(ctx context.Context, r *domain.Reservation) error {
	room, err := v.Rooms.GetByID(ctx, r.RoomID)
	if err != nil {
		return err
	}
	if !room.Active {
		return domain.NewValidationError("room_number", "room is not active")
	}
	return nil
}
