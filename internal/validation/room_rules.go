package validation

import (
	"context"
	"errors"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"
)

type RoomCapacity struct{}

func (RoomCapacity) Validate(_ context.Context, r *domain.Room) error {
	if r.Capacity <= 0 {
		return domain.NewValidationError("capacity", "capacity must be greater than 0")
	}
	return nil
}

type RoomByNumberGetter interface {
	GetByNumber(ctx context.Context, number int) (*domain.Room, error)
}

// RoomNumberUnique проверяет номер среди всех комнат, включая неактивные.
// Сама комната (тот же ID) конфликтом не считается.
type RoomNumberUnique struct {
	Rooms RoomByNumberGetter
}

func (v RoomNumberUnique) Validate(ctx context.Context, r *domain.Room) error {
	other, err := v.Rooms.GetByNumber(ctx, r.Number)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if r.ID == 0 || other.ID != r.ID {
		return domain.NewValidationError("number", "a room with this number already exists")
	}
	return nil
}
