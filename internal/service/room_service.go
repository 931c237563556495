package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"
	"github.com/cwrk-planet/classroom-scheduler/internal/validation"
)

const RoomDeletedMessage = "room deleted successfully"

type RoomService struct {
	rooms  repository.RoomRepository
	tx     repository.Transactor
	events Notifier
	now    func() time.Time
}

func NewRoomService(rooms repository.RoomRepository, tx repository.Transactor, events Notifier, now func() time.Time) *RoomService {
	if now == nil {
		now = time.Now
	}
	return &RoomService{
		rooms:  rooms,
		tx:     tx,
		events: notifierOrNop(events),
		now:    now,
	}
}

// Create проверяет [вместимость, уникальность номера] и сохраняет комнату.
func (s *RoomService) Create(ctx context.Context, in CreateRoomInput) (*RoomDTO, error) {
	room := domain.NewRoom(in.Number, in.Capacity, s.now())

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := validation.Run(ctx, room,
			validation.RoomCapacity{},
			validation.RoomNumberUnique{Rooms: repos.Rooms},
		); err != nil {
			return err
		}

		id, err := repos.Rooms.Create(ctx, room)
		if err != nil {
			return fmt.Errorf("rooms.Create: %w", roomStoreErr(err))
		}
		room.ID = id
		return nil
	})
	if err != nil {
		logFailure(ctx, "room.create", err)
		return nil, err
	}

	out := toRoomDTO(room)
	s.events.Publish(Event{Topic: TopicRooms, Type: EventRoomCreated, Payload: out})
	return &out, nil
}

// GetByNumber не фильтрует по active: мягко удалённая комната тоже находится.
func (s *RoomService) GetByNumber(ctx context.Context, number int) (*RoomDTO, error) {
	room, err := s.rooms.GetByNumber(ctx, number)
	if err != nil {
		err = notFound(err, domain.ErrRoomNotFound)
		logFailure(ctx, "room.getByNumber", err)
		return nil, err
	}

	out := toRoomDTO(room)
	return &out, nil
}

func (s *RoomService) ListActive(ctx context.Context) ([]RoomDTO, error) {
	rooms, err := s.rooms.ListActive(ctx)
	if err != nil {
		logFailure(ctx, "room.listActive", err)
		return nil, fmt.Errorf("rooms.ListActive: %w", err)
	}

	out := make([]RoomDTO, 0, len(rooms))
	for i := range rooms {
		out = append(out, toRoomDTO(&rooms[i]))
	}
	return out, nil
}

// SoftDelete снимает флаг active и явно сохраняет изменение.
func (s *RoomService) SoftDelete(ctx context.Context, id int64) (string, error) {
	var room *domain.Room
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		room, err = repos.Rooms.GetByID(ctx, id)
		if err != nil {
			return notFound(err, domain.ErrRoomNotFound)
		}

		room.Deactivate(s.now())
		if err := repos.Rooms.Update(ctx, room); err != nil {
			return fmt.Errorf("rooms.Update: %w", notFound(err, domain.ErrRoomNotFound))
		}
		return nil
	})
	if err != nil {
		logFailure(ctx, "room.softDelete", err)
		return "", err
	}

	s.events.Publish(Event{Topic: TopicRooms, Type: EventRoomDeleted, Payload: toRoomDTO(room)})
	return RoomDeletedMessage, nil
}

// Edit обновляет только переданные поля; каждое проверяется, если задано.
func (s *RoomService) Edit(ctx context.Context, in EditRoomInput) (*RoomDTO, error) {
	var room *domain.Room
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		room, err = repos.Rooms.GetByID(ctx, in.ID)
		if err != nil {
			return notFound(err, domain.ErrRoomNotFound)
		}

		now := s.now()
		rules := make([]validation.Rule[domain.Room], 0, 2)
		if in.Number != nil {
			room.SetNumber(*in.Number, now)
			rules = append(rules, validation.RoomNumberUnique{Rooms: repos.Rooms})
		}
		if in.Capacity != nil {
			room.SetCapacity(*in.Capacity, now)
			rules = append(rules, validation.RoomCapacity{})
		}
		if len(rules) == 0 {
			return nil
		}
		if err := validation.Run(ctx, room, rules...); err != nil {
			return err
		}

		if err := repos.Rooms.Update(ctx, room); err != nil {
			return fmt.Errorf("rooms.Update: %w", roomStoreErr(err))
		}
		return nil
	})
	if err != nil {
		logFailure(ctx, "room.edit", err)
		return nil, err
	}

	out := toRoomDTO(room)
	s.events.Publish(Event{Topic: TopicRooms, Type: EventRoomUpdated, Payload: out})
	return &out, nil
}

// roomStoreErr: ограничения БД, сработавшие в обход правил (гонка двух запросов).
func roomStoreErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrAlreadyExists):
		return domain.NewValidationError("number", "a room with this number already exists")
	case errors.Is(err, repository.ErrInvalidInput):
		return domain.NewValidationError("capacity", "capacity must be greater than 0")
	default:
		return notFound(err, domain.ErrRoomNotFound)
	}
}
