package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/report"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"
	"github.com/cwrk-planet/classroom-scheduler/internal/validation"
)

// верхняя граница строк в одной выгрузке
const maxExportRows = 10000

type ReservationService struct {
	reservations repository.ReservationRepository
	tx           repository.Transactor
	events       Notifier
	now          func() time.Time
}

func NewReservationService(reservations repository.ReservationRepository, tx repository.Transactor, events Notifier, now func() time.Time) *ReservationService {
	if now == nil {
		now = time.Now
	}
	return &ReservationService{
		reservations: reservations,
		tx:           tx,
		events:       notifierOrNop(events),
		now:          now,
	}
}

// Create бронирует комнату (по номеру) для пользователя (по имени).
// Пересечения интервалов не проверяются.
func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (*ReservationDTO, error) {
	var view *domain.ReservationView
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		user, err := repos.Users.GetByName(ctx, in.UserName)
		if err != nil {
			return notFound(err, domain.ErrUserNotFound)
		}
		room, err := repos.Rooms.GetByNumber(ctx, in.RoomNumber)
		if err != nil {
			return notFound(err, domain.ErrRoomNotFound)
		}

		res := domain.NewReservation(user.ID, room.ID, in.StartAt, in.EndAt, s.now())
		if err := validation.Run(ctx, res,
			validation.ReservationWindow{},
			validation.ReservationRoomActive{Rooms: repos.Rooms},
		); err != nil {
			return err
		}

		id, err := repos.Reservations.Create(ctx, res)
		if err != nil {
			return fmt.Errorf("reservations.Create: %w", reservationStoreErr(err))
		}
		res.ID = id

		view = &domain.ReservationView{Reservation: *res, UserName: user.Name, RoomNumber: room.Number}
		return nil
	})
	if err != nil {
		logFailure(ctx, "reservation.create", err)
		return nil, err
	}

	out := toReservationDTO(view)
	s.events.Publish(Event{Topic: TopicReservations, Type: EventReservationCreated, Payload: out})
	return &out, nil
}

func (s *ReservationService) Get(ctx context.Context, id int64) (*ReservationDTO, error) {
	view, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		err = notFound(err, domain.ErrReservationNotFound)
		logFailure(ctx, "reservation.get", err)
		return nil, err
	}

	out := toReservationDTO(view)
	return &out, nil
}

func (s *ReservationService) List(ctx context.Context, f ReservationFilter) (*ReservationPage, error) {
	views, next, err := s.reservations.List(ctx, repository.ReservationFilter{
		RoomNumber: f.RoomNumber,
		UserName:   f.UserName,
		Limit:      f.Limit,
		Cursor:     f.Cursor,
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCursor) {
			err = domain.NewValidationError("cursor", "invalid cursor")
		}
		logFailure(ctx, "reservation.list", err)
		return nil, err
	}

	page := &ReservationPage{Items: make([]ReservationDTO, 0, len(views)), NextCursor: next}
	for i := range views {
		page.Items = append(page.Items, toReservationDTO(&views[i]))
	}
	return page, nil
}

// Cancel переводит бронь в CANCELLED; из других статусов ValidationError.
func (s *ReservationService) Cancel(ctx context.Context, id int64) (*ReservationDTO, error) {
	var view *domain.ReservationView
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		view, err = repos.Reservations.GetByID(ctx, id)
		if err != nil {
			return notFound(err, domain.ErrReservationNotFound)
		}

		now := s.now()
		if err := view.Cancel(now); err != nil {
			return err
		}
		if err := repos.Reservations.UpdateStatus(ctx, id, view.Status, now); err != nil {
			return fmt.Errorf("reservations.UpdateStatus: %w", reservationStoreErr(err))
		}
		return nil
	})
	if err != nil {
		logFailure(ctx, "reservation.cancel", err)
		return nil, err
	}

	out := toReservationDTO(view)
	s.events.Publish(Event{Topic: TopicReservations, Type: EventReservationCancelled, Payload: out})
	return &out, nil
}

// Export собирает все страницы под фильтром и отдаёт xlsx.
func (s *ReservationService) Export(ctx context.Context, f ReservationFilter) ([]byte, error) {
	f.Limit = repository.MaxPageLimit
	f.Cursor = ""

	rows := make([]report.ReservationRow, 0, repository.MaxPageLimit)
	for {
		page, err := s.List(ctx, f)
		if err != nil {
			return nil, err
		}
		for _, it := range page.Items {
			rows = append(rows, report.ReservationRow{
				ID:         it.ID,
				RoomNumber: it.RoomNumber,
				UserName:   it.UserName,
				StartAt:    it.StartAt,
				EndAt:      it.EndAt,
				Status:     string(it.Status),
			})
		}
		if page.NextCursor == "" || len(rows) >= maxExportRows {
			break
		}
		f.Cursor = page.NextCursor
	}

	data, err := report.ReservationsXLSX(rows)
	if err != nil {
		logFailure(ctx, "reservation.export", err)
		return nil, fmt.Errorf("build xlsx: %w", err)
	}
	return data, nil
}

func reservationStoreErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrInvalidInput):
		return domain.NewValidationError("end_at", "end time must be after start time")
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("reservation references a missing user or room: %w", domain.ErrConflict)
	default:
		return notFound(err, domain.ErrReservationNotFound)
	}
}
