package domain

import "time"

type ReservationStatus string

const (
	ReservationScheduled ReservationStatus = "SCHEDULED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationCompleted ReservationStatus = "COMPLETED"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationScheduled, ReservationCancelled, ReservationCompleted:
		return true
	default:
		return false
	}
}

type Reservation struct {
	ID        int64
	StartAt   time.Time
	EndAt     time.Time
	UserID    int64
	RoomID    int64
	Status    ReservationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReservation(userID, roomID int64, startAt, endAt, now time.Time) *Reservation {
	return &Reservation{
		StartAt:   startAt.UTC(),
		EndAt:     endAt.UTC(),
		UserID:    userID,
		RoomID:    roomID,
		Status:    ReservationScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Cancel допустим только для запланированной брони.
func (r *Reservation) Cancel(now time.Time) error {
	if r.Status != ReservationScheduled {
		return NewValidationError("status", "only scheduled reservations can be cancelled")
	}
	r.Status = ReservationCancelled
	r.UpdatedAt = now
	return nil
}

// ReservationView: бронь вместе с именем пользователя и номером комнаты.
type ReservationView struct {
	Reservation
	UserName   string
	RoomNumber int
}
