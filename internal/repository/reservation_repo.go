package repository

import (
	"context"
	"time"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
)

type ReservationFilter struct {
	RoomNumber *int
	UserName   string
	Limit      int
	Cursor     string
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.ReservationView, error)
	// Список по (start_at, id) ASC с курсорной пагинацией; второй результат: следующий курсор
	List(ctx context.Context, f ReservationFilter) ([]domain.ReservationView, string, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, now time.Time) error
}
