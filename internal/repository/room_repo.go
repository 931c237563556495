package repository

import (
	"context"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
)

type RoomRepository interface {
	// Создаёт комнату и возвращает присвоенный ID
	Create(ctx context.Context, r *domain.Room) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	// Ищет по номеру без учёта флага active
	GetByNumber(ctx context.Context, number int) (*domain.Room, error)
	ListActive(ctx context.Context) ([]domain.Room, error)
	// Явно сохраняет изменённые number, capacity, active
	Update(ctx context.Context, r *domain.Room) error
}
