package repository

import (
	"context"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	// Физически удаляет запись. ErrConflict, если на пользователя ссылаются брони
	Delete(ctx context.Context, id int64) error
}
