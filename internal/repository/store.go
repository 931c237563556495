package repository

import "context"

type Repositories struct {
	Rooms        RoomRepository
	Users        UserRepository
	Reservations ReservationRepository
}

// Transactor выполняет fn в одной транзакции: commit при nil, rollback при ошибке.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

// Store объединяет репозитории, транзакции и проверку доступности.
type Store interface {
	Transactor
	Repositories() Repositories
	Ping(ctx context.Context) error
	Close()
}
