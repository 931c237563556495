// Package memory реализует хранилище в памяти с той же семантикой, что и postgres:
// уникальность номера комнаты, имени и email пользователя, запрет удаления
// пользователя с бронями. Используется для локального запуска и в тестах.
package memory

import (
	"context"
	"sync"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"
)

type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	data  tables
	repos repository.Repositories
}

type tables struct {
	nextRoomID        int64
	nextUserID        int64
	nextReservationID int64

	rooms        map[int64]domain.Room
	users        map[int64]domain.User
	reservations map[int64]domain.Reservation
}

func NewStore() *Store {
	s := &Store{
		data: tables{
			rooms:        make(map[int64]domain.Room),
			users:        make(map[int64]domain.User),
			reservations: make(map[int64]domain.Reservation),
		},
	}
	s.repos = repository.Repositories{
		Rooms:        &roomRepo{s: s},
		Users:        &userRepo{s: s},
		Reservations: &reservationRepo{s: s},
	}
	return s
}

func (s *Store) Repositories() repository.Repositories {
	return s.repos
}

// WithinTx сериализует транзакции; при ошибке fn состояние откатывается к снимку.
// Чтения вне транзакции видят незакоммиченные изменения.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	if err := fn(ctx, s.repos); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Close() {}

func (t tables) clone() tables {
	out := t
	out.rooms = make(map[int64]domain.Room, len(t.rooms))
	for k, v := range t.rooms {
		out.rooms[k] = v
	}
	out.users = make(map[int64]domain.User, len(t.users))
	for k, v := range t.users {
		out.users[k] = v
	}
	out.reservations = make(map[int64]domain.Reservation, len(t.reservations))
	for k, v := range t.reservations {
		out.reservations[k] = v
	}
	return out
}
