package memory

import (
	"context"
	"sort"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"
)

type roomRepo struct {
	s *Store
}

func (r *roomRepo) Create(_ context.Context, room *domain.Room) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if room.Capacity <= 0 {
		return 0, repository.ErrInvalidInput
	}
	if _, ok := r.s.data.roomByNumber(room.Number); ok {
		return 0, repository.ErrAlreadyExists
	}

	r.s.data.nextRoomID++
	stored := *room
	stored.ID = r.s.data.nextRoomID
	r.s.data.rooms[stored.ID] = stored

	return stored.ID, nil
}

func (r *roomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rm, ok := r.s.data.rooms[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rm, nil
}

func (r *roomRepo) GetByNumber(_ context.Context, number int) (*domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rm, ok := r.s.data.roomByNumber(number)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rm, nil
}

func (r *roomRepo) ListActive(_ context.Context) ([]domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Room, 0, len(r.s.data.rooms))
	for _, rm := range r.s.data.rooms {
		if rm.Active {
			out = append(out, rm)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *roomRepo) Update(_ context.Context, room *domain.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.rooms[room.ID]; !ok {
		return repository.ErrNotFound
	}
	if room.Capacity <= 0 {
		return repository.ErrInvalidInput
	}
	if other, ok := r.s.data.roomByNumber(room.Number); ok && other.ID != room.ID {
		return repository.ErrAlreadyExists
	}
	r.s.data.rooms[room.ID] = *room

	return nil
}

func (t *tables) roomByNumber(number int) (domain.Room, bool) {
	for _, rm := range t.rooms {
		if rm.Number == number {
			return rm, true
		}
	}
	return domain.Room{}, false
}
