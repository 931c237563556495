package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"
)

type reservationRepo struct {
	s *Store
}

func (r *reservationRepo) Create(_ context.Context, res *domain.Reservation) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !res.EndAt.After(res.StartAt) || !res.Status.Valid() {
		return 0, repository.ErrInvalidInput
	}
	if _, ok := r.s.data.users[res.UserID]; !ok {
		return 0, repository.ErrConflict
	}
	if _, ok := r.s.data.rooms[res.RoomID]; !ok {
		return 0, repository.ErrConflict
	}

	r.s.data.nextReservationID++
	stored := *res
	stored.ID = r.s.data.nextReservationID
	r.s.data.reservations[stored.ID] = stored

	return stored.ID, nil
}

func (r *reservationRepo) GetByID(_ context.Context, id int64) (*domain.ReservationView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res, ok := r.s.data.reservations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	v := r.s.data.view(res)
	return &v, nil
}

func (r *reservationRepo) List(_ context.Context, f repository.ReservationFilter) ([]domain.ReservationView, string, error) {
	limit := repository.ClampLimit(f.Limit)
	cur, err := repository.DecodeCursor(f.Cursor)
	if err != nil {
		return nil, "", err
	}
	userName := strings.TrimSpace(f.UserName)

	r.s.mu.RLock()
	all := make([]domain.ReservationView, 0, len(r.s.data.reservations))
	for _, res := range r.s.data.reservations {
		v := r.s.data.view(res)
		if f.RoomNumber != nil && v.RoomNumber != *f.RoomNumber {
			continue
		}
		if userName != "" && v.UserName != userName {
			continue
		}
		if cur != nil && !cur.After(v.StartAt, v.ID) {
			continue
		}
		all = append(all, v)
	}
	r.s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].StartAt.Equal(all[j].StartAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].StartAt.Before(all[j].StartAt)
	})

	if len(all) > limit {
		all = all[:limit]
	}

	var next string
	if len(all) == limit {
		last := all[len(all)-1]
		next, _ = repository.EncodeCursor(repository.Cursor{StartAt: last.StartAt, ID: last.ID})
	}

	return all, next, nil
}

func (r *reservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.data.reservations[id]
	if !ok {
		return repository.ErrNotFound
	}
	if !status.Valid() {
		return repository.ErrInvalidInput
	}
	res.Status = status
	res.UpdatedAt = now
	r.s.data.reservations[id] = res

	return nil
}

func (t *tables) view(res domain.Reservation) domain.ReservationView {
	v := domain.ReservationView{Reservation: res}
	if u, ok := t.users[res.UserID]; ok {
		v.UserName = u.Name
	}
	if rm, ok := t.rooms[res.RoomID]; ok {
		v.RoomNumber = rm.Number
	}
	return v
}
