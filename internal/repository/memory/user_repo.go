package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(_ context.Context, u *domain.User) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.userBy(func(x domain.User) bool { return x.Name == u.Name || x.Email == u.Email }); ok {
		return 0, repository.ErrAlreadyExists
	}

	r.s.data.nextUserID++
	stored := *u
	stored.ID = r.s.data.nextUserID
	r.s.data.users[stored.ID] = stored

	return stored.ID, nil
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.data.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByName(_ context.Context, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	return r.getOne(func(u domain.User) bool { return u.Name == name })
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	return r.getOne(func(u domain.User) bool { return u.Email == email })
}

func (r *userRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(r.GetByName(ctx, name))
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(r.GetByEmail(ctx, email))
}

func (r *userRepo) List(_ context.Context) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.User, 0, len(r.s.data.users))
	for _, u := range r.s.data.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *userRepo) Update(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.s.data.userBy(func(x domain.User) bool {
		return x.ID != u.ID && (x.Name == u.Name || x.Email == u.Email)
	}); ok {
		return repository.ErrAlreadyExists
	}
	r.s.data.users[u.ID] = *u

	return nil
}

func (r *userRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.users[id]; !ok {
		return repository.ErrNotFound
	}
	for _, res := range r.s.data.reservations {
		if res.UserID == id {
			return repository.ErrConflict
		}
	}
	delete(r.s.data.users, id)

	return nil
}

func (r *userRepo) getOne(match func(domain.User) bool) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.data.userBy(match)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) exists(_ *domain.User, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case err == repository.ErrNotFound:
		return false, nil
	default:
		return false, err
	}
}

func (t *tables) userBy(match func(domain.User) bool) (domain.User, bool) {
	for _, u := range t.users {
		if match(u) {
			return u, true
		}
	}
	return domain.User{}, false
}
