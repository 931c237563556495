package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"
	"github.com/cwrk-planet/classroom-scheduler/internal/validation"
)

const UserDeletedMessage = "user deleted successfully"

type UserService struct {
	users  repository.UserRepository
	tx     repository.Transactor
	events Notifier
	now    func() time.Time
}

func NewUserService(users repository.UserRepository, tx repository.Transactor, events Notifier, now func() time.Time) *UserService {
	if now == nil {
		now = time.Now
	}
	return &UserService{
		users:  users,
		tx:     tx,
		events: notifierOrNop(events),
		now:    now,
	}
}

// Create проверяет [непустые поля, уникальность имени, уникальность email].
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*UserDTO, error) {
	user := domain.NewUser(in.Name, in.Email, s.now())

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := validation.Run(ctx, user,
			validation.UserNonBlank{},
			validation.UserNameUnique{Users: repos.Users},
			validation.UserEmailUnique{Users: repos.Users},
		); err != nil {
			return err
		}

		id, err := repos.Users.Create(ctx, user)
		if err != nil {
			return fmt.Errorf("users.Create: %w", userStoreErr(err))
		}
		user.ID = id
		return nil
	})
	if err != nil {
		logFailure(ctx, "user.create", err)
		return nil, err
	}

	out := toUserDTO(user)
	s.events.Publish(Event{Topic: TopicUsers, Type: EventUserCreated, Payload: out})
	return &out, nil
}

// FindByNameOrEmail: сначала ищет по имени, затем тот же запрос как email.
func (s *UserService) FindByNameOrEmail(ctx context.Context, query string) (*UserDTO, error) {
	user, err := s.users.GetByName(ctx, query)
	if err == nil {
		out := toUserDTO(user)
		return &out, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logFailure(ctx, "user.findByNameOrEmail", err)
		return nil, fmt.Errorf("users.GetByName: %w", err)
	}

	user, err = s.users.GetByEmail(ctx, query)
	if err != nil {
		err = notFound(err, domain.ErrUserNotFound)
		logFailure(ctx, "user.findByNameOrEmail", err)
		return nil, err
	}

	out := toUserDTO(user)
	return &out, nil
}

func (s *UserService) ListAll(ctx context.Context) ([]UserDTO, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		logFailure(ctx, "user.listAll", err)
		return nil, fmt.Errorf("users.List: %w", err)
	}

	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, toUserDTO(&users[i]))
	}
	return out, nil
}

// Delete удаляет запись физически; для несуществующего id сразу ErrUserNotFound.
func (s *UserService) Delete(ctx context.Context, id int64) (string, error) {
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := repos.Users.Delete(ctx, id); err != nil {
			return userStoreErr(err)
		}
		return nil
	})
	if err != nil {
		logFailure(ctx, "user.delete", err)
		return "", err
	}

	s.events.Publish(Event{Topic: TopicUsers, Type: EventUserDeleted, Payload: map[string]int64{"id": id}})
	return UserDeletedMessage, nil
}

func (s *UserService) Edit(ctx context.Context, in EditUserInput) (*UserDTO, error) {
	var user *domain.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		user, err = repos.Users.GetByID(ctx, in.ID)
		if err != nil {
			return notFound(err, domain.ErrUserNotFound)
		}

		if strings.TrimSpace(in.Name) == "" {
			return domain.NewValidationError("name", "name must not be blank")
		}
		user.SetName(in.Name, s.now())

		if err := repos.Users.Update(ctx, user); err != nil {
			return fmt.Errorf("users.Update: %w", userStoreErr(err))
		}
		return nil
	})
	if err != nil {
		logFailure(ctx, "user.edit", err)
		return nil, err
	}

	out := toUserDTO(user)
	s.events.Publish(Event{Topic: TopicUsers, Type: EventUserUpdated, Payload: out})
	return &out, nil
}

func userStoreErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrAlreadyExists):
		return domain.NewValidationError("name", "a user with this name or email already exists")
	case errors.Is(err, repository.ErrConflict):
		return domain.ErrUserHasReservations
	default:
		return notFound(err, domain.ErrUserNotFound)
	}
}
