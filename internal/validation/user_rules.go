package validation

import (
	"context"
	"strings"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
)

type UserNonBlank struct{}

func (UserNonBlank) Validate(_ context.Context, u *domain.User) error {
	if strings.TrimSpace(u.Name) == "" {
		return domain.NewValidationError("name", "name must not be blank")
	}
	if strings.TrimSpace(u.Email) == "" {
		return domain.NewValidationError("email", "email must not be blank")
	}
	return nil
}

type UserNameChecker interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type UserNameUnique struct {
	Users UserNameChecker
}

func (v UserNameUnique) Validate(ctx context.Context, u *domain.User) error {
	exists, err := v.Users.ExistsByName(ctx, u.Name)
	if err != nil {
		return err
	}
	if exists {
		return domain.NewValidationError("name", "a user with this name already exists")
	}
	return nil
}

type UserEmailChecker interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type UserEmailUnique struct {
	Users UserEmailChecker
}

func (v UserEmailUnique) Validate(ctx context.Context, u *domain.User) error {
	exists, err := v.Users.ExistsByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	if exists {
		return domain.NewValidationError("email", "a user with this email already exists")
	}
	return nil
}
