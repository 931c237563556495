package domain

import (
	"strings"
	"time"
)

type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewUser(name, email string, now time.Time) *User {
	return &User{
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (u *User) SetName(name string, now time.Time) {
	u.Name = strings.TrimSpace(name)
	u.UpdatedAt = now
}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
