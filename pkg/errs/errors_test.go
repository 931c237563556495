package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad json", fmt.Errorf("decode: %w", ErrInvalidInput), http.StatusBadRequest},
		{"validation", domain.NewValidationError("capacity", "capacity must be greater than 0"), http.StatusBadRequest},
		{"invalid cursor", fmt.Errorf("%w: decode json", repository.ErrInvalidCursor), http.StatusBadRequest},
		{"room not found", domain.ErrRoomNotFound, http.StatusNotFound},
		{"wrapped user not found", fmt.Errorf("users.Update: %w", domain.ErrUserNotFound), http.StatusNotFound},
		{"has reservations", domain.ErrUserHasReservations, http.StatusConflict},
		{"already exists", repository.ErrAlreadyExists, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToHTTP(tt.err))
		})
	}
}

func TestMeta(t *testing.T) {
	assert.Equal(t, map[string]any{"field": "name"}, Meta(domain.NewValidationError("name", "name must not be blank")))
	assert.Nil(t, Meta(domain.ErrRoomNotFound))
}
