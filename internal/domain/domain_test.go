package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewValidationError("capacity", "capacity must be greater than 0"))

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "capacity", ve.Field)
}

func TestNotFoundSentinels(t *testing.T) {
	for _, err := range []error{ErrRoomNotFound, ErrUserNotFound, ErrReservationNotFound} {
		assert.True(t, errors.Is(err, ErrNotFound), err.Error())
	}
	assert.True(t, errors.Is(ErrUserHasReservations, ErrConflict))
}

func TestRoom_Lifecycle(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	r := NewRoom(101, 30, now)
	assert.True(t, r.Active)

	later := now.Add(time.Hour)
	r.Deactivate(later)
	assert.False(t, r.Active)
	assert.Equal(t, later, r.UpdatedAt)
	assert.Equal(t, now, r.CreatedAt)
}

func TestNewUser_Normalizes(t *testing.T) {
	u := NewUser("  Ana ", " Ana@X.com ", time.Now())
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "ana@x.com", u.Email)
}

func TestReservation_Cancel(t *testing.T) {
	now := time.Now()
	r := NewReservation(1, 2, now, now.Add(time.Hour), now)
	require.NoError(t, r.Cancel(now))
	assert.Equal(t, ReservationCancelled, r.Status)

	err := r.Cancel(now)
	assert.ErrorIs(t, err, ErrValidation)
}
