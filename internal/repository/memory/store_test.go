package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"
	"github.com/cwrk-planet/classroom-scheduler/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestRooms_UniqueNumberAndActiveList(t *testing.T) {
	ctx := context.Background()
	rooms := NewStore().Repositories().Rooms

	id, err := rooms.Create(ctx, domain.NewRoom(101, 30, now))
	require.NoError(t, err)
	_, err = rooms.Create(ctx, domain.NewRoom(101, 10, now))
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	_, err = rooms.Create(ctx, domain.NewRoom(102, 20, now))
	require.NoError(t, err)

	rm, err := rooms.GetByID(ctx, id)
	require.NoError(t, err)
	rm.Deactivate(now)
	require.NoError(t, rooms.Update(ctx, rm))

	active, err := rooms.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 102, active[0].Number)

	byNumber, err := rooms.GetByNumber(ctx, 101)
	require.NoError(t, err)
	assert.False(t, byNumber.Active)
}

func TestUsers_DeleteWithReservationsConflicts(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	uid, err := repos.Users.Create(ctx, domain.NewUser("Ana", "ana@x.com", now))
	require.NoError(t, err)
	rid, err := repos.Rooms.Create(ctx, domain.NewRoom(1, 5, now))
	require.NoError(t, err)
	_, err = repos.Reservations.Create(ctx, domain.NewReservation(uid, rid, now, now.Add(time.Hour), now))
	require.NoError(t, err)

	assert.ErrorIs(t, repos.Users.Delete(ctx, uid), repository.ErrConflict)
	assert.ErrorIs(t, repos.Users.Delete(ctx, 999), repository.ErrNotFound)
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	boom := errors.New("boom")

	err := store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Rooms.Create(ctx, domain.NewRoom(7, 7, now)); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = store.Repositories().Rooms.GetByNumber(ctx, 7)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReservations_ListPaginates(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	uid, _ := repos.Users.Create(ctx, domain.NewUser("Ana", "ana@x.com", now))
	rid, _ := repos.Rooms.Create(ctx, domain.NewRoom(1, 5, now))
	for i := 0; i < 5; i++ {
		start := now.Add(time.Duration(i) * time.Hour)
		_, err := repos.Reservations.Create(ctx, domain.NewReservation(uid, rid, start, start.Add(30*time.Minute), now))
		require.NoError(t, err)
	}

	var seen []int64
	cursor := ""
	for page := 0; page < 5; page++ {
		items, next, err := repos.Reservations.List(ctx, repository.ReservationFilter{Limit: 2, Cursor: cursor})
		require.NoError(t, err)
		for _, it := range items {
			seen = append(seen, it.ID)
			assert.Equal(t, "Ana", it.UserName)
			assert.Equal(t, 1, it.RoomNumber)
		}
		if next == "" {
			break
		}
		cursor = next
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, seen)
}
