package service

import (
	"testing"

	"github.com/cwrk-planet/classroom-scheduler/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomService_Create(t *testing.T) {
	f := newFixture(t)

	room, err := f.rooms.Create(bg, CreateRoomInput{Number: 101, Capacity: 30})
	require.NoError(t, err)
	assert.NotZero(t, room.ID)
	assert.Equal(t, 101, room.Number)
	assert.Equal(t, 30, room.Capacity)
	assert.True(t, room.Active)
	assert.Equal(t, []string{EventRoomCreated}, f.events.types())
}

func TestRoomService_CreateRejects(t *testing.T) {
	f := newFixture(t)
	_, err := f.rooms.Create(bg, CreateRoomInput{Number: 101, Capacity: 30})
	require.NoError(t, err)

	tests := []struct {
		name  string
		in    CreateRoomInput
		field string
	}{
		{"zero capacity", CreateRoomInput{Number: 102, Capacity: 0}, "capacity"},
		{"negative capacity", CreateRoomInput{Number: 102, Capacity: -3}, "capacity"},
		{"duplicate number", CreateRoomInput{Number: 101, Capacity: 10}, "number"},
		// вместимость проверяется раньше уникальности
		{"duplicate number and zero capacity", CreateRoomInput{Number: 101, Capacity: 0}, "capacity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.rooms.Create(bg, tt.in)
			require.ErrorIs(t, err, domain.ErrValidation)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	list, err := f.rooms.ListActive(bg)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRoomService_SoftDeleteKeepsRoomFindableByNumber(t *testing.T) {
	f := newFixture(t)
	created, err := f.rooms.Create(bg, CreateRoomInput{Number: 101, Capacity: 30})
	require.NoError(t, err)
	_, err = f.rooms.Create(bg, CreateRoomInput{Number: 102, Capacity: 12})
	require.NoError(t, err)

	msg, err := f.rooms.SoftDelete(bg, created.ID)
	require.NoError(t, err)
	assert.Equal(t, RoomDeletedMessage, msg)

	active, err := f.rooms.ListActive(bg)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 102, active[0].Number)

	got, err := f.rooms.GetByNumber(bg, 101)
	require.NoError(t, err)
	assert.False(t, got.Active)

	// номер остаётся занятым
	_, err = f.rooms.Create(bg, CreateRoomInput{Number: 101, Capacity: 5})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRoomService_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.rooms.GetByNumber(bg, 404)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.rooms.SoftDelete(bg, 99)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	_, err = f.rooms.Edit(bg, EditRoomInput{ID: 99, Capacity: intPtr(5)})
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.Empty(t, f.events.types())
}

func TestRoomService_Edit(t *testing.T) {
	f := newFixture(t)
	r101, err := f.rooms.Create(bg, CreateRoomInput{Number: 101, Capacity: 30})
	require.NoError(t, err)
	r102, err := f.rooms.Create(bg, CreateRoomInput{Number: 102, Capacity: 20})
	require.NoError(t, err)

	t.Run("number taken by another room", func(t *testing.T) {
		_, err := f.rooms.Edit(bg, EditRoomInput{ID: r102.ID, Number: intPtr(101)})
		require.ErrorIs(t, err, domain.ErrValidation)

		got, err := f.rooms.GetByNumber(bg, 102)
		require.NoError(t, err)
		assert.Equal(t, r102.ID, got.ID)
	})

	t.Run("zero capacity", func(t *testing.T) {
		_, err := f.rooms.Edit(bg, EditRoomInput{ID: r101.ID, Capacity: intPtr(0)})
		require.ErrorIs(t, err, domain.ErrValidation)

		got, err := f.rooms.GetByNumber(bg, 101)
		require.NoError(t, err)
		assert.Equal(t, 30, got.Capacity)
	})

	t.Run("own number is accepted", func(t *testing.T) {
		got, err := f.rooms.Edit(bg, EditRoomInput{ID: r101.ID, Number: intPtr(101), Capacity: intPtr(40)})
		require.NoError(t, err)
		assert.Equal(t, 101, got.Number)
		assert.Equal(t, 40, got.Capacity)
	})

	t.Run("renumber", func(t *testing.T) {
		got, err := f.rooms.Edit(bg, EditRoomInput{ID: r102.ID, Number: intPtr(201)})
		require.NoError(t, err)
		assert.Equal(t, 201, got.Number)
		assert.Equal(t, 20, got.Capacity)

		_, err = f.rooms.GetByNumber(bg, 102)
		assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	})

	t.Run("nothing to change", func(t *testing.T) {
		got, err := f.rooms.Edit(bg, EditRoomInput{ID: r101.ID})
		require.NoError(t, err)
		assert.Equal(t, 40, got.Capacity)
	})
}
