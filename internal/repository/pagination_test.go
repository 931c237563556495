package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_EncodeDecode(t *testing.T) {
	in := Cursor{StartAt: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC), ID: 42}
	s, err := EncodeCursor(in)
	require.NoError(t, err)

	out, err := DecodeCursor(s)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, in.StartAt.Equal(out.StartAt))
	assert.Equal(t, in.ID, out.ID)
}

func TestDecodeCursor_EmptyAndInvalid(t *testing.T) {
	c, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = DecodeCursor("%%%")
	assert.True(t, errors.Is(err, ErrInvalidCursor))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultPageLimit, ClampLimit(0))
	assert.Equal(t, MaxPageLimit, ClampLimit(1000))
	assert.Equal(t, 7, ClampLimit(7))
}

func TestCursor_After(t *testing.T) {
	ts := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	c := Cursor{StartAt: ts, ID: 5}
	assert.True(t, c.After(ts, 6))
	assert.False(t, c.After(ts, 5))
	assert.True(t, c.After(ts.Add(time.Minute), 1))
	assert.False(t, c.After(ts.Add(-time.Minute), 9))
}
