package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReservationsXLSX(t *testing.T) {
	start := time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)
	data, err := ReservationsXLSX([]ReservationRow{
		{ID: 1, RoomNumber: 101, UserName: "Ana", StartAt: start, EndAt: start.Add(time.Hour), Status: "SCHEDULED"},
		{ID: 2, RoomNumber: 202, UserName: "Bia", StartAt: start, EndAt: start.Add(2 * time.Hour), Status: "CANCELLED"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ReservationsSheet}, f.GetSheetList())

	rows, err := f.GetRows(ReservationsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, ReservationsHeader, rows[0])
	assert.Equal(t, "101", rows[1][1])
	assert.Equal(t, "Ana", rows[1][2])
	assert.Equal(t, "CANCELLED", rows[2][5])
}

func TestReservationsXLSX_Empty(t *testing.T) {
	data, err := ReservationsXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ReservationsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
