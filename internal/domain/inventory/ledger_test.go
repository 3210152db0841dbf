//go:build unit

package inventory_test

import (
	"testing"

	"hotel-quote-engine/internal/domain/inventory"
	"hotel-quote-engine/internal/domain/stay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) stay.Date {
	t.Helper()
	d, err := stay.ParseDate(s)
	require.NoError(t, err)
	return d
}

func stayOf(t *testing.T, in, out string) stay.DateRange {
	t.Helper()
	r, err := stay.NewDateRange(date(t, in), date(t, out))
	require.NoError(t, err)
	return r
}

func TestNewLedger(t *testing.T) {
	testCases := []struct {
		name   string
		record inventory.Record
		ok     bool
	}{
		{name: "no bookings", record: inventory.Record{TotalRooms: 5}, ok: true},
		{name: "fully booked", record: inventory.Record{TotalRooms: 5, BookedRooms: 5}, ok: true},
		{name: "overbooked", record: inventory.Record{TotalRooms: 5, BookedRooms: 6}},
		{name: "negative booked", record: inventory.Record{TotalRooms: 5, BookedRooms: -1}},
		{name: "negative total", record: inventory.Record{TotalRooms: -1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.record.Date = date(t, "2024-01-15")
			_, err := inventory.NewLedger(1, 5, []inventory.Record{tc.record})
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, inventory.ErrInconsistentInventory)
		})
	}
}

func TestLedger_Check(t *testing.T) {
	t.Run("binding night blocks the stay", func(t *testing.T) {
		l, err := inventory.NewLedger(3, 2, []inventory.Record{
			{Date: date(t, "2024-01-15"), TotalRooms: 2, BookedRooms: 0},
			{Date: date(t, "2024-01-16"), TotalRooms: 2, BookedRooms: 2},
		})
		require.NoError(t, err)

		got, err := l.Check(stayOf(t, "2024-01-15", "2024-01-17"), 1)
		require.NoError(t, err)

		assert.False(t, got.IsAvailable)
		assert.Equal(t, 0, got.MinFreeRooms)
		assert.Equal(t, "2024-01-16", got.BindingDate.String())
		assert.Equal(t, 1, got.RequestedRooms)
		assert.Equal(t, 2, got.Nights)
		assert.Equal(t, int64(3), got.RoomTypeID)
	})

	t.Run("missing records default to total rooms", func(t *testing.T) {
		l, err := inventory.NewLedger(3, 4, nil)
		require.NoError(t, err)

		got, err := l.Check(stayOf(t, "2024-02-01", "2024-02-04"), 4)
		require.NoError(t, err)
		assert.True(t, got.IsAvailable)
		assert.Equal(t, 4, got.MinFreeRooms)
		assert.Equal(t, "2024-02-01", got.BindingDate.String())
	})

	t.Run("first minimum wins ties", func(t *testing.T) {
		l, err := inventory.NewLedger(3, 4, []inventory.Record{
			{Date: date(t, "2024-02-02"), TotalRooms: 4, BookedRooms: 3},
			{Date: date(t, "2024-02-03"), TotalRooms: 4, BookedRooms: 3},
		})
		require.NoError(t, err)

		got, err := l.Check(stayOf(t, "2024-02-01", "2024-02-04"), 1)
		require.NoError(t, err)
		assert.True(t, got.IsAvailable)
		assert.Equal(t, 1, got.MinFreeRooms)
		assert.Equal(t, "2024-02-02", got.BindingDate.String())
	})

	t.Run("check-out night is not counted", func(t *testing.T) {
		l, err := inventory.NewLedger(3, 2, []inventory.Record{
			{Date: date(t, "2024-01-17"), TotalRooms: 2, BookedRooms: 2},
		})
		require.NoError(t, err)

		got, err := l.Check(stayOf(t, "2024-01-15", "2024-01-17"), 2)
		require.NoError(t, err)
		assert.True(t, got.IsAvailable)
	})

	t.Run("closed for sale", func(t *testing.T) {
		l, err := inventory.NewLedger(3, 10, nil, inventory.ClosedForSale())
		require.NoError(t, err)

		got, err := l.Check(stayOf(t, "2024-01-15", "2024-01-17"), 1)
		require.NoError(t, err)
		assert.False(t, got.IsAvailable)
		assert.Equal(t, 0, got.MinFreeRooms)
	})

	t.Run("invalid room count", func(t *testing.T) {
		l, err := inventory.NewLedger(3, 10, nil)
		require.NoError(t, err)

		_, err = l.Check(stayOf(t, "2024-01-15", "2024-01-17"), 0)
		require.ErrorIs(t, err, inventory.ErrInvalidRoomCount)
	})

	t.Run("empty range", func(t *testing.T) {
		l, err := inventory.NewLedger(3, 10, nil)
		require.NoError(t, err)

		_, err = l.Check(stay.DateRange{}, 1)
		require.ErrorIs(t, err, stay.ErrInvalidDateRange)
	})

	t.Run("available iff every night has enough", func(t *testing.T) {
		l, err := inventory.NewLedger(3, 5, []inventory.Record{
			{Date: date(t, "2024-03-01"), TotalRooms: 5, BookedRooms: 1},
			{Date: date(t, "2024-03-02"), TotalRooms: 5, BookedRooms: 3},
			{Date: date(t, "2024-03-03"), TotalRooms: 5, BookedRooms: 2},
		})
		require.NoError(t, err)
		r := stayOf(t, "2024-03-01", "2024-03-04")

		for rooms := 1; rooms <= 6; rooms++ {
			got, err := l.Check(r, rooms)
			require.NoError(t, err)

			every := true
			for d := range r.Dates() {
				if l.FreeRooms(d) < rooms {
					every = false
				}
			}
			assert.Equal(t, every, got.IsAvailable, "rooms=%d", rooms)
		}
	})
}

func TestOccupancyOf(t *testing.T) {
	a, err := inventory.NewLedger(1, 4, []inventory.Record{
		{Date: date(t, "2024-01-15"), TotalRooms: 4, BookedRooms: 2},
	})
	require.NoError(t, err)
	b, err := inventory.NewLedger(2, 6, []inventory.Record{
		{Date: date(t, "2024-01-16"), TotalRooms: 6, BookedRooms: 3},
	})
	require.NoError(t, err)

	got := inventory.OccupancyOf(stayOf(t, "2024-01-15", "2024-01-17"), a, b)

	assert.Equal(t, 20, got.TotalRoomNights)
	assert.Equal(t, 5, got.BookedRoomNights)
	assert.Equal(t, "25", got.Rate.String())
	require.Len(t, got.Days, 2)
	assert.Equal(t, inventory.DayOccupancy{Date: date(t, "2024-01-15"), TotalRooms: 10, BookedRooms: 2}, got.Days[0])

	t.Run("no inventory", func(t *testing.T) {
		got := inventory.OccupancyOf(stayOf(t, "2024-01-15", "2024-01-17"))
		assert.True(t, got.Rate.IsZero())
		assert.Equal(t, 0, got.TotalRoomNights)
	})
}
