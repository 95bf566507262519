package booking

import (
	"context"
	"testing"

	"roomly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Package MEDIUM: duration 120, cleanup 15, priority [R1, R2]. An existing
// R1 booking at 14:00 blocks 14:00-16:15.
func TestSelectRoomFallsBackToSecondRoom(t *testing.T) {
	engine, catalog, bookings, _, _ := newTestEngine()
	pkg, _ := catalog.GetPackage(context.Background(), "MEDIUM")
	seedBooking(bookings, "b1", "R1", "2024-03-01", 840, 975, models.StatusPaid)

	room, err := engine.selectRoom(context.Background(), pkg, "2024-03-01", 840, allocOpts{})
	require.NoError(t, err)
	assert.Equal(t, "R2", room)
}

func TestSelectRoomAtCleanupBoundary(t *testing.T) {
	engine, catalog, bookings, _, _ := newTestEngine()
	pkg, _ := catalog.GetPackage(context.Background(), "MEDIUM")
	seedBooking(bookings, "b1", "R1", "2024-03-01", 840, 975, models.StatusPaid)

	// 16:15 starts exactly when the 14:00 block (incl. cleanup) ends.
	room, err := engine.selectRoom(context.Background(), pkg, "2024-03-01", 975, allocOpts{})
	require.NoError(t, err)
	assert.Equal(t, "R1", room)
}

func TestSelectRoomDeterministic(t *testing.T) {
	engine, catalog, bookings, _, _ := newTestEngine()
	pkg, _ := catalog.GetPackage(context.Background(), "MEDIUM")
	seedBooking(bookings, "b1", "R1", "2024-03-01", 600, 735, models.StatusPaid)

	first, err := engine.selectRoom(context.Background(), pkg, "2024-03-01", 840, allocOpts{})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := engine.selectRoom(context.Background(), pkg, "2024-03-01", 840, allocOpts{})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSelectRoomNoRoomAvailable(t *testing.T) {
	engine, catalog, bookings, _, _ := newTestEngine()
	pkg, _ := catalog.GetPackage(context.Background(), "MEDIUM")
	seedBooking(bookings, "b1", "R1", "2024-03-01", 840, 975, models.StatusPaid)
	seedBooking(bookings, "b2", "R2", "2024-03-01", 840, 975, models.StatusPaid)

	_, err := engine.selectRoom(context.Background(), pkg, "2024-03-01", 900, allocOpts{})
	require.Error(t, err)
	assert.Equal(t, CodeConflict, CodeOf(err))
	assert.Equal(t, "noRoomAvailable", ReasonOf(err))
}

func TestSelectRoomIgnoresCancelled(t *testing.T) {
	engine, catalog, bookings, _, _ := newTestEngine()
	pkg, _ := catalog.GetPackage(context.Background(), "MEDIUM")
	seedBooking(bookings, "b1", "R1", "2024-03-01", 840, 975, models.StatusCancelled)

	room, err := engine.selectRoom(context.Background(), pkg, "2024-03-01", 840, allocOpts{})
	require.NoError(t, err)
	assert.Equal(t, "R1", room)
}

func TestSelectRoomStickyPreference(t *testing.T) {
	engine, catalog, bookings, _, _ := newTestEngine()
	pkg, _ := catalog.GetPackage(context.Background(), "MEDIUM")
	seedBooking(bookings, "mine", "R2", "2024-03-01", 840, 975, models.StatusPaid)

	// Rescheduling "mine" within R2: its own interval is excluded and R2 is
	// tried before R1 despite the R1-first priority list.
	room, err := engine.selectRoom(context.Background(), pkg, "2024-03-01", 900, allocOpts{
		preferredRoom:    "R2",
		excludeBookingID: "mine",
	})
	require.NoError(t, err)
	assert.Equal(t, "R2", room)
}

func TestRoomOrderFiltersToAllowed(t *testing.T) {
	pkg := models.Package{
		AllowedRoomIDs: []string{"R1", "R2"},
		RoomPriority:   []string{"R3", "R2", "R1"},
	}
	assert.Equal(t, []string{"R2", "R1"}, roomOrder(&pkg, ""))

	// A preferred room outside the allowed set is ignored.
	assert.Equal(t, []string{"R2", "R1"}, roomOrder(&pkg, "R9"))
}

func TestRoomOrderFallsBackToAllowedList(t *testing.T) {
	pkg := models.Package{AllowedRoomIDs: []string{"R2", "R1"}}
	assert.Equal(t, []string{"R2", "R1"}, roomOrder(&pkg, ""))
	assert.Equal(t, []string{"R1", "R2"}, roomOrder(&pkg, "R1"))
}
