package booking

import (
	"context"
	"testing"
	"time"

	"roomly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableTimesFullWeekdayGrid(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()

	// Friday, nothing booked: 10:00 open, 21:00 close, 135 min block on a
	// 30 min grid. Last fitting start is 18:30 (18:30 + 2h15m = 20:45).
	times, err := engine.AvailableTimes(context.Background(), "MEDIUM", "2024-03-01", AvailabilityOptions{})
	require.NoError(t, err)
	require.Len(t, times, 18)
	assert.Equal(t, "10:00", times[0])
	assert.Equal(t, "18:30", times[len(times)-1])
}

func TestAvailableTimesWeekendOpensEarlier(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()

	times, err := engine.AvailableTimes(context.Background(), "MEDIUM", "2024-03-02", AvailabilityOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, times)
	assert.Equal(t, "09:00", times[0])
}

func TestAvailableTimesSingleRoomBusyDoesNotBlockSlot(t *testing.T) {
	engine, _, bookings, _, _ := newTestEngine()
	seedBooking(bookings, "b1", "R1", "2024-03-01", 840, 975, models.StatusPaid)

	// R2 is still free for every slot, so the listing is unchanged.
	times, err := engine.AvailableTimes(context.Background(), "MEDIUM", "2024-03-01", AvailabilityOptions{})
	require.NoError(t, err)
	assert.Len(t, times, 18)
	assert.Contains(t, times, "14:00")
}

func TestAvailableTimesAllRoomsBusyHidesSlot(t *testing.T) {
	engine, _, bookings, _, _ := newTestEngine()
	seedBooking(bookings, "b1", "R1", "2024-03-01", 840, 975, models.StatusPaid)
	seedBooking(bookings, "b2", "R2", "2024-03-01", 840, 975, models.StatusPending)

	times, err := engine.AvailableTimes(context.Background(), "MEDIUM", "2024-03-01", AvailabilityOptions{})
	require.NoError(t, err)
	assert.NotContains(t, times, "14:00")
	// 16:15 is where the held block ends; the 16:00 grid point still
	// overlaps it, 16:30 is clear again.
	assert.NotContains(t, times, "16:00")
	assert.Contains(t, times, "16:30")
	// Touching from the left: a block ending exactly at 14:00 would be
	// fine, but any start after 11:45 runs into the hold.
	assert.Contains(t, times, "11:30")
	assert.NotContains(t, times, "12:00")
}

func TestAvailableTimesCancelledBookingsIgnored(t *testing.T) {
	engine, _, bookings, _, _ := newTestEngine()
	seedBooking(bookings, "b1", "R1", "2024-03-01", 840, 975, models.StatusCancelled)
	seedBooking(bookings, "b2", "R2", "2024-03-01", 840, 975, models.StatusCancelled)

	times, err := engine.AvailableTimes(context.Background(), "MEDIUM", "2024-03-01", AvailabilityOptions{})
	require.NoError(t, err)
	assert.Contains(t, times, "14:00")
}

func TestAvailableTimesExcludesOwnBookingOnReschedule(t *testing.T) {
	engine, _, bookings, _, _ := newTestEngine()
	seedBooking(bookings, "b1", "R1", "2024-03-01", 840, 975, models.StatusPaid)
	seedBooking(bookings, "b2", "R2", "2024-03-01", 840, 975, models.StatusPaid)

	times, err := engine.AvailableTimes(context.Background(), "MEDIUM", "2024-03-01",
		AvailabilityOptions{ExcludeBookingID: "b2"})
	require.NoError(t, err)
	assert.Contains(t, times, "14:00")
}

func TestAvailableTimesReferenceTimeAppliesLeadFilter(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()

	// Pretend it is 17:00 on the requested day: with a 60 min lead only
	// 18:00 and 18:30 remain.
	ref := time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC)
	times, err := engine.AvailableTimes(context.Background(), "MEDIUM", "2024-03-01",
		AvailabilityOptions{ReferenceTime: &ref})
	require.NoError(t, err)
	assert.Equal(t, []string{"18:00", "18:30"}, times)
}

func TestAvailableTimesHolidayIsEmpty(t *testing.T) {
	engine, catalog, _, _, _ := newTestEngine()
	catalog.holidays["2024-03-01"] = true

	times, err := engine.AvailableTimes(context.Background(), "MEDIUM", "2024-03-01", AvailabilityOptions{})
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestAvailableTimesUnknownPackage(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()
	_, err := engine.AvailableTimes(context.Background(), "NOPE", "2024-03-01", AvailabilityOptions{})
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestAvailableDatesSkipsHolidaysAndFullDays(t *testing.T) {
	engine, catalog, bookings, _, _ := newTestEngine()
	catalog.holidays["2024-03-02"] = true
	// 2024-03-03 fully booked in both rooms for the entire window.
	seedBooking(bookings, "b1", "R1", "2024-03-03", 540, 1260, models.StatusPaid)
	seedBooking(bookings, "b2", "R2", "2024-03-03", 540, 1260, models.StatusPaid)

	dates, err := engine.AvailableDates(context.Background(), "MEDIUM", "2024-03-01", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01", "2024-03-04"}, dates)
}

func TestAvailableDatesExcludesPastDates(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()

	// testNow is midday on 2024-02-01: the day before yields nothing,
	// the current day still has afternoon slots.
	dates, err := engine.AvailableDates(context.Background(), "MEDIUM", "2024-01-31", "2024-02-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-01", "2024-02-02"}, dates)
}

func TestAvailableDatesBadRange(t *testing.T) {
	engine, _, _, _, _ := newTestEngine()
	_, err := engine.AvailableDates(context.Background(), "MEDIUM", "not-a-date", "2024-03-04")
	require.Error(t, err)
	assert.Equal(t, CodeValidation, CodeOf(err))
}
