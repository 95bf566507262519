package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToClock(0))
	assert.Equal(t, "09:05", MinutesToClock(545))
	assert.Equal(t, "14:00", MinutesToClock(840))
	assert.Equal(t, "23:59", MinutesToClock(1439))
}

func TestClockToMinutes(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"09:05": 545,
		"14:00": 840,
		"23:59": 1439,
	}
	for in, want := range cases {
		got, err := ClockToMinutes(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestClockToMinutesRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "14", "1400", "25:00", "14:60", "ab:cd", "14:00:00", "-1:30"} {
		_, err := ClockToMinutes(in)
		assert.Error(t, err, in)
	}
}
