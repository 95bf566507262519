package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkWindowWeekdayVsWeekend(t *testing.T) {
	p := testPolicy()

	friday, err := p.ParseDate("2024-03-01")
	require.NoError(t, err)
	open, closing := p.WorkWindow(friday)
	assert.Equal(t, 10*60, open)
	assert.Equal(t, 21*60, closing)

	saturday, err := p.ParseDate("2024-03-02")
	require.NoError(t, err)
	open, _ = p.WorkWindow(saturday)
	assert.Equal(t, 9*60, open)

	sunday, err := p.ParseDate("2024-03-03")
	require.NoError(t, err)
	open, _ = p.WorkWindow(sunday)
	assert.Equal(t, 9*60, open)
}

func TestParseDateRejectsMalformed(t *testing.T) {
	p := testPolicy()
	_, err := p.ParseDate("03/01/2024")
	require.Error(t, err)
	assert.Equal(t, CodeValidation, CodeOf(err))
}

func TestEarliestStartFutureDate(t *testing.T) {
	p := testPolicy()
	d, _ := p.ParseDate("2024-03-01")
	ref := time.Date(2024, 2, 20, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, 10*60, p.EarliestStart(d, ref))
}

func TestEarliestStartSameDayAppliesLeadTime(t *testing.T) {
	p := testPolicy()
	d, _ := p.ParseDate("2024-03-01")

	// 13:30 now + 60 min lead -> 14:30.
	ref := time.Date(2024, 3, 1, 13, 30, 0, 0, time.UTC)
	assert.Equal(t, 14*60+30, p.EarliestStart(d, ref))

	// Early morning clamps up to opening.
	ref = time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)
	assert.Equal(t, 10*60, p.EarliestStart(d, ref))

	// Late evening pushes past closing: nothing bookable.
	ref = time.Date(2024, 3, 1, 20, 30, 0, 0, time.UTC)
	assert.Greater(t, p.EarliestStart(d, ref), p.Close)
}

func TestEarliestStartPastDateYieldsNothing(t *testing.T) {
	p := testPolicy()
	d, _ := p.ParseDate("2024-03-01")
	ref := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	assert.Greater(t, p.EarliestStart(d, ref), p.Close)
}

func TestCleanupFallsBackToDefault(t *testing.T) {
	p := testPolicy()
	pkg := catalogPackage(120, 0)
	assert.Equal(t, 15, p.CleanupFor(&pkg))
	assert.Equal(t, 135, p.BlockFor(&pkg))

	pkg = catalogPackage(120, 30)
	assert.Equal(t, 30, p.CleanupFor(&pkg))
	assert.Equal(t, 150, p.BlockFor(&pkg))
}
