package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_UsesTargetTimezoneNotHostClock(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, loc.String())

	// 2026-10-12 22:45 UTC is Tuesday 07:45 in Seoul (UTC+9).
	instant := time.Date(2026, time.October, 12, 22, 45, 30, 0, time.UTC)

	now := Resolve(instant, loc)

	assert.Equal(t, 2, now.DayOfWeek)
	assert.Equal(t, 7, now.Hour)
	assert.Equal(t, 45, now.Minute)
	assert.Equal(t, "07:45", now.HHMM)
	assert.Equal(t, 465, now.TotalMinutes)
}

func TestResolve_SameInstantFromAnyHostZone(t *testing.T) {
	loc, err := LoadLocation(DefaultTimezone)
	require.NoError(t, err)

	newYork, err := LoadLocation("America/New_York")
	require.NoError(t, err)

	instant := time.Date(2026, time.October, 12, 22, 45, 0, 0, time.UTC)

	assert.Equal(t, Resolve(instant, loc), Resolve(instant.In(newYork), loc))
}

func TestResolve_HonoursDaylightSavingRules(t *testing.T) {
	berlin, err := LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 2026-03-29 01:30 UTC is after the spring-forward switch: 03:30 CEST, not 02:30.
	now := Resolve(time.Date(2026, time.March, 29, 1, 30, 0, 0, time.UTC), berlin)

	assert.Equal(t, "03:30", now.HHMM)
	assert.Equal(t, 0, now.DayOfWeek)
}

func TestResolve_MidnightIsZeroMinutes(t *testing.T) {
	loc, err := LoadLocation(DefaultTimezone)
	require.NoError(t, err)

	now := Resolve(time.Date(2026, time.October, 17, 15, 0, 0, 0, time.UTC), loc)

	assert.Equal(t, "00:00", now.HHMM)
	assert.Equal(t, 0, now.TotalMinutes)
	assert.Equal(t, 0, now.DayOfWeek)
}

func TestLoadLocation_UnknownZone(t *testing.T) {
	_, err := LoadLocation("Mars/Olympus_Mons")

	assert.Error(t, err)
}
