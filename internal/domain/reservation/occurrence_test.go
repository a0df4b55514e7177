package reservation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/spothopper-reserve/internal/domain/reservation"
)

// 2021-10-12 is a Tuesday.
var tuesday = time.Date(2021, time.October, 12, 0, 0, 0, 0, time.UTC)

func TestNextOccurrence(t *testing.T) {
	cases := []struct {
		day, clock string
		want       time.Time
	}{
		{"wednesday", "7:30pm", time.Date(2021, 10, 13, 19, 30, 0, 0, time.UTC)},
		{"saturday", "4:20 AM", time.Date(2021, 10, 16, 4, 20, 0, 0, time.UTC)},
		{"sunday", "12:00am", time.Date(2021, 10, 17, 0, 0, 0, 0, time.UTC)},
		{"Monday", "12:15 PM", time.Date(2021, 10, 18, 12, 15, 0, 0, time.UTC)},
		{"FRI", "07:00 pm", time.Date(2021, 10, 15, 19, 0, 0, 0, time.UTC)},
		{"thu", "11:59PM", time.Date(2021, 10, 14, 23, 59, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := reservation.NextOccurrence(tuesday, tc.day, tc.clock)
		require.NoError(t, err, "%s %s", tc.day, tc.clock)
		assert.True(t, tc.want.Equal(got), "%s %s: got %s want %s", tc.day, tc.clock, got, tc.want)
		assert.Equal(t, tc.want.Weekday(), got.Weekday())
	}
}

func TestNextOccurrence_sameDayIsToday(t *testing.T) {
	got, err := reservation.NextOccurrence(tuesday.Add(21*time.Hour), "Tuesday", "6:00 PM")
	require.NoError(t, err)

	assert.Equal(t, 12, got.Day())
	assert.Equal(t, 18, got.Hour())
}

func TestNextOccurrence_keepsLocation(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	today := time.Date(2021, 10, 12, 23, 0, 0, 0, loc)

	got, err := reservation.NextOccurrence(today, "wed", "9:00 AM")
	require.NoError(t, err)

	assert.Equal(t, loc, got.Location())
	assert.Equal(t, time.Date(2021, 10, 13, 9, 0, 0, 0, loc), got)
}

func TestNextOccurrence_invalid(t *testing.T) {
	_, err := reservation.NextOccurrence(tuesday, "someday", "7:00 PM")
	require.ErrorIs(t, err, reservation.ErrInvalidDay)

	for _, clock := range []string{"", "19:00", "7:00", "13:00 PM", "0:30 AM", "7:60 PM", "7 PM", "seven"} {
		_, err := reservation.NextOccurrence(tuesday, "friday", clock)
		require.ErrorIs(t, err, reservation.ErrInvalidTime, "%q", clock)
	}
}

func TestNextOccurrence_dayCheckedBeforeTime(t *testing.T) {
	_, err := reservation.NextOccurrence(tuesday, "nope", "nope")
	require.ErrorIs(t, err, reservation.ErrInvalidDay)
}

func TestIsTomorrow(t *testing.T) {
	assert.True(t, reservation.IsTomorrow(tuesday, time.Date(2021, 10, 13, 0, 0, 0, 0, time.UTC)))
	assert.True(t, reservation.IsTomorrow(tuesday, time.Date(2021, 10, 13, 23, 59, 0, 0, time.UTC)))
	assert.False(t, reservation.IsTomorrow(tuesday, time.Date(2021, 10, 19, 0, 0, 0, 0, time.UTC)))
	assert.False(t, reservation.IsTomorrow(tuesday, tuesday))
}

func TestIsTomorrow_acrossMonthEnd(t *testing.T) {
	today := time.Date(2021, 12, 31, 20, 0, 0, 0, time.UTC)
	assert.True(t, reservation.IsTomorrow(today, time.Date(2022, 1, 1, 19, 0, 0, 0, time.UTC)))
}

func TestParseWeekday(t *testing.T) {
	for in, want := range map[string]time.Weekday{
		"sunday": time.Sunday,
		"SUN":    time.Sunday,
		"Tue":    time.Tuesday,
		" sat ":  time.Saturday,
	} {
		got, err := reservation.ParseWeekday(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
