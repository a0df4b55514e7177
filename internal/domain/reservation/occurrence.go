package reservation

import (
	"strings"
	"time"
)

// ClockLayout is the 12-hour format the booking form expects.
const ClockLayout = "03:04 PM"

var weekdays = func() map[string]time.Weekday {
	m := make(map[string]time.Weekday, 14)
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		m[name] = d
		m[name[:3]] = d
	}
	return m
}()

// ParseWeekday accepts English weekday names or their three-letter
// abbreviations, in any case.
func ParseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, inputErr(ErrInvalidDay, s)
	}
	return d, nil
}

// Clock is a time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock reads a 12-hour time with an AM/PM marker. Whitespace and
// case are ignored, so "7:30pm" and "07:30 PM" are equal.
func ParseClock(s string) (Clock, error) {
	norm := strings.ToUpper(strings.Join(strings.Fields(s), ""))
	// time.Parse takes hour 0 for the 12-hour layout; a 12-hour clock does not.
	if strings.HasPrefix(norm, "0:") || strings.HasPrefix(norm, "00:") {
		return Clock{}, inputErr(ErrInvalidTime, s)
	}
	t, err := time.Parse("3:04PM", norm)
	if err != nil {
		return Clock{}, inputErr(ErrInvalidTime, s)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// NextOccurrence returns the earliest date on or after today falling on
// day, at the given time of day, in today's location.
func NextOccurrence(today time.Time, day, clock string) (time.Time, error) {
	wd, err := ParseWeekday(day)
	if err != nil {
		return time.Time{}, err
	}
	c, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := today.Date()
	next := time.Date(y, m, d, c.Hour, c.Minute, 0, 0, today.Location())
	for next.Weekday() != wd {
		next = next.AddDate(0, 0, 1)
	}
	return next, nil
}

// IsTomorrow reports whether at falls on the calendar day after today.
func IsTomorrow(today, at time.Time) bool {
	ty, tm, td := today.AddDate(0, 0, 1).Date()
	ay, am, ad := at.Date()
	return ty == ay && tm == am && td == ad
}
