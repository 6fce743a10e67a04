package promptdb

import "time"

// TimeLayout is the sortable ISO-8601 layout of every stored timestamp.
// Timestamps are always written in UTC so that string order is time order.
const TimeLayout = "2006-01-02T15:04:05.000000"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// FormatTime renders t in TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
