package crowd

import (
	"fmt"
	"time"

	"crowd-server/dataset"
)

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dataset.DATE_LAYOUT, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dataset.DATE_LAYOUT)
}

// Today is the current calendar date in UTC.
func Today() time.Time {
	return civil(time.Now().UTC())
}

// civil drops the clock, keeping the calendar day t names in its own location.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
