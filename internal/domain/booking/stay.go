package booking

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date carried as a query parameter. Timezone
// offsets embedded in the value are ignored; the stay is counted in
// whole-day units anchored at UTC midnight.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), true
}

// Nights returns the number of nights between check-in and check-out,
// rounding partial days up. Zero when either date is absent. The result
// can be negative for inverted dates; callers gate on nights > 0.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}
