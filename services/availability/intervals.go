package availability

import (
	"fmt"
	"time"
)

// wallClockLayout is the host-local slot format, an ISO datetime with no
// UTC offset.
const wallClockLayout = "2006-01-02T15:04:05"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not count.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return bStart.Before(aEnd) && bEnd.After(aStart)
}

// ZonedWallClockToInstant resolves a wall-clock moment in the given zone to
// the absolute instant that zone assigns to it on that date, DST included.
// The conversion goes through the tz database via the location, never
// through the process-local zone.
func ZonedWallClockToInstant(wallClock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(wallClockLayout, wallClock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid wall-clock value %q: %w", wallClock, err)
	}
	return t, nil
}
