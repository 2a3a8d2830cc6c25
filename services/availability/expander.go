package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hostly/models"
)

// SlotLength is the fixed bookable unit. Templates are validated to exact
// hour bounds upstream, so expansion never deals with partial hours.
const SlotLength = time.Hour

// ExpandDay returns the template slots for the calendar date containing day,
// resolved in the host's zone. The weekday is the host-local one: a UTC
// midnight may still be the previous local day. Empty weekday yields an
// empty list. Pure; callable repeatedly with identical results.
func ExpandDay(day time.Time, tpl models.WeeklyTemplate, loc *time.Location) []models.TimeSlot {
	local := day.In(loc)
	dayName := strings.ToLower(local.Weekday().String())
	dateStr := local.Format("2006-01-02")

	slots := []models.TimeSlot{}
	for _, r := range tpl[dayName] {
		startHour := rangeHour(r.Start)
		endHour := rangeHour(r.End)
		if startHour < 0 || endHour < 0 {
			continue
		}
		for hour := startHour; hour < endHour; hour++ {
			slots = append(slots, models.TimeSlot{
				Start: fmt.Sprintf("%sT%02d:00:00", dateStr, hour),
				End:   fmt.Sprintf("%sT%02d:00:00", dateStr, hour+1),
			})
		}
	}
	return slots
}

// rangeHour extracts the hour component of an "HH:MM" template bound.
// Malformed bounds cannot normally reach here (the template is validated on
// write); a range carrying one is skipped rather than panicking.
func rangeHour(bound string) int {
	h, _, ok := strings.Cut(bound, ":")
	if !ok {
		return -1
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return -1
	}
	return hour
}
