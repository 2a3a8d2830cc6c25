package host

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"hostly/models"
)

// Operating window for bookable hours. Template ranges must sit inside it.
const (
	OperatingDayStartHour = 8
	OperatingDayEndHour   = 20
)

var weekdayNames = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// ValidateSlug enforces the public URL slug rules: 3-30 chars, lowercase
// letters, digits and hyphens, no leading or trailing hyphen.
func ValidateSlug(slug string) error {
	if len(slug) < 3 {
		return NewValidationError("slug must be at least 3 characters")
	}
	if len(slug) > 30 {
		return NewValidationError("slug must be at most 30 characters")
	}
	if !slugPattern.MatchString(slug) {
		return NewValidationError("slug may only contain lowercase letters, numbers, and hyphens")
	}
	return nil
}

// ValidateWeeklyTemplate checks a bookable-hours template before it is
// written: known weekday keys, exact-hour bounds inside the operating
// window, start before end, and ranges ordered and non-overlapping within
// each day. The availability expander relies on these invariants and never
// re-checks them.
func ValidateWeeklyTemplate(tpl models.WeeklyTemplate) error {
	for day, ranges := range tpl {
		if !weekdayNames[day] {
			return NewValidationError(fmt.Sprintf("unknown weekday %q", day))
		}
		prevEnd := -1
		for _, r := range ranges {
			start, err := parseHourBound(r.Start)
			if err != nil {
				return NewValidationError(fmt.Sprintf("%s: %v", day, err))
			}
			end, err := parseHourBound(r.End)
			if err != nil {
				return NewValidationError(fmt.Sprintf("%s: %v", day, err))
			}
			if start >= end {
				return NewValidationError(fmt.Sprintf("%s: range start %s must be before end %s", day, r.Start, r.End))
			}
			if start < OperatingDayStartHour || end > OperatingDayEndHour {
				return NewValidationError(fmt.Sprintf("%s: range %s-%s is outside the %02d:00-%02d:00 operating window",
					day, r.Start, r.End, OperatingDayStartHour, OperatingDayEndHour))
			}
			if start < prevEnd {
				return NewValidationError(fmt.Sprintf("%s: ranges must be ordered and non-overlapping", day))
			}
			prevEnd = end
		}
	}
	return nil
}

// parseHourBound accepts "HH:00" only; slots always start on the hour.
func parseHourBound(bound string) (int, error) {
	h, m, ok := strings.Cut(bound, ":")
	if !ok || m != "00" || len(h) != 2 {
		return 0, fmt.Errorf("bound %q must be an exact hour in HH:00 form", bound)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("bound %q must be an exact hour in HH:00 form", bound)
	}
	return hour, nil
}
