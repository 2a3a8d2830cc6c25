package models

// TimeSlot is one bookable hour expressed as host-local wall-clock strings
// with no UTC offset (e.g. "2026-02-16T09:00:00"). Pure output value, never
// persisted.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayAvailability groups the available slots of one host-local calendar date.
type DayAvailability struct {
	Date     string     `json:"date"`     // "YYYY-MM-DD", host-local
	DayLabel string     `json:"dayLabel"` // short human label, e.g. "Mon 2"
	Slots    []TimeSlot `json:"slots"`
}

// AvailabilityResult is the engine's JSON-serializable response.
type AvailabilityResult struct {
	HostTimezone string            `json:"hostTimezone"`
	Days         []DayAvailability `json:"days"`
	GcalDegraded bool              `json:"gcalDegraded"`
}
