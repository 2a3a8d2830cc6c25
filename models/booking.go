package models

import "time"

// BookingStatus is a closed set; only the two meaningful states are
// representable. Anything other than confirmed never blocks a slot.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
)

// Booking represents a confirmed booking record. Rows are created exclusively
// by the booking commit and are immutable afterwards except for status
// transitions made by cancellation flows.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	HostID     string        `bson:"host_id" json:"hostId"`
	CustomerID string        `bson:"customer_id" json:"customerId"`
	PackageID  string        `bson:"package_id" json:"packageId"`
	StartTime  time.Time     `bson:"start_time" json:"startTime"` // absolute instant, UTC
	EndTime    time.Time     `bson:"end_time" json:"endTime"`
	Status     BookingStatus `bson:"status" json:"status"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
}

// BusyInterval is a half-open [Start, End) range during which the host is
// unavailable, from the external calendar or from an existing booking.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
