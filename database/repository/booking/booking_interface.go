package bookingRepo

import (
	"context"
	"errors"
	"time"

	"hostly/models"
)

// ErrSlotTaken is returned when a confirmed booking already exists for the
// same host and start time. It is a legitimate concurrent-booking race, not
// a storage fault.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository defines persistence for confirmed bookings.
type BookingRepository interface {
	// CreateConfirmed performs the transactional check-then-insert that
	// guarantees at most one confirmed booking per (hostID, startTime).
	CreateConfirmed(ctx context.Context, booking *models.Booking) error
	// FindConfirmedInRange returns confirmed bookings fully contained in
	// [from, to]. Always a live read; never cached.
	FindConfirmedInRange(ctx context.Context, hostID string, from, to time.Time) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	EnsureIndexes() error
}
