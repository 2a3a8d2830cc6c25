package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "hostly/database/repository/booking"
	hostRepo "hostly/database/repository/host"
	"hostly/models"
	"hostly/services/availability"
	"hostly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBookingInput is the commit request for one advertised slot.
type CreateBookingInput struct {
	HostID     string    `json:"hostId"`
	CustomerID string    `json:"customerId"`
	PackageID  string    `json:"packageId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

// BookingService commits bookings. It is the only writer of booking rows.
type BookingService interface {
	CreateConfirmedBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
}

// DefaultBookingService implements BookingService on top of the
// transactional booking store.
type DefaultBookingService struct {
	Repo  bookingRepo.BookingRepository
	Hosts hostRepo.HostRepository
	Cache availability.BusyTimeCache
}

// CreateConfirmedBooking validates the requested slot, then runs the
// check-then-insert transaction. At most one confirmed booking can exist per
// (host, start time); the loser of a race gets SlotTakenError. On success
// the host's busy-time cache entry is dropped so the next availability read
// recomputes against live data.
func (s *DefaultBookingService) CreateConfirmedBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if input.HostID == "" {
		return nil, NewValidationError("hostId is required")
	}
	if input.CustomerID == "" {
		return nil, NewValidationError("customerId is required")
	}
	if input.PackageID == "" {
		return nil, NewValidationError("packageId is required")
	}
	if !input.StartTime.Before(input.EndTime) {
		return nil, NewValidationError("startTime must be before endTime")
	}
	if input.EndTime.Sub(input.StartTime) != availability.SlotLength {
		return nil, NewValidationError("booking must cover exactly one slot")
	}

	host, err := s.Hosts.GetByID(ctx, input.HostID)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(host.Timezone)
	if err != nil {
		loc = time.UTC
	}
	localStart := input.StartTime.In(loc)
	if localStart.Minute() != 0 || localStart.Second() != 0 || localStart.Nanosecond() != 0 {
		return nil, NewValidationError("startTime must fall on an exact hour boundary")
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		HostID:     input.HostID,
		CustomerID: input.CustomerID,
		PackageID:  input.PackageID,
		StartTime:  input.StartTime.UTC(),
		EndTime:    input.EndTime.UTC(),
		Status:     models.BookingStatusConfirmed,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.CreateConfirmed(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, NewSlotTakenError()
		}
		return nil, err
	}

	// The cache holds external-calendar intervals, not bookings; dropping it
	// forces the next availability call through a fresh combined read path
	// instead of waiting out the TTL.
	s.Cache.Invalidate(ctx, input.HostID)

	utils.GetLogger().Info("booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("hostID", booking.HostID),
		zap.Time("startTime", booking.StartTime))

	return booking, nil
}
