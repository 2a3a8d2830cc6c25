package availability

import (
	"context"
	"fmt"
	"time"

	bookingRepo "hostly/database/repository/booking"
	hostRepo "hostly/database/repository/host"
	"hostly/models"
	"hostly/utils"

	"go.uber.org/zap"
)

// Config carries the scheduling knobs. Fixed product constants in practice,
// injected so tests can tighten or stretch them.
type Config struct {
	MinLeadTime  time.Duration // minimum advance notice before a slot may start
	CacheTTL     time.Duration // how long fetched busy intervals stay cached
	FetchTimeout time.Duration // bound on a single external calendar fetch
}

// Engine computes the bookable time slots of a host over a date range.
type Engine interface {
	GetAvailableSlots(ctx context.Context, hostID string, from, to time.Time) (models.AvailabilityResult, error)
}

// DefaultEngine is the production implementation. It is stateless per
// request; only the injected cache is shared across concurrent calls.
type DefaultEngine struct {
	Hosts    hostRepo.HostRepository
	Bookings bookingRepo.BookingRepository
	Calendar BusyTimeSource
	Cache    BusyTimeCache
	Cfg      Config

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

func (e *DefaultEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// GetAvailableSlots expands the host's weekly template over every host-local
// calendar date touched by [from, to), subtracts external busy intervals and
// confirmed bookings, and drops slots starting inside the minimum lead-time
// window. An unreachable external calendar degrades to zero external
// intervals and flags the result; it never fails the call.
func (e *DefaultEngine) GetAvailableSlots(ctx context.Context, hostID string, from, to time.Time) (models.AvailabilityResult, error) {
	if !from.Before(to) {
		return models.AvailabilityResult{}, NewValidationError("date range start must be before end")
	}

	hctx, err := e.Hosts.GetAvailabilityContext(ctx, hostID)
	if err != nil {
		return models.AvailabilityResult{}, err
	}

	loc, err := time.LoadLocation(hctx.Timezone)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("host %s has unknown timezone %q: %w", hostID, hctx.Timezone, err)
	}

	busy, degraded := e.externalBusyIntervals(ctx, hostID, hctx.GoogleRefreshToken, from, to)

	bookings, err := e.Bookings.FindConfirmedInRange(ctx, hostID, from, to)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("failed to load confirmed bookings for host %s: %w", hostID, err)
	}

	minStart := e.now().Add(e.Cfg.MinLeadTime)

	days := []models.DayAvailability{}
	first := from.In(loc)
	firstMidnight := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, loc)
	for d := firstMidnight; d.Before(to); d = d.AddDate(0, 0, 1) {
		slots, err := e.availableSlotsForDay(d, hctx.BookableHours, loc, minStart, busy, bookings)
		if err != nil {
			return models.AvailabilityResult{}, err
		}
		days = append(days, models.DayAvailability{
			Date:     d.Format("2006-01-02"),
			DayLabel: d.Format("Mon 2"),
			Slots:    slots,
		})
	}

	return models.AvailabilityResult{
		HostTimezone: hctx.Timezone,
		Days:         days,
		GcalDegraded: degraded,
	}, nil
}

// externalBusyIntervals resolves the external calendar's busy intervals for
// the whole requested range, at most one upstream fetch per cache TTL.
// Fail-open: a fetch failure or timeout reports degraded mode with zero
// intervals and caches nothing, so a provider outage never makes the host
// unbookable.
func (e *DefaultEngine) externalBusyIntervals(ctx context.Context, hostID, credential string, from, to time.Time) ([]models.BusyInterval, bool) {
	if credential == "" {
		return nil, false
	}

	if cached, ok := e.Cache.Get(ctx, hostID); ok {
		return cached, false
	}

	fetchCtx, cancel := context.WithTimeout(ctx, e.Cfg.FetchTimeout)
	defer cancel()
	intervals, err := e.Calendar.BusyIntervals(fetchCtx, credential, from, to)
	if err != nil {
		utils.GetLogger().Warn("external calendar unavailable, degrading to internal bookings only",
			zap.String("hostID", hostID), zap.Error(err))
		return nil, true
	}

	e.Cache.Set(ctx, hostID, intervals, e.Cfg.CacheTTL)
	return intervals, false
}

func (e *DefaultEngine) availableSlotsForDay(
	day time.Time,
	tpl models.WeeklyTemplate,
	loc *time.Location,
	minStart time.Time,
	busy []models.BusyInterval,
	bookings []models.Booking,
) ([]models.TimeSlot, error) {
	available := []models.TimeSlot{}
	for _, slot := range ExpandDay(day, tpl, loc) {
		slotStart, err := ZonedWallClockToInstant(slot.Start, loc)
		if err != nil {
			return nil, err
		}
		slotEnd, err := ZonedWallClockToInstant(slot.End, loc)
		if err != nil {
			return nil, err
		}

		if slotStart.Before(minStart) {
			continue
		}
		if overlapsAny(slotStart, slotEnd, busy) {
			continue
		}
		blocked := false
		for _, b := range bookings {
			if Overlaps(slotStart, slotEnd, b.StartTime, b.EndTime) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		available = append(available, slot)
	}
	return available, nil
}

func overlapsAny(start, end time.Time, intervals []models.BusyInterval) bool {
	for _, iv := range intervals {
		if Overlaps(start, end, iv.Start, iv.End) {
			return true
		}
	}
	return false
}
