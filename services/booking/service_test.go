package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	bookingRepo "hostly/database/repository/booking"
	hostRepo "hostly/database/repository/host"
	"hostly/models"
)

// memBookingRepo mirrors the store contract: the confirmed check-then-insert
// is atomic, so exactly one caller can hold a (host, start) pair.
type memBookingRepo struct {
	mu        sync.Mutex
	confirmed map[string]models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{confirmed: make(map[string]models.Booking)}
}

func bookingKey(hostID string, start time.Time) string {
	return hostID + "|" + start.UTC().Format(time.RFC3339)
}

func (r *memBookingRepo) CreateConfirmed(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := bookingKey(b.HostID, b.StartTime)
	if _, exists := r.confirmed[key]; exists {
		return bookingRepo.ErrSlotTaken
	}
	r.confirmed[key] = *b
	return nil
}

func (r *memBookingRepo) FindConfirmedInRange(ctx context.Context, hostID string, from, to time.Time) ([]models.Booking, error) {
	panic("FindConfirmedInRange not configured")
}

func (r *memBookingRepo) GetByID(context.Context, string) (*models.Booking, error) {
	panic("GetByID not configured")
}

func (r *memBookingRepo) EnsureIndexes() error { panic("EnsureIndexes not configured") }

type fakeHostRepo struct {
	host *models.Host
	err  error
}

func (f *fakeHostRepo) GetByID(context.Context, string) (*models.Host, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.host, nil
}

func (f *fakeHostRepo) GetBySlug(context.Context, string) (*models.Host, error) {
	panic("GetBySlug not configured")
}
func (f *fakeHostRepo) GetAvailabilityContext(context.Context, string) (*models.HostAvailabilityContext, error) {
	panic("GetAvailabilityContext not configured")
}
func (f *fakeHostRepo) Create(context.Context, *models.Host) error { panic("Create not configured") }
func (f *fakeHostRepo) UpdateProfile(context.Context, string, string, string, string) error {
	panic("UpdateProfile not configured")
}
func (f *fakeHostRepo) UpdateBookableHours(context.Context, string, models.WeeklyTemplate) error {
	panic("UpdateBookableHours not configured")
}
func (f *fakeHostRepo) UpdateGoogleRefreshToken(context.Context, string, string) error {
	panic("UpdateGoogleRefreshToken not configured")
}
func (f *fakeHostRepo) IsSlugTaken(context.Context, string, string) (bool, error) {
	panic("IsSlugTaken not configured")
}
func (f *fakeHostRepo) EnsureIndexes() error { panic("EnsureIndexes not configured") }

// recordingCache records invalidations; everything else misses.
type recordingCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (c *recordingCache) Get(context.Context, string) ([]models.BusyInterval, bool) {
	return nil, false
}

func (c *recordingCache) Set(context.Context, string, []models.BusyInterval, time.Duration) {}

func (c *recordingCache) Invalidate(_ context.Context, hostID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, hostID)
}

func romeHost() *models.Host {
	return &models.Host{ID: "host-1", Timezone: "Europe/Rome"}
}

func validInput() CreateBookingInput {
	rome, _ := time.LoadLocation("Europe/Rome")
	start := time.Date(2026, 2, 16, 14, 0, 0, 0, rome)
	return CreateBookingInput{
		HostID:     "host-1",
		CustomerID: "customer-1",
		PackageID:  "package-1",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	}
}

func newService(repo bookingRepo.BookingRepository, cache *recordingCache) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:  repo,
		Hosts: &fakeHostRepo{host: romeHost()},
		Cache: cache,
	}
}

func TestCreateConfirmedBookingSuccess(t *testing.T) {
	repo := newMemBookingRepo()
	cache := &recordingCache{}
	svc := newService(repo, cache)
	input := validInput()

	created, err := svc.CreateConfirmedBooking(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("booking ID must be assigned")
	}
	if created.Status != models.BookingStatusConfirmed {
		t.Errorf("Status = %s, want confirmed", created.Status)
	}
	if !created.StartTime.Equal(input.StartTime) {
		t.Errorf("StartTime = %v, want %v", created.StartTime, input.StartTime)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != "host-1" {
		t.Errorf("cache invalidations = %v, want [host-1]", cache.invalidated)
	}
}

func TestCreateConfirmedBookingSlotTaken(t *testing.T) {
	repo := newMemBookingRepo()
	cache := &recordingCache{}
	svc := newService(repo, cache)
	input := validInput()

	if _, err := svc.CreateConfirmedBooking(context.Background(), input); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	input.CustomerID = "customer-2"
	_, err := svc.CreateConfirmedBooking(context.Background(), input)
	var slotErr *SlotTakenError
	if !errors.As(err, &slotErr) {
		t.Fatalf("error type = %T, want *SlotTakenError", err)
	}
	if slotErr.Code != "SLOT_TAKEN" {
		t.Errorf("Code = %s, want SLOT_TAKEN", slotErr.Code)
	}
	// The loser must not have invalidated the cache.
	if len(cache.invalidated) != 1 {
		t.Errorf("cache invalidations = %d, want 1", len(cache.invalidated))
	}
}

func TestCreateConfirmedBookingConflictLaw(t *testing.T) {
	repo := newMemBookingRepo()
	svc := newService(repo, &recordingCache{})
	input := validInput()

	const racers = 8
	var wg sync.WaitGroup
	results := make(chan error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateConfirmedBooking(context.Background(), input)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	winners, losers := 0, 0
	for err := range results {
		switch {
		case err == nil:
			winners++
		default:
			var slotErr *SlotTakenError
			if !errors.As(err, &slotErr) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			losers++
		}
	}
	if winners != 1 {
		t.Errorf("winners = %d, want exactly 1", winners)
	}
	if losers != racers-1 {
		t.Errorf("losers = %d, want %d", losers, racers-1)
	}
	if len(repo.confirmed) != 1 {
		t.Errorf("stored bookings = %d, want 1", len(repo.confirmed))
	}
}

func TestCreateConfirmedBookingValidation(t *testing.T) {
	rome, _ := time.LoadLocation("Europe/Rome")
	base := validInput()

	tests := []struct {
		name   string
		mutate func(*CreateBookingInput)
	}{
		{"missing host", func(i *CreateBookingInput) { i.HostID = "" }},
		{"missing customer", func(i *CreateBookingInput) { i.CustomerID = "" }},
		{"missing package", func(i *CreateBookingInput) { i.PackageID = "" }},
		{"inverted range", func(i *CreateBookingInput) { i.EndTime = i.StartTime.Add(-time.Hour) }},
		{"zero-length", func(i *CreateBookingInput) { i.EndTime = i.StartTime }},
		{"two-hour span", func(i *CreateBookingInput) { i.EndTime = i.StartTime.Add(2 * time.Hour) }},
		{"off-hour start", func(i *CreateBookingInput) {
			i.StartTime = time.Date(2026, 2, 16, 14, 30, 0, 0, rome)
			i.EndTime = i.StartTime.Add(time.Hour)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(newMemBookingRepo(), &recordingCache{})
			input := base
			tt.mutate(&input)

			_, err := svc.CreateConfirmedBooking(context.Background(), input)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error type = %T (%v), want *ValidationError", err, err)
			}
		})
	}
}

func TestCreateConfirmedBookingHourBoundaryIsHostLocal(t *testing.T) {
	// Asia/Kolkata is UTC+5:30: 03:30Z is exactly 09:00 local. The hour
	// boundary check must follow the host's wall clock, not UTC.
	svc := newService(newMemBookingRepo(), &recordingCache{})
	svc.Hosts = &fakeHostRepo{host: &models.Host{ID: "host-1", Timezone: "Asia/Kolkata"}}

	input := validInput()
	input.StartTime = time.Date(2026, 2, 16, 3, 30, 0, 0, time.UTC)
	input.EndTime = input.StartTime.Add(time.Hour)

	if _, err := svc.CreateConfirmedBooking(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// And 04:00Z (09:30 local) must be rejected.
	input.StartTime = time.Date(2026, 2, 16, 4, 0, 0, 0, time.UTC)
	input.EndTime = input.StartTime.Add(time.Hour)
	_, err := svc.CreateConfirmedBooking(context.Background(), input)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T (%v), want *ValidationError", err, err)
	}
}

func TestCreateConfirmedBookingHostNotFound(t *testing.T) {
	svc := newService(newMemBookingRepo(), &recordingCache{})
	svc.Hosts = &fakeHostRepo{err: hostRepo.ErrHostNotFound}

	_, err := svc.CreateConfirmedBooking(context.Background(), validInput())
	if !errors.Is(err, hostRepo.ErrHostNotFound) {
		t.Fatalf("error = %v, want ErrHostNotFound", err)
	}
}
