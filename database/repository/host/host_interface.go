package hostRepo

import (
	"context"
	"errors"

	"hostly/models"
)

// ErrHostNotFound is returned when the host id or slug resolves to nothing.
var ErrHostNotFound = errors.New("host not found")

// HostRepository defines persistence for host accounts and their settings.
type HostRepository interface {
	GetByID(ctx context.Context, id string) (*models.Host, error)
	GetBySlug(ctx context.Context, slug string) (*models.Host, error)
	// GetAvailabilityContext returns the read snapshot the availability
	// engine consumes. Constructed fresh per call, never cached.
	GetAvailabilityContext(ctx context.Context, id string) (*models.HostAvailabilityContext, error)
	Create(ctx context.Context, host *models.Host) error
	UpdateProfile(ctx context.Context, id string, name, description, slug string) error
	UpdateBookableHours(ctx context.Context, id string, hours models.WeeklyTemplate) error
	UpdateGoogleRefreshToken(ctx context.Context, id string, token string) error
	IsSlugTaken(ctx context.Context, slug string, excludeHostID string) (bool, error)
	EnsureIndexes() error
}
