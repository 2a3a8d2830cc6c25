package packageRepo

import (
	"context"
	"errors"

	"hostly/models"
)

// ErrPackageNotFound is returned when the package id does not exist for the
// given host.
var ErrPackageNotFound = errors.New("package not found")

// PackageRepository defines persistence for a host's service packages.
type PackageRepository interface {
	Create(ctx context.Context, pkg *models.ServicePackage) error
	ListByHost(ctx context.Context, hostID string) ([]models.ServicePackage, error)
	// ListActiveByHost returns active packages, free intro offers first.
	ListActiveByHost(ctx context.Context, hostID string) ([]models.ServicePackage, error)
	FindByID(ctx context.Context, id, hostID string) (*models.ServicePackage, error)
	Update(ctx context.Context, id, hostID string, name string, sessionCount, priceInCents int) error
	Deactivate(ctx context.Context, id, hostID string) error
}
