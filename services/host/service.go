package host

import (
	"context"
	"time"

	hostRepo "hostly/database/repository/host"
	"hostly/models"
	"hostly/utils"

	"go.uber.org/zap"
)

// UpdateProfileInput carries the host-editable profile fields.
type UpdateProfileInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

// HostService manages host profiles and availability settings. The bookable
// template is mutated only here; the availability engine reads it as-is.
type HostService interface {
	GetPublicProfile(ctx context.Context, slug string) (*models.HostPublicProfile, error)
	UpdateProfile(ctx context.Context, hostID string, input UpdateProfileInput) error
	UpdateBookableHours(ctx context.Context, hostID string, hours models.WeeklyTemplate) error
	UpdateGoogleRefreshToken(ctx context.Context, hostID string, token string) error
}

// DefaultHostService implements HostService.
type DefaultHostService struct {
	Repo hostRepo.HostRepository
}

func (s *DefaultHostService) GetPublicProfile(ctx context.Context, slug string) (*models.HostPublicProfile, error) {
	h, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &models.HostPublicProfile{
		ID:          h.ID,
		Name:        h.Name,
		Slug:        h.Slug,
		Description: h.Description,
		AvatarURL:   h.AvatarURL,
	}, nil
}

func (s *DefaultHostService) UpdateProfile(ctx context.Context, hostID string, input UpdateProfileInput) error {
	if input.Name == "" {
		return NewValidationError("name is required")
	}
	if len(input.Name) > 100 {
		return NewValidationError("name must be at most 100 characters")
	}
	if len(input.Description) > 500 {
		return NewValidationError("description must be at most 500 characters")
	}
	if err := ValidateSlug(input.Slug); err != nil {
		return err
	}

	taken, err := s.Repo.IsSlugTaken(ctx, input.Slug, hostID)
	if err != nil {
		return err
	}
	if taken {
		return NewSlugTakenError(input.Slug)
	}

	return s.Repo.UpdateProfile(ctx, hostID, input.Name, input.Description, input.Slug)
}

func (s *DefaultHostService) UpdateBookableHours(ctx context.Context, hostID string, hours models.WeeklyTemplate) error {
	if err := ValidateWeeklyTemplate(hours); err != nil {
		return err
	}
	if err := s.Repo.UpdateBookableHours(ctx, hostID, hours); err != nil {
		return err
	}
	utils.GetLogger().Info("bookable hours updated",
		zap.String("hostID", hostID), zap.Int("weekdays", len(hours)))
	return nil
}

func (s *DefaultHostService) UpdateGoogleRefreshToken(ctx context.Context, hostID string, token string) error {
	if token == "" {
		return NewValidationError("refresh token is required")
	}
	if err := s.Repo.UpdateGoogleRefreshToken(ctx, hostID, token); err != nil {
		return err
	}
	utils.GetLogger().Info("google calendar credential stored",
		zap.String("hostID", hostID), zap.Time("at", time.Now()))
	return nil
}
