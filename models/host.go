package models

import "time"

// HourRange is one wall-clock range within a weekday, e.g. {"09:00","17:00"}.
// Bounds are always exact hours; validation happens in the host service when
// the template is written, never at read time.
type HourRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// WeeklyTemplate maps lowercase weekday names ("monday".."sunday") to the
// host's recurring bookable ranges for that day.
type WeeklyTemplate map[string][]HourRange

// Host represents a service provider account.
type Host struct {
	ID                  string         `bson:"id" json:"id"`
	Name                string         `bson:"name" json:"name"`
	Email               string         `bson:"email" json:"email"`
	Slug                string         `bson:"slug,omitempty" json:"slug,omitempty"`
	Description         string         `bson:"description,omitempty" json:"description,omitempty"`
	AvatarURL           string         `bson:"avatar_url,omitempty" json:"avatarUrl,omitempty"`
	Timezone            string         `bson:"timezone" json:"timezone"` // IANA name, e.g. "Europe/Rome"
	BookableHours       WeeklyTemplate `bson:"bookable_hours,omitempty" json:"bookableHours,omitempty"`
	GoogleRefreshToken  string         `bson:"google_refresh_token,omitempty" json:"-"`
	OnboardingCompleted bool           `bson:"onboarding_completed" json:"onboardingCompleted"`
	CreatedAt           time.Time      `bson:"created_at" json:"createdAt"`
}

// HostAvailabilityContext is the read snapshot the availability engine
// consumes: the weekly template, the host's zone, and the external calendar
// credential (empty when the host never connected Google Calendar).
type HostAvailabilityContext struct {
	BookableHours      WeeklyTemplate
	Timezone           string
	GoogleRefreshToken string
}

// HostPublicProfile is the public-facing view returned on the booking page.
type HostPublicProfile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}
