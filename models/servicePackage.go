package models

import "time"

// ServicePackage is a bookable offering a host sells (e.g. "5 sessions").
// A package with a zero price and a single session is the free intro offer
// shown first on the public page.
type ServicePackage struct {
	ID           string    `bson:"id" json:"id"`
	HostID       string    `bson:"host_id" json:"hostId"`
	Name         string    `bson:"name" json:"name"`
	SessionCount int       `bson:"session_count" json:"sessionCount"`
	PriceInCents int       `bson:"price_in_cents" json:"priceInCents"`
	IsFreeIntro  bool      `bson:"is_free_intro" json:"isFreeIntro"`
	IsActive     bool      `bson:"is_active" json:"isActive"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
