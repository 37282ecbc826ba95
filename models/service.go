package models

import "time"

// Service is one bookable offering in a provider's catalog. Duration drives
// slot generation; a booking's end time is derived from it at creation time.
type Service struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	Name       string    `bson:"name" json:"name"`
	Category   string    `bson:"category,omitempty" json:"category,omitempty"`
	Duration   int       `bson:"duration" json:"duration"` // minutes
	Price      float64   `bson:"price" json:"price"`
	IsActive   bool      `bson:"isActive" json:"isActive"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
