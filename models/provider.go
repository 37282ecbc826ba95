package models

import "time"

// Provider is a business offering bookable services (barbershop, salon, spa).
// Working hours and timezone live on the provider document; exceptions are
// stored separately and resolved per date.
type Provider struct {
	ID           string       `bson:"id" json:"id"`
	UserID       string       `bson:"userId" json:"userId"`
	BusinessName string       `bson:"businessName" json:"businessName"`
	Description  string       `bson:"description,omitempty" json:"description,omitempty"`
	Address      string       `bson:"address,omitempty" json:"address,omitempty"`
	Phone        string       `bson:"phone,omitempty" json:"phone,omitempty"`
	Email        string       `bson:"email,omitempty" json:"email,omitempty"`
	Timezone     string       `bson:"timezone" json:"timezone"` // IANA name, e.g. "America/Argentina/Buenos_Aires"
	WorkingHours WorkingHours `bson:"workingHours" json:"workingHours"`
	BufferBefore int          `bson:"bufferBefore,omitempty" json:"bufferBefore,omitempty"` // minutes of idle time required before each booking
	BufferAfter  int          `bson:"bufferAfter,omitempty" json:"bufferAfter,omitempty"`   // minutes of idle time required after each booking
	Rating       float64      `bson:"rating,omitempty" json:"rating,omitempty"`
	IsActive     bool         `bson:"isActive" json:"isActive"`
	IsVerified   bool         `bson:"isVerified" json:"isVerified"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// ScheduleView is the read shape of a provider's schedule.
type ScheduleView struct {
	ProviderID   string       `json:"providerId"`
	ProviderName string       `json:"providerName"`
	WorkingHours WorkingHours `json:"workingHours"`
	Timezone     string       `json:"timezone"`
	LastUpdated  time.Time    `json:"lastUpdated"`
}
