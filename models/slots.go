package models

import "time"

// TimeSlot is a bookable interval of exactly the requested service duration.
// Slots are derived on demand from working hours, exceptions and existing
// bookings; they are never persisted. Absence of a slot means unavailable.
type TimeSlot struct {
	Start        time.Time     `json:"start"`
	End          time.Time     `json:"end"`
	Available    bool          `json:"available"`
	BufferBefore time.Duration `json:"bufferBefore,omitempty"`
	BufferAfter  time.Duration `json:"bufferAfter,omitempty"`
}

// DailyAvailability is the availability view for one provider/service/date.
type DailyAvailability struct {
	ProviderID   string     `json:"providerId"`
	ServiceID    string     `json:"serviceId"`
	Date         string     `json:"date"`
	Slots        []TimeSlot `json:"availableSlots"`
	Count        int        `json:"count"`
	WorkingHours *DayHours  `json:"workingHours,omitempty"` // effective hours for the date, nil when closed
}
