package models

// ConflictType classifies why a proposed booking interval was rejected.
type ConflictType string

const (
	ConflictOverlap         ConflictType = "OVERLAP"
	ConflictBufferViolation ConflictType = "BUFFER_VIOLATION"
	ConflictOutsideHours    ConflictType = "OUTSIDE_HOURS"
	ConflictBreakTime       ConflictType = "BREAK_TIME"
)

// Conflict describes a single reason a proposed interval cannot be booked.
type Conflict struct {
	Type               ConflictType `json:"type"`
	Message            string       `json:"message"`
	ConflictingBooking *Booking     `json:"conflictingBooking,omitempty"`
}

// ConflictReport is the full result of checking a proposed interval. When the
// interval is unavailable, SuggestedSlots holds the nearest alternatives on the
// same date, ordered by distance from the requested start time.
type ConflictReport struct {
	Available      bool       `json:"available"`
	Conflicts      []Conflict `json:"conflicts,omitempty"`
	SuggestedSlots []TimeSlot `json:"suggestedSlots,omitempty"`
}

// PrimaryType returns the conflict type with the highest precedence, or ""
// when the report is clean. Conflicts are already ordered by precedence.
func (r ConflictReport) PrimaryType() ConflictType {
	if len(r.Conflicts) == 0 {
		return ""
	}
	return r.Conflicts[0].Type
}
