package models

// ScheduleConflictType classifies why an existing booking no longer fits a
// proposed schedule.
type ScheduleConflictType string

const (
	ScheduleDayClosed     ScheduleConflictType = "day_closed"
	ScheduleOutsideHours  ScheduleConflictType = "outside_hours"
	ScheduleBreakConflict ScheduleConflictType = "break_conflict"
)

// ScheduleConflict is one booking stranded by a proposed schedule change.
type ScheduleConflict struct {
	Type      ScheduleConflictType `json:"type"`
	BookingID string               `json:"bookingId"`
	Date      string               `json:"date"`
	StartTime TimeOfDay            `json:"startTime"`
	EndTime   TimeOfDay            `json:"endTime"`
	Message   string               `json:"message"`
}

// ScheduleValidationResult reports the impact of a proposed schedule change on
// the provider's existing active bookings before anything is persisted.
type ScheduleValidationResult struct {
	HasConflicts         bool               `json:"hasConflicts"`
	Conflicts            []ScheduleConflict `json:"conflicts"`
	TotalBookingsChecked int                `json:"totalBookingsChecked"`
	CanApplyChanges      bool               `json:"canApplyChanges"`
}
