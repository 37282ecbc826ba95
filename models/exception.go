package models

import "time"

// ExceptionType distinguishes the two kinds of date-specific overrides.
type ExceptionType string

const (
	// ExceptionClosed makes the whole day unavailable.
	ExceptionClosed ExceptionType = "closed"
	// ExceptionSpecialHours replaces the day's normal hours for that date.
	ExceptionSpecialHours ExceptionType = "special_hours"
)

// Valid reports whether t is a known exception type.
func (t ExceptionType) Valid() bool {
	return t == ExceptionClosed || t == ExceptionSpecialHours
}

// ScheduleException overrides a provider's weekly hours on a specific date.
// Non-recurring exceptions apply to the exact Date ("2006-01-02"); recurring
// ones apply to every year's matching month-day (e.g., an annual holiday).
type ScheduleException struct {
	ID           string        `bson:"id" json:"id"`
	ProviderID   string        `bson:"providerId" json:"providerId"`
	Date         string        `bson:"date" json:"date"` // "2006-01-02"
	Type         ExceptionType `bson:"type" json:"type"`
	SpecialHours *DayHours     `bson:"specialHours,omitempty" json:"specialHours,omitempty"`
	Reason       string        `bson:"reason,omitempty" json:"reason,omitempty"`
	Recurring    bool          `bson:"recurring" json:"recurring"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
}

// MonthDay returns the "01-02" key used to match recurring exceptions.
func (e ScheduleException) MonthDay() string {
	if len(e.Date) == len("2006-01-02") {
		return e.Date[5:]
	}
	return e.Date
}
