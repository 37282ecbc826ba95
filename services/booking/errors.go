package booking

import (
	"fmt"
	"time"

	"barberpro/models"
)

// InvalidDurationError rejects zero or negative service durations.
type InvalidDurationError struct {
	Duration time.Duration
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid service duration %s: must be positive", e.Duration)
}

// ConflictError carries the structured conflict report for a rejected
// interval. Recoverable: the caller can pick a suggested slot and retry.
type ConflictError struct {
	Report models.ConflictReport
}

func (e *ConflictError) Error() string {
	if t := e.Report.PrimaryType(); t != "" {
		return fmt.Sprintf("booking conflict: %s", t)
	}
	return "booking conflict"
}

// IllegalTransitionError names the current state and the rejected action.
type IllegalTransitionError struct {
	From   models.BookingStatus
	Action models.BookingAction
	To     models.BookingStatus
	Detail string
}

func (e *IllegalTransitionError) Error() string {
	msg := fmt.Sprintf("cannot %s booking in state %s", e.Action, e.From)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// NotFoundError indicates an unknown booking, provider, or service id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// ValidationError rejects a malformed request (e.g., oversized bulk batch).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
