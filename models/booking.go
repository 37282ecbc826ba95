package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "PENDING"
	StatusConfirmed  BookingStatus = "CONFIRMED"
	StatusInProgress BookingStatus = "IN_PROGRESS"
	StatusCompleted  BookingStatus = "COMPLETED"
	StatusCancelled  BookingStatus = "CANCELLED"
	StatusNoShow     BookingStatus = "NO_SHOW"
)

// Terminal reports whether no further transitions are allowed from s.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// Active reports whether a booking in state s still occupies its interval for
// conflict-detection purposes.
func (s BookingStatus) Active() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusInProgress
}

// CancelReasonExpired marks bookings cancelled by the expiration sweep rather
// than by a user.
const CancelReasonExpired = "EXPIRED"

// BookingAction is a requested status transition.
type BookingAction string

const (
	ActionConfirm    BookingAction = "confirm"
	ActionStart      BookingAction = "start"
	ActionComplete   BookingAction = "complete"
	ActionCancel     BookingAction = "cancel"
	ActionNoShow     BookingAction = "no_show"
	ActionReschedule BookingAction = "reschedule"
)

// TimelineEvent is one entry in a booking's append-only history.
type TimelineEvent struct {
	Event       string    `bson:"event" json:"event"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
	Actor       string    `bson:"actor,omitempty" json:"actor,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
}

// Booking is a confirmed-or-pending appointment between a client and a
// provider for one service. Bookings are never deleted; cancellation is a
// status change.
type Booking struct {
	ID           string          `bson:"id" json:"id"`
	ClientID     string          `bson:"clientId" json:"clientId"`
	ProviderID   string          `bson:"providerId" json:"providerId"`
	ServiceID    string          `bson:"serviceId" json:"serviceId"`
	Date         string          `bson:"date" json:"date"` // provider-local "2006-01-02", denormalized for day queries
	StartTime    time.Time       `bson:"startTime" json:"startTime"`
	EndTime      time.Time       `bson:"endTime" json:"endTime"`
	Status       BookingStatus   `bson:"status" json:"status"`
	TotalAmount  float64         `bson:"totalAmount" json:"totalAmount"`
	Notes        string          `bson:"notes,omitempty" json:"notes,omitempty"`
	CancelReason string          `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	Timeline     []TimelineEvent `bson:"timeline,omitempty" json:"timeline,omitempty"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// Overlaps reports whether the booking's interval intersects [start, end)
// using half-open comparison: adjacent intervals do not overlap.
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && start.Before(b.EndTime)
}

// AppendEvent records a timeline entry on the booking.
func (b *Booking) AppendEvent(event, actor, description string, at time.Time) {
	b.Timeline = append(b.Timeline, TimelineEvent{
		Event:       event,
		Timestamp:   at,
		Actor:       actor,
		Description: description,
	})
}

// BookingRequest is the input for creating a booking.
type BookingRequest struct {
	ProviderID string    `json:"providerId" binding:"required"`
	ServiceID  string    `json:"serviceId" binding:"required"`
	ClientID   string    `json:"clientId" binding:"required"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	Notes      string    `json:"notes,omitempty"`
}

// RescheduleRequest moves a booking to a new start time, optionally switching
// the service (which re-derives the end time from the new duration).
type RescheduleRequest struct {
	NewStartTime time.Time `json:"newStartTime" binding:"required"`
	NewServiceID string    `json:"newServiceId,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	Actor        string    `json:"-"`
}

// BulkUpdateRequest applies one action to several bookings independently.
type BulkUpdateRequest struct {
	BookingIDs  []string      `json:"bookingIds" binding:"required"`
	Action      BookingAction `json:"action" binding:"required"`
	Reason      string        `json:"reason,omitempty"`
	NewDateTime *time.Time    `json:"newDateTime,omitempty"` // required for reschedule
	Actor       string        `json:"-"`
}

// BulkFailure reports one booking that could not be updated.
type BulkFailure struct {
	BookingID string `json:"bookingId"`
	Error     string `json:"error"`
}

// BulkSummary totals a bulk operation's outcome.
type BulkSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// BulkUpdateResult partitions a bulk operation per booking. Partial failure is
// the expected shape; the batch itself never aborts.
type BulkUpdateResult struct {
	Successful []string      `json:"successful"`
	Failed     []BulkFailure `json:"failed"`
	Summary    BulkSummary   `json:"summary"`
}

// BookingSearchQuery filters the booking list endpoint.
type BookingSearchQuery struct {
	ProviderID string          `form:"providerId"`
	ClientID   string          `form:"clientId"`
	Statuses   []BookingStatus `form:"status"`
	ServiceID  string          `form:"serviceId"`
	From       *time.Time      `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To         *time.Time      `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Page       int             `form:"page,default=1"`
	Limit      int             `form:"limit,default=20"`
}

// Pagination describes one page of search results.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// BookingSearchResult is one page of bookings plus pagination metadata.
type BookingSearchResult struct {
	Bookings   []Booking  `json:"bookings"`
	Pagination Pagination `json:"pagination"`
}
