package booking

import (
	"fmt"
	"math"
	"time"

	"barberpro/models"
	"barberpro/services/schedule"
	"barberpro/utils"

	"go.uber.org/zap"
)

// GetBooking fetches one booking by ID.
func (s *DefaultBookingService) GetBooking(bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}
	return b, nil
}

// UpdateStatus applies one lifecycle action to a booking.
func (s *DefaultBookingService) UpdateStatus(bookingID string, action models.BookingAction, reason, actor string) (*models.Booking, error) {
	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}

	if err := ApplyAction(b, action, reason, actor, time.Now()); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}

	// A cancellation or no-show frees the interval for other clients.
	if !b.Status.Active() {
		s.invalidateAvailability(b.ProviderID, b.Date)
	}
	return b, nil
}

// Reschedule moves a PENDING or CONFIRMED booking to a new start time,
// optionally switching the service. The new interval is conflict-checked with
// the booking itself excluded, under the claim lock for the target day.
func (s *DefaultBookingService) Reschedule(bookingID string, req models.RescheduleRequest) (*models.Booking, error) {
	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.StatusPending && b.Status != models.StatusConfirmed {
		return nil, &IllegalTransitionError{
			From:   b.Status,
			Action: models.ActionReschedule,
			Detail: "only pending or confirmed bookings can be rescheduled",
		}
	}

	serviceID := b.ServiceID
	if req.NewServiceID != "" {
		serviceID = req.NewServiceID
	}
	svc, err := s.serviceFor(b.ProviderID, serviceID)
	if err != nil {
		return nil, err
	}

	ps, err := s.scheduleFor(b.ProviderID)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(svc.Duration) * time.Minute
	start := req.NewStartTime.In(ps.location())
	end := start.Add(duration)
	dayStart := schedule.DayStart(start)
	day, dateKey := ps.dayFor(dayStart)

	unlock := s.locks.acquire(b.ProviderID, dateKey)
	defer unlock()

	existing, err := s.Repo.ListByProviderDate(b.ProviderID, dateKey)
	if err != nil {
		return nil, err
	}

	report := CheckConflicts(ConflictCheckInput{
		Start:           start,
		End:             end,
		Day:             day,
		DayStart:        dayStart,
		Existing:        existing,
		ExcludeID:       b.ID,
		BufferBefore:    time.Duration(ps.provider.BufferBefore) * time.Minute,
		BufferAfter:     time.Duration(ps.provider.BufferAfter) * time.Minute,
		ServiceDuration: duration,
		Step:            s.Opts.SlotStep,
		SuggestionCount: s.Opts.SuggestionCount,
	})
	if !report.Available {
		return nil, &ConflictError{Report: report}
	}

	now := time.Now()
	oldDate := b.Date
	oldStart := b.StartTime

	b.ServiceID = serviceID
	b.TotalAmount = svc.Price
	b.Date = dateKey
	b.StartTime = start
	b.EndTime = end
	b.UpdatedAt = now
	b.AppendEvent("rescheduled", req.Actor,
		fmt.Sprintf("moved from %s to %s", oldStart.Format(time.RFC3339), start.Format(time.RFC3339)), now)

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}

	s.invalidateAvailability(b.ProviderID, oldDate)
	if dateKey != oldDate {
		s.invalidateAvailability(b.ProviderID, dateKey)
	}
	return b, nil
}

// BulkUpdate applies one action to up to Opts.BulkLimit bookings. Each booking
// succeeds or fails on its own; the result partitions the batch.
func (s *DefaultBookingService) BulkUpdate(req models.BulkUpdateRequest) (*models.BulkUpdateResult, error) {
	if len(req.BookingIDs) == 0 {
		return nil, &ValidationError{Message: "bookingIds must not be empty"}
	}
	if limit := s.Opts.BulkLimit; limit > 0 && len(req.BookingIDs) > limit {
		return nil, &ValidationError{Message: fmt.Sprintf("bulk updates are limited to %d bookings", limit)}
	}
	if req.Action == models.ActionReschedule && req.NewDateTime == nil {
		return nil, &ValidationError{Message: "newDateTime is required for bulk reschedule"}
	}

	result := &models.BulkUpdateResult{
		Successful: []string{},
		Failed:     []models.BulkFailure{},
	}
	for _, id := range req.BookingIDs {
		var err error
		if req.Action == models.ActionReschedule {
			_, err = s.Reschedule(id, models.RescheduleRequest{
				NewStartTime: *req.NewDateTime,
				Reason:       req.Reason,
				Actor:        req.Actor,
			})
		} else {
			_, err = s.UpdateStatus(id, req.Action, req.Reason, req.Actor)
		}
		if err != nil {
			result.Failed = append(result.Failed, models.BulkFailure{BookingID: id, Error: err.Error()})
			continue
		}
		result.Successful = append(result.Successful, id)
	}

	result.Summary = models.BulkSummary{
		Total:      len(req.BookingIDs),
		Successful: len(result.Successful),
		Failed:     len(result.Failed),
	}
	utils.GetLogger().Info("bulk booking update",
		zap.String("action", string(req.Action)),
		zap.Int("total", result.Summary.Total),
		zap.Int("failed", result.Summary.Failed),
	)
	return result, nil
}

// Search returns one page of bookings matching the query.
func (s *DefaultBookingService) Search(q models.BookingSearchQuery) (*models.BookingSearchResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	bookings, total, err := s.Repo.Search(q)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(q.Limit)))
	return &models.BookingSearchResult{
		Bookings: bookings,
		Pagination: models.Pagination{
			Page:       q.Page,
			Limit:      q.Limit,
			TotalCount: total,
			TotalPages: totalPages,
			HasNext:    q.Page < totalPages,
			HasPrev:    q.Page > 1,
		},
	}, nil
}
