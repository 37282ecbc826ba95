package booking

import (
	"fmt"
	"sort"
	"time"

	"barberpro/models"
)

// ConflictCheckInput carries everything CheckConflicts needs. The check is
// pure and deterministic: no clock, repository, or network access beyond what
// is passed in here.
type ConflictCheckInput struct {
	Start    time.Time
	End      time.Time
	Day      *models.DayHours // effective hours for the date, nil when closed
	DayStart time.Time        // provider-local midnight of the date
	Existing []models.Booking // bookings on that date, any status
	// ExcludeID is skipped in overlap/buffer checks (the booking being
	// rescheduled must not conflict with itself).
	ExcludeID    string
	BufferBefore time.Duration
	BufferAfter  time.Duration
	// Suggestion parameters: the service duration and step used to enumerate
	// alternative slots, and how many to return.
	ServiceDuration time.Duration
	Step            time.Duration
	SuggestionCount int
}

// CheckConflicts validates a proposed interval against the effective day
// window, breaks, existing bookings, and buffer rules. Conflicts are collected
// in precedence order (OUTSIDE_HOURS, BREAK_TIME, OVERLAP, BUFFER_VIOLATION);
// the first entry is the primary conflict but all applicable ones are
// reported. When unavailable, the report carries the nearest alternative slots
// on the same date, ordered by distance from the requested start time.
func CheckConflicts(in ConflictCheckInput) models.ConflictReport {
	var conflicts []models.Conflict

	startMin := models.TimeOfDay(int(in.Start.Sub(in.DayStart) / time.Minute))
	endMin := models.TimeOfDay(int(in.End.Sub(in.DayStart) / time.Minute))

	if in.Day == nil || !in.Day.Contains(startMin, endMin) {
		msg := "requested time is outside the provider's working hours"
		if in.Day == nil {
			msg = "the provider is closed on this date"
		}
		conflicts = append(conflicts, models.Conflict{
			Type:    models.ConflictOutsideHours,
			Message: msg,
		})
	}

	if in.Day != nil {
		if br := in.Day.OverlappingBreak(startMin, endMin); br != nil {
			conflicts = append(conflicts, models.Conflict{
				Type:    models.ConflictBreakTime,
				Message: fmt.Sprintf("requested time falls within a break (%s-%s)", br.Start, br.End),
			})
		}
	}

	for i := range in.Existing {
		b := in.Existing[i]
		if b.ID == in.ExcludeID || !b.Status.Active() {
			continue
		}
		if b.Overlaps(in.Start, in.End) {
			conflicts = append(conflicts, models.Conflict{
				Type:               models.ConflictOverlap,
				Message:            fmt.Sprintf("overlaps existing booking %s", b.ID),
				ConflictingBooking: &in.Existing[i],
			})
		}
	}

	if in.BufferBefore > 0 || in.BufferAfter > 0 {
		for i := range in.Existing {
			b := in.Existing[i]
			if b.ID == in.ExcludeID || !b.Status.Active() || b.Overlaps(in.Start, in.End) {
				continue
			}
			// An adjacent booking violates the buffer when it intrudes on the
			// idle time required around the requested interval.
			if b.Overlaps(in.Start.Add(-in.BufferBefore), in.End.Add(in.BufferAfter)) {
				conflicts = append(conflicts, models.Conflict{
					Type:               models.ConflictBufferViolation,
					Message:            fmt.Sprintf("too close to existing booking %s: buffer time required", b.ID),
					ConflictingBooking: &in.Existing[i],
				})
			}
		}
	}

	if len(conflicts) == 0 {
		return models.ConflictReport{Available: true}
	}

	return models.ConflictReport{
		Available:      false,
		Conflicts:      conflicts,
		SuggestedSlots: suggestSlots(in),
	}
}

// suggestSlots enumerates the still-available slots for the date and keeps the
// nearest N to the requested start, ties broken by the earlier slot.
func suggestSlots(in ConflictCheckInput) []models.TimeSlot {
	count := in.SuggestionCount
	if count <= 0 {
		count = 3
	}
	duration := in.ServiceDuration
	if duration <= 0 {
		duration = in.End.Sub(in.Start)
	}

	slots, err := GenerateSlots(in.Day, in.DayStart, duration, in.BufferBefore, in.BufferAfter, in.Step, in.Existing)
	if err != nil || len(slots) == 0 {
		return nil
	}

	sort.SliceStable(slots, func(i, j int) bool {
		di := absDuration(slots[i].Start.Sub(in.Start))
		dj := absDuration(slots[j].Start.Sub(in.Start))
		if di == dj {
			return slots[i].Start.Before(slots[j].Start)
		}
		return di < dj
	})
	if len(slots) > count {
		slots = slots[:count]
	}
	return slots
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
