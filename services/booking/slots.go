package booking

import (
	"time"

	"barberpro/models"
)

const dateLayout = "2006-01-02"

// GenerateSlots produces the available slots for one provider date. It is a
// pure function of its inputs: the effective day hours (nil when closed), the
// provider-local midnight of the date, the requested service duration with its
// buffers, the candidate step granularity, and the bookings already on the
// books for that date (any status; non-active ones are ignored).
//
// Emitted slots are in ascending start order and all carry Available=true;
// unavailable times are simply absent. A duration longer than the whole open
// window yields an empty result, not an error.
func GenerateSlots(
	day *models.DayHours,
	dayStart time.Time,
	duration, bufferBefore, bufferAfter, step time.Duration,
	existing []models.Booking,
) ([]models.TimeSlot, error) {
	if duration <= 0 {
		return nil, &InvalidDurationError{Duration: duration}
	}
	if day == nil || !day.IsOpen {
		return nil, nil
	}
	if step <= 0 {
		step = duration
	}

	open := day.OpenTime.Minutes()
	close := day.CloseTime.Minutes()
	dur := int(duration / time.Minute)
	bufB := int(bufferBefore / time.Minute)
	bufA := int(bufferAfter / time.Minute)
	stepMin := int(step / time.Minute)
	if stepMin <= 0 {
		stepMin = 1
	}

	// Booking intervals in minutes from the day's midnight.
	type span struct{ start, end int }
	var booked []span
	for _, b := range existing {
		if !b.Status.Active() {
			continue
		}
		booked = append(booked, span{
			start: int(b.StartTime.Sub(dayStart) / time.Minute),
			end:   int(b.EndTime.Sub(dayStart) / time.Minute),
		})
	}

	var slots []models.TimeSlot
	for start := open; start+dur <= close; start += stepMin {
		padStart := start - bufB
		padEnd := start + dur + bufA
		if padStart < open || padEnd > close {
			continue
		}
		if day.OverlappingBreak(models.TimeOfDay(padStart), models.TimeOfDay(padEnd)) != nil {
			continue
		}
		conflict := false
		for _, s := range booked {
			if padStart < s.end && s.start < padEnd {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		slots = append(slots, models.TimeSlot{
			Start:        dayStart.Add(time.Duration(start) * time.Minute),
			End:          dayStart.Add(time.Duration(start+dur) * time.Minute),
			Available:    true,
			BufferBefore: bufferBefore,
			BufferAfter:  bufferAfter,
		})
	}
	return slots, nil
}
