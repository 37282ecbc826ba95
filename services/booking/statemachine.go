package booking

import (
	"time"

	"barberpro/models"
)

// transitions is the closed table of legal status changes. Anything absent
// here fails with IllegalTransitionError.
var transitions = map[models.BookingStatus]map[models.BookingStatus]bool{
	models.StatusPending: {
		models.StatusConfirmed: true,
		models.StatusCancelled: true,
	},
	models.StatusConfirmed: {
		models.StatusInProgress: true,
		models.StatusCancelled:  true,
		models.StatusNoShow:     true,
	},
	models.StatusInProgress: {
		models.StatusCompleted: true,
	},
}

// CanTransition reports whether from→to is a legal status change.
func CanTransition(from, to models.BookingStatus) bool {
	return transitions[from][to]
}

// actionTargets maps user-facing actions to their target status.
var actionTargets = map[models.BookingAction]models.BookingStatus{
	models.ActionConfirm:  models.StatusConfirmed,
	models.ActionStart:    models.StatusInProgress,
	models.ActionComplete: models.StatusCompleted,
	models.ActionCancel:   models.StatusCancelled,
	models.ActionNoShow:   models.StatusNoShow,
}

// actionEvents names the timeline entry written for each action.
var actionEvents = map[models.BookingAction]string{
	models.ActionConfirm:  "confirmed",
	models.ActionStart:    "started",
	models.ActionComplete: "completed",
	models.ActionCancel:   "cancelled",
	models.ActionNoShow:   "no_show",
}

// ApplyAction performs one status transition on the booking, recording a
// timeline event. The booking is left untouched when the transition is
// illegal.
func ApplyAction(b *models.Booking, action models.BookingAction, reason, actor string, now time.Time) error {
	target, ok := actionTargets[action]
	if !ok {
		return &IllegalTransitionError{From: b.Status, Action: action, Detail: "unknown action"}
	}
	if !CanTransition(b.Status, target) {
		return &IllegalTransitionError{From: b.Status, Action: action, To: target}
	}
	if action == models.ActionNoShow && now.Before(b.StartTime) {
		return &IllegalTransitionError{
			From:   b.Status,
			Action: action,
			To:     target,
			Detail: "start time has not passed yet",
		}
	}

	b.Status = target
	if action == models.ActionCancel {
		b.CancelReason = reason
	}
	b.UpdatedAt = now
	b.AppendEvent(actionEvents[action], actor, reason, now)
	return nil
}

// Expire cancels a stale PENDING booking with reason EXPIRED. It is a no-op
// on any other state, which makes the expiration sweep idempotent.
func Expire(b *models.Booking, now time.Time) bool {
	if b.Status != models.StatusPending {
		return false
	}
	b.Status = models.StatusCancelled
	b.CancelReason = models.CancelReasonExpired
	b.UpdatedAt = now
	b.AppendEvent("expired", "system", "pending booking expired", now)
	return true
}
