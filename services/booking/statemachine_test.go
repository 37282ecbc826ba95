package booking

import (
	"errors"
	"testing"
	"time"

	"barberpro/models"
)

func newTestBooking(status models.BookingStatus) *models.Booking {
	return &models.Booking{
		ID:        "bk-1",
		Status:    status,
		StartTime: at(10, 0),
		EndTime:   at(10, 30),
		CreatedAt: at(8, 0),
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.BookingStatus
		ok       bool
	}{
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusInProgress, false},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusConfirmed, models.StatusInProgress, true},
		{models.StatusConfirmed, models.StatusCancelled, true},
		{models.StatusConfirmed, models.StatusNoShow, true},
		{models.StatusConfirmed, models.StatusCompleted, false},
		{models.StatusInProgress, models.StatusCompleted, true},
		{models.StatusInProgress, models.StatusCancelled, false},
		{models.StatusCompleted, models.StatusCancelled, false},
		{models.StatusCancelled, models.StatusConfirmed, false},
		{models.StatusNoShow, models.StatusConfirmed, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.ok {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.ok)
		}
	}
}

func TestApplyAction(t *testing.T) {
	now := at(12, 0)

	t.Run("confirm pending", func(t *testing.T) {
		b := newTestBooking(models.StatusPending)
		if err := ApplyAction(b, models.ActionConfirm, "", "provider-1", now); err != nil {
			t.Fatalf("ApplyAction: %v", err)
		}
		if b.Status != models.StatusConfirmed {
			t.Fatalf("status = %s", b.Status)
		}
		last := b.Timeline[len(b.Timeline)-1]
		if last.Event != "confirmed" || last.Actor != "provider-1" {
			t.Fatalf("timeline event = %+v", last)
		}
	})

	t.Run("cancel records the reason", func(t *testing.T) {
		b := newTestBooking(models.StatusConfirmed)
		if err := ApplyAction(b, models.ActionCancel, "client request", "client-1", now); err != nil {
			t.Fatalf("ApplyAction: %v", err)
		}
		if b.CancelReason != "client request" {
			t.Fatalf("cancelReason = %q", b.CancelReason)
		}
	})

	t.Run("illegal transition leaves the booking untouched", func(t *testing.T) {
		b := newTestBooking(models.StatusCompleted)
		err := ApplyAction(b, models.ActionCancel, "", "", now)
		var ite *IllegalTransitionError
		if !errors.As(err, &ite) {
			t.Fatalf("expected IllegalTransitionError, got %v", err)
		}
		if b.Status != models.StatusCompleted || len(b.Timeline) != 0 {
			t.Fatal("booking mutated on illegal transition")
		}
	})

	t.Run("no_show before start time is rejected", func(t *testing.T) {
		b := newTestBooking(models.StatusConfirmed)
		err := ApplyAction(b, models.ActionNoShow, "", "provider-1", at(9, 0))
		var ite *IllegalTransitionError
		if !errors.As(err, &ite) {
			t.Fatalf("expected IllegalTransitionError, got %v", err)
		}
	})

	t.Run("no_show after start time succeeds", func(t *testing.T) {
		b := newTestBooking(models.StatusConfirmed)
		if err := ApplyAction(b, models.ActionNoShow, "", "provider-1", at(10, 5)); err != nil {
			t.Fatalf("ApplyAction: %v", err)
		}
		if b.Status != models.StatusNoShow {
			t.Fatalf("status = %s", b.Status)
		}
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		b := newTestBooking(models.StatusPending)
		if err := ApplyAction(b, models.BookingAction("vanish"), "", "", now); err == nil {
			t.Fatal("expected error for unknown action")
		}
	})
}

func TestExpire(t *testing.T) {
	now := at(12, 0)

	t.Run("pending booking expires", func(t *testing.T) {
		b := newTestBooking(models.StatusPending)
		if !Expire(b, now) {
			t.Fatal("expected expiration")
		}
		if b.Status != models.StatusCancelled || b.CancelReason != models.CancelReasonExpired {
			t.Fatalf("booking = %+v", b)
		}
		if b.Timeline[len(b.Timeline)-1].Event != "expired" {
			t.Fatal("missing expired timeline event")
		}
	})

	t.Run("expire is idempotent", func(t *testing.T) {
		b := newTestBooking(models.StatusPending)
		Expire(b, now)
		events := len(b.Timeline)
		if Expire(b, now.Add(time.Hour)) {
			t.Fatal("second expire must be a no-op")
		}
		if len(b.Timeline) != events {
			t.Fatal("second expire appended a timeline event")
		}
	})

	t.Run("non-pending statuses are untouched", func(t *testing.T) {
		for _, status := range []models.BookingStatus{
			models.StatusConfirmed, models.StatusInProgress,
			models.StatusCompleted, models.StatusCancelled, models.StatusNoShow,
		} {
			b := newTestBooking(status)
			if Expire(b, now) {
				t.Errorf("Expire must not touch %s bookings", status)
			}
		}
	})
}
