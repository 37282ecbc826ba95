package booking

import (
	"time"

	"barberpro/utils"

	"go.uber.org/zap"
)

// SweepExpirations cancels PENDING bookings older than the configured
// expiration window and returns how many were expired. The sweep only
// transitions PENDING bookings, so re-running it over the same records is
// harmless.
func (s *DefaultBookingService) SweepExpirations(now time.Time) (int, error) {
	cutoff := now.Add(-s.Opts.PendingExpiration)
	stale, err := s.Repo.ListPendingCreatedBefore(cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range stale {
		b := &stale[i]
		if !Expire(b, now) {
			continue
		}
		if err := s.Repo.Update(b); err != nil {
			utils.GetLogger().Error("failed to expire booking",
				zap.String("bookingID", b.ID),
				zap.Error(err),
			)
			continue
		}
		s.invalidateAvailability(b.ProviderID, b.Date)
		expired++
	}

	if expired > 0 {
		utils.GetLogger().Info("expiration sweep completed",
			zap.Int("expired", expired),
			zap.Time("cutoff", cutoff),
		)
	}
	return expired, nil
}
