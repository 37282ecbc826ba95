package schedule

import (
	"fmt"
	"strings"
)

// ScheduleValidationError reports every violation found in a working-hours or
// exception write, not just the first, so a caller can fix them in one round
// trip.
type ScheduleValidationError struct {
	Violations []string
}

func (e *ScheduleValidationError) Error() string {
	return fmt.Sprintf("invalid schedule: %s", strings.Join(e.Violations, "; "))
}

// NotFoundError indicates an unknown provider or template id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}
