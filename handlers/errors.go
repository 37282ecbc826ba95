package handlers

import (
	"errors"
	"net/http"

	bookingSvc "barberpro/services/booking"
	scheduleSvc "barberpro/services/schedule"
	"barberpro/utils"

	"github.com/gin-gonic/gin"
)

// respondError translates service-layer errors into HTTP responses. Conflict
// reports and validation violations travel in the details field so clients can
// act on them.
func respondError(c *gin.Context, err error) {
	var conflict *bookingSvc.ConflictError
	if errors.As(err, &conflict) {
		utils.JSONError(c, http.StatusConflict, "booking_conflict", err.Error(), conflict.Report)
		return
	}

	var transition *bookingSvc.IllegalTransitionError
	if errors.As(err, &transition) {
		utils.JSONError(c, http.StatusUnprocessableEntity, "illegal_transition", err.Error(), nil)
		return
	}

	var bookingNotFound *bookingSvc.NotFoundError
	if errors.As(err, &bookingNotFound) {
		utils.JSONError(c, http.StatusNotFound, "not_found", err.Error(), nil)
		return
	}
	var scheduleNotFound *scheduleSvc.NotFoundError
	if errors.As(err, &scheduleNotFound) {
		utils.JSONError(c, http.StatusNotFound, "not_found", err.Error(), nil)
		return
	}

	var scheduleInvalid *scheduleSvc.ScheduleValidationError
	if errors.As(err, &scheduleInvalid) {
		utils.JSONError(c, http.StatusBadRequest, "invalid_schedule", "schedule validation failed", scheduleInvalid.Violations)
		return
	}

	var badDuration *bookingSvc.InvalidDurationError
	if errors.As(err, &badDuration) {
		utils.JSONError(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
		return
	}
	var invalid *bookingSvc.ValidationError
	if errors.As(err, &invalid) {
		utils.JSONError(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "internal_error", "an unexpected error occurred", nil)
}
