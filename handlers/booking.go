package handlers

import (
	"net/http"

	"barberpro/middleware"
	"barberpro/models"
	bookingSvc "barberpro/services/booking"
	"barberpro/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Service bookingSvc.BookingService
}

func NewBookingHandler(svc bookingSvc.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// GetAvailability returns the bookable slots for one provider/service/date.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	providerID := c.Param("providerId")
	serviceID := c.Query("serviceId")
	date := c.Query("date")
	if serviceID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid_request", "serviceId and date query parameters are required", nil)
		return
	}

	availability, err := h.Service.GetAvailability(providerID, serviceID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

// CreateBooking books a slot, returning 409 with the conflict report when the
// requested interval is not available.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_request", "invalid booking payload", err.Error())
		return
	}
	if sub := c.GetString(middleware.ContextSubjectKey); sub != "" {
		req.ClientID = sub
	}

	booking, err := h.Service.CreateBooking(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// UpdateStatus applies a lifecycle action (confirm, start, complete, cancel,
// no_show) to one booking.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Action models.BookingAction `json:"action" binding:"required"`
		Reason string               `json:"reason,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_request", "invalid status payload", err.Error())
		return
	}

	booking, err := h.Service.UpdateStatus(c.Param("id"), req.Action, req.Reason, c.GetString(middleware.ContextSubjectKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Reschedule moves a booking to a new start time.
func (h *BookingHandler) Reschedule(c *gin.Context) {
	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_request", "invalid reschedule payload", err.Error())
		return
	}
	req.Actor = c.GetString(middleware.ContextSubjectKey)

	booking, err := h.Service.Reschedule(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// BulkUpdate applies one action to several bookings, reporting per-booking
// success and failure.
func (h *BookingHandler) BulkUpdate(c *gin.Context) {
	var req models.BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_request", "invalid bulk payload", err.Error())
		return
	}
	req.Actor = c.GetString(middleware.ContextSubjectKey)

	result, err := h.Service.BulkUpdate(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBooking fetches one booking.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.Service.GetBooking(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GetTimeline returns a booking's append-only event history.
func (h *BookingHandler) GetTimeline(c *gin.Context) {
	booking, err := h.Service.GetBooking(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookingId": booking.ID,
		"timeline":  booking.Timeline,
	})
}

// Search lists bookings matching the query filters, paginated.
func (h *BookingHandler) Search(c *gin.Context) {
	var q models.BookingSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_request", "invalid search query", err.Error())
		return
	}

	result, err := h.Service.Search(q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
