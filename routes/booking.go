package routes

import (
	"barberpro/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the booking engine endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *Handlers) {
	// Availability is readable without authentication so clients can browse.
	r.GET("/api/providers/:providerId/availability", middleware.JWTAuth(true), h.Booking.GetAvailability)

	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuth(false))
		api.POST("", h.Booking.CreateBooking)
		api.GET("", h.Booking.Search)
		api.GET("/:id", h.Booking.GetBooking)
		api.GET("/:id/timeline", h.Booking.GetTimeline)
		api.PATCH("/:id/status", h.Booking.UpdateStatus)
		api.POST("/:id/reschedule", h.Booking.Reschedule)
		api.POST("/bulk", h.Booking.BulkUpdate)
	}
}
