package routes

import (
	"barberpro/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes sets up the provider schedule management endpoints.
func RegisterScheduleRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/providers/:providerId/schedule")
	{
		// The schedule itself is public; writes require a provider token.
		api.GET("", middleware.JWTAuth(true), h.Schedule.GetSchedule)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(false), middleware.RequireRole("provider"))
		protected.PUT("", h.Schedule.UpdateSchedule)
		protected.POST("/bulk", h.Schedule.BulkUpdateSchedule)
		protected.POST("/exceptions", h.Schedule.AddException)
		protected.POST("/validate", h.Schedule.ValidateSchedule)
		protected.POST("/apply-template", h.Schedule.ApplyTemplate)
	}

	templates := r.Group("/api/schedule-templates")
	{
		templates.Use(middleware.JWTAuth(false), middleware.RequireRole("provider"))
		templates.POST("", h.Schedule.CreateTemplate)
	}
}
