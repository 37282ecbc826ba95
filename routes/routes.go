package routes

import (
	"net/http"
	"time"

	"barberpro/config"
	"barberpro/handlers"
	"barberpro/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers collects the HTTP handlers the router wires up.
type Handlers struct {
	Booking  *handlers.BookingHandler
	Schedule *handlers.ScheduleHandler
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and the global
// middleware.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = 100
	}
	r.Use(middleware.RateLimit(perMin, perMin))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, h)
	RegisterScheduleRoutes(r, h)
}
