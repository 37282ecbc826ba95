package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberpro/config"
	"barberpro/cron"
	"barberpro/database"
	bookingRepoPkg "barberpro/database/repository/booking"
	catalogRepoPkg "barberpro/database/repository/catalog"
	providerRepoPkg "barberpro/database/repository/provider"
	"barberpro/handlers"
	"barberpro/routes"
	bookingSvc "barberpro/services/booking"
	scheduleSvc "barberpro/services/schedule"
	"barberpro/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()
	svcRepo := catalogRepoPkg.NewMongoServiceRepo()

	// services.
	bookingService := bookingSvc.NewBookingService(
		bookRepo,
		provRepo,
		svcRepo,
		utils.GetCacheClient(),
		bookingSvc.Options{
			SlotStep:              time.Duration(config.AppConfig.SlotStepMinutes) * time.Minute,
			SuggestionCount:       config.AppConfig.SuggestedSlotCount,
			PendingExpiration:     time.Duration(config.AppConfig.PendingExpirationHrs) * time.Hour,
			BulkLimit:             config.AppConfig.BulkUpdateLimit,
			AutoConfirm:           config.AppConfig.AutoConfirmBookings,
			ExplicitExceptionWins: config.AppConfig.ExplicitExceptionWins,
			DefaultTimezone:       config.AppConfig.DefaultTimezone,
		},
	)
	scheduleService := scheduleSvc.NewScheduleService(
		provRepo,
		bookRepo,
		utils.GetCacheClient(),
		scheduleSvc.Options{
			ExplicitExceptionWins: config.AppConfig.ExplicitExceptionWins,
			DefaultTimezone:       config.AppConfig.DefaultTimezone,
		},
	)

	routes.RegisterRoutes(router, &routes.Handlers{
		Booking:  handlers.NewBookingHandler(bookingService),
		Schedule: handlers.NewScheduleHandler(scheduleService),
	})

	// Background expiration sweep.
	cron.InitSweepWorker(bookingService)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
