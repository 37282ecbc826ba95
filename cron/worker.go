package cron

import (
	"context"
	"fmt"
	"time"

	"barberpro/config"
	"barberpro/services/booking"
	"barberpro/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeSweepExpirations is the task that cancels stale PENDING bookings.
const TypeSweepExpirations = "booking:sweep_expirations"

// InitSweepWorker starts the asynq worker and a scheduler that enqueues the
// expiration sweep on the configured interval. Both run in background
// goroutines.
func InitSweepWorker(bookingSvc booking.BookingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSweepExpirations, handleSweepTask(bookingSvc))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting sweep worker")
		if err := srv.Run(mux); err != nil {
			logger.Fatal("sweep worker failed", zap.Error(err))
		}
	}()

	interval := config.AppConfig.SweepIntervalMinutes
	if interval <= 0 {
		interval = 10
	}
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	spec := fmt.Sprintf("@every %dm", interval)
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeSweepExpirations, nil)); err != nil {
		utils.GetLogger().Fatal("failed to register sweep schedule", zap.Error(err))
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			utils.GetLogger().Fatal("sweep scheduler failed", zap.Error(err))
		}
	}()
}

func handleSweepTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		expired, err := bookingSvc.SweepExpirations(time.Now())
		if err != nil {
			utils.GetLogger().Error("expiration sweep failed", zap.Error(err))
			return err
		}
		if expired > 0 {
			utils.GetLogger().Info("expiration sweep done", zap.Int("expired", expired))
		}
		return nil
	}
}
