package cron

import (
	"context"
	"log"
	"time"

	"koon/config"
	tokensRepo "koon/database/repository/tokens"

	"github.com/hibiken/asynq"
)

const TypeTokenSweep = "tokens:sweep"

// InitSweepWorker runs the expired-token sweep in the background. Expired
// pairing tokens are already unusable; the sweep just keeps the collection
// from accumulating dead records.
func InitSweepWorker(repo tokensRepo.PairingTokenRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepQueueDB,
	}

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 1m", asynq.NewTask(TypeTokenSweep, nil)); err != nil {
		log.Fatalf("[SweepWorker] failed to register sweep task: %v", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[SweepWorker] scheduler stopped: %v", err)
		}
	}()

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeTokenSweep, handleTokenSweep(repo))

	// Start async worker with retry logic
	go func() {
		log.Println("[SweepWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SweepWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SweepWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleTokenSweep(repo tokensRepo.PairingTokenRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		swept, err := repo.DeleteExpired(ctx, time.Now())
		if err != nil {
			log.Printf("[SweepHandler] sweep failed: %v", err)
			return err
		}
		if swept > 0 {
			log.Printf("[SweepHandler] removed %d expired pairing tokens", swept)
		}
		return nil
	}
}
