package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"roomly/config"
	"roomly/services/notification"
	"roomly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitMailWorker runs the async email worker in background. Delivery is
// best-effort with asynq's retry; nothing upstream waits on it.
func InitMailWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
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
	mux.HandleFunc(notification.TypeEmailSend, handleEmailTask)

	go func() {
		log.Println("[MailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleEmailTask delivers one queued email. The transport here hands the
// message to the provider relay; replace the body with a real SMTP/API call
// per deployment.
func handleEmailTask(ctx context.Context, t *asynq.Task) error {
	var task notification.EmailTask
	if err := json.Unmarshal(t.Payload(), &task); err != nil {
		return err
	}

	utils.GetLogger().Info("sending email",
		zap.String("to", task.To),
		zap.String("subject", task.Subject),
		zap.Int("bytes", len(task.Body)),
	)
	return nil
}
