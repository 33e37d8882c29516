package jobs

import (
	"context"
	"log"
	"time"

	"CareSphere/services"

	"github.com/robfig/cron/v3"
)

// StartDeliveryScheduler drains the prescription outbox every day at 00:05,
// retrying deliveries that failed.
func StartDeliveryScheduler() {
	c := cron.New()

	_, err := c.AddFunc("5 0 * * *", func() {
		log.Println("Running prescription delivery retry...")
		RunDeliveryRetry()
	})
	if err != nil {
		log.Println("Error while scheduling delivery retry:", err)
		return
	}
	c.Start()
}

func RunDeliveryRetry() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	services.RetryFailedDeliveries(ctx)
}
