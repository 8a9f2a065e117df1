package worker

import (
	"FileTransfer/config"
	"FileTransfer/internal/mq"
	"FileTransfer/internal/task"
	"FileTransfer/utils"
	"encoding/json"
	"errors"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/net/context"
	"golang.org/x/time/rate"
)

type dlqMessage struct {
	FileID   uint64    `json:"file_id"`
	Email    string    `json:"email"`
	Attempt  int       `json:"attempt"`
	Error    string    `json:"error"`
	FailedAt time.Time `json:"failed_at"`
}

// RunNotifyWorker consumes share-notice messages from RabbitMQ and sends
// the mails, rate limited.
func RunNotifyWorker(ctx context.Context) error {
	client, err := mq.Dial()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.DeclareTopology(); err != nil {
		return err
	}

	prefetch := config.AppConfig.RabbitMQPrefetch
	if prefetch <= 0 {
		prefetch = 1
	}
	if err := client.Channel.Qos(prefetch, 0, false); err != nil {
		return err
	}

	deliveries, err := client.Channel.Consume(
		mq.QueueNotify,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	concurrency := config.AppConfig.NotifyWorkerConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)

	burst := config.AppConfig.NotifyBurst
	if burst <= 0 {
		burst = 1
	}
	rateLimit := config.AppConfig.NotifyRate
	var limiter *rate.Limiter
	if rateLimit <= 0 {
		limiter = rate.NewLimiter(rate.Inf, burst)
	} else {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), burst)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return errors.New("notify worker: delivery channel closed")
			}
			sem <- struct{}{}
			go func(d amqp.Delivery) {
				defer func() { <-sem }()
				handleNoticeMessage(ctx, client, limiter, d)
			}(delivery)
		}
	}
}

func handleNoticeMessage(ctx context.Context, client *mq.Client, limiter *rate.Limiter, delivery amqp.Delivery) {
	var msg task.ShareNoticeMessage
	if err := json.Unmarshal(delivery.Body, &msg); err != nil {
		log.Printf("notify worker: invalid message: %v", err)
		_ = delivery.Ack(false)
		return
	}

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			_ = delivery.Nack(false, true)
			return
		}
	}

	if err := utils.SendShareNotice(msg.Email, msg.OwnerName, msg.FileName); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			_ = delivery.Nack(false, true)
			return
		}
		if err := scheduleRetry(ctx, client, msg, err); err != nil {
			log.Printf("notify worker: retry schedule failed: %v", err)
			_ = delivery.Nack(false, true)
			return
		}
		_ = delivery.Ack(false)
		return
	}

	log.Printf("notify worker: sent share notice to %s for file %d", msg.Email, msg.FileID)
	_ = delivery.Ack(false)
}

func scheduleRetry(ctx context.Context, client *mq.Client, msg task.ShareNoticeMessage, cause error) error {
	msg.Attempt++
	if msg.Attempt > config.AppConfig.NotifyRetryMax {
		return deadLetter(ctx, client, msg, cause)
	}

	delays := config.AppConfig.NotifyRetryDelays
	delay := 10 * time.Second
	if len(delays) > 0 {
		idx := msg.Attempt - 1
		if idx >= len(delays) {
			idx = len(delays) - 1
		}
		delay = delays[idx]
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	log.Printf("notify worker: retry %d for %s in %s (%v)", msg.Attempt, msg.Email, delay, cause)
	return client.PublishRetry(ctx, body, delay)
}

func deadLetter(ctx context.Context, client *mq.Client, msg task.ShareNoticeMessage, cause error) error {
	body, err := json.Marshal(dlqMessage{
		FileID:   msg.FileID,
		Email:    msg.Email,
		Attempt:  msg.Attempt,
		Error:    cause.Error(),
		FailedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	log.Printf("notify worker: giving up on %s after %d attempts", msg.Email, msg.Attempt)
	return client.PublishDLQ(ctx, body)
}
