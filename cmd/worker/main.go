package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/snapstream/snapstream-api/adapters/event"
	"github.com/snapstream/snapstream-api/adapters/persistence"
	"github.com/snapstream/snapstream-api/internal/config"
	"github.com/snapstream/snapstream-api/internal/domain/notification"
	"github.com/snapstream/snapstream-api/pkg/logger"
)

func main() {
	fmt.Println("Starting SnapStream Notification Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Redis feed the admin surface reads from
	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	feed := persistence.NewRedisNotificationFeed(redisClient, cfg.Notifications.FeedSize, appLogger)

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicNotificationEvents,
		GroupID:  "notification-dispatch-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicNotificationEvents)

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.NotificationPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal notification: %v. Skipping.", err)
			commitMessage(consumer, msg)
			continue
		}

		log.Printf("Delivering notification: [%s] %s", payload.Subject, payload.Message)

		n := notification.Notification{
			Subject: payload.Subject,
			Message: payload.Message,
			SentAt:  payload.SentAt,
		}
		if err := feed.Push(ctx, n); err != nil {
			log.Printf("ERROR: Failed to record notification: %v", err)
			continue
		}

		commitMessage(consumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
