package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/snapstream/snapstream-api/internal/config"
	"github.com/snapstream/snapstream-api/pkg/logger"
)

const TopicNotificationEvents = "notification.events"

// NotificationPayload is the wire form of one fire-and-forget notification.
type NotificationPayload struct {
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

type KafkaNotifier struct {
	writer *kafka.Writer
	logger logger.Logger
}

func NewKafkaNotifier(cfg config.Config, log logger.Logger) (*KafkaNotifier, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicNotificationEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka notification producer successfully.")
	return &KafkaNotifier{writer: writer, logger: log}, nil
}

func (n *KafkaNotifier) Notify(ctx context.Context, subject, message string) error {
	payload := NotificationPayload{
		Subject: subject,
		Message: message,
		SentAt:  time.Now().UTC(),
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification payload failed: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(subject),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("publish notification failed: %w", err)
	}
	return nil
}

func (n *KafkaNotifier) Close() {
	if n.writer != nil {
		n.writer.Close()
	}
	n.logger.Info("Closed Kafka notification producer")
}
