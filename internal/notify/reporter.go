package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"

	"github.com/kagit-online/order-notification/internal/models"
)

// Reporter records an assembled notification. Nothing here delivers mail.
type Reporter interface {
	Report(ctx context.Context, payload models.EmailPayload) error
}

// LogReporter writes the notification to the service log.
type LogReporter struct {
	logger *slog.Logger
}

func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Report(ctx context.Context, payload models.EmailPayload) error {
	r.logger.InfoContext(ctx, "Order notification prepared",
		"to", payload.To,
		"from", payload.From,
		"subject", payload.Subject,
		"html", payload.HTML,
		"text", payload.Text,
	)
	return nil
}

// KafkaReporter publishes the notification as an event for downstream
// consumers.
type KafkaReporter struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

func NewKafkaReporter(producer sarama.SyncProducer, topic string, logger *slog.Logger) *KafkaReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &KafkaReporter{producer: producer, topic: topic, logger: logger}
}

func (r *KafkaReporter) Report(ctx context.Context, payload models.EmailPayload) error {
	evt := models.NewOrderNotificationEvent(payload)
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal order notification event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: r.topic,
		Key:   sarama.StringEncoder(evt.ID),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(evt.Type)},
		},
	}
	partition, offset, err := r.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to publish order notification event: %w", err)
	}

	r.logger.DebugContext(ctx, "Order notification event published",
		"event_id", evt.ID,
		"topic", r.topic,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

// MultiReporter hands the notification to every reporter, even after a
// failure, and joins the errors.
type MultiReporter []Reporter

func (m MultiReporter) Report(ctx context.Context, payload models.EmailPayload) error {
	var errs []error
	for _, r := range m {
		if err := r.Report(ctx, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
