package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kagit-online/order-notification/internal/models"
)

// MockProducer simulates Kafka producer for testing
type MockProducer struct {
	sarama.SyncProducer
	messages []*sarama.ProducerMessage
	err      error
}

func (m *MockProducer) SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error) {
	if m.err != nil {
		return 0, 0, m.err
	}
	m.messages = append(m.messages, msg)
	return 0, int64(len(m.messages) - 1), nil
}

func (m *MockProducer) Close() error {
	return nil
}

type stubReporter struct {
	calls int
	err   error
}

func (s *stubReporter) Report(ctx context.Context, payload models.EmailPayload) error {
	s.calls++
	return s.err
}

func samplePayload() models.EmailPayload {
	return models.EmailPayload{
		To:      "info@kagit.online",
		From:    "noreply@kagit.online",
		Subject: "Yeni Sipariş - Analytical Co",
		HTML:    "<p>Ada Lovelace</p>",
		Text:    "Ad Soyad: Ada Lovelace",
	}
}

func TestLogReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewLogReporter(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, reporter.Report(context.Background(), samplePayload()))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Order notification prepared", entry["msg"])
	assert.Equal(t, "info@kagit.online", entry["to"])
	assert.Equal(t, "noreply@kagit.online", entry["from"])
	assert.Equal(t, "Yeni Sipariş - Analytical Co", entry["subject"])
	assert.Equal(t, "<p>Ada Lovelace</p>", entry["html"])
	assert.Equal(t, "Ad Soyad: Ada Lovelace", entry["text"])
}

func TestKafkaReporter_Report(t *testing.T) {
	producer := &MockProducer{}
	reporter := NewKafkaReporter(producer, "test-topic", nil)

	require.NoError(t, reporter.Report(context.Background(), samplePayload()))

	require.Len(t, producer.messages, 1, "Kafka should have 1 message")
	msg := producer.messages[0]
	assert.Equal(t, "test-topic", msg.Topic)

	var evt models.Event[models.EmailPayload]
	require.NoError(t, json.Unmarshal(msg.Value.(sarama.ByteEncoder), &evt))
	assert.Equal(t, models.EventTypeOrderNotification, evt.Type)
	assert.Equal(t, 1, evt.Version)
	assert.Equal(t, string(msg.Key.(sarama.StringEncoder)), evt.ID)
	assert.Equal(t, samplePayload(), evt.Payload)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, []byte(models.EventTypeOrderNotification), msg.Headers[0].Value)
}

func TestKafkaReporter_SendFailure(t *testing.T) {
	producer := &MockProducer{err: sarama.ErrOutOfBrokers}
	reporter := NewKafkaReporter(producer, "test-topic", nil)

	err := reporter.Report(context.Background(), samplePayload())

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	assert.Contains(t, err.Error(), "failed to publish order notification event")
}

func TestMultiReporter_ReportsToAll(t *testing.T) {
	failing := &stubReporter{err: errors.New("sink down")}
	ok := &stubReporter{}

	err := MultiReporter{failing, ok}.Report(context.Background(), samplePayload())

	assert.EqualError(t, err, "sink down")
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, ok.calls, "later reporters still run after a failure")
}

func TestMultiReporter_Empty(t *testing.T) {
	assert.NoError(t, MultiReporter{}.Report(context.Background(), samplePayload()))
}
