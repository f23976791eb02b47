package kafka

import (
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
)

func TestNewProducerConfig(t *testing.T) {
	config := NewProducerConfig(3, 250*time.Millisecond)

	assert.True(t, config.Producer.Return.Successes, "SyncProducer requires Return.Successes")
	assert.Equal(t, sarama.WaitForAll, config.Producer.RequiredAcks)
	assert.Equal(t, 3, config.Producer.Retry.Max)
	assert.Equal(t, 250*time.Millisecond, config.Producer.Retry.Backoff)
	assert.NoError(t, config.Validate())
}
