package kafka_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/kafka"
)

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, kafka.Config{}.Enabled())
	assert.True(t, kafka.Config{Addrs: []string{"localhost:9092"}}.Enabled())
}

func TestProducerConfig(t *testing.T) {
	cfg := kafka.ProducerConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, sarama.WaitForAll, cfg.Producer.RequiredAcks)
	assert.True(t, cfg.Producer.Return.Successes)
}

func TestEventStats_JSON(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	data, err := json.Marshal(kafka.EventStats{Event: kafka.EventCoverRendered, Title: "T", Timestamp: ts})
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"cover.rendered","title":"T","timestamp":"2024-01-02T03:04:05Z"}`, string(data))
}
