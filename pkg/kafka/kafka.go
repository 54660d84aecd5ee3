package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs      []string `envconfig:"KAFKA_ADDRS"`
	StatsTopic string   `envconfig:"KAFKA_STATS_TOPIC" default:"bookgen.stats"`
}

// Enabled reports whether any broker is configured.
func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

const (
	EventBooksGenerated = "books.generated"
	EventCoverRendered  = "cover.rendered"
)

// EventStats is one usage record published to the stats topic.
type EventStats struct {
	Event     string    `json:"event"`
	Locale    string    `json:"locale,omitempty"`
	Seed      string    `json:"seed,omitempty"`
	Page      int       `json:"page,omitempty"`
	PageSize  int       `json:"pageSize,omitempty"`
	Title     string    `json:"title,omitempty"`
	Cached    bool      `json:"cached,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func ProducerConfig() *sarama.Config {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3
	defaultCfg.Producer.Timeout = 5 * time.Second

	return defaultCfg
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	return sarama.NewSyncProducer(cfg.Addrs, ProducerConfig())
}
