// Package queue publishes usage events to Kafka off the request path.
package queue

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/circuit_breaker"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/kafka"
)

type Enqueuer interface {
	// Enqueue never blocks. Events are dropped when the buffer is full or
	// the queue is closed.
	Enqueue(event kafka.EventStats)
	Close() error
}

type nop struct{}

// NewNop returns an Enqueuer that discards everything.
func NewNop() Enqueuer { return nop{} }

func (nop) Enqueue(kafka.EventStats) {}

func (nop) Close() error { return nil }

type Queue struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger

	mu      sync.RWMutex
	closed  bool
	events  chan kafka.EventStats
	done    chan struct{}
	dropped atomic.Uint64
}

func New(producer sarama.SyncProducer, topic string, buffer int, cb circuit_breaker.CircuitBreaker, log *zap.Logger) *Queue {
	if buffer < 0 {
		buffer = 0
	}
	q := &Queue{
		producer: producer,
		topic:    topic,
		cb:       cb,
		log:      log.Named("queue"),
		events:   make(chan kafka.EventStats, buffer),
		done:     make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) Enqueue(event kafka.EventStats) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		q.dropped.Add(1)
		return
	}
	select {
	case q.events <- event:
	default:
		q.dropped.Add(1)
		q.log.Debug("stats buffer full, event dropped", zap.String("event", event.Event))
	}
}

// Dropped counts events that were never handed to the producer.
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}

// Close flushes buffered events and closes the producer.
func (q *Queue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.events)
	q.mu.Unlock()

	<-q.done
	return q.producer.Close()
}

func (q *Queue) run() {
	defer close(q.done)
	for event := range q.events {
		if err := q.send(event); err != nil {
			q.log.Warn("send stats event", zap.String("event", event.Event), zap.Error(err))
		}
	}
}

func (q *Queue) send(event kafka.EventStats) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: q.topic, Value: sarama.StringEncoder(data)}
	err = q.cb.Call(func() error {
		_, _, err := q.producer.SendMessage(msg)
		return err
	})
	if err == circuit_breaker.ErrOpenCB {
		q.dropped.Add(1)
	}
	return err
}
