package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RigelNana/arksignup/pkg/metrics"
	"github.com/RigelNana/arksignup/services/signup-service/models"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultWriteTimeout bounds a single enqueue, including the metadata
	// lookup kafka-go performs before batching.
	DefaultWriteTimeout = 2 * time.Second
	batchTimeout        = 10 * time.Millisecond
)

// Publisher announces stored signups to downstream consumers.
type Publisher interface {
	PublishSignupCreated(ctx context.Context, id string, s models.Signup) error
	Close() error
}

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer  messageWriter
	topic   string
	timeout time.Duration
	logger  *logrus.Logger
	now     func() time.Time
}

// NewKafkaPublisher returns a publisher backed by an async kafka.Writer.
// Delivery results arrive through the writer's Completion callback.
func NewKafkaPublisher(brokers []string, topic string, logger *logrus.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: batchTimeout,
		WriteTimeout: 5 * time.Second,
		Async:        true,
	}
	p := newKafkaPublisher(w, topic, logger)
	w.Completion = p.completed
	return p
}

func newKafkaPublisher(w messageWriter, topic string, logger *logrus.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer:  w,
		topic:   topic,
		timeout: DefaultWriteTimeout,
		logger:  logger,
		now:     time.Now,
	}
}

func (p *KafkaPublisher) PublishSignupCreated(ctx context.Context, id string, s models.Signup) error {
	payload, err := json.Marshal(models.SignupCreatedEvent{
		ID:         id,
		Fields:     s.WithoutID(),
		ReceivedAt: p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode signup event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(id),
		Value: payload,
	})
	if err != nil {
		metrics.KafkaMessagesTotal.WithLabelValues("signup-service", p.topic, "error").Inc()
		return fmt.Errorf("write message to %s topic: %w", p.topic, err)
	}
	return nil
}

// completed is the async writer's delivery callback.
func (p *KafkaPublisher) completed(msgs []kafka.Message, err error) {
	status := "success"
	if err != nil {
		status = "error"
		p.logger.WithError(err).WithFields(logrus.Fields{
			"topic":    p.topic,
			"messages": len(msgs),
		}).Warn("signup event delivery failed")
	}
	metrics.KafkaMessagesTotal.WithLabelValues("signup-service", p.topic, status).Add(float64(len(msgs)))
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishSignupCreated(context.Context, string, models.Signup) error { return nil }

func (NopPublisher) Close() error { return nil }
