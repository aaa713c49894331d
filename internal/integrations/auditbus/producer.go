// Package auditbus publishes audit entries to Kafka for downstream consumers.
package auditbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/GSO-BookingService/internal/domain"
)

var ErrPublish = errors.New("auditbus: failed to publish audit event")

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Logger interface {
	Info(format string, v ...interface{})
}

// Event is the wire format of one audit entry
type Event struct {
	ID       string                 `json:"id"`
	Action   string                 `json:"action"`
	Actor    string                 `json:"actor"`
	EntityID string                 `json:"entityId"`
	Meta     map[string]interface{} `json:"meta,omitempty"`
	At       time.Time              `json:"at"`
}

type Producer struct {
	writer  MessageWriter
	timeout time.Duration
	log     Logger
}

// NewProducer creates a synchronous producer writing to topic.
func NewProducer(brokers []string, topic string, timeout time.Duration, log Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: timeout,
	}
	return NewProducerWithWriter(writer, timeout, log)
}

func NewProducerWithWriter(writer MessageWriter, timeout time.Duration, log Logger) *Producer {
	return &Producer{writer: writer, timeout: timeout, log: log}
}

// Publish sends entry keyed by its entity id so events of one booking stay ordered.
func (p *Producer) Publish(ctx context.Context, entry *domain.AuditEntry) error {
	data, err := json.Marshal(Event{
		ID:       entry.ID,
		Action:   entry.Action,
		Actor:    entry.Actor,
		EntityID: entry.EntityID,
		Meta:     entry.Meta,
		At:       entry.At,
	})
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPublish, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(entry.EntityID),
		Value: data,
		Time:  entry.At,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, entry.Action, err)
	}

	p.log.Info("audit event %s published (entity=%s)", entry.Action, entry.EntityID)
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
