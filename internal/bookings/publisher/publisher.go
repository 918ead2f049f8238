package publisher

import (
	"context"
	"fmt"

	"trainbook/pkg/kafka"
	"trainbook/pkg/middleware"
	"trainbook/pkg/model"
)

const (
	EventSessionBooked = "session.booked"
	SchemaVersion      = "1"
	Source             = "trainbook"
)

// SessionPublisher announces sessions after they are stored.
type SessionPublisher interface {
	PublishBooked(ctx context.Context, s *model.Session) error
}

type messagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type kafkaSessionPublisher struct {
	producer messagePublisher
}

// NewKafkaSessionPublisher keys each message by session id so that replays of
// one session land on the same partition.
func NewKafkaSessionPublisher(producer messagePublisher) SessionPublisher {
	return &kafkaSessionPublisher{producer: producer}
}

func (p *kafkaSessionPublisher) PublishBooked(ctx context.Context, s *model.Session) error {
	msg, err := kafka.NewMessage().
		WithKey(s.ID).
		WithValue(s).
		WithEventType(EventSessionBooked).
		WithSchemaVersion(SchemaVersion).
		WithSource(Source).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build %s message: %w", EventSessionBooked, err)
	}

	return p.producer.Publish(ctx, msg)
}

type nopSessionPublisher struct{}

// NewNopSessionPublisher is used when no broker is configured.
func NewNopSessionPublisher() SessionPublisher {
	return nopSessionPublisher{}
}

func (nopSessionPublisher) PublishBooked(context.Context, *model.Session) error {
	return nil
}
