package kafka_middleware

import (
	"context"
	"time"

	"trainbook/pkg/kafka"
	"trainbook/pkg/logger"
)

// LoggingProducerMiddleware logs message publishing operations
func LoggingProducerMiddleware(log *logger.Logger) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()

		log.Debug("Publishing message",
			"topic", msg.Topic,
			"key", msg.Key,
			"event_id", msg.GetEventID(),
			"event_type", msg.GetEventType(),
			"correlation_id", msg.GetCorrelationID(),
		)

		err := next(ctx, msg)

		if err != nil {
			log.Error("Failed to publish message",
				"topic", msg.Topic,
				"key", msg.Key,
				"event_id", msg.GetEventID(),
				"correlation_id", msg.GetCorrelationID(),
				"duration", time.Since(start),
				"error", err,
			)
		} else {
			log.Info("Successfully published message",
				"topic", msg.Topic,
				"key", msg.Key,
				"event_id", msg.GetEventID(),
				"correlation_id", msg.GetCorrelationID(),
				"duration", time.Since(start),
			)
		}

		return err
	}
}
