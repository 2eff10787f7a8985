package services

import (
	"encoding/json"
	"time"

	"storefront/pkg/logger"
	"storefront/pkg/metrics"

	"github.com/google/uuid"
)

// EventPublisher delivers a message under a routing key. *rabbitmq.Client
// satisfies it.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// Event is the envelope of every domain event.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data"`
}

// publish sends a domain event. Failures are logged and counted; the write
// that triggered the event has already succeeded and is not affected.
func publish(pub EventPublisher, eventType string, data any) {
	if pub == nil {
		return
	}
	body, err := json.Marshal(Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Str("event", eventType).Msg("failed to marshal event")
		metrics.EventPublishFailures.WithLabelValues(eventType).Inc()
		return
	}
	if err := pub.Publish(eventType, body); err != nil {
		logger.Logger.Warn().Err(err).Str("event", eventType).Msg("failed to publish event")
		metrics.EventPublishFailures.WithLabelValues(eventType).Inc()
		return
	}
	metrics.EventsPublished.WithLabelValues(eventType).Inc()
}
