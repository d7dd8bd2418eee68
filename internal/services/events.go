package services

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Domain event routing keys.
const (
	EventUserRegistered = "user.registered"
	EventUserCreated    = "user.created"
	EventUserUpdated    = "user.updated"
	EventUserDeleted    = "user.deleted"
	EventOfferCreated   = "offer.created"
	EventOfferUpdated   = "offer.updated"
	EventOfferDeleted   = "offer.deleted"
)

// EventPublisher delivers domain events to a message broker.
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// publish sends an event after a successful write. A nil publisher disables
// events; delivery failures are logged and never reach the caller.
func publish(p EventPublisher, event, id string, extra map[string]interface{}) {
	if p == nil {
		return
	}
	payload := map[string]interface{}{
		"event":       event,
		"id":          id,
		"occurred_at": time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range extra {
		payload[k] = v
	}
	if err := p.Publish(event, payload); err != nil {
		log.Warn().Err(err).Str("event", event).Str("id", id).Msg("Failed to publish event")
	}
}
