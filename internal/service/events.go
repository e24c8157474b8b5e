package service

import (
	"context"

	"github.com/bagdasarian/championship/internal/events"
	"github.com/rs/zerolog/log"
)

// publish не прерывает операцию: событие уже произошло в БД
func publish(ctx context.Context, publisher events.Publisher, event events.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn().
			Err(err).
			Str("event_type", event.Type).
			Str("event_id", event.ID.String()).
			Msg("failed to publish event")
	}
}
