package impl

import (
	"context"
	"log/slog"

	deliverycontext "outside/internal/delivery/context"
	"outside/internal/domain/service"

	"github.com/google/uuid"
)

// notifier publishes event notifications once a change is committed. A
// failed publish is logged and never fails the caller.
type notifier struct {
	publisher service.EventPublisher
	clock     service.Clock
	logger    *slog.Logger
}

func (n notifier) publish(ctx context.Context, notificationType string, eventID, actorID uuid.UUID) {
	notification := &service.EventNotification{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      notificationType,
		EventID:   eventID.String(),
		ActorID:   actorID.String(),
		At:        n.clock.Now(),
	}

	if err := n.publisher.PublishEventNotification(ctx, notification); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to publish event notification",
			slog.String("type", notificationType),
			slog.String("event_id", notification.EventID),
			slog.Any("error", err),
		)
	}
}
