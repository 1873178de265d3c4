// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"outside/internal/domain/entity"
	domainerrors "outside/internal/domain/errors"
	"outside/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// resolveOwnedEvent loads the event together with its owner, location and
// allotments and authorizes actorID against the loaded owner. It only reads,
// so it can run any number of times before a mutation.
func resolveOwnedEvent(ctx context.Context, events repository.EventRepository, eventID, actorID uuid.UUID) (*entity.Event, error) {
	if actorID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("acting user is missing")
	}

	event, err := events.FindDetailedByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound.WrapMessage("event not found")
		}

		return nil, errors.Wrap(err, "failed to load event")
	}

	// The comparison reads the hydrated owner, not the raw foreign key.
	if event.CreatedBy == nil || event.CreatedBy.ID != actorID {
		return nil, domainerrors.ErrNotResourceOwner.WrapMessage("event belongs to another user")
	}

	return event, nil
}
