package repository

import (
	"context"

	"outside/internal/domain/entity"
	"outside/internal/errors"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines event persistence. FindByID returns a bare event;
// hydration of owner, location and allotments is explicit.
type EventRepository interface {
	// FindByID retrieves an event without related entities.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// FindDetailedByID retrieves an event with its owner, location and allotments.
	FindDetailedByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// List returns every event with owner and location, newest first.
	List(ctx context.Context) ([]*entity.Event, error)

	// ListByOwner returns the bare events created by ownerID.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Event, error)

	// Exists reports whether an event with id exists, reading from the primary.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Create persists a new event.
	Create(ctx context.Context, event *entity.Event) error

	// Update writes the event's own columns guarded by its version.
	Update(ctx context.Context, event *entity.Event) error

	// Delete removes the event row. Children must be removed first.
	Delete(ctx context.Context, id uuid.UUID) error
}
