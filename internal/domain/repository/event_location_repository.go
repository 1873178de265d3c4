package repository

import (
	"context"

	"outside/internal/domain/entity"
	"outside/internal/errors"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when an event has no location.
var ErrLocationNotFound = errors.New("event location not found")

// EventLocationRepository defines persistence for the optional location of an event.
type EventLocationRepository interface {
	// FindByEventID retrieves the location of an event.
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*entity.EventLocation, error)

	// Create persists a new location. A second location for the same event is
	// domainerrors.ErrLocationAlreadyExists.
	Create(ctx context.Context, location *entity.EventLocation) error

	// Update writes the location guarded by its version.
	Update(ctx context.Context, location *entity.EventLocation) error

	// DeleteByEventID removes the location of an event, if any.
	DeleteByEventID(ctx context.Context, eventID uuid.UUID) error
}
