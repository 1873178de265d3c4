package usecase

import (
	"context"

	"outside/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLocationInput is the postal address of a new event location. State
// and city are not accepted; the resolver decides them.
type CreateLocationInput struct {
	AddressLine1 string
	AddressLine2 *string
	PostalCode   string
	Country      string
}

// UpdateLocationInput is a partial address update.
type UpdateLocationInput struct {
	AddressLine1 *string
	AddressLine2 *string
	PostalCode   *string
	Country      *string
}

// LocationUsecase defines the operations on the location of an event.
type LocationUsecase interface {
	GetLocation(ctx context.Context, actorID, eventID uuid.UUID) (*entity.EventLocation, error)
	CreateLocation(ctx context.Context, actorID, eventID uuid.UUID, input *CreateLocationInput) (*entity.EventLocation, error)
	UpdateLocation(ctx context.Context, actorID, eventID uuid.UUID, input *UpdateLocationInput) (*entity.EventLocation, error)
}
