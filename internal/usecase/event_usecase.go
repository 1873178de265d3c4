package usecase

import (
	"context"
	"time"

	"outside/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// NearbyFilter restricts a listing to events located within RadiusKm of Center.
type NearbyFilter struct {
	Center   orb.Point
	RadiusKm float64
}

// CreateEventInput defines the data required to create an event.
type CreateEventInput struct {
	Name        string
	Description string
	StartsAt    time.Time
	FinishesAt  time.Time
}

// UpdateEventInput is a partial update of an event. Location is applied field
// by field to an existing location and ignored when the event has none.
type UpdateEventInput struct {
	Event    entity.EventUpdate
	Location entity.EventLocationUpdate
}

// EventUsecase defines the event operations.
type EventUsecase interface {
	ListEvents(ctx context.Context, filter *NearbyFilter) ([]*entity.Event, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error)
	CreateEvent(ctx context.Context, actorID uuid.UUID, input *CreateEventInput) (*entity.Event, error)
	UpdateEvent(ctx context.Context, actorID, eventID uuid.UUID, input *UpdateEventInput) (*entity.Event, error)
	DeleteEvent(ctx context.Context, actorID, eventID uuid.UUID) error
	GetEventQRCode(ctx context.Context, eventID uuid.UUID) ([]byte, error)
}
